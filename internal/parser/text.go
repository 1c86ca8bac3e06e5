package parser

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TextParser handles plain text files. Text carries no typography or
// embedded outline, so every paragraph is laid out as body text and the
// heuristic engines decide what is a heading.
type TextParser struct{}

func (p *TextParser) Open(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open text: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	b := newStructuredBuilder(filepath.Base(path))
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			b.paragraph(current.String())
			current.Reset()
		}
	}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			flush()
			continue
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(line)
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read text: %w", err)
	}
	return b.document(), nil
}
