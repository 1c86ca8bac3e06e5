package doctree

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Fragment is a paragraph-like unit of text taken from one page.
type Fragment struct {
	Text string
	Page int     // 1-based
	Size float64 // Font size of the first span
	Bold bool
	X0   float64 // Left edge of the block
	Y0   float64 // Top edge of the block, measured from the top of the page
}

// Words returns the whitespace-separated word count of the fragment text.
func (f Fragment) Words() int {
	return len(strings.Fields(f.Text))
}

// Level is a heading depth. Heuristic engines produce 1..4; native outlines
// may go deeper.
type Level int

const (
	H1 Level = iota + 1
	H2
	H3
	H4
)

func (l Level) String() string {
	return "H" + strconv.Itoa(int(l))
}

func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

func (l *Level) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	n, err := strconv.Atoi(strings.TrimPrefix(s, "H"))
	if err != nil || n < 1 || !strings.HasPrefix(s, "H") {
		return fmt.Errorf("invalid heading level %q", s)
	}
	*l = Level(n)
	return nil
}

// Heading is one outline entry.
type Heading struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`

	y0 float64 // vertical position, used only for ordering
}

// NewHeading builds a heading that remembers its vertical position on the page.
func NewHeading(level Level, text string, page int, y0 float64) Heading {
	return Heading{Level: level, Text: text, Page: page, y0: y0}
}

// Y0 returns the vertical position the heading was found at.
func (h Heading) Y0() float64 { return h.y0 }

// Result is the per-document output record.
type Result struct {
	Title   string    `json:"title"`
	Outline []Heading `json:"outline"`
}

// Chunk is a sized text segment tagged with its enclosing section.
type Chunk struct {
	Text         string `json:"text"`
	Index        int    `json:"index"`
	Source       string `json:"source"`
	Page         int    `json:"page"`
	SectionTitle string `json:"section_title"`
}
