package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dgallion1/docoutline/internal/outline"
	"github.com/dgallion1/docoutline/internal/parser"
)

// Batch writes one outline file per recognized document in a directory.
type Batch struct {
	Engine *outline.Engine
	Log    *slog.Logger

	// Workers is the number of documents processed concurrently. Values
	// below 1 mean 1.
	Workers int

	// Reports also writes <name>.report.json next to each outline.
	Reports bool
}

// BatchSummary counts what a batch run did.
type BatchSummary struct {
	Documents   int `json:"documents"`
	Degraded    int `json:"degraded"` // unreadable or empty documents
	WriteErrors int `json:"write_errors"`
}

// Run processes every supported file directly inside inDir and writes
// <basename>.json into outDir. Only directory-level failures are returned;
// a document that cannot be read still produces an output file.
func (b *Batch) Run(ctx context.Context, inDir, outDir string) (BatchSummary, error) {
	var sum BatchSummary
	entries, err := os.ReadDir(inDir)
	if err != nil {
		return sum, fmt.Errorf("read input dir: %w", err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return sum, fmt.Errorf("create output dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !parser.IsSupportedExtension(e.Name()) {
			continue
		}
		files = append(files, e.Name())
	}
	b.Log.Info("batch started", "input_dir", inDir, "output_dir", outDir, "documents", len(files))

	workers := max(b.Workers, 1)
	queue := make(chan string)
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range queue {
				degraded, writeErr := b.process(filepath.Join(inDir, name), outDir)
				mu.Lock()
				sum.Documents++
				if degraded {
					sum.Degraded++
				}
				if writeErr {
					sum.WriteErrors++
				}
				mu.Unlock()
			}
		}()
	}

dispatch:
	for _, name := range files {
		select {
		case <-ctx.Done():
			break dispatch
		case queue <- name:
		}
	}
	close(queue)
	wg.Wait()

	b.Log.Info("batch finished",
		"documents", sum.Documents,
		"degraded", sum.Degraded,
		"write_errors", sum.WriteErrors,
	)
	return sum, ctx.Err()
}

func (b *Batch) process(path, outDir string) (degraded, writeErr bool) {
	name := filepath.Base(path)
	base := strings.TrimSuffix(name, filepath.Ext(name))
	log := b.Log.With("file", name)

	res, rep := b.Engine.Analyze(path)
	degraded = rep.Error != "" || res.Title == outline.NoTextTitle

	out := filepath.Join(outDir, base+".json")
	if err := WriteJSON(out, res); err != nil {
		log.Error("write result failed", "path", out, "error", err)
		return degraded, true
	}
	if b.Reports {
		rp := filepath.Join(outDir, base+".report.json")
		if err := WriteJSON(rp, rep); err != nil {
			log.Error("write report failed", "path", rp, "error", err)
			return degraded, true
		}
	}
	log.Info("outline written", "path", out, "strategy", rep.Strategy, "headings", len(res.Outline))
	return degraded, false
}

// WriteJSON writes v to path as 2-space indented JSON without HTML
// escaping.
func WriteJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
