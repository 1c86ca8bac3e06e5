package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMarkdownParser_HeadingOutline(t *testing.T) {
	input := `# Title

Intro text.

## Section A

Section A content.

### Subsection A1

Subsection A1 content.

## Section B

Section B content.
`
	doc := parseMarkdown([]byte(input), "doc.md")

	items, err := doc.Outline()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []OutlineItem{
		{Depth: 1, Title: "Title", Page: 1},
		{Depth: 2, Title: "Section A", Page: 1},
		{Depth: 3, Title: "Subsection A1", Page: 1},
		{Depth: 2, Title: "Section B", Page: 1},
	}
	if len(items) != len(want) {
		t.Fatalf("expected %d outline items, got %d", len(want), len(items))
	}
	for i, w := range want {
		if items[i] != w {
			t.Errorf("item[%d]: expected %+v, got %+v", i, w, items[i])
		}
	}

	if doc.PageCount() != 1 {
		t.Fatalf("expected 1 page, got %d", doc.PageCount())
	}
	page, _ := doc.Page(1)
	if len(page.Blocks) != 8 {
		t.Fatalf("expected 8 blocks, got %d", len(page.Blocks))
	}
	if !strings.Contains(page.PlainText(), "Section A content.") {
		t.Errorf("expected page text to contain %q", "Section A content.")
	}
}

func TestMarkdownParser_HeadingsAreBoldAndLarger(t *testing.T) {
	doc := parseMarkdown([]byte("# Big\n\nbody text here\n"), "x.md")
	page, _ := doc.Page(1)

	h := page.Blocks[0].Lines[0].Spans[0]
	body := page.Blocks[1].Lines[0].Spans[0]
	if !IsBoldFont(h.Font) {
		t.Errorf("expected heading font to be bold, got %q", h.Font)
	}
	if h.Size <= body.Size {
		t.Errorf("expected heading size %v > body size %v", h.Size, body.Size)
	}
	if page.Blocks[0].BBox.Y0 >= page.Blocks[1].BBox.Y0 {
		t.Error("expected heading above body")
	}
}

func TestMarkdownParser_NoHeadings(t *testing.T) {
	doc := parseMarkdown([]byte("Just a paragraph.\n\nAnother one.\n"), "plain.md")
	items, _ := doc.Outline()
	if len(items) != 0 {
		t.Errorf("expected no outline items, got %d", len(items))
	}
	page, _ := doc.Page(1)
	if len(page.Blocks) != 2 {
		t.Errorf("expected 2 blocks, got %d", len(page.Blocks))
	}
}

func TestMarkdownParser_OpenFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.md")
	if err := os.WriteFile(path, []byte("# Hello\n\nWorld\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	doc, err := Open(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer doc.Close()
	if doc.Name() != "notes.md" {
		t.Errorf("expected name %q, got %q", "notes.md", doc.Name())
	}
}
