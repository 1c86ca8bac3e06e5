package parser

import (
	"errors"
	"testing"
)

func TestForFile(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"a.pdf", "*parser.PDFParser"},
		{"a.PDF", "*parser.PDFParser"},
		{"a.md", "*parser.MarkdownParser"},
		{"a.markdown", "*parser.MarkdownParser"},
		{"a.htm", "*parser.HTMLParser"},
		{"a.docx", "*parser.DOCXParser"},
		{"a.txt", "*parser.TextParser"},
	}
	for _, tt := range tests {
		p, err := ForFile(tt.name)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
			continue
		}
		if got := typeName(p); got != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.name, tt.want, got)
		}
	}

	if _, err := ForFile("a.xlsx"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func typeName(o Opener) string {
	switch o.(type) {
	case *PDFParser:
		return "*parser.PDFParser"
	case *MarkdownParser:
		return "*parser.MarkdownParser"
	case *HTMLParser:
		return "*parser.HTMLParser"
	case *DOCXParser:
		return "*parser.DOCXParser"
	case *TextParser:
		return "*parser.TextParser"
	}
	return "unknown"
}

func TestIsBoldFont(t *testing.T) {
	tests := map[string]bool{
		"Arial-BoldMT":        true,
		"ABCDEF+Roboto-Black": true,
		"TimesNewRoman":       false,
		"Helvetica-Oblique":   false,
	}
	for font, want := range tests {
		if got := IsBoldFont(font); got != want {
			t.Errorf("%s: expected %v, got %v", font, want, got)
		}
	}
}

func TestMemDocument_PageRange(t *testing.T) {
	d := &MemDocument{Pages: []*Page{{Number: 1}}}
	if _, err := d.Page(0); err == nil {
		t.Error("expected error for page 0")
	}
	if _, err := d.Page(2); err == nil {
		t.Error("expected error for page 2")
	}
	if p, err := d.Page(1); err != nil || p.Number != 1 {
		t.Errorf("expected page 1, got %v, %v", p, err)
	}
}
