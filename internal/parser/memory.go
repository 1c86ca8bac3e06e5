package parser

import "fmt"

// MemDocument is a fully materialized document held in memory.
type MemDocument struct {
	Filename string
	Pages    []*Page
	Items    []OutlineItem
}

func (d *MemDocument) Name() string   { return d.Filename }
func (d *MemDocument) PageCount() int { return len(d.Pages) }

func (d *MemDocument) Page(n int) (*Page, error) {
	if n < 1 || n > len(d.Pages) {
		return nil, fmt.Errorf("page %d out of range (1-%d)", n, len(d.Pages))
	}
	return d.Pages[n-1], nil
}

func (d *MemDocument) Outline() ([]OutlineItem, error) { return d.Items, nil }
func (d *MemDocument) Close() error                    { return nil }

// Nominal typography for formats that carry structure instead of layout.
const (
	bodyFont    = "Helvetica"
	headingFont = "Helvetica-Bold"
	bodySize    = 11.0
	pageWidth   = 612.0
	pageHeight  = 792.0
	pageMargin  = 72.0
)

func headingSize(level int) float64 {
	switch level {
	case 1:
		return 24
	case 2:
		return 18
	case 3:
		return 14
	default:
		return 12
	}
}

// structuredBuilder lays out headings and paragraphs of a structured format
// onto a single synthetic page and records the headings as the outline.
type structuredBuilder struct {
	doc *MemDocument
	y   float64
}

func newStructuredBuilder(filename string) *structuredBuilder {
	return &structuredBuilder{
		doc: &MemDocument{Filename: filename},
		y:   pageMargin,
	}
}

func (b *structuredBuilder) heading(level int, text string) {
	if text == "" {
		return
	}
	b.doc.Items = append(b.doc.Items, OutlineItem{Depth: level, Title: text, Page: 1})
	b.place(text, headingSize(level), headingFont)
}

func (b *structuredBuilder) paragraph(text string) {
	if text == "" {
		return
	}
	b.place(text, bodySize, bodyFont)
}

func (b *structuredBuilder) place(text string, size float64, font string) {
	h := size * 1.2
	span := Span{
		Text: text,
		Size: size,
		Font: font,
		BBox: Rect{X0: pageMargin, Y0: b.y, X1: pageWidth - pageMargin, Y1: b.y + h},
	}
	b.y += h + size*0.8
	if len(b.doc.Pages) == 0 {
		b.doc.Pages = []*Page{{Number: 1, Width: pageWidth, Height: pageHeight}}
	}
	p := b.doc.Pages[0]
	p.Blocks = append(p.Blocks, NewBlock(Line{Spans: []Span{span}}))
	p.Height = max(pageHeight, b.y+pageMargin)
}

func (b *structuredBuilder) document() *MemDocument {
	if len(b.doc.Pages) == 0 {
		b.doc.Pages = []*Page{{Number: 1, Width: pageWidth, Height: pageHeight}}
	}
	return b.doc
}
