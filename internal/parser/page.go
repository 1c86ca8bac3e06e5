package parser

import (
	"sort"
	"strings"
)

// Rect is an axis-aligned box in page space with the origin at the top-left.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Union returns the smallest rect covering r and o. A zero r is treated as empty.
func (r Rect) Union(o Rect) Rect {
	if r == (Rect{}) {
		return o
	}
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// Span is a run of text sharing one font and size.
type Span struct {
	Text string
	Size float64
	Font string
	BBox Rect
}

// Line is a sequence of spans sharing a baseline.
type Line struct {
	Spans []Span
	BBox  Rect
}

// Text concatenates the line's spans.
func (l Line) Text() string {
	var sb strings.Builder
	for _, s := range l.Spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// Block is a paragraph-like group of lines.
type Block struct {
	Lines []Line
	BBox  Rect
}

// Text joins the block's lines with newlines.
func (b Block) Text() string {
	lines := make([]string, len(b.Lines))
	for i, l := range b.Lines {
		lines[i] = l.Text()
	}
	return strings.Join(lines, "\n")
}

// NewBlock builds a block and computes its bounding boxes from its spans.
func NewBlock(lines ...Line) Block {
	var b Block
	for _, l := range lines {
		for _, s := range l.Spans {
			l.BBox = l.BBox.Union(s.BBox)
		}
		b.BBox = b.BBox.Union(l.BBox)
		b.Lines = append(b.Lines, l)
	}
	return b
}

// Page is the structured text of a single page.
type Page struct {
	Number int // 1-based
	Width  float64
	Height float64
	Blocks []Block
}

// ClipText returns the text of every line whose vertical centre falls inside
// clip, in top-to-bottom, left-to-right order, one line per row.
func (p *Page) ClipText(clip Rect) string {
	var lines []Line
	for _, b := range p.Blocks {
		for _, l := range b.Lines {
			var kept []Span
			for _, s := range l.Spans {
				cy := (s.BBox.Y0 + s.BBox.Y1) / 2
				if cy >= clip.Y0 && cy <= clip.Y1 && s.BBox.X1 >= clip.X0 && s.BBox.X0 <= clip.X1 {
					kept = append(kept, s)
				}
			}
			if len(kept) > 0 {
				lines = append(lines, NewBlock(Line{Spans: kept}).Lines[0])
			}
		}
	}
	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].BBox.Y1 != lines[j].BBox.Y1 {
			return lines[i].BBox.Y1 < lines[j].BBox.Y1
		}
		return lines[i].BBox.X0 < lines[j].BBox.X0
	})
	rows := make([]string, len(lines))
	for i, l := range lines {
		rows[i] = l.Text()
	}
	return strings.TrimSpace(strings.Join(rows, "\n"))
}

// PlainText returns the page text with blocks separated by blank lines.
func (p *Page) PlainText() string {
	parts := make([]string, 0, len(p.Blocks))
	for _, b := range p.Blocks {
		if t := strings.TrimSpace(b.Text()); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, "\n\n")
}
