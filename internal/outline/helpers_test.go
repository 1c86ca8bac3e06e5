package outline

import (
	"io"
	"log/slog"
	"strconv"
	"testing"

	"github.com/dgallion1/docoutline/internal/doctree"
	"github.com/dgallion1/docoutline/internal/parser"
)

// blk describes a single-span block for test documents.
type blk struct {
	text string
	size float64
	bold bool
	x, y float64
}

func page(n int, blocks ...blk) *parser.Page {
	p := &parser.Page{Number: n, Width: 612, Height: 792}
	for _, b := range blocks {
		font := "Times-Roman"
		if b.bold {
			font = "Times-Bold"
		}
		p.Blocks = append(p.Blocks, parser.NewBlock(parser.Line{Spans: []parser.Span{{
			Text: b.text,
			Size: b.size,
			Font: font,
			BBox: parser.Rect{X0: b.x, Y0: b.y, X1: b.x + 200, Y1: b.y + b.size},
		}}}))
	}
	return p
}

func memDoc(name string, pages ...*parser.Page) *parser.MemDocument {
	return &parser.MemDocument{Filename: name, Pages: pages}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEngine() *Engine {
	return NewEngine(DefaultParams(), quietLogger())
}

func frag(text string, page int, size float64, bold bool, y float64) doctree.Fragment {
	return doctree.Fragment{Text: text, Page: page, Size: size, Bold: bold, X0: 72, Y0: y}
}

// fixedLabels is a clustering provider returning canned labels.
type fixedLabels []int

func (f fixedLabels) Cluster(features [][]float64, _ float64, _ int) []int {
	out := make([]int, len(features))
	for i := range out {
		out[i] = f[i%len(f)]
	}
	return out
}

// flat renders headings as "H1 Text @1" for comparison.
func flat(hs []doctree.Heading) []string {
	out := make([]string, len(hs))
	for i, h := range hs {
		out[i] = h.Level.String() + " " + h.Text + " @" + strconv.Itoa(h.Page)
	}
	return out
}

// checkOutlineInvariants verifies ordering, uniqueness and level range.
func checkOutlineInvariants(t *testing.T, hs []doctree.Heading) {
	t.Helper()
	type key struct {
		text  string
		level doctree.Level
	}
	seen := map[key]bool{}
	for i, h := range hs {
		if h.Level < doctree.H1 {
			t.Errorf("heading %d: invalid level %d", i, h.Level)
		}
		k := key{h.Text, h.Level}
		if seen[k] {
			t.Errorf("heading %d: duplicate (%q, %v)", i, h.Text, h.Level)
		}
		seen[k] = true
		if i == 0 {
			continue
		}
		prev := hs[i-1]
		if prev.Page > h.Page || (prev.Page == h.Page && prev.Y0() > h.Y0()) {
			t.Errorf("heading %d out of order: %v after %v", i, flat(hs[i:i+1]), flat(hs[i-1:i]))
		}
	}
}
