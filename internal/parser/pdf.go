package parser

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	pdflib "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PDFParser opens PDF files. Page text and geometry come from ledongthuc/pdf;
// the bookmark table comes from pdfcpu, which resolves destinations to pages.
type PDFParser struct{}

func (p *PDFParser) Open(path string) (doc Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, fmt.Errorf("open pdf: %v", r)
		}
	}()

	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	n := reader.NumPage()
	if n == 0 {
		f.Close()
		return nil, fmt.Errorf("open pdf: no pages")
	}
	return &pdfDocument{
		path:   path,
		file:   f,
		reader: reader,
		pages:  make(map[int]*Page, n),
		count:  n,
	}, nil
}

type pdfDocument struct {
	path   string
	file   *os.File
	reader *pdflib.Reader
	count  int

	mu    sync.Mutex
	pages map[int]*Page
}

func (d *pdfDocument) Name() string   { return filepath.Base(d.path) }
func (d *pdfDocument) PageCount() int { return d.count }

func (d *pdfDocument) Close() error {
	return d.file.Close()
}

// Page loads and caches page n.
func (d *pdfDocument) Page(n int) (page *Page, err error) {
	if n < 1 || n > d.count {
		return nil, fmt.Errorf("page %d out of range (1-%d)", n, d.count)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if p, ok := d.pages[n]; ok {
		return p, nil
	}

	// ledongthuc/pdf panics on some malformed content streams.
	defer func() {
		if r := recover(); r != nil {
			page, err = nil, fmt.Errorf("read page %d: %v", n, r)
		}
	}()

	src := d.reader.Page(n)
	page = &Page{Number: n, Width: 612, Height: 792}
	if src.V.IsNull() {
		d.pages[n] = page
		return page, nil
	}
	if w, h, ok := mediaBox(src.V); ok {
		page.Width, page.Height = w, h
	}
	page.Blocks = assembleBlocks(src.Content().Text, page.Height)
	d.pages[n] = page
	return page, nil
}

// Outline reads the bookmark tree and flattens it depth-first.
func (d *pdfDocument) Outline() (items []OutlineItem, err error) {
	defer func() {
		if r := recover(); r != nil {
			items, err = nil, fmt.Errorf("read bookmarks: %v", r)
		}
	}()

	f, err := os.Open(d.path)
	if err != nil {
		return nil, fmt.Errorf("open for outline: %w", err)
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	bms, err := api.Bookmarks(f, conf)
	if err != nil {
		return nil, fmt.Errorf("read bookmarks: %w", err)
	}

	var walk func(bms []pdfcpu.Bookmark, depth int)
	walk = func(bms []pdfcpu.Bookmark, depth int) {
		for _, bm := range bms {
			items = append(items, OutlineItem{Depth: depth, Title: bm.Title, Page: bm.PageFrom})
			walk(bm.Kids, depth+1)
		}
	}
	walk(bms, 1)
	return items, nil
}

// mediaBox resolves the (possibly inherited) MediaBox of a page.
func mediaBox(v pdflib.Value) (w, h float64, ok bool) {
	for i := 0; i < 32 && !v.IsNull(); i++ {
		box := v.Key("MediaBox")
		if box.Kind() == pdflib.Array && box.Len() == 4 {
			w = box.Index(2).Float64() - box.Index(0).Float64()
			h = box.Index(3).Float64() - box.Index(1).Float64()
			if w > 0 && h > 0 {
				return w, h, true
			}
		}
		v = v.Key("Parent")
	}
	return 0, 0, false
}

const (
	wordGapRatio   = 0.3 // horizontal gap, as a fraction of font size, that separates words
	blockGapRatio  = 1.5 // baseline distance, in line heights, that starts a new block
	sizeJumpRatio  = 0.2
	baselineJitter = 0.2
)

// glyphRun is a text run from the content stream converted to top-left page space.
type glyphRun struct {
	text     string
	font     string
	size     float64
	x0, x1   float64
	baseline float64 // distance from the top of the page
}

// assembleBlocks groups content-stream text runs into spans, lines and blocks.
func assembleBlocks(texts []pdflib.Text, pageHeight float64) []Block {
	var lines []Line
	var cur []Span
	var last *glyphRun

	flushLine := func() {
		if len(cur) > 0 {
			lines = append(lines, NewBlock(Line{Spans: cur}).Lines[0])
			cur = nil
		}
	}

	for _, t := range texts {
		if t.S == "" || t.FontSize <= 0 {
			continue
		}
		g := glyphRun{
			text:     t.S,
			font:     t.Font,
			size:     t.FontSize,
			x0:       t.X,
			x1:       t.X + t.W,
			baseline: pageHeight - t.Y,
		}

		sameRow := last != nil &&
			math.Abs(g.baseline-last.baseline) <= last.size*baselineJitter &&
			g.x0 >= last.x1-last.size*0.5
		if !sameRow {
			flushLine()
		}

		if strings.TrimSpace(g.text) == "" {
			// Explicit space glyph: close the word but keep the row.
			if sameRow && len(cur) > 0 {
				s := &cur[len(cur)-1]
				if !strings.HasSuffix(s.Text, " ") {
					s.Text += " "
				}
			}
			last = &g
			continue
		}

		gapped := sameRow && g.x0-last.x1 > last.size*wordGapRatio
		if sameRow && len(cur) > 0 {
			s := &cur[len(cur)-1]
			if s.Font == g.font && math.Abs(s.Size-g.size) < 0.01 {
				if gapped && !strings.HasSuffix(s.Text, " ") {
					s.Text += " "
				}
				s.Text += g.text
				s.BBox.X1 = max(s.BBox.X1, g.x1)
				last = &g
				continue
			}
			if gapped && !strings.HasSuffix(s.Text, " ") {
				s.Text += " "
			}
		}
		cur = append(cur, Span{
			Text: g.text,
			Size: g.size,
			Font: g.font,
			BBox: Rect{X0: g.x0, Y0: g.baseline - g.size, X1: g.x1, Y1: g.baseline},
		})
		last = &g
	}
	flushLine()

	for i := range lines {
		last := &lines[i].Spans[len(lines[i].Spans)-1]
		last.Text = strings.TrimRight(last.Text, " ")
	}
	return groupLines(lines)
}

// groupLines merges consecutive lines into paragraph-like blocks.
func groupLines(lines []Line) []Block {
	var blocks []Block
	var cur []Line
	for i, l := range lines {
		if i > 0 && breaksBlock(lines[i-1], l) {
			blocks = append(blocks, NewBlock(cur...))
			cur = nil
		}
		cur = append(cur, l)
	}
	if len(cur) > 0 {
		blocks = append(blocks, NewBlock(cur...))
	}
	return blocks
}

func breaksBlock(prev, next Line) bool {
	ps, ns := prev.Spans[0], next.Spans[0]
	lineHeight := prev.BBox.Height() * 1.2
	step := next.BBox.Y1 - prev.BBox.Y1
	if step <= 0 || step > lineHeight*blockGapRatio {
		return true
	}
	if math.Abs(ns.Size-ps.Size) > ps.Size*sizeJumpRatio {
		return true
	}
	return IsBoldFont(ps.Font) != IsBoldFont(ns.Font)
}
