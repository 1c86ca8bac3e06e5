package outline

import (
	"strings"

	"github.com/dgallion1/docoutline/internal/doctree"
	"github.com/dgallion1/docoutline/internal/parser"
)

// ExtractFragments turns every block on every non-TOC page into a fragment.
// Blocks whose joined text is empty, all digits, or a suppressed header or
// footer are dropped. The first span stands in for the whole block's font.
// It also returns the page numbers that were skipped as contents listings.
func ExtractFragments(pages []*parser.Page, suppressed func(string) bool, toc TOCParams) ([]doctree.Fragment, []int) {
	var frags []doctree.Fragment
	var tocPages []int
	for i, p := range pages {
		if p == nil {
			continue
		}
		if IsTOCPage(p, toc) {
			tocPages = append(tocPages, i+1)
			continue
		}
		for _, b := range p.Blocks {
			text := joinSpans(b)
			if text == "" || isDigits(text) || suppressed(text) {
				continue
			}
			if len(b.Lines) == 0 || len(b.Lines[0].Spans) == 0 {
				continue
			}
			first := b.Lines[0].Spans[0]
			frags = append(frags, doctree.Fragment{
				Text: text,
				Page: i + 1,
				Size: first.Size,
				Bold: parser.IsBoldFont(first.Font),
				X0:   b.BBox.X0,
				Y0:   b.BBox.Y0,
			})
		}
	}
	return frags, tocPages
}

// joinSpans joins every trimmed span of a block with single spaces.
func joinSpans(b parser.Block) string {
	var parts []string
	for _, l := range b.Lines {
		for _, s := range l.Spans {
			parts = append(parts, strings.TrimSpace(s.Text))
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
