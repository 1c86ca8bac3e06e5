package outline

import (
	"strings"

	"github.com/dgallion1/docoutline/internal/doctree"
	"github.com/dgallion1/docoutline/internal/parser"
)

// NativeStrategy trusts the document's embedded outline. The first entry is
// the title and the rest is the outline, in the order the document lists it.
type NativeStrategy struct {
	Items []parser.OutlineItem
}

func (NativeStrategy) Name() string { return "native" }

func (s NativeStrategy) Extract(*Input) doctree.Result {
	res := doctree.Result{Outline: []doctree.Heading{}}
	if len(s.Items) == 0 {
		return res
	}
	res.Title = normalizeSpace(s.Items[0].Title)
	for _, it := range s.Items[1:] {
		res.Outline = append(res.Outline, doctree.Heading{
			Level: doctree.Level(it.Depth),
			Text:  normalizeSpace(it.Title),
			Page:  it.Page,
		})
	}
	return res
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
