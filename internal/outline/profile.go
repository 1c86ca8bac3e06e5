package outline

import (
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dgallion1/docoutline/internal/parser"
	"github.com/dgallion1/docoutline/internal/tally"
)

// DocType routes a document to one of the heuristic strategies.
type DocType string

const (
	Form      DocType = "form"
	Flyer     DocType = "flyer"
	Technical DocType = "technical"
	Business  DocType = "business"
)

// Profile is the per-document summary the strategies work from. It is
// built once and never modified.
type Profile struct {
	PageCount    int
	BaselineSize int
	Headers      map[string]bool
	Footers      map[string]bool
	Type         DocType
}

// Suppressed reports whether text is a detected header or footer.
func (p Profile) Suppressed(text string) bool {
	return p.Headers[text] || p.Footers[text]
}

// BaselineSize returns the font size carrying the most characters. Sizes are
// rounded half-to-even before counting.
func BaselineSize(pages []*parser.Page, fallback int) int {
	sizes := tally.New[int]()
	for _, p := range pages {
		if p == nil {
			continue
		}
		for _, b := range p.Blocks {
			for _, l := range b.Lines {
				for _, s := range l.Spans {
					sizes.Add(int(math.RoundToEven(s.Size)), utf8.RuneCountInString(s.Text))
				}
			}
		}
	}
	if size, ok := sizes.MostCommon(); ok {
		return size
	}
	return fallback
}

// RepeatingElements finds strings that recur verbatim in the header or footer
// band of enough pages. Matching is exact, so footers that embed a running
// page number are never detected.
func RepeatingElements(pages []*parser.Page, params RepeatingParams) (headers, footers map[string]bool) {
	headers, footers = map[string]bool{}, map[string]bool{}
	if len(pages) < params.MinPages {
		return headers, footers
	}

	type candidate struct {
		text   string
		footer bool
	}
	seen := tally.New[candidate]()
	for _, p := range pages {
		if p == nil {
			continue
		}
		band := p.Height * params.ZoneFraction
		zones := []struct {
			clip   parser.Rect
			footer bool
		}{
			{parser.Rect{X0: 0, Y0: 0, X1: p.Width, Y1: band}, false},
			{parser.Rect{X0: 0, Y0: p.Height - band, X1: p.Width, Y1: p.Height}, true},
		}
		for _, z := range zones {
			text := p.ClipText(z.clip)
			if text == "" || len(strings.Fields(text)) >= params.MaxWords || isDigits(text) {
				continue
			}
			seen.Inc(candidate{text: text, footer: z.footer})
		}
	}

	quorum := max(params.MinRepeats, len(pages)/params.QuorumDiv)
	for _, c := range seen.AtLeast(quorum) {
		if c.footer {
			footers[c.text] = true
		} else {
			headers[c.text] = true
		}
	}
	return headers, footers
}

// IsTOCPage reports whether a page looks like a table of contents.
func IsTOCPage(p *parser.Page, params TOCParams) bool {
	if p == nil || len(p.Blocks) == 0 {
		return false
	}
	for i, b := range p.Blocks {
		if i >= params.LeadBlocks {
			break
		}
		lower := strings.ToLower(b.Text())
		for _, kw := range params.Keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}

	if len(p.Blocks) <= params.MinBlocks {
		return false
	}
	leaders := 0
	for _, b := range p.Blocks {
		text := b.Text()
		trimmed := strings.TrimSpace(text)
		if strings.Contains(text, "...") && trimmed != "" && isASCIIDigit(trimmed[len(trimmed)-1]) {
			leaders++
		}
	}
	return float64(leaders)/float64(len(p.Blocks)) > params.DotLeaderRatio
}

// sortedKeys returns the keys of a string set in lexical order.
func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// isDigits reports whether s is non-empty and made only of digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func isASCIIDigit(c byte) bool { return c >= '0' && c <= '9' }
