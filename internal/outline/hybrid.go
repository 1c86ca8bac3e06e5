package outline

import (
	"github.com/dgallion1/docoutline/internal/doctree"
)

// HybridStrategy combines numbering recognition with font-size and weight
// thresholds relative to the baseline. It suits documents whose styling is
// irregular: forms, flyers and general business documents.
type HybridStrategy struct {
	Params HybridParams
}

func (HybridStrategy) Name() string { return "hybrid" }

func (s HybridStrategy) Extract(in *Input) doctree.Result {
	return doctree.Result{Outline: s.headings(in.Fragments, float64(in.Profile.BaselineSize))}
}

func (s HybridStrategy) headings(frags []doctree.Fragment, baseline float64) []doctree.Heading {
	p := s.Params
	var out []doctree.Heading
	for i, f := range frags {
		words := f.Words()

		if num, ok := ParseNumbering(f.Text); ok {
			if !f.Bold && words < p.NumberedGuardWords && f.Size < baseline*p.NumberedGuardRatio {
				continue
			}
			if num.Rest != "" {
				out = append(out, doctree.NewHeading(num.Level(), num.Rest, f.Page, f.Y0))
			}
			continue
		}

		if !f.Bold || f.Size <= baseline*p.BoldRatio {
			continue
		}
		// Short bold labels followed by short text are usually table cells
		// or captions.
		if words < p.ShortLabelWords && (i+1 >= len(frags) || frags[i+1].Words() < p.FollowerWords) {
			continue
		}
		level := doctree.H3
		if f.Size > baseline*p.H2Ratio {
			level = doctree.H2
		}
		out = append(out, doctree.NewHeading(level, f.Text, f.Page, f.Y0))
	}
	return dedupe(sortByPosition(out))
}
