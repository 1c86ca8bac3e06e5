package outline

import "github.com/dgallion1/docoutline/internal/doctree"

// SelectTitle returns the largest-font fragment in the top band of page 1.
// Ties go to the earliest fragment.
func SelectTitle(frags []doctree.Fragment, firstPageHeight float64, params TitleParams) string {
	limit := firstPageHeight * params.BandFraction
	title, best := params.Fallback, -1.0
	for _, f := range frags {
		if f.Page != 1 || f.Y0 >= limit {
			continue
		}
		if f.Size > best {
			title, best = f.Text, f.Size
		}
	}
	return title
}
