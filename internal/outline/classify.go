package outline

import (
	"math"
	"regexp"
	"strings"

	"github.com/dgallion1/docoutline/internal/doctree"
)

var hierarchicalNumber = regexp.MustCompile(`^\s*\d+(\.\d+)+`)

// Classification is the outcome of Classify.
type Classification struct {
	Type DocType
	// MentionsRFP records whether proposal phrasing was found. It does not
	// change the routing today.
	MentionsRFP bool
}

// Classify picks a document type from corpus-wide statistics. The first
// matching rule wins.
func Classify(frags []doctree.Fragment, pageCount int, params ClassifierParams) Classification {
	if len(frags) == 0 {
		return Classification{Type: Flyer}
	}

	if pageCount == 1 {
		words := 0
		for _, f := range frags {
			words += f.Words()
		}
		if float64(words)/float64(len(frags)) < params.FormMaxMeanWords {
			return Classification{Type: Form}
		}
		if len(frags) > 1 && sizeStdDev(frags) > params.FlyerMinSizeStdDev {
			return Classification{Type: Flyer}
		}
	}

	numbered := 0
	for _, f := range frags {
		if hierarchicalNumber.MatchString(f.Text) {
			numbered++
		}
	}
	if float64(numbered) > float64(pageCount)*params.TechnicalPerPage {
		return Classification{Type: Technical}
	}

	return Classification{Type: Business, MentionsRFP: mentionsAny(frags, params.RFPPhrases)}
}

// sizeStdDev is the population standard deviation of fragment font sizes.
func sizeStdDev(frags []doctree.Fragment) float64 {
	var sum float64
	for _, f := range frags {
		sum += f.Size
	}
	mean := sum / float64(len(frags))
	var sq float64
	for _, f := range frags {
		d := f.Size - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(frags)))
}

func mentionsAny(frags []doctree.Fragment, phrases []string) bool {
	for _, f := range frags {
		lower := strings.ToLower(f.Text)
		for _, p := range phrases {
			if strings.Contains(lower, p) {
				return true
			}
		}
	}
	return false
}
