package outline

import (
	"regexp"
	"sort"
	"strings"

	"github.com/dgallion1/docoutline/internal/cluster"
	"github.com/dgallion1/docoutline/internal/doctree"
)

var captionNoise = []*regexp.Regexp{
	regexp.MustCompile(`^\s*\d+\s*$`),
	regexp.MustCompile(`©`),
	regexp.MustCompile(`(?i)table\s\d+`),
	regexp.MustCompile(`(?i)figure\s\d+`),
}

// VisualStrategy clusters fragments by standardized {size, bold, x0}. The
// largest cluster is body text; the remaining clusters are heading styles,
// ranked into levels by mean font size.
type VisualStrategy struct {
	Params    VisualParams
	Clusterer cluster.Provider
}

func (VisualStrategy) Name() string { return "visual" }

func (s VisualStrategy) Extract(in *Input) doctree.Result {
	return doctree.Result{Outline: s.headings(in.Fragments)}
}

func (s VisualStrategy) headings(frags []doctree.Fragment) []doctree.Heading {
	if len(frags) == 0 {
		return nil
	}
	features := make([][]float64, len(frags))
	for i, f := range frags {
		bold := 0.0
		if f.Bold {
			bold = 1
		}
		features[i] = []float64{f.Size, bold, f.X0}
	}
	labels := s.Clusterer.Cluster(cluster.Standardize(features), s.Params.Eps, s.Params.MinSamples)

	// Without any noise points the clustering did not separate styles.
	counts := map[int]int{}
	hasNoise := false
	for _, l := range labels {
		if l == cluster.Noise {
			hasNoise = true
			continue
		}
		counts[l]++
	}
	if !hasNoise || len(counts) == 0 {
		return nil
	}

	body, bodyCount := -1, -1
	for _, id := range sortedIDs(counts) {
		if counts[id] > bodyCount {
			body, bodyCount = id, counts[id]
		}
	}

	type member struct {
		frag    doctree.Fragment
		cluster int
	}
	var candidates []member
	stats := map[int]*sizeStats{}
	for i, f := range frags {
		l := labels[i]
		if l == cluster.Noise || l == body || s.isNoise(f.Text) {
			continue
		}
		candidates = append(candidates, member{frag: f, cluster: l})
		if stats[l] == nil {
			stats[l] = &sizeStats{}
		}
		stats[l].add(f.Size)
	}
	if len(candidates) == 0 {
		return nil
	}

	ranked := sortedIDs(stats)
	sort.SliceStable(ranked, func(i, j int) bool {
		return stats[ranked[i]].mean > stats[ranked[j]].mean
	})
	levels := make(map[int]doctree.Level, len(ranked))
	for rank, id := range ranked {
		levels[id] = doctree.Level(min(rank+1, int(doctree.H4)))
	}

	var out []doctree.Heading
	for _, m := range candidates {
		out = append(out, doctree.NewHeading(levels[m.cluster], m.frag.Text, m.frag.Page, m.frag.Y0))
	}
	out = sortByPosition(out)

	kept := out[:0]
	for _, h := range out {
		if len(strings.Fields(h.Text)) < s.Params.MaxWords {
			kept = append(kept, h)
		}
	}
	return kept
}

func (s VisualStrategy) isNoise(text string) bool {
	for _, re := range captionNoise {
		if re.MatchString(text) {
			return true
		}
	}
	lower := strings.ToLower(text)
	for _, phrase := range s.Params.Boilerplate {
		if strings.Contains(lower, strings.ToLower(phrase)) {
			return true
		}
	}
	return false
}

// sizeStats keeps a running mean of font sizes for one cluster.
type sizeStats struct {
	count int
	mean  float64
}

func (s *sizeStats) add(size float64) {
	s.count++
	s.mean += (size - s.mean) / float64(s.count)
}

func sortedIDs[V any](m map[int]V) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
