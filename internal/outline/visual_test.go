package outline

import (
	"reflect"
	"strings"
	"testing"

	"github.com/dgallion1/docoutline/internal/cluster"
	"github.com/dgallion1/docoutline/internal/doctree"
)

// labelsFor returns a provider that assigns labels by fragment order.
type labelsFor []int

func (l labelsFor) Cluster(features [][]float64, _ float64, _ int) []int {
	return append([]int(nil), l[:len(features)]...)
}

func runVisual(p cluster.Provider, frags ...doctree.Fragment) []string {
	s := VisualStrategy{Params: DefaultParams().Visual, Clusterer: p}
	return flat(s.Extract(&Input{Fragments: frags}).Outline)
}

func TestVisual_NoNoiseMeansNoOutline(t *testing.T) {
	got := runVisual(fixedLabels{0, 1},
		frag("Heading", 1, 18, true, 50),
		frag("body", 1, 10, false, 100),
		frag("Heading two", 1, 18, true, 150),
	)
	if len(got) != 0 {
		t.Errorf("expected empty outline, got %v", got)
	}
}

func TestVisual_OnlyNoise(t *testing.T) {
	got := runVisual(fixedLabels{cluster.Noise},
		frag("1 Introduction", 1, 18, true, 50),
		frag("body", 1, 10, false, 100),
	)
	if len(got) != 0 {
		t.Errorf("expected empty outline, got %v", got)
	}
}

func TestVisual_RanksClustersBySize(t *testing.T) {
	frags := []doctree.Fragment{
		frag("Sub A", 1, 14, true, 120),
		frag("Top", 1, 20, true, 60),
		frag("body 1", 1, 10, false, 140),
		frag("body 2", 1, 10, false, 160),
		frag("body 3", 1, 10, false, 180),
		frag("stray", 1, 11, false, 190),
		frag("Figure 3 shows the rig", 1, 14, true, 200),
		frag("Sub B", 2, 14, true, 40),
		frag("Minor", 2, 12, true, 80),
	}
	labels := labelsFor{2, 1, 0, 0, 0, cluster.Noise, 2, 2, 3}
	got := runVisual(labels, frags...)
	want := []string{"H1 Top @1", "H2 Sub A @1", "H2 Sub B @2", "H3 Minor @2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestVisual_BodyTieGoesToLowestID(t *testing.T) {
	frags := []doctree.Fragment{
		frag("alpha", 1, 10, false, 10),
		frag("beta", 1, 10, false, 20),
		frag("Gamma", 1, 16, true, 30),
		frag("Delta", 1, 16, true, 40),
		frag("noise", 1, 9, false, 50),
	}
	got := runVisual(labelsFor{1, 1, 0, 0, cluster.Noise}, frags...)
	want := []string{"H1 alpha @1", "H1 beta @1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestVisual_DropsLongAndBoilerplate(t *testing.T) {
	long := strings.TrimSpace(strings.Repeat("word ", 30))
	frags := []doctree.Fragment{
		frag("body", 1, 10, false, 10),
		frag("body", 1, 10, false, 20),
		frag("body", 1, 10, false, 30),
		frag(long, 1, 16, true, 40),
		frag("© 2024 Example", 1, 16, true, 50),
		frag("International Software Testing Board", 1, 16, true, 60),
		frag("Table 2 results", 1, 16, true, 70),
		frag("Kept Heading", 1, 16, true, 80),
		frag("x", 1, 7, false, 90),
		frag("body", 1, 10, false, 100),
		frag("body", 1, 10, false, 110),
		frag("body", 1, 10, false, 120),
	}
	labels := labelsFor{0, 0, 0, 1, 1, 1, 1, 1, cluster.Noise, 0, 0, 0}
	got := runVisual(labels, frags...)
	want := []string{"H1 Kept Heading @1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
