package cluster

import (
	"math"
	"testing"
)

func TestStandardize_ZeroMeanUnitVariance(t *testing.T) {
	rows := [][]float64{{10, 0}, {12, 1}, {14, 0}, {16, 1}}
	out := Standardize(rows)

	for j := 0; j < 2; j++ {
		var sum, sq float64
		for _, r := range out {
			sum += r[j]
		}
		mean := sum / float64(len(out))
		for _, r := range out {
			sq += (r[j] - mean) * (r[j] - mean)
		}
		if math.Abs(mean) > 1e-9 {
			t.Errorf("column %d: expected mean 0, got %f", j, mean)
		}
		if v := sq / float64(len(out)); math.Abs(v-1) > 1e-9 {
			t.Errorf("column %d: expected variance 1, got %f", j, v)
		}
	}
}

func TestStandardize_ConstantColumn(t *testing.T) {
	out := Standardize([][]float64{{5, 1}, {5, 2}, {5, 3}})
	for i, r := range out {
		if r[0] != 0 {
			t.Errorf("row %d: expected 0 for constant column, got %f", i, r[0])
		}
	}
}

func TestStandardize_Empty(t *testing.T) {
	if out := Standardize(nil); out != nil {
		t.Errorf("expected nil, got %v", out)
	}
}

func TestDBSCAN_TwoClustersAndNoise(t *testing.T) {
	features := [][]float64{
		{0, 0}, {0.1, 0}, {0, 0.1}, {0.1, 0.1}, // cluster 0
		{5, 5}, {5.1, 5}, {5, 5.1}, // cluster 1
		{10, -10}, // noise
	}
	labels := DBSCAN{}.Cluster(features, 0.5, 3)

	want := []int{0, 0, 0, 0, 1, 1, 1, Noise}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("row %d: expected label %d, got %d", i, want[i], labels[i])
		}
	}
}

func TestDBSCAN_BorderPointJoinsCluster(t *testing.T) {
	// The last point reaches only one core point, so it is a border point.
	features := [][]float64{{0}, {0.4}, {0.8}, {1.2}}
	labels := DBSCAN{}.Cluster(features, 0.5, 3)
	for i, l := range labels {
		if l != 0 {
			t.Errorf("row %d: expected label 0, got %d", i, l)
		}
	}
}

func TestDBSCAN_AllNoiseWhenSparse(t *testing.T) {
	features := [][]float64{{0}, {1}, {2}, {3}}
	for i, l := range (DBSCAN{}).Cluster(features, 0.5, 3) {
		if l != Noise {
			t.Errorf("row %d: expected noise, got %d", i, l)
		}
	}
}
