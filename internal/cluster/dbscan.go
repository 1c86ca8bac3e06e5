package cluster

import "math"

// DBSCAN is a density-based Provider using Euclidean distance. A row is a
// core point when at least minSamples rows (itself included) lie within eps.
// Clusters are numbered in the order their first core point appears.
type DBSCAN struct{}

func (DBSCAN) Cluster(features [][]float64, eps float64, minSamples int) []int {
	n := len(features)
	labels := make([]int, n)
	for i := range labels {
		labels[i] = Noise
	}
	if n == 0 {
		return labels
	}

	neighbors := make([][]int, n)
	core := make([]bool, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if distance(features[i], features[j]) <= eps {
				neighbors[i] = append(neighbors[i], j)
			}
		}
		core[i] = len(neighbors[i]) >= minSamples
	}

	next := 0
	var stack []int
	for start := 0; start < n; start++ {
		if labels[start] != Noise || !core[start] {
			continue
		}
		i := start
		for {
			if labels[i] == Noise {
				labels[i] = next
				if core[i] {
					for _, j := range neighbors[i] {
						if labels[j] == Noise {
							stack = append(stack, j)
						}
					}
				}
			}
			if len(stack) == 0 {
				break
			}
			i = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		}
		next++
	}
	return labels
}

func distance(a, b []float64) float64 {
	var sum float64
	for k := range a {
		d := a[k] - b[k]
		sum += d * d
	}
	return math.Sqrt(sum)
}
