// Package cluster groups numeric feature rows by local density.
package cluster

import "math"

// Noise is the label given to rows that belong to no cluster.
const Noise = -1

// Provider assigns one label per feature row. Labels are 0..k-1 for clusters
// and Noise for unassigned rows.
type Provider interface {
	Cluster(features [][]float64, eps float64, minSamples int) []int
}

// Standardize rescales every column to zero mean and unit variance. Columns
// with zero variance are centred but not scaled.
func Standardize(rows [][]float64) [][]float64 {
	if len(rows) == 0 {
		return nil
	}
	cols := len(rows[0])
	mean := make([]float64, cols)
	std := make([]float64, cols)
	n := float64(len(rows))

	for _, r := range rows {
		for j, v := range r {
			mean[j] += v
		}
	}
	for j := range mean {
		mean[j] /= n
	}
	for _, r := range rows {
		for j, v := range r {
			d := v - mean[j]
			std[j] += d * d
		}
	}
	for j := range std {
		std[j] = math.Sqrt(std[j] / n)
		if std[j] == 0 {
			std[j] = 1
		}
	}

	out := make([][]float64, len(rows))
	for i, r := range rows {
		out[i] = make([]float64, cols)
		for j, v := range r {
			out[i][j] = (v - mean[j]) / std[j]
		}
	}
	return out
}
