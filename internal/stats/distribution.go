// Package stats provides the descriptive statistics backing the fare
// distribution endpoints.
package stats

import (
	"math"
	"sort"
)

// Mean returns the arithmetic mean
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev returns the population standard deviation
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := Mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)))
}

// Quantile calculates the q-th quantile (0-1) with linear interpolation
// between closest ranks. The input need not be sorted.
func Quantile(values []float64, q float64) float64 {
	if len(values) == 0 {
		return 0
	}
	if q < 0 {
		q = 0
	}
	if q > 1 {
		q = 1
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return quantileSorted(sorted, q)
}

// Percentiles calculates multiple percentiles (0-100) at once, sorting only
// once.
func Percentiles(values []float64, ps []float64) []float64 {
	results := make([]float64, len(ps))
	if len(values) == 0 {
		return results
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	for i, p := range ps {
		if p < 0 {
			p = 0
		}
		if p > 100 {
			p = 100
		}
		results[i] = quantileSorted(sorted, p/100)
	}
	return results
}

// FiveNumberSummary returns min, q1, median, q3, max
func FiveNumberSummary(values []float64) (min, q1, median, q3, max float64) {
	if len(values) == 0 {
		return
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return sorted[0],
		quantileSorted(sorted, 0.25),
		quantileSorted(sorted, 0.5),
		quantileSorted(sorted, 0.75),
		sorted[len(sorted)-1]
}

func quantileSorted(sorted []float64, q float64) float64 {
	n := float64(len(sorted))
	index := q * (n - 1)
	lower := int(math.Floor(index))
	upper := int(math.Ceil(index))

	if lower == upper {
		return sorted[lower]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}
