package stats

import (
	"math"
	"sort"
)

// MinMax returns the minimum and maximum values in the slice, ignoring NaNs.
func MinMax(x []float64) (float64, float64) {
	min, max := math.NaN(), math.NaN()
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(min) || v < min {
			min = v
		}
		if math.IsNaN(max) || v > max {
			max = v
		}
	}
	return min, max
}

// Percentile returns the p-th percentile value of the slice (0 <= p <= 100),
// interpolating linearly between the closest ranks. NaNs are skipped and an
// empty input yields NaN.
func Percentile(x []float64, p float64) float64 {
	cp := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) {
			cp = append(cp, v)
		}
	}
	n := len(cp)
	if n == 0 {
		return math.NaN()
	}
	min, max := MinMax(cp)
	if p <= 0 {
		return min
	}
	if p >= 100 {
		return max
	}
	sort.Float64s(cp)
	rank := p / 100 * float64(n-1)
	lower := int(rank)
	upper := lower + 1
	weight := rank - float64(lower)
	if upper >= n {
		return cp[lower]
	}
	return cp[lower]*(1-weight) + cp[upper]*weight
}
