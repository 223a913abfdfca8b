package generator

import "sort"

// quantile computes the linear-interpolation quantile of values at probability p,
// matching the convention the merge pipeline's thresholds were tuned against
// (h = (n-1)p between order statistics). Input is copied, never mutated; calling
// it twice on the same column yields the same value.
func quantile(values []float64, p float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}

	h := float64(n-1) * p
	lo := int(h)
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
