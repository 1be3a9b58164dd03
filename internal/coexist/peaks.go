package coexist

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// minPeakHeightFraction is the minimum bin occupancy for an accepted peak,
// expressed as a fraction of the total sample count.
const minPeakHeightFraction = 0.02

// histogramBins returns the bin count for a profile of n samples.
func histogramBins(n int) int {
	return max(20, n/20)
}

// histogramCounts bins the values into bins uniform intervals over
// [min, max]. Bins are half-open except the last, which is closed at the
// maximum so that every value is counted.
func histogramCounts(values []float64, bins int) []float64 {
	lo := floats.Min(values)
	hi := floats.Max(values)
	counts := make([]float64, bins)
	width := (hi - lo) / float64(bins)
	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}
	return counts
}

// findPeaks locates local maxima of hist at least minHeight tall, then keeps
// only peaks separated by at least minDistance bins, tallest first. Plateaus
// count as a single peak at their midpoint. Returned indices are ascending.
func findPeaks(hist []float64, minHeight float64, minDistance int) []int {
	if minDistance < 1 {
		minDistance = 1
	}

	var candidates []int
	for i := 1; i < len(hist)-1; i++ {
		if hist[i] <= hist[i-1] {
			continue
		}
		if hist[i] > hist[i+1] {
			candidates = append(candidates, i)
			continue
		}
		if hist[i] == hist[i+1] {
			// Flat top: find where the plateau ends.
			j := i + 1
			for j < len(hist)-1 && hist[j] == hist[i] {
				j++
			}
			if hist[j] < hist[i] {
				candidates = append(candidates, (i+j-1)/2)
			}
			i = j - 1
		}
	}

	var tall []int
	for _, idx := range candidates {
		if hist[idx] >= minHeight {
			tall = append(tall, idx)
		}
	}

	// Enforce minimum separation, keeping the tallest of any conflicting pair.
	sort.Slice(tall, func(i, j int) bool { return hist[tall[i]] > hist[tall[j]] })
	var kept []int
	for _, idx := range tall {
		ok := true
		for _, k := range kept {
			if abs(idx-k) < minDistance {
				ok = false
				break
			}
		}
		if ok {
			kept = append(kept, idx)
		}
	}
	sort.Ints(kept)
	return kept
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
