package coexist

// FindContinuousRegions scans mask left to right and returns the maximal
// disjoint inclusive index intervals where it is continuously true. A run
// still open at the end of the mask is closed at the last index.
func FindContinuousRegions(mask []bool) []Region {
	var regions []Region
	start := -1

	for i, v := range mask {
		if v && start < 0 {
			start = i
		} else if !v && start >= 0 {
			regions = append(regions, Region{Start: start, End: i - 1})
			start = -1
		}
	}
	if start >= 0 {
		regions = append(regions, Region{Start: start, End: len(mask) - 1})
	}

	return regions
}
