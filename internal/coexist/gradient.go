package coexist

import "math"

// absGradient returns the magnitude of the unit-spacing numerical gradient:
// central differences in the interior, one-sided at the boundaries. Sample
// spacing is taken as 1 regardless of the position column.
func absGradient(values []float64) []float64 {
	n := len(values)
	g := make([]float64, n)
	if n < 2 {
		return g
	}
	g[0] = math.Abs(values[1] - values[0])
	g[n-1] = math.Abs(values[n-1] - values[n-2])
	for i := 1; i < n-1; i++ {
		g[i] = math.Abs((values[i+1] - values[i-1]) / 2)
	}
	return g
}
