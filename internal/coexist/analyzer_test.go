package coexist

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

// stepProfile is 50 samples at low followed by 50 at high.
func stepProfile(low, high float64) []float64 {
	d := make([]float64, 100)
	for i := range d {
		if i < 50 {
			d[i] = low
		} else {
			d[i] = high
		}
	}
	return d
}

func TestAnalyzeDegenerate(t *testing.T) {
	_, err := Analyze([]float64{1.0})
	assert.ErrorIs(t, err, ErrDegenerateProfile, "single sample must be degenerate")

	_, err = Analyze([]float64{2.5, 2.5, 2.5, 2.5})
	assert.ErrorIs(t, err, ErrDegenerateProfile, "zero variance must be degenerate")
}

func TestAnalyzeFractionsSumToOne(t *testing.T) {
	profiles := [][]float64{
		stepProfile(1, 4),
		{0.5, 0.9, 1.1, 2.0, 3.7, 3.9, 4.2, 0.8, 1.4, 2.6, 3.3, 0.7},
	}
	for _, densities := range profiles {
		res, err := Analyze(densities)
		require.NoError(t, err)
		sum := res.Fractions.Solid + res.Fractions.Liquid + res.Fractions.Interface
		assert.InDelta(t, 1.0, sum, 1e-12)
	}
}

func TestAnalyzeThresholdsAreConservative(t *testing.T) {
	densities := []float64{0.5, 0.9, 1.1, 2.0, 3.7, 3.9, 4.2, 0.8, 1.4, 2.6, 3.3, 0.7, 2.2, 1.9, 3.1, 2.8}
	res, err := Analyze(densities)
	require.NoError(t, err)

	mean := stat.Mean(densities, nil)
	std := stat.PopStdDev(densities, nil)
	sorted := append([]float64(nil), densities...)
	sort.Float64s(sorted)
	p25 := stat.Quantile(0.25, stat.LinInterp, sorted, nil)
	p75 := stat.Quantile(0.75, stat.LinInterp, sorted, nil)
	iqr := p75 - p25

	assert.LessOrEqual(t, res.Thresholds.High, mean+1.5*std)
	assert.LessOrEqual(t, res.Thresholds.High, p75+1.5*iqr)
	assert.GreaterOrEqual(t, res.Thresholds.Low, mean-1.5*std)
	assert.GreaterOrEqual(t, res.Thresholds.Low, p25-1.5*iqr)
}

func TestAnalyzeStepProfile(t *testing.T) {
	// Two clean levels: cv = 1.5/2.5 > 0.5 and the bimodality coefficient is
	// high, but the conservative thresholds swallow both levels, the histogram
	// mass sits in the boundary bins, and the single step is too small for the
	// gradient criteria. Score 2.
	res, err := Analyze(stepProfile(1, 4))
	require.NoError(t, err)

	assert.Equal(t, 2, res.Score)
	assert.Equal(t, StatePossibleCoexistence, res.State)
	assert.True(t, res.Breakdown.HighCV)
	assert.True(t, res.Breakdown.BimodalityCoeff)
	assert.False(t, res.Breakdown.PhaseBalance)
	assert.Equal(t, 1.0, res.Fractions.Interface)

	assert.Len(t, res.Labels, 100)
	for _, lbl := range res.Labels {
		assert.Equal(t, PhaseInterface, lbl)
	}
	assert.Empty(t, res.SolidRegions)
	assert.Empty(t, res.LiquidRegions)
}

func TestAnalyzeCVBoundaryDoesNotScore(t *testing.T) {
	// mean 1.0, population std 0.5: cv is exactly 0.5 and the strict > must
	// not award the high_cv point.
	res, err := Analyze([]float64{0.5, 0.5, 1.5, 1.5})
	require.NoError(t, err)

	assert.InDelta(t, 0.5, res.Stats.CV, 1e-15)
	assert.False(t, res.Breakdown.HighCV)
}

func TestAnalyzeScoreRange(t *testing.T) {
	profiles := [][]float64{
		stepProfile(1, 4),
		stepProfile(0.1, 9),
		{1, 2, 3, 4, 5, 6, 7, 8},
		{0.5, 4.2, 0.6, 4.1, 0.4, 4.3, 0.5, 4.0, 0.7, 4.4, 0.5, 4.2},
	}
	for _, densities := range profiles {
		res, err := Analyze(densities)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.Score, 0)
		assert.LessOrEqual(t, res.Score, 6)
		assert.Equal(t, res.Score, res.Breakdown.Total())
	}
}

func TestAnalyzeRegionsMatchLabels(t *testing.T) {
	// Narrow IQR around the dominant level pins both thresholds at 2.0, so
	// the tails classify as solid/liquid and form contiguous regions.
	densities := make([]float64, 0, 100)
	for i := 0; i < 15; i++ {
		densities = append(densities, 0.5)
	}
	for i := 0; i < 70; i++ {
		densities = append(densities, 2.0)
	}
	for i := 0; i < 15; i++ {
		densities = append(densities, 3.5)
	}

	res, err := Analyze(densities)
	require.NoError(t, err)

	assert.Equal(t, []Region{{Start: 0, End: 14}}, res.LiquidRegions)
	assert.Equal(t, []Region{{Start: 85, End: 99}}, res.SolidRegions)
	assert.True(t, res.Breakdown.PhaseBalance)
	assert.InDelta(t, 0.15, res.Fractions.Solid, 1e-12)
	assert.InDelta(t, 0.15, res.Fractions.Liquid, 1e-12)
}

func TestClassifyState(t *testing.T) {
	tests := []struct {
		name   string
		score  int
		solid  float64
		liquid float64
		want   SystemState
	}{
		{"strong", 4, 0, 0, StateStrongCoexistence},
		{"strong max", 6, 0, 0, StateStrongCoexistence},
		{"coexistence", 3, 0, 0, StateCoexistence},
		{"possible", 2, 0, 0, StatePossibleCoexistence},
		{"mostly solid", 1, 0.9, 0.05, StatePredominantlySolid},
		{"mostly liquid", 0, 0.05, 0.9, StatePredominantlyLiquid},
		{"single phase", 1, 0.5, 0.3, StateSinglePhase},
		{"boundary fraction", 0, 0.8, 0.8, StateSinglePhase},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := classifyState(tc.score, Fractions{Solid: tc.solid, Liquid: tc.liquid})
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAnalyzeStatisticsFinite(t *testing.T) {
	res, err := Analyze([]float64{0.5, 0.9, 1.1, 2.0, 3.7, 3.9, 4.2, 0.8, 1.4, 2.6})
	require.NoError(t, err)

	for name, v := range map[string]float64{
		"mean":     res.Stats.Mean,
		"std":      res.Stats.Std,
		"cv":       res.Stats.CV,
		"skewness": res.Stats.Skewness,
		"kurtosis": res.Stats.Kurtosis,
		"bc":       res.Stats.BimodalityCoeff,
	} {
		assert.False(t, math.IsNaN(v), "%s is NaN", name)
		assert.False(t, math.IsInf(v, 0), "%s is Inf", name)
	}
}
