// Package coexist classifies a 1-D density profile as solid, liquid or
// solid-liquid coexistence using adaptive thresholds and a six-criterion
// heuristic score.
package coexist

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

const (
	// thresholdK scales the statistical (mean +/- k*std) threshold pair.
	thresholdK = 1.5
	// fenceK scales the IQR for the Tukey outlier fences.
	fenceK = 1.5

	cvThreshold         = 0.5
	balanceMinFraction  = 0.1
	bimodalityThreshold = 0.55
	minInterfaceCount   = 2
	sharpGradientFactor = 0.1
	dominantFraction    = 0.8

	strongCoexistenceScore   = 4
	coexistenceScore         = 3
	possibleCoexistenceScore = 2
)

// Analyze runs the full coexistence pipeline over a density array.
// Returns ErrDegenerateProfile when the statistics are undefined (fewer than
// two samples or zero variance).
func Analyze(densities []float64) (*Result, error) {
	n := len(densities)
	if n < 2 {
		return nil, ErrDegenerateProfile
	}

	mean := stat.Mean(densities, nil)
	std := stat.PopStdDev(densities, nil)
	if std == 0 {
		return nil, ErrDegenerateProfile
	}

	skewness := stat.Skew(densities, nil)
	kurtosis := stat.ExKurtosis(densities, nil)

	stats := Statistics{
		Mean:            mean,
		Std:             std,
		CV:              std / mean,
		Skewness:        skewness,
		Kurtosis:        kurtosis,
		BimodalityCoeff: (skewness*skewness + 1) / (kurtosis + 3),
	}

	// Method 1: statistical bounds. Method 2: Tukey fences. The final pair is
	// the narrower of the two brackets.
	sorted := append([]float64(nil), densities...)
	sort.Float64s(sorted)
	p25 := stat.Quantile(0.25, stat.LinInterp, sorted, nil)
	p75 := stat.Quantile(0.75, stat.LinInterp, sorted, nil)
	iqr := p75 - p25

	thresholds := Thresholds{
		High: min(mean+thresholdK*std, p75+fenceK*iqr),
		Low:  max(mean-thresholdK*std, p25-fenceK*iqr),
	}

	labels := make([]Phase, n)
	solidMask := make([]bool, n)
	liquidMask := make([]bool, n)
	var nSolid, nLiquid int
	for i, d := range densities {
		switch {
		case d > thresholds.High:
			labels[i] = PhaseSolid
			solidMask[i] = true
			nSolid++
		case d < thresholds.Low:
			labels[i] = PhaseLiquid
			liquidMask[i] = true
			nLiquid++
		default:
			labels[i] = PhaseInterface
		}
	}

	fractions := Fractions{
		Solid:     float64(nSolid) / float64(n),
		Liquid:    float64(nLiquid) / float64(n),
		Interface: float64(n-nSolid-nLiquid) / float64(n),
	}

	hist := histogramCounts(densities, histogramBins(n))
	peaks := findPeaks(hist, minPeakHeightFraction*float64(n), len(hist)/10)

	gradients := absGradient(densities)
	meanGradient := stat.Mean(gradients, nil)
	maxGradient := 0.0
	sharpCount := 0
	for _, g := range gradients {
		if g > maxGradient {
			maxGradient = g
		}
		if g > mean*sharpGradientFactor {
			sharpCount++
		}
	}

	metrics := InterfaceMetrics{
		PeakCount:    len(peaks),
		MeanGradient: meanGradient,
		MaxGradient:  maxGradient,
		SharpCount:   sharpCount,
	}

	breakdown := ScoreBreakdown{
		Bimodal:            metrics.PeakCount >= 2,
		HighCV:             stats.CV > cvThreshold,
		PhaseBalance:       fractions.Solid > balanceMinFraction && fractions.Liquid > balanceMinFraction,
		SharpGradients:     meanGradient > std,
		BimodalityCoeff:    stats.BimodalityCoeff > bimodalityThreshold,
		MultipleInterfaces: sharpCount > minInterfaceCount,
	}
	score := breakdown.Total()

	return &Result{
		State:         classifyState(score, fractions),
		Score:         score,
		Breakdown:     breakdown,
		Stats:         stats,
		Thresholds:    thresholds,
		Fractions:     fractions,
		Interfaces:    metrics,
		SolidRegions:  FindContinuousRegions(solidMask),
		LiquidRegions: FindContinuousRegions(liquidMask),
		Labels:        labels,
		Gradients:     gradients,
	}, nil
}

// classifyState maps the score and the phase fractions onto a system state.
// The rules are evaluated in priority order; the first match wins.
func classifyState(score int, fractions Fractions) SystemState {
	switch {
	case score >= strongCoexistenceScore:
		return StateStrongCoexistence
	case score >= coexistenceScore:
		return StateCoexistence
	case score >= possibleCoexistenceScore:
		return StatePossibleCoexistence
	case fractions.Solid > dominantFraction:
		return StatePredominantlySolid
	case fractions.Liquid > dominantFraction:
		return StatePredominantlyLiquid
	default:
		return StateSinglePhase
	}
}
