package eos

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"
)

const (
	initB0      = 50.0
	initB0Prime = 4.5

	// bracketFactor extends the root-search bracket beyond the largest
	// measured volume.
	bracketFactor = 1.5
)

// InitialV0 returns the reference-volume starting estimate,
// max(V) + 0.2*(max(V)-min(V)).
func InitialV0(volumes []float64) float64 {
	lo := floats.Min(volumes)
	hi := floats.Max(volumes)
	return hi + 0.2*(hi-lo)
}

// Fit performs a nonlinear least-squares fit of the Birch-Murnaghan EOS to
// (volumes, pressures) for the named phase. Returns ErrFitDiverged if the
// minimizer fails or yields non-finite parameters.
func Fit(phase string, volumes, pressures []float64) (Params, error) {
	if len(volumes) != len(pressures) {
		return Params{}, fmt.Errorf("%s phase: %d volumes vs %d pressures", phase, len(volumes), len(pressures))
	}

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			var ssr float64
			for i, v := range volumes {
				r := BirchMurnaghan(v, x[0], x[1], x[2]) - pressures[i]
				ssr += r * r
			}
			return ssr
		},
	}

	p0 := []float64{InitialV0(volumes), initB0, initB0Prime}
	result, err := optimize.Minimize(problem, p0, nil, &optimize.NelderMead{})
	if err != nil {
		return Params{}, fmt.Errorf("%w: %s phase: %v", ErrFitDiverged, phase, err)
	}
	for _, x := range result.X {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Params{}, fmt.Errorf("%w: %s phase: non-finite parameters", ErrFitDiverged, phase)
		}
	}

	return Params{V0: result.X[0], B0: result.X[1], B0Prime: result.X[2]}, nil
}

// VolumeAtPressure solves P(V) = target over [min(V), 1.5*max(V)] by Brent's
// method. Returns ErrRootNotBracketed if the curve does not cross the target
// pressure inside the bracket.
func VolumeAtPressure(phase string, p Params, volumes []float64, target float64) (float64, error) {
	lo := floats.Min(volumes)
	hi := bracketFactor * floats.Max(volumes)
	root, err := brent(func(v float64) float64 {
		return BirchMurnaghan(v, p.V0, p.B0, p.B0Prime) - target
	}, lo, hi, brentMaxIter)
	if errors.Is(err, errNotBracketed) {
		return 0, fmt.Errorf("%w: %s phase at %g GPa in [%g, %g]", ErrRootNotBracketed, phase, target, lo, hi)
	}
	if err != nil {
		return 0, fmt.Errorf("%s phase at %g GPa: %w", phase, target, err)
	}
	return root, nil
}

// AnalyzePhase fits one phase, solves for the volume at the target pressure
// and evaluates the bulk modulus there.
func AnalyzePhase(phase string, volumes, pressures []float64, target float64) (*PhaseResult, error) {
	params, err := Fit(phase, volumes, pressures)
	if err != nil {
		return nil, err
	}
	vol, err := VolumeAtPressure(phase, params, volumes, target)
	if err != nil {
		return nil, err
	}
	return &PhaseResult{
		Phase:          phase,
		Params:         params,
		TargetPressure: target,
		VolumeAtTarget: vol,
		BulkModulus:    BulkModulus(vol, params.V0, params.B0, params.B0Prime),
	}, nil
}
