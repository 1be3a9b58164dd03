package eos

import "errors"

// ErrFitDiverged is returned when the least-squares fit fails to converge or
// produces non-finite parameters. No fallback parameters are substituted.
var ErrFitDiverged = errors.New("equation-of-state fit did not converge")

// ErrRootNotBracketed is returned when the fitted pressure curve has no sign
// change against the target pressure inside the search bracket.
var ErrRootNotBracketed = errors.New("target pressure not bracketed by fitted curve")

// Params are the fitted third-order Birch-Murnaghan parameters: reference
// volume V0, bulk modulus B0 and its pressure derivative B0'.
type Params struct {
	V0      float64
	B0      float64
	B0Prime float64
}

// PhaseResult holds the per-phase fit and the derived scalars at the target
// pressure.
type PhaseResult struct {
	Phase          string // "solid" or "liquid"
	Params         Params
	TargetPressure float64
	VolumeAtTarget float64
	BulkModulus    float64 // evaluated at VolumeAtTarget
}
