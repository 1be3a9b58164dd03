package coexist

import "errors"

// ErrDegenerateProfile is returned when the density profile has fewer than two
// samples or zero variance, which makes the coefficient of variation and the
// adaptive thresholds undefined.
var ErrDegenerateProfile = errors.New("degenerate density profile: need at least two samples with nonzero variance")

// Phase is the per-sample classification against the adaptive thresholds.
type Phase string

const (
	PhaseSolid     Phase = "SOLID"
	PhaseLiquid    Phase = "LIQUID"
	PhaseInterface Phase = "INTERFACE"
)

// SystemState is the overall classification of the profile.
type SystemState string

const (
	StateStrongCoexistence   SystemState = "STRONG SOLID-LIQUID COEXISTENCE"
	StateCoexistence         SystemState = "SOLID-LIQUID COEXISTENCE"
	StatePossibleCoexistence SystemState = "POSSIBLE COEXISTENCE"
	StatePredominantlySolid  SystemState = "PREDOMINANTLY SOLID"
	StatePredominantlyLiquid SystemState = "PREDOMINANTLY LIQUID"
	StateSinglePhase         SystemState = "SINGLE PHASE"
)

// Statistics holds the summary statistics of the density array.
//
// Std is the population standard deviation (division by N). Skewness is the
// sample-adjusted Fisher-Pearson coefficient and Kurtosis the sample excess
// kurtosis, both as computed by gonum/stat.
type Statistics struct {
	Mean            float64
	Std             float64
	CV              float64
	Skewness        float64
	Kurtosis        float64
	BimodalityCoeff float64
}

// Thresholds are the final adaptive density thresholds. High is the minimum of
// the mean+1.5*std bound and the Tukey upper fence; Low is the maximum of the
// corresponding lower bounds. For pathological inputs the bracket can invert
// (High < Low); that is intentional and left unguarded.
type Thresholds struct {
	High float64
	Low  float64
}

// Fractions are the per-phase sample fractions. The three masks are mutually
// exclusive and exhaustive, so the fractions sum to exactly 1.
type Fractions struct {
	Solid     float64
	Liquid    float64
	Interface float64
}

// InterfaceMetrics summarizes the histogram peaks and the density gradient.
type InterfaceMetrics struct {
	PeakCount    int
	MeanGradient float64
	MaxGradient  float64
	SharpCount   int // samples where |gradient| > 0.1 * mean density
}

// Criterion is one of the six scored coexistence indicators.
type Criterion struct {
	Name string
	Met  bool
}

// ScoreBreakdown records which of the six coexistence criteria were met.
type ScoreBreakdown struct {
	Bimodal            bool
	HighCV             bool
	PhaseBalance       bool
	SharpGradients     bool
	BimodalityCoeff    bool
	MultipleInterfaces bool
}

// Criteria returns the six criteria in their fixed reporting order.
func (b ScoreBreakdown) Criteria() []Criterion {
	return []Criterion{
		{"bimodal", b.Bimodal},
		{"high_cv", b.HighCV},
		{"phase_balance", b.PhaseBalance},
		{"sharp_gradients", b.SharpGradients},
		{"bimodality_coeff", b.BimodalityCoeff},
		{"multiple_interfaces", b.MultipleInterfaces},
	}
}

// Total returns the coexistence score, one point per met criterion.
func (b ScoreBreakdown) Total() int {
	score := 0
	for _, c := range b.Criteria() {
		if c.Met {
			score++
		}
	}
	return score
}

// Region is an inclusive index interval [Start, End] over the profile where a
// phase mask is continuously true.
type Region struct {
	Start int
	End   int
}

// Result holds the full coexistence analysis of one density profile. It is
// computed in a single pass and immutable afterwards.
type Result struct {
	State      SystemState
	Score      int
	Breakdown  ScoreBreakdown
	Stats      Statistics
	Thresholds Thresholds
	Fractions  Fractions
	Interfaces InterfaceMetrics

	SolidRegions  []Region
	LiquidRegions []Region
	Labels        []Phase

	// Gradients is |d density / d index| per sample, kept for plotting.
	Gradients []float64
}
