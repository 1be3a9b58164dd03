package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/user/phase_analyzer_go/internal/coexist"
	"github.com/user/phase_analyzer_go/internal/eos"
)

// WriteCoexistenceSummary writes the formatted analysis summary.
func WriteCoexistenceSummary(w io.Writer, res *coexist.Result) {
	rule := strings.Repeat("=", 50)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "COEXISTENCE ANALYSIS RESULTS")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "System State: %s\n", res.State)
	fmt.Fprintf(w, "Coexistence Score: %d/6\n", res.Score)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "STATISTICAL PARAMETERS:")
	fmt.Fprintf(w, "  Mean Density: %.3f\n", res.Stats.Mean)
	fmt.Fprintf(w, "  Std Deviation: %.3f\n", res.Stats.Std)
	fmt.Fprintf(w, "  Coeff. of Variation: %.3f\n", res.Stats.CV)
	fmt.Fprintf(w, "  Bimodality Coefficient: %.3f\n", res.Stats.BimodalityCoeff)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "PHASE FRACTIONS:")
	fmt.Fprintf(w, "  Solid: %.3f (%.1f%%)\n", res.Fractions.Solid, res.Fractions.Solid*100)
	fmt.Fprintf(w, "  Liquid: %.3f (%.1f%%)\n", res.Fractions.Liquid, res.Fractions.Liquid*100)
	fmt.Fprintf(w, "  Interface: %.3f (%.1f%%)\n", res.Fractions.Interface, res.Fractions.Interface*100)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "INTERFACE ANALYSIS:")
	fmt.Fprintf(w, "  Density Peaks: %d\n", res.Interfaces.PeakCount)
	fmt.Fprintf(w, "  Sharp Interfaces: %d\n", res.Interfaces.SharpCount)
	fmt.Fprintf(w, "  Mean Gradient: %.3f\n", res.Interfaces.MeanGradient)
}

// WriteEOSHeader writes the fitting header with the target pressure and the
// shared initial estimates.
func WriteEOSHeader(w io.Writer, target, v0Init float64) {
	fmt.Fprintf(w, "Birch-Murnaghan EOS Fitting - Target: %g GPa\n", target)
	fmt.Fprintf(w, "Initial estimates for solid: V0=%d, B0=50, B0'=4.5\n", int(v0Init))
	fmt.Fprintf(w, "Initial estimates for liquid: V0=%d, B0=50, B0'=4.5\n", int(v0Init))
}

// WriteEOSPhase writes one phase's fitted parameters and derived scalars.
func WriteEOSPhase(w io.Writer, res *eos.PhaseResult) {
	fmt.Fprintf(w, "%s Phase:\n", titleCase(res.Phase))
	fmt.Fprintf(w, "  V0=%.2f, B0=%.2f, B0'=%.2f\n", res.Params.V0, res.Params.B0, res.Params.B0Prime)
	fmt.Fprintf(w, "  Volume at %g GPa: %.2f A^3\n", res.TargetPressure, res.VolumeAtTarget)
	fmt.Fprintf(w, "  Bulk Modulus: %.2f GPa\n", res.BulkModulus)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
