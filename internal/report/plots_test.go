package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/phase_analyzer_go/internal/eos"
	"github.com/user/phase_analyzer_go/internal/parser"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func TestDashedLineStyle(t *testing.T) {
	ln, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
	require.NoError(t, err)

	dashed(ln)
	assert.Equal(t, []vg.Length{vg.Points(5), vg.Points(5)}, ln.LineStyle.Dashes)
}

func TestEOSPlotPNG(t *testing.T) {
	solid := &eos.PhaseResult{Phase: "solid", Params: eos.Params{V0: 20, B0: 50, B0Prime: 4.5}}
	liquid := &eos.PhaseResult{Phase: "liquid", Params: eos.Params{V0: 22, B0: 30, B0Prime: 4.0}}

	volumes := []float64{14, 18, 22, 26}
	data := &parser.PVData{
		Volumes:        volumes,
		SolidPressure:  make([]float64, len(volumes)),
		LiquidPressure: make([]float64, len(volumes)),
	}
	for i, v := range volumes {
		data.SolidPressure[i] = eos.BirchMurnaghan(v, solid.Params.V0, solid.Params.B0, solid.Params.B0Prime)
		data.LiquidPressure[i] = eos.BirchMurnaghan(v, liquid.Params.V0, liquid.Params.B0, liquid.Params.B0Prime)
	}

	png, err := EOSPlotPNG(data, solid, liquid)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(png), "\x89PNG"))
}
