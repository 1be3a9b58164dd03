package report

import (
	"fmt"
	"image/color"
	"os"

	"github.com/user/phase_analyzer_go/internal/eos"
	"github.com/user/phase_analyzer_go/internal/parser"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const fitCurveSamples = 200

// eosPlot overlays both phases' measured points and fitted Birch-Murnaghan
// curves.
func eosPlot(data *parser.PVData, solid, liquid *eos.PhaseResult) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Birch-Murnaghan EOS Fitting"
	p.X.Label.Text = "Volume (A^3)"
	p.Y.Label.Text = "Pressure (GPa)"

	for _, set := range []struct {
		label     string
		pressures []float64
		res       *eos.PhaseResult
		col       color.Color
	}{
		{"Solid", data.SolidPressure, solid, solidColor},
		{"Liquid", data.LiquidPressure, liquid, liquidColor},
	} {
		pts := make(plotter.XYs, data.Len())
		for i, v := range data.Volumes {
			pts[i] = plotter.XY{X: v, Y: set.pressures[i]}
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, fmt.Errorf("%s data: %w", set.label, err)
		}
		sc.GlyphStyle.Color = set.col
		sc.GlyphStyle.Radius = vg.Points(2.5)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(sc)
		p.Legend.Add(set.label+" Data", sc)

		vmin, vmax := spanX(data.Volumes)
		curve := make(plotter.XYs, fitCurveSamples)
		step := (vmax - vmin) / float64(fitCurveSamples-1)
		pr := set.res.Params
		for i := range curve {
			v := vmin + float64(i)*step
			curve[i] = plotter.XY{X: v, Y: eos.BirchMurnaghan(v, pr.V0, pr.B0, pr.B0Prime)}
		}
		ln, err := plotter.NewLine(curve)
		if err != nil {
			return nil, fmt.Errorf("%s fit: %w", set.label, err)
		}
		ln.Color = set.col
		ln.LineStyle.Width = vg.Points(1.5)
		ln.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(3)}
		p.Add(ln)
		p.Legend.Add(set.label+" Fit", ln)
	}

	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	return p, nil
}

// RenderEOSPlot writes the data + fitted-curve overlay to a PNG file.
func RenderEOSPlot(path string, data *parser.PVData, solid, liquid *eos.PhaseResult) error {
	p, err := eosPlot(data, solid, liquid)
	if err != nil {
		return err
	}
	b, err := plotPNG(p, vg.Points(600), vg.Points(380))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// EOSPlotPNG renders the overlay plot to PNG bytes for PDF embedding.
func EOSPlotPNG(data *parser.PVData, solid, liquid *eos.PhaseResult) ([]byte, error) {
	p, err := eosPlot(data, solid, liquid)
	if err != nil {
		return nil, err
	}
	return plotPNG(p, vg.Points(600), vg.Points(380))
}
