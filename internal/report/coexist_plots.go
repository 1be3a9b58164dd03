// Package report renders text summaries, gonum/plot figures and PDF reports
// for the analysis results.
package report

import (
	"bytes"
	"fmt"
	"image/color"
	"os"

	"github.com/user/phase_analyzer_go/internal/coexist"
	"github.com/user/phase_analyzer_go/internal/parser"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const histogramPlotBins = 30

var (
	solidColor     = color.RGBA{R: 200, A: 255}
	liquidColor    = color.RGBA{B: 200, A: 255}
	interfaceColor = color.Gray{Y: 128}
	gradientColor  = color.RGBA{G: 150, A: 255}
	meanLineColor  = color.RGBA{R: 255, G: 165, A: 255}
)

func dashed(ln *plotter.Line) *plotter.Line {
	ln.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}
	return ln
}

// phaseScatterPlot is the density profile colored by phase classification,
// with dashed lines at the two adaptive thresholds.
func phaseScatterPlot(profile *parser.DensityProfile, res *coexist.Result) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Density Profile with Phase Classification"
	p.X.Label.Text = "Position"
	p.Y.Label.Text = "Density"

	for _, phase := range []struct {
		label coexist.Phase
		col   color.Color
	}{
		{coexist.PhaseSolid, solidColor},
		{coexist.PhaseLiquid, liquidColor},
		{coexist.PhaseInterface, interfaceColor},
	} {
		var pts plotter.XYs
		for i, lbl := range res.Labels {
			if lbl == phase.label {
				pts = append(pts, plotter.XY{X: profile.Positions[i], Y: profile.Densities[i]})
			}
		}
		if len(pts) == 0 {
			continue
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, fmt.Errorf("scatter for %s: %w", phase.label, err)
		}
		sc.GlyphStyle.Color = phase.col
		sc.GlyphStyle.Radius = vg.Points(1.5)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(sc)
		p.Legend.Add(string(phase.label), sc)
	}

	xmin, xmax := spanX(profile.Positions)
	for _, thr := range []struct {
		y   float64
		col color.Color
	}{
		{res.Thresholds.High, solidColor},
		{res.Thresholds.Low, liquidColor},
	} {
		ln, err := plotter.NewLine(plotter.XYs{{X: xmin, Y: thr.y}, {X: xmax, Y: thr.y}})
		if err != nil {
			return nil, err
		}
		ln.Color = thr.col
		p.Add(dashed(ln))
	}

	p.Legend.Top = true
	return p, nil
}

// densityHistogramPlot is the density distribution with dashed vertical
// threshold markers.
func densityHistogramPlot(profile *parser.DensityProfile, res *coexist.Result) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Density Distribution"
	p.X.Label.Text = "Density"
	p.Y.Label.Text = "Frequency"

	h, err := plotter.NewHist(plotter.Values(profile.Densities), histogramPlotBins)
	if err != nil {
		return nil, fmt.Errorf("histogram: %w", err)
	}
	h.FillColor = color.RGBA{R: 100, G: 149, B: 237, A: 180}
	p.Add(h)

	top := maxBinCount(profile.Densities, histogramPlotBins)
	for _, thr := range []struct {
		x     float64
		col   color.Color
		label string
	}{
		{res.Thresholds.High, solidColor, "High threshold"},
		{res.Thresholds.Low, liquidColor, "Low threshold"},
	} {
		ln, err := plotter.NewLine(plotter.XYs{{X: thr.x, Y: 0}, {X: thr.x, Y: top}})
		if err != nil {
			return nil, err
		}
		ln.Color = thr.col
		p.Add(dashed(ln))
		p.Legend.Add(thr.label, ln)
	}

	p.Legend.Top = true
	return p, nil
}

// gradientPlot is the |gradient| trace with a dashed mean-gradient line.
func gradientPlot(profile *parser.DensityProfile, res *coexist.Result) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Interface Sharpness Analysis"
	p.X.Label.Text = "Position"
	p.Y.Label.Text = "|Gradient|"

	pts := make(plotter.XYs, len(res.Gradients))
	for i, g := range res.Gradients {
		pts[i] = plotter.XY{X: profile.Positions[i], Y: g}
	}
	trace, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("gradient trace: %w", err)
	}
	trace.Color = gradientColor
	p.Add(trace)

	xmin, xmax := spanX(profile.Positions)
	meanLn, err := plotter.NewLine(plotter.XYs{
		{X: xmin, Y: res.Interfaces.MeanGradient},
		{X: xmax, Y: res.Interfaces.MeanGradient},
	})
	if err != nil {
		return nil, err
	}
	meanLn.Color = meanLineColor
	p.Add(dashed(meanLn))
	p.Legend.Add("Mean gradient", meanLn)

	p.Legend.Top = true
	return p, nil
}

// scorePlot is the six-criterion bar chart.
func scorePlot(res *coexist.Result) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Coexistence Criteria Breakdown"
	p.Y.Label.Text = "Score"

	criteria := res.Breakdown.Criteria()
	vals := make(plotter.Values, len(criteria))
	names := make([]string, len(criteria))
	for i, c := range criteria {
		names[i] = c.Name
		if c.Met {
			vals[i] = 1
		}
	}

	bars, err := plotter.NewBarChart(vals, vg.Points(18))
	if err != nil {
		return nil, fmt.Errorf("score bars: %w", err)
	}
	bars.Color = color.RGBA{R: 100, G: 149, B: 237, A: 255}
	p.Add(bars)
	p.NominalX(names...)
	p.Y.Min = 0
	p.Y.Max = 1.2
	p.X.Tick.Label.Rotation = 0.6
	p.X.Tick.Label.XAlign = draw.XRight

	return p, nil
}

// coexistencePanels builds the four diagnostic plots in their 2x2 order.
func coexistencePanels(profile *parser.DensityProfile, res *coexist.Result) ([]*plot.Plot, error) {
	scatter, err := phaseScatterPlot(profile, res)
	if err != nil {
		return nil, err
	}
	hist, err := densityHistogramPlot(profile, res)
	if err != nil {
		return nil, err
	}
	grad, err := gradientPlot(profile, res)
	if err != nil {
		return nil, err
	}
	score, err := scorePlot(res)
	if err != nil {
		return nil, err
	}
	return []*plot.Plot{scatter, hist, grad, score}, nil
}

// RenderCoexistenceGrid writes the four diagnostic plots as a single 2x2 PNG.
func RenderCoexistenceGrid(path string, profile *parser.DensityProfile, res *coexist.Result) error {
	panels, err := coexistencePanels(profile, res)
	if err != nil {
		return err
	}

	img := vgimg.New(vg.Points(860), vg.Points(700))
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 2, Cols: 2,
		PadX: vg.Points(10), PadY: vg.Points(10),
		PadTop: vg.Points(5), PadBottom: vg.Points(5),
		PadLeft: vg.Points(5), PadRight: vg.Points(5),
	}
	canvases := plot.Align([][]*plot.Plot{
		{panels[0], panels[1]},
		{panels[2], panels[3]},
	}, tiles, dc)
	panels[0].Draw(canvases[0][0])
	panels[1].Draw(canvases[0][1])
	panels[2].Draw(canvases[1][0])
	panels[3].Draw(canvases[1][1])

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// CoexistencePlotPNGs renders each diagnostic plot to PNG bytes, keyed for
// PDF embedding.
func CoexistencePlotPNGs(profile *parser.DensityProfile, res *coexist.Result) (map[string][]byte, error) {
	panels, err := coexistencePanels(profile, res)
	if err != nil {
		return nil, err
	}
	keys := []string{"profile", "histogram", "gradient", "score"}
	images := make(map[string][]byte, len(panels))
	for i, p := range panels {
		b, err := plotPNG(p, vg.Points(500), vg.Points(320))
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", keys[i], err)
		}
		images[keys[i]] = b
	}
	return images, nil
}

// plotPNG renders a single plot to PNG bytes.
func plotPNG(p *plot.Plot, w, h vg.Length) ([]byte, error) {
	writer, err := p.WriterTo(w, h, "png")
	if err != nil {
		return nil, err
	}
	buf := new(bytes.Buffer)
	if _, err := writer.WriteTo(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func spanX(xs []float64) (float64, float64) {
	lo, hi := xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	return lo, hi
}

// maxBinCount returns the tallest bin of a uniform histogram over the data
// range, used to size vertical marker lines.
func maxBinCount(values []float64, bins int) float64 {
	lo, hi := spanX(values)
	if lo == hi {
		return float64(len(values))
	}
	counts := make([]float64, bins)
	width := (hi - lo) / float64(bins)
	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}
	top := 0.0
	for _, c := range counts {
		if c > top {
			top = c
		}
	}
	return top
}
