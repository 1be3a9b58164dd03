// Command coexist scores a 1-D density profile for solid-liquid coexistence.
//
// Usage: coexist [-plot out.png] [-pdf report.pdf] [density.dat]
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/user/phase_analyzer_go/internal/coexist"
	"github.com/user/phase_analyzer_go/internal/parser"
	"github.com/user/phase_analyzer_go/internal/report"
)

const defaultInput = "density.dat"

func main() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))

	plotPath := flag.String("plot", "", "write the 2x2 diagnostic plot grid to this PNG file")
	pdfPath := flag.String("pdf", "", "write a PDF report to this file")
	flag.Parse()

	input := defaultInput
	if flag.NArg() > 0 {
		input = flag.Arg(0)
	}

	slog.Info("loading density profile", "path", input)
	profile, err := parser.LoadDensityProfile(input)
	if err != nil {
		slog.Error("load failed", "err", err)
		os.Exit(1)
	}
	slog.Info("profile loaded", "samples", profile.Len())

	res, err := coexist.Analyze(profile.Densities)
	if err != nil {
		slog.Error("analysis failed", "err", err)
		os.Exit(1)
	}

	report.WriteCoexistenceSummary(os.Stdout, res)

	if *plotPath != "" {
		slog.Info("rendering diagnostic plots", "path", *plotPath)
		if err := report.RenderCoexistenceGrid(*plotPath, profile, res); err != nil {
			slog.Error("plotting failed", "err", err)
			os.Exit(1)
		}
	}

	if *pdfPath != "" {
		slog.Info("building PDF report", "path", *pdfPath)
		plots, err := report.CoexistencePlotPNGs(profile, res)
		if err != nil {
			slog.Error("plotting failed", "err", err)
			os.Exit(1)
		}
		if err := report.BuildCoexistencePDF(*pdfPath, res, plots); err != nil {
			slog.Error("PDF generation failed", "err", err)
			os.Exit(1)
		}
	}
}
