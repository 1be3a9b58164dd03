// Command eosfit fits the Birch-Murnaghan equation of state to two-phase
// pressure-volume data and solves for the volume at a target pressure.
//
// Usage: eosfit [-target 0.5] [-plot out.png] [-pdf report.pdf] [VP.dat]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/user/phase_analyzer_go/internal/eos"
	"github.com/user/phase_analyzer_go/internal/parser"
	"github.com/user/phase_analyzer_go/internal/report"
)

const (
	defaultInput  = "VP.dat"
	defaultTarget = 0.5 // GPa
)

func main() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))

	target := flag.Float64("target", defaultTarget, "target pressure in GPa")
	plotPath := flag.String("plot", "", "write the data + fit overlay to this PNG file")
	pdfPath := flag.String("pdf", "", "write a PDF report to this file")
	flag.Parse()

	input := defaultInput
	if flag.NArg() > 0 {
		input = flag.Arg(0)
	}

	slog.Info("loading PV data", "path", input)
	data, err := parser.LoadPVData(input)
	if err != nil {
		slog.Error("load failed", "err", err)
		os.Exit(1)
	}
	slog.Info("data loaded", "rows", data.Len())

	report.WriteEOSHeader(os.Stdout, *target, eos.InitialV0(data.Volumes))

	solid, err := eos.AnalyzePhase("solid", data.Volumes, data.SolidPressure, *target)
	if err != nil {
		slog.Error("solid phase analysis failed", "err", err)
		os.Exit(1)
	}
	liquid, err := eos.AnalyzePhase("liquid", data.Volumes, data.LiquidPressure, *target)
	if err != nil {
		slog.Error("liquid phase analysis failed", "err", err)
		os.Exit(1)
	}

	report.WriteEOSPhase(os.Stdout, solid)
	fmt.Println()
	report.WriteEOSPhase(os.Stdout, liquid)

	if *plotPath != "" {
		slog.Info("rendering fit overlay", "path", *plotPath)
		if err := report.RenderEOSPlot(*plotPath, data, solid, liquid); err != nil {
			slog.Error("plotting failed", "err", err)
			os.Exit(1)
		}
	}

	if *pdfPath != "" {
		slog.Info("building PDF report", "path", *pdfPath)
		png, err := report.EOSPlotPNG(data, solid, liquid)
		if err != nil {
			slog.Error("plotting failed", "err", err)
			os.Exit(1)
		}
		if err := report.BuildEOSPDF(*pdfPath, solid, liquid, png); err != nil {
			slog.Error("PDF generation failed", "err", err)
			os.Exit(1)
		}
	}
}
