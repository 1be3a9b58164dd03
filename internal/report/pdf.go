package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/user/phase_analyzer_go/internal/coexist"
	"github.com/user/phase_analyzer_go/internal/eos"
)

const (
	pdfMarginMM   = 12.0
	pdfPageWidth  = 210.0 // A4 portrait
	pdfContentW   = pdfPageWidth - 2*pdfMarginMM
	pdfLineHeight = 6.0
)

// pdfDoc wraps gofpdf with the small set of layout helpers the reports need.
type pdfDoc struct {
	pdf *gofpdf.Fpdf
}

func newPDFDoc() *pdfDoc {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMarginMM, pdfMarginMM, pdfMarginMM)
	pdf.SetAutoPageBreak(true, pdfMarginMM)
	pdf.AddPage()
	return &pdfDoc{pdf: pdf}
}

func (d *pdfDoc) heading(text string) {
	d.pdf.SetFont("Arial", "B", 15)
	d.pdf.CellFormat(pdfContentW, 9, text, "", 1, "C", false, 0, "")
	d.pdf.Ln(2)
}

func (d *pdfDoc) section(text string) {
	d.pdf.SetFont("Arial", "B", 12)
	d.pdf.CellFormat(pdfContentW, 7, text, "", 1, "L", false, 0, "")
}

func (d *pdfDoc) line(text string) {
	d.pdf.SetFont("Arial", "", 10)
	d.pdf.CellFormat(pdfContentW, pdfLineHeight, text, "", 1, "L", false, 0, "")
}

// keyValueTable renders a two-column bordered table.
func (d *pdfDoc) keyValueTable(rows [][2]string) {
	d.pdf.SetFont("Arial", "", 10)
	for _, row := range rows {
		d.pdf.CellFormat(pdfContentW*0.45, pdfLineHeight, row[0], "1", 0, "L", false, 0, "")
		d.pdf.CellFormat(pdfContentW*0.55, pdfLineHeight, row[1], "1", 1, "L", false, 0, "")
	}
	d.pdf.Ln(3)
}

// image embeds PNG bytes at the current position, scaled to the content width
// fraction given.
func (d *pdfDoc) image(name string, png []byte, widthFrac, aspect float64) {
	d.pdf.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(png))
	w := pdfContentW * widthFrac
	h := w * aspect
	d.pdf.ImageOptions(name, pdfMarginMM+(pdfContentW-w)/2, d.pdf.GetY(), w, h, true, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	d.pdf.Ln(2)
}

func (d *pdfDoc) write(path string) error {
	if err := d.pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// BuildCoexistencePDF writes a report with the summary tables and the four
// diagnostic plots.
func BuildCoexistencePDF(path string, res *coexist.Result, plots map[string][]byte) error {
	doc := newPDFDoc()
	doc.heading("Solid-Liquid Coexistence Analysis")
	doc.line(fmt.Sprintf("System State: %s", res.State))
	doc.line(fmt.Sprintf("Coexistence Score: %d/6", res.Score))
	doc.pdf.Ln(2)

	doc.section("Statistical Parameters")
	doc.keyValueTable([][2]string{
		{"Mean Density", fmt.Sprintf("%.3f", res.Stats.Mean)},
		{"Std Deviation", fmt.Sprintf("%.3f", res.Stats.Std)},
		{"Coeff. of Variation", fmt.Sprintf("%.3f", res.Stats.CV)},
		{"Skewness", fmt.Sprintf("%.3f", res.Stats.Skewness)},
		{"Excess Kurtosis", fmt.Sprintf("%.3f", res.Stats.Kurtosis)},
		{"Bimodality Coefficient", fmt.Sprintf("%.3f", res.Stats.BimodalityCoeff)},
	})

	doc.section("Phase Fractions")
	doc.keyValueTable([][2]string{
		{"Solid", fmt.Sprintf("%.3f (%.1f%%)", res.Fractions.Solid, res.Fractions.Solid*100)},
		{"Liquid", fmt.Sprintf("%.3f (%.1f%%)", res.Fractions.Liquid, res.Fractions.Liquid*100)},
		{"Interface", fmt.Sprintf("%.3f (%.1f%%)", res.Fractions.Interface, res.Fractions.Interface*100)},
	})

	doc.section("Interface Analysis")
	doc.keyValueTable([][2]string{
		{"Density Peaks", fmt.Sprintf("%d", res.Interfaces.PeakCount)},
		{"Sharp Interfaces", fmt.Sprintf("%d", res.Interfaces.SharpCount)},
		{"Mean Gradient", fmt.Sprintf("%.3f", res.Interfaces.MeanGradient)},
		{"Max Gradient", fmt.Sprintf("%.3f", res.Interfaces.MaxGradient)},
	})

	doc.section("Criteria Breakdown")
	rows := make([][2]string, 0, 6)
	for _, c := range res.Breakdown.Criteria() {
		met := "0"
		if c.Met {
			met = "1"
		}
		rows = append(rows, [2]string{c.Name, met})
	}
	doc.keyValueTable(rows)

	for _, key := range []string{"profile", "histogram", "gradient", "score"} {
		png, ok := plots[key]
		if !ok || len(png) == 0 {
			continue
		}
		doc.image(key, png, 0.85, 320.0/500.0)
	}

	return doc.write(path)
}

// BuildEOSPDF writes a report with both phases' fit results and the overlay
// plot.
func BuildEOSPDF(path string, solid, liquid *eos.PhaseResult, plotPNG []byte) error {
	doc := newPDFDoc()
	doc.heading("Birch-Murnaghan EOS Fit")
	doc.line(fmt.Sprintf("Target Pressure: %g GPa", solid.TargetPressure))
	doc.pdf.Ln(2)

	for _, res := range []*eos.PhaseResult{solid, liquid} {
		doc.section(titleCase(res.Phase) + " Phase")
		doc.keyValueTable([][2]string{
			{"V0", fmt.Sprintf("%.2f A^3", res.Params.V0)},
			{"B0", fmt.Sprintf("%.2f GPa", res.Params.B0)},
			{"B0'", fmt.Sprintf("%.2f", res.Params.B0Prime)},
			{fmt.Sprintf("Volume at %g GPa", res.TargetPressure), fmt.Sprintf("%.2f A^3", res.VolumeAtTarget)},
			{"Bulk Modulus", fmt.Sprintf("%.2f GPa", res.BulkModulus)},
		})
	}

	if len(plotPNG) > 0 {
		doc.image("eos_fit", plotPNG, 0.9, 380.0/600.0)
	}

	return doc.write(path)
}
