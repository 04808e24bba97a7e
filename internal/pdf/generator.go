package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/mkarag/pubhouse/internal/model"
)

type Generator struct {
	fontName string
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Helvetica"}
}

// Generate renders the one-page database summary: per-table row counts and
// the yearly revenue/printing-cost aggregates.
func (g *Generator) Generate(stats model.DatabaseStats) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, "Publishing House Database Summary", "", 1, "C", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated %s", time.Now().Format("2006-01-02 15:04")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Row counts", "", 1, "L", false, 0, "")
	drawTableRow(pdf, g.fontName, []string{"Table", "Rows"}, []float64{120, 40}, true)
	for _, table := range stats.Tables {
		drawTableRow(pdf, g.fontName, []string{table.Table, fmt.Sprintf("%d", table.Rows)}, []float64{120, 40}, false)
	}
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Revenue by year", "", 1, "L", false, 0, "")
	drawTableRow(pdf, g.fontName, []string{"Year", "Money earned"}, []float64{40, 60}, true)
	for _, total := range stats.RevenueByYear {
		drawTableRow(pdf, g.fontName, []string{total.Year, fmt.Sprintf("%.2f", total.Total)}, []float64{40, 60}, false)
	}
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Printing costs by year", "", 1, "L", false, 0, "")
	drawTableRow(pdf, g.fontName, []string{"Year", "Total payable"}, []float64{40, 60}, true)
	for _, total := range stats.PrintingCosts {
		drawTableRow(pdf, g.fontName, []string{total.Year, fmt.Sprintf("%.2f", total.Total)}, []float64{40, 60}, false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawTableRow(pdf *gofpdf.Fpdf, fontName string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 10)
	for i, col := range cols {
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 7, col, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}
