package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/mkarag/pubhouse/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate builds the statistics workbook: a summary sheet with per-table
// row counts plus one sheet per chart the desktop app used to draw.
func (g *Generator) Generate(stats model.DatabaseStats) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Summary"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, summarySheet, stats); err != nil {
		return nil, err
	}

	if err := g.writeStockLevels(file, stats.StockLevels); err != nil {
		return nil, err
	}
	if err := g.writeYearTotals(file, "Revenue by Year", "Money earned", stats.RevenueByYear); err != nil {
		return nil, err
	}
	if err := g.writeYearTotals(file, "Printing Costs", "Total payable", stats.PrintingCosts); err != nil {
		return nil, err
	}
	if err := g.writeSales(file, stats.SalesByTitle); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, stats model.DatabaseStats) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Table")
	set("B1", "Rows")
	for i, table := range stats.Tables {
		row := 2 + i
		set(fmt.Sprintf("A%d", row), table.Table)
		set(fmt.Sprintf("B%d", row), table.Rows)
	}

	_ = file.SetColWidth(sheet, "A", "A", 32)
	_ = file.SetColWidth(sheet, "B", "B", 12)
	return nil
}

func (g *Generator) writeStockLevels(file *excelize.File, levels []model.StockLevel) error {
	sheet := "Stock Levels"
	if _, err := file.NewSheet(sheet); err != nil {
		return err
	}
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Book title")
	set("B1", "Stock count")
	for i, level := range levels {
		row := 2 + i
		set(fmt.Sprintf("A%d", row), level.Title)
		set(fmt.Sprintf("B%d", row), level.Stock)
	}

	_ = file.SetColWidth(sheet, "A", "A", 45)
	_ = file.SetColWidth(sheet, "B", "B", 14)
	return nil
}

func (g *Generator) writeYearTotals(file *excelize.File, sheet, totalLabel string, totals []model.YearTotal) error {
	if _, err := file.NewSheet(sheet); err != nil {
		return err
	}
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Year")
	set("B1", totalLabel)
	for i, total := range totals {
		row := 2 + i
		set(fmt.Sprintf("A%d", row), total.Year)
		set(fmt.Sprintf("B%d", row), total.Total)
	}

	_ = file.SetColWidth(sheet, "A", "A", 10)
	_ = file.SetColWidth(sheet, "B", "B", 18)
	return nil
}

func (g *Generator) writeSales(file *excelize.File, sales []model.TitleTotal) error {
	sheet := "Sales by Title"
	if _, err := file.NewSheet(sheet); err != nil {
		return err
	}
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Book title")
	set("B1", "Copies ordered")
	for i, sale := range sales {
		row := 2 + i
		set(fmt.Sprintf("A%d", row), sale.Title)
		set(fmt.Sprintf("B%d", row), sale.Total)
	}

	_ = file.SetColWidth(sheet, "A", "A", 45)
	_ = file.SetColWidth(sheet, "B", "B", 16)
	return nil
}
