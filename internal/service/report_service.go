package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mkarag/pubhouse/internal/model"
	"github.com/mkarag/pubhouse/internal/repository"
)

type ExcelGenerator interface {
	Generate(stats model.DatabaseStats) ([]byte, error)
}

type PDFGenerator interface {
	Generate(stats model.DatabaseStats) ([]byte, error)
}

// ReportService aggregates the statistics queries into one snapshot and
// renders it as a workbook or a PDF summary.
type ReportService struct {
	stats *repository.StatsRepository
	excel ExcelGenerator
	pdf   PDFGenerator
}

type ExportResult struct {
	FileName string
	Content  []byte
}

func NewReportService(stats *repository.StatsRepository, excel ExcelGenerator, pdf PDFGenerator) *ReportService {
	return &ReportService{stats: stats, excel: excel, pdf: pdf}
}

func (s *ReportService) BuildStats(ctx context.Context) (*model.DatabaseStats, error) {
	tables, err := s.stats.RowCounts(ctx)
	if err != nil {
		return nil, err
	}
	stockLevels, err := s.stats.StockLevels(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.stats.RevenueByYear(ctx)
	if err != nil {
		return nil, err
	}
	printingCosts, err := s.stats.PrintingCostsByYear(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := s.stats.SalesByTitle(ctx)
	if err != nil {
		return nil, err
	}

	return &model.DatabaseStats{
		Tables:        tables,
		StockLevels:   stockLevels,
		RevenueByYear: revenue,
		PrintingCosts: printingCosts,
		SalesByTitle:  sales,
	}, nil
}

func (s *ReportService) ExportExcel(ctx context.Context) (*ExportResult, error) {
	stats, err := s.BuildStats(ctx)
	if err != nil {
		return nil, err
	}
	content, err := s.excel.Generate(*stats)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName: buildFileName("xlsx"),
		Content:  content,
	}, nil
}

func (s *ReportService) ExportPDF(ctx context.Context) (*ExportResult, error) {
	stats, err := s.BuildStats(ctx)
	if err != nil {
		return nil, err
	}
	content, err := s.pdf.Generate(*stats)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName: buildFileName("pdf"),
		Content:  content,
	}, nil
}

func buildFileName(extension string) string {
	return fmt.Sprintf("pubhouse-stats-%s.%s", time.Now().Format("20060102"), extension)
}
