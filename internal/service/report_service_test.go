package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarag/pubhouse/internal/excel"
	"github.com/mkarag/pubhouse/internal/pdf"
	"github.com/mkarag/pubhouse/internal/repository"
)

func newReportService(t *testing.T) *ReportService {
	t.Helper()

	database := testDatabase(t)
	return NewReportService(
		repository.NewStatsRepository(database),
		excel.NewGenerator(),
		pdf.NewGenerator(),
	)
}

func TestReportBuildStats(t *testing.T) {
	reports := newReportService(t)

	stats, err := reports.BuildStats(context.Background())
	require.NoError(t, err)

	require.Len(t, stats.StockLevels, 2)
	require.Len(t, stats.RevenueByYear, 1)
	assert.Equal(t, "2020", stats.RevenueByYear[0].Year)
	assert.InDelta(t, 255.0, stats.RevenueByYear[0].Total, 0.001)
	assert.Empty(t, stats.PrintingCosts)

	require.Len(t, stats.SalesByTitle, 1)
	assert.Equal(t, "The Silent Harbor", stats.SalesByTitle[0].Title)
	assert.Equal(t, int64(10), stats.SalesByTitle[0].Total)
}

func TestReportExportExcel(t *testing.T) {
	reports := newReportService(t)

	result, err := reports.ExportExcel(context.Background())
	require.NoError(t, err)

	assert.Regexp(t, `^pubhouse-stats-\d{8}\.xlsx$`, result.FileName)
	require.NotEmpty(t, result.Content)
	// xlsx files are zip archives.
	assert.Equal(t, []byte{'P', 'K'}, result.Content[:2])
}

func TestReportExportPDF(t *testing.T) {
	reports := newReportService(t)

	result, err := reports.ExportPDF(context.Background())
	require.NoError(t, err)

	assert.Regexp(t, `^pubhouse-stats-\d{8}\.pdf$`, result.FileName)
	require.NotEmpty(t, result.Content)
	assert.Equal(t, []byte("%PDF"), result.Content[:4])
}
