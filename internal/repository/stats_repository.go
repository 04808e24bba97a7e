package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mkarag/pubhouse/internal/db"
	"github.com/mkarag/pubhouse/internal/model"
)

// StatsRepository serves the fixed statistics queries of the browse API.
type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(database *gorm.DB) *StatsRepository {
	return &StatsRepository{db: database}
}

// RowCounts counts the rows of every schema table.
func (r *StatsRepository) RowCounts(ctx context.Context) ([]model.TableCount, error) {
	counts := make([]model.TableCount, 0, len(db.Tables()))
	for _, table := range db.Tables() {
		var rows int64
		// Identifier comes from the schema description, never from input.
		query := fmt.Sprintf(`SELECT COUNT(*) FROM "%s"`, table)
		if err := r.db.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
			return nil, err
		}
		counts = append(counts, model.TableCount{Table: table, Rows: rows})
	}
	return counts, nil
}

func (r *StatsRepository) StockLevels(ctx context.Context) ([]model.StockLevel, error) {
	var levels []model.StockLevel
	err := r.db.WithContext(ctx).Raw(`
		SELECT title, stock
		FROM publications
		ORDER BY stock DESC
	`).Scan(&levels).Error
	if err != nil {
		return nil, err
	}
	return levels, nil
}

func (r *StatsRepository) RevenueByYear(ctx context.Context) ([]model.YearTotal, error) {
	var totals []model.YearTotal
	err := r.db.WithContext(ctx).Raw(`
		SELECT strftime('%Y', order_date) AS year, SUM(payment) AS total
		FROM client_orders
		GROUP BY year
		ORDER BY year
	`).Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return totals, nil
}

func (r *StatsRepository) PrintingCostsByYear(ctx context.Context) ([]model.YearTotal, error) {
	var totals []model.YearTotal
	err := r.db.WithContext(ctx).Raw(`
		SELECT strftime('%Y', order_date) AS year, SUM(cost) AS total
		FROM printing_orders
		GROUP BY year
		ORDER BY year
	`).Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return totals, nil
}

func (r *StatsRepository) SalesByTitle(ctx context.Context) ([]model.TitleTotal, error) {
	var totals []model.TitleTotal
	err := r.db.WithContext(ctx).Raw(`
		SELECT p.title AS title, SUM(o.quantity) AS total
		FROM client_orders o
		JOIN publications p ON o.publication_isbn = p.isbn
		GROUP BY p.title
		ORDER BY total DESC
	`).Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return totals, nil
}
