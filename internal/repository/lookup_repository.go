package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/mkarag/pubhouse/internal/model"
)

// LookupRepository rebuilds the derived aggregates later stages depend on:
// per-ISBN price/stock, summed client orders, and the earliest relevant
// dates. All of it is transient per-run state.
type LookupRepository struct {
	db *gorm.DB
}

func NewLookupRepository(db *gorm.DB) *LookupRepository {
	return &LookupRepository{db: db}
}

// PriceAndStockByISBN reads back every publication's immutable price and
// stock reference values.
func (r *LookupRepository) PriceAndStockByISBN(ctx context.Context) (map[int64]float64, map[int64]int, error) {
	var rows []struct {
		ISBN  int64
		Price float64
		Stock int
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT isbn, price, stock FROM publications
	`).Scan(&rows).Error
	if err != nil {
		return nil, nil, err
	}

	prices := make(map[int64]float64, len(rows))
	stocks := make(map[int64]int, len(rows))
	for _, row := range rows {
		prices[row.ISBN] = row.Price
		stocks[row.ISBN] = row.Stock
	}
	return prices, stocks, nil
}

// OrderedQuantityByISBN sums client-ordered copies per publication.
func (r *LookupRepository) OrderedQuantityByISBN(ctx context.Context) (map[int64]int, error) {
	var rows []struct {
		ISBN  int64
		Total int
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT publication_isbn AS isbn, SUM(quantity) AS total
		FROM client_orders
		GROUP BY publication_isbn
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[int64]int, len(rows))
	for _, row := range rows {
		totals[row.ISBN] = row.Total
	}
	return totals, nil
}

// EarliestClientDeliveryByISBN returns the first promised delivery date per
// publication that has client orders.
func (r *LookupRepository) EarliestClientDeliveryByISBN(ctx context.Context) (map[int64]time.Time, error) {
	return r.earliestDateByISBN(ctx, `
		SELECT publication_isbn AS isbn, MIN(delivery_date) AS earliest
		FROM client_orders
		GROUP BY publication_isbn
	`)
}

// EarliestPrintingOrderDateByISBN returns the date printing begins per
// publication that has printing orders.
func (r *LookupRepository) EarliestPrintingOrderDateByISBN(ctx context.Context) (map[int64]time.Time, error) {
	return r.earliestDateByISBN(ctx, `
		SELECT publication_isbn AS isbn, MIN(order_date) AS earliest
		FROM printing_orders
		GROUP BY publication_isbn
	`)
}

// ContractWindows lists every contract's active interval with its
// (partner, publication) pair.
func (r *LookupRepository) ContractWindows(ctx context.Context) ([]model.ContractWindow, error) {
	var rows []struct {
		PartnerTaxID    int64
		PublicationISBN int64
		StartDate       string
		ExpirationDate  string
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT partner_tax_id, publication_isbn, start_date, expiration_date
		FROM contracts
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	windows := make([]model.ContractWindow, 0, len(rows))
	for _, row := range rows {
		start, err := parseDate(row.StartDate)
		if err != nil {
			return nil, err
		}
		end, err := parseDate(row.ExpirationDate)
		if err != nil {
			return nil, err
		}
		windows = append(windows, model.ContractWindow{
			PartnerTaxID:    row.PartnerTaxID,
			PublicationISBN: row.PublicationISBN,
			Start:           start,
			End:             end,
		})
	}
	return windows, nil
}

func (r *LookupRepository) earliestDateByISBN(ctx context.Context, query string) (map[int64]time.Time, error) {
	var rows []struct {
		ISBN     int64
		Earliest string
	}
	if err := r.db.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		return nil, err
	}

	earliest := make(map[int64]time.Time, len(rows))
	for _, row := range rows {
		date, err := parseDate(row.Earliest)
		if err != nil {
			return nil, err
		}
		earliest[row.ISBN] = date
	}
	return earliest, nil
}

func parseDate(raw string) (time.Time, error) {
	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed stored date %q: %w", raw, err)
	}
	return date, nil
}
