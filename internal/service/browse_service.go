package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mkarag/pubhouse/internal/db"
	"github.com/mkarag/pubhouse/internal/model"
	"github.com/mkarag/pubhouse/internal/repository"
)

var allowedOperators = map[string]struct{}{
	"=": {}, "LIKE": {}, "<": {}, ">": {}, "<=": {}, ">=": {},
}

// BrowseService backs the table-listing and search endpoints.
type BrowseService struct {
	stats  *repository.StatsRepository
	search *repository.SearchRepository
}

func NewBrowseService(stats *repository.StatsRepository, search *repository.SearchRepository) *BrowseService {
	return &BrowseService{stats: stats, search: search}
}

type SearchInput struct {
	Table    string
	Column   string
	Operator string
	Value    string
}

func (s *BrowseService) Tables(ctx context.Context) ([]model.TableCount, error) {
	return s.stats.RowCounts(ctx)
}

// Search validates table, column and operator against the fixed schema
// description before any SQL is built; only the value is user data and it is
// always bound.
func (s *BrowseService) Search(ctx context.Context, input SearchInput) (*model.SearchResult, error) {
	columns, ok := db.Columns(input.Table)
	if !ok {
		return nil, fmt.Errorf("%w: unknown table %q", ErrInvalidInput, input.Table)
	}
	if !contains(columns, input.Column) {
		return nil, fmt.Errorf("%w: unknown column %q in table %q", ErrInvalidInput, input.Column, input.Table)
	}
	if _, ok := allowedOperators[input.Operator]; !ok {
		return nil, fmt.Errorf("%w: unsupported operator %q", ErrInvalidInput, input.Operator)
	}

	value := any(input.Value)
	if input.Operator == "LIKE" {
		value = "%" + input.Value + "%"
	}

	started := time.Now()
	resultColumns, rows, err := s.search.Search(ctx, input.Table, input.Column, input.Operator, value)
	if err != nil {
		return nil, err
	}

	return &model.SearchResult{
		Table:   input.Table,
		Columns: resultColumns,
		Rows:    rows,
		Elapsed: time.Since(started).Seconds(),
	}, nil
}

func contains(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
