package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// SearchRepository runs the single-column filtered SELECT behind the search
// endpoint. Table and column identifiers must already be validated against
// the schema description; only the value travels as a bound parameter.
type SearchRepository struct {
	db *gorm.DB
}

func NewSearchRepository(database *gorm.DB) *SearchRepository {
	return &SearchRepository{db: database}
}

func (r *SearchRepository) Search(ctx context.Context, table, column, operator string, value any) ([]string, []map[string]any, error) {
	query := fmt.Sprintf(`SELECT * FROM "%s" WHERE "%s" %s ?`, table, column, operator)

	rows, err := r.db.WithContext(ctx).Raw(query, value).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var results []map[string]any
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, nil, err
		}

		record := make(map[string]any, len(columns))
		for i, name := range columns {
			record[name] = normalizeValue(values[i])
		}
		results = append(results, record)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	return columns, results, nil
}

func normalizeValue(value any) any {
	if raw, ok := value.([]byte); ok {
		return string(raw)
	}
	return value
}
