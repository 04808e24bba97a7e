package model

// View models for the browse/report API.

type TableCount struct {
	Table string `json:"table"`
	Rows  int64  `json:"rows"`
}

type SearchResult struct {
	Table   string           `json:"table"`
	Columns []string         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
	Elapsed float64          `json:"elapsed_seconds"`
}

type StockLevel struct {
	Title string `json:"title"`
	Stock int64  `json:"stock"`
}

type YearTotal struct {
	Year  string  `json:"year"`
	Total float64 `json:"total"`
}

type TitleTotal struct {
	Title string `json:"title"`
	Total int64  `json:"total"`
}

type DatabaseStats struct {
	Tables        []TableCount `json:"tables"`
	StockLevels   []StockLevel `json:"stock_levels"`
	RevenueByYear []YearTotal  `json:"revenue_by_year"`
	PrintingCosts []YearTotal  `json:"printing_costs_by_year"`
	SalesByTitle  []TitleTotal `json:"sales_by_title"`
}
