package model

type Publication struct {
	ISBN    int64 // 13-digit identifier
	Title   string
	Price   float64
	Stock   int
	GenreID int64
}
