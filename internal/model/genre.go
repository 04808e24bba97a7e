package model

type Genre struct {
	ID          int64
	AgeRange    string
	Description string
}
