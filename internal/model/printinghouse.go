package model

type PrintingHouse struct {
	ID           int64
	Location     string
	Capabilities int // 1..5 rating
}
