package model

import "time"

type ClientOrder struct {
	OrderID         int64
	ClientTaxID     int64
	PublicationISBN int64
	Quantity        int
	OrderDate       time.Time
	DeliveryDate    time.Time
	Payment         float64 // price x quantity, never randomized independently
}

// PrintingOrder is one partial print run; several rows may together cover a
// single publication's required quantity.
type PrintingOrder struct {
	OrderID         int64
	PrintingHouseID int64
	PublicationISBN int64
	OrderDate       time.Time
	DeliveryDate    time.Time
	Quantity        int
	Cost            float64
}
