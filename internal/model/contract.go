package model

import "time"

type Contract struct {
	ID              int64
	Payment         float64
	StartDate       time.Time
	ExpirationDate  time.Time
	Description     string
	PartnerTaxID    int64
	PublicationISBN int64
}

// ContractWindow is the active interval of one contract, keyed by the
// (partner, publication) pair it belongs to.
type ContractWindow struct {
	PartnerTaxID    int64
	PublicationISBN int64
	Start           time.Time
	End             time.Time
}
