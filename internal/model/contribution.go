package model

import "time"

// Contribution records a partner working on a publication. The whole
// [StartDate, CompletionDate] interval lies inside one of the pair's contract
// windows and finishes before printing of the publication begins.
type Contribution struct {
	PartnerTaxID        int64
	PublicationISBN     int64
	EstimatedCompletion time.Time
	StartDate           time.Time
	CompletionDate      time.Time
	PaymentDate         *time.Time // nil while unpaid
}
