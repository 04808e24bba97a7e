package model

// ContactOwner selects which of the three communication tables a contact row
// belongs to.
type ContactOwner string

const (
	ContactOwnerPartner       ContactOwner = "partner"
	ContactOwnerClient        ContactOwner = "client"
	ContactOwnerPrintingHouse ContactOwner = "printing_house"
)

type Contact struct {
	OwnerID int64
	Phone   int64
}
