package model

// Specialization codes match the CHECK constraint on partners.specialization.
type Specialization int

const (
	SpecializationTranslator      Specialization = 1
	SpecializationWriter          Specialization = 2
	SpecializationGraphicDesigner Specialization = 3
	SpecializationEditor          Specialization = 4
)

type Partner struct {
	TaxID          int64
	Name           string
	Specialization Specialization
	Comments       string
}
