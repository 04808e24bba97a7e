package generate

import (
	"fmt"

	"github.com/mkarag/pubhouse/internal/dataset"
)

// Counts fixes how many rows each scaled stage produces. Genres are not
// listed: the categories reference file decides them one-to-one.
type Counts struct {
	Partners       int
	Clients        int
	PrintingHouses int
	Publications   int
	Contracts      int
	ClientOrders   int
	Contributions  int
}

var baseline = Counts{
	Partners:       10,
	Clients:        15,
	PrintingHouses: 5,
	Publications:   20,
	Contracts:      30,
	ClientOrders:   50,
	Contributions:  40,
}

// ScaledCounts multiplies the fixed baseline by the configured scale factor,
// truncating the way the record counts always have been.
func ScaledCounts(factor float64) Counts {
	return Counts{
		Partners:       int(float64(baseline.Partners) * factor),
		Clients:        int(float64(baseline.Clients) * factor),
		PrintingHouses: int(float64(baseline.PrintingHouses) * factor),
		Publications:   int(float64(baseline.Publications) * factor),
		Contracts:      int(float64(baseline.Contracts) * factor),
		ClientOrders:   int(float64(baseline.ClientOrders) * factor),
		Contributions:  int(float64(baseline.Contributions) * factor),
	}
}

// Validate rejects count sets where truncation emptied a table that a later
// stage still needs to draw rows from.
func (c Counts) Validate() error {
	if c.Contracts > 0 && (c.Partners == 0 || c.Publications == 0) {
		return fmt.Errorf("%w: %d contracts need at least one partner and one publication (got %d and %d)",
			dataset.ErrConfiguration, c.Contracts, c.Partners, c.Publications)
	}
	if c.ClientOrders > 0 && (c.Clients == 0 || c.Publications == 0) {
		return fmt.Errorf("%w: %d client orders need at least one client and one publication (got %d and %d)",
			dataset.ErrConfiguration, c.ClientOrders, c.Clients, c.Publications)
	}
	if c.Publications > 0 && c.PrintingHouses == 0 {
		return fmt.Errorf("%w: %d publications need at least one printing house",
			dataset.ErrConfiguration, c.Publications)
	}
	return nil
}
