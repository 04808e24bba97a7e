// Package generate synthesizes the publishing-house dataset: ten ordered
// stages, each a pure function of the reference pools, the requested counts
// and the lookup structures derived from earlier stages. The Seeder threads
// those structures through and writes everything in one transaction.
package generate

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/mkarag/pubhouse/internal/dataset"
	"github.com/mkarag/pubhouse/internal/model"
	"github.com/mkarag/pubhouse/internal/rnd"
)

var (
	contractStartMin = time.Date(2005, 1, 1, 0, 0, 0, 0, time.UTC)
	contractStartMax = time.Date(2009, 12, 31, 0, 0, 0, 0, time.UTC)
	orderDateMin     = time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)
	orderDateMax     = time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	// Stands in for "printing never starts" when a publication has no
	// printing orders yet.
	farFuturePrintDate = time.Date(2030, 12, 31, 0, 0, 0, 0, time.UTC)
)

var ageRanges = []string{"3+", "7+", "14+", "18+"}

// Partners draws n partners with unique tax IDs. The returned set holds every
// ID issued so far and seeds the client stage's disjointness check.
func Partners(r *rand.Rand, ref *dataset.Reference, n int) ([]model.Partner, map[int64]struct{}, error) {
	taken := make(map[int64]struct{}, n)
	partners := make([]model.Partner, 0, n)
	for i := 0; i < n; i++ {
		taxID, err := rnd.UniqueInt(r, taken, rnd.TaxID)
		if err != nil {
			return nil, nil, err
		}
		partners = append(partners, model.Partner{
			TaxID:          taxID,
			Name:           fmt.Sprintf("%s %s", rnd.Pick(r, ref.FirstNames), rnd.Pick(r, ref.LastNames)),
			Specialization: model.Specialization(1 + r.Intn(4)),
			Comments:       strings.Repeat("⭐", 1+r.Intn(5)),
		})
	}
	return partners, taken, nil
}

// Clients draws n clients whose tax IDs collide neither with each other nor
// with any partner. usedTaxIDs must contain the partner IDs and accumulates
// the client IDs as they are issued.
func Clients(r *rand.Rand, ref *dataset.Reference, n int, usedTaxIDs map[int64]struct{}) ([]model.Client, error) {
	clients := make([]model.Client, 0, n)
	for i := 0; i < n; i++ {
		taxID, err := rnd.UniqueInt(r, usedTaxIDs, rnd.TaxID)
		if err != nil {
			return nil, err
		}
		clients = append(clients, model.Client{
			TaxID:    taxID,
			Name:     fmt.Sprintf("%s %s", rnd.Pick(r, ref.FirstNames), rnd.Pick(r, ref.LastNames)),
			Location: rnd.Pick(r, ref.Locations),
		})
	}
	return clients, nil
}

// PrintingHouses assigns sequential IDs starting at 1.
func PrintingHouses(r *rand.Rand, ref *dataset.Reference, n int) []model.PrintingHouse {
	houses := make([]model.PrintingHouse, 0, n)
	for i := 0; i < n; i++ {
		houses = append(houses, model.PrintingHouse{
			ID:           int64(i + 1),
			Location:     rnd.Pick(r, ref.Locations),
			Capabilities: 1 + r.Intn(5),
		})
	}
	return houses
}

// Genres emits one row per category, in file order, never scaled.
func Genres(r *rand.Rand, categories []string) []model.Genre {
	genres := make([]model.Genre, 0, len(categories))
	for i, category := range categories {
		genres = append(genres, model.Genre{
			ID:          int64(i + 1),
			AgeRange:    rnd.Pick(r, ageRanges),
			Description: fmt.Sprintf("Books in the %s genre", strings.ToLower(category)),
		})
	}
	return genres
}

// Publications draws n publications with unique 13-digit ISBNs. Price and
// stock become immutable reference values for every later stage.
func Publications(r *rand.Rand, ref *dataset.Reference, n int, genreIDs []int64) ([]model.Publication, error) {
	taken := make(map[int64]struct{}, n)
	publications := make([]model.Publication, 0, n)
	for i := 0; i < n; i++ {
		isbn, err := rnd.UniqueInt(r, taken, rnd.ISBN)
		if err != nil {
			return nil, err
		}
		publications = append(publications, model.Publication{
			ISBN:    isbn,
			Title:   rnd.Pick(r, ref.BookTitles),
			Price:   round2(5.0 + r.Float64()*195.0),
			Stock:   r.Intn(501),
			GenreID: rnd.Pick(r, genreIDs),
		})
	}
	return publications, nil
}

// Contracts pre-generates the start dates and sorts them ascending before
// assigning sequential IDs, so a later ID never starts earlier. Partner and
// publication are picked independently with replacement.
func Contracts(r *rand.Rand, n int, partnerTaxIDs, isbns []int64) ([]model.Contract, error) {
	starts := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		start, err := rnd.DateBetween(r, contractStartMin, contractStartMax)
		if err != nil {
			return nil, err
		}
		starts = append(starts, start)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })

	contracts := make([]model.Contract, 0, n)
	for i := 0; i < n; i++ {
		isbn := rnd.Pick(r, isbns)
		contracts = append(contracts, model.Contract{
			ID:              int64(i + 1),
			Payment:         round2(1000.0 + r.Float64()*9000.0),
			StartDate:       starts[i],
			ExpirationDate:  starts[i].AddDate(0, 0, 30+r.Intn(2*365-30+1)),
			Description:     fmt.Sprintf("Contract for publication %d", isbn),
			PartnerTaxID:    rnd.Pick(r, partnerTaxIDs),
			PublicationISBN: isbn,
		})
	}
	return contracts, nil
}

// ClientOrders draws n orders with unique (client, publication) pairs;
// payment derives from the publication's price, never from a fresh draw.
// Demanding more orders than there are distinct pairs trips the rejection
// bound instead of spinning.
func ClientOrders(r *rand.Rand, n int, clientTaxIDs, isbns []int64, priceByISBN map[int64]float64) ([]model.ClientOrder, error) {
	usedPairs := make(map[[2]int64]struct{}, n)
	orders := make([]model.ClientOrder, 0, n)
	for i := 0; i < n; i++ {
		var clientID, isbn int64
		found := false
		for attempt := 0; attempt < rnd.MaxAttempts; attempt++ {
			clientID = rnd.Pick(r, clientTaxIDs)
			isbn = rnd.Pick(r, isbns)
			pair := [2]int64{clientID, isbn}
			if _, taken := usedPairs[pair]; taken {
				continue
			}
			usedPairs[pair] = struct{}{}
			found = true
			break
		}
		if !found {
			return nil, fmt.Errorf("%w: no free (client, publication) pair after %d attempts",
				rnd.ErrExhaustedIDSpace, rnd.MaxAttempts)
		}

		orderDate, err := rnd.DateBetween(r, orderDateMin, orderDateMax)
		if err != nil {
			return nil, err
		}
		quantity := 10 + r.Intn(41)
		orders = append(orders, model.ClientOrder{
			ClientTaxID:     clientID,
			PublicationISBN: isbn,
			Quantity:        quantity,
			OrderDate:       orderDate,
			DeliveryDate:    orderDate.AddDate(0, 0, 1+r.Intn(30)),
			Payment:         round2(priceByISBN[isbn] * float64(quantity)),
		})
	}
	return orders, nil
}

// PrintingOrders covers every publication's print demand. A publication with
// client orders needs stock + ordered copies, split across 1-3 partial
// orders that all deliver before the earliest client delivery. A publication
// without client orders gets a single historical print run for its stock.
// The printing house of each order is drawn uniformly, with replacement.
func PrintingOrders(
	r *rand.Rand,
	isbns, printingHouseIDs []int64,
	stockByISBN map[int64]int,
	orderedByISBN map[int64]int,
	earliestDeliveryByISBN map[int64]time.Time,
	priceByISBN map[int64]float64,
) ([]model.PrintingOrder, error) {
	var orders []model.PrintingOrder
	for _, isbn := range isbns {
		ordered, hasClientOrders := orderedByISBN[isbn]
		if hasClientOrders {
			totalNeeded := stockByISBN[isbn] + ordered
			quantities, err := rnd.Partition(r, totalNeeded, 1+r.Intn(3))
			if err != nil {
				return nil, err
			}

			clientDelivery := earliestDeliveryByISBN[isbn]
			for _, quantity := range quantities {
				delivery := clientDelivery.AddDate(0, 0, -(1 + r.Intn(60)))
				orders = append(orders, model.PrintingOrder{
					PrintingHouseID: rnd.Pick(r, printingHouseIDs),
					PublicationISBN: isbn,
					OrderDate:       delivery.AddDate(0, 0, -(1 + r.Intn(30))),
					DeliveryDate:    delivery,
					Quantity:        quantity,
					Cost:            round2(0.2 * priceByISBN[isbn] * float64(quantity)),
				})
			}
			continue
		}

		stock := stockByISBN[isbn]
		if stock == 0 {
			// Nothing was ever printed and nobody ordered.
			continue
		}
		orderDate, err := rnd.DateBetween(r, orderDateMin, orderDateMax)
		if err != nil {
			return nil, err
		}
		orders = append(orders, model.PrintingOrder{
			PrintingHouseID: rnd.Pick(r, printingHouseIDs),
			PublicationISBN: isbn,
			OrderDate:       orderDate,
			DeliveryDate:    orderDate.AddDate(0, 0, 1+r.Intn(30)),
			Quantity:        stock,
			Cost:            round2(0.2 * priceByISBN[isbn] * float64(stock)),
		})
	}
	return orders, nil
}

// validWindow is a feasible interval in which a contribution may run:
// a contract window clipped by the publication's earliest printing date.
type validWindow struct {
	partnerTaxID int64
	isbn         int64
	start        time.Time
	upper        time.Time
}

// Contributions schedules up to n contributions inside shuffled valid
// windows, at most one per (partner, publication) pair. Running out of
// windows before reaching n is a normal outcome, not an error.
func Contributions(
	r *rand.Rand,
	n int,
	windows []model.ContractWindow,
	earliestPrintByISBN map[int64]time.Time,
	paidProbability float64,
) ([]model.Contribution, error) {
	pool := make([]validWindow, 0, len(windows))
	for _, w := range windows {
		earliestPrint, ok := earliestPrintByISBN[w.PublicationISBN]
		if !ok {
			earliestPrint = farFuturePrintDate
		}
		if !w.Start.Before(earliestPrint) {
			continue
		}
		upper := w.End
		if earliestPrint.Before(upper) {
			upper = earliestPrint
		}
		if w.Start.Before(upper) {
			pool = append(pool, validWindow{
				partnerTaxID: w.PartnerTaxID,
				isbn:         w.PublicationISBN,
				start:        w.Start,
				upper:        upper,
			})
		}
	}
	r.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	usedPairs := make(map[[2]int64]struct{}, n)
	contributions := make([]model.Contribution, 0, n)
	for len(contributions) < n && len(pool) > 0 {
		window := pool[len(pool)-1]
		pool = pool[:len(pool)-1]

		pair := [2]int64{window.partnerTaxID, window.isbn}
		if _, taken := usedPairs[pair]; taken {
			continue
		}
		usedPairs[pair] = struct{}{}

		completion, err := rnd.DateBetween(r, window.start, window.upper)
		if err != nil {
			return nil, err
		}
		start, err := rnd.DateBetween(r, window.start, completion)
		if err != nil {
			return nil, err
		}
		eta, err := rnd.DateBetween(r, start, completion)
		if err != nil {
			return nil, err
		}

		var paymentDate *time.Time
		if r.Float64() < paidProbability {
			paid := completion.AddDate(0, 0, 1+r.Intn(30))
			paymentDate = &paid
		}

		contributions = append(contributions, model.Contribution{
			PartnerTaxID:        window.partnerTaxID,
			PublicationISBN:     window.isbn,
			EstimatedCompletion: eta,
			StartDate:           start,
			CompletionDate:      completion,
			PaymentDate:         paymentDate,
		})
	}
	return contributions, nil
}

// Contacts emits 1-3 phone rows per owner ID.
func Contacts(r *rand.Rand, ownerIDs []int64) []model.Contact {
	var contacts []model.Contact
	for _, ownerID := range ownerIDs {
		for i := 0; i < 1+r.Intn(3); i++ {
			contacts = append(contacts, model.Contact{OwnerID: ownerID, Phone: rnd.Phone(r)})
		}
	}
	return contacts
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
