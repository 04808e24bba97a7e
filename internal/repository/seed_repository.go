package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/mkarag/pubhouse/internal/model"
)

// ErrWriteFailed marks a rejected insert, which during seeding means a
// generation bug rather than bad input.
var ErrWriteFailed = errors.New("write failed")

const dateLayout = "2006-01-02"

// SeedRepository performs the parameterized inserts of a seeding run. It is
// constructed over the run's transaction handle so that the whole population
// phase commits or rolls back as one unit.
type SeedRepository struct {
	db *gorm.DB
}

func NewSeedRepository(db *gorm.DB) *SeedRepository {
	return &SeedRepository{db: db}
}

func (r *SeedRepository) InsertPartners(ctx context.Context, partners []model.Partner) error {
	for _, p := range partners {
		err := r.db.WithContext(ctx).Exec(`
			INSERT INTO partners (tax_id, name, specialization, comments)
			VALUES (?, ?, ?, ?)
		`, p.TaxID, p.Name, int(p.Specialization), p.Comments).Error
		if err != nil {
			return fmt.Errorf("%w: partners: %v", ErrWriteFailed, err)
		}
	}
	return nil
}

func (r *SeedRepository) InsertClients(ctx context.Context, clients []model.Client) error {
	for _, c := range clients {
		err := r.db.WithContext(ctx).Exec(`
			INSERT INTO clients (tax_id, name, location)
			VALUES (?, ?, ?)
		`, c.TaxID, c.Name, c.Location).Error
		if err != nil {
			return fmt.Errorf("%w: clients: %v", ErrWriteFailed, err)
		}
	}
	return nil
}

func (r *SeedRepository) InsertPrintingHouses(ctx context.Context, houses []model.PrintingHouse) error {
	for _, h := range houses {
		err := r.db.WithContext(ctx).Exec(`
			INSERT INTO printing_houses (id, location, capabilities)
			VALUES (?, ?, ?)
		`, h.ID, h.Location, h.Capabilities).Error
		if err != nil {
			return fmt.Errorf("%w: printing_houses: %v", ErrWriteFailed, err)
		}
	}
	return nil
}

func (r *SeedRepository) InsertGenres(ctx context.Context, genres []model.Genre) error {
	for _, g := range genres {
		err := r.db.WithContext(ctx).Exec(`
			INSERT INTO genres (id, age_range, description)
			VALUES (?, ?, ?)
		`, g.ID, g.AgeRange, g.Description).Error
		if err != nil {
			return fmt.Errorf("%w: genres: %v", ErrWriteFailed, err)
		}
	}
	return nil
}

func (r *SeedRepository) InsertPublications(ctx context.Context, publications []model.Publication) error {
	for _, p := range publications {
		err := r.db.WithContext(ctx).Exec(`
			INSERT INTO publications (isbn, title, price, stock, genre_id)
			VALUES (?, ?, ?, ?, ?)
		`, p.ISBN, p.Title, p.Price, p.Stock, p.GenreID).Error
		if err != nil {
			return fmt.Errorf("%w: publications: %v", ErrWriteFailed, err)
		}
	}
	return nil
}

func (r *SeedRepository) InsertContracts(ctx context.Context, contracts []model.Contract) error {
	for _, c := range contracts {
		err := r.db.WithContext(ctx).Exec(`
			INSERT INTO contracts (id, payment, start_date, expiration_date, description, partner_tax_id, publication_isbn)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, c.ID, c.Payment, formatDate(c.StartDate), formatDate(c.ExpirationDate),
			c.Description, c.PartnerTaxID, c.PublicationISBN).Error
		if err != nil {
			return fmt.Errorf("%w: contracts: %v", ErrWriteFailed, err)
		}
	}
	return nil
}

func (r *SeedRepository) InsertClientOrders(ctx context.Context, orders []model.ClientOrder) error {
	for _, o := range orders {
		err := r.db.WithContext(ctx).Exec(`
			INSERT INTO client_orders (client_tax_id, publication_isbn, quantity, order_date, delivery_date, payment)
			VALUES (?, ?, ?, ?, ?, ?)
		`, o.ClientTaxID, o.PublicationISBN, o.Quantity,
			formatDate(o.OrderDate), formatDate(o.DeliveryDate), o.Payment).Error
		if err != nil {
			return fmt.Errorf("%w: client_orders: %v", ErrWriteFailed, err)
		}
	}
	return nil
}

func (r *SeedRepository) InsertPrintingOrders(ctx context.Context, orders []model.PrintingOrder) error {
	for _, o := range orders {
		err := r.db.WithContext(ctx).Exec(`
			INSERT INTO printing_orders (printing_house_id, publication_isbn, order_date, delivery_date, quantity, cost)
			VALUES (?, ?, ?, ?, ?, ?)
		`, o.PrintingHouseID, o.PublicationISBN,
			formatDate(o.OrderDate), formatDate(o.DeliveryDate), o.Quantity, o.Cost).Error
		if err != nil {
			return fmt.Errorf("%w: printing_orders: %v", ErrWriteFailed, err)
		}
	}
	return nil
}

func (r *SeedRepository) InsertContributions(ctx context.Context, contributions []model.Contribution) error {
	for _, c := range contributions {
		var paymentDate any
		if c.PaymentDate != nil {
			paymentDate = formatDate(*c.PaymentDate)
		}
		err := r.db.WithContext(ctx).Exec(`
			INSERT INTO contributions (partner_tax_id, publication_isbn, estimated_completion_date, start_date, completion_date, payment_date)
			VALUES (?, ?, ?, ?, ?, ?)
		`, c.PartnerTaxID, c.PublicationISBN, formatDate(c.EstimatedCompletion),
			formatDate(c.StartDate), formatDate(c.CompletionDate), paymentDate).Error
		if err != nil {
			return fmt.Errorf("%w: contributions: %v", ErrWriteFailed, err)
		}
	}
	return nil
}

func (r *SeedRepository) InsertContacts(ctx context.Context, owner model.ContactOwner, contacts []model.Contact) error {
	var stmt string
	switch owner {
	case model.ContactOwnerPartner:
		stmt = `INSERT INTO partner_contacts (partner_tax_id, phone) VALUES (?, ?)`
	case model.ContactOwnerClient:
		stmt = `INSERT INTO client_contacts (client_tax_id, phone) VALUES (?, ?)`
	case model.ContactOwnerPrintingHouse:
		stmt = `INSERT INTO printing_house_contacts (printing_house_id, phone) VALUES (?, ?)`
	default:
		return fmt.Errorf("%w: unknown contact owner %q", ErrWriteFailed, owner)
	}

	for _, c := range contacts {
		if err := r.db.WithContext(ctx).Exec(stmt, c.OwnerID, c.Phone).Error; err != nil {
			return fmt.Errorf("%w: %s contacts: %v", ErrWriteFailed, owner, err)
		}
	}
	return nil
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}
