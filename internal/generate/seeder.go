package generate

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/mkarag/pubhouse/internal/config"
	"github.com/mkarag/pubhouse/internal/dataset"
	"github.com/mkarag/pubhouse/internal/db"
	"github.com/mkarag/pubhouse/internal/model"
	"github.com/mkarag/pubhouse/internal/repository"
)

// Seeder is the run orchestrator: destroy the old database file, apply the
// schema, then execute the population stages in dependency order inside a
// single transaction. Any failure aborts the whole run; nothing partial is
// ever committed.
type Seeder struct {
	cfg *config.Config
	log zerolog.Logger
}

func NewSeeder(cfg *config.Config, log zerolog.Logger) *Seeder {
	return &Seeder{cfg: cfg, log: log}
}

// Run executes one full seeding run. Each run draws from a fresh wall-clock
// seeded source; two runs produce the same row counts but different IDs.
func (s *Seeder) Run(ctx context.Context) error {
	runID := uuid.New()
	log := s.log.With().Str("run_id", runID.String()).Logger()

	ref, err := dataset.Load(s.cfg.Seed.DatasetsDir)
	if err != nil {
		return fmt.Errorf("stage datasets: %w", err)
	}
	counts := ScaledCounts(s.cfg.Seed.ScaleFactor)
	if err := counts.Validate(); err != nil {
		return fmt.Errorf("stage counts: %w", err)
	}
	log.Info().
		Float64("scale_factor", s.cfg.Seed.ScaleFactor).
		Int("partners", counts.Partners).
		Int("clients", counts.Clients).
		Int("publications", counts.Publications).
		Msg("starting seeding run")

	database, err := db.Reset(s.cfg.DB.Path, s.cfg.DB.SchemaPath, log)
	if err != nil {
		return fmt.Errorf("stage schema: %w", err)
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	err = database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.populate(ctx, tx, r, ref, counts, log)
	})
	if err != nil {
		return err
	}

	log.Info().Msg("seeding run committed")
	return nil
}

func (s *Seeder) populate(
	ctx context.Context,
	tx *gorm.DB,
	r *rand.Rand,
	ref *dataset.Reference,
	counts Counts,
	log zerolog.Logger,
) error {
	seeds := repository.NewSeedRepository(tx)
	lookups := repository.NewLookupRepository(tx)

	partners, usedTaxIDs, err := Partners(r, ref, counts.Partners)
	if err != nil {
		return fmt.Errorf("stage partners: %w", err)
	}
	if err := seeds.InsertPartners(ctx, partners); err != nil {
		return fmt.Errorf("stage partners: %w", err)
	}
	partnerTaxIDs := make([]int64, 0, len(partners))
	for _, p := range partners {
		partnerTaxIDs = append(partnerTaxIDs, p.TaxID)
	}
	log.Info().Str("stage", "partners").Int("rows", len(partners)).Msg("stage complete")

	clients, err := Clients(r, ref, counts.Clients, usedTaxIDs)
	if err != nil {
		return fmt.Errorf("stage clients: %w", err)
	}
	if err := seeds.InsertClients(ctx, clients); err != nil {
		return fmt.Errorf("stage clients: %w", err)
	}
	clientTaxIDs := make([]int64, 0, len(clients))
	for _, c := range clients {
		clientTaxIDs = append(clientTaxIDs, c.TaxID)
	}
	log.Info().Str("stage", "clients").Int("rows", len(clients)).Msg("stage complete")

	houses := PrintingHouses(r, ref, counts.PrintingHouses)
	if err := seeds.InsertPrintingHouses(ctx, houses); err != nil {
		return fmt.Errorf("stage printing_houses: %w", err)
	}
	houseIDs := make([]int64, 0, len(houses))
	for _, h := range houses {
		houseIDs = append(houseIDs, h.ID)
	}
	log.Info().Str("stage", "printing_houses").Int("rows", len(houses)).Msg("stage complete")

	genres := Genres(r, ref.Categories)
	if err := seeds.InsertGenres(ctx, genres); err != nil {
		return fmt.Errorf("stage genres: %w", err)
	}
	genreIDs := make([]int64, 0, len(genres))
	for _, g := range genres {
		genreIDs = append(genreIDs, g.ID)
	}
	log.Info().Str("stage", "genres").Int("rows", len(genres)).Msg("stage complete")

	publications, err := Publications(r, ref, counts.Publications, genreIDs)
	if err != nil {
		return fmt.Errorf("stage publications: %w", err)
	}
	if err := seeds.InsertPublications(ctx, publications); err != nil {
		return fmt.Errorf("stage publications: %w", err)
	}
	isbns := make([]int64, 0, len(publications))
	for _, p := range publications {
		isbns = append(isbns, p.ISBN)
	}
	priceByISBN, stockByISBN, err := lookups.PriceAndStockByISBN(ctx)
	if err != nil {
		return fmt.Errorf("stage publications: %w", err)
	}
	log.Info().Str("stage", "publications").Int("rows", len(publications)).Msg("stage complete")

	contracts, err := Contracts(r, counts.Contracts, partnerTaxIDs, isbns)
	if err != nil {
		return fmt.Errorf("stage contracts: %w", err)
	}
	if err := seeds.InsertContracts(ctx, contracts); err != nil {
		return fmt.Errorf("stage contracts: %w", err)
	}
	log.Info().Str("stage", "contracts").Int("rows", len(contracts)).Msg("stage complete")

	clientOrders, err := ClientOrders(r, counts.ClientOrders, clientTaxIDs, isbns, priceByISBN)
	if err != nil {
		return fmt.Errorf("stage client_orders: %w", err)
	}
	if err := seeds.InsertClientOrders(ctx, clientOrders); err != nil {
		return fmt.Errorf("stage client_orders: %w", err)
	}
	log.Info().Str("stage", "client_orders").Int("rows", len(clientOrders)).Msg("stage complete")

	orderedByISBN, err := lookups.OrderedQuantityByISBN(ctx)
	if err != nil {
		return fmt.Errorf("stage printing_orders: %w", err)
	}
	earliestDeliveryByISBN, err := lookups.EarliestClientDeliveryByISBN(ctx)
	if err != nil {
		return fmt.Errorf("stage printing_orders: %w", err)
	}
	printingOrders, err := PrintingOrders(r, isbns, houseIDs, stockByISBN, orderedByISBN, earliestDeliveryByISBN, priceByISBN)
	if err != nil {
		return fmt.Errorf("stage printing_orders: %w", err)
	}
	if err := seeds.InsertPrintingOrders(ctx, printingOrders); err != nil {
		return fmt.Errorf("stage printing_orders: %w", err)
	}
	log.Info().Str("stage", "printing_orders").Int("rows", len(printingOrders)).Msg("stage complete")

	windows, err := lookups.ContractWindows(ctx)
	if err != nil {
		return fmt.Errorf("stage contributions: %w", err)
	}
	earliestPrintByISBN, err := lookups.EarliestPrintingOrderDateByISBN(ctx)
	if err != nil {
		return fmt.Errorf("stage contributions: %w", err)
	}
	contributions, err := Contributions(r, counts.Contributions, windows, earliestPrintByISBN, s.cfg.Seed.PaidProbability)
	if err != nil {
		return fmt.Errorf("stage contributions: %w", err)
	}
	if err := seeds.InsertContributions(ctx, contributions); err != nil {
		return fmt.Errorf("stage contributions: %w", err)
	}
	if len(contributions) < counts.Contributions {
		log.Warn().
			Int("requested", counts.Contributions).
			Int("generated", len(contributions)).
			Msg("valid contribution windows exhausted early")
	}
	log.Info().Str("stage", "contributions").Int("rows", len(contributions)).Msg("stage complete")

	contactGroups := []struct {
		owner model.ContactOwner
		ids   []int64
	}{
		{model.ContactOwnerClient, clientTaxIDs},
		{model.ContactOwnerPartner, partnerTaxIDs},
		{model.ContactOwnerPrintingHouse, houseIDs},
	}
	for _, group := range contactGroups {
		contacts := Contacts(r, group.ids)
		if err := seeds.InsertContacts(ctx, group.owner, contacts); err != nil {
			return fmt.Errorf("stage communication: %w", err)
		}
		log.Info().Str("stage", "communication").Str("owner", string(group.owner)).
			Int("rows", len(contacts)).Msg("stage complete")
	}

	return nil
}
