package helper

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ShubhamGaur-277/Booking-Service/config"
	priceModel "github.com/ShubhamGaur-277/Booking-Service/internal/domains/price/model"
	priceRepo "github.com/ShubhamGaur-277/Booking-Service/internal/domains/price/repository"
	seatModel "github.com/ShubhamGaur-277/Booking-Service/internal/domains/seat/model"
	seatRepo "github.com/ShubhamGaur-277/Booking-Service/internal/domains/seat/repository"
	gDto "github.com/ShubhamGaur-277/Booking-Service/shared/dto"

	"github.com/rs/zerolog/log"
)

// SeedData is the shape of the static data file loaded once before the
// service takes traffic.
type SeedData struct {
	Seats      []SeedSeat      `json:"seats"`
	SeatPrices []SeedPriceTier `json:"seat_prices"`
}

type SeedSeat struct {
	ID             int    `json:"id"`
	SeatIdentifier string `json:"seat_identifier"`
	SeatClass      string `json:"seat_class"`
}

type SeedPriceTier struct {
	ID          int    `json:"id"`
	SeatClass   string `json:"seat_class"`
	MinPrice    string `json:"min_price"`
	NormalPrice string `json:"normal_price"`
	MaxPrice    string `json:"max_price"`
}

type Seeder struct {
	cfg       *config.Config
	seatRepo  seatRepo.Seat
	priceRepo priceRepo.Price
}

func NewSeeder(cfg *config.Config, seatRepo seatRepo.Seat, priceRepo priceRepo.Price) *Seeder {
	return &Seeder{
		cfg:       cfg,
		seatRepo:  seatRepo,
		priceRepo: priceRepo,
	}
}

// Run loads the configured data file and bulk inserts seats and price tiers.
// A class appearing twice in the price data is a configuration error; the
// seed aborts before touching the database. Running against an already
// seeded database is a no-op.
func (s *Seeder) Run(ctx context.Context) error {
	raw, err := os.ReadFile(s.cfg.Seed.DataFile)
	if err != nil {
		return fmt.Errorf("failed to read seed data file: %w", err)
	}

	var data SeedData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("failed to parse seed data file: %w", err)
	}

	if err := validateSeedData(data); err != nil {
		return err
	}

	count, err := s.seatRepo.Count(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    seatModel.FieldID,
				Value:    0,
				Operator: gDto.FilterOperatorGreaterEq,
				Table:    seatModel.TableName,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to count existing seats: %w", err)
	}

	if count > 0 {
		log.Info().Int("seats", count).Msg("Database already seeded, skipping")

		return nil
	}

	seats := make([]seatModel.Seat, len(data.Seats))
	for i, seat := range data.Seats {
		seats[i] = seatModel.Seat{
			ID:             seat.ID,
			SeatIdentifier: seat.SeatIdentifier,
			SeatClass:      seat.SeatClass,
		}
	}

	tiers := make([]priceModel.PriceTier, len(data.SeatPrices))
	for i, tier := range data.SeatPrices {
		tiers[i] = priceModel.PriceTier{
			ID:          tier.ID,
			SeatClass:   tier.SeatClass,
			MinPrice:    tier.MinPrice,
			NormalPrice: tier.NormalPrice,
			MaxPrice:    tier.MaxPrice,
		}
	}

	if err := s.seatRepo.InsertBulk(ctx, seats); err != nil {
		return fmt.Errorf("failed to seed seats: %w", err)
	}

	if err := s.priceRepo.InsertBulk(ctx, tiers); err != nil {
		return fmt.Errorf("failed to seed price tiers: %w", err)
	}

	log.Info().
		Int("seats", len(seats)).
		Int("priceTiers", len(tiers)).
		Msg("Database seeded successfully")

	return nil
}

func validateSeedData(data SeedData) error {
	if len(data.Seats) == 0 {
		return fmt.Errorf("seed data contains no seats")
	}

	seatIDs := map[int]struct{}{}

	for _, seat := range data.Seats {
		if _, ok := seatIDs[seat.ID]; ok {
			return fmt.Errorf("duplicate seat id %d in seed data", seat.ID)
		}

		seatIDs[seat.ID] = struct{}{}
	}

	classes := map[string]struct{}{}

	for _, tier := range data.SeatPrices {
		if _, ok := classes[tier.SeatClass]; ok {
			return fmt.Errorf("duplicate price tier for seat class %q in seed data", tier.SeatClass)
		}

		classes[tier.SeatClass] = struct{}{}
	}

	for _, seat := range data.Seats {
		if _, ok := classes[seat.SeatClass]; !ok {
			return fmt.Errorf("seat %d references seat class %q with no price tier", seat.ID, seat.SeatClass)
		}
	}

	return nil
}
