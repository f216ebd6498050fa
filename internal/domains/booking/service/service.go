package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ShubhamGaur-277/Booking-Service/config"
	"github.com/ShubhamGaur-277/Booking-Service/infras/kafka"
	"github.com/ShubhamGaur-277/Booking-Service/infras/otel"
	"github.com/ShubhamGaur-277/Booking-Service/infras/postgres"
	"github.com/ShubhamGaur-277/Booking-Service/internal/domains/booking/model"
	"github.com/ShubhamGaur-277/Booking-Service/internal/domains/booking/model/dto"
	"github.com/ShubhamGaur-277/Booking-Service/internal/domains/booking/repository"
	priceModel "github.com/ShubhamGaur-277/Booking-Service/internal/domains/price/model"
	priceRepo "github.com/ShubhamGaur-277/Booking-Service/internal/domains/price/repository"
	seatModel "github.com/ShubhamGaur-277/Booking-Service/internal/domains/seat/model"
	seatRepo "github.com/ShubhamGaur-277/Booking-Service/internal/domains/seat/repository"
	"github.com/ShubhamGaur-277/Booking-Service/shared"
	"github.com/ShubhamGaur-277/Booking-Service/shared/cache"
	"github.com/ShubhamGaur-277/Booking-Service/shared/constant"
	gDto "github.com/ShubhamGaur-277/Booking-Service/shared/dto"
	"github.com/ShubhamGaur-277/Booking-Service/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllBookings = "booking:gets"

	// Committed bookings change seat state and occupancy pricing, so the
	// whole seat cache namespace goes with them.
	cacheSeatPrefix = "seat:get"
)

type Booking interface {
	SubmitBatch(ctx context.Context, req []dto.BookingItemRequest) ([]dto.BookingReceipt, error)
	Find(ctx context.Context, name, phone string) ([]dto.BookingResponse, error)
}

type serviceImpl struct {
	repo      repository.Booking
	seatRepo  seatRepo.Seat
	priceRepo priceRepo.Price
	db        *postgres.Connection
	cfg       *config.Config
	cache     cache.RedisCache
	kafka     kafka.Client
	otel      otel.Otel
}

func New(
	repo repository.Booking,
	seatRepo seatRepo.Seat,
	priceRepo priceRepo.Price,
	db *postgres.Connection,
	cfg *config.Config,
	cache cache.RedisCache,
	kafka kafka.Client,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:      repo,
		seatRepo:  seatRepo,
		priceRepo: priceRepo,
		db:        db,
		cfg:       cfg,
		cache:     cache,
		kafka:     kafka,
		otel:      otel,
	}
}

// SubmitBatch books every requested seat inside one transaction. Seats are
// processed in request order; a missing or already booked seat aborts the
// whole batch and nothing is committed. Each seat is claimed with a
// conditional update, and its price is the occupancy of its class at the
// moment the claim succeeds.
func (s *serviceImpl) SubmitBatch(ctx context.Context, req []dto.BookingItemRequest) (res []dto.BookingReceipt, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.SubmitBatch")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := s.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin booking transaction")

		return nil, fmt.Errorf("failed to begin booking transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				log.Error().Err(rollbackErr).Msg("failed to rollback booking transaction")
			}
		}
	}()

	res = make([]dto.BookingReceipt, 0, len(req))
	events := make([]kafka.Message, 0, len(req))

	for _, item := range req {
		var seat seatModel.Seat

		seat, err = s.seatRepo.GetTx(ctx, tx, shared.FilterByID(item.SeatID, seatModel.FieldID, seatModel.TableName))
		if err != nil {
			log.Error().Err(err).Int("seatId", item.SeatID).Msg("failed to get seat")

			return nil, fmt.Errorf("failed to get seat: %w", err)
		}

		if seat.ID == 0 {
			err = failure.NotFound(fmt.Sprintf("seat with seatId %d does not exist", item.SeatID))

			return nil, err
		}

		var reserved bool

		reserved, err = s.seatRepo.ReserveTx(ctx, tx, item.SeatID)
		if err != nil {
			log.Error().Err(err).Int("seatId", item.SeatID).Msg("failed to reserve seat")

			return nil, fmt.Errorf("failed to reserve seat: %w", err)
		}

		if !reserved {
			err = failure.BadRequestFromString(fmt.Sprintf("seat with seatId %d is already booked", item.SeatID))

			return nil, err
		}

		var occupancy seatModel.Occupancy

		occupancy, err = s.seatRepo.OccupancyTx(ctx, tx, seat.SeatClass)
		if err != nil {
			log.Error().Err(err).Str("seatClass", seat.SeatClass).Msg("failed to get seat occupancy")

			return nil, fmt.Errorf("failed to get seat occupancy: %w", err)
		}

		var tier priceModel.PriceTier

		tier, err = s.priceRepo.Get(ctx, filterBySeatClass(seat.SeatClass))
		if err != nil {
			log.Error().Err(err).Str("seatClass", seat.SeatClass).Msg("failed to get price tier")

			return nil, fmt.Errorf("failed to get price tier: %w", err)
		}

		if tier.SeatClass == constant.Empty {
			err = failure.NotFound("price not found for seat class")

			return nil, err
		}

		price := tier.PriceAt(occupancy.Percent())
		booking := item.ToModel()

		if err = s.repo.InsertTx(ctx, tx, booking); err != nil {
			log.Error().Err(err).Int("seatId", item.SeatID).Msg("failed to insert booking")

			return nil, fmt.Errorf("failed to insert booking: %w", err)
		}

		res = append(res, dto.BookingReceipt{BookingID: booking.ID, Price: price})
		events = append(events, kafka.Message{
			Key: booking.ID,
			Value: dto.BookingCreatedEvent{
				BookingID: booking.ID,
				SeatID:    booking.SeatID,
				SeatClass: seat.SeatClass,
				Price:     price,
				Name:      booking.Name,
				Phone:     booking.Phone,
			},
		})
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit booking transaction")

		return nil, fmt.Errorf("failed to commit booking transaction: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheSeatPrefix)
		shared.InvalidateCaches(c, s.cache, cacheGetAllBookings)

		if s.cfg.Kafka.Enable {
			if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topic.BookingCreated, events...); err != nil {
				log.Error().Err(err).Msg("failed to publish booking created events")
			}
		}
	}()

	return res, nil
}

// Find returns the bookings matching the given name or phone. At least one of
// the two must be provided.
func (s *serviceImpl) Find(ctx context.Context, name, phone string) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Find")
	defer scope.End()
	defer scope.TraceIfError(err)

	if name == constant.Empty && phone == constant.Empty {
		return nil, failure.MissingBookingIdentifier
	}

	filters := []any{}

	if name != constant.Empty {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldName,
			Value:    name,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	if phone != constant.Empty {
		phoneNumber, parseErr := strconv.ParseInt(phone, 10, 64)
		if parseErr != nil {
			return nil, failure.BadRequestFromString("number must be numeric") //nolint:wrapcheck
		}

		filters = append(filters, gDto.Filter{
			Field:    model.FieldPhone,
			Value:    phoneNumber,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	filter := gDto.FilterGroup{Filters: filters, Operator: gDto.FilterGroupOperatorOr}
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBookings, gDto.QueryParams{}, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	res = dto.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func filterBySeatClass(seatClass string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    priceModel.FieldSeatClass,
				Value:    seatClass,
				Operator: gDto.FilterOperatorEq,
				Table:    priceModel.TableName,
			},
		},
	}
}
