package service

import (
	"context"
	"fmt"

	"github.com/ShubhamGaur-277/Booking-Service/config"
	"github.com/ShubhamGaur-277/Booking-Service/infras/otel"
	priceModel "github.com/ShubhamGaur-277/Booking-Service/internal/domains/price/model"
	priceRepo "github.com/ShubhamGaur-277/Booking-Service/internal/domains/price/repository"
	"github.com/ShubhamGaur-277/Booking-Service/internal/domains/seat/model"
	"github.com/ShubhamGaur-277/Booking-Service/internal/domains/seat/model/dto"
	"github.com/ShubhamGaur-277/Booking-Service/internal/domains/seat/repository"
	"github.com/ShubhamGaur-277/Booking-Service/shared"
	"github.com/ShubhamGaur-277/Booking-Service/shared/cache"
	"github.com/ShubhamGaur-277/Booking-Service/shared/constant"
	gDto "github.com/ShubhamGaur-277/Booking-Service/shared/dto"
	"github.com/ShubhamGaur-277/Booking-Service/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetSeat     = "seat:get"
	cacheGetAllSeats = "seat:gets"
)

type Seat interface {
	GetAll(ctx context.Context, req gDto.QueryParams) ([]dto.SeatResponse, error)
	Get(ctx context.Context, id int) (dto.SeatPriceResponse, error)
}

type serviceImpl struct {
	repo      repository.Seat
	priceRepo priceRepo.Price
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Seat, priceRepo priceRepo.Price, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Seat {
	return &serviceImpl{
		repo:      repo,
		priceRepo: priceRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams) (res []dto.SeatResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".seat.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	// The listing is always ordered by class, then id within a class.
	req.SortBy = model.FieldSeatClass + ", " + model.FieldID
	req.SortDir = "ASC"

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllSeats, req, gDto.FilterGroup{})

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for seats")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, req, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get seats")

		return res, fmt.Errorf("failed to get seats: %w", err)
	}

	res = dto.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save seats to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.SeatPriceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".seat.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetSeat, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for seat")

		return res, nil
	}

	seat, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get seat")

		return res, fmt.Errorf("failed to get seat: %w", err)
	}

	if seat.ID == 0 {
		return res, failure.NotFound("seat not found") // nolint:wrapcheck
	}

	occupancy, err := s.repo.Occupancy(ctx, seat.SeatClass)
	if err != nil {
		log.Error().Err(err).Msg("failed to get seat occupancy")

		return res, fmt.Errorf("failed to get seat occupancy: %w", err)
	}

	if occupancy.Total == 0 {
		log.Error().Str("seatClass", seat.SeatClass).Msg("seat class has no seats")

		return res, failure.InternalError(fmt.Errorf("seat class %q has no seats", seat.SeatClass)) // nolint:wrapcheck
	}

	tier, err := s.priceRepo.Get(ctx, filterBySeatClass(seat.SeatClass))
	if err != nil {
		log.Error().Err(err).Msg("failed to get price tier")

		return res, fmt.Errorf("failed to get price tier: %w", err)
	}

	if tier.SeatClass == constant.Empty {
		return res, failure.NotFound("price not found for seat class") // nolint:wrapcheck
	}

	res.FromModel(seat, tier.PriceAt(occupancy.Percent()))

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save seat to cache")
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
