//go:build wireinject
// +build wireinject

package di

import (
	"github.com/ShubhamGaur-277/Booking-Service/config"
	"github.com/ShubhamGaur-277/Booking-Service/helper"
	"github.com/ShubhamGaur-277/Booking-Service/infras/kafka"
	"github.com/ShubhamGaur-277/Booking-Service/infras/otel"
	"github.com/ShubhamGaur-277/Booking-Service/infras/postgres"
	"github.com/ShubhamGaur-277/Booking-Service/infras/redis"
	"github.com/ShubhamGaur-277/Booking-Service/shared/cache"
	"github.com/ShubhamGaur-277/Booking-Service/transport/http"
	"github.com/ShubhamGaur-277/Booking-Service/transport/http/middleware"
	"github.com/ShubhamGaur-277/Booking-Service/transport/http/router"

	bookingRepository "github.com/ShubhamGaur-277/Booking-Service/internal/domains/booking/repository"
	bookingService "github.com/ShubhamGaur-277/Booking-Service/internal/domains/booking/service"
	priceRepository "github.com/ShubhamGaur-277/Booking-Service/internal/domains/price/repository"
	seatRepository "github.com/ShubhamGaur-277/Booking-Service/internal/domains/seat/repository"
	seatService "github.com/ShubhamGaur-277/Booking-Service/internal/domains/seat/service"

	bookingHandler "github.com/ShubhamGaur-277/Booking-Service/internal/handlers/booking"
	seatHandler "github.com/ShubhamGaur-277/Booking-Service/internal/handlers/seat"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var seatDomain = wire.NewSet(
	seatRepository.New,
	priceRepository.New,
	seatService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	seatDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	seatHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeSeeder() *helper.Seeder {
	wire.Build(
		configurations,
		wire.NewSet(postgres.New, otel.New),
		wire.NewSet(seatRepository.New, priceRepository.New),
		helper.NewSeeder,
	)

	return &helper.Seeder{}
}
