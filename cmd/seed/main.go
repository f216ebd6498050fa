package main

import (
	"context"

	"github.com/ShubhamGaur-277/Booking-Service/config"
	"github.com/ShubhamGaur-277/Booking-Service/di"
	"github.com/ShubhamGaur-277/Booking-Service/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	seeder := di.InitializeSeeder()
	if err := seeder.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed database")
	}
}
