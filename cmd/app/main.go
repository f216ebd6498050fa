package main

import (
	"github.com/ShubhamGaur-277/Booking-Service/config"
	"github.com/ShubhamGaur-277/Booking-Service/di"
	"github.com/ShubhamGaur-277/Booking-Service/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
