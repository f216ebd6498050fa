package main

import (
	"log"
	"os"

	"github.com/ShubhamGaur-277/Booking-Service/config"
	"github.com/ShubhamGaur-277/Booking-Service/helper"
)

const (
	argLength = 2
)

func main() {
	if len(os.Args) < argLength {
		log.Fatal("Migration direction (up/down/drop) is required")
	}

	cfg := config.Get()

	switch os.Args[1] {
	case "up":
		if err := helper.MigrateUp(cfg); err != nil {
			log.Fatal(err)
		}
	case "down":
		if err := helper.MigrateDown(cfg); err != nil {
			log.Fatal(err)
		}
	case "drop":
		if err := helper.MigrateDrop(cfg); err != nil {
			log.Fatal(err)
		}
	default:
		log.Fatal("Invalid direction. Use 'up', 'down' or 'drop'")
	}
}
