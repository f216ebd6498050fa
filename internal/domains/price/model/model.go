package model

import (
	"github.com/ShubhamGaur-277/Booking-Service/shared/constant"
)

const (
	TableName  = "seat_prices"
	EntityName = "price"

	FieldID          = "id"
	FieldSeatClass   = "seat_class"
	FieldMinPrice    = "min_price"
	FieldNormalPrice = "normal_price"
	FieldMaxPrice    = "max_price"
)

// PriceTier holds the three price points of one seat class. An empty string
// means the point is not set for that class and the band falls back to its
// neighbour.
type PriceTier struct {
	ID          int    `db:"id"`
	SeatClass   string `db:"seat_class"`
	MinPrice    string `db:"min_price"`
	NormalPrice string `db:"normal_price"`
	MaxPrice    string `db:"max_price"`
}

// PriceAt selects the price for the given occupancy percentage. Below the low
// bound the minimum price applies, above the high bound the maximum, and the
// normal price covers the inclusive band in between. Each band falls back to
// the normal price (the middle band to the maximum) when its point is unset.
func (t *PriceTier) PriceAt(occupancyPercent float64) string {
	switch {
	case occupancyPercent < constant.OccupancyLowBound:
		if t.MinPrice != constant.Empty {
			return t.MinPrice
		}

		return t.NormalPrice
	case occupancyPercent <= constant.OccupancyHighBound:
		if t.NormalPrice != constant.Empty {
			return t.NormalPrice
		}

		return t.MaxPrice
	default:
		if t.MaxPrice != constant.Empty {
			return t.MaxPrice
		}

		return t.NormalPrice
	}
}
