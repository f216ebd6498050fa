package dto

import (
	"github.com/ShubhamGaur-277/Booking-Service/internal/domains/seat/model"
)

type SeatResponse struct {
	ID             int    `json:"id"`
	SeatIdentifier string `json:"seat_identifier"`
	SeatClass      string `json:"seat_class"`
	IsBooked       bool   `json:"is_booked"`
}

func (r *SeatResponse) FromModel(model model.Seat) {
	r.ID = model.ID
	r.SeatIdentifier = model.SeatIdentifier
	r.SeatClass = model.SeatClass
	r.IsBooked = model.IsBooked
}

func FromModels(models []model.Seat) []SeatResponse {
	res := make([]SeatResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

// SeatPriceResponse is the seat detail enriched with the occupancy-tiered
// price of its class at the time of the request.
type SeatPriceResponse struct {
	SeatResponse
	Price string `json:"price"`
}

func (r *SeatPriceResponse) FromModel(model model.Seat, price string) {
	r.SeatResponse.FromModel(model)
	r.Price = price
}
