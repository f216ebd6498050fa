package dto

import (
	"github.com/google/uuid"

	"github.com/ShubhamGaur-277/Booking-Service/internal/domains/booking/model"
	"github.com/ShubhamGaur-277/Booking-Service/shared/constant"
	gDto "github.com/ShubhamGaur-277/Booking-Service/shared/dto"
	gModel "github.com/ShubhamGaur-277/Booking-Service/shared/model"
	"github.com/ShubhamGaur-277/Booking-Service/shared/timezone"
)

// BookingItemRequest is one element of the batch body. The body itself is a
// bare JSON array of these.
type BookingItemRequest struct {
	SeatID int    `json:"seatId" validate:"required,gt=0"`
	Name   string `json:"name"   validate:"required,max=100"`
	Phone  int64  `json:"number" validate:"required"`
}

func (c *BookingItemRequest) ToModel() model.Booking {
	return model.Booking{
		ID:     uuid.NewString(),
		SeatID: c.SeatID,
		Name:   c.Name,
		Phone:  c.Phone,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  constant.SystemActor,
			ModifiedBy: constant.SystemActor,
		},
	}
}

// BookingReceipt is the per-seat confirmation returned for a batch.
type BookingReceipt struct {
	BookingID string `json:"bookingId"`
	Price     string `json:"price"`
}

type BookingResponse struct {
	BookingID string `json:"bookingId"`
	SeatID    int    `json:"seatId"`
	Name      string `json:"name"`
	Phone     int64  `json:"number"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.BookingID = model.ID
	r.SeatID = model.SeatID
	r.Name = model.Name
	r.Phone = model.Phone
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Booking) []BookingResponse {
	res := make([]BookingResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

// BookingCreatedEvent is the payload published for each committed booking.
type BookingCreatedEvent struct {
	BookingID string `json:"bookingId"`
	SeatID    int    `json:"seatId"`
	SeatClass string `json:"seat_class"`
	Price     string `json:"price"`
	Name      string `json:"name"`
	Phone     int64  `json:"number"`
}
