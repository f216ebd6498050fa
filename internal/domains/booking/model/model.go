package model

import (
	"github.com/ShubhamGaur-277/Booking-Service/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID     = "id"
	FieldSeatID = "seat_id"
	FieldName   = "name"
	FieldPhone  = "phone"
)

// Booking is one ledger row. ID doubles as the booking id handed back to the
// caller, and SeatID links the row to the seat it reserved.
type Booking struct {
	ID     string `db:"id"`
	SeatID int    `db:"seat_id"`
	Name   string `db:"name"`
	Phone  int64  `db:"phone"`
	model.Metadata
}
