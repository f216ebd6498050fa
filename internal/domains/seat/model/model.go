package model

const (
	TableName  = "seats"
	EntityName = "seat"

	FieldID             = "id"
	FieldSeatIdentifier = "seat_identifier"
	FieldSeatClass      = "seat_class"
	FieldIsBooked       = "is_booked"
)

type Seat struct {
	ID             int    `db:"id"`
	SeatIdentifier string `db:"seat_identifier"`
	SeatClass      string `db:"seat_class"`
	IsBooked       bool   `db:"is_booked"`
}

// Occupancy is one consistent snapshot of a seat class taken in a single
// statement, so booked can never exceed total.
type Occupancy struct {
	Total  int `db:"total"`
	Booked int `db:"booked"`
}

// Percent reports booked seats as a percentage of the class. An empty class
// has no meaningful occupancy; callers must reject it before pricing.
func (o *Occupancy) Percent() float64 {
	if o.Total == 0 {
		return 0
	}

	return float64(o.Booked) / float64(o.Total) * 100
}
