package router

import (
	"github.com/ShubhamGaur-277/Booking-Service/internal/handlers/booking"
	"github.com/ShubhamGaur-277/Booking-Service/internal/handlers/seat"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Seat    seat.Handler
	Booking booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes mounts every domain router at the root. The booking endpoints
// keep their historical paths (singular /booking for create, plural /bookings
// for lookup).
func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Seat.Router(router)
	r.DomainHandlers.Booking.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
