package booking

import (
	"net/http"

	"github.com/ShubhamGaur-277/Booking-Service/infras/otel"
	"github.com/ShubhamGaur-277/Booking-Service/internal/domains/booking/model/dto"
	"github.com/ShubhamGaur-277/Booking-Service/internal/domains/booking/service"
	"github.com/ShubhamGaur-277/Booking-Service/shared/constant"
	"github.com/ShubhamGaur-277/Booking-Service/shared/validator"
	"github.com/ShubhamGaur-277/Booking-Service/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/booking", handler.CreateBookings)
	router.Get("/bookings", handler.GetBookings)
}

// CreateBookings books a batch of seats. The body is a bare JSON array of
// booking items and the whole batch either succeeds or fails together.
func (handler *Handler) CreateBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBookings")
	defer scope.End()

	req := []dto.BookingItemRequest{}

	if err := validator.ValidateSlice(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	receipts, err := handler.service.SubmitBatch(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit booking batch")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking batch submitted successfully")

	response.WithJSON(w, http.StatusOK, receipts)
}

// GetBookings looks up bookings by the name or phone query parameter. At
// least one of the two must be provided.
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	name := r.URL.Query().Get(constant.RequestParamName)
	phone := r.URL.Query().Get(constant.RequestParamPhone)

	bookings, err := handler.service.Find(ctx, name, phone)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}
