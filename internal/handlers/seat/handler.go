package seat

import (
	"net/http"
	"strconv"

	"github.com/ShubhamGaur-277/Booking-Service/infras/otel"
	"github.com/ShubhamGaur-277/Booking-Service/internal/domains/seat/service"
	"github.com/ShubhamGaur-277/Booking-Service/shared/constant"
	gDto "github.com/ShubhamGaur-277/Booking-Service/shared/dto"
	"github.com/ShubhamGaur-277/Booking-Service/shared/failure"
	"github.com/ShubhamGaur-277/Booking-Service/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Seat
	otel    otel.Otel
}

func New(service service.Seat, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/seats", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSeats)
		routerGroup.Get("/{id}", handler.GetSeatByID)
	})
}

// GetSeats lists every seat, ordered by seat class and then id. Pagination is
// optional; without page and limit the full inventory is returned.
func (handler *Handler) GetSeats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSeats")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	seats, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get seats")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Seats retrieved successfully")

	response.WithJSON(w, http.StatusOK, seats)
}

// GetSeatByID returns one seat together with the current price of its class.
func (handler *Handler) GetSeatByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSeatByID")
	defer scope.End()

	id, err := strconv.Atoi(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid seat id")

		response.WithError(w, failure.BadRequestFromString("seat id must be numeric"))

		return
	}

	seat, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get seat by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Seat retrieved successfully")

	response.WithJSON(w, http.StatusOK, seat)
}
