package reservation

import (
	"net/http"

	"madison/infras/otel"
	"madison/internal/domains/reservation/model/dto"
	"madison/internal/domains/reservation/service"
	"madison/shared/constant"
	"madison/shared/validator"
	"madison/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/quote", handler.Quote)
		routerGroup.Post("/", handler.Submit)
	})
}

// Quote prices a stay for a room and date range.
// @Summary Price a stay
// @Description Compute nights and total price for a stay. Dates and guest count are corrected by the funnel guards before pricing.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.QuoteRequest true "Quote Request"
// @Success 200 {object} dto.QuoteResponse "Stay quote"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/quote [post]
func (handler *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Quote")
	defer scope.End()

	req := dto.QuoteRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	quote, err := handler.service.Quote(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to quote reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation quoted successfully")

	response.WithJSON(w, http.StatusOK, quote)
}

// Submit finalizes a reservation.
// @Summary Submit a reservation
// @Description Validate the full reservation and finalize it. Online reservations become pending bookings, direct-message reservations get a pre-filled WhatsApp link.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.SubmitRequest true "Submit Reservation Request"
// @Success 201 {object} dto.SubmitResponse "Finalized reservation"
// @Failure 400 {object} dto.SubmitResponse "Validation failures per field"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations [post]
func (handler *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Submit")
	defer scope.End()

	req := dto.SubmitRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	result, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit reservation")

		response.WithError(w, err)

		return
	}

	if !result.Valid {
		scope.AddEvent("Reservation rejected by funnel validation")

		response.WithJSON(w, http.StatusBadRequest, result)

		return
	}

	scope.AddEvent("Reservation submitted successfully")

	response.WithJSON(w, http.StatusCreated, result)
}
