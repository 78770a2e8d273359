package booking

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"madison/infras/otel"
	"madison/internal/domains/booking/model"
	"madison/internal/domains/booking/model/dto"
	"madison/internal/domains/booking/service"
	"madison/shared/constant"
	gDto "madison/shared/dto"
	"madison/shared/validator"
	"madison/transport/http/response"
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
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Patch("/{id}", handler.UpdateBooking)
		routerGroup.Delete("/{id}", handler.DeleteBooking)
	})
}

func (handler *Handler) newScope(r *http.Request, op string) (context.Context, otel.Scope) {
	return handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+op)
}

func fail(w http.ResponseWriter, scope otel.Scope, err error, msg string) {
	scope.TraceError(err)
	log.Error().Err(err).Msg(msg)
	response.WithError(w, err)
}

func auditEvent(ctx context.Context, scope otel.Scope, action string) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent(action + " by user " + user)
}

// bookingFilters builds the list filter from the query string. The check-in
// bounds share a column, so each carries its own argument name.
func bookingFilters(r *http.Request) gDto.FilterGroup {
	query := r.URL.Query()

	group := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, field := range []string{model.FieldRoomID, model.FieldStatus, model.FieldPaymentStatus} {
		if value := query.Get(field); value != "" {
			group.Filters = append(group.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	bounds := []struct {
		param    string
		operator string
	}{
		{"check_in_from", gDto.FilterOperatorGreaterEq},
		{"check_in_to", gDto.FilterOperatorLessEq},
	}

	for _, bound := range bounds {
		if value := query.Get(bound.param); value != "" {
			group.Filters = append(group.Filters, gDto.Filter{
				Field:    model.FieldCheckIn,
				Operator: bound.operator,
				Value:    value,
				Table:    model.TableName,
				ArgName:  bound.param,
			})
		}
	}

	return group
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a new booking
// @Description Create a booking. The total price is computed from the room's nightly rate and the stay length.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} dto.BookingResponse "Created booking"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.newScope(request, "CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		fail(writer, scope, err, "failed to validate request body")

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		fail(writer, scope, err, "failed to create booking")

		return
	}

	auditEvent(ctx, scope, "Booking created successfully")
	response.WithJSON(writer, http.StatusCreated, booking)
}

// GetBookings retrieves all bookings based on query parameters.
// @Summary Get all bookings
// @Description Retrieve all bookings with optional filtering and pagination.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param room_id query string false "Filter by room ID"
// @Param status query string false "Filter by status (pending, confirmed, cancelled, completed)"
// @Param payment_status query string false "Filter by payment status (pending, partial, completed, refunded)"
// @Param check_in_from query string false "Bookings checking in on or after this date (YYYY-MM-DD)"
// @Param check_in_to query string false "Bookings checking in on or before this date (YYYY-MM-DD)"
// @Success 200 {object} dto.GetBookingsResponse "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.newScope(r, "GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	bookings, err := handler.service.GetAll(ctx, queryParams, bookingFilters(r))
	if err != nil {
		fail(w, scope, err, "failed to get bookings")

		return
	}

	scope.AddEvent("Bookings retrieved successfully")
	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByID retrieves a booking by its ID.
// @Summary Get a booking by ID
// @Description Retrieve a booking by its unique identifier.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse "Booking details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.newScope(r, "GetBookingByID")
	defer scope.End()

	booking, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		fail(w, scope, err, "failed to get booking by ID")

		return
	}

	scope.AddEvent("Booking retrieved successfully")
	response.WithJSON(w, http.StatusOK, booking)
}

// UpdateBooking updates an existing booking by its ID.
// @Summary Update a booking by ID
// @Description Update the status, payment or contact details of an existing booking.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingRequest true "Update Booking Request"
// @Success 200 {object} response.Message "Booking updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.newScope(r, "UpdateBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		fail(w, scope, err, "failed to validate request body")

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		fail(w, scope, err, "failed to update booking")

		return
	}

	auditEvent(ctx, scope, "Booking updated successfully")
	response.WithMessage(w, http.StatusOK, "Booking updated successfully")
}

// DeleteBooking deletes a booking by its ID.
// @Summary Delete a booking by ID
// @Description Delete a booking using its unique identifier.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.newScope(r, "DeleteBooking")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		fail(w, scope, err, "failed to delete booking")

		return
	}

	auditEvent(ctx, scope, "Booking deleted successfully")
	response.WithMessage(w, http.StatusOK, "Booking deleted successfully")
}
