package testimonial

import (
	"net/http"

	"madison/infras/otel"
	"madison/internal/domains/testimonial/model"
	"madison/internal/domains/testimonial/model/dto"
	"madison/internal/domains/testimonial/service"
	"madison/shared"
	"madison/shared/constant"
	gDto "madison/shared/dto"
	"madison/shared/validator"
	"madison/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Testimonial
	otel    otel.Otel
}

func New(service service.Testimonial, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/testimonials", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTestimonial)
		routerGroup.Get("/", handler.GetTestimonials)
		routerGroup.Get("/{id}", handler.GetTestimonialByID)
		routerGroup.Patch("/{id}", handler.UpdateTestimonial)
		routerGroup.Delete("/{id}", handler.DeleteTestimonial)
	})
}

// CreateTestimonial handles a new guest testimonial submission.
// @Summary Submit a testimonial
// @Description Submit a guest testimonial. It stays hidden until approved by staff.
// @Tags Testimonial
// @Accept json
// @Produce json
// @Param request body dto.CreateTestimonialRequest true "Create Testimonial Request"
// @Success 201 {object} response.Message "Testimonial submitted successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/testimonials [post]
func (handler *Handler) CreateTestimonial(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTestimonial")
	defer scope.End()

	req := dto.CreateTestimonialRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create testimonial")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Testimonial submitted successfully")

	response.WithMessage(writer, http.StatusCreated, "Testimonial submitted successfully")
}

// GetTestimonials retrieves testimonials based on query parameters.
// @Summary Get testimonials
// @Description Retrieve testimonials with optional filtering and pagination. The public site passes approved=true.
// @Tags Testimonial
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param approved query boolean false "Filter by approval status"
// @Param rating query integer false "Minimum rating (1-5)"
// @Success 200 {object} dto.GetTestimonialsResponse "List of testimonials"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/testimonials [get]
func (handler *Handler) GetTestimonials(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTestimonials")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if approved := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldApproved)); approved != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldApproved,
			Operator: gDto.FilterOperatorEq,
			Value:    *approved,
			Table:    model.TableName,
		})
	}

	if rating, err := shared.ConvertStringToInt(r.URL.Query().Get(model.FieldRating)); err == nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRating,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    rating,
			Table:    model.TableName,
		})
	}

	testimonials, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get testimonials")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Testimonials retrieved successfully")

	response.WithJSON(w, http.StatusOK, testimonials)
}

// GetTestimonialByID retrieves a testimonial by its ID.
// @Summary Get a testimonial by ID
// @Description Retrieve a testimonial by its unique identifier.
// @Tags Testimonial
// @Accept json
// @Produce json
// @Param id path string true "Testimonial ID"
// @Success 200 {object} dto.TestimonialResponse "Testimonial details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/testimonials/{id} [get]
func (handler *Handler) GetTestimonialByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTestimonialByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	testimonial, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get testimonial by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Testimonial retrieved successfully")

	response.WithJSON(w, http.StatusOK, testimonial)
}

// UpdateTestimonial updates an existing testimonial by its ID.
// @Summary Update a testimonial by ID
// @Description Update or approve an existing testimonial.
// @Tags Testimonial
// @Accept json
// @Produce json
// @Param id path string true "Testimonial ID"
// @Param request body dto.UpdateTestimonialRequest true "Update Testimonial Request"
// @Success 200 {object} response.Message "Testimonial updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/testimonials/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTestimonial")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateTestimonialRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update testimonial")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Testimonial updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Testimonial updated successfully")
}

// DeleteTestimonial deletes a testimonial by its ID.
// @Summary Delete a testimonial by ID
// @Description Delete a testimonial using its unique identifier.
// @Tags Testimonial
// @Accept json
// @Produce json
// @Param id path string true "Testimonial ID"
// @Success 200 {object} response.Message "Testimonial deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/testimonials/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTestimonial")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete testimonial")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Testimonial deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Testimonial deleted successfully")
}
