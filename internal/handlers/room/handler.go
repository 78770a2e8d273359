package room

import (
	"net/http"
	"strings"

	"madison/infras/otel"
	"madison/internal/domains/room/model"
	"madison/internal/domains/room/model/dto"
	"madison/internal/domains/room/service"
	"madison/shared"
	"madison/shared/constant"
	gDto "madison/shared/dto"
	"madison/shared/failure"
	"madison/shared/validator"
	"madison/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoom)
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/catalog", handler.GetCatalog)
		routerGroup.Get("/{id}", handler.GetRoomByID)
		routerGroup.Patch("/{id}", handler.UpdateRoom)
		routerGroup.Delete("/{id}", handler.DeleteRoom)
	})
}

// CreateRoom handles the creation of a new room.
// @Summary Create a new room
// @Description Create a new room with the provided details.
// @Tags Room
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Room name"
// @Param description formData string false "Room description"
// @Param short_description formData string false "Short description for listing cards"
// @Param price formData integer true "Nightly price in FCFA"
// @Param capacity formData integer true "Room capacity"
// @Param type formData string true "Room type (standard, vip, suite, luxe, duplex)"
// @Param amenities formData string false "Comma-separated amenity labels"
// @Param available formData boolean false "Room availability"
// @Param featured formData boolean false "Featured on the home page"
// @Param promo formData boolean false "Promotional rate flag"
// @Param image formData file false "Room image"
// @Success 201 {object} response.Message "Room created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [post]
// @Security BearerAuth
func (handler *Handler) CreateRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(writer, err)

		return
	}

	req := dto.CreateRoomRequest{
		Name:             request.FormValue("name"),
		Description:      request.FormValue("description"),
		ShortDescription: request.FormValue("short_description"),
		Type:             request.FormValue("type"),
	}

	if priceStr := request.FormValue("price"); priceStr != "" {
		if p, err := shared.ConvertStringToInt(priceStr); err == nil {
			req.Price = p
		}
	}

	if capStr := request.FormValue("capacity"); capStr != "" {
		if c, err := shared.ConvertStringToInt(capStr); err == nil {
			req.Capacity = c
		}
	}

	if amenities := request.FormValue("amenities"); amenities != "" {
		req.Amenities = splitAmenities(amenities)
	}

	if availableStr := request.FormValue("available"); availableStr != "" {
		req.Available = shared.ConvertStringToBool(availableStr)
	}

	if featuredStr := request.FormValue("featured"); featuredStr != "" {
		req.Featured = shared.ConvertStringToBool(featuredStr)
	}

	if promoStr := request.FormValue("promo"); promoStr != "" {
		req.Promo = shared.ConvertStringToBool(promoStr)
	}

	file, fileHeader, err := request.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Room created successfully")
}

// GetRooms retrieves all rooms based on query parameters.
// @Summary Get all rooms
// @Description Retrieve all rooms with optional filtering and pagination.
// @Tags Room
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param type query string false "Filter by room type"
// @Param capacity query integer false "Minimum capacity"
// @Param price query string false "Price range (min-max, min- or all)"
// @Param search query string false "Free-text search on name and description"
// @Param available query boolean false "Filter by availability"
// @Param featured query boolean false "Filter by featured flag"
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "List of rooms"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup, err := buildRoomFilter(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid room filter")

		response.WithError(w, err)

		return
	}

	rooms, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetCatalog serves the public room catalog with fixed-size pages.
// @Summary Get the public room catalog
// @Description Retrieve available rooms filtered by price range and type. Pages are 1-based and out-of-range pages clamp to the nearest valid page.
// @Tags Room
// @Accept json
// @Produce json
// @Param price query string false "Price range (min-max, min- or all)"
// @Param type query string false "Room type"
// @Param page query integer false "1-based page number"
// @Success 200 {object} response.Data[dto.RoomCatalogResponse] "Catalog page"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/catalog [get]
func (handler *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCatalog")
	defer scope.End()

	query := r.URL.Query()

	priceRange, err := gDto.ParsePriceRange(query.Get(model.FieldPrice))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid catalog price range")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	req := dto.CatalogRequest{
		PriceRange: priceRange,
		Type:       query.Get(model.FieldType),
		Page:       constant.DefaultValuePage,
	}

	if pageStr := query.Get(constant.RequestParamPage); pageStr != "" {
		if page, err := shared.ConvertStringToInt(pageStr); err == nil {
			req.Page = page
		}
	}

	catalogPage, err := handler.service.Catalog(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room catalog")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room catalog retrieved successfully")

	response.WithJSON(w, http.StatusOK, catalogPage)
}

// buildRoomFilter translates the listing query string into a filter group.
// The "all" sentinel and empty values mean no constraint for that field.
func buildRoomFilter(r *http.Request) (gDto.FilterGroup, error) {
	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if roomType := query.Get(model.FieldType); roomType != "" && roomType != gDto.PriceRangeAll {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    roomType,
			Table:    model.TableName,
		})
	}

	if capacityStr := query.Get(model.FieldCapacity); capacityStr != "" && capacityStr != gDto.PriceRangeAll {
		capacity, err := shared.ConvertStringToInt(capacityStr)
		if err != nil {
			return filterGroup, failure.BadRequestFromString("capacity must be a number") // nolint:wrapcheck
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCapacity,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    capacity,
			Table:    model.TableName,
		})
	}

	priceRange, err := gDto.ParsePriceRange(query.Get(model.FieldPrice))
	if err != nil {
		return filterGroup, failure.BadRequest(err) // nolint:wrapcheck
	}

	filterGroup.Filters = append(filterGroup.Filters, priceRange.Filters(model.FieldPrice, model.TableName)...)

	if search := query.Get("search"); search != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{
					Field:    model.FieldName,
					Operator: gDto.FilterOperatorLike,
					Value:    search,
					Table:    model.TableName,
				},
				gDto.Filter{
					ArgName:  "search_description",
					Field:    model.FieldDescription,
					Operator: gDto.FilterOperatorLike,
					Value:    search,
					Table:    model.TableName,
				},
			},
		})
	}

	if available := shared.ConvertStringToBool(query.Get(model.FieldAvailable)); available != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldAvailable,
			Operator: gDto.FilterOperatorEq,
			Value:    *available,
			Table:    model.TableName,
		})
	}

	if featured := shared.ConvertStringToBool(query.Get(model.FieldFeatured)); featured != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldFeatured,
			Operator: gDto.FilterOperatorEq,
			Value:    *featured,
			Table:    model.TableName,
		})
	}

	return filterGroup, nil
}

func splitAmenities(raw string) []string {
	parts := strings.Split(raw, ",")
	amenities := make([]string, 0, len(parts))

	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			amenities = append(amenities, trimmed)
		}
	}

	return amenities
}

// GetRoomByID retrieves a room by its ID.
// @Summary Get a room by ID
// @Description Retrieve a room by its unique identifier.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse] "Room details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [get]
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	room, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room retrieved successfully")

	response.WithJSON(w, http.StatusOK, room)
}

// UpdateRoom updates an existing room by its ID.
// @Summary Update a room by ID
// @Description Update the details of an existing room.
// @Tags Room
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Room ID"
// @Param name formData string false "Room name"
// @Param description formData string false "Room description"
// @Param short_description formData string false "Short description for listing cards"
// @Param price formData integer false "Nightly price in FCFA"
// @Param capacity formData integer false "Room capacity"
// @Param type formData string false "Room type"
// @Param amenities formData string false "Comma-separated amenity labels"
// @Param available formData boolean false "Room availability"
// @Param featured formData boolean false "Featured on the home page"
// @Param promo formData boolean false "Promotional rate flag"
// @Param image formData file false "Room image"
// @Success 200 {object} response.Message "Room updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	req := dto.UpdateRoomRequest{
		Name:             r.FormValue("name"),
		Description:      r.FormValue("description"),
		ShortDescription: r.FormValue("short_description"),
		Type:             r.FormValue("type"),
	}

	if priceStr := r.FormValue("price"); priceStr != "" {
		if p, err := shared.ConvertStringToInt(priceStr); err == nil {
			req.Price = &p
		}
	}

	if capStr := r.FormValue("capacity"); capStr != "" {
		if c, err := shared.ConvertStringToInt(capStr); err == nil {
			req.Capacity = &c
		}
	}

	if amenities := r.FormValue("amenities"); amenities != "" {
		req.Amenities = splitAmenities(amenities)
	}

	if availableStr := r.FormValue("available"); availableStr != "" {
		req.Available = shared.ConvertStringToBool(availableStr)
	}

	if featuredStr := r.FormValue("featured"); featuredStr != "" {
		req.Featured = shared.ConvertStringToBool(featuredStr)
	}

	if promoStr := r.FormValue("promo"); promoStr != "" {
		req.Promo = shared.ConvertStringToBool(promoStr)
	}

	file, fileHeader, err := r.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room updated successfully")
}

// DeleteRoom deletes a room by its ID.
// @Summary Delete a room by ID
// @Description Delete a room using its unique identifier.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Message "Room deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room deleted successfully")
}
