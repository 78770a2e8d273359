package gallery

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"madison/infras/otel"
	"madison/infras/s3"
	"madison/internal/domains/gallery/model"
	"madison/internal/domains/gallery/model/dto"
	"madison/internal/domains/gallery/service"
	"madison/shared/constant"
	gDto "madison/shared/dto"
	"madison/shared/validator"
	"madison/transport/http/response"
)

type Handler struct {
	service service.Gallery
	s3      s3.S3
	otel    otel.Otel
}

func New(service service.Gallery, s3 s3.S3, otel otel.Otel) Handler {
	return Handler{
		service: service,
		s3:      s3,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/galleries", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateGallery)
		routerGroup.Get("/", handler.GetGalleries)
		routerGroup.Get("/{id}", handler.GetGalleryByID)
		routerGroup.Patch("/{id}", handler.UpdateGallery)
		routerGroup.Delete("/{id}", handler.DeleteGallery)
		routerGroup.Post("/upload", handler.UploadImage)
		routerGroup.Delete("/images", handler.DeleteImages)
	})
}

func (handler *Handler) newScope(r *http.Request, op string) (ctx context.Context, scope otel.Scope) {
	return handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+op)
}

// fail traces and logs the error, then writes the mapped HTTP response.
func fail(w http.ResponseWriter, scope otel.Scope, err error, msg string) {
	scope.TraceError(err)
	log.Error().Err(err).Msg(msg)
	response.WithError(w, err)
}

func auditEvent(ctx context.Context, scope otel.Scope, action string) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent(action + " by user " + user)
}

// galleryFilters builds the list filter from the supported query parameters.
func galleryFilters(r *http.Request) gDto.FilterGroup {
	group := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	query := r.URL.Query()

	for _, field := range []string{model.FieldTitle, model.FieldDescription} {
		if value := query.Get(field); value != "" {
			group.Filters = append(group.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorLike,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	if category := query.Get(model.FieldCategory); category != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
			Table:    model.TableName,
		})
	}

	return group
}

// CreateGallery handles the creation of a new gallery.
// @Summary Create a new gallery
// @Description Create a new gallery with the provided details.
// @Tags Gallery
// @Accept json
// @Produce json
// @Param request body dto.CreateGalleryRequest true "Create Gallery Request"
// @Success 201 {object} response.Message "Gallery created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/galleries [post]
// @Security BearerAuth
func (handler *Handler) CreateGallery(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.newScope(request, "CreateGallery")
	defer scope.End()

	req := dto.CreateGalleryRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		fail(writer, scope, err, "failed to validate request body")

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		fail(writer, scope, err, "failed to create gallery")

		return
	}

	auditEvent(ctx, scope, "Gallery created successfully")
	response.WithMessage(writer, http.StatusCreated, "Gallery created successfully")
}

// GetGalleries retrieves all galleries based on query parameters.
// @Summary Get all galleries
// @Description Retrieve all galleries with optional filtering and pagination.
// @Tags Gallery
// @Accept json
// @Produce json
// @Param title query string false "Filter by title"
// @Param description query string false "Filter by description"
// @Param category query string false "Filter by category (rooms, restaurant, pool, events, exterior)"
// @Success 200 {object} dto.GetGalleriesResponse "List of galleries"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/galleries [get]
func (handler *Handler) GetGalleries(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.newScope(r, "GetGalleries")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	galleries, err := handler.service.GetAll(ctx, queryParams, galleryFilters(r))
	if err != nil {
		fail(w, scope, err, "failed to get galleries")

		return
	}

	scope.AddEvent("Galleries retrieved successfully")
	response.WithJSON(w, http.StatusOK, galleries)
}

// GetGalleryByID retrieves a gallery by its ID.
// @Summary Get a gallery by ID
// @Description Retrieve a gallery by its unique identifier.
// @Tags Gallery
// @Accept json
// @Produce json
// @Param id path string true "Gallery ID"
// @Success 200 {object} dto.GalleryResponse "Gallery details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/galleries/{id} [get]
func (handler *Handler) GetGalleryByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.newScope(r, "GetGalleryByID")
	defer scope.End()

	gallery, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		fail(w, scope, err, "failed to get gallery by ID")

		return
	}

	scope.AddEvent("Gallery retrieved successfully")
	response.WithJSON(w, http.StatusOK, gallery)
}

// UpdateGallery updates an existing gallery by its ID.
// @Summary Update a gallery by ID
// @Description Update the details of an existing gallery.
// @Tags Gallery
// @Accept json
// @Produce json
// @Param id path string true "Gallery ID"
// @Param request body dto.UpdateGalleryRequest true "Update Gallery Request"
// @Success 200 {object} response.Message "Gallery updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/galleries/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateGallery(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.newScope(r, "UpdateGallery")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateGalleryRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		fail(w, scope, err, "failed to validate request body")

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		fail(w, scope, err, "failed to update gallery")

		return
	}

	auditEvent(ctx, scope, "Gallery updated successfully")
	response.WithMessage(w, http.StatusOK, "Gallery updated successfully")
}

// DeleteGallery deletes a gallery by its ID.
// @Summary Delete a gallery by ID
// @Description Delete a gallery using its unique identifier.
// @Tags Gallery
// @Accept json
// @Produce json
// @Param id path string true "Gallery ID"
// @Success 200 {object} response.Message "Gallery deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/galleries/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteGallery(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.newScope(r, "DeleteGallery")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		fail(w, scope, err, "failed to delete gallery")

		return
	}

	auditEvent(ctx, scope, "Gallery deleted successfully")
	response.WithMessage(w, http.StatusOK, "Gallery deleted successfully")
}

// UploadImage handles image upload to S3.
// @Summary Upload an image to S3
// @Description Upload an image file to S3 and return the URL.
// @Tags Gallery
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file to upload"
// @Success 200 {object} dto.UploadImageResponse "Image uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/galleries/upload [post]
// @Security BearerAuth
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.newScope(r, "UploadImage")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		fail(w, scope, err, "failed to parse multipart form")

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		fail(w, scope, err, "failed to get file from form")

		return
	}
	defer file.Close()

	res, err := handler.service.UploadImage(ctx, dto.UploadImageRequest{
		Image:     fileHeader,
		ImageFile: file,
	})
	if err != nil {
		fail(w, scope, err, "failed to upload file")

		return
	}

	auditEvent(ctx, scope, "Image uploaded successfully")
	response.WithJSON(w, http.StatusOK, res)
}

// DeleteImages handles deletion of multiple images from S3.
// @Summary Delete images from S3
// @Description Delete multiple images from S3 by providing their URLs.
// @Tags Gallery
// @Accept json
// @Produce json
// @Param request body dto.DeleteImagesRequest true "Delete Images Request"
// @Success 200 {object} response.Message "Images deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/galleries/images [delete]
// @Security BearerAuth
func (handler *Handler) DeleteImages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.newScope(r, "DeleteImages")
	defer scope.End()

	req := dto.DeleteImagesRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		fail(w, scope, err, "failed to validate request body")

		return
	}

	if err := handler.service.DeleteImagesFromS3(ctx, req); err != nil {
		fail(w, scope, err, "failed to delete images from S3")

		return
	}

	auditEvent(ctx, scope, "Images deleted successfully")
	response.WithMessage(w, http.StatusOK, "Images deleted successfully")
}
