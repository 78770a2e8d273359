package blog

import (
	"net/http"

	"madison/infras/otel"
	"madison/internal/domains/blog/model"
	"madison/internal/domains/blog/model/dto"
	"madison/internal/domains/blog/service"
	"madison/shared"
	"madison/shared/constant"
	gDto "madison/shared/dto"
	"madison/shared/validator"
	"madison/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Blog
	otel    otel.Otel
}

func New(service service.Blog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/blog", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreatePost)
		routerGroup.Get("/", handler.GetPosts)
		routerGroup.Get("/slug/{slug}", handler.GetPostBySlug)
		routerGroup.Get("/{id}", handler.GetPostByID)
		routerGroup.Patch("/{id}", handler.UpdatePost)
		routerGroup.Delete("/{id}", handler.DeletePost)
	})
}

// CreatePost handles the creation of a new blog post.
// @Summary Create a new blog post
// @Description Create a blog post. The slug is derived from the title.
// @Tags Blog
// @Accept json
// @Produce json
// @Param request body dto.CreatePostRequest true "Create Post Request"
// @Success 201 {object} response.Message "Post created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/blog [post]
// @Security BearerAuth
func (handler *Handler) CreatePost(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePost")
	defer scope.End()

	req := dto.CreatePostRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create post")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Post created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Post created successfully")
}

// GetPosts retrieves blog posts based on query parameters.
// @Summary Get blog posts
// @Description Retrieve blog posts with optional filtering and pagination. The public site passes published=true.
// @Tags Blog
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param published query boolean false "Filter by publication status"
// @Param category query string false "Filter by category"
// @Success 200 {object} dto.GetPostsResponse "List of posts"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/blog [get]
func (handler *Handler) GetPosts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPosts")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if published := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldPublished)); published != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPublished,
			Operator: gDto.FilterOperatorEq,
			Value:    *published,
			Table:    model.TableName,
		})
	}

	if category := r.URL.Query().Get(model.FieldCategory); category != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
			Table:    model.TableName,
		})
	}

	posts, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get posts")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Posts retrieved successfully")

	response.WithJSON(w, http.StatusOK, posts)
}

// GetPostBySlug retrieves a blog post by its slug.
// @Summary Get a blog post by slug
// @Description Retrieve a blog post by its URL slug.
// @Tags Blog
// @Accept json
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} dto.PostResponse "Post details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/blog/slug/{slug} [get]
func (handler *Handler) GetPostBySlug(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPostBySlug")
	defer scope.End()

	slug := chi.URLParam(r, "slug")

	post, err := handler.service.GetBySlug(ctx, slug)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get post by slug")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Post retrieved successfully")

	response.WithJSON(w, http.StatusOK, post)
}

// GetPostByID retrieves a blog post by its ID.
// @Summary Get a blog post by ID
// @Description Retrieve a blog post by its unique identifier.
// @Tags Blog
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} dto.PostResponse "Post details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/blog/{id} [get]
func (handler *Handler) GetPostByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPostByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	post, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get post by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Post retrieved successfully")

	response.WithJSON(w, http.StatusOK, post)
}

// UpdatePost updates an existing blog post by its ID.
// @Summary Update a blog post by ID
// @Description Update or publish an existing blog post.
// @Tags Blog
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body dto.UpdatePostRequest true "Update Post Request"
// @Success 200 {object} response.Message "Post updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/blog/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePost")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdatePostRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update post")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Post updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Post updated successfully")
}

// DeletePost deletes a blog post by its ID.
// @Summary Delete a blog post by ID
// @Description Delete a blog post using its unique identifier.
// @Tags Blog
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} response.Message "Post deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/blog/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePost")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete post")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Post deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Post deleted successfully")
}
