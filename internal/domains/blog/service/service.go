package service

import (
	"context"
	"fmt"

	"madison/config"
	"madison/infras/otel"
	"madison/internal/domains/blog/model"
	"madison/internal/domains/blog/model/dto"
	"madison/internal/domains/blog/repository"
	"madison/shared"
	"madison/shared/cache"
	"madison/shared/constant"
	gDto "madison/shared/dto"
	"madison/shared/failure"
	"madison/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetPost    = "blog:get"
	cacheGetAllPost = "blog:gets"
)

type Blog interface {
	Create(ctx context.Context, req dto.CreatePostRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPostsResponse, error)
	Get(ctx context.Context, id string) (dto.PostResponse, error)
	GetBySlug(ctx context.Context, slug string) (dto.PostResponse, error)
	Update(ctx context.Context, req dto.UpdatePostRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Blog
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Blog, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Blog {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePostRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	post := req.ToModel(user)

	taken, err := s.repo.Exist(ctx, shared.FilterByID(post.Slug, model.FieldSlug, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check slug uniqueness")

		return fmt.Errorf("failed to check slug uniqueness: %w", err)
	}

	if taken {
		return failure.BadRequestFromString("a post with this title already exists") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, post); err != nil {
		log.Error().Err(err).Msg("failed to create post")

		return fmt.Errorf("failed to create post: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllPost)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPostsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPost, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for posts")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count posts")

		return res, fmt.Errorf("failed to count posts: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get posts")

		return res, fmt.Errorf("failed to get posts: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save posts to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (dto.PostResponse, error) {
	return s.getByField(ctx, id, model.FieldID)
}

// GetBySlug serves the public site, which addresses posts by slug.
func (s *serviceImpl) GetBySlug(ctx context.Context, slug string) (dto.PostResponse, error) {
	return s.getByField(ctx, slug, model.FieldSlug)
}

func (s *serviceImpl) getByField(ctx context.Context, value, field string) (res dto.PostResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetPost, field, value)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for post")

		return res, nil
	}

	post, err := s.repo.Get(ctx, shared.FilterByID(value, field, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get post")

		return res, fmt.Errorf("failed to get post: %w", err)
	}

	if post.ID == constant.Empty {
		return res, failure.NotFound("post not found") // nolint:wrapcheck
	}

	res.FromModel(post)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save post to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePostRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req == (dto.UpdatePostRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if post exists")

		return fmt.Errorf("failed to check if post exists: %w", err)
	}

	if current.ID == constant.Empty {
		log.Error().Msg("post not found")

		return failure.NotFound("post not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	if req.Title != constant.Empty {
		updatedFields[model.FieldSlug] = dto.Slugify(req.Title)
	}

	// First publish stamps the publication date.
	if req.Published != nil && *req.Published && current.PublishedAt == nil {
		updatedFields[model.FieldPublishedAt] = timezone.Now()
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update post")

		return fmt.Errorf("failed to update post: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetPost, model.FieldID, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete post from cache")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetPost, model.FieldSlug, current.Slug)); err != nil {
			log.Error().Err(err).Msg("failed to delete post slug cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllPost)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if post exists")

		return fmt.Errorf("failed to check if post exists: %w", err)
	}

	if !exist {
		log.Error().Msg("post not found")

		return failure.NotFound("post not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete post")

		return fmt.Errorf("failed to delete post: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetPost, model.FieldID, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete post from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllPost)
	}()

	return nil
}
