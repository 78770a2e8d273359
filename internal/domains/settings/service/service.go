package service

import (
	"context"
	"fmt"

	"madison/config"
	"madison/infras/otel"
	"madison/internal/domains/settings/model"
	"madison/internal/domains/settings/model/dto"
	"madison/internal/domains/settings/repository"
	"madison/shared"
	"madison/shared/cache"
	"madison/shared/constant"
	gModel "madison/shared/model"
	"madison/shared/timezone"

	"github.com/rs/zerolog/log"
)

const cacheSettings = "settings:get"

type Settings interface {
	Get(ctx context.Context) (dto.SettingsResponse, error)
	Update(ctx context.Context, req dto.UpdateSettingsRequest) error
	WhatsAppNumber(ctx context.Context) string
}

type serviceImpl struct {
	repo  repository.Settings
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Settings, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Settings {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Get returns the site settings. Missing fields fall back to the
// configured defaults so the public site never renders blanks.
func (s *serviceImpl) Get(ctx context.Context) (res dto.SettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheSettings, model.SingletonID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for settings")

		return res, nil
	}

	settings, err := s.load(ctx)
	if err != nil {
		return res, err
	}

	res.FromModel(settings)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save settings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateSettingsRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(model.SingletonID, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if settings exist")

		return fmt.Errorf("failed to check if settings exist: %w", err)
	}

	if !exist {
		if err := s.repo.Insert(ctx, s.defaults(user)); err != nil {
			log.Error().Err(err).Msg("failed to seed settings")

			return fmt.Errorf("failed to seed settings: %w", err)
		}
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update settings")

		return fmt.Errorf("failed to update settings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheSettings, model.SingletonID)); err != nil {
			log.Error().Err(err).Msg("failed to delete settings from cache")
		}
	}()

	return nil
}

// WhatsAppNumber returns the reception's WhatsApp number for the
// reservation funnel. Lookup failures fall back to the configured number
// so the funnel keeps working.
func (s *serviceImpl) WhatsAppNumber(ctx context.Context) string {
	settings, err := s.load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load settings, using configured WhatsApp number")

		return s.cfg.Hotel.WhatsApp
	}

	return settings.WhatsAppNumber
}

func (s *serviceImpl) load(ctx context.Context) (model.Settings, error) {
	settings, err := s.repo.Get(ctx, shared.FilterByID(model.SingletonID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get settings")

		return settings, fmt.Errorf("failed to get settings: %w", err)
	}

	if settings.ID == constant.Empty {
		settings = s.defaults(constant.Empty)
	}

	return settings, nil
}

func (s *serviceImpl) defaults(user string) model.Settings {
	return model.Settings{
		ID:             model.SingletonID,
		HotelName:      s.cfg.Hotel.Name,
		WhatsAppNumber: s.cfg.Hotel.WhatsApp,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}
