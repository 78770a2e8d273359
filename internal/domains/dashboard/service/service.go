package service

import (
	"context"
	"fmt"

	"madison/config"
	"madison/infras/otel"
	bookingRepo "madison/internal/domains/booking/repository"
	"madison/internal/domains/dashboard/model/dto"
	roomRepo "madison/internal/domains/room/repository"
	"madison/shared"
	"madison/shared/cache"
	"madison/shared/constant"
	gDto "madison/shared/dto"

	"github.com/rs/zerolog/log"
)

const (
	cacheDashboardStats = "booking:stats:dashboard"

	popularRoomsLimit    = 5
	monthlyRevenueMonths = 12
)

type Dashboard interface {
	Stats(ctx context.Context) (dto.StatsResponse, error)
}

type serviceImpl struct {
	bookings bookingRepo.Booking
	rooms    roomRepo.Room
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(bookings bookingRepo.Booking, rooms roomRepo.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Dashboard {
	return &serviceImpl{
		bookings: bookings,
		rooms:    rooms,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Stats(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheDashboardStats, "summary")

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for dashboard stats")

		return res, nil
	}

	stats, err := s.bookings.Stats(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking stats")

		return res, fmt.Errorf("failed to get booking stats: %w", err)
	}

	totalRooms, err := s.rooms.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	popular, err := s.bookings.PopularRooms(ctx, popularRoomsLimit)
	if err != nil {
		log.Error().Err(err).Msg("failed to get popular rooms")

		return res, fmt.Errorf("failed to get popular rooms: %w", err)
	}

	monthly, err := s.bookings.MonthlyRevenue(ctx, monthlyRevenueMonths)
	if err != nil {
		log.Error().Err(err).Msg("failed to get monthly revenue")

		return res, fmt.Errorf("failed to get monthly revenue: %w", err)
	}

	res.FromModels(stats, totalRooms, popular, monthly)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dashboard stats to cache")
		}
	}()

	return res, nil
}
