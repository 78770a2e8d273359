//go:build wireinject
// +build wireinject

package di

import (
	"madison/config"
	"madison/infras/jwt"
	"madison/infras/kafka"
	"madison/infras/otel"
	"madison/infras/postgres"
	"madison/infras/redis"
	"madison/infras/s3"
	"madison/permissions"
	"madison/shared/cache"
	"madison/transport/http"
	"madison/transport/http/middleware"
	"madison/transport/http/router"

	"github.com/google/wire"

	authService "madison/internal/domains/auth/service"
	blogRepository "madison/internal/domains/blog/repository"
	blogService "madison/internal/domains/blog/service"
	bookingRepository "madison/internal/domains/booking/repository"
	bookingService "madison/internal/domains/booking/service"
	customerRepository "madison/internal/domains/customer/repository"
	customerService "madison/internal/domains/customer/service"
	dashboardService "madison/internal/domains/dashboard/service"
	galleryRepository "madison/internal/domains/gallery/repository"
	galleryService "madison/internal/domains/gallery/service"
	reservationService "madison/internal/domains/reservation/service"
	roomRepository "madison/internal/domains/room/repository"
	roomService "madison/internal/domains/room/service"
	amenityRepository "madison/internal/domains/service/repository"
	amenityService "madison/internal/domains/service/service"
	settingsRepository "madison/internal/domains/settings/repository"
	settingsService "madison/internal/domains/settings/service"
	testimonialRepository "madison/internal/domains/testimonial/repository"
	testimonialService "madison/internal/domains/testimonial/service"
	userRepository "madison/internal/domains/user/repository"
	userService "madison/internal/domains/user/service"

	authHandler "madison/internal/handlers/auth"
	blogHandler "madison/internal/handlers/blog"
	bookingHandler "madison/internal/handlers/booking"
	customerHandler "madison/internal/handlers/customer"
	dashboardHandler "madison/internal/handlers/dashboard"
	galleryHandler "madison/internal/handlers/gallery"
	reservationHandler "madison/internal/handlers/reservation"
	roomHandler "madison/internal/handlers/room"
	amenityHandler "madison/internal/handlers/service"
	settingsHandler "madison/internal/handlers/settings"
	testimonialHandler "madison/internal/handlers/testimonial"
	userHandler "madison/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	permissions.Get,
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
	userService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var reservationDomain = wire.NewSet(
	reservationService.New,
	wire.Bind(new(reservationService.SubmissionGateway), new(bookingService.Booking)),
	wire.Bind(new(reservationService.ContactSettings), new(settingsService.Settings)),
)

var testimonialDomain = wire.NewSet(
	testimonialRepository.New,
	testimonialService.New,
)

var customerDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
)

var blogDomain = wire.NewSet(
	blogRepository.New,
	blogService.New,
)

var amenityDomain = wire.NewSet(
	amenityRepository.New,
	amenityService.New,
)

var galleryDomain = wire.NewSet(
	galleryRepository.New,
	galleryService.New,
)

var settingsDomain = wire.NewSet(
	settingsRepository.New,
	settingsService.New,
)

var dashboardDomain = wire.NewSet(
	dashboardService.New,
)

var domains = wire.NewSet(
	authDomain,
	roomDomain,
	bookingDomain,
	reservationDomain,
	testimonialDomain,
	customerDomain,
	blogDomain,
	amenityDomain,
	galleryDomain,
	settingsDomain,
	dashboardDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	roomHandler.New,
	bookingHandler.New,
	reservationHandler.New,
	testimonialHandler.New,
	customerHandler.New,
	blogHandler.New,
	amenityHandler.New,
	galleryHandler.New,
	settingsHandler.New,
	dashboardHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
