package router

import (
	"madison/internal/handlers/auth"
	"madison/internal/handlers/blog"
	"madison/internal/handlers/booking"
	"madison/internal/handlers/customer"
	"madison/internal/handlers/dashboard"
	"madison/internal/handlers/gallery"
	"madison/internal/handlers/reservation"
	"madison/internal/handlers/room"
	"madison/internal/handlers/service"
	"madison/internal/handlers/settings"
	"madison/internal/handlers/testimonial"
	"madison/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth        auth.Handler
	User        user.Handler
	Room        room.Handler
	Booking     booking.Handler
	Reservation reservation.Handler
	Testimonial testimonial.Handler
	Customer    customer.Handler
	Blog        blog.Handler
	Service     service.Handler
	Gallery     gallery.Handler
	Settings    settings.Handler
	Dashboard   dashboard.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.Testimonial.Router(routerGroup)
		r.DomainHandlers.Customer.Router(routerGroup)
		r.DomainHandlers.Blog.Router(routerGroup)
		r.DomainHandlers.Service.Router(routerGroup)
		r.DomainHandlers.Gallery.Router(routerGroup)
		r.DomainHandlers.Settings.Router(routerGroup)
		r.DomainHandlers.Dashboard.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
