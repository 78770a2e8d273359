package dashboard

import (
	"net/http"

	"madison/infras/otel"
	"madison/internal/domains/dashboard/service"
	"madison/shared/constant"
	"madison/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Dashboard
	otel    otel.Otel
}

func New(service service.Dashboard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/dashboard", func(routerGroup chi.Router) {
		routerGroup.Get("/stats", handler.GetStats)
	})
}

// GetStats returns the admin dashboard aggregates.
// @Summary Get dashboard statistics
// @Description Retrieve booking counts, revenue, occupancy and the most booked rooms.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Success 200 {object} dto.StatsResponse "Dashboard statistics"
// @Failure 500 {object} response.Error
// @Router /v1/dashboard/stats [get]
// @Security BearerAuth
func (handler *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	stats, err := handler.service.Stats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard stats")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dashboard stats retrieved successfully")

	response.WithJSON(w, http.StatusOK, stats)
}
