package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"madison/infras/otel"
	"madison/infras/postgres"
	"madison/internal/domains/booking/model"
	"madison/shared/constant"
	gDto "madison/shared/dto"
	"madison/shared/logger"
	gRepo "madison/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	Stats(ctx context.Context) (model.Stats, error)
	PopularRooms(ctx context.Context, limit int) ([]model.PopularRoom, error)
	MonthlyRevenue(ctx context.Context, months int) ([]model.MonthlyRevenue, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Stats aggregates booking counts and revenue in a single round trip.
// Cancelled bookings are excluded from revenue.
func (repo *repositoryImpl) Stats(ctx context.Context) (model.Stats, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Stats")
	defer scope.End()

	query := `
		SELECT
			COUNT(*)                                                          AS total_bookings,
			COUNT(*) FILTER (WHERE status = 'pending')                        AS pending_bookings,
			COUNT(*) FILTER (WHERE status = 'confirmed')                      AS confirmed_bookings,
			COUNT(*) FILTER (WHERE status = 'cancelled')                      AS cancelled_bookings,
			COUNT(*) FILTER (WHERE status = 'completed')                      AS completed_bookings,
			COALESCE(SUM(total_price) FILTER (WHERE status <> 'cancelled'), 0) AS total_revenue,
			COUNT(*) FILTER (WHERE status IN ('confirmed', 'completed')
				AND check_in <= CURRENT_DATE AND check_out > CURRENT_DATE)    AS occupied_today
		FROM bookings`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var stats model.Stats

	err := repo.db.Read.GetContext(ctx, &stats, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return stats, fmt.Errorf("failed to get booking stats: %w", err)
	}

	return stats, nil
}

// PopularRooms ranks rooms by how often they were booked.
func (repo *repositoryImpl) PopularRooms(ctx context.Context, limit int) ([]model.PopularRoom, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".PopularRooms")
	defer scope.End()

	query := `
		SELECT
			b.room_id                                                          AS room_id,
			r.name                                                             AS room_name,
			COUNT(*)                                                           AS bookings,
			COALESCE(SUM(b.total_price) FILTER (WHERE b.status <> 'cancelled'), 0) AS revenue
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		GROUP BY b.room_id, r.name
		ORDER BY bookings DESC, revenue DESC
		LIMIT $1`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var rooms []model.PopularRoom

	err := repo.db.Read.SelectContext(ctx, &rooms, query, limit)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return rooms, fmt.Errorf("failed to get popular rooms: %w", err)
	}

	return rooms, nil
}

// MonthlyRevenue returns revenue per calendar month for the last N months.
func (repo *repositoryImpl) MonthlyRevenue(ctx context.Context, months int) ([]model.MonthlyRevenue, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".MonthlyRevenue")
	defer scope.End()

	query := `
		SELECT
			TO_CHAR(DATE_TRUNC('month', check_in), 'YYYY-MM')                 AS month,
			COUNT(*)                                                          AS bookings,
			COALESCE(SUM(total_price) FILTER (WHERE status <> 'cancelled'), 0) AS revenue
		FROM bookings
		WHERE check_in >= DATE_TRUNC('month', CURRENT_DATE) - ($1 - 1) * INTERVAL '1 month'
		GROUP BY DATE_TRUNC('month', check_in)
		ORDER BY DATE_TRUNC('month', check_in)`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var revenue []model.MonthlyRevenue

	err := repo.db.Read.SelectContext(ctx, &revenue, query, months)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return revenue, fmt.Errorf("failed to get monthly revenue: %w", err)
	}

	return revenue, nil
}
