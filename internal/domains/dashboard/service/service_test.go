package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"madison/config"
	"madison/infras/otel/mocks"
	bookingMocks "madison/internal/domains/booking/mocks"
	bookingModel "madison/internal/domains/booking/model"
	"madison/internal/domains/dashboard/service"
	roomMocks "madison/internal/domains/room/mocks"
	cacheMocks "madison/shared/cache/mocks"
)

func TestDashboardService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBookings := bookingMocks.NewMockBooking(ctrl)
	mockRooms := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockBookings, mockRooms, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "aggregates bookings, rooms and revenue",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockBookings.EXPECT().
					Stats(gomock.Any()).
					Return(bookingModel.Stats{
						TotalBookings:     12,
						PendingBookings:   3,
						ConfirmedBookings: 6,
						CompletedBookings: 2,
						CancelledBookings: 1,
						TotalRevenue:      540000,
						OccupiedToday:     4,
					}, nil)

				mockRooms.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(8, nil)

				mockBookings.EXPECT().
					PopularRooms(gomock.Any(), gomock.Any()).
					Return([]bookingModel.PopularRoom{
						{RoomID: "room-1", RoomName: "Chambre VIP", Bookings: 5, Revenue: 225000},
					}, nil)

				mockBookings.EXPECT().
					MonthlyRevenue(gomock.Any(), gomock.Any()).
					Return([]bookingModel.MonthlyRevenue{
						{Month: "2024-06", Bookings: 4, Revenue: 180000},
					}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "booking stats error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockBookings.EXPECT().
					Stats(gomock.Any()).
					Return(bookingModel.Stats{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Stats(context.Background())

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, 12, res.TotalBookings)
			assert.Equal(t, 8, res.TotalRooms)
			assert.Len(t, res.PopularRooms, 1)
			assert.Len(t, res.MonthlyRevenue, 1)
		})
	}
}
