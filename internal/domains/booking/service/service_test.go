package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"madison/config"
	kafkaMocks "madison/infras/kafka/mocks"
	"madison/infras/otel/mocks"
	bookingMocks "madison/internal/domains/booking/mocks"
	"madison/internal/domains/booking/model"
	"madison/internal/domains/booking/model/dto"
	"madison/internal/domains/booking/service"
	roomMocks "madison/internal/domains/room/mocks"
	roomModel "madison/internal/domains/room/model"
	cacheMocks "madison/shared/cache/mocks"
	"madison/shared/constant"
	gDto "madison/shared/dto"
	gModel "madison/shared/model"
	"madison/shared/timezone"
)

func newBookingService(ctrl *gomock.Controller) (
	service.Booking,
	*bookingMocks.MockBooking,
	*roomMocks.MockRoom,
	*cacheMocks.MockRedisCache,
	*kafkaMocks.MockClient,
) {
	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockEvents := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.Topics.BookingEvents = "madison.booking.events"

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel, mockEvents)

	return svc, mockRepo, mockRoomRepo, mockCache, mockEvents
}

func sampleRoom() roomModel.Room {
	return roomModel.Room{
		ID:       "room-id-123",
		Name:     "Chambre VIP",
		Price:    45000,
		Capacity: 3,
		Type:     roomModel.TypeVIP,
	}
}

func sampleBooking() model.Booking {
	return model.Booking{
		ID:            "booking-id-123",
		RoomID:        "room-id-123",
		CustomerName:  "Jean Mbarga",
		CustomerEmail: "jean@example.com",
		CustomerPhone: "+237 690 11 22 33",
		CheckIn:       time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC),
		Guests:        2,
		Status:        model.StatusPending,
		TotalPrice:    90000,
		PaymentMethod: model.PaymentMethodCash,
		PaymentStatus: model.PaymentStatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "system",
			ModifiedBy: "system",
		},
	}
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockRoomRepo, mockCache, mockEvents := newBookingService(ctrl)

	validReq := dto.CreateBookingRequest{
		RoomID:        "room-id-123",
		CustomerName:  "Jean Mbarga",
		CustomerPhone: "+237 690 11 22 33",
		CheckIn:       "2024-06-01",
		CheckOut:      "2024-06-03",
		Guests:        2,
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation derives the price from the room rate",
			req:  validReq,
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(sampleRoom(), nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) error {
						assert.Equal(t, 90000, booking.TotalPrice)
						assert.Equal(t, model.StatusPending, booking.Status)
						return nil
					})

				mockEvents.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "invalid date format",
			req: dto.CreateBookingRequest{
				RoomID:        "room-id-123",
				CustomerName:  "Jean Mbarga",
				CustomerPhone: "+237 690 11 22 33",
				CheckIn:       "01/06/2024",
				CheckOut:      "2024-06-03",
				Guests:        2,
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "check-out before check-in",
			req: dto.CreateBookingRequest{
				RoomID:        "room-id-123",
				CustomerName:  "Jean Mbarga",
				CustomerPhone: "+237 690 11 22 33",
				CheckIn:       "2024-06-03",
				CheckOut:      "2024-06-01",
				Guests:        2,
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "room does not exist",
			req:  validReq,
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
			wantErr: true,
		},
		{
			name: "guests above room capacity",
			req: dto.CreateBookingRequest{
				RoomID:        "room-id-123",
				CustomerName:  "Jean Mbarga",
				CustomerPhone: "+237 690 11 22 33",
				CheckIn:       "2024-06-01",
				CheckOut:      "2024-06-03",
				Guests:        5,
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(sampleRoom(), nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			req:  validReq,
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(sampleRoom(), nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Create(ctx, tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 90000, res.TotalPrice)
				assert.Equal(t, "90 000 FCFA", res.PriceDisplay)
			}
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, mockCache, _ := newBookingService(ctrl)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "found on cache miss",
			id:   "booking-id-123",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(sampleBooking(), nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "not found",
			id:   "missing-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			id:   "booking-id-123",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), tt.id)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "booking-id-123", res.ID)
			}
		})
	}
}

func TestBookingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, mockCache, _ := newBookingService(ctrl)

	params := gDto.QueryParams{Page: 1, Limit: 10}
	filter := gDto.FilterGroup{}

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		Times(2)

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Booking{sampleBooking()}, nil)

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.GetAll(context.Background(), params, filter)

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Len(t, res.Bookings, 1)
	assert.Equal(t, 1, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
}

func TestBookingService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, mockCache, mockEvents := newBookingService(ctrl)

	tests := []struct {
		name      string
		req       dto.UpdateBookingRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name:      "empty request",
			req:       dto.UpdateBookingRequest{},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "booking not found",
			req:  dto.UpdateBookingRequest{Status: model.StatusConfirmed},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name: "status change publishes an event",
			req:  dto.UpdateBookingRequest{Status: model.StatusConfirmed},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(sampleBooking(), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockEvents.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Update(ctx, tt.req, "booking-id-123")

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, mockCache, _ := newBookingService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful deletion",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), "booking-id-123")

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
