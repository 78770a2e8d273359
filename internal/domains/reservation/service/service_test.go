package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"madison/config"
	"madison/infras/otel/mocks"
	bookingDto "madison/internal/domains/booking/model/dto"
	"madison/internal/domains/reservation/model/dto"
	"madison/internal/domains/reservation/service"
	reservationMocks "madison/internal/domains/reservation/service/mocks"
	roomMocks "madison/internal/domains/room/mocks"
	roomModel "madison/internal/domains/room/model"
)

func newReservationService(ctrl *gomock.Controller) (
	service.Reservation,
	*roomMocks.MockRoom,
	*reservationMocks.MockSubmissionGateway,
	*reservationMocks.MockContactSettings,
) {
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockGateway := reservationMocks.NewMockSubmissionGateway(ctrl)
	mockContact := reservationMocks.NewMockContactSettings(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Hotel.Name = "MADISON HOTEL"
	cfg.Hotel.WhatsApp = "+237 690 19 84 84"

	svc := service.New(mockRoomRepo, mockGateway, mockContact, cfg, mockOtel)

	return svc, mockRoomRepo, mockGateway, mockContact
}

func availableRoom() roomModel.Room {
	return roomModel.Room{
		ID:        "room-id-123",
		Name:      "Chambre VIP",
		Price:     45000,
		Capacity:  3,
		Type:      roomModel.TypeVIP,
		Available: true,
	}
}

func TestReservationService_Quote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRoomRepo, _, _ := newReservationService(ctrl)

	tests := []struct {
		name      string
		req       dto.QuoteRequest
		setupMock func()
		wantErr   bool
		check     func(t *testing.T, res dto.QuoteResponse)
	}{
		{
			name: "two night stay",
			req: dto.QuoteRequest{
				RoomID:   "room-id-123",
				CheckIn:  "2024-06-01",
				CheckOut: "2024-06-03",
				Guests:   2,
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom(), nil)
			},
			check: func(t *testing.T, res dto.QuoteResponse) {
				assert.Equal(t, 2, res.Nights)
				assert.Equal(t, 90000, res.TotalPrice)
				assert.Equal(t, "90 000 FCFA", res.TotalPriceDisplay)
				assert.Equal(t, "45 000 FCFA", res.NightlyRateDisplay)
			},
		},
		{
			name: "missing check-out defaults to the next day",
			req: dto.QuoteRequest{
				RoomID:  "room-id-123",
				CheckIn: "2024-06-01",
				Guests:  2,
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom(), nil)
			},
			check: func(t *testing.T, res dto.QuoteResponse) {
				assert.Equal(t, "2024-06-02", res.CheckOut)
				assert.Equal(t, 1, res.Nights)
				assert.Equal(t, 45000, res.TotalPrice)
			},
		},
		{
			name: "guests above capacity are clamped",
			req: dto.QuoteRequest{
				RoomID:   "room-id-123",
				CheckIn:  "2024-06-01",
				CheckOut: "2024-06-03",
				Guests:   8,
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom(), nil)
			},
			check: func(t *testing.T, res dto.QuoteResponse) {
				assert.Equal(t, 3, res.Guests)
			},
		},
		{
			name: "room not found",
			req: dto.QuoteRequest{
				RoomID:  "missing-room",
				CheckIn: "2024-06-01",
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
			wantErr: true,
		},
		{
			name: "room not available",
			req: dto.QuoteRequest{
				RoomID:  "room-id-123",
				CheckIn: "2024-06-01",
			},
			setupMock: func() {
				room := availableRoom()
				room.Available = false

				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)
			},
			wantErr: true,
		},
		{
			name: "invalid date format",
			req: dto.QuoteRequest{
				RoomID:  "room-id-123",
				CheckIn: "01/06/2024",
			},
			setupMock: func() {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Quote(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)

			if tt.check != nil {
				tt.check(t, res)
			}
		})
	}
}

func TestReservationService_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRoomRepo, mockGateway, mockContact := newReservationService(ctrl)

	validReq := dto.SubmitRequest{
		RoomID:   "room-id-123",
		CheckIn:  "2024-06-01",
		CheckOut: "2024-06-03",
		Guests:   2,
		Name:     "Jean Mbarga",
		Phone:    "+237 690 11 22 33",
		Email:    "jean@example.com",
		Method:   "online",
	}

	t.Run("online reservation becomes a pending booking", func(t *testing.T) {
		mockRoomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(availableRoom(), nil)

		mockGateway.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req bookingDto.CreateBookingRequest) (bookingDto.BookingResponse, error) {
				assert.Equal(t, "room-id-123", req.RoomID)
				assert.Equal(t, "2024-06-01", req.CheckIn)
				assert.Equal(t, "2024-06-03", req.CheckOut)
				assert.Equal(t, 2, req.Guests)

				return bookingDto.BookingResponse{
					ID:           "booking-id-123",
					Status:       "pending",
					TotalPrice:   90000,
					PriceDisplay: "90 000 FCFA",
				}, nil
			})

		res, err := svc.Submit(context.Background(), validReq)

		assert.NoError(t, err)
		assert.True(t, res.Valid)
		assert.Equal(t, "booking-id-123", res.BookingID)
		assert.Equal(t, "pending", res.Status)
		assert.Equal(t, 90000, res.TotalPrice)
		assert.Equal(t, "90 000 FCFA", res.TotalPriceDisplay)
	})

	t.Run("direct message reservation gets a whatsapp link", func(t *testing.T) {
		mockRoomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(availableRoom(), nil)

		mockContact.EXPECT().
			WhatsAppNumber(gomock.Any()).
			Return("+237 699 00 00 00")

		req := validReq
		req.Email = ""
		req.Method = "direct_message"

		res, err := svc.Submit(context.Background(), req)

		assert.NoError(t, err)
		assert.True(t, res.Valid)
		assert.Empty(t, res.BookingID)
		assert.True(t, strings.HasPrefix(res.WhatsAppLink, "https://wa.me/+237699000000?text="))
		assert.Contains(t, res.WhatsAppMessage, "Je souhaite effectuer une réservation à MADISON HOTEL:")
		assert.Contains(t, res.WhatsAppMessage, "- Email: Non fourni")
		assert.Equal(t, 2, res.Nights)
		assert.Equal(t, 90000, res.TotalPrice)
	})

	t.Run("configured default number is used when settings are empty", func(t *testing.T) {
		mockRoomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(availableRoom(), nil)

		mockContact.EXPECT().
			WhatsAppNumber(gomock.Any()).
			Return("")

		req := validReq
		req.Method = "direct_message"

		res, err := svc.Submit(context.Background(), req)

		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(res.WhatsAppLink, "https://wa.me/+237690198484?text="))
	})

	t.Run("online reservation without an email fails validation", func(t *testing.T) {
		mockRoomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(availableRoom(), nil)

		req := validReq
		req.Email = ""

		res, err := svc.Submit(context.Background(), req)

		assert.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Contains(t, res.Errors, "email")
	})

	t.Run("invalid method fails validation", func(t *testing.T) {
		mockRoomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(availableRoom(), nil)

		req := validReq
		req.Method = "carrier_pigeon"

		res, err := svc.Submit(context.Background(), req)

		assert.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Contains(t, res.Errors, "method")
	})

	t.Run("gateway error is surfaced", func(t *testing.T) {
		mockRoomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(availableRoom(), nil)

		mockGateway.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(bookingDto.BookingResponse{}, errors.New("database error"))

		_, err := svc.Submit(context.Background(), validReq)

		assert.Error(t, err)
	})
}
