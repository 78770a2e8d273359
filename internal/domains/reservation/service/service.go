package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"madison/config"
	"madison/infras/otel"
	bookingDto "madison/internal/domains/booking/model/dto"
	"madison/internal/domains/reservation/flow"
	"madison/internal/domains/reservation/model/dto"
	roomModel "madison/internal/domains/room/model"
	roomRepo "madison/internal/domains/room/repository"
	"madison/shared"
	"madison/shared/constant"
	"madison/shared/failure"

	"github.com/rs/zerolog/log"
)

// SubmissionGateway persists a finalized reservation as a booking.
// The booking service satisfies it directly.
type SubmissionGateway interface {
	Create(ctx context.Context, req bookingDto.CreateBookingRequest) (bookingDto.BookingResponse, error)
}

// ContactSettings exposes the reception's WhatsApp number. The settings
// service satisfies it, falling back to the configured default.
type ContactSettings interface {
	WhatsAppNumber(ctx context.Context) string
}

type Reservation interface {
	Quote(ctx context.Context, req dto.QuoteRequest) (dto.QuoteResponse, error)
	Submit(ctx context.Context, req dto.SubmitRequest) (dto.SubmitResponse, error)
}

type serviceImpl struct {
	roomRepo roomRepo.Room
	gateway  SubmissionGateway
	contact  ContactSettings
	cfg      *config.Config
	otel     otel.Otel
}

func New(roomRepo roomRepo.Room, gateway SubmissionGateway, contact ContactSettings, cfg *config.Config, otel otel.Otel) Reservation {
	return &serviceImpl{
		roomRepo: roomRepo,
		gateway:  gateway,
		contact:  contact,
		cfg:      cfg,
		otel:     otel,
	}
}

// Quote prices a stay. The funnel guards run first, so the response may
// hold corrected dates or a clamped party size rather than an error.
func (s *serviceImpl) Quote(ctx context.Context, req dto.QuoteRequest) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quote")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	checkIn, checkOut, err := req.DateRange()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse quote dates")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	reservation, err := s.buildReservation(ctx, req.RoomID, checkIn, checkOut, req.Guests)
	if err != nil {
		return res, err
	}

	res.FromReservation(reservation)

	return res, nil
}

// Submit runs the full funnel validation and finalizes the reservation.
// Online reservations become pending bookings. Direct-message reservations
// get a pre-filled WhatsApp link for the reception instead.
func (s *serviceImpl) Submit(ctx context.Context, req dto.SubmitRequest) (res dto.SubmitResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	checkIn, checkOut, err := req.DateRange()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse reservation dates")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	reservation, err := s.buildReservation(ctx, req.RoomID, checkIn, checkOut, req.Guests)
	if err != nil {
		return res, err
	}

	reservation.SetContact(req.Name, req.Phone, req.Email)
	reservation.Notes = req.Notes
	reservation.ChooseMethod(flow.Method(req.Method))

	if result := reservation.ValidateAll(); !result.Valid {
		res.Valid = false
		res.Errors = result.Errors

		return res, nil
	}

	res.Valid = true
	res.Method = req.Method
	res.Nights = reservation.Nights()
	res.TotalPrice = reservation.Total()

	switch reservation.Method {
	case flow.MethodOnline:
		booking, err := s.gateway.Create(ctx, bookingDto.CreateBookingRequest{
			RoomID:        reservation.Room.ID,
			CustomerName:  reservation.Name,
			CustomerEmail: reservation.Email,
			CustomerPhone: reservation.Phone,
			CheckIn:       reservation.CheckIn.Format(constant.CalendarDateFormat),
			CheckOut:      reservation.CheckOut.Format(constant.CalendarDateFormat),
			Guests:        reservation.Guests,
			Notes:         reservation.Notes,
		})
		if err != nil {
			log.Error().Err(err).Msg("failed to submit online reservation")

			return res, fmt.Errorf("failed to submit online reservation: %w", err)
		}

		res.BookingID = booking.ID
		res.Status = booking.Status
		res.TotalPrice = booking.TotalPrice
		res.TotalPriceDisplay = booking.PriceDisplay
	case flow.MethodDirectMessage:
		number := s.cfg.Hotel.WhatsApp
		if s.contact != nil {
			if configured := s.contact.WhatsAppNumber(ctx); configured != constant.Empty {
				number = configured
			}
		}

		res.WhatsAppMessage = reservation.WhatsAppMessage(s.cfg.Hotel.Name)
		res.WhatsAppLink = reservation.WhatsAppLink(number, s.cfg.Hotel.Name)
	}

	return res, nil
}

func (s *serviceImpl) buildReservation(ctx context.Context, roomID string, checkIn, checkOut time.Time, guests int) (flow.Reservation, error) {
	room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room for reservation")

		return flow.Reservation{}, fmt.Errorf("failed to get room for reservation: %w", err)
	}

	if room.ID == constant.Empty {
		return flow.Reservation{}, failure.NotFound("room not found") // nolint:wrapcheck
	}

	if !room.Available {
		return flow.Reservation{}, failure.BadRequestFromString("room is not available") // nolint:wrapcheck
	}

	reservation := flow.Reservation{}
	reservation.SelectRoom(flow.Room{
		ID:          room.ID,
		Name:        room.Name,
		Capacity:    room.Capacity,
		NightlyRate: room.Price,
	})
	reservation.SetCheckIn(checkIn)

	if !checkOut.IsZero() {
		reservation.SetCheckOut(checkOut)
	}

	if guests > 0 {
		reservation.SetGuests(guests)
	}

	return reservation, nil
}
