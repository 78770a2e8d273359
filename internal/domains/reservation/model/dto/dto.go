package dto

import (
	"time"

	"madison/internal/domains/reservation/flow"
	"madison/shared/constant"
	"madison/shared/format"
	"madison/shared/timezone"
)

type QuoteRequest struct {
	RoomID   string `json:"room_id"   validate:"required"`
	CheckIn  string `json:"check_in"  validate:"required"`
	CheckOut string `json:"check_out" validate:"omitempty"`
	Guests   int    `json:"guests"    validate:"omitempty,min=0"`
}

func (q *QuoteRequest) DateRange() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(constant.CalendarDateFormat, q.CheckIn)
	if err != nil {
		return checkIn, checkOut, err //nolint:wrapcheck
	}

	if q.CheckOut == "" {
		return checkIn, checkOut, nil
	}

	checkOut, err = timezone.Parse(constant.CalendarDateFormat, q.CheckOut)

	return checkIn, checkOut, err //nolint:wrapcheck
}

// QuoteResponse echoes the reservation state after the funnel guards ran,
// so callers always see the dates and party size that will be booked.
type QuoteResponse struct {
	RoomID             string `json:"room_id"`
	RoomName           string `json:"room_name"`
	CheckIn            string `json:"check_in"`
	CheckOut           string `json:"check_out"`
	CheckInDisplay     string `json:"check_in_display"`
	CheckOutDisplay    string `json:"check_out_display"`
	Guests             int    `json:"guests"`
	Nights             int    `json:"nights"`
	NightlyRate        int    `json:"nightly_rate"`
	NightlyRateDisplay string `json:"nightly_rate_display"`
	TotalPrice         int    `json:"total_price"`
	TotalPriceDisplay  string `json:"total_price_display"`
}

func (q *QuoteResponse) FromReservation(res flow.Reservation) {
	q.RoomID = res.Room.ID
	q.RoomName = res.Room.Name
	q.CheckIn = res.CheckIn.Format(constant.CalendarDateFormat)
	q.CheckOut = res.CheckOut.Format(constant.CalendarDateFormat)
	q.CheckInDisplay = format.DateShort(res.CheckIn)
	q.CheckOutDisplay = format.DateShort(res.CheckOut)
	q.Guests = res.Guests
	q.Nights = res.Nights()
	q.NightlyRate = res.Room.NightlyRate
	q.NightlyRateDisplay = format.Price(res.Room.NightlyRate)
	q.TotalPrice = res.Total()
	q.TotalPriceDisplay = format.Price(res.Total())
}

type SubmitRequest struct {
	RoomID   string `json:"room_id"   validate:"required"`
	CheckIn  string `json:"check_in"  validate:"required"`
	CheckOut string `json:"check_out" validate:"required"`
	Guests   int    `json:"guests"    validate:"required,min=1"`
	Name     string `json:"name"      validate:"required,max=100"`
	Phone    string `json:"phone"     validate:"required,max=20"`
	Email    string `json:"email"     validate:"omitempty,email,max=100"`
	Notes    string `json:"notes"     validate:"omitempty,max=1000"`
	Method   string `json:"method"    validate:"required,oneof=online direct_message"`
}

func (s *SubmitRequest) DateRange() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(constant.CalendarDateFormat, s.CheckIn)
	if err != nil {
		return checkIn, checkOut, err //nolint:wrapcheck
	}

	checkOut, err = timezone.Parse(constant.CalendarDateFormat, s.CheckOut)

	return checkIn, checkOut, err //nolint:wrapcheck
}

type SubmitResponse struct {
	Valid             bool              `json:"valid"`
	Errors            map[string]string `json:"errors,omitempty"`
	Method            string            `json:"method,omitempty"`
	BookingID         string            `json:"booking_id,omitempty"`
	Status            string            `json:"status,omitempty"`
	WhatsAppLink      string            `json:"whatsapp_link,omitempty"`
	WhatsAppMessage   string            `json:"whatsapp_message,omitempty"`
	TotalPrice        int               `json:"total_price,omitempty"`
	TotalPriceDisplay string            `json:"total_price_display,omitempty"`
	Nights            int               `json:"nights,omitempty"`
}
