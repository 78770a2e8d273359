package dto

import (
	"time"

	"madison/internal/domains/booking/model"
	"madison/shared"
	"madison/shared/constant"
	gDto "madison/shared/dto"
	"madison/shared/format"
	gModel "madison/shared/model"
	"madison/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID        string `json:"room_id"        validate:"required"`
	CustomerName  string `json:"customer_name"  validate:"required,max=100"`
	CustomerEmail string `json:"customer_email" validate:"omitempty,email,max=100"`
	CustomerPhone string `json:"customer_phone" validate:"required,max=20"`
	CheckIn       string `json:"check_in"       validate:"required"`
	CheckOut      string `json:"check_out"      validate:"required"`
	Guests        int    `json:"guests"         validate:"required,min=1"`
	Status        string `json:"status"         validate:"omitempty,oneof=pending confirmed cancelled completed"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,oneof=cash orange_money mobile_money paypal"`
	PaymentStatus string `json:"payment_status" validate:"omitempty,oneof=pending partial completed refunded"`
	Notes         string `json:"notes"          validate:"omitempty,max=1000"`
}

// DateRange parses the check-in and check-out fields.
func (c *CreateBookingRequest) DateRange() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(constant.CalendarDateFormat, c.CheckIn)
	if err != nil {
		return checkIn, checkOut, err //nolint:wrapcheck
	}

	checkOut, err = timezone.Parse(constant.CalendarDateFormat, c.CheckOut)

	return checkIn, checkOut, err //nolint:wrapcheck
}

// ToModel builds the booking row. The total price is computed by the service
// from the room's nightly rate, never taken from the request.
func (c *CreateBookingRequest) ToModel(user string, checkIn, checkOut time.Time, totalPrice int) model.Booking {
	status := model.StatusPending
	if c.Status != "" {
		status = c.Status
	}

	paymentStatus := model.PaymentStatusPending
	if c.PaymentStatus != "" {
		paymentStatus = c.PaymentStatus
	}

	return model.Booking{
		ID:            uuid.NewString(),
		RoomID:        c.RoomID,
		CustomerName:  c.CustomerName,
		CustomerEmail: c.CustomerEmail,
		CustomerPhone: c.CustomerPhone,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Guests:        c.Guests,
		Status:        status,
		TotalPrice:    totalPrice,
		PaymentMethod: c.PaymentMethod,
		PaymentStatus: paymentStatus,
		Notes:         c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateBookingRequest struct {
	CustomerName  string `db:"customer_name"  json:"customer_name"  validate:"omitempty,max=100"`
	CustomerEmail string `db:"customer_email" json:"customer_email" validate:"omitempty,email,max=100"`
	CustomerPhone string `db:"customer_phone" json:"customer_phone" validate:"omitempty,max=20"`
	Status        string `db:"status"         json:"status"         validate:"omitempty,oneof=pending confirmed cancelled completed"`
	PaymentMethod string `db:"payment_method" json:"payment_method" validate:"omitempty,oneof=cash orange_money mobile_money paypal"`
	PaymentStatus string `db:"payment_status" json:"payment_status" validate:"omitempty,oneof=pending partial completed refunded"`
	Notes         string `db:"notes"          json:"notes"          validate:"omitempty,max=1000"`
}

type BookingResponse struct {
	ID              string `json:"id"`
	RoomID          string `json:"room_id"`
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone"`
	CheckIn         string `json:"check_in"`
	CheckOut        string `json:"check_out"`
	CheckInDisplay  string `json:"check_in_display"`
	CheckOutDisplay string `json:"check_out_display"`
	Guests          int    `json:"guests"`
	Status          string `json:"status"`
	TotalPrice      int    `json:"total_price"`
	PriceDisplay    string `json:"price_display"`
	PaymentMethod   string `json:"payment_method"`
	PaymentStatus   string `json:"payment_status"`
	Notes           string `json:"notes"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.CustomerName = model.CustomerName
	r.CustomerEmail = model.CustomerEmail
	r.CustomerPhone = model.CustomerPhone
	r.CheckIn = model.CheckIn.Format(constant.CalendarDateFormat)
	r.CheckOut = model.CheckOut.Format(constant.CalendarDateFormat)
	r.CheckInDisplay = format.DateShort(model.CheckIn)
	r.CheckOutDisplay = format.DateShort(model.CheckOut)
	r.Guests = model.Guests
	r.Status = model.Status
	r.TotalPrice = model.TotalPrice
	r.PriceDisplay = format.Price(model.TotalPrice)
	r.PaymentMethod = model.PaymentMethod
	r.PaymentStatus = model.PaymentStatus
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
