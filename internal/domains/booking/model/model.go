package model

import (
	"time"

	"madison/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldRoomID        = "room_id"
	FieldCustomerName  = "customer_name"
	FieldCustomerEmail = "customer_email"
	FieldCustomerPhone = "customer_phone"
	FieldCheckIn       = "check_in"
	FieldCheckOut      = "check_out"
	FieldGuests        = "guests"
	FieldStatus        = "status"
	FieldTotalPrice    = "total_price"
	FieldPaymentMethod = "payment_method"
	FieldPaymentStatus = "payment_status"
	FieldNotes         = "notes"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusPartial   = "partial"
	PaymentStatusCompleted = "completed"
	PaymentStatusRefunded  = "refunded"
)

const (
	PaymentMethodCash        = "cash"
	PaymentMethodOrangeMoney = "orange_money"
	PaymentMethodMobileMoney = "mobile_money"
	PaymentMethodPaypal      = "paypal"
)

// Stats holds the aggregate counters shown on the admin dashboard.
type Stats struct {
	TotalBookings     int `db:"total_bookings"`
	PendingBookings   int `db:"pending_bookings"`
	ConfirmedBookings int `db:"confirmed_bookings"`
	CancelledBookings int `db:"cancelled_bookings"`
	CompletedBookings int `db:"completed_bookings"`
	TotalRevenue      int `db:"total_revenue"`
	OccupiedToday     int `db:"occupied_today"`
}

type PopularRoom struct {
	RoomID   string `db:"room_id"`
	RoomName string `db:"room_name"`
	Bookings int    `db:"bookings"`
	Revenue  int    `db:"revenue"`
}

type MonthlyRevenue struct {
	Month    string `db:"month"`
	Bookings int    `db:"bookings"`
	Revenue  int    `db:"revenue"`
}

type Booking struct {
	ID            string    `db:"id"`
	RoomID        string    `db:"room_id"`
	CustomerName  string    `db:"customer_name"`
	CustomerEmail string    `db:"customer_email"`
	CustomerPhone string    `db:"customer_phone"`
	CheckIn       time.Time `db:"check_in"`
	CheckOut      time.Time `db:"check_out"`
	Guests        int       `db:"guests"`
	Status        string    `db:"status"`
	TotalPrice    int       `db:"total_price"`
	PaymentMethod string    `db:"payment_method"`
	PaymentStatus string    `db:"payment_status"`
	Notes         string    `db:"notes"`
	model.Metadata
}
