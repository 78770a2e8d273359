package dto

import (
	bookingModel "madison/internal/domains/booking/model"
	"madison/shared/format"
)

type PopularRoom struct {
	RoomID         string `json:"room_id"`
	RoomName       string `json:"room_name"`
	Bookings       int    `json:"bookings"`
	Revenue        int    `json:"revenue"`
	RevenueDisplay string `json:"revenue_display"`
}

type MonthlyRevenue struct {
	Month          string `json:"month"`
	Bookings       int    `json:"bookings"`
	Revenue        int    `json:"revenue"`
	RevenueDisplay string `json:"revenue_display"`
}

type StatsResponse struct {
	TotalBookings       int              `json:"total_bookings"`
	PendingBookings     int              `json:"pending_bookings"`
	ConfirmedBookings   int              `json:"confirmed_bookings"`
	CancelledBookings   int              `json:"cancelled_bookings"`
	CompletedBookings   int              `json:"completed_bookings"`
	TotalRevenue        int              `json:"total_revenue"`
	TotalRevenueDisplay string           `json:"total_revenue_display"`
	TotalRooms          int              `json:"total_rooms"`
	OccupiedToday       int              `json:"occupied_today"`
	OccupancyRate       float64          `json:"occupancy_rate"`
	PopularRooms        []PopularRoom    `json:"popular_rooms"`
	MonthlyRevenue      []MonthlyRevenue `json:"monthly_revenue"`
}

func (r *StatsResponse) FromModels(stats bookingModel.Stats, totalRooms int, popular []bookingModel.PopularRoom, monthly []bookingModel.MonthlyRevenue) {
	r.TotalBookings = stats.TotalBookings
	r.PendingBookings = stats.PendingBookings
	r.ConfirmedBookings = stats.ConfirmedBookings
	r.CancelledBookings = stats.CancelledBookings
	r.CompletedBookings = stats.CompletedBookings
	r.TotalRevenue = stats.TotalRevenue
	r.TotalRevenueDisplay = format.Price(stats.TotalRevenue)
	r.TotalRooms = totalRooms
	r.OccupiedToday = stats.OccupiedToday

	if totalRooms > 0 {
		r.OccupancyRate = float64(stats.OccupiedToday) / float64(totalRooms)
	}

	r.PopularRooms = make([]PopularRoom, len(popular))
	for i, room := range popular {
		r.PopularRooms[i] = PopularRoom{
			RoomID:         room.RoomID,
			RoomName:       room.RoomName,
			Bookings:       room.Bookings,
			Revenue:        room.Revenue,
			RevenueDisplay: format.Price(room.Revenue),
		}
	}

	r.MonthlyRevenue = make([]MonthlyRevenue, len(monthly))
	for i, month := range monthly {
		r.MonthlyRevenue[i] = MonthlyRevenue{
			Month:          month.Month,
			Bookings:       month.Bookings,
			Revenue:        month.Revenue,
			RevenueDisplay: format.Price(month.Revenue),
		}
	}
}
