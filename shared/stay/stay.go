// Package stay holds the nightly-stay date arithmetic used by the booking and
// reservation domains. Prices are whole FCFA, so there is no rounding involved.
package stay

import (
	"time"

	"madison/shared/timezone"
)

const hoursPerDay = 24

// Nights returns the number of nights between check-in and check-out.
// Both dates are normalized to midnight in the application timezone, so the
// time of day and DST shifts never change the result. A stay is always at
// least one night: an equal or inverted range clamps to 1 instead of failing,
// which keeps imports of sloppy historical data harmless. The reservation flow
// guards against inverted ranges before they ever reach this point.
func Nights(checkIn, checkOut time.Time) int {
	in := midnight(checkIn)
	out := midnight(checkOut)

	diff := out.Sub(in)
	if diff < 0 {
		diff = -diff
	}

	nights := int((diff + time.Hour*hoursPerDay - time.Nanosecond) / (time.Hour * hoursPerDay))
	if nights < 1 {
		return 1
	}

	return nights
}

// TotalPrice returns the cost of a stay at the given nightly rate.
func TotalPrice(nightlyRate int, checkIn, checkOut time.Time) int {
	return nightlyRate * Nights(checkIn, checkOut)
}

func midnight(t time.Time) time.Time {
	local := timezone.ToAppTime(t)

	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}
