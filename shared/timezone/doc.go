// Package timezone pins all date arithmetic to a single application
// timezone so night counts and check-in boundaries do not shift with the
// server's locale.
//
//	now := timezone.Now()
//	local := timezone.ToAppTime(booking.CheckIn)
//	formatted := timezone.Format(time.Now(), "02/01/2006")
//	t, err := timezone.Parse("2006-01-02", "2024-06-01")
//
// The zone comes from the APP_TIMEZONE environment variable as an IANA name
// (the deployment sets Africa/Douala) and falls back to UTC when unset or
// invalid. Initialization happens on import.
package timezone
