package timezone_test

import (
	"testing"
	"time"

	"madison/shared/timezone"
)

func TestNowAndLocation(t *testing.T) {
	if timezone.Now().IsZero() {
		t.Error("Now() returned zero time")
	}

	loc := timezone.GetLocation()
	if loc == nil {
		t.Fatal("GetLocation() returned nil")
	}

	if got := timezone.Now().Location(); got != loc {
		t.Errorf("Now() location %v does not match GetLocation() %v", got, loc)
	}
}

func TestToAppTimeKeepsInstant(t *testing.T) {
	checkIn := time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC)

	converted := timezone.ToAppTime(checkIn)
	if !converted.Equal(checkIn) {
		t.Error("expected conversion to preserve the instant")
	}

	if converted.Location() != timezone.GetLocation() {
		t.Error("expected converted time to carry the application location")
	}
}

func TestParseAndFormatRoundTrip(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02", "2024-06-01")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if parsed.Location() != timezone.GetLocation() {
		t.Error("expected parsed time in the application timezone")
	}

	if got := timezone.Format(parsed, "02/01/2006"); got != "01/06/2024" {
		t.Errorf("expected 01/06/2024, got %s", got)
	}
}
