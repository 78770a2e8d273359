package flow_test

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"madison/internal/domains/reservation/flow"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func vipRoom() flow.Room {
	return flow.Room{ID: "room-vip", Name: "Chambre VIP", Capacity: 3, NightlyRate: 45000}
}

func TestReservation_SelectRoom(t *testing.T) {
	t.Run("clamps guests to the new room capacity", func(t *testing.T) {
		r := flow.Reservation{Guests: 5}

		r.SelectRoom(flow.Room{ID: "room-std", Name: "Standard", Capacity: 2, NightlyRate: 20000})

		if r.Guests != 2 {
			t.Errorf("expected guests clamped to 2, got %d", r.Guests)
		}
	})

	t.Run("raises guests to at least one", func(t *testing.T) {
		r := flow.Reservation{}

		r.SelectRoom(vipRoom())

		if r.Guests != 1 {
			t.Errorf("expected guests to default to 1, got %d", r.Guests)
		}
	})

	t.Run("keeps a valid guest count", func(t *testing.T) {
		r := flow.Reservation{Guests: 2}

		r.SelectRoom(vipRoom())

		if r.Guests != 2 {
			t.Errorf("expected guests to stay at 2, got %d", r.Guests)
		}
	})
}

func TestReservation_SetCheckIn(t *testing.T) {
	t.Run("snaps the departure to the next day when it no longer follows", func(t *testing.T) {
		r := flow.Reservation{}
		r.SetCheckIn(date(2024, time.June, 1))
		r.SetCheckOut(date(2024, time.June, 3))

		r.SetCheckIn(date(2024, time.June, 5))

		expected := date(2024, time.June, 6)
		if !r.CheckOut.Equal(expected) {
			t.Errorf("expected check-out snapped to %s, got %s", expected, r.CheckOut)
		}
	})

	t.Run("leaves a later departure alone", func(t *testing.T) {
		r := flow.Reservation{}
		r.SetCheckIn(date(2024, time.June, 1))
		r.SetCheckOut(date(2024, time.June, 10))

		r.SetCheckIn(date(2024, time.June, 3))

		expected := date(2024, time.June, 10)
		if !r.CheckOut.Equal(expected) {
			t.Errorf("expected check-out to stay at %s, got %s", expected, r.CheckOut)
		}
	})

	t.Run("sets a departure when none was chosen yet", func(t *testing.T) {
		r := flow.Reservation{}

		r.SetCheckIn(date(2024, time.June, 1))

		expected := date(2024, time.June, 2)
		if !r.CheckOut.Equal(expected) {
			t.Errorf("expected check-out defaulted to %s, got %s", expected, r.CheckOut)
		}
	})
}

func TestReservation_SetCheckOut(t *testing.T) {
	r := flow.Reservation{}
	r.SetCheckIn(date(2024, time.June, 5))

	if r.SetCheckOut(date(2024, time.June, 5)) {
		t.Error("expected a departure on the arrival day to be rejected")
	}

	if r.SetCheckOut(date(2024, time.June, 3)) {
		t.Error("expected a departure before the arrival to be rejected")
	}

	expected := date(2024, time.June, 6)
	if !r.CheckOut.Equal(expected) {
		t.Errorf("expected check-out to stay at %s, got %s", expected, r.CheckOut)
	}

	if !r.SetCheckOut(date(2024, time.June, 9)) {
		t.Error("expected a later departure to be accepted")
	}
}

func TestReservation_SetGuests(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		guests   int
		expected int
	}{
		{name: "within capacity", capacity: 3, guests: 2, expected: 2},
		{name: "above capacity clamps down", capacity: 3, guests: 8, expected: 3},
		{name: "zero clamps up to one", capacity: 3, guests: 0, expected: 1},
		{name: "negative clamps up to one", capacity: 3, guests: -2, expected: 1},
		{name: "unknown capacity accepts any positive count", capacity: 0, guests: 10, expected: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := flow.Reservation{Room: flow.Room{ID: "room", Capacity: tt.capacity}}

			r.SetGuests(tt.guests)

			if r.Guests != tt.expected {
				t.Errorf("expected %d guests, got %d", tt.expected, r.Guests)
			}
		})
	}
}

func TestReservation_NightsAndTotal(t *testing.T) {
	r := flow.Reservation{}
	r.SelectRoom(vipRoom())
	r.SetCheckIn(date(2024, time.June, 1))
	r.SetCheckOut(date(2024, time.June, 4))

	if got := r.Nights(); got != 3 {
		t.Errorf("expected 3 nights, got %d", got)
	}

	if got := r.Total(); got != 135000 {
		t.Errorf("expected total 135000, got %d", got)
	}
}

func TestReservation_Validate(t *testing.T) {
	tests := []struct {
		name        string
		setup       func() flow.Reservation
		step        flow.Step
		wantValid   bool
		wantFields  []string
	}{
		{
			name:       "room step without a selection",
			setup:      func() flow.Reservation { return flow.Reservation{} },
			step:       flow.StepRoom,
			wantFields: []string{"room"},
		},
		{
			name: "room step with a selection",
			setup: func() flow.Reservation {
				r := flow.Reservation{}
				r.SelectRoom(vipRoom())
				return r
			},
			step:      flow.StepRoom,
			wantValid: true,
		},
		{
			name:       "dates step without dates",
			setup:      func() flow.Reservation { return flow.Reservation{} },
			step:       flow.StepDates,
			wantFields: []string{"check_in", "check_out"},
		},
		{
			name: "dates step with an inverted range",
			setup: func() flow.Reservation {
				return flow.Reservation{
					CheckIn:  date(2024, time.June, 5),
					CheckOut: date(2024, time.June, 3),
				}
			},
			step:       flow.StepDates,
			wantFields: []string{"check_out"},
		},
		{
			name: "guests step above capacity",
			setup: func() flow.Reservation {
				return flow.Reservation{Room: vipRoom(), Guests: 5}
			},
			step:       flow.StepGuests,
			wantFields: []string{"guests"},
		},
		{
			name: "contact step missing everything",
			setup: func() flow.Reservation {
				return flow.Reservation{}
			},
			step:       flow.StepContact,
			wantFields: []string{"name", "phone"},
		},
		{
			name: "contact step requires email for online payment",
			setup: func() flow.Reservation {
				r := flow.Reservation{Name: "Alice", Phone: "+237 690 00 00 00"}
				r.ChooseMethod(flow.MethodOnline)
				return r
			},
			step:       flow.StepContact,
			wantFields: []string{"email"},
		},
		{
			name: "contact step allows missing email for direct message",
			setup: func() flow.Reservation {
				r := flow.Reservation{Name: "Alice", Phone: "+237 690 00 00 00"}
				r.ChooseMethod(flow.MethodDirectMessage)
				return r
			},
			step:      flow.StepContact,
			wantValid: true,
		},
		{
			name:       "method step without a choice",
			setup:      func() flow.Reservation { return flow.Reservation{} },
			step:       flow.StepMethod,
			wantFields: []string{"method"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.setup()
			res := r.Validate(tt.step)

			if res.Valid != tt.wantValid {
				t.Errorf("expected valid=%v, got %v (errors: %v)", tt.wantValid, res.Valid, res.Errors)
			}

			for _, field := range tt.wantFields {
				if _, ok := res.Errors[field]; !ok {
					t.Errorf("expected an error for field %q, got %v", field, res.Errors)
				}
			}
		})
	}
}

func TestReservation_ValidateAll(t *testing.T) {
	t.Run("complete reservation passes", func(t *testing.T) {
		r := flow.Reservation{}
		r.SelectRoom(vipRoom())
		r.SetCheckIn(date(2024, time.June, 1))
		r.SetCheckOut(date(2024, time.June, 3))
		r.SetGuests(2)
		r.SetContact("Alice", "+237 690 00 00 00", "alice@example.com")
		r.ChooseMethod(flow.MethodOnline)

		res := r.ValidateAll()
		if !res.Valid {
			t.Errorf("expected a complete reservation to pass, got errors: %v", res.Errors)
		}
	})

	t.Run("empty reservation reports every missing field", func(t *testing.T) {
		r := flow.Reservation{}

		res := r.ValidateAll()
		if res.Valid {
			t.Fatal("expected an empty reservation to fail")
		}

		for _, field := range []string{"room", "check_in", "check_out", "guests", "name", "phone", "method"} {
			if _, ok := res.Errors[field]; !ok {
				t.Errorf("expected an error for field %q, got %v", field, res.Errors)
			}
		}
	})
}

func TestReservation_WhatsAppMessage(t *testing.T) {
	r := flow.Reservation{}
	r.SelectRoom(vipRoom())
	r.SetCheckIn(date(2024, time.June, 2))
	r.SetCheckOut(date(2024, time.June, 5))
	r.SetGuests(2)
	r.SetContact("Jean Mbarga", "+237 690 11 22 33", "jean@example.com")
	r.Notes = "Arrivée tardive"

	expected := "Je souhaite effectuer une réservation à MADISON HOTEL:\n\n" +
		"- Nom: Jean Mbarga\n" +
		"- Téléphone: +237 690 11 22 33\n" +
		"- Email: jean@example.com\n" +
		"- Chambre: Chambre VIP\n" +
		"- Arrivée: 02/06/2024\n" +
		"- Départ: 05/06/2024\n" +
		"- Personnes: 2\n" +
		"- Demandes spéciales: Arrivée tardive"

	if got := r.WhatsAppMessage("MADISON HOTEL"); got != expected {
		t.Errorf("unexpected message:\n got: %q\nwant: %q", got, expected)
	}
}

func TestReservation_WhatsAppMessageFallbacks(t *testing.T) {
	r := flow.Reservation{}
	r.SelectRoom(vipRoom())
	r.SetCheckIn(date(2024, time.June, 2))
	r.SetCheckOut(date(2024, time.June, 5))
	r.SetGuests(2)
	r.SetContact("Jean Mbarga", "+237 690 11 22 33", "")

	msg := r.WhatsAppMessage("MADISON HOTEL")

	if !strings.Contains(msg, "- Email: Non fourni\n") {
		t.Errorf("expected the email fallback, got %q", msg)
	}

	if !strings.HasSuffix(msg, "- Demandes spéciales: Aucune") {
		t.Errorf("expected the notes fallback, got %q", msg)
	}
}

func TestReservation_WhatsAppLink(t *testing.T) {
	r := flow.Reservation{}
	r.SelectRoom(vipRoom())
	r.SetCheckIn(date(2024, time.June, 2))
	r.SetCheckOut(date(2024, time.June, 5))
	r.SetGuests(2)
	r.SetContact("Jean Mbarga", "+237 690 11 22 33", "")

	link := r.WhatsAppLink("+237 690 19 84 84", "MADISON HOTEL")

	if !strings.HasPrefix(link, "https://wa.me/+237690198484?text=") {
		t.Fatalf("unexpected link prefix: %q", link)
	}

	parsed, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}

	text := parsed.Query().Get("text")
	if text != r.WhatsAppMessage("MADISON HOTEL") {
		t.Errorf("expected the query text to round-trip to the message, got %q", text)
	}
}
