package flow

import (
	"time"

	"madison/shared/stay"
)

// Step identifies where the guest is in the reservation funnel.
type Step string

const (
	StepRoom    Step = "room"
	StepDates   Step = "dates"
	StepGuests  Step = "guests"
	StepContact Step = "contact"
	StepMethod  Step = "method"
	StepDone    Step = "done"
)

// Method is how the guest chooses to finalize the reservation.
type Method string

const (
	MethodOnline        Method = "online"
	MethodDirectMessage Method = "direct_message"
)

// Room carries the subset of room data the funnel needs.
type Room struct {
	ID          string
	Name        string
	Capacity    int
	NightlyRate int
}

// Reservation is the funnel state. A zero value starts at the room step.
type Reservation struct {
	Room     Room
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
	Name     string
	Phone    string
	Email    string
	Notes    string
	Method   Method
}

// Result reports whether the current state can advance past a step.
type Result struct {
	Valid  bool
	Errors map[string]string
}

func newResult() Result {
	return Result{Valid: true, Errors: map[string]string{}}
}

func (r *Result) fail(field, message string) {
	r.Valid = false
	r.Errors[field] = message
}

// SelectRoom switches the reservation to another room. Guests already
// chosen are clamped so the party never exceeds the new room's capacity.
func (r *Reservation) SelectRoom(room Room) {
	r.Room = room

	if room.Capacity > 0 && r.Guests > room.Capacity {
		r.Guests = room.Capacity
	}

	if r.Guests < 1 {
		r.Guests = 1
	}
}

// SetCheckIn moves the arrival date. When the departure no longer follows
// the arrival, it snaps to the next day so the range stays bookable.
func (r *Reservation) SetCheckIn(checkIn time.Time) {
	r.CheckIn = checkIn

	if !r.CheckOut.After(checkIn) {
		r.CheckOut = checkIn.AddDate(0, 0, 1)
	}
}

// SetCheckOut moves the departure date. A departure on or before the
// arrival is ignored and reported invalid.
func (r *Reservation) SetCheckOut(checkOut time.Time) bool {
	if !r.CheckIn.IsZero() && !checkOut.After(r.CheckIn) {
		return false
	}

	r.CheckOut = checkOut

	return true
}

// SetGuests clamps the party size to the room's capacity, with a floor of one.
func (r *Reservation) SetGuests(guests int) {
	if guests < 1 {
		guests = 1
	}

	if r.Room.Capacity > 0 && guests > r.Room.Capacity {
		guests = r.Room.Capacity
	}

	r.Guests = guests
}

func (r *Reservation) SetContact(name, phone, email string) {
	r.Name = name
	r.Phone = phone
	r.Email = email
}

func (r *Reservation) ChooseMethod(method Method) {
	r.Method = method
}

// Nights returns the stay length, never less than one night.
func (r *Reservation) Nights() int {
	return stay.Nights(r.CheckIn, r.CheckOut)
}

// Total returns the stay price at the selected room's nightly rate.
func (r *Reservation) Total() int {
	return stay.TotalPrice(r.Room.NightlyRate, r.CheckIn, r.CheckOut)
}

// Validate checks the state against the requirements of a single step.
func (r *Reservation) Validate(step Step) Result {
	res := newResult()

	switch step {
	case StepRoom:
		if r.Room.ID == "" {
			res.fail("room", "une chambre doit être sélectionnée")
		}
	case StepDates:
		if r.CheckIn.IsZero() {
			res.fail("check_in", "la date d'arrivée est requise")
		}

		if r.CheckOut.IsZero() {
			res.fail("check_out", "la date de départ est requise")
		} else if !r.CheckIn.IsZero() && !r.CheckOut.After(r.CheckIn) {
			res.fail("check_out", "la date de départ doit être après la date d'arrivée")
		}
	case StepGuests:
		if r.Guests < 1 {
			res.fail("guests", "au moins une personne est requise")
		}

		if r.Room.Capacity > 0 && r.Guests > r.Room.Capacity {
			res.fail("guests", "le nombre de personnes dépasse la capacité de la chambre")
		}
	case StepContact:
		if r.Name == "" {
			res.fail("name", "le nom est requis")
		}

		if r.Phone == "" {
			res.fail("phone", "le numéro de téléphone est requis")
		}

		if r.Method == MethodOnline && r.Email == "" {
			res.fail("email", "l'email est requis pour une réservation en ligne")
		}
	case StepMethod:
		if r.Method != MethodOnline && r.Method != MethodDirectMessage {
			res.fail("method", "le mode de réservation est invalide")
		}
	case StepDone:
	}

	return res
}

// ValidateAll runs every step check and merges the failures, used as the
// final gate before submission.
func (r *Reservation) ValidateAll() Result {
	res := newResult()

	for _, step := range []Step{StepRoom, StepDates, StepGuests, StepMethod, StepContact} {
		stepRes := r.Validate(step)
		if stepRes.Valid {
			continue
		}

		res.Valid = false
		for field, message := range stepRes.Errors {
			res.Errors[field] = message
		}
	}

	return res
}
