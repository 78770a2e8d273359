package flow

import (
	"fmt"
	"net/url"
	"strings"

	"madison/shared/format"
)

// WhatsAppMessage renders the reservation as the French message sent to
// the reception's WhatsApp. Wording stays stable because the reception
// team parses these messages by hand.
func (r *Reservation) WhatsAppMessage(hotelName string) string {
	email := r.Email
	if email == "" {
		email = "Non fourni"
	}

	notes := r.Notes
	if notes == "" {
		notes = "Aucune"
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Je souhaite effectuer une réservation à %s:\n\n", hotelName)
	fmt.Fprintf(&b, "- Nom: %s\n", r.Name)
	fmt.Fprintf(&b, "- Téléphone: %s\n", r.Phone)
	fmt.Fprintf(&b, "- Email: %s\n", email)
	fmt.Fprintf(&b, "- Chambre: %s\n", r.Room.Name)
	fmt.Fprintf(&b, "- Arrivée: %s\n", format.DateNumeric(r.CheckIn))
	fmt.Fprintf(&b, "- Départ: %s\n", format.DateNumeric(r.CheckOut))
	fmt.Fprintf(&b, "- Personnes: %d\n", r.Guests)
	fmt.Fprintf(&b, "- Demandes spéciales: %s", notes)

	return b.String()
}

// WhatsAppLink builds the wa.me URL opening a chat with the hotel number,
// pre-filled with the reservation message.
func (r *Reservation) WhatsAppLink(number, hotelName string) string {
	cleaned := strings.ReplaceAll(number, " ", "")

	return fmt.Sprintf("https://wa.me/%s?text=%s", cleaned, url.QueryEscape(r.WhatsAppMessage(hotelName)))
}
