package model

import "madison/shared/model"

const (
	TableName  = "settings"
	EntityName = "settings"

	// The settings table holds a single row with a fixed key.
	SingletonID = "default"

	FieldID             = "id"
	FieldHotelName      = "hotel_name"
	FieldWhatsAppNumber = "whatsapp_number"
	FieldPhone          = "phone"
	FieldEmail          = "email"
	FieldAddress        = "address"
	FieldFacebook       = "facebook"
	FieldInstagram      = "instagram"
)

type Settings struct {
	ID             string `db:"id"`
	HotelName      string `db:"hotel_name"`
	WhatsAppNumber string `db:"whatsapp_number"`
	Phone          string `db:"phone"`
	Email          string `db:"email"`
	Address        string `db:"address"`
	Facebook       string `db:"facebook"`
	Instagram      string `db:"instagram"`
	model.Metadata
}
