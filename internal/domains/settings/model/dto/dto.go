package dto

import (
	"madison/internal/domains/settings/model"
	gDto "madison/shared/dto"
)

type UpdateSettingsRequest struct {
	HotelName      string `db:"hotel_name"      json:"hotel_name"      validate:"omitempty,max=100"`
	WhatsAppNumber string `db:"whatsapp_number" json:"whatsapp_number" validate:"omitempty,max=20"`
	Phone          string `db:"phone"           json:"phone"           validate:"omitempty,max=20"`
	Email          string `db:"email"           json:"email"           validate:"omitempty,email,max=100"`
	Address        string `db:"address"         json:"address"         validate:"omitempty,max=255"`
	Facebook       string `db:"facebook"        json:"facebook"        validate:"omitempty,url,max=255"`
	Instagram      string `db:"instagram"       json:"instagram"       validate:"omitempty,url,max=255"`
}

type SettingsResponse struct {
	HotelName      string `json:"hotel_name"`
	WhatsAppNumber string `json:"whatsapp_number"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Address        string `json:"address"`
	Facebook       string `json:"facebook"`
	Instagram      string `json:"instagram"`
	gDto.Metadata
}

func (r *SettingsResponse) FromModel(model model.Settings) {
	r.HotelName = model.HotelName
	r.WhatsAppNumber = model.WhatsAppNumber
	r.Phone = model.Phone
	r.Email = model.Email
	r.Address = model.Address
	r.Facebook = model.Facebook
	r.Instagram = model.Instagram
	r.Metadata.FromModel(model.Metadata)
}
