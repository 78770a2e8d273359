package model

import "madison/shared/model"

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID      = "id"
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldCountry = "country"
	FieldNotes   = "notes"
	FieldVIP     = "vip"
)

type Customer struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Email   string `db:"email"`
	Phone   string `db:"phone"`
	Country string `db:"country"`
	Notes   string `db:"notes"`
	VIP     bool   `db:"vip"`
	model.Metadata
}
