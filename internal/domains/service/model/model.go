package model

import "madison/shared/model"

const (
	TableName  = "services"
	EntityName = "service"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldIcon        = "icon"
	FieldImage       = "image"
	FieldFeatured    = "featured"
	FieldActive      = "active"
)

// Service is an amenity the hotel advertises, such as the restaurant or
// the pool. These back the services section of the public site.
type Service struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Icon        string `db:"icon"`
	Image       string `db:"image"`
	Featured    bool   `db:"featured"`
	Active      bool   `db:"active"`
	model.Metadata
}
