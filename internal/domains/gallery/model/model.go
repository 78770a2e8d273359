package model

import (
	"madison/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "galleries"
	EntityName = "gallery"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldImages      = "images"
)

const (
	CategoryRooms      = "rooms"
	CategoryRestaurant = "restaurant"
	CategoryPool       = "pool"
	CategoryEvents     = "events"
	CategoryExterior   = "exterior"
)

type Gallery struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	Category    string         `db:"category"`
	Images      pq.StringArray `db:"images"`
	model.Metadata
}
