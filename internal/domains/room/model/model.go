package model

import (
	"madison/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID               = "id"
	FieldName             = "name"
	FieldDescription      = "description"
	FieldShortDescription = "short_description"
	FieldPrice            = "price"
	FieldCapacity         = "capacity"
	FieldType             = "type"
	FieldImages           = "images"
	FieldAmenities        = "amenities"
	FieldAvailable        = "available"
	FieldFeatured         = "featured"
	FieldPromo            = "promo"
)

// Room categories offered by the residence.
const (
	TypeStandard = "standard"
	TypeVIP      = "vip"
	TypeSuite    = "suite"
	TypeLuxe     = "luxe"
	TypeDuplex   = "duplex"
)

type Room struct {
	ID               string         `db:"id"`
	Name             string         `db:"name"`
	Description      string         `db:"description"`
	ShortDescription string         `db:"short_description"`
	Price            int            `db:"price"`
	Capacity         int            `db:"capacity"`
	Type             string         `db:"type"`
	Images           pq.StringArray `db:"images"`
	Amenities        pq.StringArray `db:"amenities"`
	Available        bool           `db:"available"`
	Featured         bool           `db:"featured"`
	Promo            bool           `db:"promo"`
	model.Metadata
}
