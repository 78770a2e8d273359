package dto

import (
	"mime/multipart"

	"madison/internal/domains/room/model"
	"madison/shared"
	"madison/shared/catalog"
	gDto "madison/shared/dto"
	"madison/shared/format"
	gModel "madison/shared/model"
	"madison/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreateRoomRequest struct {
	Name             string                `json:"name"              validate:"required,max=100"`
	Description      string                `json:"description"       validate:"omitempty,max=2000"`
	ShortDescription string                `json:"short_description" validate:"omitempty,max=255"`
	Price            int                   `json:"price"             validate:"required,min=0"`
	Capacity         int                   `json:"capacity"          validate:"required,min=1"`
	Type             string                `json:"type"              validate:"required,oneof=standard vip suite luxe duplex"`
	Amenities        []string              `json:"amenities"         validate:"omitempty,dive,max=100"`
	Image            *multipart.FileHeader `json:"image"             validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile        multipart.File        `json:"-"`
	Available        *bool                 `json:"available"         validate:"omitempty"`
	Featured         *bool                 `json:"featured"          validate:"omitempty"`
	Promo            *bool                 `json:"promo"             validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string, imageURL string) model.Room {
	available := true
	if c.Available != nil {
		available = *c.Available
	}

	images := pq.StringArray{}
	if imageURL != "" {
		images = append(images, imageURL)
	}

	return model.Room{
		ID:               uuid.NewString(),
		Name:             c.Name,
		Description:      c.Description,
		ShortDescription: c.ShortDescription,
		Price:            c.Price,
		Capacity:         c.Capacity,
		Type:             c.Type,
		Images:           images,
		Amenities:        pq.StringArray(c.Amenities),
		Available:        available,
		Featured:         c.Featured != nil && *c.Featured,
		Promo:            c.Promo != nil && *c.Promo,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Name             string                `db:"name"              json:"name"              validate:"omitempty,max=100"`
	Description      string                `db:"description"       json:"description"       validate:"omitempty,max=2000"`
	ShortDescription string                `db:"short_description" json:"short_description" validate:"omitempty,max=255"`
	Price            *int                  `db:"price"             json:"price"             validate:"omitempty,min=0"`
	Capacity         *int                  `db:"capacity"          json:"capacity"          validate:"omitempty,min=1"`
	Type             string                `db:"type"              json:"type"              validate:"omitempty,oneof=standard vip suite luxe duplex"`
	Amenities        pq.StringArray        `db:"amenities"         json:"amenities"         validate:"omitempty,dive,max=100"`
	Image            *multipart.FileHeader `json:"image"           validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile        multipart.File        `json:"-"`
	Available        *bool                 `db:"available"         json:"available"         validate:"omitempty"`
	Featured         *bool                 `db:"featured"          json:"featured"          validate:"omitempty"`
	Promo            *bool                 `db:"promo"             json:"promo"             validate:"omitempty"`
}

type RoomResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"short_description"`
	Price            int      `json:"price"`
	PriceDisplay     string   `json:"price_display"`
	Capacity         int      `json:"capacity"`
	Type             string   `json:"type"`
	Images           []string `json:"images"`
	Amenities        []string `json:"amenities"`
	Available        bool     `json:"available"`
	Featured         bool     `json:"featured"`
	Promo            bool     `json:"promo"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.ShortDescription = model.ShortDescription
	r.Price = model.Price
	r.PriceDisplay = format.Price(model.Price)
	r.Capacity = model.Capacity
	r.Type = model.Type
	r.Images = model.Images
	r.Amenities = model.Amenities
	r.Available = model.Available
	r.Featured = model.Featured
	r.Promo = model.Promo
	r.Metadata.FromModel(model.Metadata)
}

// CatalogRequest carries the public listing filters. Page is 1-based.
type CatalogRequest struct {
	PriceRange gDto.PriceRange
	Type       string
	Page       int
}

type RoomCatalogResponse struct {
	Rooms      []RoomResponse `json:"rooms"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
}

func (r *RoomCatalogResponse) FromPage(page catalog.Page[model.Room]) {
	r.Page = page.PageNumber
	r.TotalPages = page.TotalPages

	r.Rooms = make([]RoomResponse, len(page.Records))
	for i, mod := range page.Records {
		r.Rooms[i].FromModel(mod)
	}
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
