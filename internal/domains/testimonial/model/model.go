package model

import "madison/shared/model"

const (
	TableName  = "testimonials"
	EntityName = "testimonial"

	FieldID       = "id"
	FieldAuthor   = "author"
	FieldLocation = "location"
	FieldRating   = "rating"
	FieldContent  = "content"
	FieldApproved = "approved"
)

const (
	RatingMin = 1
	RatingMax = 5
)

type Testimonial struct {
	ID       string `db:"id"`
	Author   string `db:"author"`
	Location string `db:"location"`
	Rating   int    `db:"rating"`
	Content  string `db:"content"`
	Approved bool   `db:"approved"`
	model.Metadata
}
