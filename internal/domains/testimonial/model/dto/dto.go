package dto

import (
	"madison/internal/domains/testimonial/model"
	"madison/shared"
	gDto "madison/shared/dto"
	gModel "madison/shared/model"
	"madison/shared/timezone"

	"github.com/google/uuid"
)

type CreateTestimonialRequest struct {
	Author   string `json:"author"   validate:"required,max=100"`
	Location string `json:"location" validate:"omitempty,max=100"`
	Rating   int    `json:"rating"   validate:"required,min=1,max=5"`
	Content  string `json:"content"  validate:"required,max=1000"`
}

// ToModel builds an unapproved testimonial. Guest submissions only show
// on the site after a staff member approves them.
func (c *CreateTestimonialRequest) ToModel(user string) model.Testimonial {
	return model.Testimonial{
		ID:       uuid.NewString(),
		Author:   c.Author,
		Location: c.Location,
		Rating:   c.Rating,
		Content:  c.Content,
		Approved: false,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateTestimonialRequest struct {
	Author   string `db:"author"   json:"author"   validate:"omitempty,max=100"`
	Location string `db:"location" json:"location" validate:"omitempty,max=100"`
	Rating   *int   `db:"rating"   json:"rating"   validate:"omitempty,min=1,max=5"`
	Content  string `db:"content"  json:"content"  validate:"omitempty,max=1000"`
	Approved *bool  `db:"approved" json:"approved" validate:"omitempty"`
}

type TestimonialResponse struct {
	ID       string `json:"id"`
	Author   string `json:"author"`
	Location string `json:"location"`
	Rating   int    `json:"rating"`
	Content  string `json:"content"`
	Approved bool   `json:"approved"`
	gDto.Metadata
}

func (r *TestimonialResponse) FromModel(model model.Testimonial) {
	r.ID = model.ID
	r.Author = model.Author
	r.Location = model.Location
	r.Rating = model.Rating
	r.Content = model.Content
	r.Approved = model.Approved
	r.Metadata.FromModel(model.Metadata)
}

type GetTestimonialsResponse struct {
	Testimonials []TestimonialResponse `json:"testimonials"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetTestimonialsResponse) FromModels(models []model.Testimonial, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Testimonials = make([]TestimonialResponse, len(models))
	for i, mod := range models {
		r.Testimonials[i].FromModel(mod)
	}
}
