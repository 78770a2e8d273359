package dto

import (
	"madison/internal/domains/customer/model"
	"madison/shared"
	gDto "madison/shared/dto"
	gModel "madison/shared/model"
	"madison/shared/timezone"

	"github.com/google/uuid"
)

type CreateCustomerRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Email   string `json:"email"   validate:"omitempty,email,max=100"`
	Phone   string `json:"phone"   validate:"required,max=20"`
	Country string `json:"country" validate:"omitempty,max=100"`
	Notes   string `json:"notes"   validate:"omitempty,max=1000"`
	VIP     *bool  `json:"vip"     validate:"omitempty"`
}

func (c *CreateCustomerRequest) ToModel(user string) model.Customer {
	return model.Customer{
		ID:      uuid.NewString(),
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Country: c.Country,
		Notes:   c.Notes,
		VIP:     c.VIP != nil && *c.VIP,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCustomerRequest struct {
	Name    string `db:"name"    json:"name"    validate:"omitempty,max=100"`
	Email   string `db:"email"   json:"email"   validate:"omitempty,email,max=100"`
	Phone   string `db:"phone"   json:"phone"   validate:"omitempty,max=20"`
	Country string `db:"country" json:"country" validate:"omitempty,max=100"`
	Notes   string `db:"notes"   json:"notes"   validate:"omitempty,max=1000"`
	VIP     *bool  `db:"vip"     json:"vip"     validate:"omitempty"`
}

type CustomerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Country string `json:"country"`
	Notes   string `json:"notes"`
	VIP     bool   `json:"vip"`
	gDto.Metadata
}

func (r *CustomerResponse) FromModel(model model.Customer) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Country = model.Country
	r.Notes = model.Notes
	r.VIP = model.VIP
	r.Metadata.FromModel(model.Metadata)
}

type GetCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetCustomersResponse) FromModels(models []model.Customer, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Customers = make([]CustomerResponse, len(models))
	for i, mod := range models {
		r.Customers[i].FromModel(mod)
	}
}
