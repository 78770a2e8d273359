package dto

import (
	"madison/internal/domains/service/model"
	"madison/shared"
	gDto "madison/shared/dto"
	gModel "madison/shared/model"
	"madison/shared/timezone"

	"github.com/google/uuid"
)

type CreateServiceRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	Icon        string `json:"icon"        validate:"omitempty,max=100"`
	Image       string `json:"image"       validate:"omitempty,url,max=500"`
	Featured    *bool  `json:"featured"    validate:"omitempty"`
	Active      *bool  `json:"active"      validate:"omitempty"`
}

func (c *CreateServiceRequest) ToModel(user string) model.Service {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Service{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
		Image:       c.Image,
		Featured:    c.Featured != nil && *c.Featured,
		Active:      active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateServiceRequest struct {
	Name        string `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Description string `db:"description" json:"description" validate:"omitempty,max=1000"`
	Icon        string `db:"icon"        json:"icon"        validate:"omitempty,max=100"`
	Image       string `db:"image"       json:"image"       validate:"omitempty,url,max=500"`
	Featured    *bool  `db:"featured"    json:"featured"    validate:"omitempty"`
	Active      *bool  `db:"active"      json:"active"      validate:"omitempty"`
}

type ServiceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Image       string `json:"image"`
	Featured    bool   `json:"featured"`
	Active      bool   `json:"active"`
	gDto.Metadata
}

func (r *ServiceResponse) FromModel(model model.Service) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Icon = model.Icon
	r.Image = model.Image
	r.Featured = model.Featured
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetServicesResponse struct {
	Services  []ServiceResponse `json:"services"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetServicesResponse) FromModels(models []model.Service, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Services = make([]ServiceResponse, len(models))
	for i, mod := range models {
		r.Services[i].FromModel(mod)
	}
}
