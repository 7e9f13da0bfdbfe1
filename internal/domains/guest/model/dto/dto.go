package dto

import (
	"time"

	"hotelier/internal/domains/guest/model"
	"hotelier/shared"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"

	"github.com/google/uuid"
)

type CreateGuestRequest struct {
	Name  string `json:"name"  validate:"required,max=100"`
	Email string `json:"email" validate:"omitempty,email,max=100"`
	Phone string `json:"phone" validate:"omitempty,max=20"`
}

func (c *CreateGuestRequest) ToModel() model.Guest {
	now := time.Now().UTC()

	return model.Guest{
		ID:    uuid.NewString(),
		Name:  c.Name,
		Email: c.Email,
		Phone: c.Phone,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}
}

type UpdateGuestRequest struct {
	Name  *string `db:"name"  json:"name"  validate:"omitempty,max=100"`
	Email *string `db:"email" json:"email" validate:"omitempty,email,max=100"`
	Phone *string `db:"phone" json:"phone" validate:"omitempty,max=20"`
}

func (u *UpdateGuestRequest) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.Phone == nil
}

type GuestResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Metadata.FromModel(model.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"totalPage"`
	TotalData int             `json:"totalData"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}
