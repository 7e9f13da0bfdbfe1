package dto

import (
	"time"

	"hotelier/internal/domains/room/model"
	"hotelier/shared"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Number string   `json:"number" validate:"required,max=20"`
	Type   string   `json:"type"   validate:"required,oneof=single double suite deluxe"`
	Price  *float64 `json:"price"  validate:"required,gte=0"`
}

func (c *CreateRoomRequest) ToModel() model.Room {
	now := time.Now().UTC()

	return model.Room{
		ID:     uuid.NewString(),
		Number: c.Number,
		Type:   c.Type,
		Price:  *c.Price,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}
}

type UpdateRoomRequest struct {
	Number *string  `db:"number" json:"number" validate:"omitempty,max=20"`
	Type   *string  `db:"type"   json:"type"   validate:"omitempty,oneof=single double suite deluxe"`
	Price  *float64 `db:"price"  json:"price"  validate:"omitempty,gte=0"`
}

func (u *UpdateRoomRequest) IsEmpty() bool {
	return u.Number == nil && u.Type == nil && u.Price == nil
}

type RoomResponse struct {
	ID     string  `json:"id"`
	Number string  `json:"number"`
	Type   string  `json:"type"`
	Price  float64 `json:"price"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Number = model.Number
	r.Type = model.Type
	r.Price = model.Price
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"totalPage"`
	TotalData int            `json:"totalData"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
