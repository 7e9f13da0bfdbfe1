package dto

import (
	"time"

	"hotelier/internal/domains/booking/model"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	GuestID    string   `json:"guestId"    validate:"required"`
	RoomID     string   `json:"roomId"     validate:"required"`
	CheckIn    string   `json:"checkIn"    validate:"required"`
	CheckOut   string   `json:"checkOut"   validate:"required"`
	TotalPrice *float64 `json:"totalPrice" validate:"required,gte=0"`
	Notes      string   `json:"notes"      validate:"omitempty,max=500"`
	Status     string   `json:"status"     validate:"omitempty,oneof=pending confirmed cancelled completed"`
}

func (c *CreateBookingRequest) ToModel() (model.Booking, error) {
	checkIn, err := time.Parse(constant.BookingDateFormat, c.CheckIn)
	if err != nil {
		return model.Booking{}, err
	}

	checkOut, err := time.Parse(constant.BookingDateFormat, c.CheckOut)
	if err != nil {
		return model.Booking{}, err
	}

	status := model.StatusPending
	if c.Status != "" {
		status = c.Status
	}

	now := time.Now().UTC()

	return model.Booking{
		ID:         uuid.NewString(),
		GuestID:    c.GuestID,
		RoomID:     c.RoomID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		TotalPrice: *c.TotalPrice,
		Notes:      c.Notes,
		Status:     status,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}, nil
}

// UpdateBookingRequest distinguishes absent fields from explicit zero values
// through pointers, so totalPrice=0 and notes="" are applied when supplied.
// The date fields carry no db tag; they are parsed and merged by the service.
type UpdateBookingRequest struct {
	GuestID    *string  `db:"guest_id"    json:"guestId"    validate:"omitempty"`
	RoomID     *string  `db:"room_id"     json:"roomId"     validate:"omitempty"`
	CheckIn    *string  `json:"checkIn"   validate:"omitempty"`
	CheckOut   *string  `json:"checkOut"  validate:"omitempty"`
	TotalPrice *float64 `db:"total_price" json:"totalPrice" validate:"omitempty,gte=0"`
	Notes      *string  `db:"notes"       json:"notes"      validate:"omitempty,max=500"`
	Status     *string  `db:"status"      json:"status"     validate:"omitempty,oneof=pending confirmed cancelled completed"`
}

func (u *UpdateBookingRequest) IsEmpty() bool {
	return u.GuestID == nil && u.RoomID == nil && u.CheckIn == nil && u.CheckOut == nil &&
		u.TotalPrice == nil && u.Notes == nil && u.Status == nil
}

type GuestSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type RoomSummary struct {
	Number string  `json:"number"`
	Type   string  `json:"type"`
	Price  float64 `json:"price"`
}

type BookingResponse struct {
	ID         string        `json:"id"`
	GuestID    string        `json:"guestId"`
	RoomID     string        `json:"roomId"`
	CheckIn    string        `json:"checkIn"`
	CheckOut   string        `json:"checkOut"`
	TotalPrice float64       `json:"totalPrice"`
	Notes      string        `json:"notes"`
	Status     string        `json:"status"`
	Guest      *GuestSummary `json:"guest"`
	Room       *RoomSummary  `json:"room"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.GuestID = model.GuestID
	r.RoomID = model.RoomID
	r.CheckIn = model.CheckIn.Format(constant.BookingDateFormat)
	r.CheckOut = model.CheckOut.Format(constant.BookingDateFormat)
	r.TotalPrice = model.TotalPrice
	r.Notes = model.Notes
	r.Status = model.Status

	if model.GuestName.Valid {
		r.Guest = &GuestSummary{
			Name:  model.GuestName.String,
			Email: model.GuestEmail.String,
			Phone: model.GuestPhone.String,
		}
	}

	if model.RoomNumber.Valid {
		r.Room = &RoomSummary{
			Number: model.RoomNumber.String,
			Type:   model.RoomType.String,
			Price:  model.RoomPrice.Float64,
		}
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"totalPage"`
	TotalData int               `json:"totalData"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
