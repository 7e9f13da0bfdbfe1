package dto_test

import (
	"database/sql"
	"testing"
	"time"

	"hotelier/internal/domains/booking/model"
	"hotelier/internal/domains/booking/model/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float64Ptr(v float64) *float64 {
	return &v
}

func stringPtr(v string) *string {
	return &v
}

func TestCreateBookingRequestToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		GuestID:    "6f1e64c2-27a8-4d78-b22f-51864a0a53cb",
		RoomID:     "e7a9c6c9-9a4b-4de2-8d49-8c2f29d3a573",
		CheckIn:    "2026-10-01",
		CheckOut:   "2026-10-05",
		TotalPrice: float64Ptr(400),
	}

	booking, err := req.ToModel()
	require.NoError(t, err)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, req.GuestID, booking.GuestID)
	assert.Equal(t, req.RoomID, booking.RoomID)
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), booking.CheckIn)
	assert.Equal(t, time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC), booking.CheckOut)
	assert.Equal(t, 400.0, booking.TotalPrice)
	assert.Equal(t, model.StatusPending, booking.Status)
	assert.False(t, booking.CreatedAt.IsZero())
}

func TestCreateBookingRequestToModelExplicitStatus(t *testing.T) {
	req := dto.CreateBookingRequest{
		GuestID:    "g",
		RoomID:     "r",
		CheckIn:    "2026-10-01",
		CheckOut:   "2026-10-02",
		TotalPrice: float64Ptr(0),
		Status:     "confirmed",
	}

	booking, err := req.ToModel()
	require.NoError(t, err)

	assert.Equal(t, "confirmed", booking.Status)
	assert.Equal(t, 0.0, booking.TotalPrice)
}

func TestCreateBookingRequestToModelMalformedDate(t *testing.T) {
	req := dto.CreateBookingRequest{
		GuestID:    "g",
		RoomID:     "r",
		CheckIn:    "01-10-2026",
		CheckOut:   "2026-10-05",
		TotalPrice: float64Ptr(100),
	}

	_, err := req.ToModel()
	assert.Error(t, err)

	req.CheckIn = "2026-10-01"
	req.CheckOut = "not-a-date"

	_, err = req.ToModel()
	assert.Error(t, err)
}

func TestUpdateBookingRequestIsEmpty(t *testing.T) {
	assert.True(t, (&dto.UpdateBookingRequest{}).IsEmpty())

	assert.False(t, (&dto.UpdateBookingRequest{Notes: stringPtr("")}).IsEmpty())
	assert.False(t, (&dto.UpdateBookingRequest{TotalPrice: float64Ptr(0)}).IsEmpty())
}

func TestBookingResponseFromModel(t *testing.T) {
	booking := model.Booking{
		ID:         "b1",
		GuestID:    "g1",
		RoomID:     "r1",
		CheckIn:    time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
		TotalPrice: 400,
		Status:     "pending",
		GuestName:  sql.NullString{String: "Ada", Valid: true},
		GuestEmail: sql.NullString{String: "ada@example.com", Valid: true},
		RoomNumber: sql.NullString{String: "101", Valid: true},
		RoomType:   sql.NullString{String: "double", Valid: true},
		RoomPrice:  sql.NullFloat64{Float64: 100, Valid: true},
	}

	res := dto.BookingResponse{}
	res.FromModel(booking)

	assert.Equal(t, "2026-10-01", res.CheckIn)
	assert.Equal(t, "2026-10-05", res.CheckOut)

	require.NotNil(t, res.Guest)
	assert.Equal(t, "Ada", res.Guest.Name)
	require.NotNil(t, res.Room)
	assert.Equal(t, "101", res.Room.Number)
	assert.Equal(t, 100.0, res.Room.Price)
}

// A booking whose guest or room was deleted resolves to null projections.
func TestBookingResponseFromModelDanglingRefs(t *testing.T) {
	booking := model.Booking{
		ID:       "b1",
		GuestID:  "g1",
		RoomID:   "r1",
		CheckIn:  time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
	}

	res := dto.BookingResponse{}
	res.FromModel(booking)

	assert.Nil(t, res.Guest)
	assert.Nil(t, res.Room)
	assert.Equal(t, "g1", res.GuestID)
}

func TestGetBookingsResponseFromModels(t *testing.T) {
	models := []model.Booking{
		{ID: "b1", CheckIn: time.Now(), CheckOut: time.Now()},
		{ID: "b2", CheckIn: time.Now(), CheckOut: time.Now()},
	}

	res := dto.GetBookingsResponse{}
	res.FromModels(models, 25, 10)

	assert.Len(t, res.Bookings, 2)
	assert.Equal(t, 25, res.TotalData)
	assert.Equal(t, 3, res.TotalPage)
}
