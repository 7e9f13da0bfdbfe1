package service_test

import (
	"context"
	"testing"
	"time"

	"hotelier/config"
	kafkaMocks "hotelier/infras/kafka/mocks"
	otelMocks "hotelier/infras/otel/mocks"
	"hotelier/internal/domains/booking/mocks"
	"hotelier/internal/domains/booking/model"
	"hotelier/internal/domains/booking/model/dto"
	"hotelier/internal/domains/booking/service"
	guestMocks "hotelier/internal/domains/guest/mocks"
	roomMocks "hotelier/internal/domains/room/mocks"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	bookingID = "0b4fa4f1-2dcd-4c40-ae74-3e8b7c33a351"
	guestID   = "6f1e64c2-27a8-4d78-b22f-51864a0a53cb"
	roomID    = "e7a9c6c9-9a4b-4de2-8d49-8c2f29d3a573"
)

type fixture struct {
	repo      *mocks.MockBooking
	guestRepo *guestMocks.MockGuest
	roomRepo  *roomMocks.MockRoom
	kafka     *kafkaMocks.MockClient
	service   service.Booking
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := mocks.NewMockBooking(ctrl)
	guestRepo := guestMocks.NewMockGuest(ctrl)
	roomRepo := roomMocks.NewMockRoom(ctrl)
	kafkaClient := kafkaMocks.NewMockClient(ctrl)

	return fixture{
		repo:      repo,
		guestRepo: guestRepo,
		roomRepo:  roomRepo,
		kafka:     kafkaClient,
		service:   service.New(repo, guestRepo, roomRepo, &config.Config{}, kafkaClient, otelMocks.NewOtel()),
	}
}

func float64Ptr(v float64) *float64 {
	return &v
}

func stringPtr(v string) *string {
	return &v
}

func storedBooking() model.Booking {
	return model.Booking{
		ID:         bookingID,
		GuestID:    guestID,
		RoomID:     roomID,
		CheckIn:    time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
		TotalPrice: 400,
		Status:     model.StatusPending,
	}
}

func TestCreateBooking(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := dto.CreateBookingRequest{
		GuestID:    guestID,
		RoomID:     roomID,
		CheckIn:    "2026-10-01",
		CheckOut:   "2026-10-05",
		TotalPrice: float64Ptr(400),
	}

	f.guestRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.roomRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

	var insertedID string

	f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, booking model.Booking) error {
			insertedID = booking.ID

			assert.Equal(t, model.StatusPending, booking.Status)
			assert.Equal(t, 400.0, booking.TotalPrice)

			return nil
		})
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ gDto.FilterGroup, _ ...string) (model.Booking, error) {
			booking := storedBooking()
			booking.ID = insertedID

			return booking, nil
		})

	res, err := f.service.Create(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, insertedID, res.ID)
	assert.Equal(t, model.StatusPending, res.Status)
}

func TestCreateBookingGuestNotFound(t *testing.T) {
	f := newFixture(t)

	req := dto.CreateBookingRequest{
		GuestID:    guestID,
		RoomID:     roomID,
		CheckIn:    "2026-10-01",
		CheckOut:   "2026-10-05",
		TotalPrice: float64Ptr(400),
	}

	f.guestRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	_, err := f.service.Create(context.Background(), req)
	require.Error(t, err)

	assert.Equal(t, 404, failure.GetCode(err))
	assert.Equal(t, "Guest not found", err.Error())
}

func TestCreateBookingRoomNotFound(t *testing.T) {
	f := newFixture(t)

	req := dto.CreateBookingRequest{
		GuestID:    guestID,
		RoomID:     roomID,
		CheckIn:    "2026-10-01",
		CheckOut:   "2026-10-05",
		TotalPrice: float64Ptr(400),
	}

	f.guestRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.roomRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	_, err := f.service.Create(context.Background(), req)
	require.Error(t, err)

	assert.Equal(t, 404, failure.GetCode(err))
	assert.Equal(t, "Room not found", err.Error())
}

func TestCreateBookingCheckOutNotAfterCheckIn(t *testing.T) {
	f := newFixture(t)

	req := dto.CreateBookingRequest{
		GuestID:    guestID,
		RoomID:     roomID,
		CheckIn:    "2026-10-05",
		CheckOut:   "2026-10-05",
		TotalPrice: float64Ptr(400),
	}

	f.guestRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.roomRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

	_, err := f.service.Create(context.Background(), req)
	require.Error(t, err)

	assert.Equal(t, 400, failure.GetCode(err))
	assert.Equal(t, "Check-out date must be after check-in date", err.Error())
}

// Malformed reference ids are rejected before any lookup so they never reach
// the UUID-typed columns as an invalid cast.
func TestCreateBookingMalformedReferenceID(t *testing.T) {
	f := newFixture(t)

	req := dto.CreateBookingRequest{
		GuestID:    "g1",
		RoomID:     roomID,
		CheckIn:    "2026-10-01",
		CheckOut:   "2026-10-05",
		TotalPrice: float64Ptr(400),
	}

	_, err := f.service.Create(context.Background(), req)
	require.Error(t, err)

	assert.Equal(t, 400, failure.GetCode(err))
	assert.Equal(t, "Invalid ID format", err.Error())

	req.GuestID = guestID
	req.RoomID = "r1"

	_, err = f.service.Create(context.Background(), req)
	require.Error(t, err)

	assert.Equal(t, 400, failure.GetCode(err))
	assert.Equal(t, "Invalid ID format", err.Error())
}

func TestCreateBookingMalformedDate(t *testing.T) {
	f := newFixture(t)

	req := dto.CreateBookingRequest{
		GuestID:    guestID,
		RoomID:     roomID,
		CheckIn:    "05/10/2026",
		CheckOut:   "2026-10-06",
		TotalPrice: float64Ptr(400),
	}

	_, err := f.service.Create(context.Background(), req)
	require.Error(t, err)

	assert.Equal(t, 400, failure.GetCode(err))
}

func TestGetBookingInvalidID(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Get(context.Background(), "not-a-uuid")
	require.Error(t, err)

	assert.Equal(t, 400, failure.GetCode(err))
	assert.Equal(t, "Invalid ID format", err.Error())
}

func TestGetBookingNotFound(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

	_, err := f.service.Get(context.Background(), bookingID)
	require.Error(t, err)

	assert.Equal(t, 404, failure.GetCode(err))
	assert.Equal(t, "Booking not found", err.Error())
}

func TestGetBooking(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(), nil)

	res, err := f.service.Get(context.Background(), bookingID)
	require.NoError(t, err)

	assert.Equal(t, bookingID, res.ID)
	assert.Equal(t, "2026-10-01", res.CheckIn)
}

func TestGetAllBookings(t *testing.T) {
	f := newFixture(t)

	params := gDto.QueryParams{Page: 1, Limit: 10}

	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(25, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.Booking{storedBooking()}, nil)

	res, err := f.service.GetAll(context.Background(), params, gDto.FilterGroup{})
	require.NoError(t, err)

	assert.Len(t, res.Bookings, 1)
	assert.Equal(t, 25, res.TotalData)
	assert.Equal(t, 3, res.TotalPage)
}

func TestUpdateBookingEmptyRequest(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Update(context.Background(), dto.UpdateBookingRequest{}, bookingID)
	require.Error(t, err)

	assert.Equal(t, 400, failure.GetCode(err))
	assert.Equal(t, "update request cannot be empty", err.Error())
}

func TestUpdateBookingNotFound(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

	req := dto.UpdateBookingRequest{Status: stringPtr("confirmed")}

	_, err := f.service.Update(context.Background(), req, bookingID)
	require.Error(t, err)

	assert.Equal(t, 404, failure.GetCode(err))
	assert.Equal(t, "Booking not found", err.Error())
}

// An explicit zero price is present and must reach the update map.
func TestUpdateBookingAppliesExplicitZero(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(), nil)
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, 0.0, fields["total_price"])
			assert.Contains(t, fields, "modified_at")
			assert.NotContains(t, fields, "check_in")

			return nil
		})

	updated := storedBooking()
	updated.TotalPrice = 0
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(updated, nil)

	req := dto.UpdateBookingRequest{TotalPrice: float64Ptr(0)}

	res, err := f.service.Update(context.Background(), req, bookingID)
	require.NoError(t, err)

	assert.Equal(t, 0.0, res.TotalPrice)
}

// Moving check-out to or before the stored check-in must fail without a write.
func TestUpdateBookingMergedDatesInvalid(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(), nil)

	req := dto.UpdateBookingRequest{CheckOut: stringPtr("2026-10-01")}

	_, err := f.service.Update(context.Background(), req, bookingID)
	require.Error(t, err)

	assert.Equal(t, 400, failure.GetCode(err))
	assert.Equal(t, "Check-out date must be after check-in date", err.Error())
}

func TestUpdateBookingMalformedReferenceID(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(), nil)

	req := dto.UpdateBookingRequest{GuestID: stringPtr("g1")}

	_, err := f.service.Update(context.Background(), req, bookingID)
	require.Error(t, err)

	assert.Equal(t, 400, failure.GetCode(err))
	assert.Equal(t, "Invalid ID format", err.Error())
}

func TestUpdateBookingDanglingGuest(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(), nil)
	f.guestRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	req := dto.UpdateBookingRequest{GuestID: stringPtr(guestID)}

	_, err := f.service.Update(context.Background(), req, bookingID)
	require.Error(t, err)

	assert.Equal(t, 404, failure.GetCode(err))
	assert.Equal(t, "Guest not found", err.Error())
}

func TestDeleteBookingInvalidID(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Delete(context.Background(), "42")
	require.Error(t, err)

	assert.Equal(t, "Invalid ID format", err.Error())
}

func TestDeleteBookingNotFound(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

	_, err := f.service.Delete(context.Background(), bookingID)
	require.Error(t, err)

	assert.Equal(t, 404, failure.GetCode(err))
}

func TestDeleteBookingReturnsSnapshot(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(), nil)
	f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

	res, err := f.service.Delete(context.Background(), bookingID)
	require.NoError(t, err)

	assert.Equal(t, bookingID, res.ID)
	assert.Equal(t, 400.0, res.TotalPrice)
}
