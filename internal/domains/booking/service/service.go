package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"time"

	"hotelier/config"
	"hotelier/infras/kafka"
	"hotelier/infras/otel"
	"hotelier/internal/domains/booking/model"
	"hotelier/internal/domains/booking/model/dto"
	"hotelier/internal/domains/booking/repository"
	guestModel "hotelier/internal/domains/guest/model"
	guestRepo "hotelier/internal/domains/guest/repository"
	roomModel "hotelier/internal/domains/room/model"
	roomRepo "hotelier/internal/domains/room/repository"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	eventBookingCreated = "booking.created"
	eventBookingUpdated = "booking.updated"
	eventBookingDeleted = "booking.deleted"
)

type bookingEvent struct {
	Event   string              `json:"event"`
	Booking dto.BookingResponse `json:"booking"`
}

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (dto.BookingResponse, error)
	Delete(ctx context.Context, id string) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo      repository.Booking
	guestRepo guestRepo.Guest
	roomRepo  roomRepo.Room
	cfg       *config.Config
	kafka     kafka.Client
	otel      otel.Otel
}

func New(repo repository.Booking, guestRepo guestRepo.Guest, roomRepo roomRepo.Room, cfg *config.Config, kafkaClient kafka.Client, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:      repo,
		guestRepo: guestRepo,
		roomRepo:  roomRepo,
		cfg:       cfg,
		kafka:     kafkaClient,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := req.ToModel()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking dates")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if uuid.Validate(booking.GuestID) != nil || uuid.Validate(booking.RoomID) != nil {
		return res, failure.InvalidIDFormat
	}

	guestExists, err := s.guestRepo.Exist(ctx, shared.FilterByID(booking.GuestID, guestModel.FieldID, guestModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guest exists")

		return res, fmt.Errorf("failed to check if guest exists: %w", err)
	}

	if !guestExists {
		return res, failure.NotFound("Guest not found") // nolint:wrapcheck
	}

	roomExists, err := s.roomRepo.Exist(ctx, shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return res, fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !roomExists {
		return res, failure.NotFound("Room not found") // nolint:wrapcheck
	}

	if !booking.CheckOut.After(booking.CheckIn) {
		return res, failure.BadRequestFromString("Check-out date must be after check-in date") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	created, err := s.repo.Get(ctx, shared.FilterByID(booking.ID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to reload booking")

		return res, fmt.Errorf("failed to reload booking: %w", err)
	}

	res.FromModel(created)
	s.publish(ctx, eventBookingCreated, res)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	if uuid.Validate(id) != nil {
		return res, failure.InvalidIDFormat
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("Booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	if uuid.Validate(id) != nil {
		return res, failure.InvalidIDFormat
	}

	if req.IsEmpty() {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	existing, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if existing.ID == constant.Empty {
		return res, failure.NotFound("Booking not found") // nolint:wrapcheck
	}

	if req.GuestID != nil {
		if uuid.Validate(*req.GuestID) != nil {
			return res, failure.InvalidIDFormat
		}

		guestExists, existErr := s.guestRepo.Exist(ctx, shared.FilterByID(*req.GuestID, guestModel.FieldID, guestModel.TableName))
		if existErr != nil {
			log.Error().Err(existErr).Msg("failed to check if guest exists")

			return res, fmt.Errorf("failed to check if guest exists: %w", existErr)
		}

		if !guestExists {
			return res, failure.NotFound("Guest not found") // nolint:wrapcheck
		}
	}

	if req.RoomID != nil {
		if uuid.Validate(*req.RoomID) != nil {
			return res, failure.InvalidIDFormat
		}

		roomExists, existErr := s.roomRepo.Exist(ctx, shared.FilterByID(*req.RoomID, roomModel.FieldID, roomModel.TableName))
		if existErr != nil {
			log.Error().Err(existErr).Msg("failed to check if room exists")

			return res, fmt.Errorf("failed to check if room exists: %w", existErr)
		}

		if !roomExists {
			return res, failure.NotFound("Room not found") // nolint:wrapcheck
		}
	}

	updatedFields := shared.TransformFields(req)

	// Date ordering is validated against the merged record, so changing one
	// date is checked against the stored value of the other.
	checkIn := existing.CheckIn
	checkOut := existing.CheckOut

	if req.CheckIn != nil {
		checkIn, err = time.Parse(constant.BookingDateFormat, *req.CheckIn)
		if err != nil {
			return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
		}

		updatedFields[model.FieldCheckIn] = checkIn
	}

	if req.CheckOut != nil {
		checkOut, err = time.Parse(constant.BookingDateFormat, *req.CheckOut)
		if err != nil {
			return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
		}

		updatedFields[model.FieldCheckOut] = checkOut
	}

	if !checkOut.After(checkIn) {
		return res, failure.BadRequestFromString("Check-out date must be after check-in date") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return res, err
	}

	updated, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to reload booking")

		return res, fmt.Errorf("failed to reload booking: %w", err)
	}

	res.FromModel(updated)
	s.publish(ctx, eventBookingUpdated, res)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	if uuid.Validate(id) != nil {
		return res, failure.InvalidIDFormat
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("Booking not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return res, fmt.Errorf("failed to delete booking: %w", err)
	}

	res.FromModel(booking)
	s.publish(ctx, eventBookingDeleted, res)

	return res, nil
}

// publish emits a booking event in the background. Delivery is best-effort;
// failures are logged and never surface to the caller.
func (s *serviceImpl) publish(ctx context.Context, event string, booking dto.BookingResponse) {
	if !s.cfg.Kafka.Enable {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key:   booking.ID,
			Value: bookingEvent{Event: event, Booking: booking},
		}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topic, message); err != nil {
			log.Error().Err(err).Str("event", event).Msg("failed to publish booking event")
		}
	}()
}
