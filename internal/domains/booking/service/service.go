package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"booker/config"
	"booker/infras/otel"
	"booker/internal/domains/booking/model"
	"booker/internal/domains/booking/model/dto"
	"booker/internal/domains/booking/repository"
	roomModel "booker/internal/domains/room/model"
	roomRepository "booker/internal/domains/room/repository"
	"booker/shared"
	"booker/shared/constant"
	gDto "booker/shared/dto"
	"booker/shared/failure"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req dto.ListBookingsRequest) ([]dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Booking
	roomRepo roomRepository.Room
	cfg      *config.Config
	otel     otel.Otel
}

func New(repo repository.Booking, roomRepo roomRepository.Room, cfg *config.Config, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	// The range check runs before anything touches the database, so a bad
	// interval is rejected even when the room does not exist.
	if !req.EndDatetime.After(req.StartDatetime) {
		return res, failure.BadRequestFromString("end_datetime must be after start_datetime") // nolint:wrapcheck
	}

	roomExist, err := s.roomRepo.Exist(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return res, fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !roomExist {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	conflict, err := s.hasConflict(ctx, req.RoomID, req.StartDatetime, req.EndDatetime)
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking conflicts")

		return res, fmt.Errorf("failed to check booking conflicts: %w", err)
	}

	if conflict {
		return res, failure.BadRequestFromString("room is already booked for this time range") // nolint:wrapcheck
	}

	booking := req.ToModel()

	if err = s.repo.Insert(ctx, booking); err != nil {
		// The exclusion constraint wins over the conflict scan under concurrent creates.
		if errors.Is(err, repository.ErrOverlap) {
			return res, failure.BadRequestFromString("room is already booked for this time range") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	scope.AddEvent("Booking created: " + booking.ID)
	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req dto.ListBookingsRequest) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.repo.GetAll(ctx, req.ToFilterGroup())
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res = make([]dto.BookingResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(nil)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(nil)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		log.Error().Msg("booking not found")

		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	scope.AddEvent("Booking deleted: " + id)

	return nil
}

// hasConflict scans the room's bookings for one whose half-open interval
// intersects [start, end).
func (s *serviceImpl) hasConflict(ctx context.Context, roomID string, start, end time.Time) (bool, error) {
	bookings, err := s.repo.GetAll(ctx, filterByRoomID(roomID))
	if err != nil {
		return false, fmt.Errorf("failed to get bookings for room: %w", err)
	}

	for _, booking := range bookings {
		if booking.Overlaps(start, end) {
			return true, nil
		}
	}

	return false, nil
}

func filterByRoomID(roomID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomID,
				Value:    roomID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}
