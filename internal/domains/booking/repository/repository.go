package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"booker/infras/otel"
	"booker/infras/postgres"
	"booker/internal/domains/booking/model"
	"booker/shared/constant"
	gDto "booker/shared/dto"
	gRepo "booker/shared/repository"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// ErrOverlap reports that the bookings exclusion constraint rejected an insert
// because another booking for the same room occupies part of the interval.
var ErrOverlap = errors.New("booking overlaps an existing booking")

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Insert persists the booking inside an explicit transaction, committed only
// when the exclusion constraint accepts the interval.
func (r *repositoryImpl) Insert(ctx context.Context, booking model.Booking) error {
	tx, err := r.db.Write.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := r.Repository.InsertTx(ctx, tx, booking); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			log.Error().Err(rollbackErr).Msg("failed to rollback transaction")
		}

		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeExclusionViolation {
			return ErrOverlap
		}

		return err //nolint:wrapcheck
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
