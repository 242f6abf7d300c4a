package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"booker/infras/otel"
	"booker/infras/postgres"
	"booker/internal/domains/room/model"
	"booker/shared/constant"
	gDto "booker/shared/dto"
	gRepo "booker/shared/repository"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// ErrDuplicateName reports that the rooms.name unique constraint rejected an insert.
var ErrDuplicateName = errors.New("room name already exists")

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, room model.Room) error {
	err := r.Repository.Insert(ctx, room)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
		return ErrDuplicateName
	}

	return err
}

// Delete removes the room inside an explicit transaction; the cascading
// booking deletes ride the same transaction as the room row.
func (r *repositoryImpl) Delete(ctx context.Context, filter gDto.FilterGroup) error {
	tx, err := r.db.Write.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := r.Repository.DeleteTx(ctx, tx, filter); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			log.Error().Err(rollbackErr).Msg("failed to rollback transaction")
		}

		return err //nolint:wrapcheck
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
