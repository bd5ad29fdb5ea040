package owner

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/altosdelparque/ADP-BookingService/internal/domain"
	"github.com/altosdelparque/ADP-BookingService/pkg/psqlbuilder"
	"github.com/altosdelparque/ADP-BookingService/pkg/txmanager"
)

// Repository reads owner records.
type Repository struct {
	db txmanager.Executor
}

// NewRepository creates an owner repository over the given executor.
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// GetByID fetches an owner by its owner-table id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Owner, error) {
	return r.getWhere(ctx, squirrel.Eq{"id": id})
}

// GetByUserID fetches an owner by the underlying account id.
func (r *Repository) GetByUserID(ctx context.Context, userID int64) (*domain.Owner, error) {
	return r.getWhere(ctx, squirrel.Eq{"user_id": userID})
}

// Resolve accepts either an owner id or an account id. It tries the owner
// table first and falls back to the account id transparently; callers live
// in two id spaces and the API cannot tell them apart.
func (r *Repository) Resolve(ctx context.Context, id int64) (*domain.Owner, error) {
	o, err := r.GetByID(ctx, id)
	if err == nil {
		return o, nil
	}
	if !errors.Is(err, ErrOwnerNotFound) {
		return nil, err
	}
	return r.GetByUserID(ctx, id)
}

func (r *Repository) getWhere(ctx context.Context, pred squirrel.Eq) (*domain.Owner, error) {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"unit",
		"name",
		"created_at",
		"updated_at",
	).
		From("owners").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getWhere - build select query: %v", ErrBuildQuery, err)
	}

	var o domain.Owner
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&o.ID,
		&o.UserID,
		&o.Unit,
		&o.Name,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrOwnerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getWhere - scan owner: %v", ErrScanRow, err)
	}

	o.CreatedAt = createdAt.Time
	o.UpdatedAt = updatedAt.Time

	return &o, nil
}
