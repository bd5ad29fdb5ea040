// Package lookup validates foreign keys against the static enumeration
// tables (reservation types and statuses, vehicle types, payment
// statuses). Unknown ids are reported as plain false, never as errors:
// the use cases turn them into validation failures.
package lookup

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/altosdelparque/ADP-BookingService/internal/domain"
	"github.com/altosdelparque/ADP-BookingService/pkg/psqlbuilder"
	"github.com/altosdelparque/ADP-BookingService/pkg/txmanager"
)

// Repository reads the lookup tables.
type Repository struct {
	db txmanager.Executor
}

// NewRepository creates a lookup repository over the given executor.
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// ReservationTypeExists reports whether the type code is a known row.
func (r *Repository) ReservationTypeExists(ctx context.Context, t domain.ReservationType) (bool, error) {
	return r.exists(ctx, "reservation_types", squirrel.Eq{"code": t})
}

// ReservationStatusExists reports whether the status code is a known row.
func (r *Repository) ReservationStatusExists(ctx context.Context, s domain.ReservationStatus) (bool, error) {
	return r.exists(ctx, "reservation_statuses", squirrel.Eq{"code": s})
}

// VehicleTypeExists reports whether the vehicle type id is a known row.
func (r *Repository) VehicleTypeExists(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, "vehicle_types", squirrel.Eq{"id": id})
}

// PaymentStatusExists reports whether the payment status id is a known row.
func (r *Repository) PaymentStatusExists(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, "payment_statuses", squirrel.Eq{"id": id})
}

func (r *Repository) exists(ctx context.Context, table string, pred squirrel.Eq) (bool, error) {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From(table).
		Where(pred).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: exists(%s) - build select query: %v", ErrBuildQuery, table, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: exists(%s) - execute query: %v", ErrExecQuery, table, err)
	}
	defer rows.Close()

	found := rows.Next()
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("%w: exists(%s) - rows error: %v", ErrExecQuery, table, err)
	}

	return found, nil
}
