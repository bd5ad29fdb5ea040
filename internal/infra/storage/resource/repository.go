package resource

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/altosdelparque/ADP-BookingService/internal/domain"
	"github.com/altosdelparque/ADP-BookingService/pkg/psqlbuilder"
	"github.com/altosdelparque/ADP-BookingService/pkg/txmanager"
)

// Repository is the resource registry: a thin, transactionally-scoped
// accessor over the resources table. Status writes happen only from
// booking use cases that already hold a transaction; the column is a
// projection of the bookings, not an independent source of truth.
type Repository struct {
	db txmanager.Executor
}

// NewRepository creates a resource repository over the given executor.
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// GetByID fetches a resource by id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Resource, error) {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	builder := r.selectResources().Where(squirrel.Eq{"id": id})

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := r.scanResource(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrResourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan resource: %v", ErrScanRow, err)
	}

	return res, nil
}

// List returns all resources, optionally filtered by kind.
func (r *Repository) List(ctx context.Context, kind *domain.ResourceKind) ([]*domain.Resource, error) {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	builder := r.selectResources().OrderBy("id ASC")
	if kind != nil {
		builder = builder.Where(squirrel.Eq{"kind": *kind})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	resources := make([]*domain.Resource, 0)
	for rows.Next() {
		res, err := r.scanResource(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		resources = append(resources, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return resources, nil
}

// SetStatus writes the status projection unconditionally. Callable only
// from a booking use case that owns the surrounding transaction.
func (r *Repository) SetStatus(ctx context.Context, id int64, status domain.ResourceStatus) error {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	query, args, err := psqlbuilder.Update("resources").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrResourceNotFound
	}

	return nil
}

// ClaimParkingSpot flips an AVAILABLE spot to RESERVED and records the
// assignment, guarded by the current status:
//
//	UPDATE resources SET status = 'RESERVED', ... WHERE id = $1 AND status = 'AVAILABLE'
//
// Zero affected rows means a concurrent claimer won the race after our
// initial read; the caller rolls back and reports the conflict. This
// conditional write is the concurrency-safety mechanism for spots — no
// explicit row lock is taken.
func (r *Repository) ClaimParkingSpot(ctx context.Context, id, userID, vehicleTypeID int64) error {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	query, args, err := psqlbuilder.Update("resources").
		Set("status", domain.ResourceReserved).
		Set("assigned_user_id", userID).
		Set("vehicle_type_id", vehicleTypeID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": domain.ResourceAvailable}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ClaimParkingSpot - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ClaimParkingSpot - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ClaimParkingSpot - get rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrClaimLost
	}

	return nil
}

// ReleaseParkingSpot clears the assignment and returns the spot to
// AVAILABLE. Used when a parking reservation is cancelled.
func (r *Repository) ReleaseParkingSpot(ctx context.Context, id int64) error {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	query, args, err := psqlbuilder.Update("resources").
		Set("status", domain.ResourceAvailable).
		Set("assigned_user_id", nil).
		Set("vehicle_type_id", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.NotEq{"status": domain.ResourceMaintenance}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReleaseParkingSpot - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ReleaseParkingSpot - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ReleaseParkingSpot - get rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrResourceNotFound
	}

	return nil
}

func (r *Repository) selectResources() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"name",
		"kind",
		"status",
		"capacity",
		"assigned_user_id",
		"vehicle_type_id",
		"created_at",
		"updated_at",
	).From("resources")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanResource(row rowScanner) (*domain.Resource, error) {
	var res domain.Resource
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.Name,
		&res.Kind,
		&res.Status,
		&res.Capacity,
		&res.AssignedUserID,
		&res.VehicleTypeID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}
