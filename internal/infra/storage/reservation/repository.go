package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/altosdelparque/ADP-BookingService/internal/domain"
	"github.com/altosdelparque/ADP-BookingService/pkg/psqlbuilder"
	"github.com/altosdelparque/ADP-BookingService/pkg/txmanager"
)

const reservationColumns = "id, resource_id, resource_kind, type, status, owner_id, " +
	"start_time, end_time, description, vehicle_type_id, assigned_user_id, " +
	"cancellation_reason, cancelled_at, created_at, updated_at"

// Repository persists reservations.
type Repository struct {
	db txmanager.Executor
}

// NewRepository creates a reservation repository over the given executor.
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// Create inserts a reservation row. Runs on the transaction carried by the
// context when there is one; the create and parking-claim paths always call
// it inside one.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"resource_id",
			"resource_kind",
			"type",
			"status",
			"owner_id",
			"start_time",
			"end_time",
			"description",
			"vehicle_type_id",
			"assigned_user_id",
		).
		Values(
			res.ResourceID,
			res.ResourceKind,
			res.Type,
			res.Status,
			res.OwnerID,
			res.StartTime,
			res.EndTime,
			res.Description,
			res.VehicleTypeID,
			res.AssignedUserID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID fetches a reservation by id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	builder := r.selectReservations().Where(squirrel.Eq{"id": id})

	// Lock the row when a surrounding transaction is about to mutate it.
	if txmanager.InTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := r.scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// CountOverlapping counts active reservations on the resource whose
// half-open [start_time, end_time) window intersects [start, end).
// Cancelled and no-show rows never occupy the window. excludeID, when
// non-nil, removes the reservation being updated from the scan so it
// cannot conflict with itself.
//
// Inside a transaction the matching rows are locked (FOR UPDATE) so a
// concurrent creator serializes behind us instead of double-booking.
func (r *Repository) CountOverlapping(ctx context.Context, resourceID int64, start, end time.Time, excludeID *int64) (int, error) {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	inactive := make([]string, len(domain.InactiveStatuses))
	for i, s := range domain.InactiveStatuses {
		inactive[i] = string(s)
	}

	builder := psqlbuilder.Select("id").
		From("reservations").
		Where(squirrel.Eq{"resource_id": resourceID}).
		Where(squirrel.NotEq{"status": inactive}).
		// Half-open overlap: existing.start < end AND existing.end > start.
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start})

	if excludeID != nil {
		builder = builder.Where(squirrel.NotEq{"id": *excludeID})
	}

	if txmanager.InTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CountOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return 0, fmt.Errorf("%w: CountOverlapping - scan id: %v", ErrScanRow, err)
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("%w: CountOverlapping - rows error: %v", ErrScanRow, err)
	}

	return count, nil
}

// Update applies a partial update and returns the number of affected rows.
// Only non-nil patch fields are written.
func (r *Repository) Update(ctx context.Context, id int64, patch domain.ReservationPatch) (int64, error) {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	builder := psqlbuilder.Update("reservations").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if patch.ResourceID != nil {
		builder = builder.Set("resource_id", *patch.ResourceID)
	}
	if patch.Type != nil {
		builder = builder.Set("type", *patch.Type)
	}
	if patch.Status != nil {
		builder = builder.Set("status", *patch.Status)
	}
	if patch.StartTime != nil {
		builder = builder.Set("start_time", *patch.StartTime)
	}
	if patch.EndTime != nil {
		builder = builder.Set("end_time", *patch.EndTime)
	}
	if patch.Description != nil {
		builder = builder.Set("description", *patch.Description)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	return affected, nil
}

// ListByOwner returns an owner's reservations, newest first.
func (r *Repository) ListByOwner(ctx context.Context, filter domain.OwnerReservationsFilter) ([]*domain.Reservation, error) {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	builder := r.selectReservations().
		Where(squirrel.Eq{"owner_id": filter.OwnerID}).
		OrderBy("start_time DESC")

	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactive := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactive[i] = string(s)
		}
		builder = builder.Where(squirrel.NotEq{"status": inactive})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByOwner - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByOwner - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// ListActiveByResource returns the active reservations of a resource that
// intersect the [from, to) window, ordered by start time. Used to derive
// real availability for registry reads.
func (r *Repository) ListActiveByResource(ctx context.Context, resourceID int64, from, to time.Time) ([]*domain.Reservation, error) {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	inactive := make([]string, len(domain.InactiveStatuses))
	for i, s := range domain.InactiveStatuses {
		inactive[i] = string(s)
	}

	query, args, err := r.selectReservations().
		Where(squirrel.Eq{"resource_id": resourceID}).
		Where(squirrel.NotEq{"status": inactive}).
		Where(squirrel.Lt{"start_time": to}).
		Where(squirrel.Gt{"end_time": from}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByResource - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByResource - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// Cancel marks a reservation cancelled with a reason.
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// Delete removes a reservation row. Admin-only path; Cancel is the normal
// way out of a reservation.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

func (r *Repository) selectReservations() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"resource_id",
		"resource_kind",
		"type",
		"status",
		"owner_id",
		"start_time",
		"end_time",
		"description",
		"vehicle_type_id",
		"assigned_user_id",
		"cancellation_reason",
		"cancelled_at",
		"created_at",
		"updated_at",
	).From("reservations")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.ResourceID,
		&res.ResourceKind,
		&res.Type,
		&res.Status,
		&res.OwnerID,
		&res.StartTime,
		&res.EndTime,
		&res.Description,
		&res.VehicleTypeID,
		&res.AssignedUserID,
		&res.CancellationReason,
		&res.CancelledAt,
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

func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := r.scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
