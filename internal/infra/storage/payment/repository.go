package payment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/altosdelparque/ADP-BookingService/internal/domain"
	"github.com/altosdelparque/ADP-BookingService/pkg/psqlbuilder"
	"github.com/altosdelparque/ADP-BookingService/pkg/txmanager"
)

// Repository persists payments. Status writes go exclusively through the
// payment transition use case.
type Repository struct {
	db txmanager.Executor
}

// NewRepository creates a payment repository over the given executor.
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// GetByID fetches a payment by id. Inside a transaction the row is locked
// (FOR UPDATE) so two concurrent transitions on the same payment serialize
// instead of losing an update.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	builder := psqlbuilder.Select(
		"id",
		"owner_id",
		"status_id",
		"method",
		"reference_number",
		"payment_date",
		"created_at",
		"updated_at",
	).
		From("payments").
		Where(squirrel.Eq{"id": id})

	if txmanager.InTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Payment
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.OwnerID,
		&p.StatusID,
		&p.Method,
		&p.ReferenceNumber,
		&p.Date,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan payment: %v", ErrScanRow, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

// UpdateStatus writes a new status id. The caller has already validated
// the transition against the domain table inside the same transaction.
func (r *Repository) UpdateStatus(ctx context.Context, id, statusID int64) error {
	executor := txmanager.ExecutorFromContext(ctx, r.db)

	query, args, err := psqlbuilder.Update("payments").
		Set("status_id", statusID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrPaymentNotFound
	}

	return nil
}
