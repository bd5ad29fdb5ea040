package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altosdelparque/ADP-BookingService/internal/domain"
	reservationRepo "github.com/altosdelparque/ADP-BookingService/internal/infra/storage/reservation"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeReservationRepo struct {
	reservation *domain.Reservation
	getErr      error
	byOwner     []*domain.Reservation
	cancelled   bool
	deleted     bool
}

func (f *fakeReservationRepo) GetByID(_ context.Context, _ int64) (*domain.Reservation, error) {
	return f.reservation, f.getErr
}

func (f *fakeReservationRepo) ListByOwner(_ context.Context, _ domain.OwnerReservationsFilter) ([]*domain.Reservation, error) {
	return f.byOwner, nil
}

func (f *fakeReservationRepo) ListActiveByResource(_ context.Context, _ int64, _, _ time.Time) ([]*domain.Reservation, error) {
	return nil, nil
}

func (f *fakeReservationRepo) Cancel(_ context.Context, _ int64, _ string) error {
	f.cancelled = true
	return nil
}

func (f *fakeReservationRepo) Delete(_ context.Context, _ int64) error {
	f.deleted = true
	return nil
}

type fakeResourceRegistry struct {
	statusSet *domain.ResourceStatus
	released  bool
}

func (f *fakeResourceRegistry) SetStatus(_ context.Context, _ int64, status domain.ResourceStatus) error {
	f.statusSet = &status
	return nil
}

func (f *fakeResourceRegistry) ReleaseParkingSpot(_ context.Context, _ int64) error {
	f.released = true
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var (
	admin    = domain.Identity{UserID: 1, Role: domain.RoleAdmin}
	resident = domain.Identity{UserID: 42, Role: domain.RoleResident, OwnerID: 7}
	stranger = domain.Identity{UserID: 99, Role: domain.RoleResident, OwnerID: 8}
)

func facilityReservation() *domain.Reservation {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	return &domain.Reservation{
		ID:           55,
		ResourceID:   3,
		ResourceKind: domain.KindFacility,
		Type:         domain.TypeGym,
		Status:       domain.StatusConfirmed,
		OwnerID:      7,
		StartTime:    start,
		EndTime:      start.Add(2 * time.Hour),
	}
}

func parkingReservation() *domain.Reservation {
	res := facilityReservation()
	res.ResourceKind = domain.KindParking
	res.Type = domain.TypeParking
	return res
}

func newTestService(reservations *fakeReservationRepo, resources *fakeResourceRegistry) *Service {
	return NewService(reservations, resources, fakeTxManager{}, nopLogger{})
}

func TestGetByID_OwnershipGuard(t *testing.T) {
	svc := newTestService(&fakeReservationRepo{reservation: facilityReservation()}, &fakeResourceRegistry{})

	res, err := svc.GetByID(context.Background(), 55, resident)
	require.NoError(t, err)
	assert.Equal(t, int64(55), res.ID)

	_, err = svc.GetByID(context.Background(), 55, admin)
	assert.NoError(t, err, "admins see everything")

	_, err = svc.GetByID(context.Background(), 55, stranger)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newTestService(&fakeReservationRepo{getErr: reservationRepo.ErrReservationNotFound}, &fakeResourceRegistry{})

	_, err := svc.GetByID(context.Background(), 55, admin)

	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestGetOwnerReservations_OwnershipGuard(t *testing.T) {
	repo := &fakeReservationRepo{byOwner: []*domain.Reservation{facilityReservation()}}
	svc := newTestService(repo, &fakeResourceRegistry{})

	list, err := svc.GetOwnerReservations(context.Background(), domain.OwnerReservationsFilter{OwnerID: 7}, resident)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.GetOwnerReservations(context.Background(), domain.OwnerReservationsFilter{OwnerID: 7}, stranger)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_FacilityRecomputesProjection(t *testing.T) {
	repo := &fakeReservationRepo{reservation: facilityReservation()}
	resources := &fakeResourceRegistry{}
	svc := newTestService(repo, resources)

	err := svc.Cancel(context.Background(), 55, "plans changed", resident)

	require.NoError(t, err)
	assert.True(t, repo.cancelled)
	assert.False(t, resources.released)
	require.NotNil(t, resources.statusSet)
	assert.Equal(t, domain.ResourceAvailable, *resources.statusSet)
}

func TestCancel_ParkingReleasesSpot(t *testing.T) {
	repo := &fakeReservationRepo{reservation: parkingReservation()}
	resources := &fakeResourceRegistry{}
	svc := newTestService(repo, resources)

	err := svc.Cancel(context.Background(), 55, "moving out", resident)

	require.NoError(t, err)
	assert.True(t, repo.cancelled)
	assert.True(t, resources.released, "cancelling a parking assignment frees the spot")
}

func TestCancel_AlreadyTerminal(t *testing.T) {
	res := facilityReservation()
	res.Status = domain.StatusCancelled
	svc := newTestService(&fakeReservationRepo{reservation: res}, &fakeResourceRegistry{})

	err := svc.Cancel(context.Background(), 55, "", resident)

	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_AccessDenied(t *testing.T) {
	repo := &fakeReservationRepo{reservation: facilityReservation()}
	svc := newTestService(repo, &fakeResourceRegistry{})

	err := svc.Cancel(context.Background(), 55, "", stranger)

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.False(t, repo.cancelled)
}

func TestDelete_AdminOnly(t *testing.T) {
	repo := &fakeReservationRepo{reservation: facilityReservation()}
	svc := newTestService(repo, &fakeResourceRegistry{})

	err := svc.Delete(context.Background(), 55, resident)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.False(t, repo.deleted)

	err = svc.Delete(context.Background(), 55, admin)
	require.NoError(t, err)
	assert.True(t, repo.deleted)
}
