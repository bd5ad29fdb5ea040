package update_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altosdelparque/ADP-BookingService/internal/domain"
	reservationRepo "github.com/altosdelparque/ADP-BookingService/internal/infra/storage/reservation"
	"github.com/altosdelparque/ADP-BookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeReservationRepo struct {
	current      *domain.Reservation
	getErr       error
	overlapCount int
	excludedID   *int64
	updated      *domain.ReservationPatch
	affected     int64
}

func (f *fakeReservationRepo) GetByID(_ context.Context, _ int64) (*domain.Reservation, error) {
	return f.current, f.getErr
}

func (f *fakeReservationRepo) Update(_ context.Context, _ int64, patch domain.ReservationPatch) (int64, error) {
	f.updated = &patch
	return f.affected, nil
}

func (f *fakeReservationRepo) CountOverlapping(_ context.Context, _ int64, _, _ time.Time, excludeID *int64) (int, error) {
	f.excludedID = excludeID
	return f.overlapCount, nil
}

func (f *fakeReservationRepo) ListActiveByResource(_ context.Context, _ int64, _, _ time.Time) ([]*domain.Reservation, error) {
	return nil, nil
}

type fakeResourceRegistry struct {
	resource   *domain.Resource
	statusSets []int64
	released   []int64
}

func (f *fakeResourceRegistry) GetByID(_ context.Context, _ int64) (*domain.Resource, error) {
	return f.resource, nil
}

func (f *fakeResourceRegistry) SetStatus(_ context.Context, id int64, _ domain.ResourceStatus) error {
	f.statusSets = append(f.statusSets, id)
	return nil
}

func (f *fakeResourceRegistry) ReleaseParkingSpot(_ context.Context, id int64) error {
	f.released = append(f.released, id)
	return nil
}

type fakeLookupRepo struct{}

func (fakeLookupRepo) ReservationTypeExists(_ context.Context, _ domain.ReservationType) (bool, error) {
	return true, nil
}

func (fakeLookupRepo) ReservationStatusExists(_ context.Context, _ domain.ReservationStatus) (bool, error) {
	return true, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func existingReservation() *domain.Reservation {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	return &domain.Reservation{
		ID:           55,
		ResourceID:   3,
		ResourceKind: domain.KindFacility,
		Type:         domain.TypeGym,
		Status:       domain.StatusPending,
		OwnerID:      7,
		StartTime:    start,
		EndTime:      start.Add(2 * time.Hour),
	}
}

func newTestUseCase(reservations *fakeReservationRepo, resources *fakeResourceRegistry) *UseCase {
	uc := NewUseCase(reservations, resources, fakeLookupRepo{}, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)}
	return uc
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func TestExecute_ScheduleMoveExcludesOwnRow(t *testing.T) {
	reservations := &fakeReservationRepo{current: existingReservation(), affected: 1}
	resources := &fakeResourceRegistry{
		resource: &domain.Resource{ID: 3, Kind: domain.KindFacility, Status: domain.ResourceAvailable},
	}
	uc := newTestUseCase(reservations, resources)

	newStart := time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{
		ID:    55,
		Patch: domain.ReservationPatch{StartTime: &newStart},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Affected)

	// The conflict scan must exclude the reservation's own row, or every
	// move inside its current window would self-conflict.
	require.NotNil(t, reservations.excludedID)
	assert.Equal(t, int64(55), *reservations.excludedID)
}

func TestExecute_EmptyPatch(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeResourceRegistry{})

	_, err := uc.Execute(context.Background(), &Request{ID: 55})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_NotFound(t *testing.T) {
	reservations := &fakeReservationRepo{getErr: reservationRepo.ErrReservationNotFound}
	uc := newTestUseCase(reservations, &fakeResourceRegistry{})

	desc := "x"
	_, err := uc.Execute(context.Background(), &Request{
		ID:    55,
		Patch: domain.ReservationPatch{Description: &desc},
	})

	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestExecute_MoveConflicts(t *testing.T) {
	reservations := &fakeReservationRepo{current: existingReservation(), overlapCount: 1}
	resources := &fakeResourceRegistry{
		resource: &domain.Resource{ID: 3, Kind: domain.KindFacility, Status: domain.ResourceAvailable},
	}
	uc := newTestUseCase(reservations, resources)

	newStart := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	newEnd := newStart.Add(time.Hour)
	_, err := uc.Execute(context.Background(), &Request{
		ID:    55,
		Patch: domain.ReservationPatch{StartTime: &newStart, EndTime: &newEnd},
	})

	assert.ErrorIs(t, err, ErrTimeConflict)
	assert.Nil(t, reservations.updated, "no write on conflict")
}

func TestExecute_CosmeticPatchSkipsConflictScan(t *testing.T) {
	reservations := &fakeReservationRepo{current: existingReservation(), affected: 1}
	resources := &fakeResourceRegistry{}
	uc := newTestUseCase(reservations, resources)

	desc := "bring own towels"
	resp, err := uc.Execute(context.Background(), &Request{
		ID:    55,
		Patch: domain.ReservationPatch{Description: &desc},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Affected)
	assert.Nil(t, reservations.excludedID, "no overlap scan for cosmetic changes")
}

func TestExecute_MoveToAnotherResourceRefreshesBoth(t *testing.T) {
	reservations := &fakeReservationRepo{current: existingReservation(), affected: 1}
	resources := &fakeResourceRegistry{
		resource: &domain.Resource{ID: 9, Kind: domain.KindFacility, Status: domain.ResourceAvailable},
	}
	uc := newTestUseCase(reservations, resources)

	resp, err := uc.Execute(context.Background(), &Request{
		ID:    55,
		Patch: domain.ReservationPatch{ResourceID: ptr.Ptr(int64(9))},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Affected)
	assert.Equal(t, []int64{3, 9}, resources.statusSets, "projection refreshed on old and new resource")
}

func TestExecute_CancellingParkingAssignmentReleasesSpot(t *testing.T) {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	parking := &domain.Reservation{
		ID:             56,
		ResourceID:     12,
		ResourceKind:   domain.KindParking,
		Type:           domain.TypeParking,
		Status:         domain.StatusConfirmed,
		OwnerID:        7,
		StartTime:      start,
		EndTime:        start.AddDate(0, 1, 0),
		AssignedUserID: ptr.Ptr(int64(42)),
		VehicleTypeID:  ptr.Ptr(int64(1)),
	}
	reservations := &fakeReservationRepo{current: parking, affected: 1}
	resources := &fakeResourceRegistry{}
	uc := newTestUseCase(reservations, resources)

	resp, err := uc.Execute(context.Background(), &Request{
		ID:    56,
		Patch: domain.ReservationPatch{Status: ptr.Ptr(domain.StatusCancelled)},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Affected)

	// The spot must be released in full, assignment fields included, not
	// merely re-projected to AVAILABLE.
	assert.Equal(t, []int64{12}, resources.released)
	assert.Empty(t, resources.statusSets)
}

func TestExecute_ConfirmingParkingAssignmentKeepsSpot(t *testing.T) {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	parking := &domain.Reservation{
		ID:           56,
		ResourceID:   12,
		ResourceKind: domain.KindParking,
		Type:         domain.TypeParking,
		Status:       domain.StatusPending,
		OwnerID:      7,
		StartTime:    start,
		EndTime:      start.AddDate(0, 1, 0),
	}
	reservations := &fakeReservationRepo{current: parking, affected: 1}
	resources := &fakeResourceRegistry{}
	uc := newTestUseCase(reservations, resources)

	_, err := uc.Execute(context.Background(), &Request{
		ID:    56,
		Patch: domain.ReservationPatch{Status: ptr.Ptr(domain.StatusConfirmed)},
	})

	require.NoError(t, err)
	assert.Empty(t, resources.released)
	assert.Equal(t, []int64{12}, resources.statusSets)
}

func TestExecute_InvalidEffectiveInterval(t *testing.T) {
	reservations := &fakeReservationRepo{current: existingReservation()}
	uc := newTestUseCase(reservations, &fakeResourceRegistry{})

	// New start falls after the kept end time.
	newStart := existingReservation().EndTime.Add(time.Hour)
	_, err := uc.Execute(context.Background(), &Request{
		ID:    55,
		Patch: domain.ReservationPatch{StartTime: &newStart},
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
