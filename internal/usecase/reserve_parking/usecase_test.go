package reserve_parking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altosdelparque/ADP-BookingService/internal/domain"
	resourceRepo "github.com/altosdelparque/ADP-BookingService/internal/infra/storage/resource"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeReservationRepo struct {
	created *domain.Reservation
}

func (f *fakeReservationRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	created := *res
	created.ID = 202
	f.created = &created
	return &created, nil
}

type fakeResourceRegistry struct {
	spot     *domain.Resource
	getErr   error
	claimErr error
	claimed  bool
}

func (f *fakeResourceRegistry) GetByID(_ context.Context, _ int64) (*domain.Resource, error) {
	return f.spot, f.getErr
}

func (f *fakeResourceRegistry) ClaimParkingSpot(_ context.Context, _, _, _ int64) error {
	if f.claimErr != nil {
		return f.claimErr
	}
	f.claimed = true
	return nil
}

type fakeOwnerRepo struct {
	owner *domain.Owner
	err   error
}

func (f *fakeOwnerRepo) Resolve(_ context.Context, _ int64) (*domain.Owner, error) {
	return f.owner, f.err
}

type fakeLookupRepo struct{ vehicleTypeOK bool }

func (f fakeLookupRepo) VehicleTypeExists(_ context.Context, _ int64) (bool, error) {
	return f.vehicleTypeOK, nil
}

type fakeTxManager struct{ rolledBack bool }

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		f.rolledBack = true
		return err
	}
	return nil
}

func validRequest() *Request {
	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	return &Request{
		ParkingID:     5,
		UserID:        42,
		VehicleTypeID: 1,
		StartTime:     start,
		EndTime:       start.AddDate(0, 0, 2),
	}
}

func availableSpot() *domain.Resource {
	return &domain.Resource{ID: 5, Kind: domain.KindParking, Status: domain.ResourceAvailable}
}

func TestExecute_Success(t *testing.T) {
	reservations := &fakeReservationRepo{}
	resources := &fakeResourceRegistry{spot: availableSpot()}
	owners := &fakeOwnerRepo{owner: &domain.Owner{ID: 7, UserID: 42}}
	tx := &fakeTxManager{}

	uc := NewUseCase(reservations, resources, owners, fakeLookupRepo{vehicleTypeOK: true}, tx, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(202), resp.ReservationID)
	assert.Equal(t, 2, resp.DurationDays)
	assert.True(t, resources.claimed)

	require.NotNil(t, reservations.created)
	assert.Equal(t, domain.TypeParking, reservations.created.Type)
	assert.Equal(t, domain.StatusConfirmed, reservations.created.Status)
	assert.Equal(t, int64(7), reservations.created.OwnerID)
	require.NotNil(t, reservations.created.AssignedUserID)
	assert.Equal(t, int64(42), *reservations.created.AssignedUserID)
}

func TestExecute_DurationRoundsUp(t *testing.T) {
	reservations := &fakeReservationRepo{}
	resources := &fakeResourceRegistry{spot: availableSpot()}
	owners := &fakeOwnerRepo{owner: &domain.Owner{ID: 7, UserID: 42}}

	uc := NewUseCase(reservations, resources, owners, fakeLookupRepo{vehicleTypeOK: true}, &fakeTxManager{}, nopLogger{})

	req := validRequest()
	req.EndTime = req.StartTime.Add(25 * time.Hour)

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 2, resp.DurationDays)
}

func TestExecute_SpotNotAvailable(t *testing.T) {
	resources := &fakeResourceRegistry{
		spot: &domain.Resource{ID: 5, Kind: domain.KindParking, Status: domain.ResourceOccupied},
	}
	owners := &fakeOwnerRepo{owner: &domain.Owner{ID: 7, UserID: 42}}
	reservations := &fakeReservationRepo{}

	uc := NewUseCase(reservations, resources, owners, fakeLookupRepo{vehicleTypeOK: true}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSpotNotAvailable)
	assert.Nil(t, reservations.created)
}

func TestExecute_ClaimRaceLostRollsBack(t *testing.T) {
	reservations := &fakeReservationRepo{}
	resources := &fakeResourceRegistry{spot: availableSpot(), claimErr: resourceRepo.ErrClaimLost}
	owners := &fakeOwnerRepo{owner: &domain.Owner{ID: 7, UserID: 42}}
	tx := &fakeTxManager{}

	uc := NewUseCase(reservations, resources, owners, fakeLookupRepo{vehicleTypeOK: true}, tx, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSpotClaimLost)
	assert.True(t, tx.rolledBack, "losing the claim race aborts the transaction")
	assert.Nil(t, reservations.created, "no booking row survives a lost race")
}

func TestExecute_NotAParkingSpot(t *testing.T) {
	resources := &fakeResourceRegistry{
		spot: &domain.Resource{ID: 5, Kind: domain.KindFacility, Status: domain.ResourceAvailable},
	}
	owners := &fakeOwnerRepo{owner: &domain.Owner{ID: 7, UserID: 42}}

	uc := NewUseCase(&fakeReservationRepo{}, resources, owners, fakeLookupRepo{vehicleTypeOK: true}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrNotAParkingSpot)
}

func TestExecute_UnknownVehicleType(t *testing.T) {
	owners := &fakeOwnerRepo{owner: &domain.Owner{ID: 7, UserID: 42}}

	uc := NewUseCase(&fakeReservationRepo{}, &fakeResourceRegistry{spot: availableSpot()}, owners, fakeLookupRepo{}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrUnknownVehicleType)
}

func TestExecute_ZeroDurationRejected(t *testing.T) {
	uc := NewUseCase(&fakeReservationRepo{}, &fakeResourceRegistry{}, &fakeOwnerRepo{}, fakeLookupRepo{}, &fakeTxManager{}, nopLogger{})

	req := validRequest()
	req.EndTime = req.StartTime

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}
