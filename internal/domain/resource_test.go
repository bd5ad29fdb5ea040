package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAcceptsBookings(t *testing.T) {
	assert.True(t, (&Resource{Status: ResourceAvailable}).AcceptsBookings())
	assert.True(t, (&Resource{Status: ResourceOccupied}).AcceptsBookings())
	assert.True(t, (&Resource{Status: ResourceReserved}).AcceptsBookings())
	assert.False(t, (&Resource{Status: ResourceMaintenance}).AcceptsBookings())
}

func TestProjectResourceStatus(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	horizon := now.AddDate(1, 0, 0)

	covering := &Reservation{
		Status:    StatusConfirmed,
		StartTime: now.Add(-time.Hour),
		EndTime:   now.Add(time.Hour),
	}
	upcoming := &Reservation{
		Status:    StatusConfirmed,
		StartTime: now.Add(2 * time.Hour),
		EndTime:   now.Add(3 * time.Hour),
	}
	past := &Reservation{
		Status:    StatusCompleted,
		StartTime: now.Add(-3 * time.Hour),
		EndTime:   now.Add(-2 * time.Hour),
	}
	cancelledCovering := &Reservation{
		Status:    StatusCancelled,
		StartTime: now.Add(-time.Hour),
		EndTime:   now.Add(time.Hour),
	}

	tests := []struct {
		name         string
		reservations []*Reservation
		expected     ResourceStatus
	}{
		{"no reservations", nil, ResourceAvailable},
		{"covering window wins", []*Reservation{upcoming, covering}, ResourceOccupied},
		{"upcoming only", []*Reservation{upcoming}, ResourceReserved},
		{"past only", []*Reservation{past}, ResourceAvailable},
		{"cancelled covering window ignored", []*Reservation{cancelledCovering}, ResourceAvailable},
		{"window ending exactly now is over", []*Reservation{{
			Status:    StatusConfirmed,
			StartTime: now.Add(-time.Hour),
			EndTime:   now,
		}}, ResourceAvailable},
		{"window starting exactly now counts as occupied", []*Reservation{{
			Status:    StatusConfirmed,
			StartTime: now,
			EndTime:   now.Add(time.Hour),
		}}, ResourceOccupied},
		{"window beyond the horizon ignored", []*Reservation{{
			Status:    StatusConfirmed,
			StartTime: horizon.Add(time.Hour),
			EndTime:   horizon.Add(2 * time.Hour),
		}}, ResourceAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ProjectResourceStatus(tt.reservations, now, horizon))
		})
	}
}
