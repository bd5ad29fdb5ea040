package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityMayActOn(t *testing.T) {
	admin := Identity{UserID: 1, Role: RoleAdmin}
	resident := Identity{UserID: 42, Role: RoleResident, OwnerID: 7}

	assert.True(t, admin.MayActOn(7))
	assert.True(t, admin.MayActOn(999))

	assert.True(t, resident.MayActOn(7))
	assert.False(t, resident.MayActOn(8))
	// A stored owner id never equals the caller's account id space.
	assert.False(t, resident.MayActOn(42))
}

func TestIdentityMayRequestFor(t *testing.T) {
	admin := Identity{UserID: 1, Role: RoleAdmin}
	resident := Identity{UserID: 42, Role: RoleResident, OwnerID: 7}

	assert.True(t, admin.MayRequestFor(999))

	// Request-supplied ids may live in either id space.
	assert.True(t, resident.MayRequestFor(7))
	assert.True(t, resident.MayRequestFor(42))
	assert.False(t, resident.MayRequestFor(8))
}

func TestIdentityIsAdmin(t *testing.T) {
	assert.True(t, Identity{Role: RoleAdmin}.IsAdmin())
	assert.False(t, Identity{Role: RoleResident}.IsAdmin())
	assert.False(t, Identity{}.IsAdmin())
}
