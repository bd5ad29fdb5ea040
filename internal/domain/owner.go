package domain

import "time"

// Caller roles resolved by the identity collaborator.
const (
	RoleAdmin    = "admin"
	RoleResident = "resident"
)

// Owner links a user account to the bookable-resource permissions of a
// housing unit. Reservations and payments reference owners, never user
// accounts directly.
type Owner struct {
	ID     int64
	UserID int64 // underlying account id
	Unit   string
	Name   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Identity is the resolved caller supplied by the auth collaborator.
// The booking core trusts it; enforcement of who may act on which owner
// happens in the API layer before any use case call.
type Identity struct {
	UserID  int64
	Role    string
	OwnerID int64 // 0 when the caller has no owner record (e.g. staff)
}

// IsAdmin returns true for administrative callers.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// MayActOn reports whether the caller may act on the given owner's data.
// ownerID here is a stored owner-table id.
func (i Identity) MayActOn(ownerID int64) bool {
	return i.IsAdmin() || i.OwnerID == ownerID
}

// MayRequestFor is the guard for request-supplied identifiers, which may
// live in either id space (owner id or account id). Admins pass always;
// residents pass when the id matches their owner id or their account id.
func (i Identity) MayRequestFor(id int64) bool {
	return i.IsAdmin() || i.OwnerID == id || i.UserID == id
}
