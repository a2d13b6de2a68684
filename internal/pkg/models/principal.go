package models

import "github.com/google/uuid"

// User roles
const (
	RoleAdmin     = "admin"
	RoleOrganizer = "organizer"
	RoleGuardian  = "guardian"
	RoleVendor    = "vendor"
)

// Principal is a resolved identity with role and trip-scoped claims,
// used for authorization decisions. Resolved once per operation and
// passed explicitly, never re-derived from a request object.
type Principal struct {
	UserID           uuid.UUID `json:"user_id"`
	Role             string    `json:"role"`
	OrganizedTripIDs []string  `json:"organized_trip_ids"`
	GuardianTripIDs  []string  `json:"guardian_trip_ids"`
}

// Organizes reports whether the principal organizes the given trip.
func (p *Principal) Organizes(tripID string) bool {
	for _, id := range p.OrganizedTripIDs {
		if id == tripID {
			return true
		}
	}
	return false
}

// GuardianOf reports whether the principal is guardian of an enrolled
// participant on the given trip.
func (p *Principal) GuardianOf(tripID string) bool {
	for _, id := range p.GuardianTripIDs {
		if id == tripID {
			return true
		}
	}
	return false
}
