package access

import (
	"context"

	"github.com/google/uuid"

	"github.com/safetrip/tripwatch/internal/pkg/logger"
	"github.com/safetrip/tripwatch/internal/pkg/models"
)

// Resolver decides whether a principal may observe or publish for a
// given trip. Rules are evaluated first match wins: admin, organizer
// of the trip, guardian of an enrolled participant. Unknown users and
// trips resolve to a plain deny, never an error.
type Resolver struct {
	source PrincipalSource
}

// NewResolver creates a new access resolver
func NewResolver(source PrincipalSource) *Resolver {
	return &Resolver{source: source}
}

// CanAccess reports whether the user may access the trip. It has no
// side effects and is invoked at ingestion, alert creation, channel
// join, and detail/list queries.
func (r *Resolver) CanAccess(ctx context.Context, userID uuid.UUID, tripID string) bool {
	principal, err := r.source.ResolvePrincipal(ctx, userID)
	if err != nil {
		logger.Debug("Principal resolution failed, denying access",
			logger.String("user_id", userID.String()),
			logger.String("trip_id", tripID),
			logger.Err(err))
		return false
	}

	if principal.Role == models.RoleAdmin {
		return true
	}
	if principal.Organizes(tripID) {
		return true
	}
	if principal.GuardianOf(tripID) {
		return true
	}
	return false
}
