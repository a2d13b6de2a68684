package access

import (
	"context"

	"github.com/google/uuid"

	"github.com/safetrip/tripwatch/internal/pkg/models"
)

// PrincipalSource resolves a user into a Principal with role and
// trip-scoped claims. Trip, participant and registration records live
// outside this subsystem and are consumed only through this interface.
type PrincipalSource interface {
	ResolvePrincipal(ctx context.Context, userID uuid.UUID) (*models.Principal, error)
}

// Checker answers trip-scoped authorization questions.
type Checker interface {
	CanAccess(ctx context.Context, userID uuid.UUID, tripID string) bool
}
