package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	domainerr "github.com/safetrip/tripwatch/internal/pkg/errors"
	"github.com/safetrip/tripwatch/internal/pkg/models"
	"github.com/safetrip/tripwatch/services/access"
)

// PrincipalRepo resolves principals from the platform's user, trip and
// registration tables.
type PrincipalRepo struct {
	db *sqlx.DB
}

// NewPrincipalRepository creates a new principal repository
func NewPrincipalRepository(db *sqlx.DB) access.PrincipalSource {
	return &PrincipalRepo{db: db}
}

// ResolvePrincipal loads a user's role and trip-scoped claims in one
// pass. An unknown user maps to ErrNotFound, which the resolver turns
// into a plain deny.
func (r *PrincipalRepo) ResolvePrincipal(ctx context.Context, userID uuid.UUID) (*models.Principal, error) {
	var role string
	err := r.db.QueryRowContext(ctx,
		`SELECT role FROM users WHERE id = $1`, userID,
	).Scan(&role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domainerr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve user role: %w", err)
	}

	principal := &models.Principal{
		UserID: userID,
		Role:   role,
	}

	if err := r.db.SelectContext(ctx, &principal.OrganizedTripIDs,
		`SELECT id FROM trips WHERE organizer_id = $1`, userID,
	); err != nil {
		return nil, fmt.Errorf("failed to load organized trips: %w", err)
	}

	if err := r.db.SelectContext(ctx, &principal.GuardianTripIDs,
		`SELECT DISTINCT r.trip_id
		 FROM registrations r
		 JOIN participants p ON p.id = r.participant_id
		 WHERE p.guardian_id = $1 AND r.status = 'enrolled'`, userID,
	); err != nil {
		return nil, fmt.Errorf("failed to load guardian trips: %w", err)
	}

	return principal, nil
}
