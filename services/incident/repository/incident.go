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
	"github.com/safetrip/tripwatch/services/incident"
)

const incidentColumns = `id, trip_id, title, description, type, severity, status,
	latitude, longitude, location_description, people_affected,
	injuries_reported, response_actions, emergency_services_contacted,
	resolution_details, resolved_at, reported_by, reporter_phone,
	contact_person_id, acknowledged, acknowledged_by, created_at, updated_at`

// IncidentRepo persists incidents in postgres. Audit trails and people
// lists are stored as jsonb columns.
type IncidentRepo struct {
	db *sqlx.DB
}

// NewIncidentRepository creates a new incident repository
func NewIncidentRepository(db *sqlx.DB) incident.IncidentRepo {
	return &IncidentRepo{db: db}
}

// Create inserts a new incident row
func (r *IncidentRepo) Create(ctx context.Context, inc *models.Incident) error {
	query := `
		INSERT INTO incidents (
			id, trip_id, title, description, type, severity, status,
			latitude, longitude, location_description, people_affected,
			injuries_reported, response_actions, emergency_services_contacted,
			resolution_details, resolved_at, reported_by, reporter_phone,
			contact_person_id, acknowledged, acknowledged_by, created_at, updated_at
		) VALUES (
			:id, :trip_id, :title, :description, :type, :severity, :status,
			:latitude, :longitude, :location_description, :people_affected,
			:injuries_reported, :response_actions, :emergency_services_contacted,
			:resolution_details, :resolved_at, :reported_by, :reporter_phone,
			:contact_person_id, :acknowledged, :acknowledged_by, :created_at, :updated_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, inc); err != nil {
		return fmt.Errorf("failed to insert incident: %w", err)
	}
	return nil
}

// Update rewrites the mutable columns of an incident row
func (r *IncidentRepo) Update(ctx context.Context, inc *models.Incident) error {
	query := `
		UPDATE incidents SET
			severity = :severity,
			status = :status,
			response_actions = :response_actions,
			emergency_services_contacted = :emergency_services_contacted,
			resolution_details = :resolution_details,
			resolved_at = :resolved_at,
			acknowledged = :acknowledged,
			acknowledged_by = :acknowledged_by,
			updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, inc)
	if err != nil {
		return fmt.Errorf("failed to update incident: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return domainerr.ErrNotFound
	}
	return nil
}

// GetByID loads one incident
func (r *IncidentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1`

	var inc models.Incident
	if err := r.db.GetContext(ctx, &inc, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domainerr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query incident: %w", err)
	}
	return &inc, nil
}

// ListByTrip returns one page of a trip's incidents, newest first
func (r *IncidentRepo) ListByTrip(ctx context.Context, tripID string, page, perPage int) (*models.IncidentPage, error) {
	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM incidents WHERE trip_id = $1`, tripID,
	).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count incidents: %w", err)
	}

	query := `
		SELECT ` + incidentColumns + `
		FROM incidents
		WHERE trip_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	incidents := []*models.Incident{}
	if err := r.db.SelectContext(ctx, &incidents, query, tripID, perPage, (page-1)*perPage); err != nil {
		return nil, fmt.Errorf("failed to query incidents: %w", err)
	}

	return &models.IncidentPage{
		Incidents: incidents,
		Total:     total,
		Page:      page,
		PerPage:   perPage,
	}, nil
}

// ActiveByTrip returns the trip's unresolved incidents, newest first
func (r *IncidentRepo) ActiveByTrip(ctx context.Context, tripID string) ([]*models.Incident, error) {
	query := `
		SELECT ` + incidentColumns + `
		FROM incidents
		WHERE trip_id = $1 AND status IN ($2, $3)
		ORDER BY created_at DESC
	`

	incidents := []*models.Incident{}
	if err := r.db.SelectContext(ctx, &incidents, query, tripID,
		models.IncidentActive, models.IncidentResponding); err != nil {
		return nil, fmt.Errorf("failed to query active incidents: %w", err)
	}
	return incidents, nil
}
