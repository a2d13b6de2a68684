package incident

import (
	"context"

	"github.com/google/uuid"

	"github.com/safetrip/tripwatch/internal/pkg/models"
)

// IncidentRepo defines the interface for incident persistence
type IncidentRepo interface {
	// Create durably persists a new incident.
	Create(ctx context.Context, incident *models.Incident) error

	// Update persists the full mutable state of an incident.
	Update(ctx context.Context, incident *models.Incident) error

	// GetByID loads one incident, ErrNotFound when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)

	// ListByTrip returns one page of a trip's incidents, newest first.
	ListByTrip(ctx context.Context, tripID string, page, perPage int) (*models.IncidentPage, error)

	// ActiveByTrip returns the trip's unresolved incidents, newest first.
	ActiveByTrip(ctx context.Context, tripID string) ([]*models.Incident, error)
}

// IncidentGW defines the interface for incident gateway operations
type IncidentGW interface {
	// PublishIncidentEvent publishes an incident lifecycle event to the
	// platform event bus.
	PublishIncidentEvent(ctx context.Context, subject string, incident *models.Incident) error
}

// Notifier delivers offline notifications about incidents.
type Notifier interface {
	NotifyOffline(incident *models.Incident) error
}

// Broadcaster fans an event out to the live observers of a trip. The
// call must not block on delivery.
type Broadcaster interface {
	Publish(tripID string, event string, payload interface{})
}

// IncidentUC defines the interface for incident business logic
type IncidentUC interface {
	Create(ctx context.Context, userID uuid.UUID, tripID string, req *models.CreateAlertRequest) (*models.Incident, error)
	GetByID(ctx context.Context, userID uuid.UUID, tripID string, id uuid.UUID) (*models.Incident, error)
	ListByTrip(ctx context.Context, userID uuid.UUID, tripID string, page, perPage int) (*models.IncidentPage, error)
	Acknowledge(ctx context.Context, userID uuid.UUID, tripID string, id uuid.UUID) (*models.Incident, error)
	StartResponse(ctx context.Context, userID uuid.UUID, tripID string, id uuid.UUID, action string) (*models.Incident, error)
	AddResponseAction(ctx context.Context, userID uuid.UUID, tripID string, id uuid.UUID, action string) (*models.Incident, error)
	Escalate(ctx context.Context, userID uuid.UUID, tripID string, id uuid.UUID, severity, reason string) (*models.Incident, error)
	Resolve(ctx context.Context, userID uuid.UUID, tripID string, id uuid.UUID, details string) (*models.Incident, error)
	Close(ctx context.Context, userID uuid.UUID, tripID string, id uuid.UUID) (*models.Incident, error)
}
