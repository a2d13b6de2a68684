package telemetry

import (
	"context"

	"github.com/google/uuid"

	"github.com/safetrip/tripwatch/internal/pkg/models"
)

// TelemetryRepo defines the interface for position report persistence
type TelemetryRepo interface {
	// Store durably persists a report and refreshes the
	// latest-position cache. Reports are append-only.
	Store(ctx context.Context, report *models.PositionReport) error

	// LatestForTrip returns the newest reports for a trip ordered by
	// server timestamp descending.
	LatestForTrip(ctx context.Context, tripID string, limit int) ([]*models.PositionReport, error)

	// LatestForDevice returns the most recent report of one device.
	LatestForDevice(ctx context.Context, tripID, deviceID string) (*models.PositionReport, error)
}

// TelemetryGW defines the interface for telemetry gateway operations
type TelemetryGW interface {
	// PublishLocationReport publishes an accepted report to the
	// platform event bus.
	PublishLocationReport(ctx context.Context, report *models.PositionReport) error
}

// Broadcaster fans an event out to the live observers of a trip. The
// call must not block on delivery.
type Broadcaster interface {
	Publish(tripID string, event string, payload interface{})
}

// DeviceLimiter throttles per-(trip, device) ingestion frequency.
type DeviceLimiter interface {
	Allow(tripID, deviceID string) bool
}

// TelemetryUC defines the interface for telemetry business logic
type TelemetryUC interface {
	Ingest(ctx context.Context, userID uuid.UUID, tripID string, req *models.IngestRequest) (*models.PositionReport, error)
	LatestForTrip(ctx context.Context, userID uuid.UUID, tripID string, limit int) ([]*models.PositionReport, error)
	LatestForDevice(ctx context.Context, userID uuid.UUID, tripID, deviceID string) (*models.PositionReport, error)
}
