package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/safetrip/tripwatch/internal/pkg/models"
	"github.com/safetrip/tripwatch/internal/pkg/retry"
	"github.com/safetrip/tripwatch/services/incident"
)

type incidentGW struct {
	nc      *nats.Conn
	retrier *retry.Retrier
}

// NewIncidentGW creates a new incident gateway
func NewIncidentGW(nc *nats.Conn) incident.IncidentGW {
	return &incidentGW{
		nc:      nc,
		retrier: retry.NewWithDefaults(),
	}
}

// PublishIncidentEvent publishes an incident lifecycle event to NATS,
// retrying transient broker failures.
func (g *incidentGW) PublishIncidentEvent(ctx context.Context, subject string, inc *models.Incident) error {
	data, err := json.Marshal(inc)
	if err != nil {
		return fmt.Errorf("failed to marshal incident: %w", err)
	}

	return g.retrier.Execute(ctx, func(context.Context) error {
		return g.nc.Publish(subject, data)
	})
}
