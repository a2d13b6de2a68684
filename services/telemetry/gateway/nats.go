package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/safetrip/tripwatch/internal/pkg/constants"
	"github.com/safetrip/tripwatch/internal/pkg/models"
	"github.com/safetrip/tripwatch/internal/pkg/retry"
	"github.com/safetrip/tripwatch/services/telemetry"
)

type telemetryGW struct {
	nc      *nats.Conn
	retrier *retry.Retrier
}

// NewTelemetryGW creates a new telemetry gateway
func NewTelemetryGW(nc *nats.Conn) telemetry.TelemetryGW {
	return &telemetryGW{
		nc:      nc,
		retrier: retry.NewWithDefaults(),
	}
}

// PublishLocationReport publishes an accepted position report to NATS,
// retrying transient broker failures.
func (g *telemetryGW) PublishLocationReport(ctx context.Context, report *models.PositionReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal position report: %w", err)
	}

	return g.retrier.Execute(ctx, func(context.Context) error {
		return g.nc.Publish(constants.SubjectLocationReport, data)
	})
}
