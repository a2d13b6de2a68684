package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/safetrip/tripwatch/internal/pkg/constants"
	domainerr "github.com/safetrip/tripwatch/internal/pkg/errors"
	"github.com/safetrip/tripwatch/internal/pkg/logger"
	"github.com/safetrip/tripwatch/internal/pkg/models"
	"github.com/safetrip/tripwatch/internal/utils"
	"github.com/safetrip/tripwatch/services/access"
	"github.com/safetrip/tripwatch/services/telemetry"
)

// TelemetryUCImpl implements the telemetry.TelemetryUC interface
type TelemetryUCImpl struct {
	repo        telemetry.TelemetryRepo
	gw          telemetry.TelemetryGW
	broadcaster telemetry.Broadcaster
	resolver    access.Checker
	limiter     telemetry.DeviceLimiter
	now         func() time.Time
}

// NewTelemetryUC creates a new telemetry use case
func NewTelemetryUC(
	repo telemetry.TelemetryRepo,
	gw telemetry.TelemetryGW,
	broadcaster telemetry.Broadcaster,
	resolver access.Checker,
	limiter telemetry.DeviceLimiter,
) *TelemetryUCImpl {
	return &TelemetryUCImpl{
		repo:        repo,
		gw:          gw,
		broadcaster: broadcaster,
		resolver:    resolver,
		limiter:     limiter,
		now:         time.Now,
	}
}

// Ingest validates, authorizes, throttles and persists one position
// report, then hands it to the broadcast router asynchronously. Success
// is returned only after durable persistence; fan-out is best-effort.
func (uc *TelemetryUCImpl) Ingest(ctx context.Context, userID uuid.UUID, tripID string, req *models.IngestRequest) (*models.PositionReport, error) {
	// Validation comes first and fails regardless of access state
	if !utils.ValidCoordinates(req.Latitude, req.Longitude) {
		return nil, domainerr.ErrInvalidCoordinates
	}
	deviceID := strings.TrimSpace(req.DeviceID)
	if deviceID == "" {
		return nil, domainerr.ErrInvalidDevice
	}

	if !uc.resolver.CanAccess(ctx, userID, tripID) {
		return nil, domainerr.ErrAccessDenied
	}

	if !uc.limiter.Allow(tripID, deviceID) {
		return nil, domainerr.ErrRateLimited
	}

	report := uc.buildReport(tripID, deviceID, req)

	if err := uc.repo.Store(ctx, report); err != nil {
		return nil, err
	}

	// Commit-then-broadcast: fan-out never extends the caller's
	// critical path and its failures never surface to the request.
	go uc.dispatch(report)

	return report, nil
}

func (uc *TelemetryUCImpl) buildReport(tripID, deviceID string, req *models.IngestRequest) *models.PositionReport {
	serverTS := uc.now().UTC()

	var clientTS *time.Time
	if req.Timestamp > 0 {
		ts := time.UnixMilli(req.Timestamp).UTC()
		clientTS = &ts
	}

	kind := req.Kind
	switch kind {
	case models.KindCheckin, models.KindWaypoint, models.KindAccommodation, models.KindActivity, models.KindEmergency:
	default:
		kind = models.KindWaypoint
	}

	deviceType := req.DeviceType
	if deviceType == "" {
		deviceType = "mobile"
	}

	return &models.PositionReport{
		ID:             uuid.New(),
		TripID:         tripID,
		DeviceID:       deviceID,
		DeviceType:     deviceType,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		Altitude:       req.Altitude,
		Accuracy:       req.Accuracy,
		Speed:          req.Speed,
		Heading:        req.Heading,
		BatteryLevel:   req.BatteryLevel,
		SignalStrength: req.SignalStrength,
		Geohash:        utils.EncodeLocation(req.Latitude, req.Longitude),
		Kind:           kind,
		Valid:          true,
		SafeZone:       false,
		ClientTS:       clientTS,
		ServerTS:       serverTS,
	}
}

func (uc *TelemetryUCImpl) dispatch(report *models.PositionReport) {
	uc.broadcaster.Publish(report.TripID, constants.EventLocationUpdate, report)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := uc.gw.PublishLocationReport(ctx, report); err != nil {
		logger.Warn("Failed to publish location report event",
			logger.String("trip_id", report.TripID),
			logger.String("device_id", report.DeviceID),
			logger.Err(err))
	}
}

// LatestForTrip returns the newest reports for a trip.
func (uc *TelemetryUCImpl) LatestForTrip(ctx context.Context, userID uuid.UUID, tripID string, limit int) ([]*models.PositionReport, error) {
	if !uc.resolver.CanAccess(ctx, userID, tripID) {
		return nil, domainerr.ErrAccessDenied
	}

	if limit <= 0 || limit > 200 {
		limit = 50
	}

	return uc.repo.LatestForTrip(ctx, tripID, limit)
}

// LatestForDevice returns the most recent report for one device.
func (uc *TelemetryUCImpl) LatestForDevice(ctx context.Context, userID uuid.UUID, tripID, deviceID string) (*models.PositionReport, error) {
	if !uc.resolver.CanAccess(ctx, userID, tripID) {
		return nil, domainerr.ErrAccessDenied
	}

	return uc.repo.LatestForDevice(ctx, tripID, deviceID)
}
