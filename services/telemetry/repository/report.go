package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/safetrip/tripwatch/internal/pkg/constants"
	"github.com/safetrip/tripwatch/internal/pkg/database"
	domainerr "github.com/safetrip/tripwatch/internal/pkg/errors"
	"github.com/safetrip/tripwatch/internal/pkg/logger"
	"github.com/safetrip/tripwatch/internal/pkg/models"
	"github.com/safetrip/tripwatch/services/telemetry"
)

// LatestTTL is how long the latest-position cache entry lives; long
// enough to cover a full tracking day.
const LatestTTL = 24 * time.Hour

// TelemetryRepo persists position reports in postgres and mirrors the
// newest report per device into redis.
type TelemetryRepo struct {
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewTelemetryRepository creates a new telemetry repository
func NewTelemetryRepository(db *sqlx.DB, redisClient *database.RedisClient) telemetry.TelemetryRepo {
	return &TelemetryRepo{
		db:          db,
		redisClient: redisClient,
	}
}

// Store inserts the report and refreshes the device's latest-position
// cache. The insert is the durability boundary; a cache failure is
// logged and does not fail the ingest.
func (r *TelemetryRepo) Store(ctx context.Context, report *models.PositionReport) error {
	query := `
		INSERT INTO position_reports (
			id, trip_id, device_id, device_type, latitude, longitude,
			altitude, accuracy, speed, heading, battery_level, signal_strength,
			geohash, kind, valid, safe_zone, client_ts, server_ts
		) VALUES (
			:id, :trip_id, :device_id, :device_type, :latitude, :longitude,
			:altitude, :accuracy, :speed, :heading, :battery_level, :signal_strength,
			:geohash, :kind, :valid, :safe_zone, :client_ts, :server_ts
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, report); err != nil {
		return fmt.Errorf("failed to insert position report: %w", err)
	}

	if err := r.cacheLatest(ctx, report); err != nil {
		logger.Warn("Failed to refresh latest-position cache",
			logger.String("trip_id", report.TripID),
			logger.String("device_id", report.DeviceID),
			logger.Err(err))
	}

	return nil
}

func (r *TelemetryRepo) cacheLatest(ctx context.Context, report *models.PositionReport) error {
	key := fmt.Sprintf(constants.KeyDeviceLatest, report.TripID, report.DeviceID)
	fields := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(report.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(report.Longitude, 'f', -1, 64),
		constants.FieldTimestamp: strconv.FormatInt(report.ServerTS.UnixMilli(), 10),
		constants.FieldKind:      report.Kind,
		constants.FieldDeviceID:  report.DeviceID,
	}

	if err := r.redisClient.HMSet(ctx, key, fields); err != nil {
		return err
	}
	return r.redisClient.Expire(ctx, key, LatestTTL)
}

// LatestForTrip returns the newest reports for a trip ordered by server
// timestamp descending.
func (r *TelemetryRepo) LatestForTrip(ctx context.Context, tripID string, limit int) ([]*models.PositionReport, error) {
	query := `
		SELECT id, trip_id, device_id, device_type, latitude, longitude,
			altitude, accuracy, speed, heading, battery_level, signal_strength,
			geohash, kind, valid, safe_zone, client_ts, server_ts
		FROM position_reports
		WHERE trip_id = $1
		ORDER BY server_ts DESC
		LIMIT $2
	`

	reports := []*models.PositionReport{}
	if err := r.db.SelectContext(ctx, &reports, query, tripID, limit); err != nil {
		return nil, fmt.Errorf("failed to query latest reports: %w", err)
	}
	return reports, nil
}

// LatestForDevice serves the most recent report for one device from the
// redis cache, falling back to postgres when the cache is cold.
func (r *TelemetryRepo) LatestForDevice(ctx context.Context, tripID, deviceID string) (*models.PositionReport, error) {
	if report, err := r.latestFromCache(ctx, tripID, deviceID); err == nil {
		return report, nil
	}

	query := `
		SELECT id, trip_id, device_id, device_type, latitude, longitude,
			altitude, accuracy, speed, heading, battery_level, signal_strength,
			geohash, kind, valid, safe_zone, client_ts, server_ts
		FROM position_reports
		WHERE trip_id = $1 AND device_id = $2
		ORDER BY server_ts DESC
		LIMIT 1
	`

	var report models.PositionReport
	if err := r.db.GetContext(ctx, &report, query, tripID, deviceID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domainerr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query latest device report: %w", err)
	}
	return &report, nil
}

func (r *TelemetryRepo) latestFromCache(ctx context.Context, tripID, deviceID string) (*models.PositionReport, error) {
	key := fmt.Sprintf(constants.KeyDeviceLatest, tripID, deviceID)

	fields, err := r.redisClient.HGetAll(ctx, key)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, domainerr.ErrNotFound
	}

	lat, err := strconv.ParseFloat(fields[constants.FieldLatitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid cached latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(fields[constants.FieldLongitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid cached longitude: %w", err)
	}
	ts, err := strconv.ParseInt(fields[constants.FieldTimestamp], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid cached timestamp: %w", err)
	}

	return &models.PositionReport{
		TripID:    tripID,
		DeviceID:  deviceID,
		Latitude:  lat,
		Longitude: lng,
		Kind:      fields[constants.FieldKind],
		Valid:     true,
		ServerTS:  time.UnixMilli(ts).UTC(),
	}, nil
}
