package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safetrip/tripwatch/internal/pkg/constants"
	"github.com/safetrip/tripwatch/internal/pkg/database"
	domainerr "github.com/safetrip/tripwatch/internal/pkg/errors"
	"github.com/safetrip/tripwatch/internal/pkg/models"
)

func setupReportRepoTest(t *testing.T) (*TelemetryRepo, sqlmock.Sqlmock, *miniredis.Miniredis, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	repo := &TelemetryRepo{
		db:          sqlxDB,
		redisClient: &database.RedisClient{Client: client},
	}

	cleanup := func() {
		sqlxDB.Close()
		client.Close()
		mr.Close()
	}
	return repo, mock, mr, cleanup
}

func sampleReport() *models.PositionReport {
	return &models.PositionReport{
		ID:         uuid.New(),
		TripID:     "trip-1",
		DeviceID:   "device-1",
		DeviceType: "mobile",
		Latitude:   -1.2921,
		Longitude:  36.8219,
		Geohash:    "kzf0tv2",
		Kind:       models.KindWaypoint,
		Valid:      true,
		ServerTS:   time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
	}
}

func TestStore(t *testing.T) {
	repo, mock, mr, cleanup := setupReportRepoTest(t)
	defer cleanup()

	report := sampleReport()

	mock.ExpectExec("INSERT INTO position_reports").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Store(context.Background(), report)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	// The latest-position cache must reflect the stored report.
	key := fmt.Sprintf(constants.KeyDeviceLatest, report.TripID, report.DeviceID)
	assert.True(t, mr.Exists(key))

	assert.Equal(t, models.KindWaypoint, mr.HGet(key, constants.FieldKind))
}

func TestStore_InsertFailure(t *testing.T) {
	repo, mock, mr, cleanup := setupReportRepoTest(t)
	defer cleanup()

	report := sampleReport()

	mock.ExpectExec("INSERT INTO position_reports").
		WillReturnError(assert.AnError)

	err := repo.Store(context.Background(), report)
	assert.Error(t, err)

	// No cache entry on a failed insert.
	key := fmt.Sprintf(constants.KeyDeviceLatest, report.TripID, report.DeviceID)
	assert.False(t, mr.Exists(key))
}

func TestLatestForTrip(t *testing.T) {
	repo, mock, _, cleanup := setupReportRepoTest(t)
	defer cleanup()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "trip_id", "device_id", "device_type", "latitude", "longitude",
		"altitude", "accuracy", "speed", "heading", "battery_level", "signal_strength",
		"geohash", "kind", "valid", "safe_zone", "client_ts", "server_ts",
	}).
		AddRow(uuid.New(), "trip-1", "device-2", "mobile", -1.30, 36.83,
			nil, nil, nil, nil, nil, nil,
			"kzf0tv3", models.KindWaypoint, true, false, nil, now).
		AddRow(uuid.New(), "trip-1", "device-1", "mobile", -1.29, 36.82,
			nil, nil, nil, nil, nil, nil,
			"kzf0tv2", models.KindCheckin, true, false, nil, now.Add(-time.Minute))

	mock.ExpectQuery("SELECT (.+) FROM position_reports").
		WithArgs("trip-1", 50).
		WillReturnRows(rows)

	reports, err := repo.LatestForTrip(context.Background(), "trip-1", 50)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "device-2", reports[0].DeviceID)
	assert.Equal(t, "device-1", reports[1].DeviceID)
}

func TestLatestForDevice_CacheHit(t *testing.T) {
	repo, _, mr, cleanup := setupReportRepoTest(t)
	defer cleanup()

	key := fmt.Sprintf(constants.KeyDeviceLatest, "trip-1", "device-1")
	mr.HSet(key,
		constants.FieldLatitude, "-1.2921",
		constants.FieldLongitude, "36.8219",
		constants.FieldTimestamp, "1773739613000",
		constants.FieldKind, models.KindWaypoint,
		constants.FieldDeviceID, "device-1",
	)

	report, err := repo.LatestForDevice(context.Background(), "trip-1", "device-1")
	require.NoError(t, err)
	assert.Equal(t, -1.2921, report.Latitude)
	assert.Equal(t, 36.8219, report.Longitude)
	assert.Equal(t, "device-1", report.DeviceID)
	assert.Equal(t, int64(1773739613000), report.ServerTS.UnixMilli())
}

func TestLatestForDevice_CacheMissFallsBackToDB(t *testing.T) {
	repo, mock, _, cleanup := setupReportRepoTest(t)
	defer cleanup()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "trip_id", "device_id", "device_type", "latitude", "longitude",
		"altitude", "accuracy", "speed", "heading", "battery_level", "signal_strength",
		"geohash", "kind", "valid", "safe_zone", "client_ts", "server_ts",
	}).AddRow(uuid.New(), "trip-1", "device-1", "mobile", -1.29, 36.82,
		nil, nil, nil, nil, nil, nil,
		"kzf0tv2", models.KindWaypoint, true, false, nil, now)

	mock.ExpectQuery("SELECT (.+) FROM position_reports").
		WithArgs("trip-1", "device-1").
		WillReturnRows(rows)

	report, err := repo.LatestForDevice(context.Background(), "trip-1", "device-1")
	require.NoError(t, err)
	assert.Equal(t, "device-1", report.DeviceID)
}

func TestLatestForDevice_NotFound(t *testing.T) {
	repo, mock, _, cleanup := setupReportRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM position_reports").
		WithArgs("trip-1", "device-9").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.LatestForDevice(context.Background(), "trip-1", "device-9")
	assert.ErrorIs(t, err, domainerr.ErrNotFound)
}
