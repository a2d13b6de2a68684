package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerr "github.com/safetrip/tripwatch/internal/pkg/errors"
	"github.com/safetrip/tripwatch/internal/pkg/models"
)

func setupIncidentRepoTest(t *testing.T) (*IncidentRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &IncidentRepo{db: sqlxDB}
	return repo, mock, func() { sqlxDB.Close() }
}

func incidentRow(inc *models.Incident) *sqlmock.Rows {
	actions, _ := json.Marshal(inc.ResponseActions)
	people, _ := json.Marshal(inc.PeopleAffected)
	return sqlmock.NewRows([]string{
		"id", "trip_id", "title", "description", "type", "severity", "status",
		"latitude", "longitude", "location_description", "people_affected",
		"injuries_reported", "response_actions", "emergency_services_contacted",
		"resolution_details", "resolved_at", "reported_by", "reporter_phone",
		"contact_person_id", "acknowledged", "acknowledged_by", "created_at", "updated_at",
	}).AddRow(
		inc.ID, inc.TripID, inc.Title, inc.Description, inc.Type, inc.Severity, inc.Status,
		inc.Latitude, inc.Longitude, inc.LocationDescription, people,
		inc.InjuriesReported, actions, inc.EmergencyServicesContacted,
		inc.ResolutionDetails, inc.ResolvedAt, inc.ReportedBy, inc.ReporterPhone,
		inc.ContactPersonID, inc.Acknowledged, inc.AcknowledgedBy, inc.CreatedAt, inc.UpdatedAt,
	)
}

func sampleIncident() *models.Incident {
	now := time.Now().UTC()
	return &models.Incident{
		ID:             uuid.New(),
		TripID:         "42",
		Title:          "Student unwell",
		Description:    "Student unwell",
		Type:           models.IncidentTypeMedical,
		Severity:       models.SeverityMedium,
		Status:         models.IncidentActive,
		PeopleAffected: models.StringList{"participant-7"},
		ResponseActions: models.ResponseActions{
			{Action: "reported", Timestamp: now},
		},
		ReportedBy: uuid.New(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestCreateIncident(t *testing.T) {
	repo, mock, cleanup := setupIncidentRepoTest(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO incidents").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), sampleIncident())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	repo, mock, cleanup := setupIncidentRepoTest(t)
	defer cleanup()

	want := sampleIncident()
	mock.ExpectQuery("SELECT (.+) FROM incidents WHERE id").
		WithArgs(want.ID).
		WillReturnRows(incidentRow(want))

	got, err := repo.GetByID(context.Background(), want.ID)
	require.NoError(t, err)

	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.TripID, got.TripID)
	assert.Equal(t, models.IncidentActive, got.Status)
	require.Len(t, got.ResponseActions, 1)
	assert.Equal(t, "reported", got.ResponseActions[0].Action)
	assert.Equal(t, models.StringList{"participant-7"}, got.PeopleAffected)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, cleanup := setupIncidentRepoTest(t)
	defer cleanup()

	id := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM incidents WHERE id").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, domainerr.ErrNotFound)
}

func TestUpdate_MissingRowIsNotFound(t *testing.T) {
	repo, mock, cleanup := setupIncidentRepoTest(t)
	defer cleanup()

	mock.ExpectExec("UPDATE incidents SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), sampleIncident())
	assert.ErrorIs(t, err, domainerr.ErrNotFound)
}

func TestListByTrip(t *testing.T) {
	repo, mock, cleanup := setupIncidentRepoTest(t)
	defer cleanup()

	inc := sampleIncident()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs("42").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
	mock.ExpectQuery("SELECT (.+) FROM incidents").
		WithArgs("42", 20, 0).
		WillReturnRows(incidentRow(inc))

	page, err := repo.ListByTrip(context.Background(), "42", 1, 20)
	require.NoError(t, err)

	assert.Equal(t, 7, page.Total)
	assert.Equal(t, 1, page.Page)
	require.Len(t, page.Incidents, 1)
	assert.Equal(t, inc.ID, page.Incidents[0].ID)
}

func TestActiveByTrip(t *testing.T) {
	repo, mock, cleanup := setupIncidentRepoTest(t)
	defer cleanup()

	inc := sampleIncident()

	mock.ExpectQuery("SELECT (.+) FROM incidents").
		WithArgs("42", models.IncidentActive, models.IncidentResponding).
		WillReturnRows(incidentRow(inc))

	incidents, err := repo.ActiveByTrip(context.Background(), "42")
	require.NoError(t, err)
	require.Len(t, incidents, 1)
	assert.Equal(t, inc.ID, incidents[0].ID)
}
