package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safetrip/tripwatch/internal/pkg/constants"
	domainerr "github.com/safetrip/tripwatch/internal/pkg/errors"
	"github.com/safetrip/tripwatch/internal/pkg/models"
	"github.com/safetrip/tripwatch/services/incident/mocks"
)

type allowAllChecker struct{}

func (allowAllChecker) CanAccess(context.Context, uuid.UUID, string) bool { return true }

type denyAllChecker struct{}

func (denyAllChecker) CanAccess(context.Context, uuid.UUID, string) bool { return false }

type ucFixture struct {
	uc          *IncidentUCImpl
	repo        *mocks.MockIncidentRepo
	gw          *mocks.MockIncidentGW
	notifier    *mocks.MockNotifier
	broadcaster *mocks.MockBroadcaster
}

func setupUC(t *testing.T) (*ucFixture, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	f := &ucFixture{
		repo:        mocks.NewMockIncidentRepo(ctrl),
		gw:          mocks.NewMockIncidentGW(ctrl),
		notifier:    mocks.NewMockNotifier(ctrl),
		broadcaster: mocks.NewMockBroadcaster(ctrl),
	}
	f.uc = NewIncidentUC(f.repo, f.gw, f.notifier, f.broadcaster, allowAllChecker{})
	return f, ctrl
}

// allowDispatch accepts whatever the async fan-out produces so tests
// that only care about the state machine stay deterministic.
func (f *ucFixture) allowDispatch() {
	f.broadcaster.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	f.gw.EXPECT().PublishIncidentEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.notifier.EXPECT().NotifyOffline(gomock.Any()).Return(nil).AnyTimes()
}

func activeIncident(tripID string) *models.Incident {
	now := time.Now().UTC().Add(-10 * time.Minute)
	return &models.Incident{
		ID:          uuid.New(),
		TripID:      tripID,
		Title:       "Student unwell",
		Description: "Student unwell",
		Type:        models.IncidentTypeMedical,
		Severity:    models.SeverityMedium,
		Status:      models.IncidentActive,
		ResponseActions: models.ResponseActions{
			{Action: "reported", Timestamp: now},
		},
		ReportedBy: uuid.New(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestCreate_Success(t *testing.T) {
	f, ctrl := setupUC(t)
	defer ctrl.Finish()

	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	var wg sync.WaitGroup
	wg.Add(3)
	f.broadcaster.EXPECT().
		Publish("42", constants.EventTripAlert, gomock.Any()).
		Do(func(string, string, interface{}) { wg.Done() })
	f.gw.EXPECT().
		PublishIncidentEvent(gomock.Any(), constants.SubjectIncidentCreated, gomock.Any()).
		DoAndReturn(func(context.Context, string, *models.Incident) error {
			wg.Done()
			return nil
		})
	f.notifier.EXPECT().
		NotifyOffline(gomock.Any()).
		DoAndReturn(func(*models.Incident) error {
			wg.Done()
			return nil
		})

	inc, err := f.uc.Create(context.Background(), uuid.New(), "42", &models.CreateAlertRequest{
		Message: "Student unwell",
	})
	require.NoError(t, err)

	assert.Equal(t, models.IncidentActive, inc.Status)
	assert.Equal(t, models.SeverityMedium, inc.Severity)
	assert.Equal(t, models.IncidentTypeOther, inc.Type)
	require.Len(t, inc.ResponseActions, 1)
	assert.Equal(t, "reported", inc.ResponseActions[0].Action)

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatch did not complete")
	}
}

func TestCreate_MissingMessage(t *testing.T) {
	f, ctrl := setupUC(t)
	defer ctrl.Finish()

	_, err := f.uc.Create(context.Background(), uuid.New(), "42", &models.CreateAlertRequest{
		Message: "   ",
	})
	assert.ErrorIs(t, err, domainerr.ErrMissingMessage)
}

func TestCreate_InvalidCoordinates(t *testing.T) {
	f, ctrl := setupUC(t)
	defer ctrl.Finish()

	lat, lon := 95.0, 36.8
	_, err := f.uc.Create(context.Background(), uuid.New(), "42", &models.CreateAlertRequest{
		Message:   "help",
		Latitude:  &lat,
		Longitude: &lon,
	})
	assert.ErrorIs(t, err, domainerr.ErrInvalidCoordinates)
}

func TestCreate_InvalidSeverity(t *testing.T) {
	f, ctrl := setupUC(t)
	defer ctrl.Finish()

	_, err := f.uc.Create(context.Background(), uuid.New(), "42", &models.CreateAlertRequest{
		Message:  "help",
		Severity: "catastrophic",
	})
	assert.ErrorIs(t, err, domainerr.ErrInvalidSeverity)
}

func TestCreate_AccessDenied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewIncidentUC(
		mocks.NewMockIncidentRepo(ctrl),
		mocks.NewMockIncidentGW(ctrl),
		mocks.NewMockNotifier(ctrl),
		mocks.NewMockBroadcaster(ctrl),
		denyAllChecker{},
	)

	_, err := uc.Create(context.Background(), uuid.New(), "42", &models.CreateAlertRequest{
		Message: "help",
	})
	assert.ErrorIs(t, err, domainerr.ErrAccessDenied)
}

func TestAcknowledge_Success(t *testing.T) {
	f, ctrl := setupUC(t)
	defer ctrl.Finish()
	f.allowDispatch()

	inc := activeIncident("42")
	userID := uuid.New()

	f.repo.EXPECT().GetByID(gomock.Any(), inc.ID).Return(inc, nil)
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	got, err := f.uc.Acknowledge(context.Background(), userID, "42", inc.ID)
	require.NoError(t, err)

	assert.True(t, got.Acknowledged)
	require.NotNil(t, got.AcknowledgedBy)
	assert.Equal(t, userID, *got.AcknowledgedBy)
	assert.Equal(t, "acknowledged", got.ResponseActions[len(got.ResponseActions)-1].Action)
}

func TestAcknowledge_Repeat(t *testing.T) {
	f, ctrl := setupUC(t)
	defer ctrl.Finish()

	inc := activeIncident("42")
	inc.Acknowledged = true

	f.repo.EXPECT().GetByID(gomock.Any(), inc.ID).Return(inc, nil)

	_, err := f.uc.Acknowledge(context.Background(), uuid.New(), "42", inc.ID)
	assert.ErrorIs(t, err, domainerr.ErrAlreadyAcknowledged)
}

func TestAcknowledge_AfterLeavingActive(t *testing.T) {
	f, ctrl := setupUC(t)
	defer ctrl.Finish()

	inc := activeIncident("42")
	inc.Status = models.IncidentResponding

	f.repo.EXPECT().GetByID(gomock.Any(), inc.ID).Return(inc, nil)

	_, err := f.uc.Acknowledge(context.Background(), uuid.New(), "42", inc.ID)
	assert.ErrorIs(t, err, domainerr.ErrInvalidTransition)
}

func TestLifecycle_CreateRespondResolveClose(t *testing.T) {
	f, ctrl := setupUC(t)
	defer ctrl.Finish()
	f.allowDispatch()

	inc := activeIncident("42")
	userID := uuid.New()
	ctx := context.Background()

	f.repo.EXPECT().GetByID(gomock.Any(), inc.ID).Return(inc, nil).AnyTimes()
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	got, err := f.uc.StartResponse(ctx, userID, "42", inc.ID, "first aid dispatched")
	require.NoError(t, err)
	assert.Equal(t, models.IncidentResponding, got.Status)

	got, err = f.uc.AddResponseAction(ctx, userID, "42", inc.ID, "parents contacted")
	require.NoError(t, err)
	assert.Equal(t, "parents contacted", got.ResponseActions[len(got.ResponseActions)-1].Action)

	got, err = f.uc.Escalate(ctx, userID, "42", inc.ID, models.SeverityHigh, "condition worsened")
	require.NoError(t, err)
	assert.Equal(t, models.SeverityHigh, got.Severity)

	got, err = f.uc.Resolve(ctx, userID, "42", inc.ID, "student recovered")
	require.NoError(t, err)
	assert.Equal(t, models.IncidentResolved, got.Status)
	require.NotNil(t, got.ResolvedAt)
	require.NotNil(t, got.ResolutionDetails)

	got, err = f.uc.Close(ctx, userID, "42", inc.ID)
	require.NoError(t, err)
	assert.Equal(t, models.IncidentClosed, got.Status)
}

func TestResolve_DirectlyFromActive(t *testing.T) {
	f, ctrl := setupUC(t)
	defer ctrl.Finish()
	f.allowDispatch()

	inc := activeIncident("42")
	f.repo.EXPECT().GetByID(gomock.Any(), inc.ID).Return(inc, nil)
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	got, err := f.uc.Resolve(context.Background(), uuid.New(), "42", inc.ID, "false alarm")
	require.NoError(t, err)
	assert.Equal(t, models.IncidentResolved, got.Status)
}

func TestClose_RequiresResolved(t *testing.T) {
	f, ctrl := setupUC(t)
	defer ctrl.Finish()

	inc := activeIncident("42")
	f.repo.EXPECT().GetByID(gomock.Any(), inc.ID).Return(inc, nil)

	_, err := f.uc.Close(context.Background(), uuid.New(), "42", inc.ID)
	assert.ErrorIs(t, err, domainerr.ErrInvalidTransition)
}

func TestEscalate_RejectedAfterResolution(t *testing.T) {
	f, ctrl := setupUC(t)
	defer ctrl.Finish()

	inc := activeIncident("42")
	inc.Status = models.IncidentResolved

	f.repo.EXPECT().GetByID(gomock.Any(), inc.ID).Return(inc, nil)

	_, err := f.uc.Escalate(context.Background(), uuid.New(), "42", inc.ID, models.SeverityHigh, "")
	assert.ErrorIs(t, err, domainerr.ErrInvalidTransition)
}

func TestMutate_ForeignTripIsNotFound(t *testing.T) {
	f, ctrl := setupUC(t)
	defer ctrl.Finish()

	inc := activeIncident("77")
	f.repo.EXPECT().GetByID(gomock.Any(), inc.ID).Return(inc, nil)

	_, err := f.uc.Acknowledge(context.Background(), uuid.New(), "42", inc.ID)
	assert.ErrorIs(t, err, domainerr.ErrNotFound)
}

func TestGetByID_ComputesDuration(t *testing.T) {
	f, ctrl := setupUC(t)
	defer ctrl.Finish()

	inc := activeIncident("42")
	inc.CreatedAt = time.Now().UTC().Add(-90 * time.Minute)

	f.repo.EXPECT().GetByID(gomock.Any(), inc.ID).Return(inc, nil)

	got, err := f.uc.GetByID(context.Background(), uuid.New(), "42", inc.ID)
	require.NoError(t, err)
	assert.InDelta(t, 90, got.DurationMinutes, 1)
}

func TestListByTrip_DefaultsPagination(t *testing.T) {
	f, ctrl := setupUC(t)
	defer ctrl.Finish()

	f.repo.EXPECT().
		ListByTrip(gomock.Any(), "42", 1, 20).
		Return(&models.IncidentPage{Incidents: []*models.Incident{}, Page: 1, PerPage: 20}, nil)

	page, err := f.uc.ListByTrip(context.Background(), uuid.New(), "42", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.PerPage)
}
