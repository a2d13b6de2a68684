package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerr "github.com/safetrip/tripwatch/internal/pkg/errors"
	"github.com/safetrip/tripwatch/internal/pkg/models"
	"github.com/safetrip/tripwatch/services/incident/mocks"
)

func newAlertContext(method, target, body string, userID uuid.UUID, names, values []string) (echo.Context, *httptest.ResponseRecorder) {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	c.Set("user_id", userID)
	return c, rec
}

func TestCreateAlert_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockIncidentUC(ctrl)
	handler := NewAlertHandler(uc)
	userID := uuid.New()

	inc := &models.Incident{ID: uuid.New(), TripID: "42", Status: models.IncidentActive}
	uc.EXPECT().
		Create(gomock.Any(), userID, "42", gomock.Any()).
		Return(inc, nil)

	c, rec := newAlertContext(http.MethodPost, "/trips/42/alert",
		`{"message": "Student unwell", "severity": "high"}`,
		userID, []string{"tripId"}, []string{"42"})

	require.NoError(t, handler.CreateAlert(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Data struct {
			AlertID string `json:"alert_id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, inc.ID.String(), resp.Data.AlertID)
}

func TestCreateAlert_MissingMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockIncidentUC(ctrl)
	handler := NewAlertHandler(uc)
	userID := uuid.New()

	uc.EXPECT().
		Create(gomock.Any(), userID, "42", gomock.Any()).
		Return(nil, domainerr.ErrMissingMessage)

	c, rec := newAlertContext(http.MethodPost, "/trips/42/alert", `{}`,
		userID, []string{"tripId"}, []string{"42"})

	require.NoError(t, handler.CreateAlert(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAcknowledgeAlert_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockIncidentUC(ctrl)
	handler := NewAlertHandler(uc)
	userID := uuid.New()
	alertID := uuid.New()

	uc.EXPECT().
		Acknowledge(gomock.Any(), userID, "42", alertID).
		Return(nil, domainerr.ErrAlreadyAcknowledged)

	c, rec := newAlertContext(http.MethodPost, "/trips/42/alerts/"+alertID.String()+"/acknowledge", "",
		userID, []string{"tripId", "alertId"}, []string{"42", alertID.String()})

	require.NoError(t, handler.AcknowledgeAlert(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAcknowledgeAlert_BadAlertID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewAlertHandler(mocks.NewMockIncidentUC(ctrl))

	c, rec := newAlertContext(http.MethodPost, "/trips/42/alerts/not-a-uuid/acknowledge", "",
		uuid.New(), []string{"tripId", "alertId"}, []string{"42", "not-a-uuid"})

	require.NoError(t, handler.AcknowledgeAlert(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRespondToAlert_FallsBackToAuditAppend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockIncidentUC(ctrl)
	handler := NewAlertHandler(uc)
	userID := uuid.New()
	alertID := uuid.New()

	inc := &models.Incident{ID: alertID, TripID: "42", Status: models.IncidentResponding}
	uc.EXPECT().
		StartResponse(gomock.Any(), userID, "42", alertID, "parents contacted").
		Return(nil, domainerr.ErrInvalidTransition)
	uc.EXPECT().
		AddResponseAction(gomock.Any(), userID, "42", alertID, "parents contacted").
		Return(inc, nil)

	c, rec := newAlertContext(http.MethodPost, "/trips/42/alerts/"+alertID.String()+"/respond",
		`{"action": "parents contacted"}`,
		userID, []string{"tripId", "alertId"}, []string{"42", alertID.String()})

	require.NoError(t, handler.RespondToAlert(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCloseAlert_InvalidTransition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockIncidentUC(ctrl)
	handler := NewAlertHandler(uc)
	userID := uuid.New()
	alertID := uuid.New()

	uc.EXPECT().
		Close(gomock.Any(), userID, "42", alertID).
		Return(nil, domainerr.ErrInvalidTransition)

	c, rec := newAlertContext(http.MethodPost, "/trips/42/alerts/"+alertID.String()+"/close", "",
		userID, []string{"tripId", "alertId"}, []string{"42", alertID.String()})

	require.NoError(t, handler.CloseAlert(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListAlerts_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockIncidentUC(ctrl)
	handler := NewAlertHandler(uc)
	userID := uuid.New()

	uc.EXPECT().
		ListByTrip(gomock.Any(), userID, "42", 0, 0).
		Return(nil, domainerr.ErrAccessDenied)

	c, rec := newAlertContext(http.MethodGet, "/trips/42/alerts", "",
		userID, []string{"tripId"}, []string{"42"})

	require.NoError(t, handler.ListAlerts(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
