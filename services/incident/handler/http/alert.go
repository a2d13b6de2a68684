package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	domainerr "github.com/safetrip/tripwatch/internal/pkg/errors"
	"github.com/safetrip/tripwatch/internal/pkg/logger"
	"github.com/safetrip/tripwatch/internal/pkg/middleware"
	"github.com/safetrip/tripwatch/internal/pkg/models"
	"github.com/safetrip/tripwatch/internal/utils"
	"github.com/safetrip/tripwatch/services/incident"
)

// AlertHandler handles HTTP requests for incident operations
type AlertHandler struct {
	incidentUC incident.IncidentUC
}

// NewAlertHandler creates a new alert HTTP handler
func NewAlertHandler(incidentUC incident.IncidentUC) *AlertHandler {
	return &AlertHandler{
		incidentUC: incidentUC,
	}
}

type alertRef struct {
	tripID  string
	alertID uuid.UUID
	userID  uuid.UUID
}

// bindRef extracts the trip id, alert id and authenticated user shared
// by every per-alert route. A nil return means the response was already
// written.
func (h *AlertHandler) bindRef(c echo.Context) (*alertRef, error) {
	tripID := c.Param("tripId")
	if tripID == "" {
		return nil, utils.BadRequestResponse(c, "trip_id is required")
	}

	alertID, err := uuid.Parse(c.Param("alertId"))
	if err != nil {
		return nil, utils.BadRequestResponse(c, "invalid alert id")
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		return nil, utils.UnauthorizedResponse(c, "")
	}

	return &alertRef{tripID: tripID, alertID: alertID, userID: userID}, nil
}

// CreateAlert opens a new incident for a trip
func (h *AlertHandler) CreateAlert(c echo.Context) error {
	tripID := c.Param("tripId")
	if tripID == "" {
		return utils.BadRequestResponse(c, "trip_id is required")
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateAlertRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind alert request", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	inc, err := h.incidentUC.Create(c.Request().Context(), userID, tripID, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Alert created", map[string]interface{}{
		"alert_id": inc.ID,
	})
}

// ListAlerts returns one page of a trip's incidents
func (h *AlertHandler) ListAlerts(c echo.Context) error {
	tripID := c.Param("tripId")
	if tripID == "" {
		return utils.BadRequestResponse(c, "trip_id is required")
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))

	result, err := h.incidentUC.ListByTrip(c.Request().Context(), userID, tripID, page, perPage)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Alerts retrieved", result)
}

// GetAlert returns one incident
func (h *AlertHandler) GetAlert(c echo.Context) error {
	ref, err := h.bindRef(c)
	if ref == nil {
		return err
	}

	inc, err := h.incidentUC.GetByID(c.Request().Context(), ref.userID, ref.tripID, ref.alertID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Alert retrieved", inc)
}

// AcknowledgeAlert records the one-shot acknowledgement of an alert
func (h *AlertHandler) AcknowledgeAlert(c echo.Context) error {
	ref, err := h.bindRef(c)
	if ref == nil {
		return err
	}

	inc, err := h.incidentUC.Acknowledge(c.Request().Context(), ref.userID, ref.tripID, ref.alertID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Alert acknowledged", inc)
}

// RespondToAlert starts the response phase, or appends an action when
// the response is already underway.
func (h *AlertHandler) RespondToAlert(c echo.Context) error {
	ref, err := h.bindRef(c)
	if ref == nil {
		return err
	}

	var req struct {
		Action string `json:"action"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	ctx := c.Request().Context()
	inc, err := h.incidentUC.StartResponse(ctx, ref.userID, ref.tripID, ref.alertID, req.Action)
	if errors.Is(err, domainerr.ErrInvalidTransition) {
		// Already responding: treat the call as an audit append.
		inc, err = h.incidentUC.AddResponseAction(ctx, ref.userID, ref.tripID, ref.alertID, req.Action)
	}
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Response recorded", inc)
}

// EscalateAlert raises the severity of an alert
func (h *AlertHandler) EscalateAlert(c echo.Context) error {
	ref, err := h.bindRef(c)
	if ref == nil {
		return err
	}

	var req struct {
		Severity string `json:"severity"`
		Reason   string `json:"reason"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	inc, err := h.incidentUC.Escalate(c.Request().Context(), ref.userID, ref.tripID, ref.alertID, req.Severity, req.Reason)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Alert escalated", inc)
}

// ResolveAlert closes out the response phase of an alert
func (h *AlertHandler) ResolveAlert(c echo.Context) error {
	ref, err := h.bindRef(c)
	if ref == nil {
		return err
	}

	var req struct {
		Details string `json:"details"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	inc, err := h.incidentUC.Resolve(c.Request().Context(), ref.userID, ref.tripID, ref.alertID, req.Details)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Alert resolved", inc)
}

// CloseAlert archives a resolved alert
func (h *AlertHandler) CloseAlert(c echo.Context) error {
	ref, err := h.bindRef(c)
	if ref == nil {
		return err
	}

	inc, err := h.incidentUC.Close(c.Request().Context(), ref.userID, ref.tripID, ref.alertID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Alert closed", inc)
}
