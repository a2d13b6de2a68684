package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	domainerr "github.com/safetrip/tripwatch/internal/pkg/errors"
	"github.com/safetrip/tripwatch/internal/pkg/logger"
	"github.com/safetrip/tripwatch/internal/pkg/middleware"
	"github.com/safetrip/tripwatch/internal/pkg/models"
	"github.com/safetrip/tripwatch/internal/utils"
	"github.com/safetrip/tripwatch/services/telemetry"
)

// TelemetryHandler handles HTTP requests for position report operations
type TelemetryHandler struct {
	telemetryUC telemetry.TelemetryUC
	retryAfter  int
}

// NewTelemetryHandler creates a new telemetry HTTP handler. The
// retry-after hint mirrors the ingest rate-limit window in seconds.
func NewTelemetryHandler(telemetryUC telemetry.TelemetryUC, retryAfterSeconds int) *TelemetryHandler {
	return &TelemetryHandler{
		telemetryUC: telemetryUC,
		retryAfter:  retryAfterSeconds,
	}
}

// IngestLocation accepts one position report for a trip
func (h *TelemetryHandler) IngestLocation(c echo.Context) error {
	tripID := c.Param("tripId")
	if tripID == "" {
		return utils.BadRequestResponse(c, "trip_id is required")
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.IngestRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind ingest request", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	report, err := h.telemetryUC.Ingest(c.Request().Context(), userID, tripID, &req)
	if err != nil {
		if errors.Is(err, domainerr.ErrRateLimited) {
			return utils.TooManyRequestsResponse(c, err.Error(), h.retryAfter)
		}
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Location recorded", map[string]interface{}{
		"location_id": report.ID,
		"timestamp":   report.ServerTS,
	})
}

// GetLatestLocations returns the newest reports for a trip
func (h *TelemetryHandler) GetLatestLocations(c echo.Context) error {
	tripID := c.Param("tripId")
	if tripID == "" {
		return utils.BadRequestResponse(c, "trip_id is required")
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	limit := 0
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			return utils.BadRequestResponse(c, "invalid limit")
		}
		limit = parsed
	}

	reports, err := h.telemetryUC.LatestForTrip(c.Request().Context(), userID, tripID, limit)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Latest locations retrieved", reports)
}

// GetDeviceLocation returns the most recent report for one device
func (h *TelemetryHandler) GetDeviceLocation(c echo.Context) error {
	tripID := c.Param("tripId")
	deviceID := c.Param("deviceId")
	if tripID == "" || deviceID == "" {
		return utils.BadRequestResponse(c, "trip_id and device_id are required")
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	report, err := h.telemetryUC.LatestForDevice(c.Request().Context(), userID, tripID, deviceID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Device location retrieved", report)
}
