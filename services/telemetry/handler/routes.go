package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/safetrip/tripwatch/internal/pkg/middleware"
	"github.com/safetrip/tripwatch/internal/pkg/models"
	"github.com/safetrip/tripwatch/services/telemetry"
	httpHandler "github.com/safetrip/tripwatch/services/telemetry/handler/http"
)

// HTTPHandler combines all handlers for the telemetry service
type HTTPHandler struct {
	telemetryHTTP *httpHandler.TelemetryHandler
	cfg           *models.Config
}

// NewHTTPHandler creates a new combined handler
func NewHTTPHandler(telemetryUC telemetry.TelemetryUC, cfg *models.Config) *HTTPHandler {
	return &HTTPHandler{
		telemetryHTTP: httpHandler.NewTelemetryHandler(telemetryUC, cfg.RateLimit.WindowSeconds),
		cfg:           cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *HTTPHandler) RegisterRoutes(e *echo.Echo) {
	trips := e.Group("/trips", middleware.JWTAuthMiddleware(h.cfg.JWT))

	trips.POST("/:tripId/location", h.telemetryHTTP.IngestLocation)
	trips.GET("/:tripId/locations/latest", h.telemetryHTTP.GetLatestLocations)
	trips.GET("/:tripId/devices/:deviceId/location", h.telemetryHTTP.GetDeviceLocation)
}
