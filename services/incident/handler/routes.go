package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/safetrip/tripwatch/internal/pkg/middleware"
	"github.com/safetrip/tripwatch/internal/pkg/models"
	"github.com/safetrip/tripwatch/services/incident"
	httpHandler "github.com/safetrip/tripwatch/services/incident/handler/http"
)

// HTTPHandler combines all handlers for the incident service
type HTTPHandler struct {
	alertHTTP *httpHandler.AlertHandler
	cfg       *models.Config
}

// NewHTTPHandler creates a new combined handler
func NewHTTPHandler(incidentUC incident.IncidentUC, cfg *models.Config) *HTTPHandler {
	return &HTTPHandler{
		alertHTTP: httpHandler.NewAlertHandler(incidentUC),
		cfg:       cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *HTTPHandler) RegisterRoutes(e *echo.Echo) {
	trips := e.Group("/trips", middleware.JWTAuthMiddleware(h.cfg.JWT))

	trips.POST("/:tripId/alert", h.alertHTTP.CreateAlert)
	trips.GET("/:tripId/alerts", h.alertHTTP.ListAlerts)
	trips.GET("/:tripId/alerts/:alertId", h.alertHTTP.GetAlert)
	trips.POST("/:tripId/alerts/:alertId/acknowledge", h.alertHTTP.AcknowledgeAlert)
	trips.POST("/:tripId/alerts/:alertId/respond", h.alertHTTP.RespondToAlert)
	trips.POST("/:tripId/alerts/:alertId/escalate", h.alertHTTP.EscalateAlert)
	trips.POST("/:tripId/alerts/:alertId/resolve", h.alertHTTP.ResolveAlert)
	trips.POST("/:tripId/alerts/:alertId/close", h.alertHTTP.CloseAlert)
}
