package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/safetrip/tripwatch/internal/pkg/middleware"
	"github.com/safetrip/tripwatch/internal/pkg/models"
	"github.com/safetrip/tripwatch/internal/utils"
	"github.com/safetrip/tripwatch/services/stream"
)

// SnapshotHandler serves the pull-based trip snapshot over REST for
// clients that do not hold a websocket open.
type SnapshotHandler struct {
	router *stream.Router
	cfg    *models.Config
}

// NewSnapshotHandler creates a new snapshot HTTP handler
func NewSnapshotHandler(router *stream.Router, cfg *models.Config) *SnapshotHandler {
	return &SnapshotHandler{
		router: router,
		cfg:    cfg,
	}
}

// RegisterRoutes registers the snapshot route
func (h *SnapshotHandler) RegisterRoutes(e *echo.Echo) {
	trips := e.Group("/trips", middleware.JWTAuthMiddleware(h.cfg.JWT))
	trips.GET("/:tripId/snapshot", h.GetSnapshot)
}

// GetSnapshot returns the trip's latest locations and active incidents
func (h *SnapshotHandler) GetSnapshot(c echo.Context) error {
	tripID := c.Param("tripId")
	if tripID == "" {
		return utils.BadRequestResponse(c, "trip_id is required")
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	ctx := c.Request().Context()
	if !h.router.Authorize(ctx, userID, tripID) {
		return utils.ForbiddenResponse(c, "")
	}

	snapshot, err := h.router.Snapshot(ctx, tripID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Snapshot assembled", snapshot)
}
