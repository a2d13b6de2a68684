package handler

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/safetrip/tripwatch/internal/pkg/constants"
	domainerr "github.com/safetrip/tripwatch/internal/pkg/errors"
	"github.com/safetrip/tripwatch/internal/pkg/logger"
	"github.com/safetrip/tripwatch/internal/pkg/models"
	wspkg "github.com/safetrip/tripwatch/internal/pkg/websocket"
	"github.com/safetrip/tripwatch/services/stream"
)

// WebSocketHandler serves the live trip channel.
type WebSocketHandler struct {
	manager *wspkg.Manager
	router  *stream.Router
}

// NewWebSocketHandler creates a new websocket handler
func NewWebSocketHandler(manager *wspkg.Manager, router *stream.Router) *WebSocketHandler {
	return &WebSocketHandler{
		manager: manager,
		router:  router,
	}
}

// RegisterRoutes registers the websocket endpoint
func (h *WebSocketHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws", h.HandleWebSocket)
}

// HandleWebSocket authenticates the connection and runs its read loop.
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	return h.manager.HandleConnection(c, func(client *wspkg.Client, conn *websocket.Conn) error {
		sub := stream.NewSubscriber(client.UserID, client.Role, conn)
		defer h.router.LeaveAll(sub.ConnID)

		logger.Info("WebSocket connected",
			logger.String("user_id", client.UserID.String()),
			logger.String("conn_id", sub.ConnID.String()))

		ctx := c.Request().Context()
		for {
			var msg models.WSMessage
			if err := conn.ReadJSON(&msg); err != nil {
				if websocket.IsUnexpectedCloseError(err,
					websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					logger.Debug("WebSocket closed unexpectedly", logger.Err(err))
				}
				return nil
			}

			h.handleMessage(ctx, sub, &msg)
		}
	})
}

func (h *WebSocketHandler) handleMessage(ctx context.Context, sub *stream.Subscriber, msg *models.WSMessage) {
	switch msg.Type {
	case constants.EventJoin:
		h.handleJoin(ctx, sub, msg.Data)
	case constants.EventLeave:
		h.handleLeave(sub, msg.Data)
	case constants.EventSnapshot:
		h.handleSnapshot(ctx, sub, msg.Data)
	case constants.EventPing:
		if err := sub.Send(constants.EventPong, nil); err != nil {
			logger.Debug("Failed to send pong", logger.Err(err))
		}
	default:
		h.sendError(sub, constants.ErrorInvalidFormat, "unknown message type")
	}
}

func (h *WebSocketHandler) handleJoin(ctx context.Context, sub *stream.Subscriber, data json.RawMessage) {
	ref, ok := h.parseTripRef(sub, data)
	if !ok {
		return
	}

	if err := h.router.Join(ctx, sub, ref.TripID); err != nil {
		if errors.Is(err, domainerr.ErrAccessDenied) {
			h.sendError(sub, constants.ErrorAccessDenied, "not authorized for this trip")
			return
		}
		h.sendError(sub, constants.ErrorInternalError, "failed to join trip")
	}
}

func (h *WebSocketHandler) handleLeave(sub *stream.Subscriber, data json.RawMessage) {
	ref, ok := h.parseTripRef(sub, data)
	if !ok {
		return
	}
	h.router.Leave(sub.ConnID, ref.TripID)
}

func (h *WebSocketHandler) handleSnapshot(ctx context.Context, sub *stream.Subscriber, data json.RawMessage) {
	ref, ok := h.parseTripRef(sub, data)
	if !ok {
		return
	}

	if !h.router.Authorize(ctx, sub.UserID, ref.TripID) {
		h.sendError(sub, constants.ErrorAccessDenied, "not authorized for this trip")
		return
	}

	snapshot, err := h.router.Snapshot(ctx, ref.TripID)
	if err != nil {
		h.sendError(sub, constants.ErrorInternalError, "failed to assemble snapshot")
		return
	}

	if err := sub.Send(constants.EventSnapshot, snapshot); err != nil {
		logger.Debug("Failed to send snapshot", logger.Err(err))
	}
}

func (h *WebSocketHandler) parseTripRef(sub *stream.Subscriber, data json.RawMessage) (*models.WSTripRef, bool) {
	var ref models.WSTripRef
	if err := json.Unmarshal(data, &ref); err != nil || ref.TripID == "" {
		h.sendError(sub, constants.ErrorInvalidFormat, "trip_id is required")
		return nil, false
	}
	return &ref, true
}

func (h *WebSocketHandler) sendError(sub *stream.Subscriber, code, message string) {
	if err := sub.Send(constants.EventError, models.WSErrorMessage{Code: code, Message: message}); err != nil {
		logger.Debug("Failed to send websocket error", logger.Err(err))
	}
}
