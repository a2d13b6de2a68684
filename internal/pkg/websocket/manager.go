package websocket

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/safetrip/tripwatch/internal/pkg/jwt"
	"github.com/safetrip/tripwatch/internal/pkg/logger"
	"github.com/safetrip/tripwatch/internal/pkg/models"
)

// Client is an authenticated WebSocket peer.
type Client struct {
	UserID uuid.UUID
	Role   string
}

// Manager authenticates and upgrades WebSocket connections
type Manager struct {
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		cfg: jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates and handles a new WebSocket connection
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*Client, *websocket.Conn) error) error {
	client, err := m.authenticateClient(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	return handleClient(client, ws)
}

// authenticateClient authenticates the WebSocket client using JWT. The
// token comes from the Authorization header, or from a ?token= query
// parameter for browser clients that cannot set headers on upgrade.
func (m *Manager) authenticateClient(c echo.Context) (*Client, error) {
	tokenString := ""

	if authHeader := c.Request().Header.Get("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}
		tokenString = parts[1]
	} else if token := c.QueryParam("token"); token != "" {
		tokenString = token
	}

	if tokenString == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization is required")
	}

	claims, err := jwtpkg.ValidateToken(tokenString, m.cfg.Secret)
	if err != nil {
		logger.Warn("Token validation failed", logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	userID, err := uuid.Parse(fmt.Sprintf("%v", (*claims)["user_id"]))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token: user_id is not a valid UUID")
	}

	return &Client{
		UserID: userID,
		Role:   fmt.Sprintf("%v", (*claims)["role"]),
	}, nil
}
