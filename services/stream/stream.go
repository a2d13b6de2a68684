package stream

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/safetrip/tripwatch/internal/pkg/models"
)

// Conn is the minimal write surface the router needs from a websocket
// connection. *websocket.Conn satisfies it.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// Subscriber is one live observer connection. A subscriber may join
// several trips under the same connection id.
type Subscriber struct {
	ConnID   uuid.UUID
	UserID   uuid.UUID
	Role     string
	JoinedAt time.Time

	conn Conn
	mu   sync.Mutex
}

// NewSubscriber wraps a connection for registry bookkeeping.
func NewSubscriber(userID uuid.UUID, role string, conn Conn) *Subscriber {
	return &Subscriber{
		ConnID:   uuid.New(),
		UserID:   userID,
		Role:     role,
		JoinedAt: time.Now().UTC(),
		conn:     conn,
	}
}

// Send writes one event envelope to the connection. Writes are
// serialized per connection; gorilla connections do not allow
// concurrent writers.
func (s *Subscriber) Send(event string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(models.WSMessage{Type: event, Data: data})
}

// Close closes the underlying connection.
func (s *Subscriber) Close() error {
	return s.conn.Close()
}

// AccessChecker authorizes a user for a trip at join time.
type AccessChecker interface {
	CanAccess(ctx context.Context, userID uuid.UUID, tripID string) bool
}

// LocationSource supplies the latest position reports for snapshots.
type LocationSource interface {
	LatestForTrip(ctx context.Context, tripID string, limit int) ([]*models.PositionReport, error)
}

// IncidentSource supplies the unresolved incidents for snapshots.
type IncidentSource interface {
	ActiveByTrip(ctx context.Context, tripID string) ([]*models.Incident, error)
}

// Snapshot is the pull-based current state of a trip.
type Snapshot struct {
	TripID          string                   `json:"trip_id"`
	LatestLocations []*models.PositionReport `json:"latest_locations"`
	ActiveIncidents []*models.Incident       `json:"active_incidents"`
}
