package models

import "encoding/json"

// WSMessage represents a WebSocket message structure
type WSMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// WSErrorMessage represents an error message sent over WebSocket
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WSTripRef carries the trip id for join/leave/snapshot requests and
// join confirmations.
type WSTripRef struct {
	TripID string `json:"trip_id"`
}
