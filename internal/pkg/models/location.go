package models

import (
	"time"

	"github.com/google/uuid"
)

// Report kinds describe why a device sent a position sample.
const (
	KindCheckin       = "checkin"
	KindWaypoint      = "waypoint"
	KindAccommodation = "accommodation"
	KindActivity      = "activity"
	KindEmergency     = "emergency"
)

// PositionReport is one telemetry sample from a device during a trip.
// Reports are append-only and never mutated after creation.
type PositionReport struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	TripID         string     `json:"trip_id" db:"trip_id"`
	DeviceID       string     `json:"device_id" db:"device_id"`
	DeviceType     string     `json:"device_type" db:"device_type"`
	Latitude       float64    `json:"latitude" db:"latitude"`
	Longitude      float64    `json:"longitude" db:"longitude"`
	Altitude       *float64   `json:"altitude,omitempty" db:"altitude"`
	Accuracy       *float64   `json:"accuracy,omitempty" db:"accuracy"`
	Speed          *float64   `json:"speed,omitempty" db:"speed"`
	Heading        *float64   `json:"heading,omitempty" db:"heading"`
	BatteryLevel   *float64   `json:"battery_level,omitempty" db:"battery_level"`
	SignalStrength *float64   `json:"signal_strength,omitempty" db:"signal_strength"`
	Geohash        string     `json:"geohash,omitempty" db:"geohash"`
	Kind           string     `json:"kind" db:"kind"`
	Valid          bool       `json:"valid" db:"valid"`
	SafeZone       bool       `json:"safe_zone" db:"safe_zone"`
	ClientTS       *time.Time `json:"client_timestamp,omitempty" db:"client_ts"`
	ServerTS       time.Time  `json:"server_timestamp" db:"server_ts"`
}

// IngestRequest is the body of POST /trips/:tripId/location.
// Timestamp is client epoch milliseconds; zero means "use server clock".
type IngestRequest struct {
	Latitude       float64  `json:"lat"`
	Longitude      float64  `json:"lon"`
	DeviceID       string   `json:"device_id"`
	DeviceType     string   `json:"device_type,omitempty"`
	Altitude       *float64 `json:"altitude,omitempty"`
	Accuracy       *float64 `json:"accuracy,omitempty"`
	Speed          *float64 `json:"speed,omitempty"`
	Heading        *float64 `json:"heading,omitempty"`
	BatteryLevel   *float64 `json:"battery_level,omitempty"`
	SignalStrength *float64 `json:"signal_strength,omitempty"`
	Kind           string   `json:"kind,omitempty"`
	Timestamp      int64    `json:"timestamp,omitempty"`
}
