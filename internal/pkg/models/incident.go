package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Incident statuses. Transitions are monotonic:
// active -> responding -> resolved -> closed, with resolved reachable
// directly from active.
const (
	IncidentActive     = "active"
	IncidentResponding = "responding"
	IncidentResolved   = "resolved"
	IncidentClosed     = "closed"
)

// Incident severities
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// Incident types
const (
	IncidentTypeMedical   = "medical"
	IncidentTypeSafety    = "safety"
	IncidentTypeWeather   = "weather"
	IncidentTypeTransport = "transport"
	IncidentTypeOther     = "other"
)

// ResponseAction is one entry in an incident's audit trail.
type ResponseAction struct {
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

// ResponseActions is the append-only ordered audit trail of an incident,
// serialized as JSON only at the storage boundary.
type ResponseActions []ResponseAction

// Value implements driver.Valuer for jsonb storage
func (a ResponseActions) Value() (driver.Value, error) {
	if a == nil {
		a = ResponseActions{}
	}
	return json.Marshal(a)
}

// Scan implements sql.Scanner for jsonb storage
func (a *ResponseActions) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*a = ResponseActions{}
		return nil
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return fmt.Errorf("unsupported type for ResponseActions: %T", src)
	}
}

// StringList is a jsonb-backed string slice (people affected, etc.)
type StringList []string

// Value implements driver.Valuer for jsonb storage
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner for jsonb storage
func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", src)
	}
}

// Incident is a reported safety event tied to a trip, tracked through a
// resolution lifecycle. Mutated only via the incident state machine and
// never deleted.
type Incident struct {
	ID                         uuid.UUID       `json:"id" db:"id"`
	TripID                     string          `json:"trip_id" db:"trip_id"`
	Title                      string          `json:"title" db:"title"`
	Description                string          `json:"description" db:"description"`
	Type                       string          `json:"type" db:"type"`
	Severity                   string          `json:"severity" db:"severity"`
	Status                     string          `json:"status" db:"status"`
	Latitude                   *float64        `json:"latitude,omitempty" db:"latitude"`
	Longitude                  *float64        `json:"longitude,omitempty" db:"longitude"`
	LocationDescription        string          `json:"location_description,omitempty" db:"location_description"`
	PeopleAffected             StringList      `json:"people_affected" db:"people_affected"`
	InjuriesReported           int             `json:"injuries_reported" db:"injuries_reported"`
	ResponseActions            ResponseActions `json:"response_actions" db:"response_actions"`
	EmergencyServicesContacted bool            `json:"emergency_services_contacted" db:"emergency_services_contacted"`
	ResolutionDetails          *string         `json:"resolution_details,omitempty" db:"resolution_details"`
	ResolvedAt                 *time.Time      `json:"resolved_at,omitempty" db:"resolved_at"`
	ReportedBy                 uuid.UUID       `json:"reported_by" db:"reported_by"`
	ReporterPhone              *string         `json:"reporter_phone,omitempty" db:"reporter_phone"`
	ContactPersonID            uuid.UUID       `json:"contact_person_id" db:"contact_person_id"`
	Acknowledged               bool            `json:"acknowledged" db:"acknowledged"`
	AcknowledgedBy             *uuid.UUID      `json:"acknowledged_by,omitempty" db:"acknowledged_by"`
	CreatedAt                  time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt                  time.Time       `json:"updated_at" db:"updated_at"`
	DurationMinutes            int64           `json:"duration_minutes" db:"-"`
}

// ComputeDuration fills DurationMinutes as (resolvedAt ?? now) - createdAt.
func (i *Incident) ComputeDuration(now time.Time) {
	end := now
	if i.ResolvedAt != nil {
		end = *i.ResolvedAt
	}
	i.DurationMinutes = int64(end.Sub(i.CreatedAt).Minutes())
}

// CreateAlertRequest is the body of POST /trips/:tripId/alert.
type CreateAlertRequest struct {
	Message             string     `json:"message"`
	Severity            string     `json:"severity,omitempty"`
	AlertType           string     `json:"alert_type,omitempty"`
	Latitude            *float64   `json:"lat,omitempty"`
	Longitude           *float64   `json:"lon,omitempty"`
	LocationDescription string     `json:"location_description,omitempty"`
	PeopleAffected      []string   `json:"people_affected,omitempty"`
	InjuriesReported    int        `json:"injuries_reported,omitempty"`
	ReporterPhone       string     `json:"reporter_phone,omitempty"`
	ContactPersonID     *uuid.UUID `json:"contact_person_id,omitempty"`
}

// IncidentPage is one page of a trip's incident list.
type IncidentPage struct {
	Incidents []*Incident `json:"incidents"`
	Total     int         `json:"total"`
	Page      int         `json:"page"`
	PerPage   int         `json:"per_page"`
}

// ValidSeverity reports whether s is a known severity value.
func ValidSeverity(s string) bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// ValidIncidentType reports whether t is a known incident type.
func ValidIncidentType(t string) bool {
	switch t {
	case IncidentTypeMedical, IncidentTypeSafety, IncidentTypeWeather, IncidentTypeTransport, IncidentTypeOther:
		return true
	}
	return false
}
