package constants

// WebSocket event types pushed to trip observers
const (
	EventJoined            = "joined"
	EventError             = "error"
	EventPing              = "ping"
	EventPong              = "pong"
	EventSnapshot          = "snapshot"
	EventLocationUpdate    = "location_update"
	EventTripAlert         = "trip_alert"
	EventAlertAcknowledged = "alert_acknowledged"
	EventAlertUpdate       = "alert_update"
)

// WebSocket event types received from clients. A snapshot request and
// its response share the "snapshot" event name.
const (
	EventJoin  = "join"
	EventLeave = "leave"
)

// WebSocket error codes
const (
	ErrorInvalidFormat = "invalid_format"
	ErrorUnauthorized  = "unauthorized"
	ErrorAccessDenied  = "access_denied"
	ErrorInternalError = "internal_error"
)
