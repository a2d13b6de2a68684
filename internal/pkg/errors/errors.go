package errors

import "errors"

// Domain errors for the trip monitoring core. Handlers translate these
// to HTTP status codes; callers match with errors.Is.
var (
	ErrInvalidCoordinates  = errors.New("latitude must be within [-90,90] and longitude within [-180,180]")
	ErrInvalidDevice       = errors.New("device_id is required")
	ErrMissingMessage      = errors.New("message is required")
	ErrAccessDenied        = errors.New("access denied for trip")
	ErrRateLimited         = errors.New("location update rate limit exceeded")
	ErrInvalidTransition   = errors.New("invalid incident status transition")
	ErrAlreadyAcknowledged = errors.New("incident already acknowledged")
	ErrNotFound            = errors.New("resource not found")
	ErrInvalidSeverity     = errors.New("invalid severity value")
)
