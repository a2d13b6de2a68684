package utils

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	domainerr "github.com/safetrip/tripwatch/internal/pkg/errors"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// ForbiddenResponse sends a 403 Forbidden response
func ForbiddenResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Forbidden"
	}
	return ErrorResponseHandler(c, http.StatusForbidden, errorMessage)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// ConflictResponse sends a 409 Conflict response
func ConflictResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusConflict, errorMessage)
}

// TooManyRequestsResponse sends a 429 Too Many Requests response with a
// Retry-After hint in seconds
func TooManyRequestsResponse(c echo.Context, errorMessage string, retryAfterSeconds int) error {
	if retryAfterSeconds > 0 {
		c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))
	}
	return ErrorResponseHandler(c, http.StatusTooManyRequests, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}

// DomainErrorResponse maps a domain error to its HTTP representation.
func DomainErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domainerr.ErrInvalidCoordinates),
		errors.Is(err, domainerr.ErrInvalidDevice),
		errors.Is(err, domainerr.ErrMissingMessage),
		errors.Is(err, domainerr.ErrInvalidSeverity),
		errors.Is(err, domainerr.ErrInvalidTransition):
		return BadRequestResponse(c, err.Error())
	case errors.Is(err, domainerr.ErrAccessDenied):
		return ForbiddenResponse(c, err.Error())
	case errors.Is(err, domainerr.ErrRateLimited):
		return TooManyRequestsResponse(c, err.Error(), 0)
	case errors.Is(err, domainerr.ErrAlreadyAcknowledged):
		return ConflictResponse(c, err.Error())
	case errors.Is(err, domainerr.ErrNotFound):
		return NotFoundResponse(c, err.Error())
	default:
		return InternalServerErrorResponse(c, "")
	}
}
