package errors

import (
	"net/http"

	"wildnav/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches on the business error code so that copies made by WithDetails
// still compare equal to the predefined error.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Sighting-related errors
	ErrSightingFetchFailed = NewBaseError(
		http.StatusBadGateway,
		"SIGHTING_FETCH_FAILED",
		"Failed to fetch sightings",
		"",
	)

	ErrInvalidBoundingBox = NewBaseError(
		http.StatusBadRequest,
		"INVALID_BOUNDING_BOX",
		"Invalid bounding box",
		"",
	)

	ErrInvalidTimeWindow = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TIME_WINDOW",
		"Invalid time window",
		"",
	)

	// Navigation-related errors
	ErrSessionNotFound = NewBaseError(
		http.StatusNotFound,
		"SESSION_NOT_FOUND",
		"Navigation session not found",
		"",
	)

	ErrSessionAlreadyActive = NewBaseError(
		http.StatusConflict,
		"SESSION_ALREADY_ACTIVE",
		"A navigation session is already active",
		"",
	)

	ErrNoWaypoints = NewBaseError(
		http.StatusBadRequest,
		"NO_WAYPOINTS",
		"At least one waypoint is required",
		"",
	)

	ErrUnknownWaypoint = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_WAYPOINT",
		"Waypoint is not part of the current selection",
		"",
	)

	ErrNoPosition = NewBaseError(
		http.StatusConflict,
		"NO_POSITION",
		"Current position is not known yet",
		"",
	)

	ErrInvalidCoordinate = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COORDINATE",
		"Coordinate is outside valid ranges",
		"",
	)

	ErrNavigationNotActive = NewBaseError(
		http.StatusConflict,
		"NAVIGATION_NOT_ACTIVE",
		"Navigation is not in progress",
		"",
	)

	ErrNoPendingArrival = NewBaseError(
		http.StatusConflict,
		"NO_PENDING_ARRIVAL",
		"There is no arrival waiting for confirmation",
		"",
	)

	// Directions-related errors
	ErrDirectionsUnavailable = NewBaseError(
		http.StatusBadGateway,
		"DIRECTIONS_UNAVAILABLE",
		"Directions could not be retrieved",
		"",
	)

	ErrNoPathFound = NewBaseError(
		http.StatusNotFound,
		"NO_PATH_FOUND",
		"No walking path found between the points",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// UpstreamError represents a failed call to an external service, implementing the AppError interface
type UpstreamError struct {
	err     error
	service string
}

// NewUpstreamError creates an upstream-service error
func NewUpstreamError(err error, service string) AppError {
	return &UpstreamError{
		err:     err,
		service: service,
	}
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	return errors.Wrapf(e.err, "%s request failed", e.service).Error()
}

// Unwrap exposes the underlying cause
func (e *UpstreamError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *UpstreamError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *UpstreamError) ErrorCode() string {
	return "UPSTREAM_FAILED"
}

// Message returns the user-friendly error message
func (e *UpstreamError) Message() string {
	return "Upstream service request failed"
}

// Details returns detailed error information
func (e *UpstreamError) Details() string {
	return e.service
}
