package errs

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrDatabaseQuery      = errors.New("database query failed")
	ErrDatabaseConnection = errors.New("database connection failed")
	ErrDatabaseTimeout    = errors.New("database timeout")
	ErrUpstream           = errors.New("content store request failed")
)

// NewDatabaseError creates a new database error with details about the operation
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	details := fmt.Sprintf("Failed to %s %s", operation, entity)

	if cause != nil {
		switch {
		case errors.Is(cause, context.DeadlineExceeded):
			return &ApiErr{
				StatusCode: http.StatusGatewayTimeout,
				err:        ErrDatabaseTimeout,
				Details:    details,
				Cause:      cause,
			}
		case strings.Contains(cause.Error(), "connection"):
			return &ApiErr{
				StatusCode: http.StatusServiceUnavailable,
				err:        ErrDatabaseConnection,
				Details:    "Unable to connect to database",
				Cause:      cause,
			}
		}
	}

	// Generic database error
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrDatabaseQuery,
		Details:    details,
		Cause:      cause,
	}
}

// NewUpstreamError wraps a failed call to the hosted content store.
func NewUpstreamError(operation string, statusCode int, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrUpstream,
		Details:    fmt.Sprintf("%s returned status %d", operation, statusCode),
		Cause:      cause,
	}
}
