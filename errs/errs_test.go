package errs

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApiErrMessageAndDetails(t *testing.T) {
	err := NewEnvironmentVariableError("SANITY_PROJECT_ID")

	assert.Equal(t, "environment variable error", err.Message())
	assert.Contains(t, err.Error(), "SANITY_PROJECT_ID")
	assert.Equal(t, "SANITY_PROJECT_ID", err.Field)
	assert.True(t, errors.Is(err, ErrEnvironmentVariable))
}

func TestGetFullErrorFollowsCauses(t *testing.T) {
	inner := NewDatabaseError("load", "blog", errors.New("boom"))
	outer := NewInternalError("Failed to update like count")
	outer.Cause = inner

	assert.Equal(t, "Failed to update like count -> database query failed: Failed to load blog -> boom", outer.GetFullError())
}

func TestNewDatabaseErrorClassifiesCause(t *testing.T) {
	timeout := NewDatabaseError("increment", "like count", fmt.Errorf("query: %w", context.DeadlineExceeded))
	assert.Equal(t, http.StatusGatewayTimeout, timeout.StatusCode)
	assert.True(t, errors.Is(timeout, ErrDatabaseTimeout))

	conn := NewDatabaseError("read", "blog", errors.New("dial tcp: connection refused"))
	assert.Equal(t, http.StatusServiceUnavailable, conn.StatusCode)

	generic := NewDatabaseError("read", "blog", errors.New("syntax error"))
	assert.Equal(t, http.StatusInternalServerError, generic.StatusCode)
}

func TestUpstreamErrorWrapsSentinel(t *testing.T) {
	err := NewUpstreamError("query", http.StatusTooManyRequests, errors.New("rate limited"))

	assert.Equal(t, http.StatusBadGateway, err.StatusCode)
	assert.True(t, errors.Is(err, ErrUpstream))
	assert.Contains(t, err.Error(), "status 429")
}
