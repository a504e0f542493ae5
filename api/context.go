package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// requestLogger tags logger with the id chi assigned to the request.
func requestLogger(r *http.Request, logger zerolog.Logger) zerolog.Logger {
	if id := middleware.GetReqID(r.Context()); id != "" {
		return logger.With().Str("requestID", id).Logger()
	}
	return logger
}

// requestContext bounds the store calls a handler makes. A zero timeout
// leaves the request context as is.
func requestContext(r *http.Request, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), timeout)
}
