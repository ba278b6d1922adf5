package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// ContextKey types the values the delivery layer threads through a request,
// keeping them from colliding with other packages' context keys.
type ContextKey string

const (
	keyRequestID ContextKey = "request_id"
	keyLogger    ContextKey = "logger"
)

// RequestIDHeader carries the request ID on the wire, inbound and outbound.
const RequestIDHeader = "X-Request-Id"

// StampRequestID records the ID on the echo context and propagates it into
// the request's context.Context for the layers below the handlers.
func StampRequestID(c echo.Context, requestID string) {
	c.Set(string(keyRequestID), requestID)

	ctx := context.WithValue(c.Request().Context(), keyRequestID, requestID)
	c.SetRequest(c.Request().WithContext(ctx))
}

// RequestIDFromContext reports the request ID, or "" for work that never
// passed through the request-ID middleware.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)

	return id
}

// WithLogger returns a context carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to the
// component logger for work running outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok {
		return logger
	}

	return fallback
}
