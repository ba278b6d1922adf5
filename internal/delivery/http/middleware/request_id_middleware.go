package middleware

import (
	"log/slog"

	deliverycontext "inventory/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware tags every request with an ID and derives a
// request-scoped logger from it.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware is the constructor for RequestIDMiddleware.
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{logger: logger}
}

// Process honors an inbound X-Request-Id header, minting a fresh UUID when
// the caller sent none, and echoes the ID back on the response. The derived
// logger rides the request context so every layer logs under the same ID.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		deliverycontext.StampRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.RequestIDHeader, requestID)

		reqLogger := m.logger.With(slog.String("request_id", requestID))
		ctx := deliverycontext.WithLogger(c.Request().Context(), reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
