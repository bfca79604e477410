// Package context carries per-request values between the echo pipeline, the
// handlers and the usecases that only see a context.Context.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the HTTP header name for request ID.
const HeaderXRequestID = "X-Request-Id"

// echo.Context keys
const (
	echoKeyRequestID = "request_id"
	echoKeyUserID    = "user_id"
)

type contextKey int

// context.Context keys
const (
	keyRequestID contextKey = iota
	keyLogger
)

// GetRequestID returns the request ID stored in echo.Context. A request that
// bypassed the request ID middleware gets one assigned on first use, so every
// response envelope of that request reports the same ID.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoKeyRequestID).(string); ok && id != "" {
		return id
	}

	id := uuid.New().String()
	SetRequestID(c, id)

	return id
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoKeyRequestID, requestID)
}

// GetRequestIDFromContext returns the request ID, or "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)

	return id
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// SetUserID stores the authenticated user ID in echo.Context.
func SetUserID(c echo.Context, userID uuid.UUID) {
	c.Set(echoKeyUserID, userID)
}

// GetUserID returns the authenticated user ID, if the auth middleware ran.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(echoKeyUserID).(uuid.UUID)

	return id, ok && id != uuid.Nil
}
