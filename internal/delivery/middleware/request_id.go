package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "greenlake/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	maxRequestIDLength = 128

	// headerCloudTrace is set by Cloud Run and the Pub/Sub push client as
	// "TRACE_ID/SPAN_ID;o=OPTIONS".
	headerCloudTrace = "X-Cloud-Trace-Context"
)

// RequestIDMiddleware assigns every request an ID and a request-scoped logger
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process reuses the caller's X-Request-Id, then the Cloud trace ID, and
// otherwise generates one. The ID is echoed back and attached to the logger.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header
		requestID := sanitizeRequestID(header.Get(deliverycontext.HeaderXRequestID))
		if requestID == "" {
			traceID, _, _ := strings.Cut(header.Get(headerCloudTrace), "/")
			requestID = sanitizeRequestID(traceID)
		}
		if requestID == "" {
			requestID = uuid.New().String()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		reqLogger := m.logger.With(slog.String("request_id", requestID))

		ctx := c.Request().Context()
		ctx = deliverycontext.WithRequestID(ctx, requestID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// sanitizeRequestID drops IDs that are too long or carry characters unsafe
// for log lines and response headers.
func sanitizeRequestID(id string) string {
	id = strings.TrimSpace(id)
	if len(id) > maxRequestIDLength {
		return ""
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.', r == ':':
		default:
			return ""
		}
	}

	return id
}
