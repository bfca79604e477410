// Package handler contains the HTTP handlers of the API.
package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"greenlake/internal/delivery/api/response"
	deliverycontext "greenlake/internal/delivery/context"
	domainerrors "greenlake/internal/domain/errors"
	"greenlake/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Date accepts either a calendar date (2006-01-02) or an RFC 3339 timestamp.
type Date struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.WithStack(err)
	}

	for _, layout := range []string{time.DateOnly, time.RFC3339Nano} {
		if t, err := time.Parse(layout, raw); err == nil {
			d.Time = t.UTC()

			return nil
		}
	}

	return errors.Errorf("invalid date %q", raw)
}

// timePtr returns nil for an absent or zero date.
func (d *Date) timePtr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time

	return &t
}

// bindAndValidate binds the request body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.WrapDomainErrorWithDetails(domainerrors.ErrValidationFailed, err, "malformed request body")
	}

	return c.Validate(req)
}

// currentUserID returns the subject set by the auth middleware.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return userID, nil
}

// parseID parses a UUID taken from the path or the query string.
func parseID(raw, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.WrapDomainErrorWithDetails(domainerrors.ErrValidationFailed, err, "invalid "+name)
	}

	return id, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
