package middleware

import (
	"net/http"
	"strconv"
	"time"

	"greenlake/internal/errors"
	"greenlake/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// RecordMetrics observes request latency per route template. Unmatched paths
// share one label so scanners cannot blow up the series count.
func RecordMetrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			// Not rendered yet when mounted inside the logger middleware
			var he *echo.HTTPError
			if errors.As(err, &he) {
				status = he.Code
			} else if status < http.StatusBadRequest {
				status = http.StatusInternalServerError
			}
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(c.Request().Method, route, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())

		return err
	}
}
