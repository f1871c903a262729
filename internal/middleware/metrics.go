package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gti/resource-planner/internal/metrics"
)

// Metrics records request counts and latencies by route pattern
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}

			metrics.RecordHTTPRequest(
				c.Request().Method,
				path,
				strconv.Itoa(c.Response().Status),
				time.Since(start).Seconds(),
			)
			return nil
		}
	}
}
