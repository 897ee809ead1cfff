package server

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/husen-2346/vehical-insurance-backend/internal/metrics"
)

// metricsMiddleware records request counts and latency per route. It sits
// outside the error middleware so the recorded status is the one actually
// written to the client.
func metricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		route := c.Path()
		method := c.Request().Method
		status := c.Response().Status

		metrics.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

		return err
	}
}
