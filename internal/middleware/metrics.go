package middleware

import (
	"time"

	"github.com/deppfellow/calculator-api/internal/server"
	"github.com/labstack/echo/v4"
)

// unmatchedRoute labels requests that hit no registered route, so scanners
// cannot blow up the route label's cardinality.
const unmatchedRoute = "unmatched"

// MetricsMiddleware records one duration observation per request.
type MetricsMiddleware struct {
	server *server.Server
}

// NewMetricsMiddleware constructs MetricsMiddleware.
func NewMetricsMiddleware(s *server.Server) *MetricsMiddleware {
	return &MetricsMiddleware{server: s}
}

// Observe measures the request and reports it under its route template.
func (mm *MetricsMiddleware) Observe() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			status := c.Response().Status
			if err != nil {
				status = StatusFromError(err)
			}

			route := c.Path()
			if route == "" || !isRegistered(c) {
				route = unmatchedRoute
			}

			mm.server.Metrics.ObserveRequest(c.Request().Method, route, status, time.Since(start))
			return err
		}
	}
}

// isRegistered reports whether the matched path belongs to a real route
// rather than Echo's not-found fallback.
func isRegistered(c echo.Context) bool {
	for _, r := range c.Echo().Routes() {
		if r.Path == c.Path() {
			return true
		}
	}
	return false
}
