package router

import (
	"github.com/deppfellow/calculator-api/internal/handler"
	"github.com/deppfellow/calculator-api/internal/server"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the
// calculation API itself: health, metrics and docs.
func registerSystemRoutes(r *echo.Echo, s *server.Server, h *handler.Handlers) {
	r.GET("/api/health", h.Health.CheckHealth)

	r.GET("/metrics", echo.WrapHandler(s.Metrics.Handler()))

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
	r.GET("/static/openapi.json", h.OpenAPI.ServeOpenAPISpec)
}
