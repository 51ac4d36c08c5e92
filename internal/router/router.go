// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API routes,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/deppfellow/calculator-api/internal/handler"
	"github.com/deppfellow/calculator-api/internal/middleware"
	"github.com/deppfellow/calculator-api/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the Echo instance with every middleware and route.
//
// Middleware order matters:
//   - RequestID first, so everything after can log it
//   - New Relic before EnhanceContext, so the logger gets trace ids
//   - RequestLogger and Metrics outside Recover, so panics are logged and counted as 500s
//   - BodyLimit last, right before the handler reads the body
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.Global.RequestLogger(),
		middlewares.Metrics.Observe(),
		middlewares.Global.Recover(),
		middlewares.Global.BodyLimit(),
	)

	registerSystemRoutes(router, s, h)

	api := router.Group("/api")
	registerCalculatorRoutes(api, h)

	return router
}
