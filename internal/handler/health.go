package handler

import (
	"net/http"

	"github.com/deppfellow/calculator-api/internal/middleware"
	"github.com/deppfellow/calculator-api/internal/model"
	"github.com/deppfellow/calculator-api/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthHandler serves the liveness endpoint.
type HealthHandler struct {
	Handler
}

// NewHealthHandler constructs a HealthHandler with access to shared app dependencies.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth always answers 200 {"status":"ok"}. The service has no
// dependencies whose state could make it unhealthy.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	middleware.GetLogger(c).Debug().
		Str("operation", "health_check").
		Str("environment", h.server.Config.Primary.Env).
		Msg("health check passed")

	return c.JSON(http.StatusOK, model.HealthResponse{Status: "ok"})
}
