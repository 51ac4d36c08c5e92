package handler

import (
	"github.com/deppfellow/calculator-api/internal/server"
	"github.com/deppfellow/calculator-api/internal/service"
)

// Handlers is a container that groups all HTTP handlers.
type Handlers struct {
	Calculator *CalculatorHandler
	Health     *HealthHandler
	OpenAPI    *OpenAPIHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Calculator: NewCalculatorHandler(s, services.Calculator),
		Health:     NewHealthHandler(s),
		OpenAPI:    NewOpenAPIHandler(s),
	}
}
