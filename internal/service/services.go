package service

import (
	"github.com/deppfellow/calculator-api/internal/server"
)

// Services groups the business layer.
type Services struct {
	Calculator *CalculatorService
}

// NewServices builds all services from the application container.
func NewServices(s *server.Server) *Services {
	return &Services{
		Calculator: NewCalculatorService(s),
	}
}
