package handler

import (
	"net/http"

	"github.com/deppfellow/calculator-api/internal/calculator"
	"github.com/deppfellow/calculator-api/internal/model"
	"github.com/deppfellow/calculator-api/internal/server"
	"github.com/deppfellow/calculator-api/internal/service"
	"github.com/labstack/echo/v4"
)

type CalculatorHandler struct {
	Handler
	calculatorService *service.CalculatorService
}

func NewCalculatorHandler(s *server.Server, calculatorService *service.CalculatorService) *CalculatorHandler {
	return &CalculatorHandler{
		Handler:           NewHandler(s),
		calculatorService: calculatorService,
	}
}

// Calculate serves POST /api/calculate.
func (h *CalculatorHandler) Calculate() echo.HandlerFunc {
	return Handle(
		h.Handler,
		func(c echo.Context, req *model.CalculateRequest) (*model.CalculationResult, error) {
			return h.calculatorService.Calculate(c.Request().Context(), req)
		},
		http.StatusOK,
		func() *model.CalculateRequest { return &model.CalculateRequest{} },
	)
}

// ListOperations serves GET /api/operations.
func (h *CalculatorHandler) ListOperations(c echo.Context) error {
	return c.JSON(http.StatusOK, model.OperationsResponse{
		Operations: calculator.Operations(),
	})
}
