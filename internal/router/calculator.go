package router

import (
	"github.com/deppfellow/calculator-api/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerCalculatorRoutes(api *echo.Group, h *handler.Handlers) {
	api.POST("/calculate", h.Calculator.Calculate())
	api.GET("/operations", h.Calculator.ListOperations)
}
