package service

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/calculator-api/internal/config"
	"github.com/deppfellow/calculator-api/internal/errs"
	"github.com/deppfellow/calculator-api/internal/model"
	"github.com/deppfellow/calculator-api/internal/server"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *CalculatorService {
	t.Helper()

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	logger := zerolog.Nop()
	s, err := server.New(cfg, &logger, nil)
	require.NoError(t, err)

	return NewServices(s).Calculator
}

func TestCalculate(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.Calculate(context.Background(), &model.CalculateRequest{Operation: "add", A: 2, B: 3})
	require.NoError(t, err)
	assert.Equal(t, &model.CalculationResult{Result: 5, Operation: "add", A: 2, B: 3}, res)

	res, err = svc.Calculate(context.Background(), &model.CalculateRequest{Operation: "divide", A: 0, B: 4})
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Result)
}

func TestCalculate_DivisionByZero(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Calculate(context.Background(), &model.CalculateRequest{Operation: "divide", A: 1, B: 0})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Cannot divide by zero", httpErr.Message)
}

func TestCalculate_NonFiniteResult(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Calculate(context.Background(), &model.CalculateRequest{Operation: "multiply", A: math.MaxFloat64, B: 2})
	require.Error(t, err)
	assert.EqualError(t, err, "result of multiply is not a finite number")

	var httpErr *errs.HTTPError
	assert.False(t, errors.As(err, &httpErr))
}

func TestCalculate_UnknownOperation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Calculate(context.Background(), &model.CalculateRequest{Operation: "modulo", A: 1, B: 2})
	assert.Error(t, err)
}

func TestCalculate_RecordsOutcomes(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, _ = svc.Calculate(ctx, &model.CalculateRequest{Operation: "add", A: 1, B: 1})
	_, _ = svc.Calculate(ctx, &model.CalculateRequest{Operation: "divide", A: 1, B: 0})
	_, _ = svc.Calculate(ctx, &model.CalculateRequest{Operation: "multiply", A: math.MaxFloat64, B: 2})

	rec := httptest.NewRecorder()
	svc.server.Metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	assert.Contains(t, body, `calculator_calculations_total{operation="add",outcome="success"} 1`)
	assert.Contains(t, body, `calculator_calculations_total{operation="divide",outcome="domain_error"} 1`)
	assert.Contains(t, body, `calculator_calculations_total{operation="multiply",outcome="error"} 1`)
}
