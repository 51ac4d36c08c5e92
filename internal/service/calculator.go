package service

import (
	"context"
	"math"

	"github.com/deppfellow/calculator-api/internal/calculator"
	"github.com/deppfellow/calculator-api/internal/errs"
	"github.com/deppfellow/calculator-api/internal/metrics"
	"github.com/deppfellow/calculator-api/internal/model"
	"github.com/deppfellow/calculator-api/internal/server"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/pkg/errors"
)

type CalculatorService struct {
	server *server.Server
}

func NewCalculatorService(s *server.Server) *CalculatorService {
	return &CalculatorService{server: s}
}

// Calculate runs a validated request.
//
// A *calculator.DomainError becomes a 400 carrying its message. Any other
// failure, including a result that is not a finite number, is returned as a
// plain error and ends up as a 500.
func (s *CalculatorService) Calculate(ctx context.Context, req *model.CalculateRequest) (*model.CalculationResult, error) {
	fn, ok := calculator.Lookup(req.Operation)
	if !ok {
		s.server.Metrics.ObserveCalculation(req.Operation, metrics.OutcomeError)
		return nil, errors.Errorf("no function registered for operation %q", req.Operation)
	}

	result, err := fn(req.A, req.B)
	if err != nil {
		var domainErr *calculator.DomainError
		if errors.As(err, &domainErr) {
			s.server.Metrics.ObserveCalculation(req.Operation, metrics.OutcomeDomainError)
			return nil, errs.NewBadRequestError(domainErr.Message)
		}

		s.server.Metrics.ObserveCalculation(req.Operation, metrics.OutcomeError)
		return nil, errors.Wrapf(err, "%s failed", req.Operation)
	}

	if math.IsInf(result, 0) || math.IsNaN(result) {
		s.server.Metrics.ObserveCalculation(req.Operation, metrics.OutcomeError)
		return nil, errors.Errorf("result of %s is not a finite number", req.Operation)
	}

	s.server.Metrics.ObserveCalculation(req.Operation, metrics.OutcomeSuccess)

	if txn := newrelic.FromContext(ctx); txn != nil {
		txn.AddAttribute("calculation.operation", req.Operation)
	}

	return &model.CalculationResult{
		Result:    result,
		Operation: req.Operation,
		A:         req.A,
		B:         req.B,
	}, nil
}
