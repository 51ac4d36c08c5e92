package model

import (
	"bytes"
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/deppfellow/calculator-api/internal/calculator"
	"github.com/deppfellow/calculator-api/internal/errs"
	"github.com/deppfellow/calculator-api/internal/validation"
)

// Client-facing validation messages.
const (
	MsgNoData              = "No data provided"
	MsgMissingFields       = "Missing required fields: operation, a, b"
	MsgInvalidNumberFormat = "Invalid number format"
	MsgInvalidOperation    = "Invalid operation: "
)

// maxEchoedOperation caps how much of a rejected operation name is echoed back.
const maxEchoedOperation = 64

// decimalPattern is the accepted shape of a number sent as a JSON string.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// calculateFields is the raw body. A nil field was absent or null.
type calculateFields struct {
	Operation json.RawMessage `json:"operation" validate:"required"`
	A         json.RawMessage `json:"a" validate:"required"`
	B         json.RawMessage `json:"b" validate:"required"`
}

// CalculateRequest is the body of POST /api/calculate.
//
// BindJSON keeps the raw fields; Validate checks them in a fixed order and
// fills Operation, A and B:
//
//  1. body missing / not an object / empty -> "No data provided"
//  2. operation, a or b absent or null     -> "Missing required fields: operation, a, b"
//  3. a or b not coercible to a float      -> "Invalid number format"
//  4. unknown operation                    -> "Invalid operation: <operation>"
type CalculateRequest struct {
	Operation string
	A         float64
	B         float64

	raw calculateFields
}

// BindJSON decodes body as a JSON object and keeps the three known fields.
func (r *CalculateRequest) BindJSON(body []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || len(fields) == 0 {
		return errs.NewBadRequestError(MsgNoData)
	}

	r.raw = calculateFields{
		Operation: present(fields["operation"]),
		A:         present(fields["a"]),
		B:         present(fields["b"]),
	}
	return nil
}

// Validate implements validation.Validatable.
func (r *CalculateRequest) Validate() error {
	if err := validation.Struct(&r.raw); err != nil {
		return errs.NewBadRequestError(MsgMissingFields)
	}

	a, ok := coerceFloat(r.raw.A)
	if !ok {
		return errs.NewBadRequestError(MsgInvalidNumberFormat)
	}
	b, ok := coerceFloat(r.raw.B)
	if !ok {
		return errs.NewBadRequestError(MsgInvalidNumberFormat)
	}

	operation := operationName(r.raw.Operation)
	if _, ok := calculator.Lookup(operation); !ok {
		return errs.NewBadRequestError(MsgInvalidOperation + truncate(operation, maxEchoedOperation))
	}

	r.Operation = operation
	r.A = a
	r.B = b
	return nil
}

// CalculationResult is the success body of POST /api/calculate.
type CalculationResult struct {
	Result    float64 `json:"result"`
	Operation string  `json:"operation"`
	A         float64 `json:"a"`
	B         float64 `json:"b"`
}

// present maps a JSON null to nil so it counts as missing.
func present(raw json.RawMessage) json.RawMessage {
	if raw == nil || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}
	return raw
}

// coerceFloat accepts JSON numbers, decimal strings and booleans.
// Non-finite values are rejected because they cannot be written back as JSON.
func coerceFloat(raw json.RawMessage) (float64, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return 0, false
	}

	var (
		f   float64
		err error
	)
	switch x := v.(type) {
	case json.Number:
		f, err = strconv.ParseFloat(x.String(), 64)
	case string:
		s := strings.TrimSpace(x)
		if !decimalPattern.MatchString(s) {
			return 0, false
		}
		f, err = strconv.ParseFloat(s, 64)
	case bool:
		if x {
			f = 1
		}
	default:
		return 0, false
	}

	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// operationName returns the operation as a string. Non-string values are
// rendered with their compact JSON text.
func operationName(raw json.RawMessage) string {
	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		return name
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return string(raw)
	}
	return compact.String()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
