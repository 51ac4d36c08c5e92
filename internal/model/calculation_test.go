package model

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/deppfellow/calculator-api/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bindAndValidate runs both phases the way validation.BindAndValidate does.
func bindAndValidate(body string) (*CalculateRequest, error) {
	req := &CalculateRequest{}
	if err := req.BindJSON([]byte(body)); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}

func requireBadRequest(t *testing.T, err error, message string) {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %v", err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, message, httpErr.Message)
}

func TestCalculateRequest_Valid(t *testing.T) {
	req, err := bindAndValidate(`{"operation":"add","a":2,"b":3}`)
	require.NoError(t, err)
	assert.Equal(t, "add", req.Operation)
	assert.Equal(t, 2.0, req.A)
	assert.Equal(t, 3.0, req.B)
}

func TestCalculateRequest_Coercion(t *testing.T) {
	cases := []struct {
		body string
		a, b float64
	}{
		{`{"operation":"add","a":"2.5","b":" 3 "}`, 2.5, 3},
		{`{"operation":"add","a":1e3,"b":-0.5}`, 1000, -0.5},
		{`{"operation":"add","a":"-1E2","b":".5"}`, -100, 0.5},
		{`{"operation":"add","a":true,"b":false}`, 1, 0},
		{`{"operation":"add","a":0,"b":"7."}`, 0, 7},
	}
	for _, tc := range cases {
		req, err := bindAndValidate(tc.body)
		require.NoError(t, err, tc.body)
		assert.Equal(t, tc.a, req.A, tc.body)
		assert.Equal(t, tc.b, req.B, tc.body)
	}
}

func TestCalculateRequest_NoData(t *testing.T) {
	for _, body := range []string{``, `   `, `null`, `{}`, `[]`, `[1,2]`, `5`, `"add"`, `{"operation":`, `not json`} {
		_, err := bindAndValidate(body)
		requireBadRequest(t, err, MsgNoData)
	}
}

func TestCalculateRequest_MissingFields(t *testing.T) {
	for _, body := range []string{
		`{"a":1,"b":2}`,
		`{"operation":"add","b":2}`,
		`{"operation":"add","a":1}`,
		`{"operation":null,"a":1,"b":2}`,
		`{"operation":"add","a":null,"b":2}`,
		`{"other":1}`,
		// presence is checked before number format and operation
		`{"operation":"modulo","a":"x"}`,
	} {
		_, err := bindAndValidate(body)
		requireBadRequest(t, err, MsgMissingFields)
	}
}

func TestCalculateRequest_InvalidNumberFormat(t *testing.T) {
	for _, body := range []string{
		`{"operation":"add","a":"x","b":2}`,
		`{"operation":"add","a":1,"b":"two"}`,
		`{"operation":"add","a":[1],"b":2}`,
		`{"operation":"add","a":{"v":1},"b":2}`,
		`{"operation":"add","a":"","b":2}`,
		`{"operation":"add","a":"inf","b":2}`,
		`{"operation":"add","a":"NaN","b":2}`,
		`{"operation":"add","a":"0x10","b":2}`,
		`{"operation":"add","a":1e400,"b":2}`,
		// number format is checked before the operation name
		`{"operation":"modulo","a":"x","b":2}`,
	} {
		_, err := bindAndValidate(body)
		requireBadRequest(t, err, MsgInvalidNumberFormat)
	}
}

func TestCalculateRequest_InvalidOperation(t *testing.T) {
	cases := map[string]string{
		`{"operation":"modulo","a":1,"b":2}`: "Invalid operation: modulo",
		`{"operation":"ADD","a":1,"b":2}`:    "Invalid operation: ADD",
		`{"operation":"","a":1,"b":2}`:       "Invalid operation: ",
		`{"operation":5,"a":1,"b":2}`:        "Invalid operation: 5",
		`{"operation":[ "add" ],"a":1,"b":2}`: `Invalid operation: ["add"]`,
	}
	for body, message := range cases {
		_, err := bindAndValidate(body)
		requireBadRequest(t, err, message)
	}
}

func TestCalculateRequest_InvalidOperationIsTruncated(t *testing.T) {
	long := strings.Repeat("x", 500)
	_, err := bindAndValidate(`{"operation":"` + long + `","a":1,"b":2}`)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, MsgInvalidOperation+strings.Repeat("x", maxEchoedOperation)+"...", httpErr.Message)
}
