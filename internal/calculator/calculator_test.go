package calculator

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	cases := []struct{ a, b, want float64 }{
		{2, 3, 5},
		{10, 20, 30},
		{-5, -3, -8},
		{-10, 5, -5},
		{0, 5, 5},
		{5, 0, 5},
	}
	for _, tc := range cases {
		got, err := Add(tc.a, tc.b)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}

	a, b := 0.1, 0.2
	got, err := Add(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, got, 1e-9)
	assert.Equal(t, a+b, got)
}

func TestSubtract(t *testing.T) {
	cases := []struct{ a, b, want float64 }{
		{10, 3, 7},
		{-5, -3, -2},
		{10, -5, 15},
		{5, 0, 5},
		{0, 5, -5},
	}
	for _, tc := range cases {
		got, err := Subtract(tc.a, tc.b)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}

	got, err := Subtract(5.5, 2.3)
	require.NoError(t, err)
	assert.InDelta(t, 3.2, got, 1e-9)
}

func TestMultiply(t *testing.T) {
	cases := []struct{ a, b, want float64 }{
		{3, 4, 12},
		{-3, 4, -12},
		{-3, -4, 12},
		{5, 0, 0},
		{2.5, 4, 10},
		{0.5, 0.5, 0.25},
	}
	for _, tc := range cases {
		got, err := Multiply(tc.a, tc.b)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestDivide(t *testing.T) {
	cases := []struct{ a, b, want float64 }{
		{10, 2, 5},
		{-10, 2, -5},
		{-10, -2, 5},
		{7.5, 2.5, 3},
		{0, 5, 0},
		{0, -3, 0},
	}
	for _, tc := range cases {
		got, err := Divide(tc.a, tc.b)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}

	got, err := Divide(1, 3)
	require.NoError(t, err)
	assert.InDelta(t, 0.333333, got, 1e-5)
}

func TestDivideByZero(t *testing.T) {
	for _, a := range []float64{10, -1, 0, math.MaxFloat64} {
		_, err := Divide(a, 0)
		require.Error(t, err)
		assert.Equal(t, "Cannot divide by zero", err.Error())
		assert.ErrorIs(t, err, ErrDivisionByZero)

		var domainErr *DomainError
		assert.True(t, errors.As(err, &domainErr))
	}

	// negative zero compares equal to zero
	_, err := Divide(1, math.Copysign(0, -1))
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestLookup(t *testing.T) {
	for _, name := range []string{OpAdd, OpSubtract, OpMultiply, OpDivide} {
		fn, ok := Lookup(name)
		require.True(t, ok, name)
		require.NotNil(t, fn)
	}

	fn, ok := Lookup(OpMultiply)
	require.True(t, ok)
	got, err := fn(6, 7)
	require.NoError(t, err)
	assert.Equal(t, 42.0, got)

	for _, name := range []string{"modulo", "", "ADD", " add"} {
		_, ok := Lookup(name)
		assert.False(t, ok, name)
	}
}

func TestOperations(t *testing.T) {
	assert.Equal(t, []string{"add", "divide", "multiply", "subtract"}, Operations())

	// callers get their own copy
	ops := Operations()
	ops[0] = "modulo"
	_, ok := Lookup("modulo")
	assert.False(t, ok)
	assert.Equal(t, "add", Operations()[0])
}
