// Package calculator holds the arithmetic the API exposes.
//
// Every operation takes two float64 operands and returns either a result
// or a *DomainError. The functions are pure, so they can be called from
// any number of goroutines.
package calculator

import "sort"

// Func is the single capability every operation shares.
type Func func(a, b float64) (float64, error)

// Operation names accepted by Lookup.
const (
	OpAdd      = "add"
	OpSubtract = "subtract"
	OpMultiply = "multiply"
	OpDivide   = "divide"
)

// operations is the name→function dispatch table. It is never written after init.
var operations = map[string]Func{
	OpAdd:      Add,
	OpSubtract: Subtract,
	OpMultiply: Multiply,
	OpDivide:   Divide,
}

// Add returns a + b.
func Add(a, b float64) (float64, error) {
	return a + b, nil
}

// Subtract returns a - b.
func Subtract(a, b float64) (float64, error) {
	return a - b, nil
}

// Multiply returns a * b.
func Multiply(a, b float64) (float64, error) {
	return a * b, nil
}

// Divide returns a / b, or ErrDivisionByZero when b is zero.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// Lookup returns the operation registered under name.
func Lookup(name string) (Func, bool) {
	fn, ok := operations[name]
	return fn, ok
}

// Operations returns the registered operation names in sorted order.
func Operations() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
