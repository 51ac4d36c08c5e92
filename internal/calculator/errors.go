package calculator

// DomainError reports valid operands that the operation cannot accept.
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// ErrDivisionByZero is returned by Divide when the divisor is zero.
var ErrDivisionByZero = &DomainError{Message: "Cannot divide by zero"}
