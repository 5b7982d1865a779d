package calculator

import (
	"errors"
	"fmt"
)

// Error kinds returned by calculator operations. Callers match them with errors.Is.
var (
	ErrValidation     = errors.New("validation error")
	ErrDivisionByZero = errors.New("division by zero")
	ErrOverflow       = errors.New("overflow")
	ErrDomain         = errors.New("domain error")
)

func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func overflowf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrOverflow, fmt.Sprintf(format, args...))
}
