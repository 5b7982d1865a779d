package results

import (
	"errors"

	"github.com/averycrespi/calc-mcp/pkg/calculator"
)

// ErrorKind classifies a failed calculation
type ErrorKind string

const (
	ErrorKindValidation     ErrorKind = "validation"
	ErrorKindDivisionByZero ErrorKind = "division_by_zero"
	ErrorKindOverflow       ErrorKind = "overflow"
	ErrorKindDomain         ErrorKind = "domain"
	ErrorKindUnknown        ErrorKind = "unknown"
)

var errorKinds = []struct {
	err  error
	kind ErrorKind
}{
	{calculator.ErrValidation, ErrorKindValidation},
	{calculator.ErrDivisionByZero, ErrorKindDivisionByZero},
	{calculator.ErrOverflow, ErrorKindOverflow},
	{calculator.ErrDomain, ErrorKindDomain},
}

// NewErrorKind returns the ErrorKind for an error returned by the calculator
func NewErrorKind(err error) ErrorKind {
	for _, candidate := range errorKinds {
		if errors.Is(err, candidate.err) {
			return candidate.kind
		}
	}
	return ErrorKindUnknown
}

// ErrorResult represents a failed tool call
type ErrorResult struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// NewErrorResult builds the ErrorResult for err
func NewErrorResult(err error) ErrorResult {
	return ErrorResult{Kind: NewErrorKind(err), Message: err.Error()}
}
