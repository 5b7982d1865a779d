package tools

import (
	"github.com/averycrespi/calc-mcp/internal/session"
	"github.com/averycrespi/calc-mcp/pkg/calculator"
)

// NewAddTool creates the addition tool
func NewAddTool(s *session.Session) *OperationTool {
	return newOperationTool(s, ToolAdd,
		"Add two finite numbers. Fails with an overflow error when the sum leaves the safe integer range (±2^53-1).",
		calculator.OpAdd, binary((*calculator.Calculator).Add),
		numberParam{name: "a", description: "First number"},
		numberParam{name: "b", description: "Second number"},
	)
}

// NewSubtractTool creates the subtraction tool
func NewSubtractTool(s *session.Session) *OperationTool {
	return newOperationTool(s, ToolSubtract, "Subtract b from a",
		calculator.OpSubtract, binary((*calculator.Calculator).Subtract),
		numberParam{name: "a", description: "Minuend"},
		numberParam{name: "b", description: "Subtrahend"},
	)
}

// NewMultiplyTool creates the multiplication tool
func NewMultiplyTool(s *session.Session) *OperationTool {
	return newOperationTool(s, ToolMultiply, "Multiply two finite numbers",
		calculator.OpMultiply, binary((*calculator.Calculator).Multiply),
		numberParam{name: "a", description: "First factor"},
		numberParam{name: "b", description: "Second factor"},
	)
}

// NewDivideTool creates the division tool
func NewDivideTool(s *session.Session) *OperationTool {
	return newOperationTool(s, ToolDivide,
		"Divide dividend by divisor, rounding the quotient to the current precision (half to even)",
		calculator.OpDivide, binary((*calculator.Calculator).Divide),
		numberParam{name: "dividend", description: "Number to be divided"},
		numberParam{name: "divisor", description: "Number to divide by, must not be zero"},
	)
}

// NewPowerTool creates the exponentiation tool
func NewPowerTool(s *session.Session) *OperationTool {
	return newOperationTool(s, ToolPower, "Raise base to exponent. Zero raised to a negative power is undefined.",
		calculator.OpPower, binary((*calculator.Calculator).Power),
		numberParam{name: "base", description: "Base number"},
		numberParam{name: "exponent", description: "Exponent"},
	)
}

// NewFactorialTool creates the factorial tool
func NewFactorialTool(s *session.Session) *OperationTool {
	return newOperationTool(s, ToolFactorial, "Compute n! for a non-negative integer n no greater than 170",
		calculator.OpFactorial, unary((*calculator.Calculator).Factorial),
		numberParam{name: "n", description: "Non-negative integer"},
	)
}

// NewSqrtTool creates the square root tool
func NewSqrtTool(s *session.Session) *OperationTool {
	return newOperationTool(s, ToolSqrt, "Compute the principal square root of a non-negative number",
		calculator.OpSqrt, unary((*calculator.Calculator).Sqrt),
		numberParam{name: "n", description: "Non-negative number"},
	)
}
