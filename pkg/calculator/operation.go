package calculator

// Operation identifies a calculator operation in history and diagnostics
type Operation string

const (
	OpAdd              Operation = "ADD"
	OpSubtract         Operation = "SUBTRACT"
	OpMultiply         Operation = "MULTIPLY"
	OpDivide           Operation = "DIVIDE"
	OpPower            Operation = "POWER"
	OpFactorial        Operation = "FACTORIAL"
	OpSqrt             Operation = "SQRT"
	OpMean             Operation = "MEAN"
	OpPercentage       Operation = "PERCENTAGE"
	OpCompoundInterest Operation = "COMPOUND_INTEREST"
	OpSimpleInterest   Operation = "SIMPLE_INTEREST"

	// Diagnostic-only operations; they never appear in history.
	OpCircleArea         Operation = "CIRCLE_AREA"
	OpCirclePerimeter    Operation = "CIRCLE_PERIMETER"
	OpRectanglePerimeter Operation = "RECTANGLE_PERIMETER"
	OpSin                Operation = "SIN"
	OpCos                Operation = "COS"
	OpDegreesToRadians   Operation = "DEGREES_TO_RADIANS"
	OpMedian             Operation = "MEDIAN"
	OpMode               Operation = "MODE"
	OpClearHistory       Operation = "CLEAR_HISTORY"
	OpSetPrecision       Operation = "SET_PRECISION"
)

var operationSymbols = map[Operation]string{
	OpAdd:       "+",
	OpSubtract:  "-",
	OpMultiply:  "×",
	OpDivide:    "÷",
	OpPower:     "^",
	OpFactorial: "!",
	OpSqrt:      "√",
}

// Symbol returns the display symbol of the operation, or its tag when it has none
func (o Operation) Symbol() string {
	if symbol, ok := operationSymbols[o]; ok {
		return symbol
	}
	return string(o)
}

// String returns the operation tag
func (o Operation) String() string {
	return string(o)
}

// recordPolicy says whether an operation appends to history on its general
// path and on its shortcut returns.
type recordPolicy struct {
	general  bool
	fastPath bool
}

// historyPolicy is the per-operation recording table. Operations that are
// missing from the table never record.
var historyPolicy = map[Operation]recordPolicy{
	OpAdd:              {general: true, fastPath: true},
	OpSubtract:         {general: true},
	OpMultiply:         {general: true, fastPath: false},
	OpDivide:           {general: true},
	OpPower:            {general: true, fastPath: false},
	OpFactorial:        {general: true, fastPath: false},
	OpSqrt:             {general: true, fastPath: true},
	OpMean:             {general: true},
	OpPercentage:       {general: true},
	OpCompoundInterest: {general: true},
	OpSimpleInterest:   {general: true},
}

// Records reports whether the operation appends a history entry on its general path
func (o Operation) Records() bool {
	return historyPolicy[o].general
}

// RecordsFastPath reports whether a shortcut return of the operation appends a history entry
func (o Operation) RecordsFastPath() bool {
	return historyPolicy[o].fastPath
}
