package tools

import (
	"github.com/averycrespi/calc-mcp/internal/session"
	"github.com/averycrespi/calc-mcp/pkg/calculator"
)

// NewPercentageTool creates the percentage tool
func NewPercentageTool(s *session.Session) *OperationTool {
	return newOperationTool(s, ToolPercentage, "Compute pct percent of value",
		calculator.OpPercentage, binary((*calculator.Calculator).Percentage),
		numberParam{name: "value", description: "Base value"},
		numberParam{name: "pct", description: "Non-negative percentage"},
	)
}

// NewCompoundInterestTool creates the compound interest tool
func NewCompoundInterestTool(s *session.Session) *OperationTool {
	return newOperationTool(s, ToolCompoundInterest,
		"Compute the final amount principal·(1+rate/freq)^(freq·time), rounded to the current precision",
		calculator.OpCompoundInterest,
		func(calc *calculator.Calculator, args []float64) (float64, error) {
			return calc.CompoundInterest(args[0], args[1], args[2], args[3])
		},
		numberParam{name: "principal", description: "Positive principal"},
		numberParam{name: "rate", description: "Non-negative rate per period, e.g. 0.05 for 5%"},
		numberParam{name: "time", description: "Non-negative number of periods"},
		numberParam{name: "compound_freq", description: "Compounding events per period", optional: true, defaultValue: 1},
	)
}

// NewSimpleInterestTool creates the simple interest tool
func NewSimpleInterestTool(s *session.Session) *OperationTool {
	return newOperationTool(s, ToolSimpleInterest, "Compute the simple interest principal·rate·time (interest only, not the total)",
		calculator.OpSimpleInterest,
		func(calc *calculator.Calculator, args []float64) (float64, error) {
			return calc.SimpleInterest(args[0], args[1], args[2])
		},
		numberParam{name: "principal", description: "Positive principal"},
		numberParam{name: "rate", description: "Non-negative rate per period"},
		numberParam{name: "time", description: "Non-negative number of periods"},
	)
}
