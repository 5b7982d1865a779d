package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/internal/session"
	"github.com/averycrespi/calc-mcp/pkg/calculator"

	"github.com/mark3labs/mcp-go/mcp"
)

const numbersParam = "numbers"

func withNumbers() mcp.ToolOption {
	return mcp.WithArray(numbersParam,
		mcp.Required(),
		mcp.Description("Non-empty array of finite numbers"),
		mcp.Items(map[string]any{"type": "number"}),
	)
}

// SampleTool handles statistics over an array of numbers that return one number
type SampleTool struct {
	session     *session.Session
	name        string
	description string
	operation   calculator.Operation
	compute     func(calc *calculator.Calculator, numbers []float64) (float64, error)
}

// NewMeanTool creates the mean tool
func NewMeanTool(s *session.Session) *SampleTool {
	return &SampleTool{
		session:     s,
		name:        ToolMean,
		description: "Compute the arithmetic mean of an array of numbers",
		operation:   calculator.OpMean,
		compute:     (*calculator.Calculator).Mean,
	}
}

// NewMedianTool creates the median tool
func NewMedianTool(s *session.Session) *SampleTool {
	return &SampleTool{
		session:     s,
		name:        ToolMedian,
		description: "Compute the median of an array of numbers. Not recorded in history.",
		operation:   calculator.OpMedian,
		compute:     (*calculator.Calculator).Median,
	}
}

// GetTool returns the MCP tool definition
func (t *SampleTool) GetTool() mcp.Tool {
	return mcp.NewTool(t.name,
		mcp.WithDescription(t.description),
		withNumbers(),
	)
}

// Handle processes the tool request
func (t *SampleTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	numbers, err := GetNumbers(req, numbersParam)
	if err != nil {
		return errorResult(err)
	}

	outcome, err := t.session.Compute(func(calc *calculator.Calculator) (float64, error) {
		return t.compute(calc, numbers)
	})
	if err != nil {
		return errorResult(err)
	}

	return jsonResult(results.OperationResult{
		Operation: t.operation,
		Arguments: map[string]any{numbersParam: numbers},
		Result:    results.Number(outcome.Result),
		Precision: outcome.Precision,
		Recorded:  outcome.Recorded,
		Message:   fmt.Sprintf("Computed %s of %d number(s).", t.operation, len(numbers)),
	})
}

// ModeTool handles mode requests
type ModeTool struct {
	session *session.Session
}

// NewModeTool creates the mode tool
func NewModeTool(s *session.Session) *ModeTool {
	return &ModeTool{session: s}
}

// GetTool returns the MCP tool definition
func (t *ModeTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolMode,
		mcp.WithDescription("Find every value with the highest frequency, in ascending order. Not recorded in history."),
		withNumbers(),
	)
}

// Handle processes the tool request
func (t *ModeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	numbers, err := GetNumbers(req, numbersParam)
	if err != nil {
		return errorResult(err)
	}

	var modes []float64
	err = t.session.Do(func(calc *calculator.Calculator) error {
		var err error
		modes, err = calc.Mode(numbers)
		return err
	})
	if err != nil {
		return errorResult(err)
	}

	return jsonResult(results.ModeResult{
		Numbers: results.NewNumbers(numbers),
		Modes:   results.NewNumbers(modes),
		Message: fmt.Sprintf("Found %d mode(s).", len(modes)),
	})
}
