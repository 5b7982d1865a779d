package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/internal/session"
	"github.com/averycrespi/calc-mcp/pkg/calculator"

	"github.com/mark3labs/mcp-go/mcp"
)

// numberParam describes one numeric argument of an operation tool
type numberParam struct {
	name         string
	description  string
	optional     bool
	defaultValue float64
}

// computeFunc runs an operation with arguments in numberParam order
type computeFunc func(calc *calculator.Calculator, args []float64) (float64, error)

// OperationTool handles calculator operations that take numbers and return one number
type OperationTool struct {
	session     *session.Session
	name        string
	description string
	operation   calculator.Operation
	params      []numberParam
	compute     computeFunc
}

// GetTool returns the MCP tool definition
func (t *OperationTool) GetTool() mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(t.description)}
	for _, p := range t.params {
		propertyOpts := []mcp.PropertyOption{mcp.Description(p.description)}
		if p.optional {
			propertyOpts = append(propertyOpts, mcp.DefaultNumber(p.defaultValue))
		} else {
			propertyOpts = append(propertyOpts, mcp.Required())
		}
		opts = append(opts, mcp.WithNumber(p.name, propertyOpts...))
	}
	return mcp.NewTool(t.name, opts...)
}

// Handle processes the tool request
func (t *OperationTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := make([]float64, len(t.params))
	arguments := make(map[string]any, len(t.params))
	for i, p := range t.params {
		var (
			value float64
			err   error
		)
		if p.optional {
			value, err = GetOptionalNumber(req, p.name, p.defaultValue)
		} else {
			value, err = GetNumber(req, p.name)
		}
		if err != nil {
			return errorResult(err)
		}
		args[i] = value
		arguments[p.name] = value
	}

	outcome, err := t.session.Compute(func(calc *calculator.Calculator) (float64, error) {
		return t.compute(calc, args)
	})
	if err != nil {
		return errorResult(err)
	}

	return jsonResult(results.OperationResult{
		Operation: t.operation,
		Arguments: arguments,
		Result:    results.Number(outcome.Result),
		Precision: outcome.Precision,
		Recorded:  outcome.Recorded,
		Message:   fmt.Sprintf("Computed %s.", t.operation),
	})
}

func newOperationTool(s *session.Session, name, description string, op calculator.Operation, compute computeFunc, params ...numberParam) *OperationTool {
	return &OperationTool{
		session:     s,
		name:        name,
		description: description,
		operation:   op,
		params:      params,
		compute:     compute,
	}
}

func binary(fn func(calc *calculator.Calculator, a, b float64) (float64, error)) computeFunc {
	return func(calc *calculator.Calculator, args []float64) (float64, error) {
		return fn(calc, args[0], args[1])
	}
}

func unary(fn func(calc *calculator.Calculator, x float64) (float64, error)) computeFunc {
	return func(calc *calculator.Calculator, args []float64) (float64, error) {
		return fn(calc, args[0])
	}
}
