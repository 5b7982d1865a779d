package tools

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/pkg/calculator"
	"github.com/mark3labs/mcp-go/mcp"
)

// ToNumber converts a decoded JSON argument into a float64
func ToNumber(name string, value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %s must be a number, got %q", calculator.ErrValidation, name, v.String())
		}
		return f, nil
	case nil:
		return 0, fmt.Errorf("%w: %s parameter is required", calculator.ErrValidation, name)
	default:
		return 0, fmt.Errorf("%w: %s must be a number, got %T", calculator.ErrValidation, name, value)
	}
}

// GetNumber extracts a required number argument from an MCP request
func GetNumber(req mcp.CallToolRequest, name string) (float64, error) {
	return ToNumber(name, mcp.ParseArgument(req, name, nil))
}

// GetOptionalNumber extracts a number argument, falling back to defaultValue when absent
func GetOptionalNumber(req mcp.CallToolRequest, name string, defaultValue float64) (float64, error) {
	value := mcp.ParseArgument(req, name, nil)
	if value == nil {
		return defaultValue, nil
	}
	return ToNumber(name, value)
}

// GetNumbers extracts a required array of numbers from an MCP request
func GetNumbers(req mcp.CallToolRequest, name string) ([]float64, error) {
	value := mcp.ParseArgument(req, name, nil)
	if value == nil {
		return nil, fmt.Errorf("%w: %s parameter is required", calculator.ErrValidation, name)
	}

	var items []any
	switch v := value.(type) {
	case []any:
		items = v
	case []float64:
		return append([]float64(nil), v...), nil
	default:
		return nil, fmt.Errorf("%w: %s must be an array of numbers, got %T", calculator.ErrValidation, name, value)
	}

	numbers := make([]float64, 0, len(items))
	for i, item := range items {
		n, err := ToNumber(fmt.Sprintf("%s[%d]", name, i), item)
		if err != nil {
			return nil, err
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

// GetInteger extracts a required integer argument from an MCP request
func GetInteger(req mcp.CallToolRequest, name string) (int, error) {
	n, err := GetNumber(req, name)
	if err != nil {
		return 0, err
	}
	if n != math.Trunc(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("%w: %s must be an integer, got %v", calculator.ErrValidation, name, n)
	}
	if n > calculator.MaxSafeInteger || n < calculator.MinSafeInteger {
		return 0, fmt.Errorf("%w: %s is outside the safe integer range, got %v", calculator.ErrValidation, name, n)
	}
	return int(n), nil
}

// jsonResult marshals a tool result as indented JSON text
func jsonResult(toolResult any) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.MarshalIndent(toolResult, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal tool result JSON: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// errorResult reports a calculator error as a tool error carrying its kind
func errorResult(err error) (*mcp.CallToolResult, error) {
	jsonBytes, marshalErr := json.MarshalIndent(results.NewErrorResult(err), "", "  ")
	if marshalErr != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultError(string(jsonBytes)), nil
}
