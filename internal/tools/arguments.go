package tools

import (
	"fmt"
	"strings"

	"github.com/averycrespi/calc-mcp/pkg/calculator"

	"github.com/mark3labs/mcp-go/mcp"
)

// Find returns the tool called name, with or without the tool prefix
func Find(all []Tool, name string) (Tool, bool) {
	if !strings.HasPrefix(name, ToolPrefix) {
		name = ToolPrefix + name
	}
	for _, tool := range all {
		if tool.GetTool().Name == name {
			return tool, true
		}
	}
	return nil, false
}

// PositionalArguments maps positional numbers onto the named arguments of tool
func PositionalArguments(tool Tool, values []float64) (map[string]any, error) {
	switch t := tool.(type) {
	case *OperationTool:
		required := 0
		for _, p := range t.params {
			if !p.optional {
				required++
			}
		}
		if len(values) < required || len(values) > len(t.params) {
			return nil, arityError(t.name, required, len(t.params), len(values))
		}
		arguments := make(map[string]any, len(values))
		for i, value := range values {
			arguments[t.params[i].name] = value
		}
		return arguments, nil
	case *SampleTool, *ModeTool:
		return map[string]any{numbersParam: values}, nil
	case *SetPrecisionTool:
		if len(values) != 1 {
			return nil, arityError(ToolSetPrecision, 1, 1, len(values))
		}
		return map[string]any{"precision": values[0]}, nil
	default:
		if len(values) != 0 {
			return nil, arityError(tool.GetTool().Name, 0, 0, len(values))
		}
		return map[string]any{}, nil
	}
}

// NewRequest builds a tool call request
func NewRequest(name string, arguments map[string]any) mcp.CallToolRequest {
	request := mcp.CallToolRequest{}
	request.Params.Name = name
	request.Params.Arguments = arguments
	return request
}

func arityError(name string, min, max, got int) error {
	if min == max {
		return fmt.Errorf("%w: %s takes %d argument(s), got %d", calculator.ErrValidation, name, min, got)
	}
	return fmt.Errorf("%w: %s takes %d to %d arguments, got %d", calculator.ErrValidation, name, min, max, got)
}
