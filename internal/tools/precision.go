package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/internal/session"
	"github.com/averycrespi/calc-mcp/pkg/calculator"

	"github.com/mark3labs/mcp-go/mcp"
)

// highPrecisionWarning matches the calculator warning for precisions above 15
const highPrecisionWarning = "High precision values may cause floating point errors"

// SetPrecisionTool handles precision changes
type SetPrecisionTool struct {
	session *session.Session
}

// NewSetPrecisionTool creates a new set precision tool
func NewSetPrecisionTool(s *session.Session) *SetPrecisionTool {
	return &SetPrecisionTool{session: s}
}

// GetTool returns the MCP tool definition
func (t *SetPrecisionTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolSetPrecision,
		mcp.WithDescription("Set the number of decimal places results are rounded to"),
		mcp.WithNumber("precision", mcp.Required(), mcp.Description(fmt.Sprintf("Integer from 0 to %d; values above 15 are accepted with a warning", calculator.MaxPrecision))),
	)
}

// Handle processes the tool request
func (t *SetPrecisionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	precision, err := GetInteger(req, "precision")
	if err != nil {
		return errorResult(err)
	}

	err = t.session.Do(func(calc *calculator.Calculator) error {
		return calc.SetPrecision(precision)
	})
	if err != nil {
		return errorResult(err)
	}

	toolResult := results.PrecisionResult{
		Precision: precision,
		Message:   fmt.Sprintf("Precision set to %d decimal places.", precision),
	}
	if precision > 15 {
		toolResult.Warning = highPrecisionWarning
	}
	return jsonResult(toolResult)
}
