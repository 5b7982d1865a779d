package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/internal/session"
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool is an MCP tool backed by the calculator session
type Tool interface {
	GetTool() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// All returns every calculator tool bound to s, in registration order
func All(s *session.Session) []Tool {
	return []Tool{
		NewAddTool(s),
		NewSubtractTool(s),
		NewMultiplyTool(s),
		NewDivideTool(s),
		NewPowerTool(s),
		NewFactorialTool(s),
		NewSqrtTool(s),
		NewCircleAreaTool(s),
		NewCirclePerimeterTool(s),
		NewRectanglePerimeterTool(s),
		NewSinTool(s),
		NewCosTool(s),
		NewDegreesToRadiansTool(s),
		NewMeanTool(s),
		NewMedianTool(s),
		NewModeTool(s),
		NewPercentageTool(s),
		NewCompoundInterestTool(s),
		NewSimpleInterestTool(s),
		NewGetHistoryTool(s),
		NewClearHistoryTool(s),
		NewSetPrecisionTool(s),
	}
}
