package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/internal/session"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetHistoryTool handles history requests
type GetHistoryTool struct {
	session *session.Session
}

// NewGetHistoryTool creates a new get history tool
func NewGetHistoryTool(s *session.Session) *GetHistoryTool {
	return &GetHistoryTool{session: s}
}

// GetTool returns the MCP tool definition
func (t *GetHistoryTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolGetHistory,
		mcp.WithDescription("List the recorded calculator operations in call order"),
	)
}

// Handle processes the tool request
func (t *GetHistoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(results.NewHistoryResult(t.session.History()))
}

// ClearHistoryTool handles clear history requests
type ClearHistoryTool struct {
	session *session.Session
}

// NewClearHistoryTool creates a new clear history tool
func NewClearHistoryTool(s *session.Session) *ClearHistoryTool {
	return &ClearHistoryTool{session: s}
}

// GetTool returns the MCP tool definition
func (t *ClearHistoryTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolClearHistory,
		mcp.WithDescription("Remove every recorded operation and report how many were removed"),
	)
}

// Handle processes the tool request
func (t *ClearHistoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	removed := t.session.ClearHistory()
	return jsonResult(results.NewClearHistoryResult(removed))
}
