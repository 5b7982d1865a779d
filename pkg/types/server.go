package types

import (
	"context"
	"net/http"
)

// Server is a calculator service reachable over MCP.
//
// Serve blocks until ctx is cancelled or the configured transport fails.
// Handler exposes the HTTP surface independently of Serve so it can be
// mounted elsewhere or exercised in tests.
type Server interface {
	Serve(ctx context.Context) error
	Handler() http.Handler
}
