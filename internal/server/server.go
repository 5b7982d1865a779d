package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"

	"github.com/averycrespi/calc-mcp/internal/logger"
	"github.com/averycrespi/calc-mcp/internal/session"
	"github.com/averycrespi/calc-mcp/internal/tools"
	"github.com/averycrespi/calc-mcp/pkg/project"
	"github.com/averycrespi/calc-mcp/pkg/types"
)

var _ types.Server = &CalculatorServer{}

const shutdownTimeout = 30 * time.Second

// CalculatorServer represents the calculator MCP server
type CalculatorServer struct {
	mcpServer *server.MCPServer
	session   *session.Session
	config    types.ServerConfig
	logger    arbor.ILogger
	stdin     io.Reader
	stdout    io.Writer
}

// Option configures a CalculatorServer
type Option func(*CalculatorServer)

// WithLogger sets the server's logger
func WithLogger(l arbor.ILogger) Option {
	return func(s *CalculatorServer) {
		s.logger = l
	}
}

// WithStdio replaces the streams used by the stdio transport
func WithStdio(stdin io.Reader, stdout io.Writer) Option {
	return func(s *CalculatorServer) {
		s.stdin = stdin
		s.stdout = stdout
	}
}

// NewCalculatorServer creates a new calculator MCP server with every tool registered
func NewCalculatorServer(sess *session.Session, config types.ServerConfig, opts ...Option) *CalculatorServer {
	mcpServer := server.NewMCPServer(
		project.Name,
		project.Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	s := &CalculatorServer{
		mcpServer: mcpServer,
		session:   sess,
		config:    config,
		stdin:     os.Stdin,
		stdout:    os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.GetLogger()
	}

	s.registerTools()

	return s
}

func (s *CalculatorServer) registerTools() {
	for _, tool := range tools.All(s.session) {
		s.mcpServer.AddTool(tool.GetTool(), tool.Handle)
	}
}

// MCPServer returns the underlying MCP server
func (s *CalculatorServer) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// Serve runs the configured transport until ctx is cancelled or the transport fails
func (s *CalculatorServer) Serve(ctx context.Context) error {
	s.logger.Info().
		Str("transport", string(s.config.Transport)).
		Str("version", project.Version).
		Msg("Starting calculator MCP server")

	switch s.config.Transport {
	case types.TransportStdio, "":
		return s.serveStdio(ctx)
	case types.TransportHTTP:
		return s.serveHTTP(ctx)
	default:
		return fmt.Errorf("unsupported transport %q", s.config.Transport)
	}
}

func (s *CalculatorServer) serveStdio(ctx context.Context) error {
	stdioServer := server.NewStdioServer(s.mcpServer)

	if err := stdioServer.Listen(ctx, s.stdin, s.stdout); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}

	return nil
}

func (s *CalculatorServer) serveHTTP(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("address", addr).Msg("Listening for HTTP connections")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("failed to serve HTTP: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info().Msg("Shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}

	return nil
}
