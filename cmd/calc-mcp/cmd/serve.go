package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/averycrespi/calc-mcp/internal/logger"
	"github.com/averycrespi/calc-mcp/internal/server"
	"github.com/averycrespi/calc-mcp/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server",
	Long: `Run the MCP server.

With the stdio transport the server speaks JSON-RPC on stdin and stdout.
With the http transport it serves streamable HTTP on /mcp alongside
/health, /version and /history.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var (
	serveTransport string
	serveHost      string
	servePort      int
)

func init() {
	addServeFlags(serveCmd.Flags())
	addServeFlags(rootCmd.Flags())

	rootCmd.AddCommand(serveCmd)
}

// addServeFlags registers the transport flags on fs. The root command shares
// them with serve because running calc-mcp bare starts the server.
func addServeFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&serveTransport, "transport", "t", string(types.TransportStdio), "transport (stdio or http)")
	fs.StringVar(&serveHost, "host", "", "HTTP listen host")
	fs.IntVar(&servePort, "port", 0, "HTTP listen port")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("transport") {
		cfg.Server.Transport = types.Transport(serveTransport)
	}
	if flags.Changed("host") {
		cfg.Server.Host = serveHost
	}
	if flags.Changed("port") {
		cfg.Server.Port = servePort
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log := logger.SetupLogger(cfg)
	defer logger.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var srv types.Server = server.NewCalculatorServer(newSession(cfg), cfg.Server,
		server.WithLogger(log),
		server.WithStdio(cmd.InOrStdin(), cmd.OutOrStdout()),
	)
	if err := srv.Serve(ctx); err != nil {
		log.Warn().Err(err).Msg("Server stopped with error")
		return err
	}

	log.Info().Msg("Server stopped")
	return nil
}
