// Package cmd implements the calc-mcp command line.
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/averycrespi/calc-mcp/internal/config"
	"github.com/averycrespi/calc-mcp/internal/logger"
	"github.com/averycrespi/calc-mcp/internal/session"
	"github.com/averycrespi/calc-mcp/pkg/calculator"
	"github.com/averycrespi/calc-mcp/pkg/project"
)

var (
	cfgFile   string
	precision int
	debug     bool
	logLevel  string
)

var rootCmd = &cobra.Command{
	Use:   project.Name,
	Short: "Calculator exposed as an MCP server",
	Long: `calc-mcp is a stateful calculator exposed over the Model Context Protocol.

It offers arithmetic, geometry, statistics and finance operations with
configurable rounding precision and an operation history.

Without a subcommand it runs serve, so an MCP client can launch the bare
binary and talk JSON-RPC over stdio.

Examples:
  # Serve MCP over stdio
  calc-mcp

  # Same, spelled out
  calc-mcp serve

  # Serve MCP over streamable HTTP
  calc-mcp serve --transport http --port 8421

  # Evaluate a single operation
  calc-mcp eval divide 1 3 --precision 4`,
	Args:          cobra.NoArgs,
	RunE:          runServe,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// errReported marks failures that were already printed to the user.
var errReported = errors.New("error already reported")

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		fmt.Fprintln(rootCmd.ErrOrStderr(), errorStyle.Render("Error:"), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (.yaml, .yml or .toml)")
	rootCmd.PersistentFlags().IntVarP(&precision, "precision", "p", calculator.DefaultPrecision, "decimal places results are rounded to")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "emit debug events for every operation")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
}

// loadConfig reads the config file and applies any flags the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("precision") {
		cfg.Calculator.Precision = precision
	}
	if flags.Changed("debug") {
		cfg.Calculator.Debug = debug
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}

	return cfg, nil
}

// newSession builds the shared calculator described by cfg, reporting its
// events to the global logger.
func newSession(cfg *config.Config) *session.Session {
	opts := append(cfg.CalculatorOptions(), calculator.WithObserver(logger.NewObserver(nil)))
	return session.New(calculator.New(opts...))
}
