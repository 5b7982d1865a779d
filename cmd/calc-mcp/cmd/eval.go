package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"

	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/internal/session"
	"github.com/averycrespi/calc-mcp/internal/tools"
	"github.com/averycrespi/calc-mcp/pkg/calculator"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] <operation> [numbers...]",
	Short: "Evaluate a single operation",
	Long: `Evaluate a single operation with a fresh calculator.

The operation is any tool name, with or without the "calc." prefix.
Numbers are given positionally in the order the tool lists its arguments;
statistics operations take every number as the sample. Flags must come
before the operation so negative numbers are not read as flags.

Examples:
  calc-mcp eval add 2 3
  calc-mcp eval --json subtract -3 2
  calc-mcp --precision 2 eval compound_interest 1000 0.05 10 12
  calc-mcp --debug eval mean 1 2 3 4`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

var evalJSON bool

func init() {
	evalCmd.Flags().BoolVar(&evalJSON, "json", false, "output as JSON")
	evalCmd.Flags().SetInterspersed(false)

	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	values := make([]float64, 0, len(args)-1)
	for _, arg := range args[1:] {
		value, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid number %q", arg)
		}
		values = append(values, value)
	}

	var events []calculator.Event
	opts := append(cfg.CalculatorOptions(), calculator.WithObserver(calculator.ObserverFunc(func(event calculator.Event) {
		events = append(events, event)
	})))
	sess := session.New(calculator.New(opts...))

	tool, ok := tools.Find(tools.All(sess), args[0])
	if !ok {
		return fmt.Errorf("unknown operation %q (see %q)", args[0], "calc-mcp tools")
	}

	arguments, err := tools.PositionalArguments(tool, values)
	if err != nil {
		return err
	}

	result, err := tool.Handle(cmd.Context(), tools.NewRequest(tool.GetTool().Name, arguments))
	if err != nil {
		return err
	}

	text, err := toolText(result)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if evalJSON {
		fmt.Fprintln(out, text)
		if result.IsError {
			return errReported
		}
		return nil
	}

	for _, event := range events {
		if cfg.Calculator.Debug || event.Level == calculator.LevelWarn {
			fmt.Fprintln(cmd.ErrOrStderr(), renderEvent(event))
		}
	}

	if result.IsError {
		var failure results.ErrorResult
		if err := json.Unmarshal([]byte(text), &failure); err != nil {
			return fmt.Errorf("failed to decode error: %w", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render(string(failure.Kind)+":"), failure.Message)
		return errReported
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		return fmt.Errorf("failed to decode result: %w", err)
	}
	fmt.Fprintln(out, renderFields(fields))
	return nil
}

func toolText(result *mcp.CallToolResult) (string, error) {
	if len(result.Content) == 0 {
		return "", fmt.Errorf("tool returned no content")
	}
	content, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		return "", fmt.Errorf("tool returned %T, want text", result.Content[0])
	}
	return content.Text, nil
}

// fieldOrder lists the result fields worth showing, in display order.
var fieldOrder = []string{"operation", "arguments", "numbers", "result", "modes", "count", "removed", "precision", "warning"}

func renderFields(fields map[string]any) string {
	var lines []string
	for _, key := range fieldOrder {
		value, ok := fields[key]
		if !ok || value == nil {
			continue
		}
		rendered := formatValue(value)
		switch key {
		case "result", "modes":
			rendered = resultStyle.Render(rendered)
		case "warning":
			if rendered == "" {
				continue
			}
			rendered = warnStyle.Render(rendered)
		}
		lines = append(lines, labelStyle.Render(fmt.Sprintf("%-10s", key+":"))+" "+rendered)
	}
	if message, ok := fields["message"].(string); ok && message != "" {
		lines = append(lines, "", dimStyle.Render(message))
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

func formatValue(value any) string {
	switch v := value.(type) {
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		return v
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = formatValue(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]any:
		data, _ := json.Marshal(v)
		return string(data)
	default:
		return fmt.Sprint(v)
	}
}

func renderEvent(event calculator.Event) string {
	line := fmt.Sprintf("[%s] %s", event.Level, event.Message)
	if event.Level == calculator.LevelWarn {
		return warnStyle.Render(line)
	}
	return dimStyle.Render(line)
}
