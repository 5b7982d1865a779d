package cmd

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/averycrespi/calc-mcp/internal/session"
	"github.com/averycrespi/calc-mcp/internal/tools"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the MCP tools the server exposes",
	Args:  cobra.NoArgs,
	RunE:  runTools,
}

var toolsJSON bool

func init() {
	toolsCmd.Flags().BoolVar(&toolsJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(toolsCmd)
}

type toolInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Arguments   []string `json:"arguments"`
	Required    []string `json:"required"`
}

func runTools(cmd *cobra.Command, args []string) error {
	var infos []toolInfo
	for _, tool := range tools.All(session.New(nil)) {
		def := tool.GetTool()
		arguments := make([]string, 0, len(def.InputSchema.Properties))
		for name := range def.InputSchema.Properties {
			arguments = append(arguments, name)
		}
		sort.Strings(arguments)
		infos = append(infos, toolInfo{
			Name:        def.Name,
			Description: def.Description,
			Arguments:   arguments,
			Required:    def.InputSchema.Required,
		})
	}

	out := cmd.OutOrStdout()
	if toolsJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	for _, info := range infos {
		fmt.Fprintf(out, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-26s", info.Name)), strings.Join(info.Arguments, " "))
		fmt.Fprintf(out, "  %s\n", dimStyle.Render(info.Description))
	}
	return nil
}
