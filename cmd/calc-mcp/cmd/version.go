package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/averycrespi/calc-mcp/pkg/project"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of calc-mcp",
	Long:  `Print the version number of calc-mcp.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", project.Name, project.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
