package main

import (
	"os"

	"github.com/averycrespi/calc-mcp/cmd/calc-mcp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
