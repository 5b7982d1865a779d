package project

// Name is the name reported to MCP clients and printed by the CLI
const Name = "calc-mcp"

// Version is overridden at build time with -ldflags
var Version = "0.1.0"
