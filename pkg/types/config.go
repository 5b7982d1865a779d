package types

// Transport names the wire the MCP server listens on
type Transport string

const (
	TransportStdio Transport = "stdio"
	TransportHTTP  Transport = "http"
)

// ServerConfig is the part of the configuration the MCP server needs
type ServerConfig struct {
	Transport Transport `json:"transport" yaml:"transport" toml:"transport"`
	Host      string    `json:"host" yaml:"host" toml:"host"`
	Port      int       `json:"port" yaml:"port" toml:"port"`
}
