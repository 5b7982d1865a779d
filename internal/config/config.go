// Package config provides configuration management for calc-mcp.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/averycrespi/calc-mcp/pkg/calculator"
	"github.com/averycrespi/calc-mcp/pkg/project"
	"github.com/averycrespi/calc-mcp/pkg/types"
)

// Config represents the service configuration.
type Config struct {
	Calculator CalculatorConfig   `yaml:"calculator" toml:"calculator"`
	Server     types.ServerConfig `yaml:"server" toml:"server"`
	Logging    LoggingConfig      `yaml:"logging" toml:"logging"`
}

// CalculatorConfig contains the settings of the shared calculator.
type CalculatorConfig struct {
	Precision int  `yaml:"precision" toml:"precision"`
	Debug     bool `yaml:"debug" toml:"debug"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level      string   `yaml:"level" toml:"level"`
	Format     string   `yaml:"format" toml:"format"` // "json" or "text"
	Output     []string `yaml:"output" toml:"output"` // any of "console", "file", "memory"
	TimeFormat string   `yaml:"time_format" toml:"time_format"`
	Dir        string   `yaml:"dir" toml:"dir"`
	MaxSizeMB  int      `yaml:"max_size_mb" toml:"max_size_mb"`
	MaxBackups int      `yaml:"max_backups" toml:"max_backups"`
}

// Log output names
const (
	OutputConsole = "console"
	OutputFile    = "file"
	OutputMemory  = "memory"
)

var logLevels = []string{"trace", "debug", "info", "warn", "error"}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Calculator: CalculatorConfig{
			Precision: calculator.DefaultPrecision,
		},
		Server: types.ServerConfig{
			Transport: types.TransportStdio,
			Host:      "127.0.0.1",
			Port:      8421,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "json",
			Output:     []string{OutputFile},
			TimeFormat: "15:04:05.000",
			Dir:        filepath.Join(DefaultDataDir(), "logs"),
		},
	}
}

// DefaultDataDir returns the default data directory based on OS.
func DefaultDataDir() string {
	switch runtime.GOOS {
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, project.Name)
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "AppData", "Roaming", project.Name)
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", project.Name)
	default:
		if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
			return filepath.Join(xdgData, project.Name)
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "."+project.Name)
	}
}

// Load loads configuration from a YAML or TOML file, chosen by extension.
// An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(expanded, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q (want .yaml, .yml or .toml)", ext)
	}

	if strings.HasPrefix(cfg.Logging.Dir, "~/") {
		home, _ := os.UserHomeDir()
		cfg.Logging.Dir = filepath.Join(home, cfg.Logging.Dir[2:])
	}

	return cfg, nil
}

// Save writes the configuration to a YAML or TOML file, chosen by extension.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	var data []byte
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		data = buf.Bytes()
	default:
		var err error
		data, err = yaml.Marshal(c)
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks the configuration for values the server cannot run with.
func (c *Config) Validate() error {
	if c.Calculator.Precision < 0 || c.Calculator.Precision > calculator.MaxPrecision {
		return fmt.Errorf("calculator.precision must be between 0 and %d, got %d", calculator.MaxPrecision, c.Calculator.Precision)
	}

	switch c.Server.Transport {
	case types.TransportStdio, types.TransportHTTP:
	default:
		return fmt.Errorf("server.transport must be %q or %q, got %q", types.TransportStdio, types.TransportHTTP, c.Server.Transport)
	}

	if c.Server.Transport == types.TransportHTTP && (c.Server.Port < 1 || c.Server.Port > 65535) {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	if !slices.Contains(logLevels, strings.ToLower(c.Logging.Level)) {
		return fmt.Errorf("logging.level must be one of %v, got %q", logLevels, c.Logging.Level)
	}

	for _, output := range c.Logging.Output {
		switch output {
		case OutputConsole:
			// stdout carries the protocol in stdio mode
			if c.Server.Transport == types.TransportStdio {
				return fmt.Errorf("logging.output %q cannot be used with the stdio transport", OutputConsole)
			}
		case OutputFile, OutputMemory:
		default:
			return fmt.Errorf("logging.output must be one of %q, %q, %q, got %q", OutputConsole, OutputFile, OutputMemory, output)
		}
	}

	return nil
}

// Address returns the full address string for the HTTP server.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// LogPath returns the path to the log file.
func (c *Config) LogPath() string {
	return filepath.Join(c.Logging.Dir, project.Name+".log")
}

// CalculatorOptions returns the calculator options described by the configuration.
func (c *Config) CalculatorOptions() []calculator.Option {
	return []calculator.Option{
		calculator.WithPrecision(c.Calculator.Precision),
		calculator.WithDebug(c.Calculator.Debug),
	}
}
