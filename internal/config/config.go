// Package config loads the optional HCL configuration shared by the CLI
// and the analysis server.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete application configuration
type Config struct {
	Defaults DefaultsSettings
	Server   ServerSettings
}

// DefaultsSettings tunes the Monte Carlo sample counts used when a command
// does not set an explicit iteration count
type DefaultsSettings struct {
	FlopIterations    int `hcl:"flop_iterations,optional"`
	PreflopIterations int `hcl:"preflop_iterations,optional"`
}

// ServerSettings contains analysis server configuration
type ServerSettings struct {
	Addr        string `hcl:"addr,optional"`
	LogLevel    string `hcl:"log_level,optional"`
	IdleTimeout string `hcl:"idle_timeout,optional"`
}

// fileConfig mirrors Config with optional blocks for decoding.
type fileConfig struct {
	Defaults *DefaultsSettings `hcl:"defaults,block"`
	Server   *ServerSettings   `hcl:"server,block"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Defaults: DefaultsSettings{
			FlopIterations:    30000,
			PreflopIterations: 10000,
		},
		Server: ServerSettings{
			Addr:        ":8417",
			LogLevel:    "info",
			IdleTimeout: "5m",
		},
	}
}

// Load loads configuration from an HCL file, falling back to defaults when
// the file does not exist
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config := Default()
	if raw.Defaults != nil {
		if raw.Defaults.FlopIterations != 0 {
			config.Defaults.FlopIterations = raw.Defaults.FlopIterations
		}
		if raw.Defaults.PreflopIterations != 0 {
			config.Defaults.PreflopIterations = raw.Defaults.PreflopIterations
		}
	}
	if raw.Server != nil {
		if raw.Server.Addr != "" {
			config.Server.Addr = raw.Server.Addr
		}
		if raw.Server.LogLevel != "" {
			config.Server.LogLevel = raw.Server.LogLevel
		}
		if raw.Server.IdleTimeout != "" {
			config.Server.IdleTimeout = raw.Server.IdleTimeout
		}
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Defaults.FlopIterations < 0 {
		return fmt.Errorf("flop_iterations must be non-negative, got %d", c.Defaults.FlopIterations)
	}
	if c.Defaults.PreflopIterations < 0 {
		return fmt.Errorf("preflop_iterations must be non-negative, got %d", c.Defaults.PreflopIterations)
	}
	if _, err := time.ParseDuration(c.Server.IdleTimeout); err != nil {
		return fmt.Errorf("invalid idle_timeout: %w", err)
	}
	switch c.Server.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level: %s", c.Server.LogLevel)
	}
	return nil
}

// IdleTimeoutDuration returns the parsed idle timeout. Validate must have
// accepted the configuration first.
func (c *Config) IdleTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.Server.IdleTimeout)
	if err != nil {
		return 5 * time.Minute
	}
	return d
}
