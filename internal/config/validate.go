package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	c.OutputFormat = strings.ToLower(strings.TrimSpace(c.OutputFormat))

	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = defaultLogFormat
	}
	if c.OutputFormat == "" {
		c.OutputFormat = defaultOutputFormat
	}
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error (got %q)", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log_format must be text or json (got %q)", c.LogFormat)
	}
	switch c.OutputFormat {
	case "table", "json":
	default:
		return fmt.Errorf("output_format must be table or json (got %q)", c.OutputFormat)
	}
	return nil
}
