package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Config centralizes every knob the iocycle CLI needs: logging shape and the
// cycle-check behavior toggles.
type Config struct {
	LogLevel     string `toml:"log_level"`
	LogFormat    string `toml:"log_format"`
	OutputFormat string `toml:"output_format"`
	CheckStderr  bool   `toml:"check_stderr"`
}

// DefaultConfigPath returns the conventional config location under the user's
// config directory.
func DefaultConfigPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(base, "iocycle", "config.toml"), nil
}

// Load reads the TOML configuration at path, falling back to the default
// location when path is empty and to built-in defaults when no file exists
// there. The returned config is normalized and validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	resolved := path
	if resolved == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		resolved = defaultPath
	}

	file, err := os.Open(resolved)
	switch {
	case err == nil:
		defer file.Close()
		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", resolved, err)
		}
	case errors.Is(err, fs.ErrNotExist) && path == "":
		// No file at the default location; run on defaults.
	default:
		return nil, fmt.Errorf("open config %s: %w", resolved, err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Sample returns the annotated sample configuration shipped with the tool.
func Sample() string {
	return sampleConfig
}

// CreateSample writes the annotated sample configuration to path.
func CreateSample(path string) error {
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
