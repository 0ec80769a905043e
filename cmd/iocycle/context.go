package main

import (
	"log/slog"
	"strings"
	"sync"

	"iocycle/internal/config"
	"iocycle/internal/logging"
)

type commandContext struct {
	configFlag *string

	once   sync.Once
	cfg    *config.Config
	logger *slog.Logger
	err    error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

// ensure loads configuration and builds the logger exactly once, regardless
// of how many commands ask for them.
func (c *commandContext) ensure() error {
	c.once.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, err := config.Load(path)
		if err != nil {
			c.err = err
			return
		}
		logger, err := logging.New(logging.Options{
			Level:  cfg.LogLevel,
			Format: cfg.LogFormat,
		})
		if err != nil {
			c.err = err
			return
		}
		c.cfg = cfg
		c.logger = logger
	})
	return c.err
}

func (c *commandContext) configValue() *config.Config {
	if c.cfg == nil {
		return config.Default()
	}
	return c.cfg
}

func (c *commandContext) log() *slog.Logger {
	if c.logger == nil {
		return logging.NewNop()
	}
	return c.logger
}
