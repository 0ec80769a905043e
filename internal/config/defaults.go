package config

const (
	defaultLogLevel     = "info"
	defaultLogFormat    = "text"
	defaultOutputFormat = "table"
)

// Default returns the built-in configuration used when no file is present.
func Default() *Config {
	return &Config{
		LogLevel:     defaultLogLevel,
		LogFormat:    defaultLogFormat,
		OutputFormat: defaultOutputFormat,
		CheckStderr:  false,
	}
}
