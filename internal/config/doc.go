// Package config loads, normalizes, and validates iocycle CLI configuration.
//
// It supplies built-in defaults, reads TOML files from an explicit path or
// the conventional user config directory, and canonicalizes enum-style values
// such as log and output formats. Obtain settings through this package so
// command code receives validated values and clear errors.
package config
