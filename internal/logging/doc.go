// Package logging assembles the structured slog loggers used by the iocycle
// CLI.
//
// It centralizes level parsing and the text/JSON handler choice, and provides
// a no-op logger for tests. Prefer these constructors over hand-rolled slog
// setup so commands emit log lines with the same shape.
package logging
