// Package main hosts the iocycle CLI entrypoint and command graph.
//
// The Cobra-based command tree exposes the library's cycle detection as a
// diagnostic tool: `check` gates a pipeline on whether process output loops
// back into its input files, `inspect` renders how paths and the standard
// streams are currently backed, and `config` scaffolds the TOML
// configuration. Configuration resolution and structured logging setup are
// centralized here so subcommands stay declarative.
package main
