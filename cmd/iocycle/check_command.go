package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"iocycle"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var outputPaths []string

	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Exit non-zero when process output loops back into an input file",
		Long: "Check builds identities for the given input files and compares them " +
			"against the process's own output streams (and any --output paths). " +
			"If any output refers to the same file as an input, the command " +
			"reports the offending pair and exits with status 1.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := ctx.log()
			cfg := ctx.configValue()

			var set iocycle.CandidateSet
			for _, path := range args {
				if err := set.AddInputPath(path); err != nil {
					return fmt.Errorf("input %s: %w", path, err)
				}
			}

			stdoutKind := iocycle.Classify(iocycle.Stdout)
			logger.Debug("classified stdout", "backing", stdoutKind.Backing.String())
			set.AddOutputStream(stdoutKind)

			if cfg.CheckStderr {
				stderrKind := iocycle.Classify(iocycle.Stderr)
				logger.Debug("classified stderr", "backing", stderrKind.Backing.String())
				set.AddOutputStream(stderrKind)
			}

			for _, path := range outputPaths {
				err := set.AddOutputPath(path)
				switch {
				case err == nil:
				case errors.Is(err, fs.ErrNotExist):
					// An output that does not exist yet cannot collide
					// with an existing input.
					logger.Debug("output path does not exist, skipping", "path", path)
				default:
					return fmt.Errorf("output %s: %w", path, err)
				}
			}

			if m, ok := set.FindCycle(); ok {
				logger.Warn("cycle detected",
					"input", args[m.InputIndex],
					"identity", set.Inputs[m.InputIndex],
				)
				return fmt.Errorf("cycle detected: an output stream writes back into input %s", args[m.InputIndex])
			}

			fmt.Fprintln(cmd.ErrOrStderr(), "no cycle detected")
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&outputPaths, "output", nil, "Destination path to include in the output pool (repeatable)")

	return cmd
}
