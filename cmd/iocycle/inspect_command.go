package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"iocycle"
)

type streamReport struct {
	Stream   string            `json:"stream"`
	Backing  string            `json:"backing"`
	Identity *iocycle.Identity `json:"identity,omitempty"`
}

type pathReport struct {
	Path     string            `json:"path"`
	Identity *iocycle.Identity `json:"identity,omitempty"`
	Error    string            `json:"error,omitempty"`
}

type inspectReport struct {
	Streams []streamReport `json:"streams"`
	Paths   []pathReport   `json:"paths,omitempty"`
}

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "inspect [FILE...]",
		Short: "Show how the standard streams and the given paths are backed",
		RunE: func(cmd *cobra.Command, args []string) error {
			report := buildInspectReport(args)

			if jsonFlag || ctx.configValue().OutputFormat == "json" {
				return writeJSON(cmd, report)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderInspectTable(report))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the report as JSON")

	return cmd
}

func buildInspectReport(paths []string) inspectReport {
	var report inspectReport

	for _, role := range []iocycle.Stdio{iocycle.Stdin, iocycle.Stdout, iocycle.Stderr} {
		kind := iocycle.Classify(role)
		entry := streamReport{Stream: role.String(), Backing: kind.Backing.String()}
		if kind.Identifiable() {
			id := kind.Identity
			entry.Identity = &id
		}
		report.Streams = append(report.Streams, entry)
	}

	for _, path := range paths {
		entry := pathReport{Path: path}
		if id, err := iocycle.IdentifyPath(path); err != nil {
			entry.Error = err.Error()
		} else {
			entry.Identity = &id
		}
		report.Paths = append(report.Paths, entry)
	}

	return report
}

func renderInspectTable(report inspectReport) string {
	rows := make([][]string, 0, len(report.Streams)+len(report.Paths))
	for _, s := range report.Streams {
		identity := "-"
		if s.Identity != nil {
			identity = s.Identity.String()
		}
		rows = append(rows, []string{s.Stream, s.Backing, identity})
	}
	for _, p := range report.Paths {
		switch {
		case p.Error != "":
			rows = append(rows, []string{p.Path, "error", p.Error})
		case p.Identity != nil:
			rows = append(rows, []string{p.Path, "file", p.Identity.String()})
		}
	}
	return renderTable([]string{"Endpoint", "Backing", "Identity"}, rows)
}
