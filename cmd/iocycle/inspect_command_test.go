package main

import (
	"encoding/json"
	"strings"
	"testing"

	"iocycle/internal/testsupport"
)

func TestInspectJSON(t *testing.T) {
	dir := t.TempDir()
	a := testsupport.TempFile(t, dir, "a.txt", "alpha")
	cfg := writeTestConfig(t, "log_level = \"error\"\n")

	out, _, err := runCommand(t, "--config", cfg, "inspect", "--json", a)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}

	var report inspectReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("inspect output is not valid JSON: %v\n%s", err, out)
	}
	if len(report.Streams) != 3 {
		t.Errorf("report covers %d streams, want 3", len(report.Streams))
	}
	if len(report.Paths) != 1 {
		t.Fatalf("report covers %d paths, want 1", len(report.Paths))
	}
	if report.Paths[0].Identity == nil {
		t.Errorf("existing file should have an identity: %+v", report.Paths[0])
	}
}

func TestInspectMissingPathReportsError(t *testing.T) {
	cfg := writeTestConfig(t, "log_level = \"error\"\n")

	out, _, err := runCommand(t, "--config", cfg, "inspect", "--json", "/definitely/not/here.txt")
	if err != nil {
		t.Fatalf("inspect should not fail on a missing path: %v", err)
	}

	var report inspectReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("parse report: %v", err)
	}
	if len(report.Paths) != 1 || report.Paths[0].Error == "" {
		t.Errorf("missing path should carry an error, got %+v", report.Paths)
	}
}

func TestInspectTable(t *testing.T) {
	cfg := writeTestConfig(t, "log_level = \"error\"\n")

	out, _, err := runCommand(t, "--config", cfg, "inspect")
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	// StyleRounded upper-cases header cells when rendering.
	for _, header := range []string{"ENDPOINT", "BACKING", "IDENTITY"} {
		if !strings.Contains(out, header) {
			t.Errorf("table output missing header %q:\n%s", header, out)
		}
	}
	for _, stream := range []string{"stdin", "stdout", "stderr"} {
		if !strings.Contains(out, stream) {
			t.Errorf("table output missing stream %q:\n%s", stream, out)
		}
	}
}

func TestInspectJSONViaConfig(t *testing.T) {
	cfg := writeTestConfig(t, "output_format = \"json\"\nlog_level = \"error\"\n")

	out, _, err := runCommand(t, "--config", cfg, "inspect")
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	var report inspectReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("output_format=json should emit JSON: %v\n%s", err, out)
	}
}
