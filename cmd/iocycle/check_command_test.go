package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"iocycle/internal/testsupport"
)

func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeTestConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	testsupport.WriteFile(t, path, contents)
	return path
}

func TestCheckNoCycle(t *testing.T) {
	dir := t.TempDir()
	a := testsupport.TempFile(t, dir, "a.txt", "alpha")
	b := testsupport.TempFile(t, dir, "b.txt", "beta")
	c := testsupport.TempFile(t, dir, "c.txt", "gamma")
	cfg := writeTestConfig(t, "log_level = \"error\"\n")

	_, errOut, err := runCommand(t, "--config", cfg, "check", a, b, "--output", c)
	if err != nil {
		t.Fatalf("check should pass for disjoint files: %v", err)
	}
	if !strings.Contains(errOut, "no cycle detected") {
		t.Errorf("stderr should confirm the check, got %q", errOut)
	}
}

func TestCheckDetectsCycle(t *testing.T) {
	dir := t.TempDir()
	a := testsupport.TempFile(t, dir, "a.txt", "alpha")
	b := testsupport.TempFile(t, dir, "b.txt", "beta")
	cfg := writeTestConfig(t, "log_level = \"error\"\n")

	_, _, err := runCommand(t, "--config", cfg, "check", a, b, "--output", b)
	if err == nil {
		t.Fatal("check should fail when an output path matches an input")
	}
	if !strings.Contains(err.Error(), "cycle detected") {
		t.Errorf("error should name the cycle, got %v", err)
	}
	if !strings.Contains(err.Error(), b) {
		t.Errorf("error should name the offending input, got %v", err)
	}
}

func TestCheckMissingInputIsFatal(t *testing.T) {
	cfg := writeTestConfig(t, "")
	missing := filepath.Join(t.TempDir(), "absent.txt")

	_, _, err := runCommand(t, "--config", cfg, "check", missing)
	if err == nil {
		t.Fatal("check should fail for a missing input file")
	}
}

func TestCheckMissingOutputIsSkipped(t *testing.T) {
	dir := t.TempDir()
	a := testsupport.TempFile(t, dir, "a.txt", "alpha")
	cfg := writeTestConfig(t, "log_level = \"error\"\n")

	_, _, err := runCommand(t, "--config", cfg, "check", a, "--output", filepath.Join(dir, "new.txt"))
	if err != nil {
		t.Fatalf("a not-yet-existing output path cannot cycle: %v", err)
	}
}

func TestCheckRequiresArgs(t *testing.T) {
	cfg := writeTestConfig(t, "")
	if _, _, err := runCommand(t, "--config", cfg, "check"); err == nil {
		t.Fatal("check without input files should fail")
	}
}
