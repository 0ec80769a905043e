//go:build unix

package testsupport

import (
	"testing"

	"golang.org/x/sys/unix"
)

// Mkfifo creates a named pipe at path and fails the test on error.
func Mkfifo(t testing.TB, path string) {
	t.Helper()

	if err := unix.Mkfifo(path, 0o644); err != nil {
		t.Fatalf("mkfifo %s: %v", path, err)
	}
}
