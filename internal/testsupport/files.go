package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile creates path (and any parent directories) with the given
// contents and fails the test on error.
func WriteFile(t testing.TB, path, contents string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// TempFile creates a file named name under dir with the given contents and
// returns its full path.
func TempFile(t testing.TB, dir, name, contents string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	WriteFile(t, path, contents)
	return path
}
