package iocycle

import (
	"os"
	"testing"

	"github.com/mattn/go-isatty"

	"iocycle/internal/testsupport"
)

func TestClassifyFileRegular(t *testing.T) {
	path := testsupport.TempFile(t, t.TempDir(), "a.txt", "alpha")

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	kind := ClassifyFile(f)
	if !kind.Identifiable() {
		t.Fatalf("regular file classified as %v", kind.Backing)
	}

	want, err := IdentifyPath(path)
	if err != nil {
		t.Fatalf("IdentifyPath: %v", err)
	}
	if kind.Identity != want {
		t.Errorf("classified identity %v != path identity %v", kind.Identity, want)
	}
}

func TestClassifyFilePipe(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	for name, end := range map[string]*os.File{"read": r, "write": w} {
		kind := ClassifyFile(end)
		if kind.Backing != BackingPipe {
			t.Errorf("%s end of pipe classified as %v, want %v", name, kind.Backing, BackingPipe)
		}
		if kind.Identifiable() {
			t.Errorf("%s end of pipe must not be identifiable", name)
		}
	}
}

func TestClassifyFileNil(t *testing.T) {
	kind := ClassifyFile(nil)
	if kind.Backing != BackingOther {
		t.Errorf("nil handle classified as %v, want %v", kind.Backing, BackingOther)
	}
}

func TestClassifyStandardStreams(t *testing.T) {
	for _, role := range []Stdio{Stdin, Stdout, Stderr} {
		kind := Classify(role)
		if kind.Backing < BackingFile || kind.Backing > BackingOther {
			t.Errorf("%s: backing %d out of range", role, kind.Backing)
		}
		if isatty.IsTerminal(role.file().Fd()) && kind.Backing != BackingTerminal {
			t.Errorf("%s is a terminal but classified as %v", role, kind.Backing)
		}
	}
}

func TestClassifyIdempotent(t *testing.T) {
	first := Classify(Stdout)
	second := Classify(Stdout)
	if first != second {
		t.Errorf("classification not stable: %v vs %v", first, second)
	}
}
