package iocycle

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
)

// StreamKind is the outcome of classifying a stream: either the stream is
// backed by identifiable storage and Identity holds its identity, or Backing
// records why no identity exists. Classification never fails; terminals and
// pipes are normal conditions, not errors.
type StreamKind struct {
	Backing  Backing
	Identity Identity
}

// Identifiable reports whether the stream can participate in cycle detection.
// The Identity field is meaningful only when this returns true.
func (k StreamKind) Identifiable() bool {
	return k.Backing == BackingFile
}

// Classify reports how the given standard stream is currently backed.
func Classify(role Stdio) StreamKind {
	return ClassifyFile(role.file())
}

// ClassifyFile classifies an arbitrary open handle the same way Classify
// treats the standard streams.
func ClassifyFile(f *os.File) StreamKind {
	if f == nil {
		return StreamKind{Backing: BackingOther}
	}
	fd := f.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return StreamKind{Backing: BackingTerminal}
	}
	id, err := IdentifyFile(f)
	if err != nil {
		var be *BackingError
		if errors.As(err, &be) {
			return StreamKind{Backing: be.Backing}
		}
		return StreamKind{Backing: BackingOther}
	}
	return StreamKind{Backing: BackingFile, Identity: id}
}
