package iocycle

import (
	"errors"
	"fmt"
)

// Backing describes what kind of object sits behind a stream or path.
type Backing int

const (
	// BackingFile is a regular filesystem object with a stable identity.
	BackingFile Backing = iota
	// BackingTerminal is an interactive terminal.
	BackingTerminal
	// BackingPipe is an anonymous pipe or a socket.
	BackingPipe
	// BackingOther is any other non-storage backing, such as a character
	// device or a closed descriptor.
	BackingOther
)

func (b Backing) String() string {
	switch b {
	case BackingFile:
		return "file"
	case BackingTerminal:
		return "terminal"
	case BackingPipe:
		return "pipe"
	default:
		return "other"
	}
}

// ErrUnsupportedBacking reports that identity construction was attempted
// against an object that is not backed by reusable storage.
var ErrUnsupportedBacking = errors.New("backing does not support file identity")

// BackingError is returned by the identity constructors when the target turns
// out to be a pipe, terminal, or other non-storage object. It carries the
// observed backing kind and matches ErrUnsupportedBacking under errors.Is.
type BackingError struct {
	Backing Backing
}

func (e *BackingError) Error() string {
	return fmt.Sprintf("%s backing does not support file identity", e.Backing)
}

func (e *BackingError) Is(target error) bool {
	return target == ErrUnsupportedBacking
}
