package iocycle

import "os"

// Stdio names one of the three standard streams of the current process. It
// selects which inherited handle a classification or identity query targets.
type Stdio int

const (
	Stdin Stdio = iota
	Stdout
	Stderr
)

func (s Stdio) String() string {
	switch s {
	case Stdin:
		return "stdin"
	case Stdout:
		return "stdout"
	case Stderr:
		return "stderr"
	default:
		return "unknown"
	}
}

func (s Stdio) file() *os.File {
	switch s {
	case Stdin:
		return os.Stdin
	case Stdout:
		return os.Stdout
	default:
		return os.Stderr
	}
}

// IdentifyStdio builds the Identity of the given standard stream's current
// handle. Most callers want Classify instead, which degrades gracefully when
// the stream is a terminal or a pipe.
func IdentifyStdio(s Stdio) (Identity, error) {
	return IdentifyFile(s.file())
}
