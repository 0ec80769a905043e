package iocycle

import "os"

// CandidateSet collects the identities participating in one cycle check:
// inputs derived from command-line path arguments, outputs derived from the
// process's open output streams or destination paths. Duplicates are valid;
// the same file given twice simply matches twice.
type CandidateSet struct {
	Inputs  []Identity
	Outputs []Identity
}

// AddInputPath resolves path and appends its identity to the input pool.
func (s *CandidateSet) AddInputPath(path string) error {
	id, err := IdentifyPath(path)
	if err != nil {
		return err
	}
	s.Inputs = append(s.Inputs, id)
	return nil
}

// AddInputFile appends the identity of an already-open input handle.
func (s *CandidateSet) AddInputFile(f *os.File) error {
	id, err := IdentifyFile(f)
	if err != nil {
		return err
	}
	s.Inputs = append(s.Inputs, id)
	return nil
}

// AddOutputPath resolves path and appends its identity to the output pool.
func (s *CandidateSet) AddOutputPath(path string) error {
	id, err := IdentifyPath(path)
	if err != nil {
		return err
	}
	s.Outputs = append(s.Outputs, id)
	return nil
}

// AddOutputStream appends the stream's identity when it is identifiable.
// Terminals, pipes, and other non-storage backings are skipped; they are
// structurally incapable of matching a path argument.
func (s *CandidateSet) AddOutputStream(kind StreamKind) {
	if kind.Identifiable() {
		s.Outputs = append(s.Outputs, kind.Identity)
	}
}

// FindCycle scans the collected identities; see the package-level FindCycle
// for the ordering contract.
func (s *CandidateSet) FindCycle() (Match, bool) {
	return FindCycle(s.Inputs, s.Outputs)
}

// HasCycle reports whether any collected output loops back into an input.
func (s *CandidateSet) HasCycle() bool {
	return HasCycle(s.Inputs, s.Outputs)
}
