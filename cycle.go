package iocycle

// Match identifies the offending pair found by FindCycle: the output at
// OutputIndex writes back into the input at InputIndex.
type Match struct {
	InputIndex  int
	OutputIndex int
}

// FindCycle reports the first pair of identities that name the same
// underlying file. Outputs are scanned in the given order and, within each
// output, inputs in the given order; callers that surface "first offending
// argument" diagnostics depend on that order. The scan is a plain full
// comparison: the expected set sizes are a handful of command-line arguments
// and the three standard streams.
func FindCycle(inputs, outputs []Identity) (Match, bool) {
	for oi, out := range outputs {
		for ii, in := range inputs {
			if in == out {
				return Match{InputIndex: ii, OutputIndex: oi}, true
			}
		}
	}
	return Match{}, false
}

// HasCycle reports whether any output identity also appears among the inputs.
func HasCycle(inputs, outputs []Identity) bool {
	_, ok := FindCycle(inputs, outputs)
	return ok
}

// StdoutAmongInputs reports whether the process's current stdout refers to
// one of the given input identities. It returns false when stdout is not
// identifiable (terminal, pipe, closed descriptor).
func StdoutAmongInputs(inputs []Identity) bool {
	kind := Classify(Stdout)
	if !kind.Identifiable() {
		return false
	}
	return HasCycle(inputs, []Identity{kind.Identity})
}
