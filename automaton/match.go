package automaton

// IsMatch answers whole-string membership: starting from d.Start, it
// consumes text one rune at a time, following exactly one transition
// per character. A missing transition rejects immediately — the
// remaining input is never consumed. An empty string matches iff the
// start state is itself final.
func IsMatch(d DFA, text string) bool {
	state := d.Start
	for _, c := range text {
		next, ok := d.Step(state, c)
		if !ok {
			return false
		}
		state = next
	}
	return d.IsFinal(state)
}
