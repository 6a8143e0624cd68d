// Package regex is the public surface of the engine: compile a pattern
// to a minimal DFA, test whole-string membership, and inspect the
// compiled automaton for diagnostics. It never imports a CLI or
// visualization package — both are external collaborators, consumed
// only (by cmd/rexmin, in this repository) through Inspect's read-only
// view.
package regex

import (
	"github.com/lnsp/rexmin/automaton"
	"github.com/lnsp/rexmin/parser"
)

// SyntaxError reports a malformed pattern. See parser.SyntaxError for
// the originating definition; this alias is part of this package's
// public API so callers never need to import parser directly.
type SyntaxError = parser.SyntaxError

// InvalidRangeError reports a character-class range whose upper bound
// sorts before its lower bound, such as [z-a].
type InvalidRangeError = parser.InvalidRangeError

// Regex is a compiled, immutable pattern: a minimal DFA plus the ε-NFA
// it was minimized from (kept only so InspectNFA can expose the
// pre-minimization automaton for diagnostics).
type Regex struct {
	nfa automaton.NFA
	dfa automaton.DFA
}

// Compile parses pattern, builds an ε-NFA via Thompson construction,
// and minimizes it into a DFA via Brzozowski's algorithm. It fails with
// *SyntaxError or *InvalidRangeError; compilation never fails for any
// other reason.
func Compile(pattern string) (*Regex, error) {
	tree, err := parser.Parse(pattern)
	if err != nil {
		return nil, err
	}
	nfa := automaton.Build(tree)
	dfa := automaton.Minimize(nfa)
	return &Regex{nfa: nfa, dfa: dfa}, nil
}

// IsMatch reports whether text, taken as a whole, is in the language of
// r. Matching is total: it never errors, never partially matches, and
// recognizes no anchoring syntax.
func (r *Regex) IsMatch(text string) bool {
	return automaton.IsMatch(r.dfa, text)
}

// Inspect exposes the compiled DFA's start state, final states, state
// set, and transition relation for diagnostics. This is the only
// interface an external visualization tool should consume.
func (r *Regex) Inspect() automaton.View {
	return automaton.DFAView(r.dfa)
}

// InspectNFA exposes the pre-minimization ε-NFA's view, useful for
// diagnosing the builder stage independently of minimization.
func (r *Regex) InspectNFA() automaton.View {
	return automaton.NFAView(r.nfa)
}
