package automaton

import (
	"sort"
	"strconv"
	"strings"
)

// Minimize converts an ε-NFA into a minimal DFA via Brzozowski's
// algorithm: reverse, subset-construct, prune unreachable states,
// reverse again, subset-construct again, prune unreachable states
// again. The double pass is what yields minimality, not just
// determinism; a single reverse+subset only determinizes. Worst-case
// cost is dominated by the two subset constructions and can be
// super-polynomial in pattern size — this is the complexity the
// teacher's backtracking matcher (`a*a*a*a*a*a*a*b`-style blowups) pays
// for at match time instead of once, up front, here.
func Minimize(n NFA) DFA {
	step1 := reachable(subset(reverse(n)))
	step2 := reachable(subset(reverse(step1)))
	return toDFA(step2)
}

// reverse builds the language-reversal of A: a fresh start state with
// ε-transitions into every one of A's finals, A's own start becomes the
// sole final, and every transition (p, l, q) is flipped to (q, l, p).
func reverse(a NFA) NFA {
	states := a.States()
	maxState := a.Start
	for s := range states {
		if s > maxState {
			maxState = s
		}
	}
	newStart := maxState + 1

	out := newNFA(newStart)
	out.Finals[a.Start] = struct{}{}

	for p, byLabel := range a.Trans {
		for label, dests := range byLabel {
			for _, q := range dests {
				out.AddTransition(q, label, p)
			}
		}
	}
	for f := range a.Finals {
		out.AddTransition(newStart, EpsilonLabel, f)
	}
	return out
}

// subsetKey canonicalizes a set of NFA states into a string suitable as
// a map key, so subset identity is by content rather than construction
// order.
func subsetKey(states map[State]struct{}) string {
	ids := make([]int, 0, len(states))
	for s := range states {
		ids = append(ids, int(s))
	}
	sort.Ints(ids)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// epsilonClosure returns the smallest superset of states closed under
// ε-transitions.
func epsilonClosure(a NFA, states map[State]struct{}) map[State]struct{} {
	closure := map[State]struct{}{}
	var stack []State
	for s := range states {
		closure[s] = struct{}{}
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, dest := range a.Trans[s][EpsilonLabel] {
			if _, seen := closure[dest]; !seen {
				closure[dest] = struct{}{}
				stack = append(stack, dest)
			}
		}
	}
	return closure
}

// delta computes the set of states reachable from states on symbol c
// via a single non-epsilon transition.
func delta(a NFA, states map[State]struct{}, c rune) map[State]struct{} {
	out := map[State]struct{}{}
	label := SymbolLabel(c)
	for s := range states {
		for _, dest := range a.Trans[s][label] {
			out[dest] = struct{}{}
		}
	}
	return out
}

// subset performs the classical ε-NFA -> DFA powerset construction,
// represented here as an NFA whose (state,Symbol) transitions already
// happen to be single-destination (the general NFA type is reused so
// reachable/reverse can operate uniformly on both passes; toDFA lowers
// the final result to the DFA representation).
func subset(a NFA) NFA {
	alphabet := a.Alphabet()

	startClosure := epsilonClosure(a, map[State]struct{}{a.Start: {}})
	startKey := subsetKey(startClosure)

	ids := map[string]State{startKey: 0}
	var nextID State = 1

	out := newNFA(0)
	if intersects(startClosure, a.Finals) {
		out.Finals[0] = struct{}{}
	}

	worklist := []map[State]struct{}{startClosure}
	keys := []string{startKey}

	for len(worklist) > 0 {
		cur := worklist[0]
		curKey := keys[0]
		worklist = worklist[1:]
		keys = keys[1:]
		curID := ids[curKey]

		for c := range alphabet {
			next := epsilonClosure(a, delta(a, cur, c))
			if len(next) == 0 {
				continue
			}
			nextKey := subsetKey(next)
			nextState, seen := ids[nextKey]
			if !seen {
				nextState = nextID
				nextID++
				ids[nextKey] = nextState
				if intersects(next, a.Finals) {
					out.Finals[nextState] = struct{}{}
				}
				worklist = append(worklist, next)
				keys = append(keys, nextKey)
			}
			out.AddTransition(curID, SymbolLabel(c), nextState)
		}
	}

	return out
}

func intersects(a, b map[State]struct{}) bool {
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}
	for s := range small {
		if _, ok := large[s]; ok {
			return true
		}
	}
	return false
}

// reachable prunes every state not reachable from a.Start along symbol
// transitions (epsilon transitions do not occur past subset, since
// subset's output is already deterministic on symbols). Dangling
// destinations cannot occur: a destination only appears in the pruned
// table because it was itself reached during the same BFS.
func reachable(a NFA) NFA {
	visited := map[State]struct{}{a.Start: {}}
	queue := []State{a.Start}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, dests := range a.Trans[s] {
			for _, d := range dests {
				if _, ok := visited[d]; !ok {
					visited[d] = struct{}{}
					queue = append(queue, d)
				}
			}
		}
	}

	out := newNFA(a.Start)
	for s := range visited {
		if _, ok := a.Finals[s]; ok {
			out.Finals[s] = struct{}{}
		}
	}
	for s, byLabel := range a.Trans {
		if _, ok := visited[s]; !ok {
			continue
		}
		for label, dests := range byLabel {
			for _, d := range dests {
				out.AddTransition(s, label, d)
			}
		}
	}
	return out
}

// toDFA lowers a reachable, subset-constructed NFA (whose (state,Symbol)
// transitions are already single-destination by construction) and
// relabels states starting from 0, to keep state identifiers minimal
// after the double subset-construction leaves gaps from pruning.
func toDFA(a NFA) DFA {
	ids := map[State]State{}
	order := make([]State, 0, len(a.States()))
	for s := range a.States() {
		order = append(order, s)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })
	for i, s := range order {
		ids[s] = State(i)
	}

	d := DFA{
		Start:  ids[a.Start],
		Finals: map[State]struct{}{},
		Trans:  map[State]map[rune]State{},
	}
	for s := range a.Finals {
		d.Finals[ids[s]] = struct{}{}
	}
	for s, byLabel := range a.Trans {
		if len(byLabel) == 0 {
			continue
		}
		row := map[rune]State{}
		for label, dests := range byLabel {
			// subset's construction guarantees exactly one destination
			// per (state, Symbol) key; Epsilon keys never reach this
			// point because subset only ever emits Symbol transitions.
			for _, dest := range dests {
				row[label.Char] = ids[dest]
			}
		}
		d.Trans[ids[s]] = row
	}
	return d
}
