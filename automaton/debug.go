package automaton

import (
	"fmt"
	"sort"
	"strings"
)

// Dump renders a View as a deterministic, line-oriented listing of
// state -> label -> state edges, with the start state marked '>' and
// final states marked '*'. This is grounded on the original source's
// AutomataPrinter (which collects the same (state, label, state) edge
// triples before handing them to a Graphviz renderer) but stops short
// of rendering a graph: rendering is the out-of-scope visualization
// collaborator's job, not this package's.
func Dump(v View) string {
	finals := map[State]struct{}{}
	for _, f := range v.Finals() {
		finals[f] = struct{}{}
	}

	var b strings.Builder
	for _, s := range v.States() {
		marker := " "
		if s == v.Start() {
			marker = ">"
		}
		final := ""
		if _, ok := finals[s]; ok {
			final = "*"
		}
		fmt.Fprintf(&b, "%sq%d%s\n", marker, s, final)
	}

	type edge struct {
		from, to State
		label    Label
	}
	var edges []edge
	for from, byLabel := range v.Transitions() {
		for label, dests := range byLabel {
			for _, to := range dests {
				edges = append(edges, edge{from, to, label})
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].from != edges[j].from {
			return edges[i].from < edges[j].from
		}
		if edges[i].label != edges[j].label {
			return edges[i].label.Less(edges[j].label)
		}
		return edges[i].to < edges[j].to
	})
	for _, e := range edges {
		fmt.Fprintf(&b, "q%d --%s--> q%d\n", e.from, e.label, e.to)
	}
	return b.String()
}
