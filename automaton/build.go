package automaton

import (
	"fmt"

	"github.com/lnsp/rexmin/ast"
)

// Builder threads a monotonically increasing state counter through NFA
// construction, per the design note that the allocator should be a
// small mutable object rather than a package-level global — the
// teacher's NFA builder uses a package-level counter
// (app/nfa/nfa.go:131), which makes successive compilations in the same
// process share identifier space. Builder restores per-compilation
// isolation: two calls to Build, even concurrently, never see each
// other's state IDs.
type Builder struct {
	next State
}

// NewState allocates and returns a fresh state identifier.
func (b *Builder) NewState() State {
	s := b.next
	b.next++
	return s
}

// fragment is a single-entry, possibly-multi-exit piece of an NFA under
// construction: exactly the shape Thompson's construction composes.
type fragment struct {
	start  State
	finals []State
	nfa    NFA
}

// Build translates a regex AST into an ε-NFA using Thompson-style
// fragment composition, per spec.md §4.3. Build never fails: a
// malformed AST (e.g. a class Range over non-Single operands) cannot
// arise once the parser has run, because ast.ClassRange's fields are
// bare runes rather than ClassNode operands — there is no ill-typed
// value to reject here.
func Build(node ast.Node) NFA {
	b := &Builder{}
	frag := b.build(node)
	result := newNFA(frag.start)
	result.merge(frag.nfa)
	for _, f := range frag.finals {
		result.Finals[f] = struct{}{}
	}
	return result
}

func (b *Builder) build(node ast.Node) fragment {
	switch n := node.(type) {
	case ast.Symbol:
		return b.buildSymbol(SymbolLabel(n.Char))

	case ast.EmptyString:
		return b.buildSymbol(EpsilonLabel)

	case ast.CharClass:
		return b.buildClass(n.Class)

	case ast.Unary:
		child := b.build(n.Child)
		switch n.Op {
		case ast.ClosurePlus:
			return b.buildPlus(child)
		case ast.ClosureStar:
			return b.buildStar(child)
		default:
			panic(fmt.Sprintf("automaton: unknown unary op %v", n.Op))
		}

	case ast.Binary:
		lhs := b.build(n.Lhs)
		rhs := b.build(n.Rhs)
		switch n.Op {
		case ast.Union:
			return b.buildUnion(lhs, rhs)
		case ast.Concatenation:
			return b.buildConcat(lhs, rhs)
		default:
			panic(fmt.Sprintf("automaton: unknown binary op %v", n.Op))
		}

	default:
		panic(fmt.Sprintf("automaton: unknown ast node %T", node))
	}
}

// buildSymbol builds the two-state fragment s --label--> f for a
// literal symbol or (via EpsilonLabel) the empty string.
func (b *Builder) buildSymbol(label Label) fragment {
	s := b.NewState()
	f := b.NewState()
	frag := fragment{start: s, finals: []State{f}, nfa: newNFA(s)}
	frag.nfa.AddTransition(s, label, f)
	return frag
}

// buildUnion allocates a fresh start with ε-transitions into both
// sub-fragments' starts; the result's finals are the union of both
// sub-fragments' finals.
func (b *Builder) buildUnion(lhs, rhs fragment) fragment {
	s := b.NewState()
	merged := newNFA(s)
	merged.merge(lhs.nfa)
	merged.merge(rhs.nfa)
	merged.AddTransition(s, EpsilonLabel, lhs.start)
	merged.AddTransition(s, EpsilonLabel, rhs.start)

	finals := append(append([]State{}, lhs.finals...), rhs.finals...)
	return fragment{start: s, finals: finals, nfa: merged}
}

// buildConcat ε-joins every final of lhs to rhs's start; lhs's finals
// are no longer final in the combined fragment.
func (b *Builder) buildConcat(lhs, rhs fragment) fragment {
	merged := newNFA(lhs.start)
	merged.merge(lhs.nfa)
	merged.merge(rhs.nfa)
	for _, f := range lhs.finals {
		merged.AddTransition(f, EpsilonLabel, rhs.start)
	}
	return fragment{start: lhs.start, finals: rhs.finals, nfa: merged}
}

// buildPlus ε-loops every final of child back to child's start and
// leaves child's finals as the result's finals — the child must be
// traversed at least once, so the result accepts ε only if the child
// does.
func (b *Builder) buildPlus(child fragment) fragment {
	s := b.NewState()
	merged := newNFA(s)
	merged.merge(child.nfa)
	merged.AddTransition(s, EpsilonLabel, child.start)
	for _, f := range child.finals {
		merged.AddTransition(f, EpsilonLabel, child.start)
	}
	return fragment{start: s, finals: child.finals, nfa: merged}
}

// buildStar is buildPlus with its new start state also marked final,
// so the empty string is accepted too.
func (b *Builder) buildStar(child fragment) fragment {
	plus := b.buildPlus(child)
	plus.finals = append(plus.finals, plus.start)
	return plus
}

// buildClass translates a character-class sub-tree.
func (b *Builder) buildClass(node ast.ClassNode) fragment {
	switch n := node.(type) {
	case ast.Single:
		return b.buildSymbol(SymbolLabel(n.Char))

	case ast.ClassUnion:
		lhs := b.buildClass(n.Lhs)
		rhs := b.buildClass(n.Rhs)
		return b.buildUnion(lhs, rhs)

	case ast.ClassRange:
		s := b.NewState()
		f := b.NewState()
		frag := fragment{start: s, finals: []State{f}, nfa: newNFA(s)}
		for c := n.Lo; c <= n.Hi; c++ {
			frag.nfa.AddTransition(s, SymbolLabel(c), f)
		}
		return frag

	default:
		panic(fmt.Sprintf("automaton: unknown class node %T", node))
	}
}
