// Copyright (c) 2026 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package formula

import "fmt"

// AtomKind distinguishes the two kinds of propositional atoms recognized at
// the leaves of a Formula. Only Fireability is semantically interpreted by
// the checkers; Cardinality is recognized syntactically and rejected.
type AtomKind uint8

const (
	// Fireability names a transition; the atom holds at a state/marking iff
	// the named transition is fireable there.
	Fireability AtomKind = iota
	// Cardinality compares two token-count expressions. Checkers refuse to
	// evaluate it (spec non-goal).
	Cardinality
)

func (k AtomKind) String() string {
	switch k {
	case Fireability:
		return "is-fireable"
	case Cardinality:
		return "cardinality"
	default:
		return fmt.Sprintf("atomkind(%d)", uint8(k))
	}
}

// Atom is a propositional atom: either the fireability of a named
// transition, or a (left, right) cardinality comparison kept only for
// syntactic round-tripping.
type Atom struct {
	Kind       AtomKind
	Transition string // valid when Kind == Fireability
	LHS, RHS   string // valid when Kind == Cardinality; opaque token-count expressions
}

// Fire returns the fireability atom naming transition t.
func Fire(t string) Atom { return Atom{Kind: Fireability, Transition: t} }

// Card returns a cardinality atom comparing lhs to rhs. The comparison
// operator itself is not modeled: the spec only asks that these atoms be
// recognized and rejected, not interpreted.
func Card(lhs, rhs string) Atom { return Atom{Kind: Cardinality, LHS: lhs, RHS: rhs} }

func (a Atom) String() string {
	switch a.Kind {
	case Fireability:
		return "fire(" + a.Transition + ")"
	case Cardinality:
		return a.LHS + "<=" + a.RHS
	default:
		return "?atom?"
	}
}

func (a Atom) equal(b Atom) bool {
	return a.Kind == b.Kind && a.Transition == b.Transition && a.LHS == b.LHS && a.RHS == b.RHS
}
