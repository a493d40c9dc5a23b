// Copyright (c) 2026 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package vwaa

import (
	"sort"

	"github.com/dalzilio/ptcheck/formula"
	"github.com/dalzilio/ptcheck/fset"
	"github.com/dalzilio/ptcheck/internal/obslog"
)

// Trans is one outgoing transition of the alternating automaton: reading
// any letter in Letter (a FormulaSet of literals, or {True}) moves to the
// conjunction of states described by Next. Next is not yet flattened into
// a FormulaSet: the gba package does that via BreakConjs once it commits
// to a GBA state.
type Trans struct {
	Letter fset.Set
	Next   *formula.Formula
}

// VWAA is the very-weak alternating automaton of an LTL path formula.
type VWAA struct {
	States []*formula.Formula // Q
	Init   []*formula.Formula // bar(phi): a disjunction of conjunctions
	Accept []*formula.Formula // F: every Until subformula

	delta map[string][]Trans
}

// Delta returns the transitions of state s (keyed by s's canonical string
// form, since *formula.Formula pointers are not stable identities across
// clones).
func (v *VWAA) Delta(s *formula.Formula) []Trans { return v.delta[s.String()] }

// Build constructs the VWAA of phi, an LTL path formula already simplified
// and in negation normal form (no top-level path quantifier: callers strip
// the Forall/Exists envelope before calling Build, per spec.md section
// 4.G's "simplify(negate(phi))" pipeline).
func Build(phi *formula.Formula) *VWAA {
	subs := subformulas(phi)

	v := &VWAA{delta: map[string][]Trans{}}
	for _, s := range subs {
		switch s.Kind {
		case formula.True, formula.False, formula.And, formula.Or:
			// not states of the VWAA (spec.md section 4.E)
		default:
			v.States = append(v.States, s)
		}
		if s.Kind == formula.Until {
			v.Accept = append(v.Accept, s)
		}
	}
	sortFormulas(v.States)
	sortFormulas(v.Accept)

	for _, s := range v.States {
		v.delta[s.String()] = trim(delta(s))
	}
	v.Init = bar(phi)
	sortFormulas(v.Init)
	return v
}

// subformulas returns every distinct (structurally, not pointer) subformula
// of f, f included, via a plain recursive walk deduped by String form.
func subformulas(f *formula.Formula) []*formula.Formula {
	seen := map[string]*formula.Formula{}
	var walk func(*formula.Formula)
	walk = func(n *formula.Formula) {
		if n == nil {
			return
		}
		if _, ok := seen[n.String()]; ok {
			return
		}
		seen[n.String()] = n
		for _, sub := range n.Sub {
			walk(sub)
		}
	}
	walk(f)
	out := make([]*formula.Formula, 0, len(seen))
	for _, n := range seen {
		out = append(out, n)
	}
	sortFormulas(out)
	return out
}

func sortFormulas(fs []*formula.Formula) {
	sort.Slice(fs, func(i, j int) bool { return fs[i].String() < fs[j].String() })
}

// bar implements spec.md section 4.E's initial-condition equation:
// bar(a||b) = bar(a) U bar(b); bar(a&&b) = {x&&y | x in bar(a), y in bar(b)};
// bar(f) = {f} otherwise.
func bar(f *formula.Formula) []*formula.Formula {
	switch f.Kind {
	case formula.Or:
		l := bar(f.Sub[0])
		r := bar(f.Sub[1])
		return dedupFormulas(append(l, r...))
	case formula.And:
		l := bar(f.Sub[0])
		r := bar(f.Sub[1])
		var res []*formula.Formula
		for _, a := range l {
			for _, b := range r {
				res = append(res, formula.AndF(a, b))
			}
		}
		return dedupFormulas(res)
	default:
		return []*formula.Formula{f}
	}
}

func dedupFormulas(fs []*formula.Formula) []*formula.Formula {
	seen := map[string]bool{}
	var out []*formula.Formula
	for _, f := range fs {
		k := f.String()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, f)
	}
	return out
}

// Product exposes the ⊗ combination rule for the gba package, which needs
// to fold delta(s) across every member s of a GBA state (a conjunction of
// VWAA states), not just the two-operand case used internally here.
func Product(lhs, rhs []Trans) []Trans { return product(lhs, rhs) }

// Identity returns the single-element transition set {({True}, True)}, the
// identity element for Product (folding Product over an empty list of
// operands should start from this).
func Identity() []Trans { return []Trans{singleton(formula.TrueF(), formula.TrueF())} }

// product combines two transition sets with the ⊗ operator of spec.md
// section 4.E: (σ1,q1) ⊗ (σ2,q2) = (σ1 ∪ σ2, q1 ∧ q2), with True acting as
// the identity element for the conjunction.
func product(lhs, rhs []Trans) []Trans {
	var res []Trans
	for _, l := range lhs {
		for _, r := range rhs {
			letter := fset.Union(l.Letter, r.Letter)
			var next *formula.Formula
			switch {
			case l.Next.Kind == formula.True:
				next = r.Next
			case r.Next.Kind == formula.True:
				next = l.Next
			default:
				next = formula.AndF(l.Next, r.Next)
			}
			res = append(res, Trans{Letter: letter, Next: next})
		}
	}
	return res
}

// capDelta is cap_delta in spec.md section 4.E: distributes delta over
// Or/And using product, and is otherwise delta itself.
func capDelta(f *formula.Formula) []Trans {
	switch f.Kind {
	case formula.Or:
		return append(capDelta(f.Sub[0]), capDelta(f.Sub[1])...)
	case formula.And:
		return product(capDelta(f.Sub[0]), capDelta(f.Sub[1]))
	default:
		return delta(f)
	}
}

func singleton(letter *formula.Formula, next *formula.Formula) Trans {
	return Trans{Letter: fset.New(letter), Next: next}
}

// delta implements spec.md section 4.E's transition relation.
func delta(f *formula.Formula) []Trans {
	switch f.Kind {
	case formula.True:
		return []Trans{singleton(formula.TrueF(), formula.TrueF())}
	case formula.False:
		return nil
	case formula.Prop, formula.Neg:
		return []Trans{singleton(f, formula.TrueF())}
	case formula.Next:
		var res []Trans
		for _, b := range bar(f.Sub[0]) {
			res = append(res, singleton(formula.TrueF(), b))
		}
		return res
	case formula.Until:
		seed := []Trans{singleton(formula.TrueF(), f)}
		left := capDelta(f.Sub[1])
		right := product(capDelta(f.Sub[0]), seed)
		return append(left, right...)
	case formula.Release:
		seed := []Trans{singleton(formula.TrueF(), f)}
		left := capDelta(f.Sub[1])
		right := append(capDelta(f.Sub[0]), seed...)
		return product(left, right)
	case formula.Or, formula.And:
		return capDelta(f)
	default:
		obslog.Fatalf("vwaa: delta called on an out-of-fragment formula %s (kind %v)", f, f.Kind)
		return nil
	}
}

// trim drops True from every letter that carries more than one literal:
// True is the identity element for letter intersection and only matters
// when it is the sole member (spec.md section 4.E, final paragraph).
func trim(ts []Trans) []Trans {
	out := make([]Trans, len(ts))
	for i, t := range ts {
		if t.Letter.Len() > 1 {
			t.Letter = fset.Diff(t.Letter, fset.New(formula.TrueF()))
		}
		out[i] = t
	}
	return out
}
