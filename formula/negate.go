// Copyright (c) 2026 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package formula

import "fmt"

// Negate returns a formula in negation normal form (no Not node, negation
// only on atoms as Neg) that is logically equivalent to f. It pushes
// negation down through De Morgan's laws and the usual LTL dualities:
// G <-> F, U <-> R, X <-> X, and negation cancels with a leading Not.
//
// Negate fails only on a nil node or an unknown node kind. Path quantifiers
// are accepted at any depth (Forall and Exists swap under negation); Negate
// does not check where they occur. Callers that need a single top-level
// quantifier, such as the ltl package, check for it themselves.
func Negate(f *Formula) (*Formula, error) {
	return negate(f, false)
}

// negate returns f (if neg is false) or its negation (if neg is true),
// pushed to NNF.
func negate(f *Formula, neg bool) (*Formula, error) {
	if f == nil {
		return nil, fmt.Errorf("formula: negate called on nil formula")
	}
	switch f.Kind {
	case True:
		if neg {
			return FalseF(), nil
		}
		return TrueF(), nil
	case False:
		if neg {
			return TrueF(), nil
		}
		return FalseF(), nil
	case Prop:
		if neg {
			return NegF(f.Atom), nil
		}
		return PropF(f.Atom), nil
	case Neg:
		if neg {
			return PropF(f.Atom), nil
		}
		return NegF(f.Atom), nil
	case Not:
		return negate(f.Sub[0], !neg)
	case Or:
		a, err := negate(f.Sub[0], neg)
		if err != nil {
			return nil, err
		}
		b, err := negate(f.Sub[1], neg)
		if err != nil {
			return nil, err
		}
		if neg {
			return AndF(a, b), nil
		}
		return OrF(a, b), nil
	case And:
		a, err := negate(f.Sub[0], neg)
		if err != nil {
			return nil, err
		}
		b, err := negate(f.Sub[1], neg)
		if err != nil {
			return nil, err
		}
		if neg {
			return OrF(a, b), nil
		}
		return AndF(a, b), nil
	case Next:
		sub, err := negate(f.Sub[0], neg)
		if err != nil {
			return nil, err
		}
		return NextF(sub), nil
	case Global:
		sub, err := negate(f.Sub[0], neg)
		if err != nil {
			return nil, err
		}
		if neg {
			return FinallyF(sub), nil
		}
		return GlobalF(sub), nil
	case Finally:
		sub, err := negate(f.Sub[0], neg)
		if err != nil {
			return nil, err
		}
		if neg {
			return GlobalF(sub), nil
		}
		return FinallyF(sub), nil
	case Until:
		a, err := negate(f.Sub[0], neg)
		if err != nil {
			return nil, err
		}
		b, err := negate(f.Sub[1], neg)
		if err != nil {
			return nil, err
		}
		if neg {
			return ReleaseF(a, b), nil
		}
		return UntilF(a, b), nil
	case Release:
		a, err := negate(f.Sub[0], neg)
		if err != nil {
			return nil, err
		}
		b, err := negate(f.Sub[1], neg)
		if err != nil {
			return nil, err
		}
		if neg {
			return UntilF(a, b), nil
		}
		return ReleaseF(a, b), nil
	case Forall:
		sub, err := negate(f.Sub[0], neg)
		if err != nil {
			return nil, err
		}
		if neg {
			return ExistsF(sub), nil
		}
		return ForallF(sub), nil
	case Exists:
		sub, err := negate(f.Sub[0], neg)
		if err != nil {
			return nil, err
		}
		if neg {
			return ForallF(sub), nil
		}
		return ExistsF(sub), nil
	default:
		return nil, fmt.Errorf("formula: negate: malformed node kind %v", f.Kind)
	}
}

// IsNNF reports whether f contains no Not node, i.e. is in negation normal
// form (spec.md invariant: "Not never appears; only Neg(atom) does").
func IsNNF(f *Formula) bool {
	if f == nil {
		return true
	}
	if f.Kind == Not {
		return false
	}
	for _, s := range f.Sub {
		if !IsNNF(s) {
			return false
		}
	}
	return true
}
