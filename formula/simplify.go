// Copyright (c) 2026 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package formula

// Simplify rewrites the LTL operator set down to {True, False, Prop, Neg,
// Or, And, Next, Until, Release} (plus the top-level Forall/Exists
// envelope), the primitive set the VWAA builder consumes: G phi becomes
// false R phi, and F phi becomes true U phi. Simplify is the identity on
// operators that are already primitive.
//
// Simplify is meant to run on a formula already in negation normal form
// (i.e. after Negate); see the package-level pipeline in the ltl package,
// which always calls Negate before Simplify. If Simplify nonetheless meets
// a Not node directly (a caller invoking it on its own, out of that
// pipeline) it recurses into the negated sub-formula, simplifies it, and
// then pushes the negation through with Negate so the result is still
// NNF-clean; this is the resolution to the spec's open question about
// Not-handling in ltl_simplify (see DESIGN.md, Open Question 2).
func Simplify(f *Formula) *Formula {
	if f == nil {
		return nil
	}
	switch f.Kind {
	case True, False, Prop, Neg:
		return f
	case Not:
		inner := Simplify(f.Sub[0])
		negated, err := Negate(NotF(inner))
		if err != nil {
			// inner was already well-formed (it came from a well-formed
			// tree); Negate cannot fail here.
			panic("formula: simplify: unexpected negate failure: " + err.Error())
		}
		return negated
	case Or:
		return OrF(Simplify(f.Sub[0]), Simplify(f.Sub[1]))
	case And:
		return AndF(Simplify(f.Sub[0]), Simplify(f.Sub[1]))
	case Next:
		return NextF(Simplify(f.Sub[0]))
	case Global:
		// G phi === false R phi
		return ReleaseF(FalseF(), Simplify(f.Sub[0]))
	case Finally:
		// F phi === true U phi
		return UntilF(TrueF(), Simplify(f.Sub[0]))
	case Until:
		return UntilF(Simplify(f.Sub[0]), Simplify(f.Sub[1]))
	case Release:
		return ReleaseF(Simplify(f.Sub[0]), Simplify(f.Sub[1]))
	case Forall:
		return ForallF(Simplify(f.Sub[0]))
	case Exists:
		return ExistsF(Simplify(f.Sub[0]))
	default:
		return f
	}
}
