// Copyright (c) 2026 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package fset

import "github.com/dalzilio/ptcheck/formula"

// BreakConjs flattens a (possibly nested) conjunction into a canonical Set
// of its top-level conjuncts, the "break_conjs" operation of spec.md section
// 4.F: a chain of And nodes becomes the set of its leaves, and True is
// dropped from any conjunction with at least one other conjunct (True is
// the identity of conjunction). The only case where the result contains
// True is when f is exactly True, in which case the returned Set is the
// singleton {True} (spec.md's canonicality invariant in section 3).
func BreakConjs(f *formula.Formula) Set {
	if f == nil {
		return New()
	}
	if f.Kind == formula.True {
		return New(f)
	}
	s := New()
	flattenAnd(f, &s)
	if s.Empty() {
		return New(formula.TrueF())
	}
	if s.Len() > 1 {
		// True is the identity element: drop it once we know there is at
		// least one other conjunct.
		filtered := New()
		for _, g := range s.Slice() {
			if g.Kind != formula.True {
				filtered.Add(g)
			}
		}
		if !filtered.Empty() {
			return filtered
		}
	}
	return s
}

func flattenAnd(f *formula.Formula, s *Set) {
	if f.Kind == formula.And {
		flattenAnd(f.Sub[0], s)
		flattenAnd(f.Sub[1], s)
		return
	}
	s.Add(f)
}
