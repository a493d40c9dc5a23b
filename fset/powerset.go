// Copyright (c) 2026 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package fset

import "github.com/dalzilio/ptcheck/formula"

// Powerset returns every subset of the given formulas, as Set values,
// including the empty set and the full set. This is the general-purpose
// subset enumerator spec.md section 9 alludes to (the original
// implementation's "ltl_maximal_csubsets" was declared but never
// implemented, and spec.md explicitly says no known caller depends on it;
// see DESIGN.md for why we implement the general Powerset but do not
// resurrect that specific, dead, API).
func Powerset(fs []*formula.Formula) []Set {
	n := len(fs)
	out := make([]Set, 0, 1<<uint(n))
	for mask := 0; mask < (1 << uint(n)); mask++ {
		var s Set
		for i, f := range fs {
			if mask&(1<<uint(i)) != 0 {
				s.Add(f)
			}
		}
		if s.buckets == nil {
			s = New()
		}
		out = append(out, s)
	}
	return out
}
