// Copyright (c) 2026 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package fset

import (
	"testing"

	"github.com/dalzilio/ptcheck/formula"
)

func TestHashOrderIndependent(t *testing.T) {
	a := formula.PropF(formula.Fire("a"))
	b := formula.PropF(formula.Fire("b"))
	c := formula.PropF(formula.Fire("c"))

	s1 := New(a, b, c)
	s2 := New(c, a, b)

	if s1.Hash() != s2.Hash() {
		t.Errorf("Hash depends on insertion order: %d != %d", s1.Hash(), s2.Hash())
	}
	if !Equal(s1, s2) {
		t.Errorf("expected s1 and s2 to be Equal")
	}
}

func TestSetOps(t *testing.T) {
	a := formula.PropF(formula.Fire("a"))
	b := formula.PropF(formula.Fire("b"))
	c := formula.PropF(formula.Fire("c"))

	s := New(a, b)
	t2 := New(b, c)

	if Union(s, t2).Len() != 3 {
		t.Errorf("Union: expected 3 members, actual %d", Union(s, t2).Len())
	}
	if Intersect(s, t2).Len() != 1 || !Intersect(s, t2).Contains(b) {
		t.Errorf("Intersect: expected {b}, actual %v", Intersect(s, t2))
	}
	if Diff(s, t2).Len() != 1 || !Diff(s, t2).Contains(a) {
		t.Errorf("Diff: expected {a}, actual %v", Diff(s, t2))
	}
	if !Subset(New(a), s) {
		t.Errorf("expected {a} subset of %v", s)
	}
}

func TestBreakConjs(t *testing.T) {
	a := formula.PropF(formula.Fire("a"))
	b := formula.PropF(formula.Fire("b"))
	c := formula.PropF(formula.Fire("c"))

	tables := []struct {
		in   *formula.Formula
		want Set
	}{
		{formula.TrueF(), New(formula.TrueF())},
		{formula.AndF(a, formula.AndF(b, c)), New(a, b, c)},
		{formula.AndF(formula.TrueF(), a), New(a)},
		{a, New(a)},
	}
	for _, tt := range tables {
		got := BreakConjs(tt.in)
		if !Equal(got, tt.want) {
			t.Errorf("BreakConjs(%v): expected %v, actual %v", tt.in, tt.want, got)
		}
	}
}

func TestPowerset(t *testing.T) {
	a := formula.PropF(formula.Fire("a"))
	b := formula.PropF(formula.Fire("b"))
	ps := Powerset([]*formula.Formula{a, b})
	if len(ps) != 4 {
		t.Fatalf("Powerset of a 2-element list: expected 4 subsets, actual %d", len(ps))
	}
	foundEmpty, foundFull := false, false
	for _, s := range ps {
		if s.Empty() {
			foundEmpty = true
		}
		if s.Len() == 2 {
			foundFull = true
		}
	}
	if !foundEmpty || !foundFull {
		t.Errorf("Powerset missing empty or full set: %v", ps)
	}
}
