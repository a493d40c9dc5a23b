// Copyright (c) 2026 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package automaton

import "testing"

func TestAddTransitionAndSuccessors(t *testing.T) {
	a := New[string, int](func(s string) string { return s })
	a.AddState("p")
	a.AddState("q")
	a.AddInit("p")
	a.AddAccept("q")
	a.AddTransition("p", 1, "q")
	a.AddTransition("p", 2, "p")

	succ := a.Successors("p")
	if len(succ) != 2 {
		t.Fatalf("expected 2 outgoing edges from p, got %d", len(succ))
	}
	if len(a.Successors("q")) != 0 {
		t.Errorf("expected no outgoing edges from q")
	}
	if len(a.Init) != 1 || a.Init[0] != "p" {
		t.Errorf("expected Init = [p], got %v", a.Init)
	}
	if len(a.Accept) != 1 || a.Accept[0] != "q" {
		t.Errorf("expected Accept = [q], got %v", a.Accept)
	}
}

func TestKeyDistinguishesStates(t *testing.T) {
	type st struct{ n int }
	a := New[st, string](func(s st) string {
		if s.n == 0 {
			return "zero"
		}
		return "nonzero"
	})
	a.AddTransition(st{0}, "x", st{1})
	a.AddTransition(st{7}, "y", st{2})
	if len(a.Successors(st{0})) != 1 {
		t.Errorf("expected one edge keyed under 'zero'")
	}
	if len(a.Successors(st{3})) != 1 {
		t.Errorf("expected st{3} to alias st{7}'s key 'nonzero'")
	}
}
