// Copyright (c) 2026 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package ftext

import (
	"testing"

	"github.com/dalzilio/ptcheck/formula"
)

func TestParseLiterals(t *testing.T) {
	tr, err := Parse("true")
	if err != nil || !formula.Equal(tr, formula.TrueF()) {
		t.Errorf("Parse(true) = %v, %v", tr, err)
	}
	fa, err := Parse("false")
	if err != nil || !formula.Equal(fa, formula.FalseF()) {
		t.Errorf("Parse(false) = %v, %v", fa, err)
	}
}

func TestParseFireabilityAtomAndNegation(t *testing.T) {
	got, err := Parse("fire(t0)")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	want := formula.PropF(formula.Fire("t0"))
	if !formula.Equal(got, want) {
		t.Errorf("got %s, want %s", got, want)
	}

	neg, err := Parse("!fire(t0)")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if !formula.Equal(neg, formula.NegF(formula.Fire("t0"))) {
		t.Errorf("got %s, want !fire(t0)", neg)
	}
}

func TestParseCardinalityAtom(t *testing.T) {
	got, err := Parse("p0<=p1")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if !formula.Equal(got, formula.PropF(formula.Card("p0", "p1"))) {
		t.Errorf("got %s, want p0<=p1", got)
	}
}

func TestParseTemporalOperators(t *testing.T) {
	cases := []struct {
		text string
		want *formula.Formula
	}{
		{"X(fire(t))", formula.NextF(formula.PropF(formula.Fire("t")))},
		{"G(fire(t))", formula.GlobalF(formula.PropF(formula.Fire("t")))},
		{"F(fire(t))", formula.FinallyF(formula.PropF(formula.Fire("t")))},
		{"A(G(fire(t)))", formula.ForallF(formula.GlobalF(formula.PropF(formula.Fire("t"))))},
		{"E(F(fire(t)))", formula.ExistsF(formula.FinallyF(formula.PropF(formula.Fire("t"))))},
		{"(fire(a) U fire(b))", formula.UntilF(formula.PropF(formula.Fire("a")), formula.PropF(formula.Fire("b")))},
		{"(fire(a) R fire(b))", formula.ReleaseF(formula.PropF(formula.Fire("a")), formula.PropF(formula.Fire("b")))},
		{"(fire(a) or fire(b))", formula.OrF(formula.PropF(formula.Fire("a")), formula.PropF(formula.Fire("b")))},
		{"(fire(a) and fire(b))", formula.AndF(formula.PropF(formula.Fire("a")), formula.PropF(formula.Fire("b")))},
		{"!(fire(a))", formula.NotF(formula.PropF(formula.Fire("a")))},
	}
	for _, c := range cases {
		got, err := Parse(c.text)
		if err != nil {
			t.Errorf("Parse(%q) returned error: %v", c.text, err)
			continue
		}
		if !formula.Equal(got, c.want) {
			t.Errorf("Parse(%q) = %s, want %s", c.text, got, c.want)
		}
	}
}

func TestParseRoundTripsThroughString(t *testing.T) {
	original := formula.ForallF(formula.GlobalF(formula.OrF(
		formula.PropF(formula.Fire("t0")),
		formula.NegF(formula.Fire("t1")),
	)))
	text := original.String()
	reparsed, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", text, err)
	}
	if !formula.Equal(original, reparsed) {
		t.Errorf("round-trip mismatch: original %s, reparsed %s", original, reparsed)
	}
}

func TestParseRejectsTrailingGarbage(t *testing.T) {
	if _, err := Parse("true true"); err == nil {
		t.Errorf("expected an error for trailing input")
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	cases := []string{"", "(", "fire(", "fire(t0", "X", "(fire(a) xor fire(b))"}
	for _, c := range cases {
		if _, err := Parse(c); err == nil {
			t.Errorf("Parse(%q): expected an error", c)
		}
	}
}
