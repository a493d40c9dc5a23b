// Copyright (c) 2026 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package ltl

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dalzilio/ptcheck/config"
	"github.com/dalzilio/ptcheck/formula"
	"github.com/dalzilio/ptcheck/fset"
	"github.com/dalzilio/ptcheck/ltl/automaton"
	"github.com/dalzilio/ptcheck/ltl/gba"
	"github.com/dalzilio/ptcheck/ltl/vwaa"
	"github.com/dalzilio/ptcheck/ptnet"
)

// automatonBA is the concrete Büchi automaton type Degeneralize returns.
type automatonBA = automaton.Automaton[gba.BAState, fset.Set]

func mustCheck(t *testing.T, net *ptnet.Net, phi *formula.Formula) bool {
	t.Helper()
	v, err := Check(context.Background(), net, net.Initial(), phi, nil)
	require.NoErrorf(t, err, "Check(%s)", phi)
	return v
}

// noopNet: p0 = 1, t consumes p0 with no effect, so t fires exactly once
// and then the net deadlocks (spec.md scenario 4, "LTL safety").
func noopNet(t *testing.T) *ptnet.Net {
	t.Helper()
	net := ptnet.NewNet("noop")
	p0, _ := net.AddPlace("p0", 1, false)
	tr, _ := net.AddTransition("t")
	_ = net.AddArc(p0, tr, 1, ptnet.PlaceToTransition)
	return net
}

// independentNet: two always-fireable transitions on disjoint places,
// so both fire infinitely often along every run (spec.md scenario 5,
// "LTL liveness").
func independentNet(t *testing.T) *ptnet.Net {
	t.Helper()
	net := ptnet.NewNet("independent")
	pa, _ := net.AddPlace("pa", 1, false)
	pb, _ := net.AddPlace("pb", 1, false)
	ta, _ := net.AddTransition("t_a")
	tb, _ := net.AddTransition("t_b")
	_ = net.AddArc(pa, ta, 1, ptnet.PlaceToTransition)
	_ = net.AddArc(pa, ta, 1, ptnet.TransitionToPlace)
	_ = net.AddArc(pb, tb, 1, ptnet.PlaceToTransition)
	_ = net.AddArc(pb, tb, 1, ptnet.TransitionToPlace)
	return net
}

func TestSafetyFormulaFailsWhenTransitionFiresOnce(t *testing.T) {
	net := noopNet(t)
	phi := formula.ForallF(formula.GlobalF(formula.NotF(formula.PropF(formula.Fire("t")))))
	assert.False(t, mustCheck(t, net, phi), "expected AG !fire(t) to fail: t fires at the initial marking")
}

func TestLivenessFormulaHoldsOnIndependentTransitions(t *testing.T) {
	net := independentNet(t)
	phi := formula.ForallF(formula.GlobalF(formula.FinallyF(formula.PropF(formula.Fire("t_a")))))
	assert.True(t, mustCheck(t, net, phi), "expected AG AF fire(t_a) to hold: t_a is always eventually fireable again")
}

func TestLivenessFormulaFailsWhenTransitionDisabledForever(t *testing.T) {
	net := noopNet(t)
	// Once t fires it can never fire again, so AG AF fire(t) must fail.
	phi := formula.ForallF(formula.GlobalF(formula.FinallyF(formula.PropF(formula.Fire("t")))))
	assert.False(t, mustCheck(t, net, phi), "expected AG AF fire(t) to fail once t can no longer fire")
}

func TestNegatedPathFormulaRejectsPropositionalFormula(t *testing.T) {
	net := noopNet(t)
	phi := formula.PropF(formula.Fire("t"))
	_, err := Check(context.Background(), net, net.Initial(), phi, nil)
	assert.Error(t, err, "expected an error for a formula with no top-level path quantifier")
}

func TestExistsEventuallyHoldsOnLoop(t *testing.T) {
	net := independentNet(t)
	phi := formula.ExistsF(formula.FinallyF(formula.PropF(formula.Fire("t_a"))))
	assert.True(t, mustCheck(t, net, phi), "expected E F fire(t_a) to hold")
}

func TestMaxFormulaDepthRejectsDeepFormula(t *testing.T) {
	net := noopNet(t)
	phi := formula.ForallF(formula.GlobalF(formula.PropF(formula.Fire("t"))))
	opts := &Options{Limits: config.Limits{MaxFormulaDepth: 1}}
	_, err := Check(context.Background(), net, net.Initial(), phi, opts)
	assert.Error(t, err, "expected a formula deeper than MaxFormulaDepth to be rejected")
}

// buchiSnapshot is a structural, exported-only projection of a
// *automaton.Automaton[gba.BAState, fset.Set] used to diff two
// independently-built automata with go-cmp without tripping over the
// automaton's unexported key/transition-index fields.
type buchiSnapshot struct {
	States []string
	Init   []string
	Accept []string
	Edges  []string
}

func snapshotBA(ba *automatonBA) buchiSnapshot {
	snap := buchiSnapshot{}
	for _, s := range ba.States {
		snap.States = append(snap.States, ba.Key(s))
	}
	for _, s := range ba.Init {
		snap.Init = append(snap.Init, ba.Key(s))
	}
	for _, s := range ba.Accept {
		snap.Accept = append(snap.Accept, ba.Key(s))
	}
	for _, s := range ba.States {
		for _, e := range ba.Successors(s) {
			snap.Edges = append(snap.Edges, fmt.Sprintf("%s -%s-> %s", ba.Key(s), e.Letter, ba.Key(e.To)))
		}
	}
	sort.Strings(snap.States)
	sort.Strings(snap.Init)
	sort.Strings(snap.Accept)
	sort.Strings(snap.Edges)
	return snap
}

// TestDegeneralizeIsDeterministicUpToStateNaming builds the Büchi automaton
// for the same formula twice and checks, via go-cmp, that the two runs
// discover structurally identical automata: same state/init/accept keys and
// same edge relation, regardless of the nondeterministic map-iteration
// order the worklist construction runs over internally.
func TestDegeneralizeIsDeterministicUpToStateNaming(t *testing.T) {
	phi := formula.UntilF(formula.TrueF(), formula.PropF(formula.Fire("t")))

	build := func() *automatonBA {
		return gba.Degeneralize(gba.Build(vwaa.Build(phi)), nil)
	}

	got := snapshotBA(build())
	want := snapshotBA(build())

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Degeneralize(%s) not reproducible (-want +got):\n%s", phi, diff)
	}
}
