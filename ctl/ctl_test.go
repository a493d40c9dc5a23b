// Copyright (c) 2026 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package ctl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dalzilio/ptcheck/config"
	"github.com/dalzilio/ptcheck/formula"
	"github.com/dalzilio/ptcheck/ptnet"
	"github.com/dalzilio/ptcheck/transys"
)

func mustCheck(t *testing.T, ts *transys.TranSys, s int, phi *formula.Formula) bool {
	t.Helper()
	v, err := Check(context.Background(), ts, s, phi, nil)
	require.NoErrorf(t, err, "Check(%d, %s)", s, phi)
	return v
}

// loop net: single place p0 = 1, single transition t looping p0 back to
// itself (spec.md scenario 1).
func loopNet(t *testing.T) *transys.TranSys {
	t.Helper()
	net := ptnet.NewNet("loop")
	p0, _ := net.AddPlace("p0", 1, false)
	tr, _ := net.AddTransition("t")
	_ = net.AddArc(p0, tr, 1, ptnet.PlaceToTransition)
	_ = net.AddArc(p0, tr, 1, ptnet.TransitionToPlace)
	return transys.Explore(net, nil)
}

// deadlockNet: p0 = 1, t consumes it with no way back (spec.md scenario 2).
func deadlockNet(t *testing.T) *transys.TranSys {
	t.Helper()
	net := ptnet.NewNet("deadlock")
	p0, _ := net.AddPlace("p0", 1, false)
	tr, _ := net.AddTransition("t")
	_ = net.AddArc(p0, tr, 1, ptnet.PlaceToTransition)
	return transys.Explore(net, nil)
}

func TestEXOnSelfLoop(t *testing.T) {
	ts := loopNet(t)
	phi := formula.ExistsF(formula.NextF(formula.PropF(formula.Fire("t"))))
	assert.True(t, mustCheck(t, ts, 0, phi), "expected EX fire(t) to hold at the self-loop state")
}

func TestAGFireAlwaysPossibleOnLoop(t *testing.T) {
	ts := loopNet(t)
	phi := formula.ForallF(formula.GlobalF(formula.PropF(formula.Fire("t"))))
	assert.True(t, mustCheck(t, ts, 0, phi), "expected AG fire(t) to hold on an infinite self-loop")
}

func TestAGFireFailsAfterDeadlock(t *testing.T) {
	ts := deadlockNet(t)
	phi := formula.ForallF(formula.GlobalF(formula.PropF(formula.Fire("t"))))
	assert.False(t, mustCheck(t, ts, 0, phi), "expected AG fire(t) to fail once t can deadlock")
}

func TestEFReachesDeadlock(t *testing.T) {
	ts := deadlockNet(t)
	// EF(not fire(t)) should hold at the initial state: firing t once leads
	// to a state where t is no longer fireable.
	phi := formula.ExistsF(formula.FinallyF(formula.NotF(formula.PropF(formula.Fire("t")))))
	assert.True(t, mustCheck(t, ts, 0, phi), "expected EF !fire(t) to hold")
}

func TestAUReachesDeadlockOnAllPaths(t *testing.T) {
	ts := deadlockNet(t)
	phi := formula.ForallF(formula.UntilF(
		formula.PropF(formula.Fire("t")),
		formula.NotF(formula.PropF(formula.Fire("t"))),
	))
	assert.True(t, mustCheck(t, ts, 0, phi), "expected A[fire(t) U !fire(t)] to hold on the deadlock net")
}

func TestEUFalseWhenTargetNeverHolds(t *testing.T) {
	ts := loopNet(t)
	phi := formula.ExistsF(formula.UntilF(
		formula.PropF(formula.Fire("t")),
		formula.FalseF(),
	))
	assert.False(t, mustCheck(t, ts, 0, phi), "expected E[fire(t) U false] to be false")
}

func TestCardinalityAtomRefused(t *testing.T) {
	ts := loopNet(t)
	phi := formula.PropF(formula.Card("p0", "p1"))
	_, err := Check(context.Background(), ts, 0, phi, nil)
	assert.Error(t, err, "expected an error for a cardinality atom")
}

func TestCheckRejectsOutOfRangeState(t *testing.T) {
	ts := loopNet(t)
	_, err := Check(context.Background(), ts, 99, formula.TrueF(), nil)
	assert.Error(t, err, "expected an error for an out-of-range state")
}

func TestMemoReusedAcrossQueries(t *testing.T) {
	ts := loopNet(t)
	c := NewChecker(ts, nil)
	phi := formula.ExistsF(formula.NextF(formula.PropF(formula.Fire("t"))))
	v1, err := c.Check(context.Background(), 0, phi)
	require.NoError(t, err, "first Check")
	v2, err := c.Check(context.Background(), 0, phi)
	require.NoError(t, err, "second Check")
	assert.Equal(t, v1, v2, "expected memoized result to be stable across calls")
}

func TestMaxFormulaDepthRejectsDeepFormula(t *testing.T) {
	ts := loopNet(t)
	phi := formula.ForallF(formula.GlobalF(formula.PropF(formula.Fire("t"))))
	opts := &Options{Limits: config.Limits{MaxFormulaDepth: 1}}
	_, err := Check(context.Background(), ts, 0, phi, opts)
	assert.Error(t, err, "expected a formula deeper than MaxFormulaDepth to be rejected")
}

func TestCTLMemoSizeHintPresizesMemoTable(t *testing.T) {
	ts := loopNet(t)
	c := NewChecker(ts, &Options{Limits: config.Limits{CTLMemoSizeHint: 64}})
	require.NotNil(t, c.memo, "expected a pre-sized memo table, not a nil map")
	assert.Equal(t, 0, len(c.memo), "a freshly pre-sized memo table starts empty")
}
