// Copyright (c) 2026 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package gba

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dalzilio/ptcheck/formula"
	"github.com/dalzilio/ptcheck/ltl/vwaa"
)

func TestBuildFromAtom(t *testing.T) {
	phi := formula.PropF(formula.Fire("t"))
	v := vwaa.Build(phi)
	g := Build(v)

	require.NotEmpty(t, g.Init, "expected at least one initial GBA state")
	require.NotEmpty(t, g.States(), "expected at least one discovered GBA state")
}

func TestDegeneralizeMarksSingleLayerAsAccepting(t *testing.T) {
	// fire(t) has no Until subformula: F is empty, so k=0 and every reached
	// state sits at layer 0 == k, i.e. every state is accepting.
	phi := formula.PropF(formula.Fire("t"))
	v := vwaa.Build(phi)
	g := Build(v)
	ba := Degeneralize(g, nil)

	require.NotZero(t, ba.NumStates(), "expected at least one BA state")
	assert.Lenf(t, ba.Accept, ba.NumStates(), "expected every state accepting when F is empty")
}

func TestDegeneralizeUntilProducesNonTrivialLayering(t *testing.T) {
	// true U fire(t): F = {the Until formula itself}, k=1.
	phi := formula.UntilF(formula.TrueF(), formula.PropF(formula.Fire("t")))
	v := vwaa.Build(phi)
	g := Build(v)
	ba := Degeneralize(g, nil)

	require.NotZero(t, ba.NumStates(), "expected at least one BA state")
	assert.NotEmpty(t, ba.Init, "expected at least one initial BA state")
}
