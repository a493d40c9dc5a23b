// Copyright (c) 2026 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package ltl

import (
	"context"
	"fmt"

	"github.com/dalzilio/ptcheck/config"
	"github.com/dalzilio/ptcheck/formula"
	"github.com/dalzilio/ptcheck/fset"
	"github.com/dalzilio/ptcheck/internal/obslog"
	"github.com/dalzilio/ptcheck/ltl/automaton"
	"github.com/dalzilio/ptcheck/ltl/gba"
	"github.com/dalzilio/ptcheck/ltl/vwaa"
	"github.com/dalzilio/ptcheck/ptnet"
)

// buchi is the concrete instantiation of the generic automaton type for
// this package's Büchi automata: states are (FormulaSet, layer) pairs,
// letters are FormulaSets of literals (spec.md section 3).
type buchi = automaton.Automaton[gba.BAState, fset.Set]

// Options configures Check. A nil *Options (or the zero value) disables
// the formula-depth limit and runs gba.Degeneralize without a logger.
type Options struct {
	Limits config.Limits
	Logger *obslog.Logger
}

// Check decides whether phi (a Forall-quantified LTL formula, spec.md
// section 3) holds at net's initial marking. It builds the Büchi
// automaton of phi's negation, forms its synchronous product with net's
// on-the-fly successors, and decides emptiness by nested depth-first
// search: phi holds iff the product is empty (spec.md section 4.G).
func Check(ctx context.Context, net *ptnet.Net, initial ptnet.Config, phi *formula.Formula, opts *Options) (bool, error) {
	if opts == nil {
		opts = &Options{}
	}
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return false, err
		}
	}
	if opts.Limits.MaxFormulaDepth > 0 {
		if d := formula.Depth(phi); d > opts.Limits.MaxFormulaDepth {
			return false, fmt.Errorf("ltl: formula depth %d exceeds configured limit %d", d, opts.Limits.MaxFormulaDepth)
		}
	}
	inner, err := negatedPathFormula(phi)
	if err != nil {
		return false, err
	}

	v := vwaa.Build(inner)
	g := gba.Build(v)
	b := gba.Degeneralize(g, opts.Logger)

	return isEmpty(b, net, initial), nil
}

// negatedPathFormula runs simplify(negate(phi)) (spec.md section 4.A) and
// strips the top-level path quantifier the VWAA builder does not expect.
// formula.Negate only pushes an existing Not node to NNF, so phi is
// wrapped in NotF first to actually obtain its negation.
func negatedPathFormula(phi *formula.Formula) (*formula.Formula, error) {
	negated, err := formula.Negate(formula.NotF(phi))
	if err != nil {
		return nil, fmt.Errorf("ltl: negating formula: %w", err)
	}
	simplified := formula.Simplify(negated)
	if simplified.Kind != formula.Forall && simplified.Kind != formula.Exists {
		return nil, fmt.Errorf("ltl: expected a path-quantified LTL formula, got %s", simplified)
	}
	return simplified.Sub[0], nil
}

// checker holds the nested-DFS state for one emptiness query.
type checker struct {
	ba         *buchi
	net        *ptnet.Net
	acceptKeys map[string]bool
	visited1   map[prodKey]bool
	visited2   map[prodKey]bool
}

func (c *checker) key(s prodState) prodKey {
	return prodKey{ba: c.ba.Key(s.BA), m: s.M.Handle()}
}

// successors computes the product's on-the-fly outgoing edges from s: for
// every Büchi edge out of s.BA and every net transition enabled in s.M,
// fire it and keep the result if the edge's letter is compatible with the
// marking reached (product.go's letterCompatible).
func (c *checker) successors(s prodState) []prodState {
	var out []prodState
	enabled := c.net.AllEnabled(s.M)
	for _, e := range c.ba.Successors(s.BA) {
		for _, t := range enabled {
			fired, err := c.net.Fire(s.M, t)
			if err != nil {
				obslog.Fatalf("ltl: Fire returned an error for an AllEnabled transition: %v", err)
			}
			if letterCompatible(e.Letter, c.net, fired) {
				out = append(out, prodState{BA: e.To, M: fired})
			}
		}
	}
	return out
}

// dfs1 is the outer search of the nested DFS (spec.md section 4.G): it
// marks every state it descends into as visited1 and, once it has fully
// explored an accepting state's subtree, launches the inner search from
// it.
func (c *checker) dfs1(s prodState) bool {
	c.visited1[c.key(s)] = true
	for _, succ := range c.successors(s) {
		if !c.visited1[c.key(succ)] {
			if c.dfs1(succ) {
				return true
			}
		}
	}
	if c.acceptKeys[c.ba.Key(s.BA)] {
		if c.dfs2(s, c.key(s)) {
			return true
		}
	}
	return false
}

// dfs2 is the inner search: launched from the accepting state seed once the
// outer DFS has fully explored seed's subtree, it looks for a path from s
// back to seed, which certifies a reachable cycle through the accepting
// state (Courcoubetis-Vardi-Wolper-Yannakakis). visited2 is shared across
// every inner search of one query.
func (c *checker) dfs2(s prodState, seed prodKey) bool {
	c.visited2[c.key(s)] = true
	for _, succ := range c.successors(s) {
		sk := c.key(succ)
		if sk == seed {
			return true
		}
		if !c.visited2[sk] {
			if c.dfs2(succ, seed) {
				return true
			}
		}
	}
	return false
}

// isEmpty reports whether the product of b and net (starting from every
// initial Büchi state and net's initial marking) has no accepting run.
func isEmpty(b *buchi, net *ptnet.Net, initial ptnet.Config) bool {
	c := &checker{
		ba:         b,
		net:        net,
		acceptKeys: map[string]bool{},
		visited1:   map[prodKey]bool{},
		visited2:   map[prodKey]bool{},
	}
	for _, a := range b.Accept {
		c.acceptKeys[b.Key(a)] = true
	}
	for _, initBA := range b.Init {
		if c.dfs1(prodState{BA: initBA, M: initial}) {
			return false
		}
	}
	return true
}
