// Copyright (c) 2026 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package ctl

import (
	"context"
	"fmt"

	"github.com/dalzilio/ptcheck/config"
	"github.com/dalzilio/ptcheck/formula"
	"github.com/dalzilio/ptcheck/internal/obslog"
	"github.com/dalzilio/ptcheck/transys"
)

// Checker holds the memo table for a series of queries against a single
// transys.TranSys. Reusing a Checker across several Check calls lets
// sub-formulas shared between queries stay memoized.
type Checker struct {
	ts     *transys.TranSys
	memo   map[uint64]map[int]bool // formula hash -> state -> result
	log    *obslog.Logger
	limits config.Limits
}

// Options configures NewChecker. A nil *Options (or the zero value) leaves
// the memo table unsized and disables the formula-depth limit.
type Options struct {
	Limits config.Limits
}

// NewChecker returns a Checker with an empty memo table over ts. If
// opts.Limits.CTLMemoSizeHint is set, the memo table is pre-sized with it
// to avoid reallocation churn on large TranSys/formula combinations; if
// opts.Limits.MaxFormulaDepth is set, Check rejects deeper formulas before
// doing any work.
func NewChecker(ts *transys.TranSys, opts *Options) *Checker {
	if opts == nil {
		opts = &Options{}
	}
	memo := map[uint64]map[int]bool{}
	if hint := opts.Limits.CTLMemoSizeHint; hint > 0 {
		memo = make(map[uint64]map[int]bool, hint)
	}
	return &Checker{ts: ts, memo: memo, limits: opts.Limits}
}

// WithLogger attaches a logger to c. Check does not write to it: a Checker
// is silent, and an internal invariant violation always aborts via
// internal/obslog.Fatal regardless of the logger.
func (c *Checker) WithLogger(l *obslog.Logger) *Checker {
	c.log = l
	return c
}

// Check decides whether phi holds at state s, in ts.
func Check(ctx context.Context, ts *transys.TranSys, s int, phi *formula.Formula, opts *Options) (bool, error) {
	return NewChecker(ts, opts).Check(ctx, s, phi)
}

// Check decides whether phi holds at state s. It returns an error, rather
// than panicking, for inputs the checker refuses by design: a Cardinality
// atom (spec.md section 1, non-goal), a state id out of range, or a
// formula deeper than the Checker's configured MaxFormulaDepth.
func (c *Checker) Check(ctx context.Context, s int, phi *formula.Formula) (bool, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return false, err
		}
	}
	if s < 0 || s >= c.ts.NumStates() {
		return false, fmt.Errorf("ctl: state %d out of range [0,%d)", s, c.ts.NumStates())
	}
	if c.limits.MaxFormulaDepth > 0 {
		if d := formula.Depth(phi); d > c.limits.MaxFormulaDepth {
			return false, fmt.Errorf("ctl: formula depth %d exceeds configured limit %d", d, c.limits.MaxFormulaDepth)
		}
	}
	return c.check(s, phi)
}

func (c *Checker) lookup(node *formula.Formula, s int) (bool, bool) {
	m, ok := c.memo[formula.Hash(node)]
	if !ok {
		return false, false
	}
	v, ok := m[s]
	return v, ok
}

func (c *Checker) store(node *formula.Formula, s int, v bool) {
	h := formula.Hash(node)
	m := c.memo[h]
	if m == nil {
		m = map[int]bool{}
		c.memo[h] = m
	}
	m[s] = v
}

// check dispatches on phi.Kind, consulting and filling the memo table for
// every node kind (not just EU/AU): cheap, and it lets an EX/AX sub-formula
// shared between two distinct top-level queries stay memoized too.
func (c *Checker) check(s int, phi *formula.Formula) (bool, error) {
	if v, ok := c.lookup(phi, s); ok {
		return v, nil
	}
	v, err := c.dispatch(s, phi)
	if err != nil {
		return false, err
	}
	c.store(phi, s, v)
	return v, nil
}

func (c *Checker) dispatch(s int, phi *formula.Formula) (bool, error) {
	switch phi.Kind {
	case formula.True:
		return true, nil
	case formula.False:
		return false, nil
	case formula.Prop:
		return c.checkAtom(s, phi.Atom, false)
	case formula.Neg:
		return c.checkAtom(s, phi.Atom, true)
	case formula.Not:
		v, err := c.check(s, phi.Sub[0])
		if err != nil {
			return false, err
		}
		return !v, nil
	case formula.Or:
		for _, sub := range phi.Sub {
			v, err := c.check(s, sub)
			if err != nil {
				return false, err
			}
			if v {
				return true, nil
			}
		}
		return false, nil
	case formula.And:
		for _, sub := range phi.Sub {
			v, err := c.check(s, sub)
			if err != nil {
				return false, err
			}
			if !v {
				return false, nil
			}
		}
		return true, nil
	case formula.Exists:
		return c.checkExists(s, phi)
	case formula.Forall:
		return c.checkForall(s, phi)
	default:
		return false, fmt.Errorf("ctl: unsupported operator at top level: %v", phi.Kind)
	}
}

func (c *Checker) checkAtom(s int, a formula.Atom, negated bool) (bool, error) {
	if a.Kind == formula.Cardinality {
		return false, fmt.Errorf("ctl: cardinality atom %s is not checkable (spec non-goal)", a)
	}
	v := c.ts.Fireable(a.Transition, s)
	if negated {
		v = !v
	}
	return v, nil
}

// checkExists handles EX, EG, EF and EU, lowering EG and EF to their
// Until-based or negated forms before recursing (spec.md section 4.D).
func (c *Checker) checkExists(s int, phi *formula.Formula) (bool, error) {
	inner := phi.Sub[0]
	switch inner.Kind {
	case formula.Next:
		return c.checkEX(s, inner.Sub[0])
	case formula.Until:
		return c.checkEU(phi, s, inner.Sub[0], inner.Sub[1])
	case formula.Finally:
		// EF psi == E[True U psi]
		return c.checkEU(phi, s, formula.TrueF(), inner.Sub[0])
	case formula.Global:
		// EG psi == not(AF(not psi))
		rewritten := formula.NotF(formula.ForallF(formula.FinallyF(formula.NotF(inner.Sub[0]))))
		return c.check(s, rewritten)
	default:
		return false, fmt.Errorf("ctl: unsupported path operator under Exists: %v", inner.Kind)
	}
}

// checkForall handles AX, AG, AF and AU, mirroring checkExists.
func (c *Checker) checkForall(s int, phi *formula.Formula) (bool, error) {
	inner := phi.Sub[0]
	switch inner.Kind {
	case formula.Next:
		return c.checkAX(s, inner.Sub[0])
	case formula.Until:
		return c.checkAU(phi, s, inner.Sub[0], inner.Sub[1])
	case formula.Finally:
		// AF psi == A[True U psi]
		return c.checkAU(phi, s, formula.TrueF(), inner.Sub[0])
	case formula.Global:
		// AG psi == not(EF(not psi))
		rewritten := formula.NotF(formula.ExistsF(formula.FinallyF(formula.NotF(inner.Sub[0]))))
		return c.check(s, rewritten)
	default:
		return false, fmt.Errorf("ctl: unsupported path operator under Forall: %v", inner.Kind)
	}
}

func (c *Checker) checkEX(s int, psi *formula.Formula) (bool, error) {
	for _, w := range c.ts.Successors(s) {
		v, err := c.check(w, psi)
		if err != nil {
			return false, err
		}
		if v {
			return true, nil
		}
	}
	return false, nil
}

func (c *Checker) checkAX(s int, psi *formula.Formula) (bool, error) {
	for _, w := range c.ts.Successors(s) {
		v, err := c.check(w, psi)
		if err != nil {
			return false, err
		}
		if !v {
			return false, nil
		}
	}
	return true, nil
}

// checkEU implements spec.md section 4.D's check_EU: a DFS from s, marking
// visited states, that stops descending a branch as soon as phi2 holds or
// phi1 fails. node is the Exists(Until(phi1,phi2)) formula node, used only
// as the memo key so repeated states reuse the per-node cache.
func (c *Checker) checkEU(node *formula.Formula, s int, phi1, phi2 *formula.Formula) (bool, error) {
	visited := map[int]bool{}
	return c.euVisit(node, s, phi1, phi2, visited)
}

func (c *Checker) euVisit(node *formula.Formula, v int, phi1, phi2 *formula.Formula, visited map[int]bool) (bool, error) {
	if val, ok := c.lookup(node, v); ok {
		return val, nil
	}
	visited[v] = true

	sat2, err := c.check(v, phi2)
	if err != nil {
		return false, err
	}
	if sat2 {
		c.store(node, v, true)
		return true, nil
	}
	sat1, err := c.check(v, phi1)
	if err != nil {
		return false, err
	}
	if !sat1 {
		c.store(node, v, false)
		return false, nil
	}
	for _, w := range c.ts.Successors(v) {
		if visited[w] {
			continue
		}
		res, err := c.euVisit(node, w, phi1, phi2, visited)
		if err != nil {
			return false, err
		}
		if res {
			c.store(node, v, true)
			return true, nil
		}
	}
	c.store(node, v, false)
	return false, nil
}

// checkAU implements spec.md section 4.D's check_AU: a DFS from s carrying
// an explicit path stack cp. Finding that phi1 fails at some node forces
// false onto that node and onto every node still on cp, since none of them
// can keep the A[phi1 U phi2] obligation alive through this branch; finding
// a successor already on cp without an intervening phi2 is a cycle and
// forces false onto the whole cycle. A node with no successors satisfies
// A[phi1 U phi2] vacuously once phi1 holds there, mirroring the checker's
// general rule of answering trivially at the edges of the reachable graph
// (spec.md section 7).
func (c *Checker) checkAU(node *formula.Formula, s int, phi1, phi2 *formula.Formula) (bool, error) {
	cp := []int{}
	onPath := map[int]bool{}
	return c.auVisit(node, s, phi1, phi2, &cp, onPath)
}

func (c *Checker) auVisit(node *formula.Formula, v int, phi1, phi2 *formula.Formula, cp *[]int, onPath map[int]bool) (bool, error) {
	if val, ok := c.lookup(node, v); ok {
		return val, nil
	}
	sat2, err := c.check(v, phi2)
	if err != nil {
		return false, err
	}
	if sat2 {
		c.store(node, v, true)
		return true, nil
	}
	sat1, err := c.check(v, phi1)
	if err != nil {
		return false, err
	}
	if !sat1 {
		c.store(node, v, false)
		for _, u := range *cp {
			c.store(node, u, false)
		}
		return false, nil
	}

	*cp = append(*cp, v)
	onPath[v] = true
	allTrue := true
	for _, w := range c.ts.Successors(v) {
		if onPath[w] {
			idx := indexOf(*cp, w)
			if idx < 0 {
				obslog.Fatalf("ctl: successor %d marked on-path but absent from cp %v", w, *cp)
			}
			for _, u := range (*cp)[idx:] {
				c.store(node, u, false)
			}
			allTrue = false
			continue
		}
		res, err := c.auVisit(node, w, phi1, phi2, cp, onPath)
		if err != nil {
			return false, err
		}
		if !res {
			allTrue = false
		}
	}
	*cp = (*cp)[:len(*cp)-1]
	delete(onPath, v)

	// A nested cycle break or phi1-failure may already have forced v's
	// result while v was still on the stack; that forced value is
	// authoritative.
	if val, ok := c.lookup(node, v); ok {
		return val, nil
	}
	c.store(node, v, allTrue)
	return allTrue, nil
}

func indexOf(xs []int, x int) int {
	for i, y := range xs {
		if y == x {
			return i
		}
	}
	return -1
}
