// Copyright (c) 2026 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package gba

import (
	"github.com/dalzilio/ptcheck/formula"
	"github.com/dalzilio/ptcheck/fset"
	"github.com/dalzilio/ptcheck/ltl/vwaa"
)

// Trans is one GBA transition: reading Letter moves from the owning state
// to To, discharging the Until obligations in Marks (a subset of the GBA's
// F).
type Trans struct {
	Letter fset.Set
	To     fset.Set
	Marks  fset.Set
}

// GBA is a generalized Büchi automaton whose states are FormulaSets
// (interpreted conjunctively) over a VWAA's state set.
type GBA struct {
	Init []fset.Set
	F    []*formula.Formula // acceptance sets; a run accepts iff it visits every f in F infinitely often

	states     map[string]fset.Set
	stateOrder []string
	trans      map[string][]Trans
}

// State returns the discovered GBA state keyed by key (its String form), or
// the zero Set if none.
func (g *GBA) State(key string) fset.Set { return g.states[key] }

// Trans returns the outgoing transitions of S.
func (g *GBA) Trans(S fset.Set) []Trans { return g.trans[S.String()] }

// States returns every discovered GBA state, in discovery order.
func (g *GBA) States() []fset.Set {
	out := make([]fset.Set, 0, len(g.states))
	for _, s := range g.stateOrder {
		out = append(out, g.states[s])
	}
	return out
}

// Build worklist-expands the GBA of v (spec.md section 4.F): starting from
// v.Init (broken into FormulaSets), repeatedly takes the product of
// v.Delta(s) over every member s of a GBA state, flattens each resulting
// formula into a new GBA state, and records the acceptance marks
// discharged along that transition.
func Build(v *vwaa.VWAA) *GBA {
	g := &GBA{
		F:      v.Accept,
		states: map[string]fset.Set{},
		trans:  map[string][]Trans{},
	}

	var worklist []fset.Set
	seenInit := map[string]bool{}
	for _, init := range v.Init {
		S := fset.BreakConjs(init)
		key := S.String()
		if !seenInit[key] {
			seenInit[key] = true
			g.Init = append(g.Init, S)
		}
		if _, ok := g.states[key]; !ok {
			g.states[key] = S
			g.stateOrder = append(g.stateOrder, key)
			worklist = append(worklist, S)
		}
	}

	for len(worklist) > 0 {
		S := worklist[0]
		worklist = worklist[1:]

		folded := vwaa.Identity()
		for _, s := range S.Slice() {
			folded = vwaa.Product(folded, v.Delta(s))
		}

		for _, t := range folded {
			Sp := fset.BreakConjs(t.Next)
			marks := acceptanceMarks(v, S, t.Letter, Sp)
			addTransition(g, S, t.Letter, Sp, marks)

			key := Sp.String()
			if _, ok := g.states[key]; !ok {
				g.states[key] = Sp
				g.stateOrder = append(g.stateOrder, key)
				worklist = append(worklist, Sp)
			}
		}
	}
	return g
}

// acceptanceMarks computes T subseteq F for the transition (S, letter, Sp),
// per spec.md section 4.F: u is marked iff either u is not a member of S
// (the obligation was never open on this transition), or some transition
// of u itself is compatible with letter and discharges into Sp without u
// surviving.
func acceptanceMarks(v *vwaa.VWAA, S fset.Set, letter fset.Set, Sp fset.Set) fset.Set {
	var marked []*formula.Formula
	for _, u := range v.Accept {
		if !S.Contains(u) {
			marked = append(marked, u)
			continue
		}
		for _, ut := range v.Delta(u) {
			if !fset.Subset(ut.Letter, letter) {
				continue
			}
			brokenQu := fset.BreakConjs(ut.Next)
			if fset.Subset(brokenQu, Sp) && !brokenQu.Contains(u) {
				marked = append(marked, u)
				break
			}
		}
	}
	return fset.New(marked...)
}

// addTransition inserts (letter, Sp, marks) into S's outgoing list applying
// the subsumption rule of spec.md section 4.F: transitions are only
// compared for subsumption within the same acceptance-mark set T, since the
// rule is stated in terms of (σ, S', T) triples sharing T.
func addTransition(g *GBA, S fset.Set, letter, Sp, marks fset.Set) {
	key := S.String()
	list := g.trans[key]

	for _, e := range list {
		if fset.Equal(e.Marks, marks) && fset.Subset(e.Letter, letter) && fset.Subset(e.To, Sp) {
			// an existing, no-more-specific transition already covers this
			// one: the new transition adds nothing.
			return
		}
	}

	next := Trans{Letter: letter, To: Sp, Marks: marks}
	var kept []Trans
	replaced := false
	for _, e := range list {
		if fset.Equal(e.Marks, marks) && fset.Subset(letter, e.Letter) && fset.Subset(Sp, e.To) {
			if !replaced {
				kept = append(kept, next)
				replaced = true
			}
			continue
		}
		kept = append(kept, e)
	}
	if !replaced {
		kept = append(kept, next)
	}
	g.trans[key] = kept
}
