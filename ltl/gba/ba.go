// Copyright (c) 2026 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package gba

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dalzilio/ptcheck/fset"
	"github.com/dalzilio/ptcheck/internal/obslog"
	"github.com/dalzilio/ptcheck/ltl/automaton"
)

// BAState is a degeneralized Büchi automaton state: a GBA state paired with
// the index of the next acceptance set that has yet to be discharged
// (spec.md section 4.F). Layer Idx == len(F) is the single accepting
// layer.
type BAState struct {
	S   fset.Set
	Idx int
}

func baKey(bs BAState) string { return fmt.Sprintf("%s#%d", bs.S.String(), bs.Idx) }

// Degeneralize turns g into an ordinary Büchi automaton by the CAV'01
// layering construction (spec.md section 4.F), then prunes states that are
// bisimilar (identical outgoing transitions, agreeing on whether they sit
// in the accepting layer) so that dead/duplicate states do not inflate the
// emptiness-check product. log may be nil; when given, it receives a Debug
// line per bisimilar-state merge and a summary line once the elimination
// pass reaches its fixpoint.
func Degeneralize(g *GBA, log *obslog.Logger) *automaton.Automaton[BAState, fset.Set] {
	k := len(g.F)

	type rawEdge struct {
		letter fset.Set
		toKey  string
	}
	type rawState struct {
		bs     BAState
		out    []rawEdge
		accept bool
	}

	raw := map[string]*rawState{}
	var order []string
	var worklist []string

	addState := func(bs BAState) string {
		key := baKey(bs)
		if _, ok := raw[key]; !ok {
			raw[key] = &rawState{bs: bs, accept: bs.Idx == k}
			order = append(order, key)
			worklist = append(worklist, key)
		}
		return key
	}

	layerAdvance := func(i int, marks fset.Set) int {
		j := i
		if i >= k {
			j = 0
		}
		for j < k && marks.Contains(g.F[j]) {
			j++
		}
		return j
	}

	var initKeys []string
	for _, initS := range g.Init {
		initKeys = append(initKeys, addState(BAState{S: initS, Idx: 0}))
	}

	for len(worklist) > 0 {
		key := worklist[0]
		worklist = worklist[1:]
		cur := raw[key].bs
		for _, e := range g.Trans(cur.S) {
			j := layerAdvance(cur.Idx, e.Marks)
			toKey := addState(BAState{S: e.To, Idx: j})
			raw[key].out = append(raw[key].out, rawEdge{letter: e.Letter, toKey: toKey})
		}
	}

	// Dead/duplicate-state elimination: iteratively merge states that agree
	// on accepting-layer membership and whose outgoing transitions land (up
	// to the current merge) on the same representatives.
	remap := map[string]string{}
	for _, key := range order {
		remap[key] = key
	}
	var resolve func(string) string
	resolve = func(k string) string {
		for remap[k] != k {
			k = remap[k]
		}
		return k
	}
	signature := func(rs *rawState) string {
		edges := make([]string, len(rs.out))
		for i, e := range rs.out {
			edges[i] = e.letter.String() + "->" + resolve(e.toKey)
		}
		sort.Strings(edges)
		return fmt.Sprintf("%v|%s", rs.accept, strings.Join(edges, ";"))
	}
	merged := 0
	for changed := true; changed; {
		changed = false
		sigToRep := map[string]string{}
		for _, key := range order {
			if resolve(key) != key {
				continue
			}
			sig := signature(raw[key])
			if rep, ok := sigToRep[sig]; ok && rep != key {
				remap[key] = rep
				changed = true
				merged++
				log.Debugf("gba: merging bisimilar BA state %s into %s", key, rep)
			} else {
				sigToRep[sig] = key
			}
		}
	}
	log.Debugf("gba: degeneralize eliminated %d of %d raw states", merged, len(order))

	ba := automaton.New[BAState, fset.Set](baKey)
	added := map[string]bool{}
	for _, key := range order {
		rep := resolve(key)
		if added[rep] {
			continue
		}
		added[rep] = true
		ba.AddState(raw[rep].bs)
		if raw[rep].accept {
			ba.AddAccept(raw[rep].bs)
		}
	}
	seenInit := map[string]bool{}
	for _, key := range initKeys {
		rep := resolve(key)
		if seenInit[rep] {
			continue
		}
		seenInit[rep] = true
		ba.AddInit(raw[rep].bs)
	}
	seenEdge := map[string]bool{}
	for _, key := range order {
		rep := resolve(key)
		for _, e := range raw[key].out {
			toRep := resolve(e.toKey)
			eKey := rep + "|" + e.letter.String() + "|" + toRep
			if seenEdge[eKey] {
				continue
			}
			seenEdge[eKey] = true
			ba.AddTransition(raw[rep].bs, e.letter, raw[toRep].bs)
		}
	}
	return ba
}
