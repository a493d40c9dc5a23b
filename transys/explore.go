// Copyright (c) 2026 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package transys

import (
	"sort"

	"github.com/dalzilio/ptcheck/config"
	"github.com/dalzilio/ptcheck/internal/obslog"
	"github.com/dalzilio/ptcheck/ptnet"
)

// Options configures Explore. A nil *Options (or the zero value) is a fully
// valid, silent, unlimited configuration.
type Options struct {
	Limits config.Limits
	Logger *obslog.Logger
}

// Explore builds the TranSys of net by the worklist algorithm of spec.md
// section 4.C: start from the initial marking as state 0, and repeatedly
// pop a (state, marking) pair, fire every enabled transition, apply
// coverability acceleration against every marking on the ancestor path back
// to the root, and either reuse an existing state or allocate a new one.
// After the worklist is exhausted, a defensive post-merge pass folds
// together any states that still carry identical Configs, preserving the
// invariant that no two distinct state ids ever map to the same Config
// (spec.md section 3, tested by scenario 3 in section 8).
//
// Explore never fails: the algorithm's termination follows from the
// well-quasi-ordering of Configs under the omega-aware <= order (spec.md
// section 4.C, "Termination").
func Explore(net *ptnet.Net, opts *Options) *TranSys {
	if opts == nil {
		opts = &Options{}
	}
	logger := opts.Logger

	type item struct {
		id  int
		cfg ptnet.Config
	}

	parent := []int{0}
	configs := []ptnet.Config{net.Initial()}
	edges := [][]int{nil}
	known := map[ptnet.Handle]int{configs[0].Handle(): 0}
	labelSets := []map[string]bool{{}}

	worklist := []item{{0, configs[0]}}

	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]
		s, m := cur.id, cur.cfg

		path := ancestorPath(parent, s)

		if loopsBackTo(configs, path, s, m) {
			labelSets[s] = fireableNames(net, m)
			continue
		}

		for _, t := range net.AllEnabled(m) {
			fired, err := net.Fire(m, t)
			if err != nil {
				obslog.Fatalf("transys: Fire returned an error for an AllEnabled transition: %v", err)
			}
			accelerated := accelerate(configs, path, fired)
			if accelerated && logger != nil {
				logger.Warnf("transys: coverability acceleration applied while expanding state %d via %s", s, net.TransitionName(t))
			}

			h := fired.Handle()
			if existing, ok := known[h]; ok {
				edges[s] = append(edges[s], existing)
				continue
			}

			ns := len(configs)
			known[h] = ns
			configs = append(configs, fired)
			edges = append(edges, nil)
			parent = append(parent, s)
			labelSets = append(labelSets, nil)
			edges[s] = append(edges[s], ns)
			worklist = append(worklist, item{ns, fired})

			if logger != nil && opts.Limits.ExplorerStateWarn > 0 && ns == opts.Limits.ExplorerStateWarn {
				logger.Warnf("transys: explorer has visited %d states, still exploring", ns)
			}
		}

		labelSets[s] = fireableNames(net, m)
	}

	ts := &TranSys{configs: configs, edges: edges}
	mergeDuplicates(ts, labelSets)
	return ts
}

// ancestorPath reconstructs the root-to-s path by walking parent pointers
// backward.
func ancestorPath(parent []int, s int) []int {
	path := []int{s}
	for path[len(path)-1] != 0 {
		p := parent[path[len(path)-1]]
		path = append(path, p)
		if p == 0 {
			break
		}
	}
	// reverse into root..s order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// loopsBackTo reports whether some ancestor of s on path (excluding s
// itself) already carries the exact Config m. With the known-state dedup
// performed in Explore's main loop, no state is ever created with a Config
// equal to one already reachable, so this check is, in practice, never
// true; it is kept because spec.md section 4.C states it explicitly as the
// first thing done with a freshly-popped item.
func loopsBackTo(configs []ptnet.Config, path []int, s int, m ptnet.Config) bool {
	for _, a := range path {
		if a == s {
			continue
		}
		if configs[a].Equal(m) {
			return true
		}
	}
	return false
}

// accelerate implements spec.md section 4.C step 3b: for every ancestor a
// on path whose Config m_a is pointwise <= fired and not equal to it, every
// place where fired strictly exceeds m_a is set to ptnet.Omega in fired
// (mutated in place; fired is always a freshly-cloned Config at the call
// site). Returns whether any acceleration was applied.
func accelerate(configs []ptnet.Config, path []int, fired ptnet.Config) bool {
	applied := false
	for _, a := range path {
		ma := configs[a]
		if !ma.LessEqual(fired) {
			continue
		}
		if ma.Equal(fired) {
			// cover is empty: nothing to accelerate for this ancestor.
			continue
		}
		for p := range fired {
			if fired[p] != ptnet.Omega && fired[p] > ma[p] {
				fired[p] = ptnet.Omega
				applied = true
			}
		}
	}
	return applied
}

func fireableNames(net *ptnet.Net, m ptnet.Config) map[string]bool {
	names := map[string]bool{}
	for _, t := range net.AllEnabled(m) {
		names[net.TransitionName(t)] = true
	}
	return names
}

// mergeDuplicates folds together any states that still carry identical
// Configs (spec.md section 4.C, "Post-processing"), rewiring incoming edges
// of the redundant state onto the surviving one and compacting state ids.
func mergeDuplicates(ts *TranSys, labelSets []map[string]bool) {
	canon := make([]int, len(ts.configs)) // old id -> representative old id
	seen := map[ptnet.Handle]int{}
	for i, c := range ts.configs {
		h := c.Handle()
		if rep, ok := seen[h]; ok {
			canon[i] = rep
		} else {
			seen[h] = i
			canon[i] = i
		}
	}

	// remap: old representative id -> new dense id
	remap := map[int]int{}
	var newConfigs []ptnet.Config
	var newLabelSets []map[string]bool
	for i := range ts.configs {
		if canon[i] != i {
			continue
		}
		remap[i] = len(newConfigs)
		newConfigs = append(newConfigs, ts.configs[i])
		merged := map[string]bool{}
		for name := range labelSets[i] {
			merged[name] = true
		}
		newLabelSets = append(newLabelSets, merged)
	}
	// fold labels of merged-away states into their representative
	for i := range ts.configs {
		if canon[i] == i {
			continue
		}
		rep := remap[canon[i]]
		for name := range labelSets[i] {
			newLabelSets[rep][name] = true
		}
	}

	newEdges := make([][]int, len(newConfigs))
	for i := range ts.configs {
		src := remap[canon[i]]
		seenDst := map[int]bool{}
		for _, dst := range ts.edges[i] {
			nd := remap[canon[dst]]
			if !seenDst[nd] {
				seenDst[nd] = true
				newEdges[src] = append(newEdges[src], nd)
			}
		}
	}

	labels := map[string][]int{}
	for s, names := range newLabelSets {
		for name := range names {
			labels[name] = append(labels[name], s)
		}
	}
	for name := range labels {
		sort.Ints(labels[name])
	}

	ts.configs = newConfigs
	ts.edges = newEdges
	ts.labels = labels
}
