// Copyright (c) 2026 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package transys

import "github.com/dalzilio/ptcheck/ptnet"

// TranSys is a finite transition system built from a PT net: a finite set
// of abstract state ids (dense integers), a mapping state -> Config, a
// forward transition relation, and a labeling from transition name to the
// set of states where that transition is fireable (spec.md section 3).
type TranSys struct {
	configs []ptnet.Config
	edges   [][]int
	labels  map[string][]int // transition name -> sorted state ids
}

// NumStates returns the number of states in t.
func (t *TranSys) NumStates() int { return len(t.configs) }

// Config returns the Config associated with state s.
func (t *TranSys) Config(s int) ptnet.Config { return t.configs[s] }

// Successors returns the states reachable from s in one step.
func (t *TranSys) Successors(s int) []int { return t.edges[s] }

// Fireable reports whether transition name is fireable at state s, i.e.
// whether s is in name's label set.
func (t *TranSys) Fireable(name string, s int) bool {
	states, ok := t.labels[name]
	if !ok {
		return false
	}
	// states is sorted (built that way in Explore); a linear scan is fine
	// at the sizes this checker targets and keeps the label representation
	// simple to merge during post-processing.
	for _, st := range states {
		if st == s {
			return true
		}
		if st > s {
			return false
		}
	}
	return false
}

// StatesFiring returns the (sorted) states where transition name is
// fireable.
func (t *TranSys) StatesFiring(name string) []int { return t.labels[name] }
