// Copyright (c) 2026 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package ltl

import (
	"github.com/dalzilio/ptcheck/formula"
	"github.com/dalzilio/ptcheck/fset"
	"github.com/dalzilio/ptcheck/internal/obslog"
	"github.com/dalzilio/ptcheck/ltl/gba"
	"github.com/dalzilio/ptcheck/ptnet"
)

// prodState is one state of the synchronous product of the Büchi
// automaton and the net's marking graph.
type prodState struct {
	BA gba.BAState
	M  ptnet.Config
}

// prodKey is prodState's identity for visited-set membership: ptnet.Config
// is a slice and so is not itself usable as a map key, but its interned
// Handle is.
type prodKey struct {
	ba string
	m  ptnet.Handle
}

// letterCompatible decides whether letter (an edge label out of the Büchi
// automaton) permits moving into marking m (spec.md section 4.G).
//
// Edge-match semantics decision (resolves the spec's Open Question on this
// point): every literal is checked against m, the *destination* marking —
// the marking the product is about to enter — not the marking the firing
// transition left from. This mirrors
// original_source/src/ltl/checker.rs's filter_marks, which filters the
// list of already-fired configs by literal compatibility before recursing
// into them, rather than checking literals against the pre-fire marking.
func letterCompatible(letter fset.Set, net *ptnet.Net, m ptnet.Config) bool {
	members := letter.Slice()
	if len(members) == 1 && members[0].Kind == formula.True {
		return true
	}
	for _, lit := range members {
		switch lit.Kind {
		case formula.True:
			continue
		case formula.Prop:
			if !fireable(net, lit.Atom.Transition, m) {
				return false
			}
		case formula.Neg:
			if fireable(net, lit.Atom.Transition, m) {
				return false
			}
		default:
			obslog.Fatalf("ltl: non-literal formula %s reached a Büchi edge letter", lit)
		}
	}
	return true
}

func fireable(net *ptnet.Net, name string, m ptnet.Config) bool {
	idx, ok := net.TransitionIndex(name)
	if !ok {
		return false
	}
	return net.Enabled(m, idx)
}
