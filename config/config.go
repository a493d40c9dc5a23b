// Copyright (c) 2026 Silvano DAL ZILIO
//
// GNU Affero GPL v3

// Package config loads the small set of tunables that bound pathological
// cases without changing the semantics of the algorithms in spec.md: a
// soft warning threshold on the number of states the marking-graph explorer
// visits, a memo-table size hint for the CTL checker, and a maximum formula
// depth rejected before the LTL pipeline ever builds a VWAA state for it.
// Values are loaded from an optional TOML file (grounded on dekarrin/tunaq's
// use of github.com/BurntSushi/toml for its own configuration); the zero
// value of Limits is a valid, fully-permissive configuration.
package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Limits holds the tunables. A zero value disables every check (no warning
// threshold, no memo size hint, no depth limit): this module's algorithms
// already terminate on their own (spec.md sections 4.C and 4.E-F), so
// Limits exists purely to surface pathological inputs earlier and more
// loudly, never to change a verdict. Only MaxFormulaDepth can make a query
// fail, by rejecting it with an error before any work is done.
type Limits struct {
	// ExplorerStateWarn, if nonzero, is the number of TranSys states after
	// which transys.Explore logs a warning (not an error) through the
	// Logger it was given.
	ExplorerStateWarn int `toml:"explorer_state_warn"`
	// CTLMemoSizeHint, if nonzero, is passed to make() when allocating the
	// ctl package's memo table, avoiding reallocation churn on large
	// TranSys/formula combinations.
	CTLMemoSizeHint int `toml:"ctl_memo_size_hint"`
	// MaxFormulaDepth, if nonzero, makes ctl.Check and ltl.Check reject a
	// formula deeper than this with a plain error before doing any work.
	MaxFormulaDepth int `toml:"max_formula_depth"`
}

// Default is the fully-permissive Limits value.
var Default = Limits{}

// Load decodes Limits from a TOML file at path. A missing or malformed file
// is a plain error (this is a recoverable, caller-facing configuration
// problem, not one of the internal invariant violations described in
// spec.md section 7), wrapped with github.com/pkg/errors for context.
func Load(path string) (Limits, error) {
	var l Limits
	if _, err := toml.DecodeFile(path, &l); err != nil {
		return Limits{}, errors.Wrapf(err, "config: loading limits from %q", path)
	}
	return l, nil
}
