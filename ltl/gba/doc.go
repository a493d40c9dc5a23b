// Copyright (c) 2026 Silvano DAL ZILIO
//
// GNU Affero GPL v3

/*
Package gba builds the generalized Büchi automaton of a VWAA by worklist
expansion and then degeneralizes it into an ordinary Büchi automaton by
the CAV'01 layering construction (spec.md section 4.F).

original_source/src/ltl/gba.rs only carries break_conjs (exposed here as
fset.BreakConjs); the worklist expansion, per-transition acceptance marks,
transition subsumption and degeneralization are implemented directly from
spec.md section 4.F's prose, since the prototype in original_source never
wires those stages together (its CAV01Translator only prints intermediate
values). The worklist-over-discovered-states idiom follows
other_examples' Choreia subset-construction style (frontier slice + a
seen-state map, expand until the frontier is empty).
*/
package gba
