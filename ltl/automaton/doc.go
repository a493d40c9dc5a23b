// Copyright (c) 2026 Silvano DAL ZILIO
//
// GNU Affero GPL v3

/*
Package automaton defines a generic nondeterministic automaton type
(spec.md section 3, "Automaton (generic)"), parameterized over a state
type S and an alphabet type A, used as the common representation for both
the generalized Büchi automaton and its degeneralized Büchi form (the
`gba` package) as they are built out of the VWAA (the `vwaa` package).

It is deliberately a plain data holder: construction lives in the
packages that build specific automata, since the discovery strategy
(worklist over FormulaSet, product over per-literal VWAA states, and so
on) differs at every stage of the Gastin-Oddoux pipeline.
*/
package automaton
