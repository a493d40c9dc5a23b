// Copyright (c) 2026 Silvano DAL ZILIO
//
// GNU Affero GPL v3

/*
Package formula defines the temporal-logic formula tree shared by the CTL and
LTL checkers, and the two pure rewrites used to prepare a formula for
Buchi-automaton construction: Negate (push negation down to atoms, producing
negation normal form) and Simplify (lower Global/Finally to their Release/
Until equivalents).

Formulas are value-like: two trees built independently compare Equal if they
have the same shape, and Hash is deterministic across runs of the same
program (it does not depend on map or pointer iteration order).
*/
package formula
