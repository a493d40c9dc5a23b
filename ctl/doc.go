// Copyright (c) 2026 Silvano DAL ZILIO
//
// GNU Affero GPL v3

/*
Package ctl implements local CTL model checking over a transys.TranSys
(spec.md section 4.D): deciding whether a formula holds at a given state,
with nested depth-first searches realizing the EU and AU fixed points and a
memo table so repeated sub-formula/state pairs are O(1) after the first
visit.

Supported operators, after lowering EG/AG/EF/AF to their Until-based or
negated forms, are True, False, Prop(Fireability), Not, Or, And, EX, AX, EU,
AU. A Cardinality atom is recognized but refused: Check returns an error
rather than a result (spec.md section 1, non-goal).
*/
package ctl
