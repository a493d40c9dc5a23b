// Copyright (c) 2026 Silvano DAL ZILIO
//
// GNU Affero GPL v3

/*
Package vwaa builds the very-weak alternating automaton of an LTL formula
already in negation normal form and restricted to the {True, False, Prop,
Neg, Or, And, Next, Until, Release} operator set produced by
formula.Simplify (spec.md section 4.E).

The construction is transliterated from
original_source/src/ltl/vwaa.rs (vwaa_bar/vwaa_delta/vwaa_cap_delta/
vwaa_product), which implements the equations stated in spec.md section
4.E directly; this package is the Go rendering of those same equations
over *formula.Formula and fset.Set rather than the Rust FormulaTy/
FormulaSet types.
*/
package vwaa
