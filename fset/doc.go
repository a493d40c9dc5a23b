// Copyright (c) 2026 Silvano DAL ZILIO
//
// GNU Affero GPL v3

/*
Package fset implements FormulaSet: a set of formula.Formula values with a
hash that is stable and order-independent, so two sets with the same members
always hash equal regardless of the order they were built in. This is what
lets a Set be used directly as an automaton state identifier (spec.md
section 9: "Hashable sets as map keys").
*/
package fset
