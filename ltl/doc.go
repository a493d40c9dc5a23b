// Copyright (c) 2026 Silvano DAL ZILIO
//
// GNU Affero GPL v3

/*
Package ltl ties together the Gastin-Oddoux pipeline (vwaa, gba) and a
Petri net's on-the-fly successors into a full LTL model checker (spec.md
section 4.G): simplify(negate(phi)) is translated to a Büchi automaton,
that automaton is run as the synchronous product against the net's
marking graph, and nested depth-first search (Courcoubetis-Vardi-Wolper-
Yannakakis) decides whether the product is empty. The original formula
holds iff the product of its negation's automaton with the net is empty.

The product's edge-match semantics are grounded on
original_source/src/ltl/checker.rs's filter_marks (see product.go): a
letter is checked against the marking the product is about to enter, not
the one it is leaving.
*/
package ltl
