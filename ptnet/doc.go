// Copyright (c) 2026 Silvano DAL ZILIO
//
// GNU Affero GPL v3

/*
Package ptnet defines the concrete type for (untimed) Place/Transition
nets: places, transitions, weighted arcs, and the Config type used to
represent markings, including the omega sentinel for unbounded places.

A Net is built incrementally with AddPlace/AddTransition/AddArc and is
meant to be treated as append-only once analysis begins (spec.md section 9):
back-links from places to the transitions they feed, and from transitions to
the places they feed, are maintained incrementally as arcs are added rather
than recomputed from scratch.
*/
package ptnet
