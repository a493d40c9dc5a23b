// Copyright (c) 2026 Silvano DAL ZILIO
//
// GNU Affero GPL v3

/*
Package transys builds a finite transition system (a TranSys) from a PT net,
even when the net is unbounded, by coverability-style omega-acceleration
along each ancestor path (spec.md section 4.C). This is what lets the ctl
package run a local, explicit-state model checker over a net that in
principle has infinitely many reachable markings.
*/
package transys
