// Copyright (c) 2026 Silvano DAL ZILIO
//
// GNU Affero GPL v3

/*
Package pnmlio marshals a ptnet.Net to PNML XML, for debugging and for
eyeballing a net built programmatically in Go. It is output-only: nothing
in the checking pipeline ever reads PNML back in (spec.md section 1's
"PNML parsing as an input front end" stays out of scope; SPEC_FULL.md
section 10 adds this exporter as a supplemented feature).

The encoding is adapted from the teacher package's internal/pnml and
pnmlwrite.go, generalized from nets.Net (arcs with timing, inhibitor and
read arcs, delta-encoded post-sets) to ptnet.Net (untimed PT nets, Pre/Post
already stored as absolute arc weights, no inhibitor or read arcs to
special-case). A Config entry equal to ptnet.Omega has no PNML
representation and is reported as an error rather than silently
truncated.
*/
package pnmlio
