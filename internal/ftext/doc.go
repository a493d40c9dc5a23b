// Copyright (c) 2026 Silvano DAL ZILIO
//
// GNU Affero GPL v3

/*
Package ftext implements a compact textual notation for formula.Formula,
used to build test fixtures without hand-nesting constructor calls. The
grammar mirrors formula.Formula.String()'s output exactly, so
Parse(f.String()) always reproduces f:

	formula  := "true" | "false"
	          | atom | "!" atom
	          | "!" "(" formula ")"
	          | ("X"|"G"|"F"|"A"|"E") "(" formula ")"
	          | "(" formula ("or"|"and"|"U"|"R") formula ")"
	atom     := "fire" "(" ident ")" | ident "<=" ident

The scanner and parser are adapted from the teacher's .net scanner.go and
parser.go: the same hand-written rune-at-a-time scanner with an unread
buffer and a one-token-lookahead parser, generalized from the net file
grammar to this formula grammar. Only test code in this module depends on
this package.
*/
package ftext
