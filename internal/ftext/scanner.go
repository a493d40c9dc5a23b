// Copyright (c) 2026 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package ftext

import (
	"bufio"
	"bytes"
	"strings"
)

// scanner turns a byte stream into a sequence of tokens, one rune of
// lookahead buffered by unread.
type scanner struct {
	r      *bufio.Reader
	ahead  bool
	peeked rune
}

func newScanner(s string) *scanner {
	return &scanner{r: bufio.NewReader(strings.NewReader(s))}
}

// read reads the next rune, returning eof at end of input.
func (s *scanner) read() rune {
	if s.ahead {
		s.ahead = false
		return s.peeked
	}
	ch, _, err := s.r.ReadRune()
	if err != nil {
		return eof
	}
	return ch
}

// unread places ch back for the next read.
func (s *scanner) unread(ch rune) {
	s.peeked = ch
	s.ahead = true
}

// scan returns the next token, skipping leading whitespace.
func (s *scanner) scan() token {
	ch := s.read()
	for isWhitespace(ch) {
		ch = s.read()
	}

	switch {
	case isLetter(ch):
		s.unread(ch)
		return s.scanIdent()
	case ch == eof:
		return token{tok: tokEOF}
	case ch == '(':
		return token{tok: tokLPAREN, s: "("}
	case ch == ')':
		return token{tok: tokRPAREN, s: ")"}
	case ch == '!':
		return token{tok: tokBANG, s: "!"}
	case ch == '<':
		if next := s.read(); next == '=' {
			return token{tok: tokLE, s: "<="}
		}
		return token{tok: tokILLEGAL, s: string(ch)}
	default:
		return token{tok: tokILLEGAL, s: string(ch)}
	}
}

func (s *scanner) scanIdent() token {
	var buf bytes.Buffer
	ch := s.read()
	for isIdentChar(ch) {
		buf.WriteRune(ch)
		ch = s.read()
	}
	s.unread(ch)

	lit := buf.String()
	switch lit {
	case "true":
		return token{tok: tokTRUE, s: lit}
	case "false":
		return token{tok: tokFALSE, s: lit}
	case "fire":
		return token{tok: tokFIRE, s: lit}
	case "or":
		return token{tok: tokOR, s: lit}
	case "and":
		return token{tok: tokAND, s: lit}
	case "X":
		return token{tok: tokX, s: lit}
	case "G":
		return token{tok: tokG, s: lit}
	case "F":
		return token{tok: tokF, s: lit}
	case "A":
		return token{tok: tokA, s: lit}
	case "E":
		return token{tok: tokE, s: lit}
	case "U":
		return token{tok: tokU, s: lit}
	case "R":
		return token{tok: tokR, s: lit}
	default:
		return token{tok: tokIDENT, s: lit}
	}
}
