// Copyright (c) 2026 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package ftext

import "fmt"

type tokenKind int

const (
	tokEOF     tokenKind = iota // '\0'
	tokIDENT                    // identifier [a-zA-Z][a-zA-Z0-9_]*
	tokTRUE                     // 'true'
	tokFALSE                    // 'false'
	tokFIRE                     // 'fire'
	tokLPAREN                   // '('
	tokRPAREN                   // ')'
	tokBANG                     // '!'
	tokLE                       // '<='
	tokOR                       // 'or'
	tokAND                      // 'and'
	tokX                        // 'X'
	tokG                        // 'G'
	tokF                        // 'F'
	tokA                        // 'A'
	tokE                        // 'E'
	tokU                        // 'U'
	tokR                        // 'R'
	tokILLEGAL                  // used to report errors
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "EOF"
	case tokIDENT:
		return "identifier"
	case tokTRUE:
		return "true"
	case tokFALSE:
		return "false"
	case tokFIRE:
		return "fire"
	case tokLPAREN:
		return "("
	case tokRPAREN:
		return ")"
	case tokBANG:
		return "!"
	case tokLE:
		return "<="
	case tokOR:
		return "or"
	case tokAND:
		return "and"
	case tokX, tokG, tokF, tokA, tokE, tokU, tokR:
		return fmt.Sprintf("operator(%d)", int(k))
	default:
		return "illegal"
	}
}

type token struct {
	tok tokenKind
	s   string
}

func (t token) String() string {
	if t.s == "" {
		return t.tok.String()
	}
	return t.tok.String() + " " + t.s
}

var eof = rune(0)

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentChar(ch rune) bool {
	return isLetter(ch) || isDigit(ch) || ch == '_'
}
