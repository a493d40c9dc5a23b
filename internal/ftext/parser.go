// Copyright (c) 2026 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package ftext

import (
	"fmt"

	"github.com/dalzilio/ptcheck/formula"
)

// parser is a one-token-lookahead recursive-descent parser for the
// grammar described in doc.go.
type parser struct {
	s     *scanner
	tok   token
	ahead bool
}

// Parse returns the Formula denoted by s, per the grammar in doc.go.
func Parse(s string) (*formula.Formula, error) {
	p := &parser{s: newScanner(s)}
	f, err := p.parseFormula()
	if err != nil {
		return nil, fmt.Errorf("ftext: %s", err)
	}
	if tok := p.scan(); tok.tok != tokEOF {
		return nil, fmt.Errorf("ftext: unexpected trailing token %s", tok)
	}
	return f, nil
}

func (p *parser) scan() token {
	if p.ahead {
		p.ahead = false
	} else {
		p.tok = p.s.scan()
	}
	return p.tok
}

func (p *parser) unscan() { p.ahead = true }

func (p *parser) expect(k tokenKind) error {
	if tok := p.scan(); tok.tok != k {
		return fmt.Errorf("expected %s, got %s", k, tok)
	}
	return nil
}

func (p *parser) parseFormula() (*formula.Formula, error) {
	tok := p.scan()
	switch tok.tok {
	case tokTRUE:
		return formula.TrueF(), nil
	case tokFALSE:
		return formula.FalseF(), nil
	case tokFIRE, tokIDENT:
		p.unscan()
		a, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		return formula.PropF(a), nil
	case tokBANG:
		return p.parseNegation()
	case tokX:
		return p.parseUnary(formula.NextF)
	case tokG:
		return p.parseUnary(formula.GlobalF)
	case tokF:
		return p.parseUnary(formula.FinallyF)
	case tokA:
		return p.parseUnary(formula.ForallF)
	case tokE:
		return p.parseUnary(formula.ExistsF)
	case tokLPAREN:
		return p.parseBinary()
	default:
		return nil, fmt.Errorf("unexpected token %s", tok)
	}
}

// parseNegation handles both "!" atom (Neg) and "!" "(" formula ")" (Not).
func (p *parser) parseNegation() (*formula.Formula, error) {
	tok := p.scan()
	if tok.tok == tokFIRE || tok.tok == tokIDENT {
		p.unscan()
		a, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		return formula.NegF(a), nil
	}
	if tok.tok != tokLPAREN {
		return nil, fmt.Errorf("expected an atom or '(' after '!', got %s", tok)
	}
	inner, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	if err := p.expect(tokRPAREN); err != nil {
		return nil, err
	}
	return formula.NotF(inner), nil
}

// parseUnary parses "(" formula ")" and wraps the result with build.
func (p *parser) parseUnary(build func(*formula.Formula) *formula.Formula) (*formula.Formula, error) {
	if err := p.expect(tokLPAREN); err != nil {
		return nil, err
	}
	inner, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	if err := p.expect(tokRPAREN); err != nil {
		return nil, err
	}
	return build(inner), nil
}

// parseBinary parses the remainder of "(" formula op formula ")" after the
// opening parenthesis has already been consumed.
func (p *parser) parseBinary() (*formula.Formula, error) {
	lhs, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	opTok := p.scan()
	var build func(a, b *formula.Formula) *formula.Formula
	switch opTok.tok {
	case tokOR:
		build = formula.OrF
	case tokAND:
		build = formula.AndF
	case tokU:
		build = formula.UntilF
	case tokR:
		build = formula.ReleaseF
	default:
		return nil, fmt.Errorf("expected a binary operator (or/and/U/R), got %s", opTok)
	}
	rhs, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	if err := p.expect(tokRPAREN); err != nil {
		return nil, err
	}
	return build(lhs, rhs), nil
}

// parseAtom parses "fire" "(" ident ")" or ident "<=" ident.
func (p *parser) parseAtom() (formula.Atom, error) {
	tok := p.scan()
	switch tok.tok {
	case tokFIRE:
		if err := p.expect(tokLPAREN); err != nil {
			return formula.Atom{}, err
		}
		name := p.scan()
		if name.tok != tokIDENT {
			return formula.Atom{}, fmt.Errorf("expected a transition name, got %s", name)
		}
		if err := p.expect(tokRPAREN); err != nil {
			return formula.Atom{}, err
		}
		return formula.Fire(name.s), nil
	case tokIDENT:
		lhs := tok.s
		if err := p.expect(tokLE); err != nil {
			return formula.Atom{}, err
		}
		rhs := p.scan()
		if rhs.tok != tokIDENT {
			return formula.Atom{}, fmt.Errorf("expected an identifier after '<=', got %s", rhs)
		}
		return formula.Card(lhs, rhs.s), nil
	default:
		return formula.Atom{}, fmt.Errorf("expected an atom, got %s", tok)
	}
}
