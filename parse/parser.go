// Copyright ©2026 The Sigmatics Kernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"strconv"

	"github.com/sigmatics/kernel/class"
	"github.com/sigmatics/kernel/lex"
)

// Parser is a recursive-descent parser over a buffered token stream, one
// method per grammar production (spec §4.3), matching the hand-written
// per-production parser structure this kernel is grounded on.
type Parser struct {
	toks []lex.Token
	pos  int
}

// NewParser lexes src completely and returns a Parser ready to parse it.
func NewParser(src string) (*Parser, error) {
	toks, err := lex.All(src)
	if err != nil {
		return nil, err
	}
	return &Parser{toks: toks}, nil
}

func (p *Parser) cur() lex.Token {
	return p.toks[p.pos]
}

func (p *Parser) advance() lex.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) expect(k lex.TokenKind) (lex.Token, error) {
	t := p.cur()
	if t.Kind != k {
		return lex.Token{}, errExpected(k, t)
	}
	return p.advance(), nil
}

// Parse parses src as a complete phrase, failing unless every token is
// consumed (spec §4.3: "the parser must consume all tokens and then see
// EOF").
func Parse(src string) (Node, error) {
	p, err := NewParser(src)
	if err != nil {
		return nil, err
	}
	node, err := p.parsePhrase()
	if err != nil {
		return nil, err
	}
	if p.cur().Kind != lex.EOF {
		return nil, errExpectedEOF(p.cur())
	}
	return node, nil
}

func isTransformLead(k lex.TokenKind) bool {
	return k == lex.ROTATE || k == lex.TRIALITY || k == lex.TWIST || k == lex.TILDE
}

// parsePhrase implements: phrase := transform "@" par | par
func (p *Parser) parsePhrase() (Node, error) {
	if isTransformLead(p.cur().Kind) {
		t, err := p.parseTransform()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lex.AT); err != nil {
			return nil, err
		}
		body, err := p.parsePar()
		if err != nil {
			return nil, err
		}
		return &Transformed{Transform: t, Body: body}, nil
	}
	return p.parsePar()
}

// parsePar implements: par := seq ("||" seq)*
func (p *Parser) parsePar() (*Parallel, error) {
	first, err := p.parseSeq()
	if err != nil {
		return nil, err
	}
	branches := []*Sequential{first}
	for p.cur().Kind == lex.PARALLEL {
		p.advance()
		seq, err := p.parseSeq()
		if err != nil {
			return nil, err
		}
		branches = append(branches, seq)
	}
	return &Parallel{Branches: branches}, nil
}

// parseSeq implements: seq := term ("." term)*
func (p *Parser) parseSeq() (*Sequential, error) {
	first, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	terms := []Node{first}
	for p.cur().Kind == lex.DOT {
		p.advance()
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	return &Sequential{Terms: terms}, nil
}

// parseTerm implements: term := op | "(" par ")" | transform "@" par
func (p *Parser) parseTerm() (Node, error) {
	switch {
	case p.cur().Kind == lex.LPAREN:
		open := p.advance()
		if p.cur().Kind == lex.RPAREN {
			return nil, &Error{Offset: open.Offset, Msg: "empty group: expected an operation", err: ErrUnexpectedToken}
		}
		body, err := p.parsePar()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lex.RPAREN); err != nil {
			return nil, err
		}
		return &Group{Body: body}, nil
	case p.cur().Kind == lex.GENERATOR:
		return p.parseOp()
	case isTransformLead(p.cur().Kind):
		t, err := p.parseTransform()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lex.AT); err != nil {
			return nil, err
		}
		body, err := p.parsePar()
		if err != nil {
			return nil, err
		}
		return &Transformed{Transform: t, Body: body}, nil
	default:
		return nil, errExpectedLabel("a generator, '(', or a transform", p.cur())
	}
}

// parseOp implements: op := GENERATOR "@" sigil
func (p *Parser) parseOp() (Node, error) {
	gen, err := p.expect(lex.GENERATOR)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lex.AT); err != nil {
		return nil, err
	}
	sigil, err := p.parseSigil()
	if err != nil {
		return nil, err
	}
	return &Operation{Generator: gen.Lexeme, Sigil: sigil, Offset: gen.Offset}, nil
}

// parseSigil implements:
// sigil := CLASS [ "^" [ROTATE | TRIALITY | TWIST] ("+"|"-") NUMBER ] [ "~" ] [ "@" NUMBER ]
func (p *Parser) parseSigil() (Sigil, error) {
	classTok, err := p.expect(lex.CLASS)
	if err != nil {
		return Sigil{}, err
	}
	idx, convErr := strconv.Atoi(classTok.Lexeme[1:])
	if convErr != nil {
		return Sigil{}, errRange(classTok.Offset, class.ErrClassRange, "invalid class literal %q", classTok.Lexeme)
	}
	if idx < 0 || idx >= class.NumClasses {
		return Sigil{}, errRange(classTok.Offset, class.ErrClassRange, "class index %d out of range [0,95]", idx)
	}
	sigil := Sigil{Class: idx}

	if p.cur().Kind == lex.CARET {
		p.advance()
		axis := lex.TWIST // caret defaults to twist when no axis letter follows
		switch p.cur().Kind {
		case lex.ROTATE, lex.TRIALITY, lex.TWIST:
			axis = p.cur().Kind
			p.advance()
		}
		delta, err := p.parseSignedNumber()
		if err != nil {
			return Sigil{}, err
		}
		switch axis {
		case lex.ROTATE:
			sigil.Mod.R = delta
		case lex.TRIALITY:
			sigil.Mod.D = delta
		case lex.TWIST:
			sigil.Mod.T = delta
		}
	}

	if p.cur().Kind == lex.TILDE {
		p.advance()
		sigil.Mod.M = true
	}

	if p.cur().Kind == lex.AT {
		p.advance()
		pageTok, err := p.expect(lex.NUMBER)
		if err != nil {
			return Sigil{}, err
		}
		page, convErr := strconv.Atoi(pageTok.Lexeme)
		if convErr != nil || page < 0 || page >= class.BeltPages {
			return Sigil{}, errRange(pageTok.Offset, class.ErrPageRange, "page %q out of range [0,47]", pageTok.Lexeme)
		}
		sigil.HasPage = true
		sigil.Page = page
	}

	return sigil, nil
}

// parseTransform implements:
// transform := [ROTATE ("+"|"-") NUMBER] [TRIALITY ("+"|"-") NUMBER] [TWIST ("+"|"-") NUMBER] [TILDE]
func (p *Parser) parseTransform() (class.Transform, error) {
	var t class.Transform
	if p.cur().Kind == lex.ROTATE {
		p.advance()
		delta, err := p.parseSignedNumber()
		if err != nil {
			return t, err
		}
		t.R = delta
	}
	if p.cur().Kind == lex.TRIALITY {
		p.advance()
		delta, err := p.parseSignedNumber()
		if err != nil {
			return t, err
		}
		t.D = delta
	}
	if p.cur().Kind == lex.TWIST {
		p.advance()
		delta, err := p.parseSignedNumber()
		if err != nil {
			return t, err
		}
		t.T = delta
	}
	if p.cur().Kind == lex.TILDE {
		p.advance()
		t.M = true
	}
	return t, nil
}

func (p *Parser) parseSignedNumber() (int, error) {
	sign := 1
	switch p.cur().Kind {
	case lex.PLUS:
		p.advance()
	case lex.MINUS:
		sign = -1
		p.advance()
	default:
		return 0, errExpectedLabel("'+' or '-'", p.cur())
	}
	numTok, err := p.expect(lex.NUMBER)
	if err != nil {
		return 0, err
	}
	n, convErr := strconv.Atoi(numTok.Lexeme)
	if convErr != nil {
		return 0, errExpectedLabel("a number", numTok)
	}
	return sign * n, nil
}
