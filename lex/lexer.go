// Copyright ©2026 The Sigmatics Kernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lex

import "fmt"

// Lexer tokenizes source text one rune at a time, in the hand-rolled,
// single-pass style of a scanner over a string (no parser-generator
// machinery), consistent with this kernel's recursive-descent parser.
type Lexer struct {
	src string
	pos int
}

// NewLexer returns a Lexer positioned at the start of src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src}
}

func (l *Lexer) peek() (byte, bool) {
	if l.pos >= len(l.src) {
		return 0, false
	}
	return l.src[l.pos], true
}

func (l *Lexer) peekAt(off int) (byte, bool) {
	p := l.pos + off
	if p >= len(l.src) {
		return 0, false
	}
	return l.src[p], true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isAlnum(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		c, ok := l.peek()
		if !ok {
			return
		}
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			l.pos++
		case c == '/' && func() bool { n, ok := l.peekAt(1); return ok && n == '/' }():
			for {
				c, ok := l.peek()
				if !ok || c == '\n' {
					break
				}
				l.pos++
			}
		default:
			return
		}
	}
}

// Next returns the next token, or an EOF token once the input is exhausted.
func (l *Lexer) Next() (Token, error) {
	l.skipWhitespaceAndComments()

	start := l.pos
	c, ok := l.peek()
	if !ok {
		return Token{Kind: EOF, Offset: start}, nil
	}

	switch {
	case c == '.':
		l.pos++
		return Token{Kind: DOT, Lexeme: ".", Offset: start}, nil
	case c == '(':
		l.pos++
		return Token{Kind: LPAREN, Lexeme: "(", Offset: start}, nil
	case c == ')':
		l.pos++
		return Token{Kind: RPAREN, Lexeme: ")", Offset: start}, nil
	case c == '@':
		l.pos++
		return Token{Kind: AT, Lexeme: "@", Offset: start}, nil
	case c == '^':
		l.pos++
		return Token{Kind: CARET, Lexeme: "^", Offset: start}, nil
	case c == '~':
		l.pos++
		return Token{Kind: TILDE, Lexeme: "~", Offset: start}, nil
	case c == '+':
		l.pos++
		return Token{Kind: PLUS, Lexeme: "+", Offset: start}, nil
	case c == '-':
		l.pos++
		return Token{Kind: MINUS, Lexeme: "-", Offset: start}, nil
	case c == '|':
		if n, ok := l.peekAt(1); ok && n == '|' {
			l.pos += 2
			return Token{Kind: PARALLEL, Lexeme: "||", Offset: start}, nil
		}
		l.pos++
		return Token{}, l.errorAt(start, "|")
	case isDigit(c):
		for {
			c, ok := l.peek()
			if !ok || !isDigit(c) {
				break
			}
			l.pos++
		}
		return Token{Kind: NUMBER, Lexeme: l.src[start:l.pos], Offset: start}, nil
	case isAlpha(c):
		for {
			c, ok := l.peek()
			if !ok || !isAlnum(c) {
				break
			}
			l.pos++
		}
		lexeme := l.src[start:l.pos]
		return l.classifyIdent(lexeme, start)
	default:
		l.pos++
		return Token{}, l.errorAt(start, string(c))
	}
}

func (l *Lexer) classifyIdent(lexeme string, offset int) (Token, error) {
	switch {
	case lexeme == "R":
		return Token{Kind: ROTATE, Lexeme: lexeme, Offset: offset}, nil
	case lexeme == "D":
		return Token{Kind: TRIALITY, Lexeme: lexeme, Offset: offset}, nil
	case lexeme == "T":
		return Token{Kind: TWIST, Lexeme: lexeme, Offset: offset}, nil
	case generatorNames[lexeme]:
		return Token{Kind: GENERATOR, Lexeme: lexeme, Offset: offset}, nil
	case len(lexeme) >= 2 && lexeme[0] == 'c' && allDigits(lexeme[1:]):
		return Token{Kind: CLASS, Lexeme: lexeme, Offset: offset}, nil
	default:
		return Token{}, l.errorAt(offset, lexeme)
	}
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func (l *Lexer) errorAt(offset int, lexeme string) error {
	return &Error{Offset: offset, Msg: fmt.Sprintf("unexpected '%s'", lexeme)}
}

// All tokenizes src completely, returning every token including a trailing
// EOF. It is a convenience for tests and for parsers that want to buffer
// the token stream up front.
func All(src string) ([]Token, error) {
	l := NewLexer(src)
	var toks []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks, nil
		}
	}
}
