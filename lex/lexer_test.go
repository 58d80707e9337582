// Copyright ©2026 The Sigmatics Kernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lex

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLexBasicTokens(t *testing.T) {
	src := "mark@c21 . copy@c05 || swap@c72"
	toks, err := All(src)
	if err != nil {
		t.Fatalf("All(%q): %v", src, err)
	}
	want := []Token{
		{Kind: GENERATOR, Lexeme: "mark", Offset: 0},
		{Kind: AT, Lexeme: "@", Offset: 4},
		{Kind: CLASS, Lexeme: "c21", Offset: 5},
		{Kind: DOT, Lexeme: ".", Offset: 9},
		{Kind: GENERATOR, Lexeme: "copy", Offset: 11},
		{Kind: AT, Lexeme: "@", Offset: 15},
		{Kind: CLASS, Lexeme: "c05", Offset: 16},
		{Kind: PARALLEL, Lexeme: "||", Offset: 20},
		{Kind: GENERATOR, Lexeme: "swap", Offset: 23},
		{Kind: AT, Lexeme: "@", Offset: 27},
		{Kind: CLASS, Lexeme: "c72", Offset: 28},
		{Kind: EOF, Lexeme: "", Offset: 31},
	}
	if diff := cmp.Diff(want, toks); diff != "" {
		t.Errorf("All(%q) mismatch (-want +got):\n%s", src, diff)
	}
}

func TestLexTransformLetters(t *testing.T) {
	toks, err := All("R+2 T+3@mark@c07")
	if err != nil {
		t.Fatal(err)
	}
	wantKinds := []TokenKind{ROTATE, PLUS, NUMBER, TWIST, PLUS, NUMBER, AT, GENERATOR, AT, CLASS, EOF}
	if len(toks) != len(wantKinds) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(wantKinds), toks)
	}
	for i, k := range wantKinds {
		if toks[i].Kind != k {
			t.Errorf("token %d: kind = %s, want %s", i, toks[i].Kind, k)
		}
	}
}

func TestLexComment(t *testing.T) {
	toks, err := All("mark@c00 // trailing comment\n.evaluate@c01")
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 8 {
		t.Fatalf("got %d tokens, want 8: %v", len(toks), toks)
	}
}

func TestLexSinglePipeIsError(t *testing.T) {
	_, err := All("mark@c00 | mark@c01")
	var lexErr *Error
	if !errors.As(err, &lexErr) {
		t.Fatalf("All: err = %v, want *lex.Error", err)
	}
	if !errors.Is(err, ErrUnexpectedChar) {
		t.Errorf("err does not wrap ErrUnexpectedChar")
	}
}

func TestLexUnrecognizedIdentifier(t *testing.T) {
	_, err := All("bogus@c00")
	if err == nil {
		t.Fatal("expected error for unrecognized identifier")
	}
	var lexErr *Error
	if !errors.As(err, &lexErr) {
		t.Fatalf("err = %v, want *lex.Error", err)
	}
	if lexErr.Offset != 0 {
		t.Errorf("Offset = %d, want 0", lexErr.Offset)
	}
}

func TestLexClassRequiresDigits(t *testing.T) {
	_, err := All("mark@c")
	if err == nil {
		t.Fatal("expected error for 'c' with no digits")
	}
}
