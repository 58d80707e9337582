// Copyright ©2026 The Sigmatics Kernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"errors"
	"fmt"

	"github.com/sigmatics/kernel/class"
	"github.com/sigmatics/kernel/lex"
)

// Sentinels for the ParseError and RangeError taxonomy members of spec §7.
var (
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrRange           = class.ErrClassRange
)

// Error is a parse failure: a token-kind mismatch or an out-of-range sigil
// field, carrying the source offset of the offending token.
type Error struct {
	Offset int
	Msg    string
	err    error
}

func (e *Error) Error() string { return e.Msg }
func (e *Error) Unwrap() error { return e.err }

func errExpected(want lex.TokenKind, got lex.Token) error {
	return &Error{
		Offset: got.Offset,
		Msg:    fmt.Sprintf("Expected %s but got %s", want, got.Kind),
		err:    ErrUnexpectedToken,
	}
}

func errExpectedLabel(want string, got lex.Token) error {
	return &Error{
		Offset: got.Offset,
		Msg:    fmt.Sprintf("Expected %s but got %s", want, got.Kind),
		err:    ErrUnexpectedToken,
	}
}

func errExpectedEOF(got lex.Token) error {
	return &Error{
		Offset: got.Offset,
		Msg:    fmt.Sprintf("Expected EOF but got %s", got.Kind),
		err:    ErrUnexpectedToken,
	}
}

func errRange(offset int, sentinel error, format string, args ...any) error {
	return &Error{
		Offset: offset,
		Msg:    fmt.Sprintf(format, args...),
		err:    sentinel,
	}
}
