// Copyright ©2026 The Sigmatics Kernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lex

import "errors"

// ErrUnexpectedChar is the sentinel wrapped by lex errors for unrecognized
// characters or identifiers, per spec §4.2 and the LexError taxonomy
// member of spec §7.
var ErrUnexpectedChar = errors.New("unexpected character")

// Error is a lexing failure with the byte offset of the offending rune.
type Error struct {
	Offset int
	Msg    string
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return ErrUnexpectedChar
}
