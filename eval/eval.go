// Copyright ©2026 The Sigmatics Kernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eval

import "github.com/sigmatics/kernel/parse"

// Result bundles both backends' output for a single parsed phrase, per
// spec §6.1's evaluate(source) → { ast, literal, operational }.
type Result struct {
	AST         parse.Node
	Literal     LiteralResult
	Operational []string
}

// Evaluate runs both backends over node. The evaluator does not catch
// errors (spec §4.4): any component-range failure from a malformed AST
// propagates to the caller.
func Evaluate(node parse.Node) (Result, error) {
	lit, err := Literal(node)
	if err != nil {
		return Result{}, err
	}
	ops, err := Operational(node)
	if err != nil {
		return Result{}, err
	}
	return Result{AST: node, Literal: lit, Operational: ops}, nil
}
