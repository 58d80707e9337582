// Copyright ©2026 The Sigmatics Kernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eval walks a parsed phrase twice, independently, to produce the
// kernel's two deterministic views: the literal byte/address trace (spec
// §4.4 "Literal (byte) backend") and the operational word trace (spec §4.4
// "Operational (word) backend").
package eval

import (
	"github.com/sigmatics/kernel/class"
	"github.com/sigmatics/kernel/parse"
)

// LiteralResult is the output of the literal backend: a byte sequence, and
// (only if any leaf sigil specified a page) a parallel sequence of belt
// addresses the same length as Bytes, with a zero placeholder at the index
// of any leaf that did not itself specify a page.
type LiteralResult struct {
	Bytes     []byte
	Addresses []uint16
	HasAddr   bool
}

// Literal runs the literal byte backend over node, emitting bytes (and, if
// any leaf specified a page, one address per byte, in strict left-to-right
// source order of the leaves).
func Literal(node parse.Node) (LiteralResult, error) {
	var res LiteralResult
	if err := literalWalk(node, class.Transform{}, &res); err != nil {
		return LiteralResult{}, err
	}
	if !res.HasAddr {
		res.Addresses = nil
	}
	return res, nil
}

func literalWalk(node parse.Node, outer class.Transform, res *LiteralResult) error {
	switch n := node.(type) {
	case *parse.Operation:
		comp, err := effectiveComponents(n.Sigil, outer)
		if err != nil {
			return err
		}
		b := class.EncodeComponents(comp)
		res.Bytes = append(res.Bytes, b)
		var addr uint16
		if n.Sigil.HasPage {
			a, err := class.ComputeBeltAddress(n.Sigil.Page, b)
			if err != nil {
				return err
			}
			addr = uint16(a.Address)
			res.HasAddr = true
		}
		res.Addresses = append(res.Addresses, addr)
		return nil
	case *parse.Sequential:
		for _, term := range n.Terms {
			if err := literalWalk(term, outer, res); err != nil {
				return err
			}
		}
		return nil
	case *parse.Parallel:
		for _, branch := range n.Branches {
			if err := literalWalk(branch, outer, res); err != nil {
				return err
			}
		}
		return nil
	case *parse.Transformed:
		next := outer.Compose(n.Transform)
		return literalWalk(n.Body, next, res)
	case *parse.Group:
		return literalWalk(n.Body, outer, res)
	default:
		panic("eval: unknown AST node type")
	}
}

// effectiveComponents applies the sigil's own postfix modifiers first, then
// the accumulated outer transform, per spec §4.4.
func effectiveComponents(sig parse.Sigil, outer class.Transform) (class.Components, error) {
	base, err := class.DecodeClassIndex(sig.Class)
	if err != nil {
		return class.Components{}, err
	}
	comp := base.ApplyTransforms(sig.Mod)
	comp = comp.ApplyTransforms(outer)
	return comp, nil
}
