// Copyright ©2026 The Sigmatics Kernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parse turns a lexed Atlas sigil-grammar token stream into the AST
// defined by spec §3/§4.3: a closed, five-case tagged variant (Operation,
// Sequential, Parallel, Transformed, Group), following the redesign note in
// spec §9 away from a class hierarchy.
package parse

import "github.com/sigmatics/kernel/class"

//go:generate stringer -type=NodeKind

// NodeKind identifies which of the five AST node cases a Node is.
type NodeKind int

const (
	OperationKind NodeKind = iota
	SequentialKind
	ParallelKind
	TransformedKind
	GroupKind
)

// Node is any of the five AST node cases. The unexported marker method
// closes the set to this package, matching the tagged-variant shape spec §9
// calls for.
type Node interface {
	Kind() NodeKind
	astNode()
}

// Sigil is a class index plus its postfix modifiers, per spec §3: a signed
// rotate/triality/twist delta (at most one of which the grammar can set per
// sigil, via the single optional caret), a mirror flag, and an optional
// belt page.
type Sigil struct {
	Class   int
	Mod     class.Transform
	HasPage bool
	Page    int
}

// Operation is a generator applied to a sigil.
type Operation struct {
	Generator string
	Sigil     Sigil
	Offset    int
}

func (*Operation) Kind() NodeKind { return OperationKind }
func (*Operation) astNode()       {}

// Sequential is an ordered list of terms with right-to-left execution
// semantics in the operational backend (spec §4.4).
type Sequential struct {
	Terms []Node
}

func (*Sequential) Kind() NodeKind { return SequentialKind }
func (*Sequential) astNode()       {}

// Parallel is an ordered list of Sequential branches. A single-branch
// Parallel is transparent in the operational backend (spec §4.4).
type Parallel struct {
	Branches []*Sequential
}

func (*Parallel) Kind() NodeKind { return ParallelKind }
func (*Parallel) astNode()       {}

// Transformed wraps a Parallel body in an outer transform.
type Transformed struct {
	Transform class.Transform
	Body      *Parallel
}

func (*Transformed) Kind() NodeKind { return TransformedKind }
func (*Transformed) astNode()       {}

// Group is purely syntactic grouping: "(" par ")".
type Group struct {
	Body *Parallel
}

func (*Group) Kind() NodeKind { return GroupKind }
func (*Group) astNode()       {}
