// Copyright ©2026 The Sigmatics Kernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sga implements the Sigmatics Geometric Algebra
// Cl(7) ⊗ R[Z₄] ⊗ R[Z₃] (spec §4.7): a triple of independent algebras
// composed by a small product type, with the four class-level transforms
// R, D, T, M realized as automorphisms of that triple.
package sga

import (
	"errors"
	"fmt"

	"github.com/sigmatics/kernel/alg/clifford"
	"github.com/sigmatics/kernel/alg/zmod"
)

// ErrComponentRange is returned by Rank1 when h, d, or l is out of range.
var ErrComponentRange = errors.New("sga: component out of range")

// ErrRank is returned by T when its input's Clifford factor is not the
// scalar 1 or a single e_i with coefficient 1.
var ErrRank = errors.New("sga: T requires a rank-1 element")

// Element is a value (clifford, z4, z3): one point of
// Cl(7) ⊗ R[Z₄] ⊗ R[Z₃].
type Element struct {
	Clifford clifford.Multivector
	Z4       zmod.Z4
	Z3       zmod.Z3
}

// New builds an Element from its three factors directly.
func New(c clifford.Multivector, z4 zmod.Z4, z3 zmod.Z3) Element {
	return Element{Clifford: c, Z4: z4, Z3: z3}
}

// Rank1 constructs the rank-1 basis element r^h ⊗ e_ℓ ⊗ τ^d, where ℓ=0
// denotes the Clifford scalar 1 and ℓ∈[1..7] the basis vector e_ℓ.
func Rank1(h, d, l int) (Element, error) {
	if h < 0 || h > 3 {
		return Element{}, fmt.Errorf("%w: h=%d", ErrComponentRange, h)
	}
	if d < 0 || d > 2 {
		return Element{}, fmt.Errorf("%w: d=%d", ErrComponentRange, d)
	}
	if l < 0 || l > 7 {
		return Element{}, fmt.Errorf("%w: l=%d", ErrComponentRange, l)
	}
	var c clifford.Multivector
	if l == 0 {
		c = clifford.Scalar(1)
	} else {
		c = clifford.Vector(l, 1)
	}
	return Element{Clifford: c, Z4: zmod.PowerZ4(h), Z3: zmod.PowerZ3(d)}, nil
}

// Add returns a+b, the componentwise sum across all three factors.
func Add(a, b Element) Element {
	return Element{
		Clifford: clifford.Add(a.Clifford, b.Clifford),
		Z4:       zmod.AddZ4(a.Z4, b.Z4),
		Z3:       zmod.AddZ3(a.Z3, b.Z3),
	}
}

// Scale returns s*a.
func Scale(a Element, s float64) Element {
	return Element{
		Clifford: clifford.Scale(a.Clifford, s),
		Z4:       zmod.ScaleZ4(a.Z4, s),
		Z3:       zmod.ScaleZ3(a.Z3, s),
	}
}

// Mul returns the componentwise tensor-product a*b: the Clifford geometric
// product, the Z4 convolution product, and the Z3 convolution product, each
// carried out independently in its own factor.
func Mul(a, b Element) Element {
	return Element{
		Clifford: clifford.Mul(a.Clifford, b.Clifford),
		Z4:       zmod.MulZ4(a.Z4, b.Z4),
		Z3:       zmod.MulZ3(a.Z3, b.Z3),
	}
}

// Equal reports whether a and b agree in all three factors within
// approx.Epsilon.
func Equal(a, b Element) bool {
	return clifford.Equal(a.Clifford, b.Clifford) &&
		zmod.EqualZ4(a.Z4, b.Z4) &&
		zmod.EqualZ3(a.Z3, b.Z3)
}

// GradeInvolution, Reversion and CliffordConjugation lift their
// single-algebra namesakes from the Clifford factor; the Z4 and Z3 factors
// have no such involution and pass through unchanged.
func GradeInvolution(e Element) Element {
	return Element{Clifford: clifford.GradeInvolution(e.Clifford), Z4: e.Z4, Z3: e.Z3}
}

func Reversion(e Element) Element {
	return Element{Clifford: clifford.Reversion(e.Clifford), Z4: e.Z4, Z3: e.Z3}
}

func CliffordConjugation(e Element) Element {
	return Element{Clifford: clifford.CliffordConjugation(e.Clifford), Z4: e.Z4, Z3: e.Z3}
}

// IsRank1 reports whether e is a rank-1 basis element: its Clifford factor
// is exactly the scalar 1 or a single e_i (i in [1,7]) with coefficient 1,
// and its Z4 and Z3 factors are each exactly a unit group-element power.
func IsRank1(e Element) bool {
	_, okC := clifford.RankOneIndex(e.Clifford)
	_, okZ4 := zmod.ExtractPowerZ4(e.Z4)
	_, okZ3 := zmod.ExtractPowerZ3(e.Z3)
	return okC && okZ4 && okZ3
}

// R returns R^k(e) = (1, r^k, τ⁰) · e, left-multiplication by the pure
// rotation element.
func R(e Element, k int) Element {
	gen := Element{Clifford: clifford.Scalar(1), Z4: zmod.PowerZ4(k), Z3: zmod.IdentityZ3()}
	return Mul(gen, e)
}

// D returns D^k(e) = e · (1, r⁰, τ^k), right-multiplication by the pure
// triality element.
func D(e Element, k int) Element {
	gen := Element{Clifford: clifford.Scalar(1), Z4: zmod.IdentityZ4(), Z3: zmod.PowerZ3(k)}
	return Mul(e, gen)
}

// T returns T^k(e): the 8-cycle permutation {scalar, e1, ..., e7} applied k
// times to e's Clifford factor, leaving Z4 and Z3 untouched. e's Clifford
// factor must be the scalar 1 or a single e_i with coefficient 1; any other
// Clifford factor returns ErrRank, since T has no algebraic
// (multiplicative) realization — it permutes the basis directly. The Z4 and
// Z3 factors are not checked.
func T(e Element, k int) (Element, error) {
	l, ok := clifford.RankOneIndex(e.Clifford)
	if !ok {
		return Element{}, ErrRank
	}
	newL := ((l+k)%8 + 8) % 8
	var c clifford.Multivector
	if newL == 0 {
		c = clifford.Scalar(1)
	} else {
		c = clifford.Vector(newL, 1)
	}
	return Element{Clifford: c, Z4: e.Z4, Z3: e.Z3}, nil
}

// M returns M(e): e with its Z3 factor inverted, Clifford and Z4 unchanged.
func M(e Element) (Element, error) {
	inv, err := zmod.InvertZ3(e.Z3)
	if err != nil {
		return Element{}, fmt.Errorf("sga: M: %w", err)
	}
	return Element{Clifford: e.Clifford, Z4: e.Z4, Z3: inv}, nil
}
