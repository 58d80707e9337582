// Copyright ©2026 The Sigmatics Kernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fano implements the Fano-plane cross product and the Cayley
// (octonion) product built on top of it (spec §4.8). There is no octonion
// analogue among the pack's num/* value types (which stop at quaternions
// and dual numbers); this package follows their idiom — a plain value
// type plus package-level pure functions — for the one algebra the pack
// itself does not cover.
package fano

import (
	"errors"
	"math"
	"math/rand/v2"

	"github.com/sigmatics/kernel/alg/clifford"
	"github.com/sigmatics/kernel/internal/approx"
)

// ErrNotVector is returned when a Clifford input to a Fano operation is not
// a pure grade-1 element.
var ErrNotVector = errors.New("fano: input is not a grade-1 Clifford element")

// Lines lists the seven oriented Fano triples (i, j, k) fixing the
// octonion multiplication table: e_i × e_j = e_k.
var Lines = [][3]int{
	{1, 2, 4},
	{2, 3, 5},
	{3, 4, 6},
	{4, 5, 7},
	{5, 6, 1},
	{6, 7, 2},
	{7, 1, 3},
}

// crossTable[i][j] = signed index of e_i × e_j, for i != j in [1,7];
// crossTable[i][i] is always 0 (e_i × e_i = 0).
var crossTable = buildCrossTable()

func buildCrossTable() [8][8]int {
	var t [8][8]int
	for _, l := range Lines {
		i, j, k := l[0], l[1], l[2]
		t[i][j] = k
		t[j][k] = i
		t[k][i] = j
		t[j][i] = -k
		t[k][j] = -i
		t[i][k] = -j
	}
	return t
}

// IsFanoLine reports whether (i, j, k) is one of the seven oriented lines.
func IsFanoLine(i, j, k int) bool {
	for _, l := range Lines {
		if l[0] == i && l[1] == j && l[2] == k {
			return true
		}
	}
	return false
}

// LinesContaining returns the lines that contain index i (1..7), in table
// order.
func LinesContaining(i int) [][3]int {
	var out [][3]int
	for _, l := range Lines {
		if l[0] == i || l[1] == i || l[2] == i {
			out = append(out, l)
		}
	}
	return out
}

func vectorCoeffs(m clifford.Multivector) ([7]float64, bool) {
	var v [7]float64
	for blade, c := range m {
		if blade == "1" {
			if !approx.IsZero(c) {
				return v, false
			}
			continue
		}
		idx, ok := clifford.BasisVectorIndex(blade)
		if !ok {
			return v, false
		}
		v[idx-1] = c
	}
	return v, true
}

func vectorFromCoeffs(v [7]float64) clifford.Multivector {
	m := clifford.Zero()
	for i, c := range v {
		m = clifford.Add(m, clifford.Vector(i+1, c))
	}
	return m
}

// CrossProduct computes the Fano-indexed cross product of two grade-1
// Clifford elements.
func CrossProduct(u, v clifford.Multivector) (clifford.Multivector, error) {
	uc, ok := vectorCoeffs(u)
	if !ok {
		return nil, ErrNotVector
	}
	vc, ok := vectorCoeffs(v)
	if !ok {
		return nil, ErrNotVector
	}
	var out [7]float64
	for i := 1; i <= 7; i++ {
		if approx.IsZero(uc[i-1]) {
			continue
		}
		for j := 1; j <= 7; j++ {
			if approx.IsZero(vc[j-1]) || i == j {
				continue
			}
			signed := crossTable[i][j]
			k := signed
			sign := 1.0
			if k < 0 {
				k, sign = -k, -1
			}
			out[k-1] += sign * uc[i-1] * vc[j-1]
		}
	}
	return vectorFromCoeffs(out), nil
}

// Octonion is a point of ℝ ⊕ V, the 8-dimensional Cayley algebra: a scalar
// real part and a grade-1 Clifford vector part.
type Octonion struct {
	Scalar float64
	Vector clifford.Multivector
}

// InnerProduct returns the componentwise inner product of two grade-1
// Clifford elements' coefficient vectors.
func InnerProduct(u, v clifford.Multivector) (float64, error) {
	uc, ok := vectorCoeffs(u)
	if !ok {
		return 0, ErrNotVector
	}
	vc, ok := vectorCoeffs(v)
	if !ok {
		return 0, ErrNotVector
	}
	var sum float64
	for i := range uc {
		sum += uc[i] * vc[i]
	}
	return sum, nil
}

// CayleyProduct computes the octonion product
// (α+u)(β+v) = (αβ - ⟨u,v⟩) + (αv + βu + u×v).
func CayleyProduct(x, y Octonion) (Octonion, error) {
	inner, err := InnerProduct(x.Vector, y.Vector)
	if err != nil {
		return Octonion{}, err
	}
	cross, err := CrossProduct(x.Vector, y.Vector)
	if err != nil {
		return Octonion{}, err
	}
	vec := clifford.Add(clifford.Add(clifford.Scale(y.Vector, x.Scalar), clifford.Scale(x.Vector, y.Scalar)), cross)
	return Octonion{Scalar: x.Scalar*y.Scalar - inner, Vector: vec}, nil
}

// Conjugate negates the vector part, leaving the scalar part unchanged.
func Conjugate(x Octonion) Octonion {
	return Octonion{Scalar: x.Scalar, Vector: clifford.Scale(x.Vector, -1)}
}

// NormSquared returns α² + Σᵢ uᵢ².
func NormSquared(x Octonion) float64 {
	var sum float64
	for _, c := range x.Vector {
		sum += c * c
	}
	return x.Scalar*x.Scalar + sum
}

// Norm returns √NormSquared(x).
func Norm(x Octonion) float64 {
	return math.Sqrt(NormSquared(x))
}

// VerifyAlternativity reports whether (xy)y - x(yy) is within EPSILON of
// zero in every coefficient, the right-alternative law restricted to this
// pair.
func VerifyAlternativity(x, y Octonion) (bool, error) {
	xy, err := CayleyProduct(x, y)
	if err != nil {
		return false, err
	}
	xyY, err := CayleyProduct(xy, y)
	if err != nil {
		return false, err
	}
	yy, err := CayleyProduct(y, y)
	if err != nil {
		return false, err
	}
	xyy, err := CayleyProduct(x, yy)
	if err != nil {
		return false, err
	}
	diff := Octonion{Scalar: xyY.Scalar - xyy.Scalar, Vector: clifford.Sub(xyY.Vector, xyy.Vector)}
	if !approx.IsZero(diff.Scalar) {
		return false, nil
	}
	for _, c := range diff.Vector {
		if !approx.IsZero(c) {
			return false, nil
		}
	}
	return true, nil
}

// VerifyNormMultiplicativity reports whether |xy| - |x||y| is within
// EPSILON of zero.
func VerifyNormMultiplicativity(x, y Octonion) (bool, error) {
	xy, err := CayleyProduct(x, y)
	if err != nil {
		return false, err
	}
	return approx.IsZero(Norm(xy) - Norm(x)*Norm(y)), nil
}

// RandomOctonion returns a random octonion with every coefficient drawn
// uniformly from [-1, 1].
func RandomOctonion(rng *rand.Rand) Octonion {
	var v [7]float64
	for i := range v {
		v[i] = rng.Float64()*2 - 1
	}
	return Octonion{Scalar: rng.Float64()*2 - 1, Vector: vectorFromCoeffs(v)}
}
