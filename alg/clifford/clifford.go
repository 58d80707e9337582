// Copyright ©2026 The Sigmatics Kernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clifford implements the sparse Cl(7) multivector algebra that
// underlies the Sigmatics Geometric Algebra's Clifford factor (spec §4.5).
//
// Signature: this implementation adopts Cl(7,0) — eᵢ² = +1 for all seven
// generators — per the sign rule spec.md's simplification step literally
// specifies ("adjacent duplicate indices annihilate... with sign +1"),
// resolving the open question in spec §9 rather than silently reconciling
// it with the Cl(0,7) label used elsewhere in the spec's prose. For the
// rank-1 elements the bridge (package bridge) relies on, both signature
// conventions yield the same 96-class permutation semantics, since only one
// basis vector appears per element.
package clifford

import (
	"sort"
	"strconv"
	"strings"

	"github.com/sigmatics/kernel/internal/approx"
)

// Multivector is a sparse mapping from sorted blade strings ("1" for the
// scalar, or a concatenation of sorted "e<i>" tokens, i in [1,7]) to real
// coefficients. Coefficients with magnitude below approx.Epsilon are never
// stored. The zero value is the zero multivector.
type Multivector map[string]float64

// Scalar returns the multivector representing the real number c.
func Scalar(c float64) Multivector {
	m := Multivector{}
	if !approx.IsZero(c) {
		m["1"] = c
	}
	return m
}

// Vector returns the multivector c·e_i for i in [1,7].
func Vector(i int, c float64) Multivector {
	m := Multivector{}
	if !approx.IsZero(c) {
		m[bladeKey([]int{i})] = c
	}
	return m
}

// Zero returns the additive identity.
func Zero() Multivector {
	return Multivector{}
}

func bladeIndices(blade string) []int {
	if blade == "1" || blade == "" {
		return nil
	}
	var idx []int
	for i := 0; i < len(blade); i++ {
		// tokens are "e" followed by a single digit 1-7
		if blade[i] == 'e' && i+1 < len(blade) {
			d, err := strconv.Atoi(string(blade[i+1]))
			if err == nil {
				idx = append(idx, d)
			}
			i++
		}
	}
	return idx
}

func bladeKey(idx []int) string {
	if len(idx) == 0 {
		return "1"
	}
	var b strings.Builder
	for _, i := range idx {
		b.WriteByte('e')
		b.WriteString(strconv.Itoa(i))
	}
	return b.String()
}

func grade(blade string) int {
	return len(bladeIndices(blade))
}

// BasisVectorIndex reports whether blade names a single basis vector e_i,
// and if so returns i.
func BasisVectorIndex(blade string) (i int, ok bool) {
	idx := bladeIndices(blade)
	if len(idx) != 1 {
		return 0, false
	}
	return idx[0], true
}

// simplify sorts idx by adjacent transposition, tracking the sign flip from
// each swap, and annihilates adjacent duplicate indices (eᵢ² = +1, so a
// duplicate pair is simply removed with no extra sign contribution).
func simplify(idx []int) (sign float64, result []int) {
	arr := append([]int(nil), idx...)
	sign = 1
	for {
		swapped := false
		for i := 0; i < len(arr)-1; i++ {
			switch {
			case arr[i] > arr[i+1]:
				arr[i], arr[i+1] = arr[i+1], arr[i]
				sign = -sign
				swapped = true
			case arr[i] == arr[i+1]:
				arr = append(arr[:i], arr[i+2:]...)
				swapped = true
			}
			if swapped {
				break
			}
		}
		if !swapped {
			break
		}
	}
	return sign, arr
}

func cleanup(m Multivector) Multivector {
	out := Multivector{}
	for blade, c := range m {
		if !approx.IsZero(c) {
			out[blade] = c
		}
	}
	return out
}

// Add returns a+b.
func Add(a, b Multivector) Multivector {
	out := Multivector{}
	for blade, c := range a {
		out[blade] += c
	}
	for blade, c := range b {
		out[blade] += c
	}
	return cleanup(out)
}

// Sub returns a-b.
func Sub(a, b Multivector) Multivector {
	out := Multivector{}
	for blade, c := range a {
		out[blade] += c
	}
	for blade, c := range b {
		out[blade] -= c
	}
	return cleanup(out)
}

// Scale returns s*a.
func Scale(a Multivector, s float64) Multivector {
	out := Multivector{}
	for blade, c := range a {
		out[blade] = c * s
	}
	return cleanup(out)
}

// Mul returns the geometric product a*b.
func Mul(a, b Multivector) Multivector {
	out := Multivector{}
	for ba, ca := range a {
		for bb, cb := range b {
			concat := append(append([]int(nil), bladeIndices(ba)...), bladeIndices(bb)...)
			sign, result := simplify(concat)
			key := bladeKey(result)
			out[key] += sign * ca * cb
		}
	}
	return cleanup(out)
}

// Equal reports whether a and b agree on every blade's coefficient within
// approx.Epsilon.
func Equal(a, b Multivector) bool {
	keys := map[string]bool{}
	for k := range a {
		keys[k] = true
	}
	for k := range b {
		keys[k] = true
	}
	for k := range keys {
		if !approx.Equal(a[k], b[k]) {
			return false
		}
	}
	return true
}

// RankOneIndex reports whether m is exactly the scalar 1 or a single basis
// vector e_i (i in [1,7]) with coefficient within approx.Epsilon of 1, and
// if so returns i (0 for the scalar case). This is the Clifford-factor half
// of the SGA rank-1 basis element test (spec §4.9).
func RankOneIndex(m Multivector) (i int, ok bool) {
	blades := m.Blades()
	if len(blades) != 1 {
		return 0, false
	}
	blade := blades[0]
	if !approx.Equal(m[blade], 1) {
		return 0, false
	}
	if blade == "1" {
		return 0, true
	}
	idx := bladeIndices(blade)
	if len(idx) != 1 {
		return 0, false
	}
	return idx[0], true
}

// Blades returns the sorted list of blade strings with a nonzero
// coefficient, for deterministic iteration (printing, testing).
func (m Multivector) Blades() []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) < len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}

// String renders m as a sum of coefficient*blade terms, e.g. "2 + 3*e1e2".
func (m Multivector) String() string {
	blades := m.Blades()
	if len(blades) == 0 {
		return "0"
	}
	var b strings.Builder
	for i, blade := range blades {
		if i > 0 {
			b.WriteString(" + ")
		}
		b.WriteString(strconv.FormatFloat(m[blade], 'g', -1, 64))
		if blade != "1" {
			b.WriteByte('*')
			b.WriteString(blade)
		}
	}
	return b.String()
}
