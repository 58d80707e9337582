// Copyright ©2026 The Sigmatics Kernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package class

// mod normalizes a signed value into [0, n).
func mod(k, n int) int {
	m := k % n
	if m < 0 {
		m += n
	}
	return m
}

// ApplyRotation returns c with h2 advanced by k (mod 4). R⁴ is the identity.
func (c Components) ApplyRotation(k int) Components {
	c.H2 = mod(c.H2+k, 4)
	return c
}

// ApplyTriality returns c with d advanced by k (mod 3). D³ is the identity.
func (c Components) ApplyTriality(k int) Components {
	c.D = mod(c.D+k, 3)
	return c
}

// ApplyTwist returns c with l advanced by k (mod 8). T⁸ is the identity.
func (c Components) ApplyTwist(k int) Components {
	c.L = mod(c.L+k, 8)
	return c
}

// ApplyMirror swaps d=1 and d=2, fixing d=0, h2, and l. M² is the identity.
func (c Components) ApplyMirror() Components {
	switch c.D {
	case 1:
		c.D = 2
	case 2:
		c.D = 1
	}
	return c
}

// Transform is a quadruple of signed component shifts / a flip, composed by
// summing R/D/T (mod 4/3/8, applied at Components level) and XOR-ing M, per
// spec §3's Transform definition.
type Transform struct {
	R, D, T int
	M       bool
}

// Compose combines the receiver as the outer transform with inner applied
// first: R/D/T sum, M XORs.
func (t Transform) Compose(inner Transform) Transform {
	return Transform{
		R: t.R + inner.R,
		D: t.D + inner.D,
		T: t.T + inner.T,
		M: t.M != inner.M,
	}
}

// ApplyTransforms applies t to c in the fixed order R, D, T, M. Because R,
// D, T act on independent components they pairwise commute; M commutes with
// R and T. The fixed order is a documentation convention, not a semantic
// requirement of this function's result.
func (c Components) ApplyTransforms(t Transform) Components {
	c = c.ApplyRotation(t.R)
	c = c.ApplyTriality(t.D)
	c = c.ApplyTwist(t.T)
	if t.M {
		c = c.ApplyMirror()
	}
	return c
}
