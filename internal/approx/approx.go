// Copyright ©2026 The Sigmatics Kernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package approx provides EPSILON-tolerant comparison of the floating point
// values that flow through the algebra packages. It is the kernel-wide home
// for the handful of tolerance predicates the rest of the tree needs, kept
// narrow and unexported rather than re-importing a general slice-statistics
// package for two comparisons.
package approx

import "math"

// Epsilon is the tolerance below which a coefficient is treated as zero and
// above which two values are treated as distinct, used throughout alg/* and
// bridge.
const Epsilon = 1e-10

// Equal reports whether a and b differ by no more than Epsilon.
func Equal(a, b float64) bool {
	return EqualWithinAbs(a, b, Epsilon)
}

// EqualWithinAbs reports whether a and b have an absolute difference of at
// most tol.
func EqualWithinAbs(a, b, tol float64) bool {
	return a == b || math.Abs(a-b) <= tol
}

// IsZero reports whether v is within Epsilon of zero.
func IsZero(v float64) bool {
	return math.Abs(v) <= Epsilon
}

// VectorEqual reports whether u and v are elementwise equal within Epsilon.
// It returns false for vectors of differing length.
func VectorEqual(u, v []float64) bool {
	if len(u) != len(v) {
		return false
	}
	for i := range u {
		if !Equal(u[i], v[i]) {
			return false
		}
	}
	return true
}
