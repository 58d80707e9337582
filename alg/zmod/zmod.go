// Copyright ©2026 The Sigmatics Kernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package zmod implements the real group algebras R[Z4] and R[Z3] used by
// the Sigmatics Geometric Algebra's rotation and triality factors (spec
// §4.6). An element is a vector of coefficients for 1, g, g², ... g^(n-1)
// where g is the group's generator; multiplication is cyclic convolution.
package zmod

import (
	"errors"
	"math"

	"github.com/sigmatics/kernel/internal/approx"
)

// ErrSingular is returned by Invert when an element has no multiplicative
// inverse in the group algebra.
var ErrSingular = errors.New("zmod: element is not invertible")

// Z4 is an element of R[Z4]: coefficients of 1, r, r², r³.
type Z4 [4]float64

// Z3 is an element of R[Z3]: coefficients of 1, τ, τ².
type Z3 [3]float64

func mod(k, n int) int {
	return ((k % n) + n) % n
}

// IdentityZ4 returns the multiplicative identity 1.
func IdentityZ4() Z4 { return Z4{1, 0, 0, 0} }

// GeneratorZ4 returns the generator r.
func GeneratorZ4() Z4 { return Z4{0, 1, 0, 0} }

// PowerZ4 returns r^k, for any integer k (reduced mod 4).
func PowerZ4(k int) Z4 {
	var z Z4
	z[mod(k, 4)] = 1
	return z
}

// IdentityZ3 returns the multiplicative identity 1.
func IdentityZ3() Z3 { return Z3{1, 0, 0} }

// GeneratorZ3 returns the generator τ.
func GeneratorZ3() Z3 { return Z3{0, 1, 0} }

// PowerZ3 returns τ^k, for any integer k (reduced mod 3).
func PowerZ3(k int) Z3 {
	var z Z3
	z[mod(k, 3)] = 1
	return z
}

// AddZ4 returns a+b.
func AddZ4(a, b Z4) Z4 {
	var out Z4
	for i := range out {
		out[i] = a[i] + b[i]
	}
	return out
}

// ScaleZ4 returns s*a.
func ScaleZ4(a Z4, s float64) Z4 {
	var out Z4
	for i := range out {
		out[i] = a[i] * s
	}
	return out
}

// MulZ4 returns the convolution product a*b in R[Z4].
func MulZ4(a, b Z4) Z4 {
	var out Z4
	for i := 0; i < 4; i++ {
		if a[i] == 0 {
			continue
		}
		for j := 0; j < 4; j++ {
			out[mod(i+j, 4)] += a[i] * b[j]
		}
	}
	return out
}

// EqualZ4 reports whether a and b agree within approx.Epsilon.
func EqualZ4(a, b Z4) bool {
	for i := range a {
		if !approx.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// ExtractPowerZ4 reports whether a is exactly r^k for some k, and if so
// returns k.
func ExtractPowerZ4(a Z4) (k int, ok bool) {
	found := -1
	for i, c := range a {
		if approx.IsZero(c) {
			continue
		}
		if !approx.Equal(c, 1) {
			return 0, false
		}
		if found != -1 {
			return 0, false
		}
		found = i
	}
	if found == -1 {
		return 0, false
	}
	return found, true
}

// InvertZ4 returns a's multiplicative inverse in R[Z4], or ErrSingular if
// none exists. Pure group elements (r^k) take a fast path; general
// elements are inverted by solving the circulant system a*x = 1.
func InvertZ4(a Z4) (Z4, error) {
	if k, ok := ExtractPowerZ4(a); ok {
		return PowerZ4(-k), nil
	}
	x, err := invertCirculant(a[:])
	if err != nil {
		return Z4{}, err
	}
	return Z4{x[0], x[1], x[2], x[3]}, nil
}

// AddZ3 returns a+b.
func AddZ3(a, b Z3) Z3 {
	var out Z3
	for i := range out {
		out[i] = a[i] + b[i]
	}
	return out
}

// ScaleZ3 returns s*a.
func ScaleZ3(a Z3, s float64) Z3 {
	var out Z3
	for i := range out {
		out[i] = a[i] * s
	}
	return out
}

// MulZ3 returns the convolution product a*b in R[Z3].
func MulZ3(a, b Z3) Z3 {
	var out Z3
	for i := 0; i < 3; i++ {
		if a[i] == 0 {
			continue
		}
		for j := 0; j < 3; j++ {
			out[mod(i+j, 3)] += a[i] * b[j]
		}
	}
	return out
}

// EqualZ3 reports whether a and b agree within approx.Epsilon.
func EqualZ3(a, b Z3) bool {
	for i := range a {
		if !approx.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// ExtractPowerZ3 reports whether a is exactly τ^k for some k, and if so
// returns k.
func ExtractPowerZ3(a Z3) (k int, ok bool) {
	found := -1
	for i, c := range a {
		if approx.IsZero(c) {
			continue
		}
		if !approx.Equal(c, 1) {
			return 0, false
		}
		if found != -1 {
			return 0, false
		}
		found = i
	}
	if found == -1 {
		return 0, false
	}
	return found, true
}

// InvertZ3 returns a's multiplicative inverse in R[Z3], or ErrSingular if
// none exists.
func InvertZ3(a Z3) (Z3, error) {
	if k, ok := ExtractPowerZ3(a); ok {
		return PowerZ3(-k), nil
	}
	x, err := invertCirculant(a[:])
	if err != nil {
		return Z3{}, err
	}
	return Z3{x[0], x[1], x[2]}, nil
}

// invertCirculant solves C*x = e0 for x, where C is the n×n circulant
// matrix with C[row][col] = a[mod(row-col, n)] (the matrix representation
// of left-multiplication by a under cyclic convolution), via Gaussian
// elimination with partial pivoting. It returns ErrSingular if C is
// numerically singular.
func invertCirculant(a []float64) ([]float64, error) {
	n := len(a)
	aug := make([][]float64, n)
	for row := 0; row < n; row++ {
		aug[row] = make([]float64, n+1)
		for col := 0; col < n; col++ {
			aug[row][col] = a[mod(row-col, n)]
		}
		if row == 0 {
			aug[row][n] = 1
		}
	}

	for col := 0; col < n; col++ {
		pivot := col
		best := math.Abs(aug[col][col])
		for row := col + 1; row < n; row++ {
			if v := math.Abs(aug[row][col]); v > best {
				best, pivot = v, row
			}
		}
		if approx.IsZero(best) {
			return nil, ErrSingular
		}
		aug[col], aug[pivot] = aug[pivot], aug[col]

		p := aug[col][col]
		for k := col; k <= n; k++ {
			aug[col][k] /= p
		}
		for row := 0; row < n; row++ {
			if row == col {
				continue
			}
			f := aug[row][col]
			if f == 0 {
				continue
			}
			for k := col; k <= n; k++ {
				aug[row][k] -= f * aug[col][k]
			}
		}
	}

	x := make([]float64, n)
	for row := 0; row < n; row++ {
		x[row] = aug[row][n]
	}
	return x, nil
}
