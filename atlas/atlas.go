// Copyright ©2026 The Sigmatics Kernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package atlas is the narrow public façade over the kernel (spec §6.1):
// parse/evaluate/pretty-print, class and belt utilities, and the SGA
// wrappers that validate their inputs before delegating to the algebra
// packages. Callers should generally only need this package; the rest of
// the module is exported for testing and for callers that need the
// algebra directly.
package atlas

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/sigmatics/kernel/alg/clifford"
	"github.com/sigmatics/kernel/alg/fano"
	"github.com/sigmatics/kernel/alg/sga"
	"github.com/sigmatics/kernel/bridge"
	"github.com/sigmatics/kernel/class"
	"github.com/sigmatics/kernel/eval"
	"github.com/sigmatics/kernel/parse"
)

// Parse parses source into a phrase AST.
func Parse(source string) (parse.Node, error) {
	return parse.Parse(source)
}

// EvaluateBytes runs the literal backend over source.
func EvaluateBytes(source string) (eval.LiteralResult, error) {
	node, err := parse.Parse(source)
	if err != nil {
		return eval.LiteralResult{}, err
	}
	return eval.Literal(node)
}

// EvaluateWords runs the operational backend over source.
func EvaluateWords(source string) ([]string, error) {
	node, err := parse.Parse(source)
	if err != nil {
		return nil, err
	}
	return eval.Operational(node)
}

// Evaluate runs both backends over source and returns the AST alongside
// both results.
func Evaluate(source string) (eval.Result, error) {
	node, err := parse.Parse(source)
	if err != nil {
		return eval.Result{}, err
	}
	return eval.Evaluate(node)
}

// PrettyPrint renders a human-readable block listing both backends'
// output for source.
func PrettyPrint(source string) (string, error) {
	res, err := Evaluate(source)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "source: %s\n", source)
	fmt.Fprintf(&b, "bytes:  % X\n", res.Literal.Bytes)
	if res.Literal.HasAddr {
		fmt.Fprintf(&b, "addrs:  %v\n", res.Literal.Addresses)
	}
	fmt.Fprintf(&b, "words:  %s\n", strings.Join(res.Operational, " "))
	return b.String(), nil
}

// ClassIndex returns the class index of byte b.
func ClassIndex(b uint8) int {
	return class.ClassIndex(b)
}

// CanonicalByte returns the canonical representative of class index c.
func CanonicalByte(c int) (uint8, error) {
	return class.CanonicalByte(c)
}

// Equivalent reports whether b1 and b2 belong to the same class.
func Equivalent(b1, b2 uint8) bool {
	return class.AreEquivalent(b1, b2)
}

// EquivalenceClass returns every byte equivalent to class index c.
func EquivalenceClass(c int) ([]uint8, error) {
	return class.EquivalenceClass(c)
}

// ClassInfo bundles a byte's class index, component decomposition, and
// canonical representative.
type ClassInfo struct {
	ClassIndex    int
	Components    class.Components
	CanonicalByte uint8
}

// GetClassInfo returns b's ClassInfo.
func GetClassInfo(b uint8) (ClassInfo, error) {
	comp := class.DecodeByte(b)
	idx, err := class.ComponentsToClassIndex(comp)
	if err != nil {
		return ClassInfo{}, err
	}
	canon, err := class.CanonicalByte(idx)
	if err != nil {
		return ClassInfo{}, err
	}
	return ClassInfo{ClassIndex: idx, Components: comp, CanonicalByte: canon}, nil
}

// BeltAddress computes the linear belt address for (page, b).
func BeltAddress(page int, b uint8) (class.BeltAddress, error) {
	return class.ComputeBeltAddress(page, b)
}

// DecodeBeltAddress decomposes a linear belt address.
func DecodeBeltAddress(address int) (class.BeltAddress, error) {
	return class.DecodeBeltAddress(address)
}

// ClassByte pairs a class index with its canonical byte.
type ClassByte struct {
	Index int
	Byte  uint8
}

// AllClasses returns every class paired with its canonical byte, length 96.
func AllClasses() ([]ClassByte, error) {
	out := make([]ClassByte, 0, class.NumClasses)
	for c := 0; c < class.NumClasses; c++ {
		b, err := class.CanonicalByte(c)
		if err != nil {
			return nil, err
		}
		out = append(out, ClassByte{Index: c, Byte: b})
	}
	return out, nil
}

// ByteClass pairs a byte with its class index.
type ByteClass struct {
	Byte       uint8
	ClassIndex int
}

// ByteClassMapping returns every byte paired with its class index, length
// 256.
func ByteClassMapping() []ByteClass {
	out := make([]ByteClass, 0, 256)
	for b := 0; b < 256; b++ {
		out = append(out, ByteClass{Byte: uint8(b), ClassIndex: class.ClassIndex(uint8(b))})
	}
	return out
}

// GetTrialityOrbit returns the orbit containing class c.
func GetTrialityOrbit(c int) (class.TrialityOrbit, error) {
	return class.GetTrialityOrbit(c)
}

// GetAllTrialityOrbits returns all 32 triality orbits.
func GetAllTrialityOrbits() []class.TrialityOrbit {
	return class.GetAllTrialityOrbits()
}

// DTransformResult describes one applyDTransform call.
type DTransformResult struct {
	OldClass       int
	NewClass       int
	H2             int
	DOld           int
	DNew           int
	L              int
}

// ApplyDTransform applies the triality transform D^k to class c and
// reports both the resulting class and the underlying component change.
func ApplyDTransform(c, k int) (DTransformResult, error) {
	comp, err := class.DecodeClassIndex(c)
	if err != nil {
		return DTransformResult{}, err
	}
	newComp := comp.ApplyTriality(k)
	newClass, err := class.ComponentsToClassIndex(newComp)
	if err != nil {
		return DTransformResult{}, err
	}
	return DTransformResult{
		OldClass: c,
		NewClass: newClass,
		H2:       comp.H2,
		DOld:     comp.D,
		DNew:     newComp.D,
		L:        comp.L,
	}, nil
}

// Lift embeds class c into its rank-1 SGA basis element.
func Lift(c int) (sga.Element, error) {
	return bridge.Lift(c)
}

// Project returns the class index of SGA element e, if e is rank-1.
func Project(e sga.Element) (int, bool) {
	return bridge.Project(e)
}

// IsRank1 reports whether e is a rank-1 basis element.
func IsRank1(e sga.Element) bool {
	return sga.IsRank1(e)
}

// R applies the rotation transform R^k to an SGA element.
func R(e sga.Element, k int) sga.Element {
	return sga.R(e, k)
}

// D applies the triality transform D^k to an SGA element.
func D(e sga.Element, k int) sga.Element {
	return sga.D(e, k)
}

// T applies the twist transform T^k to an SGA element; e's Clifford factor
// must be rank-1.
func T(e sga.Element, k int) (sga.Element, error) {
	return sga.T(e, k)
}

// M applies the mirror transform to an SGA element.
func M(e sga.Element) (sga.Element, error) {
	return sga.M(e)
}

// Validate runs the full 1,344-check commutative-diagram sweep.
func Validate() bridge.Report { return bridge.Validate() }

// ValidateR runs the R-transform checks alone.
func ValidateR() bridge.Report { return bridge.ValidateR() }

// ValidateD runs the D-transform checks alone.
func ValidateD() bridge.Report { return bridge.ValidateD() }

// ValidateT runs the T-transform checks alone.
func ValidateT() bridge.Report { return bridge.ValidateT() }

// ValidateM runs the M-transform checks alone.
func ValidateM() bridge.Report { return bridge.ValidateM() }

// CayleyProduct computes the octonion product of x and y.
func CayleyProduct(x, y fano.Octonion) (fano.Octonion, error) {
	return fano.CayleyProduct(x, y)
}

// InnerProduct computes the componentwise inner product of two grade-1
// Clifford elements.
func InnerProduct(u, v clifford.Multivector) (float64, error) {
	return fano.InnerProduct(u, v)
}

// CrossProduct computes the Fano-indexed cross product of two grade-1
// Clifford elements.
func CrossProduct(u, v clifford.Multivector) (clifford.Multivector, error) {
	return fano.CrossProduct(u, v)
}

// Conjugate negates an octonion's vector part.
func Conjugate(x fano.Octonion) fano.Octonion {
	return fano.Conjugate(x)
}

// Norm returns an octonion's norm.
func Norm(x fano.Octonion) float64 {
	return fano.Norm(x)
}

// NormSquared returns an octonion's squared norm.
func NormSquared(x fano.Octonion) float64 {
	return fano.NormSquared(x)
}

// VerifyAlternativity checks the alternative law for x, y.
func VerifyAlternativity(x, y fano.Octonion) (bool, error) {
	return fano.VerifyAlternativity(x, y)
}

// VerifyNormMultiplicativity checks norm multiplicativity for x, y.
func VerifyNormMultiplicativity(x, y fano.Octonion) (bool, error) {
	return fano.VerifyNormMultiplicativity(x, y)
}

// RandomOctonion returns a random octonion with coefficients in [-1,1],
// seeded from the package-level math/rand/v2 source.
func RandomOctonion() fano.Octonion {
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	return fano.RandomOctonion(rng)
}

// Lines returns the seven oriented Fano triples.
func Lines() [][3]int {
	return fano.Lines
}

// IsFanoLine reports whether (i, j, k) is one of the seven oriented lines.
func IsFanoLine(i, j, k int) bool {
	return fano.IsFanoLine(i, j, k)
}

// GetLinesContaining returns the lines that contain index i.
func GetLinesContaining(i int) [][3]int {
	return fano.LinesContaining(i)
}

// VerifyFanoTable checks that the Fano cross-product table is
// anticommutative and self-annihilating for every pair of distinct basis
// vectors, returning the first failing pair found, if any.
func VerifyFanoTable() (ok bool, i, j int) {
	for a := 1; a <= 7; a++ {
		for b := 1; b <= 7; b++ {
			u, v := clifford.Vector(a, 1), clifford.Vector(b, 1)
			uv, err := fano.CrossProduct(u, v)
			if err != nil {
				return false, a, b
			}
			vu, err := fano.CrossProduct(v, u)
			if err != nil {
				return false, a, b
			}
			if a == b {
				if !clifford.Equal(uv, clifford.Zero()) {
					return false, a, b
				}
				continue
			}
			if !clifford.Equal(uv, clifford.Scale(vu, -1)) {
				return false, a, b
			}
		}
	}
	return true, 0, 0
}
