// Copyright ©2026 The Sigmatics Kernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package class implements the Atlas Sigil Algebra kernel's 96-element
// class system: the decomposition of a byte into (h2, d, l) components, the
// canonical representative of each of the 96 equivalence classes, and the
// belt address space built on top of it. See spec §3 and §4.1.
package class

import "fmt"

// NumClasses is the size of the class universe C = {0,...,95}.
const NumClasses = 96

// Components is the (h2, d, l) decomposition of a byte, per spec §3.
type Components struct {
	H2 int // rotation component, in [0,3]
	D  int // triality component, in [0,2]
	L  int // twist component, in [0,7]
}

func bit(b uint8, n uint) int {
	return int((b >> n) & 1)
}

// DecodeByte decomposes b into its (h2, d, l) components. Bit 0 is ignored;
// the (1,1) pairing of (bit4, bit5) aliases to d=0.
func DecodeByte(b uint8) Components {
	h2 := (bit(b, 7) << 1) | bit(b, 6)
	l := (bit(b, 3) << 2) | (bit(b, 2) << 1) | bit(b, 1)
	b4, b5 := bit(b, 4), bit(b, 5)
	d := decodeD(b4, b5)
	return Components{H2: h2, D: d, L: l}
}

func decodeD(b4, b5 int) int {
	switch {
	case b4 == 0 && b5 == 0:
		return 0
	case b4 == 1 && b5 == 0:
		return 1
	case b4 == 0 && b5 == 1:
		return 2
	default: // (1,1) fallback
		return 0
	}
}

// encodeD returns the canonical forward-direction (bit4, bit5) pair for d.
func encodeD(d int) (b4, b5 int) {
	switch d {
	case 1:
		return 1, 0
	case 2:
		return 0, 1
	default: // 0
		return 0, 0
	}
}

// EncodeComponents returns the canonical byte for c: bit0 = 0 and the
// forward direction of the d-table. It does not validate that c's fields
// are in range; callers that decoded c from DecodeClassIndex already have
// that guarantee.
func EncodeComponents(c Components) uint8 {
	b4, b5 := encodeD(c.D)
	var out uint8
	out |= uint8(c.H2>>1&1) << 7
	out |= uint8(c.H2&1) << 6
	out |= uint8(b5) << 5
	out |= uint8(b4) << 4
	out |= uint8(c.L>>2&1) << 3
	out |= uint8(c.L>>1&1) << 2
	out |= uint8(c.L&1) << 1
	return out
}

// ComponentsToClassIndex returns the class index 24*h2 + 8*d + l for c,
// failing if any field is out of its domain.
func ComponentsToClassIndex(c Components) (int, error) {
	if c.H2 < 0 || c.H2 > 3 || c.D < 0 || c.D > 2 || c.L < 0 || c.L > 7 {
		return 0, fmt.Errorf("class: invalid components %+v: %w", c, ErrClassRange)
	}
	return 24*c.H2 + 8*c.D + c.L, nil
}

// DecodeClassIndex is the inverse of ComponentsToClassIndex.
func DecodeClassIndex(c int) (Components, error) {
	if c < 0 || c >= NumClasses {
		return Components{}, fmt.Errorf("class: index %d: %w", c, ErrClassRange)
	}
	h2 := c / 24
	rem := c % 24
	d := rem / 8
	l := rem % 8
	return Components{H2: h2, D: d, L: l}, nil
}

// ClassIndex returns the class index of byte b. It is total: every byte
// decodes to components within range.
func ClassIndex(b uint8) int {
	idx, err := ComponentsToClassIndex(DecodeByte(b))
	if err != nil {
		// DecodeByte always produces in-range components; a failure here
		// indicates a bug in DecodeByte, not bad input.
		panic(fmt.Sprintf("class: internal error decoding byte %d: %v", b, err))
	}
	return idx
}

// CanonicalByte returns the canonical byte representative (bit0 = 0,
// forward d-table) for class index c.
func CanonicalByte(c int) (uint8, error) {
	comp, err := DecodeClassIndex(c)
	if err != nil {
		return 0, err
	}
	return EncodeComponents(comp), nil
}

// AreEquivalent reports whether b1 and b2 decode to the same class.
func AreEquivalent(b1, b2 uint8) bool {
	return DecodeByte(b1) == DecodeByte(b2)
}

// EquivalenceClass returns every byte in [0,255] that decodes to class c,
// in ascending order. Every class has two or four preimages.
func EquivalenceClass(c int) ([]uint8, error) {
	if c < 0 || c >= NumClasses {
		return nil, fmt.Errorf("class: index %d: %w", c, ErrClassRange)
	}
	var out []uint8
	for b := 0; b < 256; b++ {
		if ClassIndex(uint8(b)) == c {
			out = append(out, uint8(b))
		}
	}
	return out, nil
}
