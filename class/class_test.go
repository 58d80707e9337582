// Copyright ©2026 The Sigmatics Kernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package class

import (
	"errors"
	"testing"
)

func TestDecodeEncodeRoundTrip(t *testing.T) {
	for b := 0; b < 256; b++ {
		c := DecodeByte(uint8(b))
		idx, err := ComponentsToClassIndex(c)
		if err != nil {
			t.Fatalf("byte %d: components %+v out of range: %v", b, c, err)
		}
		if idx < 0 || idx >= NumClasses {
			t.Fatalf("byte %d: class index %d out of [0,95]", b, idx)
		}
		canon, err := CanonicalByte(idx)
		if err != nil {
			t.Fatalf("byte %d: CanonicalByte(%d): %v", b, idx, err)
		}
		if !AreEquivalent(uint8(b), canon) {
			t.Errorf("byte %d: canonical %d not equivalent under decode", b, canon)
		}
		if canon&1 != 0 {
			t.Errorf("byte %d: canonical byte %d has bit0 set", b, canon)
		}
	}
}

func TestClassIndexCanonicalByteRoundTrip(t *testing.T) {
	for c := 0; c < NumClasses; c++ {
		b, err := CanonicalByte(c)
		if err != nil {
			t.Fatalf("CanonicalByte(%d): %v", c, err)
		}
		if got := ClassIndex(b); got != c {
			t.Errorf("ClassIndex(CanonicalByte(%d)) = %d, want %d", c, got, c)
		}
	}
}

func TestTransformsAreInvolutionsOfTheirOrder(t *testing.T) {
	for c := 0; c < NumClasses; c++ {
		comp, err := DecodeClassIndex(c)
		if err != nil {
			t.Fatal(err)
		}
		r := comp
		for i := 0; i < 4; i++ {
			r = r.ApplyRotation(1)
		}
		if r != comp {
			t.Errorf("class %d: R^4 != identity, got %+v want %+v", c, r, comp)
		}

		d := comp
		for i := 0; i < 3; i++ {
			d = d.ApplyTriality(1)
		}
		if d != comp {
			t.Errorf("class %d: D^3 != identity, got %+v want %+v", c, d, comp)
		}

		tw := comp
		for i := 0; i < 8; i++ {
			tw = tw.ApplyTwist(1)
		}
		if tw != comp {
			t.Errorf("class %d: T^8 != identity, got %+v want %+v", c, tw, comp)
		}

		m := comp.ApplyMirror().ApplyMirror()
		if m != comp {
			t.Errorf("class %d: M^2 != identity, got %+v want %+v", c, m, comp)
		}
	}
}

func TestApplyDTransformNormalizesSignedK(t *testing.T) {
	for c := 0; c < NumClasses; c++ {
		comp, err := DecodeClassIndex(c)
		if err != nil {
			t.Fatal(err)
		}
		for _, k := range []int{-7, -3, -1, 0, 1, 3, 5, 11} {
			got := comp.ApplyTriality(k)
			want := comp.ApplyTriality(mod(k, 3))
			if got != want {
				t.Errorf("class %d k=%d: ApplyTriality(k)=%+v, ApplyTriality(k mod 3)=%+v", c, k, got, want)
			}
			back := got.ApplyTriality(-k)
			if back != comp {
				t.Errorf("class %d k=%d: ApplyTriality(k) then ApplyTriality(-k) = %+v, want %+v", c, k, back, comp)
			}
		}
	}
}

func TestTrialityOrbitsPartitionClasses(t *testing.T) {
	orbits := GetAllTrialityOrbits()
	if len(orbits) != 32 {
		t.Fatalf("len(orbits) = %d, want 32", len(orbits))
	}
	seen := make(map[int]bool, NumClasses)
	for _, o := range orbits {
		for _, c := range o.Classes {
			if seen[c] {
				t.Errorf("class %d appears in more than one orbit", c)
			}
			seen[c] = true
		}
	}
	if len(seen) != NumClasses {
		t.Fatalf("orbits cover %d classes, want %d", len(seen), NumClasses)
	}
}

func TestBeltRoundTrip(t *testing.T) {
	for page := 0; page < BeltPages; page++ {
		for b := 0; b < 256; b += 17 { // sample, full sweep is 12288 iterations
			addr, err := ComputeBeltAddress(page, uint8(b))
			if err != nil {
				t.Fatal(err)
			}
			back, err := DecodeBeltAddress(addr.Address)
			if err != nil {
				t.Fatal(err)
			}
			if back.Page != page || back.Byte != uint8(b) {
				t.Errorf("page=%d byte=%d: round trip gave page=%d byte=%d", page, b, back.Page, back.Byte)
			}
		}
	}
}

func TestRangeErrors(t *testing.T) {
	if _, err := DecodeClassIndex(96); !errors.Is(err, ErrClassRange) {
		t.Errorf("DecodeClassIndex(96) error = %v, want wrapping ErrClassRange", err)
	}
	if _, err := ComputeBeltAddress(48, 0); !errors.Is(err, ErrPageRange) {
		t.Errorf("ComputeBeltAddress(48,0) error = %v, want wrapping ErrPageRange", err)
	}
	if _, err := DecodeBeltAddress(12288); !errors.Is(err, ErrAddressRange) {
		t.Errorf("DecodeBeltAddress(12288) error = %v, want wrapping ErrAddressRange", err)
	}
}

func TestEquivalenceClassSizes(t *testing.T) {
	for c := 0; c < NumClasses; c++ {
		bytes, err := EquivalenceClass(c)
		if err != nil {
			t.Fatal(err)
		}
		if len(bytes) != 2 && len(bytes) != 4 {
			t.Errorf("class %d has %d preimages, want 2 or 4", c, len(bytes))
		}
		for _, b := range bytes {
			if ClassIndex(b) != c {
				t.Errorf("class %d: preimage byte %d decodes to class %d", c, b, ClassIndex(b))
			}
		}
	}
}
