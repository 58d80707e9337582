// Copyright ©2026 The Sigmatics Kernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zmod

import "testing"

func TestZ4GroupLaws(t *testing.T) {
	r := GeneratorZ4()
	if !EqualZ4(MulZ4(r, MulZ4(r, MulZ4(r, r))), IdentityZ4()) {
		t.Errorf("r^4 should equal identity")
	}
	for k := 0; k < 4; k++ {
		got := PowerZ4(k)
		want := IdentityZ4()
		for i := 0; i < k; i++ {
			want = MulZ4(want, r)
		}
		if !EqualZ4(got, want) {
			t.Errorf("PowerZ4(%d) = %v, want %v", k, got, want)
		}
	}
}

func TestZ4ExtractPower(t *testing.T) {
	tests := []struct {
		a     Z4
		k     int
		wantK bool
	}{
		{IdentityZ4(), 0, true},
		{GeneratorZ4(), 1, true},
		{PowerZ4(3), 3, true},
		{Z4{1, 1, 0, 0}, 0, false},
		{Z4{0, 0, 0, 0}, 0, false},
	}
	for _, tc := range tests {
		k, ok := ExtractPowerZ4(tc.a)
		if ok != tc.wantK {
			t.Errorf("ExtractPowerZ4(%v) ok = %v, want %v", tc.a, ok, tc.wantK)
			continue
		}
		if ok && k != tc.k {
			t.Errorf("ExtractPowerZ4(%v) = %d, want %d", tc.a, k, tc.k)
		}
	}
}

func TestZ4InvertGeneratorFastPath(t *testing.T) {
	r := GeneratorZ4()
	inv, err := InvertZ4(r)
	if err != nil {
		t.Fatalf("InvertZ4(r): %v", err)
	}
	if !EqualZ4(MulZ4(r, inv), IdentityZ4()) {
		t.Errorf("r * r^-1 = %v, want identity", MulZ4(r, inv))
	}
}

func TestZ4InvertGeneralElement(t *testing.T) {
	a := Z4{2, 1, 0, 0} // 2 + r, invertible
	inv, err := InvertZ4(a)
	if err != nil {
		t.Fatalf("InvertZ4(%v): %v", a, err)
	}
	if got := MulZ4(a, inv); !EqualZ4(got, IdentityZ4()) {
		t.Errorf("a * a^-1 = %v, want identity", got)
	}
}

func TestZ4InvertSingular(t *testing.T) {
	// 1 + r^2 has a zero eigenvalue under the Z4 character decomposition.
	a := Z4{1, 0, 1, 0}
	if _, err := InvertZ4(a); err != ErrSingular {
		t.Errorf("InvertZ4(%v) err = %v, want ErrSingular", a, err)
	}
}

func TestZ3GroupLaws(t *testing.T) {
	tau := GeneratorZ3()
	if !EqualZ3(MulZ3(tau, MulZ3(tau, tau)), IdentityZ3()) {
		t.Errorf("tau^3 should equal identity")
	}
}

func TestZ3ExtractPower(t *testing.T) {
	k, ok := ExtractPowerZ3(PowerZ3(2))
	if !ok || k != 2 {
		t.Errorf("ExtractPowerZ3(tau^2) = (%d,%v), want (2,true)", k, ok)
	}
	if _, ok := ExtractPowerZ3(Z3{1, 1, 1}); ok {
		t.Errorf("ExtractPowerZ3 should reject 1+tau+tau^2")
	}
}

func TestZ3InvertGeneralElement(t *testing.T) {
	a := Z3{2, 1, 0} // 2 + tau, invertible
	inv, err := InvertZ3(a)
	if err != nil {
		t.Fatalf("InvertZ3(%v): %v", a, err)
	}
	if got := MulZ3(a, inv); !EqualZ3(got, IdentityZ3()) {
		t.Errorf("a * a^-1 = %v, want identity", got)
	}
}

func TestZ3InvertSingular(t *testing.T) {
	// 1 + tau + tau^2 is the group-sum element, annihilated by (1-tau).
	a := Z3{1, 1, 1}
	if _, err := InvertZ3(a); err != ErrSingular {
		t.Errorf("InvertZ3(%v) err = %v, want ErrSingular", a, err)
	}
}
