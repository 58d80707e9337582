// Copyright ©2026 The Sigmatics Kernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package approx

import "testing"

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b float64
		want bool
	}{
		{1, 1, true},
		{1, 1 + Epsilon/2, true},
		{1, 1 + Epsilon*2, false},
		{0, -0, true},
	}
	for _, tc := range tests {
		if got := Equal(tc.a, tc.b); got != tc.want {
			t.Errorf("Equal(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestIsZero(t *testing.T) {
	if !IsZero(0) {
		t.Error("IsZero(0) should be true")
	}
	if !IsZero(Epsilon / 2) {
		t.Error("IsZero(Epsilon/2) should be true")
	}
	if IsZero(1) {
		t.Error("IsZero(1) should be false")
	}
}

func TestVectorEqual(t *testing.T) {
	if !VectorEqual([]float64{1, 2, 3}, []float64{1, 2, 3}) {
		t.Error("identical vectors should be equal")
	}
	if VectorEqual([]float64{1, 2}, []float64{1, 2, 3}) {
		t.Error("vectors of differing length should not be equal")
	}
	if VectorEqual([]float64{1, 2, 3}, []float64{1, 2, 3.1}) {
		t.Error("vectors differing beyond Epsilon should not be equal")
	}
}
