// Copyright ©2026 The Sigmatics Kernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eval

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sigmatics/kernel/parse"
)

func mustParse(t *testing.T, src string) parse.Node {
	t.Helper()
	node, err := parse.Parse(src)
	if err != nil {
		t.Fatalf("parse.Parse(%q): %v", src, err)
	}
	return node
}

func TestLiteralBackendScenarios(t *testing.T) {
	tests := []struct {
		src       string
		wantBytes []byte
		wantAddrs []uint16
		wantHas   bool
	}{
		{"mark@c21", []byte{0x2A}, nil, false},
		{"evaluate@c21 . copy@c05 || swap@c72", []byte{0x2A, 0x0A, 0xC0}, nil, false},
		{"R+1@ (copy@c05 . evaluate@c21)", []byte{0x4A, 0x6A}, nil, false},
		{"mark@c42^+3~@17", []byte{0x5A}, []uint16{4442}, true},
		{"T+4@mark@c00", []byte{0x08}, nil, false},
		{"~@mark@c13", []byte{0x2A}, nil, false},
		{"R+2 T+3@mark@c07", []byte{0x84}, nil, false},
		{"mark@c00 . mark@c05@3", []byte{0x00, 0x0A}, []uint16{0, 778}, true},
	}
	for _, tc := range tests {
		node := mustParse(t, tc.src)
		got, err := Literal(node)
		if err != nil {
			t.Fatalf("%q: Literal: %v", tc.src, err)
		}
		if diff := cmp.Diff(tc.wantBytes, got.Bytes); diff != "" {
			t.Errorf("%q: bytes mismatch (-want +got):\n%s", tc.src, diff)
		}
		if got.HasAddr != tc.wantHas {
			t.Errorf("%q: HasAddr = %v, want %v", tc.src, got.HasAddr, tc.wantHas)
		}
		if tc.wantHas {
			if diff := cmp.Diff(tc.wantAddrs, got.Addresses); diff != "" {
				t.Errorf("%q: addresses mismatch (-want +got):\n%s", tc.src, diff)
			}
		}
	}
}

func TestOperationalBackendScenarios(t *testing.T) {
	tests := []struct {
		src  string
		want []string
	}{
		{"copy@c05 . evaluate@c40", []string{"phase[h₂=1]", "evaluate", "copy[d=0]"}},
		{"R+1@mark@c00", []string{"→ρ[1]", "mark", "←ρ[1]"}},
		{"mark@c01 || mark@c02", []string{"⊗_begin", "mark", "⊗_sep", "mark", "⊗_end"}},
	}
	for _, tc := range tests {
		node := mustParse(t, tc.src)
		got, err := Operational(node)
		if err != nil {
			t.Fatalf("%q: Operational: %v", tc.src, err)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("%q: words mismatch (-want +got):\n%s", tc.src, diff)
		}
	}
}

func TestSingleBranchParallelIsTransparent(t *testing.T) {
	node := mustParse(t, "mark@c00")
	got, err := Operational(node)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"mark"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEvaluateBundlesBothBackends(t *testing.T) {
	node := mustParse(t, "mark@c21")
	res, err := Evaluate(node)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Literal.Bytes) != 1 || res.Literal.Bytes[0] != 0x2A {
		t.Errorf("Literal.Bytes = %v, want [0x2A]", res.Literal.Bytes)
	}
	if len(res.Operational) != 1 || res.Operational[0] != "mark" {
		t.Errorf("Operational = %v, want [mark]", res.Operational)
	}
}
