// Copyright ©2026 The Sigmatics Kernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bridge connects the 96-class permutation view (package class) to
// the SGA algebraic view (package sga) with a lift/project pair, and
// exhaustively validates that the two views commute under every transform
// (spec §4.9).
package bridge

import (
	"errors"
	"fmt"

	"github.com/sigmatics/kernel/alg/clifford"
	"github.com/sigmatics/kernel/alg/sga"
	"github.com/sigmatics/kernel/alg/zmod"
	"github.com/sigmatics/kernel/class"
)

// ErrProjectFailed is returned by ProjectStrict when its input is not
// rank-1 and therefore has no class representative.
var ErrProjectFailed = errors.New("bridge: element does not project to a class")

// Lift embeds class c into its rank-1 SGA basis element
// r^h ⊗ e_ℓ ⊗ τ^d, where (h,d,ℓ) are c's components.
func Lift(c int) (sga.Element, error) {
	comp, err := class.DecodeClassIndex(c)
	if err != nil {
		return sga.Element{}, err
	}
	return sga.Rank1(comp.H2, comp.D, comp.L)
}

// Project returns the unique class index of e and true if e is rank-1, or
// (0, false) otherwise.
func Project(e sga.Element) (int, bool) {
	l, okC := clifford.RankOneIndex(e.Clifford)
	h, okZ4 := zmod.ExtractPowerZ4(e.Z4)
	d, okZ3 := zmod.ExtractPowerZ3(e.Z3)
	if !okC || !okZ4 || !okZ3 {
		return 0, false
	}
	idx, err := class.ComponentsToClassIndex(class.Components{H2: h, D: d, L: l})
	if err != nil {
		return 0, false
	}
	return idx, true
}

// ProjectStrict is Project, raising ErrProjectFailed instead of returning
// ok=false.
func ProjectStrict(e sga.Element) (int, error) {
	idx, ok := Project(e)
	if !ok {
		return 0, ErrProjectFailed
	}
	return idx, nil
}

// CheckResult records one commutative-diagram check: does
// project(g_alg(lift(c))) equal the component-level g_perm(c)?
type CheckResult struct {
	Transform string
	Power     int
	Class     int
	Expected  int
	Actual    int
	Err       error
	Pass      bool
}

// Report summarizes a full validator sweep.
type Report struct {
	Total    int
	Passed   int
	Failures []CheckResult
}

func (r Report) String() string {
	return fmt.Sprintf("%d/%d passed (%d failures)", r.Passed, r.Total, len(r.Failures))
}

func record(results *[]CheckResult, total, passed *int, name string, k, c, expected, actual int, err error) {
	*total++
	pass := err == nil && expected == actual
	if pass {
		*passed++
	}
	*results = append(*results, CheckResult{
		Transform: name, Power: k, Class: c,
		Expected: expected, Actual: actual, Err: err, Pass: pass,
	})
}

func checksToReport(results []CheckResult, total, passed int) Report {
	var failures []CheckResult
	for _, r := range results {
		if !r.Pass {
			failures = append(failures, r)
		}
	}
	return Report{Total: total, Passed: passed, Failures: failures}
}

// ValidateR checks R^k(lift(c)) against applyRotation for k in [1,3] and
// every class, 288 checks.
func ValidateR() Report {
	var results []CheckResult
	var total, passed int
	for k := 1; k <= 3; k++ {
		for c := 0; c < 96; c++ {
			comp, err := class.DecodeClassIndex(c)
			if err != nil {
				record(&results, &total, &passed, "R", k, c, -1, -1, err)
				continue
			}
			wantComp := comp.ApplyRotation(k)
			want, err := class.ComponentsToClassIndex(wantComp)
			if err != nil {
				record(&results, &total, &passed, "R", k, c, -1, -1, err)
				continue
			}
			elem, err := Lift(c)
			if err != nil {
				record(&results, &total, &passed, "R", k, c, want, -1, err)
				continue
			}
			got, ok := Project(sga.R(elem, k))
			if !ok {
				record(&results, &total, &passed, "R", k, c, want, -1, errors.New("project failed"))
				continue
			}
			record(&results, &total, &passed, "R", k, c, want, got, nil)
		}
	}
	return checksToReport(results, total, passed)
}

// ValidateD checks D^k(lift(c)) against applyTriality for k in [1,2] and
// every class, 192 checks.
func ValidateD() Report {
	var results []CheckResult
	var total, passed int
	for k := 1; k <= 2; k++ {
		for c := 0; c < 96; c++ {
			comp, err := class.DecodeClassIndex(c)
			if err != nil {
				record(&results, &total, &passed, "D", k, c, -1, -1, err)
				continue
			}
			wantComp := comp.ApplyTriality(k)
			want, err := class.ComponentsToClassIndex(wantComp)
			if err != nil {
				record(&results, &total, &passed, "D", k, c, -1, -1, err)
				continue
			}
			elem, err := Lift(c)
			if err != nil {
				record(&results, &total, &passed, "D", k, c, want, -1, err)
				continue
			}
			got, ok := Project(sga.D(elem, k))
			if !ok {
				record(&results, &total, &passed, "D", k, c, want, -1, errors.New("project failed"))
				continue
			}
			record(&results, &total, &passed, "D", k, c, want, got, nil)
		}
	}
	return checksToReport(results, total, passed)
}

// ValidateT checks T^k(lift(c)) against applyTwist for k in [1,7] and
// every class, 672 checks.
func ValidateT() Report {
	var results []CheckResult
	var total, passed int
	for k := 1; k <= 7; k++ {
		for c := 0; c < 96; c++ {
			comp, err := class.DecodeClassIndex(c)
			if err != nil {
				record(&results, &total, &passed, "T", k, c, -1, -1, err)
				continue
			}
			wantComp := comp.ApplyTwist(k)
			want, err := class.ComponentsToClassIndex(wantComp)
			if err != nil {
				record(&results, &total, &passed, "T", k, c, -1, -1, err)
				continue
			}
			elem, err := Lift(c)
			if err != nil {
				record(&results, &total, &passed, "T", k, c, want, -1, err)
				continue
			}
			transformed, err := sga.T(elem, k)
			if err != nil {
				record(&results, &total, &passed, "T", k, c, want, -1, err)
				continue
			}
			got, ok := Project(transformed)
			if !ok {
				record(&results, &total, &passed, "T", k, c, want, -1, errors.New("project failed"))
				continue
			}
			record(&results, &total, &passed, "T", k, c, want, got, nil)
		}
	}
	return checksToReport(results, total, passed)
}

// ValidateM checks M(lift(c)) against applyMirror for every class, 96
// checks.
func ValidateM() Report {
	var results []CheckResult
	var total, passed int
	for c := 0; c < 96; c++ {
		comp, err := class.DecodeClassIndex(c)
		if err != nil {
			record(&results, &total, &passed, "M", 0, c, -1, -1, err)
			continue
		}
		wantComp := comp.ApplyMirror()
		want, err := class.ComponentsToClassIndex(wantComp)
		if err != nil {
			record(&results, &total, &passed, "M", 0, c, -1, -1, err)
			continue
		}
		elem, err := Lift(c)
		if err != nil {
			record(&results, &total, &passed, "M", 0, c, want, -1, err)
			continue
		}
		transformed, err := sga.M(elem)
		if err != nil {
			record(&results, &total, &passed, "M", 0, c, want, -1, err)
			continue
		}
		got, ok := Project(transformed)
		if !ok {
			record(&results, &total, &passed, "M", 0, c, want, -1, errors.New("project failed"))
			continue
		}
		record(&results, &total, &passed, "M", 0, c, want, got, nil)
	}
	return checksToReport(results, total, passed)
}

// validateRoundTrip checks project(lift(c)) == c for every class, the
// 96 lift/project round-trip checks.
func validateRoundTrip() Report {
	var results []CheckResult
	var total, passed int
	for c := 0; c < 96; c++ {
		elem, err := Lift(c)
		if err != nil {
			record(&results, &total, &passed, "lift/project", 0, c, c, -1, err)
			continue
		}
		got, ok := Project(elem)
		if !ok {
			record(&results, &total, &passed, "lift/project", 0, c, c, -1, errors.New("project failed"))
			continue
		}
		record(&results, &total, &passed, "lift/project", 0, c, c, got, nil)
	}
	return checksToReport(results, total, passed)
}

// Validate runs the full 1,344-check sweep: 96 lift/project round-trips
// plus 288 R, 192 D, 672 T, and 96 M commutative-diagram checks.
func Validate() Report {
	reports := []Report{validateRoundTrip(), ValidateR(), ValidateD(), ValidateT(), ValidateM()}
	var total, passed int
	var failures []CheckResult
	for _, r := range reports {
		total += r.Total
		passed += r.Passed
		failures = append(failures, r.Failures...)
	}
	return Report{Total: total, Passed: passed, Failures: failures}
}
