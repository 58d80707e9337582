// Copyright ©2026 The Sigmatics Kernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bridge

import (
	"testing"

	"github.com/sigmatics/kernel/alg/sga"
)

func TestLiftProjectRoundTrip(t *testing.T) {
	for c := 0; c < 96; c++ {
		e, err := Lift(c)
		if err != nil {
			t.Fatalf("Lift(%d): %v", c, err)
		}
		got, ok := Project(e)
		if !ok {
			t.Fatalf("Project(Lift(%d)) failed to project", c)
		}
		if got != c {
			t.Errorf("Project(Lift(%d)) = %d, want %d", c, got, c)
		}
	}
}

func TestLiftRejectsOutOfRange(t *testing.T) {
	if _, err := Lift(96); err == nil {
		t.Error("Lift(96) should fail")
	}
	if _, err := Lift(-1); err == nil {
		t.Error("Lift(-1) should fail")
	}
}

func TestProjectStrictFailsOnNonRank1(t *testing.T) {
	a, err := Lift(0)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Lift(1)
	if err != nil {
		t.Fatal(err)
	}
	sum := sga.Add(a, b)
	if _, err := ProjectStrict(sum); err != ErrProjectFailed {
		t.Errorf("ProjectStrict(non-rank-1 sum) err = %v, want ErrProjectFailed", err)
	}
}

func TestValidateAllPass(t *testing.T) {
	report := Validate()
	if report.Total != 1344 {
		t.Fatalf("report.Total = %d, want 1344", report.Total)
	}
	if report.Passed != report.Total {
		t.Errorf("report.Passed = %d, want %d (%d failures: %+v)",
			report.Passed, report.Total, len(report.Failures), firstFew(report.Failures, 5))
	}
}

func TestValidateRAlone(t *testing.T) {
	report := ValidateR()
	if report.Total != 288 {
		t.Fatalf("ValidateR total = %d, want 288", report.Total)
	}
	if report.Passed != report.Total {
		t.Errorf("ValidateR passed = %d/%d, failures: %+v", report.Passed, report.Total, firstFew(report.Failures, 5))
	}
}

func TestValidateDAlone(t *testing.T) {
	report := ValidateD()
	if report.Total != 192 {
		t.Fatalf("ValidateD total = %d, want 192", report.Total)
	}
	if report.Passed != report.Total {
		t.Errorf("ValidateD passed = %d/%d, failures: %+v", report.Passed, report.Total, firstFew(report.Failures, 5))
	}
}

func TestValidateTAlone(t *testing.T) {
	report := ValidateT()
	if report.Total != 672 {
		t.Fatalf("ValidateT total = %d, want 672", report.Total)
	}
	if report.Passed != report.Total {
		t.Errorf("ValidateT passed = %d/%d, failures: %+v", report.Passed, report.Total, firstFew(report.Failures, 5))
	}
}

func TestValidateMAlone(t *testing.T) {
	report := ValidateM()
	if report.Total != 96 {
		t.Fatalf("ValidateM total = %d, want 96", report.Total)
	}
	if report.Passed != report.Total {
		t.Errorf("ValidateM passed = %d/%d, failures: %+v", report.Passed, report.Total, firstFew(report.Failures, 5))
	}
}

func firstFew(results []CheckResult, n int) []CheckResult {
	if len(results) <= n {
		return results
	}
	return results[:n]
}
