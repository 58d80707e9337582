// Copyright ©2026 The Sigmatics Kernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package class

import "fmt"

// TrialityOrbit is the 3-element set of classes sharing (h2, l) with d
// ranging over {0,1,2}, per spec §4.1.
type TrialityOrbit struct {
	H2, L   int
	Classes [3]int
}

// GetTrialityOrbit returns the orbit containing class c.
func GetTrialityOrbit(c int) (TrialityOrbit, error) {
	comp, err := DecodeClassIndex(c)
	if err != nil {
		return TrialityOrbit{}, err
	}
	return trialityOrbit(comp.H2, comp.L), nil
}

func trialityOrbit(h2, l int) TrialityOrbit {
	return TrialityOrbit{
		H2: h2,
		L:  l,
		Classes: [3]int{
			24*h2 + 8*0 + l,
			24*h2 + 8*1 + l,
			24*h2 + 8*2 + l,
		},
	}
}

// GetAllTrialityOrbits returns all 32 triality orbits, covering the 96
// classes with no overlap.
func GetAllTrialityOrbits() []TrialityOrbit {
	orbits := make([]TrialityOrbit, 0, 32)
	for h2 := 0; h2 < 4; h2++ {
		for l := 0; l < 8; l++ {
			orbits = append(orbits, trialityOrbit(h2, l))
		}
	}
	return orbits
}

// String renders a human-readable summary of the orbit, e.g. "h2=1,l=3: [27 35 43]".
func (o TrialityOrbit) String() string {
	return fmt.Sprintf("h2=%d,l=%d: %v", o.H2, o.L, o.Classes)
}
