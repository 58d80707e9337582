// Copyright ©2026 The Sigmatics Kernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eval

import (
	"fmt"

	"github.com/sigmatics/kernel/class"
	"github.com/sigmatics/kernel/parse"
)

// Operational runs the operational word backend over node, per spec §4.4.
func Operational(node parse.Node) ([]string, error) {
	return operationalWalk(node, class.Transform{})
}

func operationalWalk(node parse.Node, outer class.Transform) ([]string, error) {
	switch n := node.(type) {
	case *parse.Operation:
		comp, err := effectiveComponents(n.Sigil, outer)
		if err != nil {
			return nil, err
		}
		return generatorWords(n.Generator, comp), nil

	case *parse.Sequential:
		// Right-to-left: the rightmost term's words appear first.
		var words []string
		for i := len(n.Terms) - 1; i >= 0; i-- {
			w, err := operationalWalk(n.Terms[i], outer)
			if err != nil {
				return nil, err
			}
			words = append(words, w...)
		}
		return words, nil

	case *parse.Parallel:
		branchWords := make([][]string, len(n.Branches))
		for i, branch := range n.Branches {
			w, err := operationalWalk(branch, outer)
			if err != nil {
				return nil, err
			}
			branchWords[i] = w
		}
		if len(branchWords) < 2 {
			if len(branchWords) == 0 {
				return nil, nil
			}
			return branchWords[0], nil
		}
		var words []string
		words = append(words, "⊗_begin")
		for i, bw := range branchWords {
			if i > 0 {
				words = append(words, "⊗_sep")
			}
			words = append(words, bw...)
		}
		words = append(words, "⊗_end")
		return words, nil

	case *parse.Transformed:
		entry, exit := transformWords(n.Transform)
		next := outer.Compose(n.Transform)
		body, err := operationalWalk(n.Body, next)
		if err != nil {
			return nil, err
		}
		var words []string
		words = append(words, entry...)
		words = append(words, body...)
		words = append(words, exit...)
		return words, nil

	case *parse.Group:
		return operationalWalk(n.Body, outer)

	default:
		panic("eval: unknown AST node type")
	}
}

func generatorWords(generator string, comp class.Components) []string {
	switch generator {
	case "mark":
		return []string{"mark"}
	case "copy":
		return []string{fmt.Sprintf("copy[d=%d]", comp.D)}
	case "swap":
		return []string{"swap"}
	case "merge":
		return []string{fmt.Sprintf("merge[d=%d]", comp.D)}
	case "split":
		return []string{fmt.Sprintf("split[ℓ=%d]", comp.L)}
	case "quote":
		return []string{fmt.Sprintf("quote[ℓ=%d]", comp.L)}
	case "evaluate":
		return []string{fmt.Sprintf("phase[h₂=%d]", comp.H2), "evaluate"}
	default:
		panic("eval: unknown generator " + generator)
	}
}

// transformWords renders the entry/exit word pairs for a Transformed
// node's own (R,D,T,M), in R, D, T, M order, only for non-zero components.
func transformWords(t class.Transform) (entry, exit []string) {
	if t.R != 0 {
		entry = append(entry, fmt.Sprintf("→ρ[%d]", t.R))
		exit = append(exit, fmt.Sprintf("←ρ[%d]", t.R))
	}
	if t.D != 0 {
		d := ((t.D % 3) + 3) % 3
		entry = append(entry, fmt.Sprintf("→δ[%d]", d))
		exit = append(exit, fmt.Sprintf("←δ[%d]", d))
	}
	if t.T != 0 {
		entry = append(entry, fmt.Sprintf("→τ[%d]", t.T))
		exit = append(exit, fmt.Sprintf("←τ[%d]", t.T))
	}
	if t.M {
		entry = append(entry, "→μ")
		exit = append(exit, "←μ")
	}
	return entry, exit
}
