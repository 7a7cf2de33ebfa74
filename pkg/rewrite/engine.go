// Copyright 2026 The ltlequiv Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package rewrite implements the equivalence catalogue (C4) and the
// breadth-first closure engine (C5) that discovers formulae equivalent to
// a starting formula under a complexity cap.
package rewrite

import (
	"context"

	"github.com/corvidlogic/ltlequiv/pkg/formula"
)

// expand performs one positional single-step expansion of f: every rule in
// Catalogue applied at the top of f, plus recursive expansion of f's
// children re-wrapped in f's own variant. depth counts down from maxDepth;
// expansion stops recursing into children once it reaches zero.
func expand(f formula.Formula, depth int) []formula.Formula {
	results := []formula.Formula{f}

	for _, r := range Catalogue {
		g := r.fn(f)
		if g.String() != f.String() {
			results = append(results, g)
		}
	}

	if depth <= 0 {
		return results
	}

	switch v := f.(type) {
	case formula.Unary:
		for _, s := range expand(v.Child(), depth-1) {
			results = append(results, v.WithChild(s))
		}
	case formula.Binary:
		left := expand(v.Left(), depth-1)
		right := expand(v.Right(), depth-1)
		for _, li := range left {
			for _, rj := range right {
				results = append(results, v.WithChildren(li, rj))
			}
		}
	}

	return results
}

// Close runs the breadth-first closure (level B of C5) over f0: it
// repeatedly expands frontier formulae, keeping only those whose canonical
// string has not been seen and whose complexity is within base*factor of
// f0's own complexity, until the queue is exhausted or ctx is cancelled.
//
// The returned slice is in discovery order; its first element is always
// f0. seen is used only for membership tests, never iterated, so its
// internal order can never leak into the result order.
func Close(ctx context.Context, f0 formula.Formula, depth int, factor float64) ([]formula.Formula, error) {
	base := float64(formula.Complexity(f0))
	cap := base * factor

	seen := map[string]struct{}{f0.String(): {}}
	queue := []formula.Formula{f0}
	results := []formula.Formula{f0}

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		h := queue[0]
		queue = queue[1:]

		for _, n := range expand(h, depth) {
			key := n.String()
			if _, ok := seen[key]; ok {
				continue
			}
			if float64(formula.Complexity(n)) > cap {
				continue
			}
			seen[key] = struct{}{}
			results = append(results, n)
			queue = append(queue, n)
		}
	}

	return results, nil
}
