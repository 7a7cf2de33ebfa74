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

// Package parser turns surface syntax into a formula.Formula. The grammar is
// recursive-descent but implemented as a fixed-priority split scan: at each
// level it looks for the first occurrence, outside parentheses, of the
// lowest-priority operator still in play, and splits on that.
package parser

import (
	"strings"

	"github.com/corvidlogic/ltlequiv/pkg/formula"
)

// unaryPrefixes are tested, in order, before any binary split: X, F, G each
// bind their entire remainder.
var unaryPrefixes = []struct {
	prefix string
	build  func(formula.Formula) formula.Formula
}{
	{"X", func(f formula.Formula) formula.Formula { return formula.Next{Operand: f} }},
	{"F", func(f formula.Formula) formula.Formula { return formula.Finally{Operand: f} }},
	{"G", func(f formula.Formula) formula.Formula { return formula.Globally{Operand: f} }},
}

// binaryOperators are tested in order from lowest to highest priority; the
// first one found at nesting level 0 wins the split. Temporal U/R bind
// loosest, then <->, ->, &, |.
var binaryOperators = []struct {
	token string
	build func(l, r formula.Formula) formula.Formula
}{
	{"U", func(l, r formula.Formula) formula.Formula { return formula.Until{L: l, R: r} }},
	{"R", func(l, r formula.Formula) formula.Formula { return formula.Release{L: l, R: r} }},
	{"<->", func(l, r formula.Formula) formula.Formula { return formula.Biconditional{L: l, R: r} }},
	{"->", func(l, r formula.Formula) formula.Formula { return formula.Implication{L: l, R: r} }},
	{"&", func(l, r formula.Formula) formula.Formula { return formula.And{L: l, R: r} }},
	{"|", func(l, r formula.Formula) formula.Formula { return formula.Or{L: l, R: r} }},
}

// Parse parses expression into a Formula. It never fails: malformed input
// becomes a Variable containing the offending text (§4.1, §7 of the spec).
// Callers that need to reject reserved-token identifiers should check the
// result with formula validation before trusting it.
func Parse(expression string) formula.Formula {
	expression = strings.TrimSpace(expression)

	if stripped, ok := stripOuterParens(expression); ok {
		expression = stripped
	}

	for _, u := range unaryPrefixes {
		if strings.HasPrefix(expression, u.prefix) {
			return u.build(Parse(expression[len(u.prefix):]))
		}
	}

	for _, b := range binaryOperators {
		if left, right, ok := splitAtLevelZero(expression, b.token); ok {
			return b.build(Parse(left), Parse(right))
		}
	}

	if strings.HasPrefix(expression, "!") {
		return formula.Not{Operand: Parse(expression[1:])}
	}

	switch expression {
	case "1":
		return formula.Truth{}
	case "0":
		return formula.Falsity{}
	default:
		return formula.Variable{Name: expression}
	}
}

// stripOuterParens removes a single enclosing pair of parentheses from s, if
// s is fully wrapped by one (not merely starting with '(' and ending with
// ')' across two separate groups).
func stripOuterParens(s string) (string, bool) {
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return s, false
	}
	level := 0
	for i, r := range s {
		switch r {
		case '(':
			level++
		case ')':
			level--
			if level == 0 && i != len(s)-1 {
				// The opening paren closes before the end of the string:
				// this is "(a)(b)", not a single enclosing group.
				return s, false
			}
		}
	}
	return strings.TrimSpace(s[1 : len(s)-1]), true
}

// splitAtLevelZero finds the first occurrence of op outside any
// parentheses, and splits s into the (trimmed) substrings to either side.
func splitAtLevelZero(s, op string) (left, right string, found bool) {
	level := 0
	for i := 0; i <= len(s)-len(op); i++ {
		switch s[i] {
		case '(':
			level++
			continue
		case ')':
			level--
			continue
		}
		if level == 0 && s[i:i+len(op)] == op {
			return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+len(op):]), true
		}
	}
	return "", "", false
}
