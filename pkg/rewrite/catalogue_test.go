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

package rewrite

import (
	"testing"

	"github.com/corvidlogic/ltlequiv/pkg/formula"
)

func v(name string) formula.Variable { return formula.Variable{Name: name} }

func TestCatalogueLength(t *testing.T) {
	const want = 86
	if got := len(Catalogue); got != want {
		t.Fatalf("len(Catalogue) = %d, want %d", got, want)
	}
}

func TestCatalogueNoDuplicateNames(t *testing.T) {
	seen := make(map[string]bool, len(Catalogue))
	for _, r := range Catalogue {
		if seen[r.name] {
			t.Errorf("duplicate rule name %q", r.name)
		}
		seen[r.name] = true
	}
}

func TestRules(t *testing.T) {
	tests := []struct {
		name  string
		rule  Rule
		input formula.Formula
		want  formula.Formula
	}{
		{
			"implication_to_disjunction matches",
			implicationToDisjunction,
			formula.Implication{L: v("a"), R: v("b")},
			formula.Or{L: formula.Not{Operand: v("a")}, R: v("b")},
		},
		{
			"implication_to_disjunction does not match",
			implicationToDisjunction,
			v("a"),
			v("a"),
		},
		{
			"biconditional_to_implications",
			biconditionalToImplications,
			formula.Biconditional{L: v("a"), R: v("b")},
			formula.And{
				L: formula.Implication{L: v("a"), R: v("b")},
				R: formula.Implication{L: v("b"), R: v("a")},
			},
		},
		{
			"double_negation",
			doubleNegation,
			formula.Not{Operand: formula.Not{Operand: v("a")}},
			v("a"),
		},
		{
			"de_morgan_not_and",
			deMorganNotAnd,
			formula.Not{Operand: formula.And{L: v("a"), R: v("b")}},
			formula.Or{L: formula.Not{Operand: v("a")}, R: formula.Not{Operand: v("b")}},
		},
		{
			"absorption_and matches",
			absorptionAnd,
			formula.And{L: v("a"), R: formula.Or{L: v("a"), R: v("b")}},
			v("a"),
		},
		{
			"absorption_and does not match different operands",
			absorptionAnd,
			formula.And{L: v("a"), R: formula.Or{L: v("c"), R: v("b")}},
			formula.And{L: v("a"), R: formula.Or{L: v("c"), R: v("b")}},
		},
		{
			"idempotence_and",
			idempotenceAnd,
			formula.And{L: v("a"), R: v("a")},
			v("a"),
		},
		{
			"and_truth left",
			andTruth,
			formula.And{L: formula.Truth{}, R: v("a")},
			v("a"),
		},
		{
			"or_falsity right",
			orFalsity,
			formula.Or{L: v("a"), R: formula.Falsity{}},
			v("a"),
		},
		{
			"law_of_excluded_middle",
			lawOfExcludedMiddle,
			formula.Or{L: v("a"), R: formula.Not{Operand: v("a")}},
			formula.Truth{},
		},
		{
			"non_contradiction_to_falsity",
			nonContradictionToFalsity,
			formula.And{L: v("a"), R: formula.Not{Operand: v("a")}},
			formula.Falsity{},
		},
		{
			"negate_until",
			negateUntil,
			formula.Not{Operand: formula.Until{L: v("a"), R: v("b")}},
			formula.Release{L: formula.Not{Operand: v("a")}, R: formula.Not{Operand: v("b")}},
		},
		{
			"negate_release",
			negateRelease,
			formula.Not{Operand: formula.Release{L: v("a"), R: v("b")}},
			formula.Until{L: formula.Not{Operand: v("a")}, R: formula.Not{Operand: v("b")}},
		},
		{
			"until_expansion",
			untilExpansion,
			formula.Until{L: v("a"), R: v("b")},
			formula.Or{
				L: v("b"),
				R: formula.And{L: v("a"), R: formula.Next{Operand: formula.Until{L: v("a"), R: v("b")}}},
			},
		},
		{
			"finally_to_until",
			finallyToUntil,
			formula.Finally{Operand: v("a")},
			formula.Until{L: formula.Truth{}, R: v("a")},
		},
		{
			"globally_to_release",
			globallyToRelease,
			formula.Globally{Operand: v("a")},
			formula.Release{L: formula.Falsity{}, R: v("a")},
		},
		{
			"reverse_double_negation on a leaf",
			reverseDoubleNegation,
			v("a"),
			formula.Not{Operand: formula.Not{Operand: v("a")}},
		},
		{
			"reverse_double_negation does not touch compound formulae",
			reverseDoubleNegation,
			formula.And{L: v("a"), R: v("b")},
			formula.And{L: v("a"), R: v("b")},
		},
		{
			"reverse_idempotence_and on a leaf",
			reverseIdempotenceAnd,
			v("a"),
			formula.And{L: v("a"), R: v("a")},
		},
		{
			"reverse_finally_to_until",
			reverseFinallyToUntil,
			formula.Until{L: formula.Truth{}, R: v("a")},
			formula.Finally{Operand: v("a")},
		},
		{
			"xor_equivalence",
			xorEquivalence,
			formula.Or{
				L: formula.And{L: v("a"), R: formula.Not{Operand: v("b")}},
				R: formula.And{L: formula.Not{Operand: v("a")}, R: v("b")},
			},
			formula.Not{Operand: formula.Biconditional{L: v("a"), R: v("b")}},
		},
		{
			"reverse_xor_equivalence",
			reverseXorEquivalence,
			formula.Not{Operand: formula.Biconditional{L: v("a"), R: v("b")}},
			formula.Or{
				L: formula.And{L: v("a"), R: formula.Not{Operand: v("b")}},
				R: formula.And{L: formula.Not{Operand: v("a")}, R: v("b")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rule(tt.input)
			if !got.Equal(tt.want) {
				t.Errorf("rule(%s) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}
