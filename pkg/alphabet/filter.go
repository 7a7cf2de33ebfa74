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

// Package alphabet implements the operator-alphabet membership predicate
// (C6) and the operator reachability fixpoint (C7).
package alphabet

import (
	"github.com/samber/lo"

	"github.com/corvidlogic/ltlequiv/pkg/formula"
)

// Set is a permitted operator alphabet, using the token spellings from the
// surface syntax: "!", "&", "|", "->", "<->", "X", "F", "G", "U", "R",
// "1", "0".
type Set map[string]struct{}

// NewSet builds a Set from a list of tokens.
func NewSet(tokens ...string) Set {
	s := make(Set, len(tokens))
	for _, t := range tokens {
		s[t] = struct{}{}
	}
	return s
}

func (s Set) has(token string) bool {
	_, ok := s[token]
	return ok
}

// Allowed reports whether f uses only operators in s, recursively. A
// Variable is always allowed; constants and connectives require their
// token to be a member of s and all their children to be allowed.
func Allowed(f formula.Formula, s Set) bool {
	switch v := f.(type) {
	case formula.Variable:
		return true
	case formula.Truth:
		return s.has("1")
	case formula.Falsity:
		return s.has("0")
	case formula.Not:
		return s.has("!") && Allowed(v.Operand, s)
	case formula.And:
		return s.has("&") && Allowed(v.L, s) && Allowed(v.R, s)
	case formula.Or:
		return s.has("|") && Allowed(v.L, s) && Allowed(v.R, s)
	case formula.Implication:
		return s.has("->") && Allowed(v.L, s) && Allowed(v.R, s)
	case formula.Biconditional:
		return s.has("<->") && Allowed(v.L, s) && Allowed(v.R, s)
	case formula.Next:
		return s.has("X") && Allowed(v.Operand, s)
	case formula.Finally:
		return s.has("F") && Allowed(v.Operand, s)
	case formula.Globally:
		return s.has("G") && Allowed(v.Operand, s)
	case formula.Until:
		return s.has("U") && Allowed(v.L, s) && Allowed(v.R, s)
	case formula.Release:
		return s.has("R") && Allowed(v.L, s) && Allowed(v.R, s)
	default:
		return false
	}
}

// Filter restricts fs to the members allowed under s, preserving order.
func Filter(fs []formula.Formula, s Set) []formula.Formula {
	return lo.Filter(fs, func(f formula.Formula, _ int) bool {
		return Allowed(f, s)
	})
}
