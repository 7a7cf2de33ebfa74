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

package formula

import "testing"

func v(name string) Variable { return Variable{Name: name} }

func TestString(t *testing.T) {
	tests := []struct {
		name string
		f    Formula
		want string
	}{
		{"variable", v("a"), "a"},
		{"truth", Truth{}, "1"},
		{"falsity", Falsity{}, "0"},
		{"not", Not{Operand: v("a")}, "!a"},
		{"double not", Not{Operand: Not{Operand: v("a")}}, "!!a"},
		{"and top level", And{L: v("a"), R: v("b")}, "(a & b)"},
		{"or top level", Or{L: v("a"), R: v("b")}, "(a | b)"},
		{"and under and stays flat", And{L: v("a"), R: And{L: v("b"), R: v("c")}}, "(a & b & c)"},
		{"or under or stays flat", Or{L: v("a"), R: Or{L: v("b"), R: v("c")}}, "(a | b | c)"},
		{"and under or parenthesized", Or{L: And{L: v("a"), R: v("b")}, R: v("c")}, "((a & b) | c)"},
		{"or under and parenthesized", And{L: Or{L: v("a"), R: v("b")}, R: v("c")}, "((a | b) & c)"},
		{"and under not parenthesized", Not{Operand: And{L: v("a"), R: v("b")}}, "!(a & b)"},
		{"or under not parenthesized", Not{Operand: Or{L: v("a"), R: v("b")}}, "!(a | b)"},
		{"implication always parens", Implication{L: v("a"), R: v("b")}, "(a -> b)"},
		{"biconditional always parens", Biconditional{L: v("a"), R: v("b")}, "(a <-> b)"},
		{"until always parens", Until{L: v("a"), R: v("b")}, "(a U b)"},
		{"release always parens", Release{L: v("a"), R: v("b")}, "(a R b)"},
		{"next", Next{Operand: v("a")}, "X a"},
		{"finally", Finally{Operand: v("a")}, "F a"},
		{"globally", Globally{Operand: v("a")}, "G a"},
		{"next of and prints child at top level", Next{Operand: And{L: v("a"), R: v("b")}}, "X (a & b)"},
		{"and child of implication not parenthesized by and's own rule", Implication{L: And{L: v("a"), R: v("b")}, R: v("c")}, "(a & b -> c)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Formula
		want bool
	}{
		{"same variable", v("a"), v("a"), true},
		{"different variable name", v("a"), v("b"), false},
		{"different variant", v("a"), Truth{}, false},
		{"truth equal", Truth{}, Truth{}, true},
		{"and structurally equal", And{L: v("a"), R: v("b")}, And{L: v("a"), R: v("b")}, true},
		{"and not commutative for equality", And{L: v("a"), R: v("b")}, And{L: v("b"), R: v("a")}, false},
		{"nested equal", Until{L: v("a"), R: Next{Operand: v("b")}}, Until{L: v("a"), R: Next{Operand: v("b")}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComplexity(t *testing.T) {
	tests := []struct {
		name string
		f    Formula
		want int
	}{
		{"variable", v("a"), 1},
		{"truth", Truth{}, 1},
		{"not", Not{Operand: v("a")}, 2},
		{"and", And{L: v("a"), R: v("b")}, 3},
		{"nested", And{L: v("a"), R: Or{L: v("b"), R: v("c")}}, 5},
		{"until of next", Until{L: Next{Operand: v("a")}, R: v("b")}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Complexity(tt.f); got != tt.want {
				t.Errorf("Complexity() = %d, want %d", got, tt.want)
			}
		})
	}
}
