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

package alphabet

import (
	"testing"

	"github.com/corvidlogic/ltlequiv/pkg/formula"
)

func v(name string) formula.Variable { return formula.Variable{Name: name} }

func TestAllowed(t *testing.T) {
	tests := []struct {
		name string
		f    formula.Formula
		s    Set
		want bool
	}{
		{"variable always allowed", v("a"), NewSet(), true},
		{"truth requires 1", formula.Truth{}, NewSet("1"), true},
		{"truth missing 1", formula.Truth{}, NewSet(), false},
		{"not requires bang", formula.Not{Operand: v("a")}, NewSet("!"), true},
		{"not missing bang", formula.Not{Operand: v("a")}, NewSet(), false},
		{
			"and requires both token and children",
			formula.And{L: v("a"), R: formula.Not{Operand: v("b")}},
			NewSet("&", "!"),
			true,
		},
		{
			"and with disallowed child",
			formula.And{L: v("a"), R: formula.Not{Operand: v("b")}},
			NewSet("&"),
			false,
		},
		{
			"until requires U recursively",
			formula.Until{L: v("a"), R: formula.Next{Operand: v("b")}},
			NewSet("U", "X"),
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Allowed(tt.f, tt.s); got != tt.want {
				t.Errorf("Allowed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	in := []formula.Formula{
		v("a"),
		formula.Not{Operand: v("b")},
		formula.Truth{},
		formula.And{L: v("a"), R: v("b")},
	}
	s := NewSet("!")
	got := Filter(in, s)
	want := []string{"a", "!b"}
	if len(got) != len(want) {
		t.Fatalf("Filter returned %d results, want %d", len(got), len(want))
	}
	for i, f := range got {
		if f.String() != want[i] {
			t.Errorf("Filter()[%d] = %q, want %q", i, f.String(), want[i])
		}
	}
}
