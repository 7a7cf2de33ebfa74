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

// witnesses maps each operator to the minimal operator sets sufficient to
// express it. A witness is satisfied if it is a subset of the reachable
// set. The table is a contract: every entry below is load-bearing and
// must not be simplified or merged.
var witnesses = map[string][]Set{
	"!": {
		NewSet("!"),
	},
	"&": {
		NewSet("&"),
		NewSet("!", "|"),
		NewSet("!", "->"),
	},
	"|": {
		NewSet("|"),
		NewSet("!", "&"),
		NewSet("!", "->"),
	},
	"->": {
		NewSet("->"),
		NewSet("!", "|"),
		NewSet("!", "&"),
	},
	"<->": {
		NewSet("<->"),
		NewSet("!", "&"),
		NewSet("!", "|"),
		NewSet("!", "->"),
		NewSet("&", "->"),
	},
	"X": {
		NewSet("X"),
	},
	"F": {
		NewSet("F"),
		NewSet("U"),
		NewSet("G", "!"),
	},
	"G": {
		NewSet("G"),
		NewSet("F", "!"),
		NewSet("U", "!"),
	},
	"U": {
		NewSet("U"),
	},
	"R": {
		NewSet("R"),
		NewSet("U", "!"),
		NewSet("F", "G"),
		NewSet("U", "G"),
		NewSet("F", "!"),
	},
	"1": {
		NewSet("1"),
		NewSet("0", "!"),
		NewSet("->"),
		NewSet("!", "&"),
		NewSet("!", "|"),
	},
	"0": {
		NewSet("0"),
		NewSet("1", "!"),
		NewSet("!", "->"),
		NewSet("!", "&"),
		NewSet("!", "|"),
	},
}

// operatorOrder is the canonical iteration/report order for reachability
// output, independent of Go's randomized map iteration.
var operatorOrder = []string{"!", "&", "|", "->", "<->", "X", "F", "G", "U", "R", "1", "0"}

func subsetOf(witness, reachable Set) bool {
	for tok := range witness {
		if !reachable.has(tok) {
			return false
		}
	}
	return true
}

// Check computes the fixpoint closure of s under the witness table and
// returns the operators that remain unreachable, in operatorOrder.
func Check(s Set) (unreachable []string) {
	reachable := make(Set, len(s))
	for tok := range s {
		reachable[tok] = struct{}{}
	}

	for {
		added := false
		for _, op := range operatorOrder {
			if reachable.has(op) {
				continue
			}
			for _, w := range witnesses[op] {
				if subsetOf(w, reachable) {
					reachable[op] = struct{}{}
					added = true
					break
				}
			}
		}
		if !added {
			break
		}
	}

	for _, op := range operatorOrder {
		if !reachable.has(op) {
			unreachable = append(unreachable, op)
		}
	}
	return unreachable
}
