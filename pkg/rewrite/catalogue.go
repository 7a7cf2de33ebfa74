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

import "github.com/corvidlogic/ltlequiv/pkg/formula"

// Rule is a pure, total function from a Formula to a Formula. It either
// returns a syntactically different formula — the rewrite applied at the
// top of its input — or returns the input unchanged, meaning it did not
// match. Rules never recurse into subterms; positional application is the
// engine's job.
type Rule func(formula.Formula) formula.Formula

// namedRule pairs a Rule with its name, which tests use to check the
// catalogue for duplicate entries.
type namedRule struct {
	name string
	fn   Rule
}

func isCompound(f formula.Formula) bool {
	switch f.(type) {
	case formula.And, formula.Or, formula.Implication, formula.Biconditional,
		formula.Next, formula.Finally, formula.Globally, formula.Until, formula.Release:
		return true
	}
	return false
}

func implicationToDisjunction(f formula.Formula) formula.Formula {
	if i, ok := f.(formula.Implication); ok {
		return formula.Or{L: formula.Not{Operand: i.L}, R: i.R}
	}
	return f
}

func biconditionalToImplications(f formula.Formula) formula.Formula {
	if b, ok := f.(formula.Biconditional); ok {
		return formula.And{
			L: formula.Implication{L: b.L, R: b.R},
			R: formula.Implication{L: b.R, R: b.L},
		}
	}
	return f
}

func doubleNegation(f formula.Formula) formula.Formula {
	if n, ok := f.(formula.Not); ok {
		if n2, ok := n.Operand.(formula.Not); ok {
			return n2.Operand
		}
	}
	return f
}

func deMorganNotAnd(f formula.Formula) formula.Formula {
	if n, ok := f.(formula.Not); ok {
		if a, ok := n.Operand.(formula.And); ok {
			return formula.Or{L: formula.Not{Operand: a.L}, R: formula.Not{Operand: a.R}}
		}
	}
	return f
}

func deMorganNotOr(f formula.Formula) formula.Formula {
	if n, ok := f.(formula.Not); ok {
		if o, ok := n.Operand.(formula.Or); ok {
			return formula.And{L: formula.Not{Operand: o.L}, R: formula.Not{Operand: o.R}}
		}
	}
	return f
}

func distributiveLawAndOr(f formula.Formula) formula.Formula {
	if a, ok := f.(formula.And); ok {
		if o, ok := a.R.(formula.Or); ok {
			return formula.Or{
				L: formula.And{L: a.L, R: o.L},
				R: formula.And{L: a.L, R: o.R},
			}
		}
	}
	if o, ok := f.(formula.Or); ok {
		if a, ok := o.R.(formula.And); ok {
			return formula.And{
				L: formula.Or{L: o.L, R: a.L},
				R: formula.Or{L: o.L, R: a.R},
			}
		}
	}
	return f
}

func commutativityAnd(f formula.Formula) formula.Formula {
	if a, ok := f.(formula.And); ok {
		return formula.And{L: a.R, R: a.L}
	}
	return f
}

func commutativityOr(f formula.Formula) formula.Formula {
	if o, ok := f.(formula.Or); ok {
		return formula.Or{L: o.R, R: o.L}
	}
	return f
}

func associativityAnd(f formula.Formula) formula.Formula {
	if a, ok := f.(formula.And); ok {
		if a2, ok := a.R.(formula.And); ok {
			return formula.And{L: formula.And{L: a.L, R: a2.L}, R: a2.R}
		}
	}
	return f
}

func associativityOr(f formula.Formula) formula.Formula {
	if o, ok := f.(formula.Or); ok {
		if o2, ok := o.R.(formula.Or); ok {
			return formula.Or{L: formula.Or{L: o.L, R: o2.L}, R: o2.R}
		}
	}
	return f
}

func absorptionAnd(f formula.Formula) formula.Formula {
	if a, ok := f.(formula.And); ok {
		if o, ok := a.R.(formula.Or); ok {
			if a.L.Equal(o.L) {
				return a.L
			}
		}
	}
	return f
}

func absorptionOr(f formula.Formula) formula.Formula {
	if o, ok := f.(formula.Or); ok {
		if a, ok := o.R.(formula.And); ok {
			if o.L.Equal(a.L) {
				return o.L
			}
		}
	}
	return f
}

func idempotenceAnd(f formula.Formula) formula.Formula {
	if a, ok := f.(formula.And); ok && a.L.Equal(a.R) {
		return a.L
	}
	return f
}

func idempotenceOr(f formula.Formula) formula.Formula {
	if o, ok := f.(formula.Or); ok && o.L.Equal(o.R) {
		return o.L
	}
	return f
}

func andTruth(f formula.Formula) formula.Formula {
	if a, ok := f.(formula.And); ok {
		if _, ok := a.L.(formula.Truth); ok {
			return a.R
		}
		if _, ok := a.R.(formula.Truth); ok {
			return a.L
		}
	}
	return f
}

func orTruth(f formula.Formula) formula.Formula {
	if o, ok := f.(formula.Or); ok {
		_, lt := o.L.(formula.Truth)
		_, rt := o.R.(formula.Truth)
		if lt || rt {
			return formula.Truth{}
		}
	}
	return f
}

func andFalsity(f formula.Formula) formula.Formula {
	if a, ok := f.(formula.And); ok {
		_, lf := a.L.(formula.Falsity)
		_, rf := a.R.(formula.Falsity)
		if lf || rf {
			return formula.Falsity{}
		}
	}
	return f
}

func orFalsity(f formula.Formula) formula.Formula {
	if o, ok := f.(formula.Or); ok {
		if _, ok := o.L.(formula.Falsity); ok {
			return o.R
		}
		if _, ok := o.R.(formula.Falsity); ok {
			return o.L
		}
	}
	return f
}

func notTruth(f formula.Formula) formula.Formula {
	if n, ok := f.(formula.Not); ok {
		if _, ok := n.Operand.(formula.Truth); ok {
			return formula.Falsity{}
		}
	}
	return f
}

func notFalsity(f formula.Formula) formula.Formula {
	if n, ok := f.(formula.Not); ok {
		if _, ok := n.Operand.(formula.Falsity); ok {
			return formula.Truth{}
		}
	}
	return f
}

func lawOfExcludedMiddle(f formula.Formula) formula.Formula {
	o, ok := f.(formula.Or)
	if !ok {
		return f
	}
	left, right := o.L, o.R
	if lv, ok := left.(formula.Variable); ok {
		if rn, ok := right.(formula.Not); ok {
			if rv, ok := rn.Operand.(formula.Variable); ok && rv.Name == lv.Name {
				return formula.Truth{}
			}
		}
	}
	if rv, ok := right.(formula.Variable); ok {
		if ln, ok := left.(formula.Not); ok {
			if lv, ok := ln.Operand.(formula.Variable); ok && lv.Name == rv.Name {
				return formula.Truth{}
			}
		}
	}
	return f
}

func nonContradictionToFalsity(f formula.Formula) formula.Formula {
	a, ok := f.(formula.And)
	if !ok {
		return f
	}
	if ln, ok := a.L.(formula.Not); ok && ln.Operand.Equal(a.R) {
		return formula.Falsity{}
	}
	if rn, ok := a.R.(formula.Not); ok && rn.Operand.Equal(a.L) {
		return formula.Falsity{}
	}
	return f
}

func distributeNextOverAnd(f formula.Formula) formula.Formula {
	if n, ok := f.(formula.Next); ok {
		if a, ok := n.Operand.(formula.And); ok {
			return formula.And{L: formula.Next{Operand: a.L}, R: formula.Next{Operand: a.R}}
		}
	}
	return f
}

func distributeNextOverOr(f formula.Formula) formula.Formula {
	if n, ok := f.(formula.Next); ok {
		if o, ok := n.Operand.(formula.Or); ok {
			return formula.Or{L: formula.Next{Operand: o.L}, R: formula.Next{Operand: o.R}}
		}
	}
	return f
}

func distributeNextOverUntil(f formula.Formula) formula.Formula {
	if n, ok := f.(formula.Next); ok {
		if u, ok := n.Operand.(formula.Until); ok {
			return formula.Until{L: formula.Next{Operand: u.L}, R: formula.Next{Operand: u.R}}
		}
	}
	return f
}

func distributeFinallyOverOr(f formula.Formula) formula.Formula {
	if fi, ok := f.(formula.Finally); ok {
		if o, ok := fi.Operand.(formula.Or); ok {
			return formula.Or{L: formula.Finally{Operand: o.L}, R: formula.Finally{Operand: o.R}}
		}
	}
	return f
}

func distributeGloballyOverAnd(f formula.Formula) formula.Formula {
	if g, ok := f.(formula.Globally); ok {
		if a, ok := g.Operand.(formula.And); ok {
			return formula.And{L: formula.Globally{Operand: a.L}, R: formula.Globally{Operand: a.R}}
		}
	}
	return f
}

func distributeUntilOverOr(f formula.Formula) formula.Formula {
	if u, ok := f.(formula.Until); ok {
		if o, ok := u.L.(formula.Or); ok {
			return formula.Or{
				L: formula.Until{L: o.L, R: u.R},
				R: formula.Until{L: o.R, R: u.R},
			}
		}
	}
	return f
}

func distributeAndOverUntil(f formula.Formula) formula.Formula {
	if a, ok := f.(formula.And); ok {
		lu, lok := a.L.(formula.Until)
		ru, rok := a.R.(formula.Until)
		if lok && rok && lu.L.Equal(ru.L) {
			return formula.Until{L: lu.L, R: formula.And{L: lu.R, R: ru.R}}
		}
	}
	return f
}

func negateNext(f formula.Formula) formula.Formula {
	if n, ok := f.(formula.Not); ok {
		if nx, ok := n.Operand.(formula.Next); ok {
			return formula.Next{Operand: formula.Not{Operand: nx.Operand}}
		}
	}
	return f
}

func negateFinally(f formula.Formula) formula.Formula {
	if n, ok := f.(formula.Not); ok {
		if fi, ok := n.Operand.(formula.Finally); ok {
			return formula.Globally{Operand: formula.Not{Operand: fi.Operand}}
		}
	}
	return f
}

func negateUntil(f formula.Formula) formula.Formula {
	if n, ok := f.(formula.Not); ok {
		if u, ok := n.Operand.(formula.Until); ok {
			return formula.Release{L: formula.Not{Operand: u.L}, R: formula.Not{Operand: u.R}}
		}
	}
	return f
}

func negateGlobally(f formula.Formula) formula.Formula {
	if n, ok := f.(formula.Not); ok {
		if g, ok := n.Operand.(formula.Globally); ok {
			return formula.Finally{Operand: formula.Not{Operand: g.Operand}}
		}
	}
	return f
}

func negateRelease(f formula.Formula) formula.Formula {
	if n, ok := f.(formula.Not); ok {
		if r, ok := n.Operand.(formula.Release); ok {
			return formula.Until{L: formula.Not{Operand: r.L}, R: formula.Not{Operand: r.R}}
		}
	}
	return f
}

func finallyIdempotence(f formula.Formula) formula.Formula {
	if fi, ok := f.(formula.Finally); ok {
		if fi2, ok := fi.Operand.(formula.Finally); ok {
			return formula.Finally{Operand: fi2.Operand}
		}
	}
	return f
}

func globallyIdempotence(f formula.Formula) formula.Formula {
	if g, ok := f.(formula.Globally); ok {
		if g2, ok := g.Operand.(formula.Globally); ok {
			return formula.Globally{Operand: g2.Operand}
		}
	}
	return f
}

func untilIdempotence(f formula.Formula) formula.Formula {
	if u, ok := f.(formula.Until); ok {
		if u2, ok := u.R.(formula.Until); ok && u.L.Equal(u2.L) {
			return formula.Until{L: u.L, R: u2.R}
		}
	}
	return f
}

func untilExpansion(f formula.Formula) formula.Formula {
	if u, ok := f.(formula.Until); ok {
		return formula.Or{L: u.R, R: formula.And{L: u.L, R: formula.Next{Operand: u}}}
	}
	return f
}

func releaseExpansion(f formula.Formula) formula.Formula {
	if r, ok := f.(formula.Release); ok {
		return formula.And{L: r.R, R: formula.Or{L: r.L, R: formula.Next{Operand: r}}}
	}
	return f
}

func globallyExpansion(f formula.Formula) formula.Formula {
	if g, ok := f.(formula.Globally); ok {
		return formula.And{L: g.Operand, R: formula.Next{Operand: g}}
	}
	return f
}

func finallyExpansion(f formula.Formula) formula.Formula {
	if fi, ok := f.(formula.Finally); ok {
		return formula.Or{L: fi.Operand, R: formula.Next{Operand: fi}}
	}
	return f
}

func finallyToUntil(f formula.Formula) formula.Formula {
	if fi, ok := f.(formula.Finally); ok {
		return formula.Until{L: formula.Truth{}, R: fi.Operand}
	}
	return f
}

func globallyToRelease(f formula.Formula) formula.Formula {
	if g, ok := f.(formula.Globally); ok {
		return formula.Release{L: formula.Falsity{}, R: g.Operand}
	}
	return f
}

func reverseImplicationToDisjunction(f formula.Formula) formula.Formula {
	if o, ok := f.(formula.Or); ok {
		if n, ok := o.L.(formula.Not); ok {
			return formula.Implication{L: n.Operand, R: o.R}
		}
	}
	return f
}

func reverseBiconditionalToImplications(f formula.Formula) formula.Formula {
	if a, ok := f.(formula.And); ok {
		li, lok := a.L.(formula.Implication)
		ri, rok := a.R.(formula.Implication)
		if lok && rok && li.L.Equal(ri.R) && li.R.Equal(ri.L) {
			return formula.Biconditional{L: li.L, R: li.R}
		}
	}
	return f
}

func reverseDoubleNegation(f formula.Formula) formula.Formula {
	if !isCompound(f) {
		return formula.Not{Operand: formula.Not{Operand: f}}
	}
	return f
}

func reverseDeMorganNotAnd(f formula.Formula) formula.Formula {
	if o, ok := f.(formula.Or); ok {
		ln, lok := o.L.(formula.Not)
		rn, rok := o.R.(formula.Not)
		if lok && rok {
			return formula.Not{Operand: formula.And{L: ln.Operand, R: rn.Operand}}
		}
	}
	return f
}

func reverseDeMorganNotOr(f formula.Formula) formula.Formula {
	if a, ok := f.(formula.And); ok {
		ln, lok := a.L.(formula.Not)
		rn, rok := a.R.(formula.Not)
		if lok && rok {
			return formula.Not{Operand: formula.Or{L: ln.Operand, R: rn.Operand}}
		}
	}
	return f
}

func reverseDistributiveLawAndOr(f formula.Formula) formula.Formula {
	if o, ok := f.(formula.Or); ok {
		la, lok := o.L.(formula.And)
		ra, rok := o.R.(formula.And)
		if lok && rok && la.L.Equal(ra.L) {
			return formula.And{L: la.L, R: formula.Or{L: la.R, R: ra.R}}
		}
	}
	return f
}

func reverseCommutativityAnd(f formula.Formula) formula.Formula {
	if a, ok := f.(formula.And); ok {
		return formula.And{L: a.R, R: a.L}
	}
	return f
}

func reverseCommutativityOr(f formula.Formula) formula.Formula {
	if o, ok := f.(formula.Or); ok {
		return formula.Or{L: o.R, R: o.L}
	}
	return f
}

func reverseAssociativityAnd(f formula.Formula) formula.Formula {
	if a, ok := f.(formula.And); ok {
		if a2, ok := a.L.(formula.And); ok {
			return formula.And{L: a2.L, R: formula.And{L: a2.R, R: a.R}}
		}
	}
	return f
}

func reverseAssociativityOr(f formula.Formula) formula.Formula {
	if o, ok := f.(formula.Or); ok {
		if o2, ok := o.L.(formula.Or); ok {
			return formula.Or{L: o2.L, R: formula.Or{L: o2.R, R: o.R}}
		}
	}
	return f
}

func reverseIdempotenceAnd(f formula.Formula) formula.Formula {
	if !isCompound(f) {
		return formula.And{L: f, R: f}
	}
	return f
}

func reverseIdempotenceOr(f formula.Formula) formula.Formula {
	if !isCompound(f) {
		return formula.Or{L: f, R: f}
	}
	return f
}

func reverseAndTruth(f formula.Formula) formula.Formula {
	if !isCompound(f) {
		return formula.And{L: f, R: formula.Truth{}}
	}
	return f
}

func reverseOrFalsity(f formula.Formula) formula.Formula {
	if !isCompound(f) {
		return formula.Or{L: f, R: formula.Falsity{}}
	}
	return f
}

func reverseNotTruth(f formula.Formula) formula.Formula {
	if _, ok := f.(formula.Falsity); ok {
		return formula.Not{Operand: formula.Truth{}}
	}
	return f
}

func reverseNotFalsity(f formula.Formula) formula.Formula {
	if _, ok := f.(formula.Truth); ok {
		return formula.Not{Operand: formula.Falsity{}}
	}
	return f
}

func reverseDistributeNextOverAnd(f formula.Formula) formula.Formula {
	if a, ok := f.(formula.And); ok {
		ln, lok := a.L.(formula.Next)
		rn, rok := a.R.(formula.Next)
		if lok && rok {
			return formula.Next{Operand: formula.And{L: ln.Operand, R: rn.Operand}}
		}
	}
	return f
}

func reverseDistributeNextOverOr(f formula.Formula) formula.Formula {
	if o, ok := f.(formula.Or); ok {
		ln, lok := o.L.(formula.Next)
		rn, rok := o.R.(formula.Next)
		if lok && rok {
			return formula.Next{Operand: formula.Or{L: ln.Operand, R: rn.Operand}}
		}
	}
	return f
}

func reverseDistributeNextOverUntil(f formula.Formula) formula.Formula {
	if u, ok := f.(formula.Until); ok {
		ln, lok := u.L.(formula.Next)
		rn, rok := u.R.(formula.Next)
		if lok && rok {
			return formula.Next{Operand: formula.Until{L: ln.Operand, R: rn.Operand}}
		}
	}
	return f
}

func reverseDistributeFinallyOverOr(f formula.Formula) formula.Formula {
	if o, ok := f.(formula.Or); ok {
		lf, lok := o.L.(formula.Finally)
		rf, rok := o.R.(formula.Finally)
		if lok && rok {
			return formula.Finally{Operand: formula.Or{L: lf.Operand, R: rf.Operand}}
		}
	}
	return f
}

func reverseDistributeGloballyOverAnd(f formula.Formula) formula.Formula {
	if a, ok := f.(formula.And); ok {
		lg, lok := a.L.(formula.Globally)
		rg, rok := a.R.(formula.Globally)
		if lok && rok {
			return formula.Globally{Operand: formula.And{L: lg.Operand, R: rg.Operand}}
		}
	}
	return f
}

func reverseDistributeUntilOverOr(f formula.Formula) formula.Formula {
	if o, ok := f.(formula.Or); ok {
		lu, lok := o.L.(formula.Until)
		ru, rok := o.R.(formula.Until)
		if lok && rok && lu.R.Equal(ru.R) {
			return formula.Until{L: formula.Or{L: lu.L, R: ru.L}, R: lu.R}
		}
	}
	return f
}

func reverseDistributeAndOverUntil(f formula.Formula) formula.Formula {
	if u, ok := f.(formula.Until); ok {
		if a, ok := u.R.(formula.And); ok {
			return formula.And{
				L: formula.Until{L: u.L, R: a.L},
				R: formula.Until{L: u.L, R: a.R},
			}
		}
	}
	return f
}

func reverseNegateNext(f formula.Formula) formula.Formula {
	if n, ok := f.(formula.Next); ok {
		if no, ok := n.Operand.(formula.Not); ok {
			return formula.Not{Operand: formula.Next{Operand: no.Operand}}
		}
	}
	return f
}

func reverseNegateFinally(f formula.Formula) formula.Formula {
	if g, ok := f.(formula.Globally); ok {
		if no, ok := g.Operand.(formula.Not); ok {
			return formula.Not{Operand: formula.Finally{Operand: no.Operand}}
		}
	}
	return f
}

func reverseNegateUntil(f formula.Formula) formula.Formula {
	if r, ok := f.(formula.Release); ok {
		ln, lok := r.L.(formula.Not)
		rn, rok := r.R.(formula.Not)
		if lok && rok {
			return formula.Not{Operand: formula.Until{L: ln.Operand, R: rn.Operand}}
		}
	}
	return f
}

func reverseNegateGlobally(f formula.Formula) formula.Formula {
	if fi, ok := f.(formula.Finally); ok {
		if no, ok := fi.Operand.(formula.Not); ok {
			return formula.Not{Operand: formula.Globally{Operand: no.Operand}}
		}
	}
	return f
}

func reverseNegateRelease(f formula.Formula) formula.Formula {
	if u, ok := f.(formula.Until); ok {
		ln, lok := u.L.(formula.Not)
		rn, rok := u.R.(formula.Not)
		if lok && rok {
			return formula.Not{Operand: formula.Release{L: ln.Operand, R: rn.Operand}}
		}
	}
	return f
}

func reverseFinallyIdempotence(f formula.Formula) formula.Formula {
	if fi, ok := f.(formula.Finally); ok {
		return formula.Finally{Operand: fi}
	}
	return f
}

func reverseGloballyIdempotence(f formula.Formula) formula.Formula {
	if g, ok := f.(formula.Globally); ok {
		return formula.Globally{Operand: g}
	}
	return f
}

func reverseUntilIdempotence(f formula.Formula) formula.Formula {
	if u, ok := f.(formula.Until); ok {
		return formula.Until{L: u.L, R: formula.Until{L: u.L, R: u.R}}
	}
	return f
}

func reverseUntilExpansion(f formula.Formula) formula.Formula {
	o, ok := f.(formula.Or)
	if !ok {
		return f
	}
	a, ok := o.R.(formula.And)
	if !ok {
		return f
	}
	n, ok := a.R.(formula.Next)
	if !ok {
		return f
	}
	u, ok := n.Operand.(formula.Until)
	if !ok {
		return f
	}
	if a.L.Equal(u.L) {
		return u
	}
	return f
}

func reverseReleaseExpansion(f formula.Formula) formula.Formula {
	a, ok := f.(formula.And)
	if !ok {
		return f
	}
	o, ok := a.R.(formula.Or)
	if !ok {
		return f
	}
	n, ok := o.R.(formula.Next)
	if !ok {
		return f
	}
	r, ok := n.Operand.(formula.Release)
	if !ok {
		return f
	}
	if o.L.Equal(r.L) {
		return r
	}
	return f
}

func reverseGloballyExpansion(f formula.Formula) formula.Formula {
	a, ok := f.(formula.And)
	if !ok {
		return f
	}
	n, ok := a.R.(formula.Next)
	if !ok {
		return f
	}
	g, ok := n.Operand.(formula.Globally)
	if !ok {
		return f
	}
	if a.L.Equal(g.Operand) {
		return n.Operand
	}
	return f
}

func reverseFinallyExpansion(f formula.Formula) formula.Formula {
	o, ok := f.(formula.Or)
	if !ok {
		return f
	}
	n, ok := o.R.(formula.Next)
	if !ok {
		return f
	}
	fi, ok := n.Operand.(formula.Finally)
	if !ok {
		return f
	}
	if o.L.Equal(fi.Operand) {
		return n.Operand
	}
	return f
}

func reverseFinallyToUntil(f formula.Formula) formula.Formula {
	if u, ok := f.(formula.Until); ok {
		if _, ok := u.L.(formula.Truth); ok {
			return formula.Finally{Operand: u.R}
		}
	}
	return f
}

func reverseGloballyToRelease(f formula.Formula) formula.Formula {
	if r, ok := f.(formula.Release); ok {
		if _, ok := r.L.(formula.Falsity); ok {
			return formula.Globally{Operand: r.R}
		}
	}
	return f
}

func implicationToTrue(f formula.Formula) formula.Formula {
	if i, ok := f.(formula.Implication); ok && i.L.Equal(i.R) {
		return formula.Truth{}
	}
	return f
}

func falseImpliesAnything(f formula.Formula) formula.Formula {
	if i, ok := f.(formula.Implication); ok {
		if _, ok := i.L.(formula.Falsity); ok {
			return formula.Truth{}
		}
	}
	return f
}

func implicationToNegation(f formula.Formula) formula.Formula {
	if i, ok := f.(formula.Implication); ok {
		return formula.Or{L: formula.Not{Operand: i.L}, R: i.R}
	}
	return f
}

func reverseImplicationToNegation(f formula.Formula) formula.Formula {
	if o, ok := f.(formula.Or); ok {
		if n, ok := o.L.(formula.Not); ok {
			return formula.Implication{L: n.Operand, R: o.R}
		}
	}
	return f
}

func xorEquivalence(f formula.Formula) formula.Formula {
	o, ok := f.(formula.Or)
	if !ok {
		return f
	}
	la, lok := o.L.(formula.And)
	ra, rok := o.R.(formula.And)
	if !lok || !rok {
		return f
	}
	a, b := la.L, ra.R
	ln, lnok := la.R.(formula.Not)
	rn, rnok := ra.L.(formula.Not)
	if lnok && rnok && ln.Operand.Equal(b) && rn.Operand.Equal(a) {
		return formula.Not{Operand: formula.Biconditional{L: a, R: b}}
	}
	return f
}

func reverseXorEquivalence(f formula.Formula) formula.Formula {
	if n, ok := f.(formula.Not); ok {
		if b, ok := n.Operand.(formula.Biconditional); ok {
			a, c := b.L, b.R
			return formula.Or{
				L: formula.And{L: a, R: formula.Not{Operand: c}},
				R: formula.And{L: formula.Not{Operand: a}, R: c},
			}
		}
	}
	return f
}

// Catalogue is the full, ordered set of rewrite rules. Order is
// significant: the engine's discovery order over a fixed input is a
// deterministic function of this slice's order, and must be preserved
// across ports. Two apparently redundant pairs are kept deliberately
// distinct catalogue entries rather than merged:
//   - implicationToDisjunction / implicationToNegation (and their reverses)
//     produce the same replacement but are separate, separately named
//     entries, each counted in len(Catalogue).
//   - commutativityAnd / reverseCommutativityAnd are syntactically
//     identical functions; both are kept so the forward/reverse pairing
//     convention stays uniform across the whole catalogue.
var Catalogue = []namedRule{
	{"implication_to_disjunction", implicationToDisjunction},
	{"biconditional_to_implications", biconditionalToImplications},
	{"double_negation", doubleNegation},
	{"de_morgan_not_and", deMorganNotAnd},
	{"de_morgan_not_or", deMorganNotOr},
	{"distributive_law_and_or", distributiveLawAndOr},
	{"commutativity_and", commutativityAnd},
	{"commutativity_or", commutativityOr},
	{"associativity_and", associativityAnd},
	{"associativity_or", associativityOr},
	{"absorption_and", absorptionAnd},
	{"absorption_or", absorptionOr},
	{"idempotence_and", idempotenceAnd},
	{"idempotence_or", idempotenceOr},
	{"and_truth", andTruth},
	{"or_truth", orTruth},
	{"and_falsity", andFalsity},
	{"or_falsity", orFalsity},
	{"not_truth", notTruth},
	{"not_falsity", notFalsity},
	{"law_of_excluded_middle", lawOfExcludedMiddle},
	{"non_contradiction_to_falsity", nonContradictionToFalsity},
	{"distribute_next_over_and", distributeNextOverAnd},
	{"distribute_next_over_or", distributeNextOverOr},
	{"distribute_next_over_until", distributeNextOverUntil},
	{"distribute_finally_over_or", distributeFinallyOverOr},
	{"distribute_globally_over_and", distributeGloballyOverAnd},
	{"distribute_until_over_or", distributeUntilOverOr},
	{"distribute_and_over_until", distributeAndOverUntil},
	{"negate_next", negateNext},
	{"negate_finally", negateFinally},
	{"negate_until", negateUntil},
	{"negate_globally", negateGlobally},
	{"negate_release", negateRelease},
	{"finally_idempotence", finallyIdempotence},
	{"globally_idempotence", globallyIdempotence},
	{"until_idempotence", untilIdempotence},
	{"until_expansion", untilExpansion},
	{"release_expansion", releaseExpansion},
	{"globally_expansion", globallyExpansion},
	{"finally_expansion", finallyExpansion},
	{"finally_to_until", finallyToUntil},
	{"globally_to_release", globallyToRelease},
	{"reverse_implication_to_disjunction", reverseImplicationToDisjunction},
	{"reverse_biconditional_to_implications", reverseBiconditionalToImplications},
	{"reverse_double_negation", reverseDoubleNegation},
	{"reverse_de_morgan_not_and", reverseDeMorganNotAnd},
	{"reverse_de_morgan_not_or", reverseDeMorganNotOr},
	{"reverse_distributive_law_and_or", reverseDistributiveLawAndOr},
	{"reverse_commutativity_and", reverseCommutativityAnd},
	{"reverse_commutativity_or", reverseCommutativityOr},
	{"reverse_associativity_and", reverseAssociativityAnd},
	{"reverse_associativity_or", reverseAssociativityOr},
	{"reverse_idempotence_and", reverseIdempotenceAnd},
	{"reverse_idempotence_or", reverseIdempotenceOr},
	{"reverse_and_truth", reverseAndTruth},
	{"reverse_or_falsity", reverseOrFalsity},
	{"reverse_not_truth", reverseNotTruth},
	{"reverse_not_falsity", reverseNotFalsity},
	{"reverse_distribute_next_over_and", reverseDistributeNextOverAnd},
	{"reverse_distribute_next_over_or", reverseDistributeNextOverOr},
	{"reverse_distribute_next_over_until", reverseDistributeNextOverUntil},
	{"reverse_distribute_finally_over_or", reverseDistributeFinallyOverOr},
	{"reverse_distribute_globally_over_and", reverseDistributeGloballyOverAnd},
	{"reverse_distribute_until_over_or", reverseDistributeUntilOverOr},
	{"reverse_distribute_and_over_until", reverseDistributeAndOverUntil},
	{"reverse_negate_next", reverseNegateNext},
	{"reverse_negate_finally", reverseNegateFinally},
	{"reverse_negate_until", reverseNegateUntil},
	{"reverse_negate_globally", reverseNegateGlobally},
	{"reverse_negate_release", reverseNegateRelease},
	{"reverse_finally_idempotence", reverseFinallyIdempotence},
	{"reverse_globally_idempotence", reverseGloballyIdempotence},
	{"reverse_until_idempotence", reverseUntilIdempotence},
	{"reverse_until_expansion", reverseUntilExpansion},
	{"reverse_release_expansion", reverseReleaseExpansion},
	{"reverse_globally_expansion", reverseGloballyExpansion},
	{"reverse_finally_expansion", reverseFinallyExpansion},
	{"reverse_finally_to_until", reverseFinallyToUntil},
	{"reverse_globally_to_release", reverseGloballyToRelease},
	{"implication_to_true", implicationToTrue},
	{"false_implies_anything", falseImpliesAnything},
	{"implication_to_negation", implicationToNegation},
	{"reverse_implication_to_negation", reverseImplicationToNegation},
	{"xor_equivalence", xorEquivalence},
	{"reverse_xor_equivalence", reverseXorEquivalence},
}
