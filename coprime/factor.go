//----------------------------------------------------------------------
// This file is part of Gospel.
// Copyright (C) 2011-present, Bernd Fix  >Y<
//
// Gospel is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// Gospel is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

package coprime

import (
	"github.com/bfix/coprimebase/logger"
	"github.com/bfix/coprimebase/math"
)

// Factor is one result of FindFactor/FindFactors: a non-prime Original
// that was found to factor as Factor * Cofactor, where Factor is an
// element of the coprime base it was tested against.
type Factor struct {
	Original *math.Int
	Factor   *math.Int
	Cofactor *math.Int
}

// FactorArray is a growable, ordered sequence of Factor results.
type FactorArray struct {
	data []Factor
}

// NewFactorArray creates an empty FactorArray.
func NewFactorArray() *FactorArray {
	return new(FactorArray)
}

// Add appends a copy of f.
func (fa *FactorArray) Add(f Factor) {
	fa.data = append(fa.data, Factor{
		Original: f.Original.Clone(),
		Factor:   f.Factor.Clone(),
		Cofactor: f.Cofactor.Clone(),
	})
}

// Len returns the number of results.
func (fa *FactorArray) Len() int {
	return len(fa.data)
}

// At returns the i-th result.
func (fa *FactorArray) At(i int) Factor {
	return fa.data[i]
}

// reduce returns the largest i with p^i | a and the cofactor c = a/p^i
// (Alg. 19.2), computed in O(log i) multiplications by repeated
// squaring of p rather than i repeated divisions.
func reduce(p, a *math.Int) (int, *math.Int) {
	if !a.Mod(p).Equals(math.ZERO) {
		return 0, a
	}
	j, b := reduce(p.Mul(p), a.Div(p))
	if b.Mod(p).Equals(math.ZERO) {
		return 2*j + 2, b.Div(p)
	}
	return 2*j + 1, b
}

// FindFactor attempts to factor a as a product of powers of base,
// recording one (a, factor, cofactor) triple in out for each base
// element other than a itself that divides a. It returns whether every
// prime of a lies in base. The search stops at the first base element
// that leaves a cofactor other than 1; triples recorded before that
// point stay in out even though the call then returns false.
func FindFactor(pool *Pool, out *FactorArray, a *math.Int, base *Array) bool {
	if base.Len() == 0 {
		logger.Println(logger.CRITICAL, "[coprime] FindFactor: empty coprime base")
	}
	return findFactor(pool, out, a, a, base.Slice())
}

// findFactor implements Alg. 20.1. a0 is the original value passed to
// the outermost call and stays fixed through the recursion; a narrows
// to the portion still being tested against the current half of base.
func findFactor(pool *Pool, out *FactorArray, a0, a *math.Int, base []*math.Int) bool {
	if len(base) == 0 {
		// no primes left to test against: only the trivial cofactor 1
		// still "factors" over an empty set of primes.
		return a.Equals(math.ONE)
	}
	if len(base) == 1 {
		p := base[0]
		j, c := reduce(p, a)
		if !c.Equals(math.ONE) {
			return false
		}
		if j > 0 && !a0.Equals(p) {
			out.Add(Factor{Original: a0, Factor: p, Cofactor: a0.Div(p)})
		}
		return true
	}
	mid := len(base) / 2
	left, right := base[:mid], base[mid:]
	y := prod(left)
	_, b, c := gcdPpiPpo(pool, a, y)
	return findFactor(pool, out, a0, b, left) && findFactor(pool, out, a0, c, right)
}

// FindFactors factors every element of s over base, appending to out
// one (original, factor, cofactor) triple for each base element that
// divides an element of s, unless that base element equals the
// element of s itself (Alg. 21.2).
func FindFactors(pool *Pool, out *FactorArray, s, base *Array) {
	if s.Len() == 0 {
		logger.Println(logger.CRITICAL, "[coprime] FindFactors: empty input array")
		return
	}
	if base.Len() == 0 {
		logger.Println(logger.CRITICAL, "[coprime] FindFactors: empty coprime base")
	}
	findFactors(pool, out, s.Slice(), base.Slice())
}

// findFactors restricts base to the primes that actually divide some
// element of the current half of s before recursing — primes absent
// from s need not be tested, which keeps the recursion's cost tied to
// the primes that matter rather than the full original base.
func findFactors(pool *Pool, out *FactorArray, s, base []*math.Int) {
	if len(base) == 0 {
		if len(s) == 1 {
			findFactor(pool, out, s[0], s[0], nil)
			return
		}
		mid := len(s) / 2
		findFactors(pool, out, s[:mid], nil)
		findFactors(pool, out, s[mid:], nil)
		return
	}

	x := prod(base)
	y := prod(s)
	z := ppi(pool, x, y)

	d := NewArray()
	split(pool, d, z, base)
	var q []*math.Int
	for i, pi := range base {
		if d.At(i).Equals(pi) {
			q = append(q, pi)
		}
	}

	if len(s) == 1 {
		findFactor(pool, out, s[0], s[0], q)
		return
	}
	mid := len(s) / 2
	findFactors(pool, out, s[:mid], q)
	findFactors(pool, out, s[mid:], q)
}
