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

// CBExtend produces the natural coprime base of base ∪ {b} into out
// (Alg. 16.2). base must already be a coprime set; b need not be
// coprime to it. Extending by b == 1 is a no-op that simply copies base
// into out, since 1 is silently absorbed as the multiplicative unit.
func CBExtend(pool *Pool, out *Array, base *Array, b *math.Int) {
	if base.Len() == 0 {
		if !b.Equals(math.ONE) {
			out.Add(b)
		}
		return
	}
	x := ArrayProd(base)

	// a is the part of b built from primes already in base; r is
	// coprime to every element of base and joins the base untouched.
	_, a, r := gcdPpiPpo(pool, b, x)
	if !r.Equals(math.ONE) {
		out.Add(r)
	}

	s := NewArray()
	Split(pool, s, a, base)
	if s.Len() != base.Len() {
		// split is documented to return one entry per base element; a
		// mismatch means a lower layer has a bug. Do not risk emitting
		// a corrupted base — stop here instead of merging.
		logger.Println(logger.SEVERE, "[coprime] CBExtend: split returned a mismatched element count")
		return
	}
	for i := 0; i < base.Len(); i++ {
		appendCB(pool, out, base.At(i), s.At(i))
	}
}
