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

import "github.com/bfix/coprimebase/math"

// appendCB appends the natural coprime base of {a, b} to out (Alg.
// 13.2). It refines by peeling off the part of a coprime to b, then
// recursing on the interaction between the remainder and b, shrinking
// the bit-length at every step so the recursion terminates.
func appendCB(pool *Pool, out *Array, a, b *math.Int) {
	if b.Equals(math.ONE) {
		if !a.Equals(math.ONE) {
			out.Add(a)
		}
		return
	}

	// a1 is the part of a built from primes of b; r is the rest.
	_, a1, r := gcdPpiPpo(pool, a, b)
	if !r.Equals(math.ONE) {
		out.Add(r)
	}

	g, h, c := gcdPpgPple(pool, a1, b)
	c0 := c
	x := c0
	n := 1
	for {
		g, h, c = gcdPpgPple(pool, h, g.Mul(g))
		d := c.GCD(b)
		x = x.Mul(d)

		// y must be an independent copy of d: two_power mutates it in
		// place, and d itself is still needed, unmodified, below.
		y := pool.Pop()
		y.Set(d)
		twoPower(y, n-1)
		appendCB(pool, out, c.Div(y), d)
		pool.Push(y)

		if h.Equals(math.ONE) {
			break
		}
		n++
	}
	appendCB(pool, out, b.Div(x), c0)
}
