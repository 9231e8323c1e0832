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

// Split distributes the prime-power content of a across the coprime
// base: out gets one entry per element p_i of base, in the same order,
// equal to ppi(a, p_i). An empty base is a caller error and is reported
// to the diagnostics sideband rather than failing the call (see spec
// §7); whether base is coprime is not checked.
func Split(pool *Pool, out *Array, a *math.Int, base *Array) {
	if base.Len() == 0 {
		logger.Println(logger.CRITICAL, "[coprime] Split: empty coprime base")
		return
	}
	split(pool, out, a, base.Slice())
}

// split implements Alg. 15.3. Using the already-narrowed b (the part of
// a accounted for by the current half of the base) rather than the
// original a at every recursive step is what keeps the total cost
// essentially linear: each level only ever re-examines the primes still
// relevant to it.
func split(pool *Pool, out *Array, a *math.Int, base []*math.Int) {
	x := prod(base)
	b := ppi(pool, a, x)
	if len(base) == 1 {
		out.Add(b)
		return
	}
	mid := len(base) / 2
	split(pool, out, b, base[:mid])
	split(pool, out, b, base[mid:])
}
