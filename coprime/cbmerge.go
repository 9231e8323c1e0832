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

// CBMerge produces the natural coprime base of p ∪ q into out (Alg.
// 17.3). p and q must each already be coprime sets. Each of the b
// bit-indexed rounds halves the "entanglement" between q's elements and
// the running base; b = ceil(log2(|q|)) rounds (at least one) suffice
// to fully separate every element of q.
func CBMerge(pool *Pool, out, p, q *Array) {
	if p.Len() == 0 && q.Len() == 0 {
		logger.Println(logger.WARN, "[coprime] CBMerge: both inputs empty")
		return
	}
	if p.Len() == 0 {
		logger.Println(logger.WARN, "[coprime] CBMerge: left input empty, copying right")
		out.AppendAll(q)
		return
	}
	if q.Len() == 0 {
		logger.Println(logger.WARN, "[coprime] CBMerge: right input empty, copying left")
		out.AppendAll(p)
		return
	}

	n := q.Len()
	bits := 1
	for (1 << uint(bits)) < n {
		bits++
	}

	s := NewArray()
	s.AppendAll(p)
	for i := 0; i < bits; i++ {
		var r0, r1 []*math.Int
		for k := 0; k < n; k++ {
			if (k>>uint(i))&1 == 0 {
				r0 = append(r0, q.At(k))
			} else {
				r1 = append(r1, q.At(k))
			}
		}
		t := NewArray()
		CBExtend(pool, t, s, prod(r0))

		next := NewArray()
		CBExtend(pool, next, t, prod(r1))
		s = next
	}
	out.AppendAll(s)
}
