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

// prod computes the product of arr as a balanced binary tree rather
// than a linear fold. The tree shape is what keeps the total bit
// complexity of repeated product/split operations essentially linear
// in the combined bit-length of the inputs: a linear fold would let one
// partial product grow to the full bit-length long before the end of
// the array, inflating every subsequent multiplication.
//
// The empty product is defined to be 1, which CBMerge relies on when
// one of a round's two partitions of q is empty.
func prod(arr []*math.Int) *math.Int {
	switch n := len(arr); n {
	case 0:
		return math.ONE
	case 1:
		return arr[0]
	default:
		mid := n / 2
		left := prod(arr[:mid])
		right := prod(arr[mid:])
		return left.Mul(right)
	}
}

// ArrayProd returns the balanced product of every element of a.
func ArrayProd(a *Array) *math.Int {
	return prod(a.Slice())
}
