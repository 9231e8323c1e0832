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

// Array is a growable, ordered sequence of math.Int. It is the result
// type for every entry point in this package: a coprime base, a split
// result, or a set of factoring triples is always returned as an Array.
//
// Order is deterministic for a fixed input and a fixed (serial or
// parallel) call shape, but the theory behind the natural coprime base
// does not specify an ordering; callers comparing against an expected
// base should compare as sets unless they depend on a specific
// implementation's ordering.
type Array struct {
	data []*math.Int
}

// NewArray creates an empty Array.
func NewArray() *Array {
	return new(Array)
}

// NewArrayFrom builds an Array by copying every element of vals.
func NewArrayFrom(vals ...*math.Int) *Array {
	a := NewArray()
	for _, v := range vals {
		a.Add(v)
	}
	return a
}

// Add appends a copy of x to the array.
func (a *Array) Add(x *math.Int) {
	a.data = append(a.data, x.Clone())
}

// Len returns the number of elements in the array.
func (a *Array) Len() int {
	return len(a.data)
}

// At returns the i-th element (read-only; callers must not mutate it).
func (a *Array) At(i int) *math.Int {
	return a.data[i]
}

// Slice returns the underlying elements as a read-only slice.
func (a *Array) Slice() []*math.Int {
	return a.data
}

// AppendAll copies every element of other onto the end of a.
func (a *Array) AppendAll(other *Array) {
	for _, v := range other.data {
		a.Add(v)
	}
}

// Clear empties the array.
func (a *Array) Clear() {
	a.data = nil
}
