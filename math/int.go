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

// Package math provides the arbitrary-precision integer primitive used
// throughout the coprime-base library. It is a thin, allocation-explicit
// wrapper around math/big.Int offering only the operations the coprime
// package actually drives: multiplication, GCD, floor-division/-modulus,
// equality with small constants, and the one in-place mutation its
// scratch-pool discipline needs.
package math

import "math/big"

var (
	// ZERO as number "0"
	ZERO = NewInt(0)
	// ONE as number "1"
	ONE = NewInt(1)
	// TWO as number "2"
	TWO = NewInt(2)
)

// Int is a nonnegative integer of arbitrary size.
type Int struct {
	v *big.Int
}

// NewInt returns a new Int from an intrinsic int64.
func NewInt(v int64) *Int {
	return &Int{v: big.NewInt(v)}
}

// String converts an Int to its decimal string representation.
func (i *Int) String() string {
	return i.v.String()
}

// Mul returns i*j.
func (i *Int) Mul(j *Int) *Int {
	return &Int{v: new(big.Int).Mul(i.v, j.v)}
}

// Div returns the floor quotient of i/j.
func (i *Int) Div(j *Int) *Int {
	return &Int{v: new(big.Int).Div(i.v, j.v)}
}

// Mod returns the floor remainder of i/j.
func (i *Int) Mod(j *Int) *Int {
	return &Int{v: new(big.Int).Mod(i.v, j.v)}
}

// Sign returns -1, 0, or 1 depending on the sign of i.
func (i *Int) Sign() int {
	return i.v.Sign()
}

// Equals reports whether i and j represent the same value.
func (i *Int) Equals(j *Int) bool {
	return i.v.Cmp(j.v) == 0
}

// GCD returns the greatest common divisor of i and j.
func (i *Int) GCD(j *Int) *Int {
	return &Int{v: new(big.Int).GCD(nil, nil, i.v, j.v)}
}

// Clone returns an independent copy of i.
func (i *Int) Clone() *Int {
	return &Int{v: new(big.Int).Set(i.v)}
}

// Set overwrites i in place with the value of j and returns i. This is
// the one mutating operation on Int; it exists so that a pool-backed
// scratch value (see package coprime's Pool) can take the result of each
// step of a chain of squarings and keep its identity. Each Mul still
// allocates its own result.
func (i *Int) Set(j *Int) *Int {
	i.v.Set(j.v)
	return i
}
