package coprime

//----------------------------------------------------------------------
// This file is part of Gospel.
// Copyright (C) 2011-present, Bernd Fix
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

import "github.com/bfix/coprimebase/math"

// intArray builds an Array from plain int64 values, for test brevity.
func intArray(vals ...int64) *Array {
	a := NewArray()
	for _, v := range vals {
		a.Add(math.NewInt(v))
	}
	return a
}

// asSet converts an Array to a set of decimal strings, so tests can
// compare results without depending on implementation-defined order.
func asSet(a *Array) map[string]bool {
	set := make(map[string]bool, a.Len())
	for i := 0; i < a.Len(); i++ {
		set[a.At(i).String()] = true
	}
	return set
}

func setOf(vals ...int64) map[string]bool {
	set := make(map[string]bool, len(vals))
	for _, v := range vals {
		set[math.NewInt(v).String()] = true
	}
	return set
}

func sameSet(a, b map[string]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

// pairwiseCoprime checks invariant 1: gcd(u,v) == 1 for every distinct
// pair of elements in a.
func pairwiseCoprime(a *Array) bool {
	for i := 0; i < a.Len(); i++ {
		for j := i + 1; j < a.Len(); j++ {
			if !a.At(i).GCD(a.At(j)).Equals(math.ONE) {
				return false
			}
		}
	}
	return true
}

// noUnits checks invariant 4: no element of a equals 1.
func noUnits(a *Array) bool {
	for i := 0; i < a.Len(); i++ {
		if a.At(i).Equals(math.ONE) {
			return false
		}
	}
	return true
}

// generates reports whether every prime factor of n divides some
// element of base — invariant 2, checked the only way available
// without a primality oracle: by requiring n itself to fully reduce to
// 1 by repeated exact division by the elements of base.
func generates(base *Array, n *math.Int) bool {
	for i := 0; i < base.Len(); i++ {
		for n.Mod(base.At(i)).Equals(math.ZERO) {
			n = n.Div(base.At(i))
		}
	}
	return n.Equals(math.ONE)
}
