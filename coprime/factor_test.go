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

import (
	"testing"

	"github.com/bfix/coprimebase/math"
)

func TestReduceConcreteScenario(t *testing.T) {
	j, b := reduce(math.TWO, math.NewInt(40))
	if j != 3 {
		t.Fatalf("expected exponent 3, got %d", j)
	}
	if !b.Equals(math.NewInt(5)) {
		t.Fatalf("expected cofactor 5, got %v", b)
	}
}

func TestReduceNotDivisible(t *testing.T) {
	j, b := reduce(math.NewInt(3), math.NewInt(40))
	if j != 0 {
		t.Fatalf("expected exponent 0, got %d", j)
	}
	if !b.Equals(math.NewInt(40)) {
		t.Fatalf("expected cofactor unchanged, got %v", b)
	}
}

func TestFindFactorComposite(t *testing.T) {
	pool := NewPool()
	out := NewFactorArray()
	base := intArray(5, 7, 11)
	ok := FindFactor(pool, out, math.NewInt(35), base)
	if !ok {
		t.Fatal("35 = 5*7 should factor completely over {5,7,11}")
	}
	// the recursion visits a leaf for each base prime that actually
	// divides 35 (5 and 7, but not 11), recording one (original,
	// factor, cofactor) triple per prime found.
	if out.Len() != 2 {
		t.Fatalf("expected two factor results (one per prime factor), got %d", out.Len())
	}
	factors := map[string]bool{}
	for i := 0; i < out.Len(); i++ {
		f := out.At(i)
		if !f.Factor.Mul(f.Cofactor).Equals(f.Original) {
			t.Fatalf("factor*cofactor must equal original: %v", f)
		}
		factors[f.Factor.String()] = true
	}
	if !factors["5"] || !factors["7"] {
		t.Fatalf("expected factors 5 and 7 to be recorded, got %v", out)
	}
}

func TestFindFactorPrimeInBaseIsNotRecorded(t *testing.T) {
	pool := NewPool()
	out := NewFactorArray()
	base := intArray(5)
	ok := FindFactor(pool, out, math.NewInt(5), base)
	if !ok {
		t.Fatal("5 itself is trivially a product of base elements")
	}
	if out.Len() != 0 {
		t.Fatal("a base element factoring as itself is not a discovered factorization")
	}
}

func TestFindFactorDoesNotFactorOverBase(t *testing.T) {
	pool := NewPool()
	out := NewFactorArray()
	base := intArray(5, 7)
	ok := FindFactor(pool, out, math.NewInt(11), base)
	if ok {
		t.Fatal("11 shares no prime with {5,7} and must not factor over it")
	}
}

func TestFindFactorsTripleScenario(t *testing.T) {
	pool := NewPool()
	out := NewFactorArray()
	base := intArray(5, 7, 11)
	s := intArray(35, 77)
	FindFactors(pool, out, s, base)
	// 35 = 5*7 contributes a triple for each of its two base primes (5
	// and 7), and 77 = 7*11 likewise for 7 and 11: four triples total.
	if out.Len() != 4 {
		t.Fatalf("expected 4 factorizations, got %d", out.Len())
	}
	factorsOf := map[string]map[string]bool{"35": {}, "77": {}}
	for i := 0; i < out.Len(); i++ {
		f := out.At(i)
		if !f.Factor.Mul(f.Cofactor).Equals(f.Original) {
			t.Fatalf("factor*cofactor must equal original: %v", f)
		}
		orig := f.Original.String()
		if factorsOf[orig] == nil {
			t.Fatalf("unexpected original value in result: %v", f)
		}
		factorsOf[orig][f.Factor.String()] = true
	}
	if !factorsOf["35"]["5"] || !factorsOf["35"]["7"] {
		t.Fatalf("expected 35's factorizations to cover primes 5 and 7, got %v", out)
	}
	if !factorsOf["77"]["7"] || !factorsOf["77"]["11"] {
		t.Fatalf("expected 77's factorizations to cover primes 7 and 11, got %v", out)
	}
}
