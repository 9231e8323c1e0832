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

func TestArrayAddCopies(t *testing.T) {
	v := math.NewInt(10)
	a := NewArray()
	a.Add(v)
	v.Set(math.NewInt(99))
	if !a.At(0).Equals(math.NewInt(10)) {
		t.Fatal("Array.Add must store an independent copy, not an alias")
	}
}

func TestArrayAppendAll(t *testing.T) {
	a := NewArrayFrom(math.NewInt(1), math.NewInt(2))
	b := NewArrayFrom(math.NewInt(3), math.NewInt(4))
	a.AppendAll(b)
	if a.Len() != 4 {
		t.Fatalf("expected length 4, got %d", a.Len())
	}
	want := []int64{1, 2, 3, 4}
	for i, w := range want {
		if !a.At(i).Equals(math.NewInt(w)) {
			t.Fatalf("element %d: got %v, want %d", i, a.At(i), w)
		}
	}
}

func TestArrayClear(t *testing.T) {
	a := NewArrayFrom(math.NewInt(1), math.NewInt(2))
	a.Clear()
	if a.Len() != 0 {
		t.Fatal("Clear did not empty the array")
	}
}
