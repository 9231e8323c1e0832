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

// Pool is a LIFO arena of scratch math.Int values. Deeply recursive
// routines like append_cb pop dozens of temporaries per call; handing
// them back to a free list instead of the allocator keeps the inner
// loop arithmetic-bound rather than allocator-bound.
//
// A Pool has single ownership: it must not be shared across goroutines.
// Each Pop must be balanced by exactly one Push before the scope that
// popped it returns.
type Pool struct {
	free []*math.Int
}

// NewPool creates an empty scratch pool.
func NewPool() *Pool {
	return new(Pool)
}

// Pop returns an unused Int slot of unspecified value, allocating a
// fresh one if the free list is empty.
func (p *Pool) Pop() *math.Int {
	n := len(p.free)
	if n == 0 {
		return math.NewInt(0)
	}
	v := p.free[n-1]
	p.free = p.free[:n-1]
	return v
}

// Push returns a slot to the pool for reuse. Its value is not expected
// to persist across the call.
func (p *Pool) Push(v *math.Int) {
	p.free = append(p.free, v)
}

// Clear releases every slot held by the pool.
func (p *Pool) Clear() {
	p.free = nil
}

// Len reports the number of free slots currently held (diagnostic use
// only; callers should not rely on pool occupancy).
func (p *Pool) Len() int {
	return len(p.free)
}
