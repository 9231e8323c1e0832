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
	stderrors "errors"

	cberrors "github.com/bfix/coprimebase/errors"
	"github.com/bfix/coprimebase/logger"
	"github.com/bfix/coprimebase/math"
	"golang.org/x/sync/errgroup"
)

// ErrEmptyInput is the base error wrapped by ParallelCB when given an
// empty set of integers; unlike CB, which only has a diagnostic
// sideband, ParallelCB returns a real error because its errgroup-based
// fork/join already has an error return path to use.
var ErrEmptyInput = stderrors.New("coprime: empty input array")

// CB populates out with the natural coprime base of s (Alg. 18.1): the
// unique minimal-cardinality coprime set such that every element of s
// is a product of prime powers of elements of the base. s must be
// non-empty; an empty s is a caller error reported to the diagnostics
// sideband. A zero anywhere in s is a detected input-domain error
// (zero has no coprime-base representation) and is reported the same
// way, with the zero entry simply dropped from consideration.
func CB(pool *Pool, out *Array, s *Array) {
	if s.Len() == 0 {
		logger.Println(logger.CRITICAL, "[coprime] CB: empty input array")
		return
	}
	out.AppendAll(cb(pool, s.Slice()))
}

// cb is the balanced divide-and-conquer recursion underlying CB.
func cb(pool *Pool, nums []*math.Int) *Array {
	if len(nums) == 1 {
		ret := NewArray()
		v := nums[0]
		if v.Sign() == 0 {
			logger.Println(logger.CRITICAL, "[coprime] CB: zero is not a valid input")
			return ret
		}
		if !v.Equals(math.ONE) {
			ret.Add(v)
		}
		return ret
	}
	mid := len(nums) / 2
	p := cb(pool, nums[:mid])
	q := cb(pool, nums[mid:])
	ret := NewArray()
	CBMerge(pool, ret, p, q)
	return ret
}

// ParallelCB is the parallel-mode counterpart of CB described in spec
// §5: at recursion nodes where the remaining worker budget allows it,
// the left half runs on its own goroutine with a freshly initialized
// Pool (never sharing the caller's), while the right half runs
// sequentially on the calling goroutine, reusing its Pool. The final
// CBMerge of any forked pair always runs back on the joining goroutine.
// workers <= 1 degrades to the fully serial CB.
func ParallelCB(pool *Pool, out *Array, s *Array, workers int) error {
	if s.Len() == 0 {
		return cberrors.New(ErrEmptyInput, "ParallelCB given zero input integers")
	}
	if workers <= 1 {
		CB(pool, out, s)
		return nil
	}
	ret, err := parallelCB(pool, s.Slice(), workers)
	if err != nil {
		return err
	}
	out.AppendAll(ret)
	return nil
}

func parallelCB(pool *Pool, nums []*math.Int, budget int) (*Array, error) {
	if len(nums) <= 1 || budget <= 1 {
		arr := NewArray()
		arr.AppendAll(cb(pool, nums))
		return arr, nil
	}
	mid := len(nums) / 2
	left, right := nums[:mid], nums[mid:]

	var p *Array
	g := new(errgroup.Group)
	g.Go(func() error {
		leftPool := NewPool()
		defer leftPool.Clear()
		var err error
		p, err = parallelCB(leftPool, left, budget/2)
		return err
	})

	q, err := parallelCB(pool, right, budget/2)
	if err != nil {
		_ = g.Wait()
		return nil, err
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ret := NewArray()
	CBMerge(pool, ret, p, q)
	return ret, nil
}
