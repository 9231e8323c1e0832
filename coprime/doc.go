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

//********************************************************************/
//*    PGMID.        COPRIME BASE FACTORIZATION.                     */
//*    AUTHOR.       BERND R. FIX   >Y<                              */
//*    REMARKS.      D.J. Bernstein, "How to find smooth parts of     */
//*                  integers" / "Factoring into coprimes in          */
//*                  essentially linear time".                        */
//********************************************************************/

// Package coprime computes the natural coprime base of a set of
// arbitrary-precision positive integers, and factors integers over such
// a base. It is the batch-GCD engine behind finding shared factors
// across many RSA moduli: run cb over the moduli, and any shared prime
// shows up as an element of the base dividing more than one modulus.
//
// Every entry point takes a *Pool as its first argument. The pool is a
// reusable arena of scratch math.Int values; callers create one with
// NewPool, pass it to as many calls as they like, and Clear it when
// done. A pool is single-ownership: never share one across goroutines
// without first splitting it (ParallelCB does this automatically for
// its own recursion).
package coprime
