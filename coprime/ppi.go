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

// gcdPpiPpo decomposes a with respect to b (Alg. 11.3): ppi is the
// largest divisor of a all of whose prime factors appear in b ("powers
// in a of primes inside b"), ppo = a/ppi ("powers in a of primes
// outside b"), and gcd = gcd(a,b). Each loop iteration strictly grows
// the part of ppi's valuation shared with b, so the loop terminates in
// O(log a) rounds.
func gcdPpiPpo(p *Pool, a, b *math.Int) (gcd, ppi, ppo *math.Int) {
	ppi = a.GCD(b)
	gcd = ppi
	ppo = a.Div(ppi)

	g := p.Pop()
	defer p.Push(g)
	for {
		g.Set(ppi.GCD(ppo))
		if g.Equals(math.ONE) {
			break
		}
		ppi = ppi.Mul(g)
		ppo = ppo.Div(g)
	}
	return
}

// ppi returns only the "powers inside b" part of gcdPpiPpo.
func ppi(p *Pool, a, b *math.Int) *math.Int {
	_, x, _ := gcdPpiPpo(p, a, b)
	return x
}

// ppo returns only the "powers outside b" part of gcdPpiPpo.
func ppo(p *Pool, a, b *math.Int) *math.Int {
	_, _, y := gcdPpiPpo(p, a, b)
	return y
}

// gcdPpgPple decomposes a with respect to b (Alg. 11.4): ppg is the
// largest divisor of a whose prime-power exponents strictly exceed
// those of b at the same prime, pple = a/ppg, and gcd = gcd(a,b).
func gcdPpgPple(p *Pool, a, b *math.Int) (gcd, ppg, pple *math.Int) {
	pple = a.GCD(b)
	gcd = pple
	ppg = a.Div(pple)

	g := p.Pop()
	defer p.Push(g)
	for {
		g.Set(ppg.GCD(pple))
		if g.Equals(math.ONE) {
			break
		}
		ppg = ppg.Mul(g)
		pple = pple.Div(g)
	}
	return
}
