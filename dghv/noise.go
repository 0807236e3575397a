/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package dghv

import (
	"math/big"

	"github.com/fentec-project/toyfhe/internal"
)

// EstimateNoiseAfterAdd returns r1 + r2, a rough estimate of
// the noise after adding ciphertexts with noise r1 and r2.
func (s *DGHV) EstimateNoiseAfterAdd(r1, r2 *big.Int) *big.Int {
	return new(big.Int).Add(r1, r2)
}

// EstimateNoiseAfterMul returns 4|r1||r2| + 2(|r1| + |r2|), a rough
// estimate of the noise after multiplying ciphertexts with noise r1
// and r2: the cross term of (2r1)(2r2) plus the linear terms 2r1*m2
// and 2r2*m1.
func (s *DGHV) EstimateNoiseAfterMul(r1, r2 *big.Int) *big.Int {
	a1 := new(big.Int).Abs(r1)
	a2 := new(big.Int).Abs(r2)

	cross := new(big.Int).Mul(a1, a2)
	cross.Lsh(cross, 2)
	linear := new(big.Int).Add(a1, a2)
	linear.Lsh(linear, 1)

	return cross.Add(cross, linear)
}

// Noise returns the centered residue of c modulo sk, i.e. m + 2r for
// the effective noise r of c while it is still decryptable. Once the
// noise has overflowed, the value is an arbitrary residue in
// [-sk/2, sk/2).
func (s *DGHV) Noise(sk, c *big.Int) *big.Int {
	return internal.CenteredMod(c, sk)
}

// NoiseBudget returns how many more bits the residue of c can grow
// before reaching sk/2. Zero means c is at the edge of decryptability
// or already past it; the two cases cannot be told apart from c.
func (s *DGHV) NoiseBudget(sk, c *big.Int) int {
	half := new(big.Int).Rsh(sk, 1)
	x := s.Noise(sk, c)

	return half.BitLen() - x.Abs(x).BitLen()
}
