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

package internal

import "math/big"

// CenteredMod calculates x mod m and moves the result from [0, m)
// to [-m/2, m/2) by subtracting m from residues greater than
// floor(m/2). For odd m the residue floor(m/2) itself stays positive.
func CenteredMod(x, m *big.Int) *big.Int {
	ret := new(big.Int).Mod(x, m)
	half := new(big.Int).Rsh(m, 1)
	if ret.Cmp(half) == 1 {
		ret.Sub(ret, m)
	}

	return ret
}
