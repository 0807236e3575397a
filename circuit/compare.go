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

package circuit

import (
	"math/big"

	"github.com/fentec-project/toyfhe/data"
)

// Geq returns an encryption of 1 iff A >= B, read off the final
// carry of RippleSub(A, B).
func (a *Adder) Geq(x, y data.Vector) (*big.Int, error) {
	_, carry, err := a.RippleSub(x, y)
	if err != nil {
		return nil, err
	}

	return carry, nil
}

// Lt returns an encryption of 1 iff A < B, as NOT(Geq(A, B)).
func (a *Adder) Lt(x, y data.Vector) (*big.Int, error) {
	geq, err := a.Geq(x, y)
	if err != nil {
		return nil, err
	}

	return a.fb.NOT(geq)
}
