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
	"fmt"
)

// Params represents parameters of the toy DGHV scheme.
type Params struct {
	Lambda int // conceptual security parameter, informational only
	PBits  int // bit length of the odd secret key p
	QBits  int // bit length of the multiplier q used in encryption
	RBound int // bound on the absolute value of the fresh noise r
	PKSize int // nominal size of a public key, informational only
}

// NewParams returns validated parameters of the scheme.
// All values need to be positive, except rBound which can be 0
// (noiseless encryption), and the secret key needs at least 2 bits.
func NewParams(lambda, pBits, qBits, rBound, pkSize int) (*Params, error) {
	if lambda < 1 {
		return nil, fmt.Errorf("security parameter should be positive")
	}
	if pBits < 2 {
		return nil, fmt.Errorf("secret key should have at least 2 bits")
	}
	if qBits < 1 {
		return nil, fmt.Errorf("multiplier bit length should be positive")
	}
	if rBound < 0 {
		return nil, fmt.Errorf("noise bound should be non-negative")
	}
	if pkSize < 1 {
		return nil, fmt.Errorf("public key size should be positive")
	}

	return &Params{
		Lambda: lambda,
		PBits:  pBits,
		QBits:  qBits,
		RBound: rBound,
		PKSize: pkSize,
	}, nil
}

// DefaultParams returns the reference parameters, leaving enough
// room for a handful of additions and multiplications of fresh
// ciphertexts.
func DefaultParams() *Params {
	return &Params{
		Lambda: 32,
		PBits:  32,
		QBits:  64,
		RBound: 8,
		PKSize: 32,
	}
}

// CircuitParams returns the smaller parameters used for the
// adder and comparator demonstrations. A 16 bit key leaves little
// noise budget, so deeper circuits start to decrypt incorrectly.
func CircuitParams() *Params {
	return &Params{
		Lambda: 16,
		PBits:  16,
		QBits:  32,
		RBound: 4,
		PKSize: 16,
	}
}
