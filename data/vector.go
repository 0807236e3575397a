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

package data

import (
	"math/big"

	"github.com/fentec-project/toyfhe/internal"
	"github.com/pkg/errors"
)

// Vector wraps a slice of *big.Int elements. When used as a
// bit-vector, element i holds the ciphertext of bit i (LSB first)
// and the length n fixes the modulus 2^n of any arithmetic on it.
type Vector []*big.Int

// CheckLen checks whether vectors v and other have the same
// number of elements. It returns an error wrapping
// internal.LengthMismatch otherwise.
func (v Vector) CheckLen(other Vector) error {
	if len(v) != len(other) {
		return errors.Wrapf(internal.LengthMismatch, "lengths %d and %d", len(v), len(other))
	}

	return nil
}

// BitLens returns the bit lengths of the vector's elements,
// which for ciphertexts tracks their growth under evaluation.
func (v Vector) BitLens() []int {
	res := make([]int, len(v))
	for i, vi := range v {
		res[i] = vi.BitLen()
	}

	return res
}
