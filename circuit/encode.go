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
	"sync"

	"github.com/fentec-project/toyfhe/data"
	"github.com/fentec-project/toyfhe/internal"
	"github.com/pkg/errors"
)

// ErrOutOfRange is returned when an integer does not fit in the
// requested number of bits.
var ErrOutOfRange = internal.OutOfRange

// EncodeBits encrypts the n lowest bits of x, least significant bit
// first. It returns an error wrapping ErrOutOfRange unless
// 0 <= x < 2^n.
func (a *Adder) EncodeBits(x *big.Int, n int) (data.Vector, error) {
	if n < 0 || x.Sign() < 0 || x.BitLen() > n {
		return nil, errors.Wrapf(ErrOutOfRange, "cannot encode %v in %d bits", x, n)
	}

	res := make(data.Vector, n)
	for i := 0; i < n; i++ {
		c, err := a.fb.EncryptBit(int(x.Bit(i)))
		if err != nil {
			return nil, errors.Wrapf(err, "error while encrypting bit %d", i)
		}
		res[i] = c
	}

	return res, nil
}

// DecodeBits decrypts a bit-vector, least significant bit first,
// and reassembles the unsigned integer it encodes.
func (a *Adder) DecodeBits(v data.Vector) *big.Int {
	res := new(big.Int)
	for i, c := range v {
		res.SetBit(res, i, uint(a.fb.DecryptBit(c)))
	}

	return res
}

// EncodeBatch encodes every value of xs in n bits, each in its own
// goroutine. The order in which randomness is drawn is unspecified,
// so a seeded scheme gives reproducible keys but not reproducible
// batch ciphertexts. The error of the first failing value is
// returned.
func (a *Adder) EncodeBatch(xs []*big.Int, n int) ([]data.Vector, error) {
	res := make([]data.Vector, len(xs))
	errs := make([]error, len(xs))

	var wg sync.WaitGroup
	for i := range xs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res[i], errs[i] = a.EncodeBits(xs[i], n)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, errors.Wrapf(err, "value %d", i)
		}
	}

	return res, nil
}
