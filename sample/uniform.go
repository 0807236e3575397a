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

package sample

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/pkg/errors"
)

// UniformRange samples random values from the interval [min, max).
type UniformRange struct {
	min  *big.Int
	max  *big.Int
	rand io.Reader
}

// NewUniformRange returns an instance of the UniformRange sampler.
// It accepts a source of randomness and lower and upper bounds
// on the sampled values.
func NewUniformRange(r io.Reader, min, max *big.Int) *UniformRange {
	return &UniformRange{
		min:  new(big.Int).Set(min),
		max:  new(big.Int).Set(max),
		rand: reader(r),
	}
}

// Sample samples random values from the interval [min, max).
func (u *UniformRange) Sample() (*big.Int, error) {
	width := new(big.Int).Sub(u.max, u.min)
	if width.Sign() < 1 {
		return nil, fmt.Errorf("upper bound on samples should be greater than lower bound")
	}

	x, err := rand.Int(u.rand, width)
	if err != nil {
		return nil, errors.Wrap(err, "error while sampling")
	}

	return x.Add(x, u.min), nil
}

// NewUniform returns an instance of the UniformRange sampler
// that samples from the interval [0, max).
func NewUniform(r io.Reader, max *big.Int) *UniformRange {
	return NewUniformRange(r, big.NewInt(0), max)
}

// NewSymmetric returns an instance of the UniformRange sampler
// that samples from the closed interval [-bound, bound].
// A bound of 0 always yields 0.
func NewSymmetric(r io.Reader, bound *big.Int) *UniformRange {
	min := new(big.Int).Neg(bound)
	max := new(big.Int).Add(bound, big.NewInt(1))

	return NewUniformRange(r, min, max)
}

// UniformBits samples random values from the interval [0, 2^bitLen).
// No bit of the result is forced.
type UniformBits struct {
	bitLen int
	rand   io.Reader
}

// NewUniformBits returns an instance of the UniformBits sampler.
func NewUniformBits(r io.Reader, bitLen int) *UniformBits {
	return &UniformBits{
		bitLen: bitLen,
		rand:   reader(r),
	}
}

// Sample samples a random value with at most bitLen bits.
func (u *UniformBits) Sample() (*big.Int, error) {
	if u.bitLen < 0 {
		return nil, fmt.Errorf("bit length should be non-negative")
	}

	max := new(big.Int).Lsh(big.NewInt(1), uint(u.bitLen))
	x, err := rand.Int(u.rand, max)
	if err != nil {
		return nil, errors.Wrap(err, "error while sampling")
	}

	return x, nil
}

// OddBits samples random odd values with exactly bitLen bits,
// i.e. from [2^(bitLen-1), 2^bitLen) with the lowest bit set.
type OddBits struct {
	UniformBits
}

// NewOddBits returns an instance of the OddBits sampler.
func NewOddBits(r io.Reader, bitLen int) *OddBits {
	return &OddBits{
		UniformBits: UniformBits{
			bitLen: bitLen,
			rand:   reader(r),
		},
	}
}

// Sample samples a random odd value of exactly bitLen bits.
// The most significant bit is forced to 1 and an even value
// is made odd by adding 1, which can never carry into bit bitLen.
func (o *OddBits) Sample() (*big.Int, error) {
	if o.bitLen < 1 {
		return nil, fmt.Errorf("bit length of an odd value should be at least 1")
	}

	x, err := o.UniformBits.Sample()
	if err != nil {
		return nil, err
	}

	x.SetBit(x, o.bitLen-1, 1)
	if x.Bit(0) == 0 {
		x.Add(x, big.NewInt(1))
	}

	return x, nil
}
