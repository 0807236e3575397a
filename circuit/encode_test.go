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

package circuit_test

import (
	"math/big"
	"testing"

	"github.com/fentec-project/toyfhe/circuit"
	"github.com/fentec-project/toyfhe/dghv"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdder_EncodeDecode(t *testing.T) {
	adder, _ := newAdder(t, dghv.DefaultParams(), "encode")

	for n := 0; n <= 6; n++ {
		for x := uint64(0); x < 1<<uint(n); x++ {
			v := encode(t, adder, x, n)
			assert.Len(t, v, n)
			assert.Equal(t, x, adder.DecodeBits(v).Uint64())
		}
	}

	// wider than a machine word
	x, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	v, err := adder.EncodeBits(x, 100)
	require.NoError(t, err)
	assert.Equal(t, 0, x.Cmp(adder.DecodeBits(v)))
}

func TestAdder_EncodeOutOfRange(t *testing.T) {
	adder, _ := newAdder(t, dghv.DefaultParams(), "out of range")

	for _, n := range []int{0, 1, 3, 8} {
		_, err := adder.EncodeBits(new(big.Int).Lsh(big.NewInt(1), uint(n)), n)
		assert.Error(t, err)
		assert.Equal(t, circuit.ErrOutOfRange, errors.Cause(err))
	}

	_, err := adder.EncodeBits(big.NewInt(-1), 4)
	assert.Equal(t, circuit.ErrOutOfRange, errors.Cause(err))
	_, err = adder.EncodeBits(big.NewInt(0), -1)
	assert.Equal(t, circuit.ErrOutOfRange, errors.Cause(err))
}

func TestAdder_EncodeBatch(t *testing.T) {
	adder, _ := newAdder(t, dghv.DefaultParams(), "batch")

	xs := make([]*big.Int, 32)
	for i := range xs {
		xs[i] = big.NewInt(int64(i * 7))
	}
	vs, err := adder.EncodeBatch(xs, 8)
	if err != nil {
		t.Fatalf("Error during batch encoding: %v", err)
	}

	require.Len(t, vs, len(xs))
	for i, v := range vs {
		assert.Equal(t, int64(i*7), adder.DecodeBits(v).Int64())
	}

	xs[5] = big.NewInt(256)
	_, err = adder.EncodeBatch(xs, 8)
	assert.Equal(t, circuit.ErrOutOfRange, errors.Cause(err))
}
