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

package gate_test

import (
	"math/big"
	"testing"

	"github.com/fentec-project/toyfhe/dghv"
	"github.com/fentec-project/toyfhe/gate"
	"github.com/fentec-project/toyfhe/sample"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBoolean(t *testing.T, seed string) *gate.Boolean {
	scheme := dghv.NewDGHV(dghv.DefaultParams()).WithRand(sample.NewKeyedPRNG([]byte(seed)))
	sk, _, err := scheme.GenerateKeys()
	if err != nil {
		t.Fatalf("Error during key generation: %v", err)
	}
	return gate.NewBoolean(scheme, sk)
}

func encrypt(t *testing.T, fb *gate.Boolean, m int) *big.Int {
	c, err := fb.EncryptBit(m)
	if err != nil {
		t.Fatalf("Error during encryption: %v", err)
	}
	return c
}

func TestBoolean_Gates(t *testing.T) {
	fb := newBoolean(t, "gates")

	for trial := 0; trial < 20; trial++ {
		for m1 := 0; m1 < 2; m1++ {
			c1 := encrypt(t, fb, m1)
			assert.Equal(t, m1, fb.DecryptBit(c1))

			not, err := fb.NOT(c1)
			require.NoError(t, err)
			assert.Equal(t, 1-m1, fb.DecryptBit(not), "NOT %d", m1)

			for m2 := 0; m2 < 2; m2++ {
				c2 := encrypt(t, fb, m2)
				assert.Equal(t, m1^m2, fb.DecryptBit(fb.XOR(c1, c2)), "%d XOR %d", m1, m2)
				assert.Equal(t, m1&m2, fb.DecryptBit(fb.AND(c1, c2)), "%d AND %d", m1, m2)
			}
		}
	}
}

func TestBoolean_OrFromXorAnd(t *testing.T) {
	fb := newBoolean(t, "or")

	for m1 := 0; m1 < 2; m1++ {
		for m2 := 0; m2 < 2; m2++ {
			x := encrypt(t, fb, m1)
			y := encrypt(t, fb, m2)
			or := fb.XOR(fb.XOR(x, y), fb.AND(x, y))
			assert.Equal(t, m1|m2, fb.DecryptBit(or), "%d OR %d", m1, m2)
		}
	}
}

func TestBoolean_NotAddsFreshNoise(t *testing.T) {
	params := dghv.DefaultParams()
	scheme := dghv.NewDGHV(params).WithRand(sample.NewKeyedPRNG([]byte("not noise")))
	sk, _, err := scheme.GenerateKeys()
	require.NoError(t, err)
	fb := gate.NewBoolean(scheme, sk)
	fresh := int64(2*params.RBound + 1)

	for i := 0; i < 50; i++ {
		c := encrypt(t, fb, i%2)
		not, err := fb.NOT(c)
		require.NoError(t, err)

		// NOT(c) - c is the fresh encryption of 1
		one := new(big.Int).Sub(not, c)
		assert.Equal(t, 1, scheme.Decrypt(sk, one))
		assert.True(t, new(big.Int).Abs(scheme.Noise(sk, one)).Int64() <= fresh)

		residue := new(big.Int).Abs(scheme.Noise(sk, not)).Int64()
		assert.True(t, residue <= 2*fresh, "residue %d exceeds two fresh ciphertexts", residue)
	}
}

func TestBoolean_EncryptInvalid(t *testing.T) {
	fb := newBoolean(t, "invalid")

	_, err := fb.EncryptBit(2)
	assert.Error(t, err)
	assert.Equal(t, dghv.ErrInvalidPlaintext, errors.Cause(err))
}
