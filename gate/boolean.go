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

// Package gate exposes Boolean gates over bits encrypted with the
// toy DGHV scheme. XOR, AND and NOT form the whole gate basis; there
// is no native OR.
package gate

import (
	"math/big"

	"github.com/fentec-project/toyfhe/dghv"
)

// Boolean binds a scheme to a secret key and evaluates logic gates
// on ciphertexts of single bits.
//
// Encryption uses the secret key directly, as the scheme has no
// public key.
type Boolean struct {
	Scheme *dghv.DGHV
	sk     *big.Int
}

// NewBoolean returns a gate evaluator for ciphertexts under sk.
func NewBoolean(scheme *dghv.DGHV, sk *big.Int) *Boolean {
	return &Boolean{
		Scheme: scheme,
		sk:     sk,
	}
}

// EncryptBit encrypts bit m.
func (b *Boolean) EncryptBit(m int) (*big.Int, error) {
	enc, err := b.Scheme.Encrypt(b.sk, m)
	if err != nil {
		return nil, err
	}

	return enc.Cipher, nil
}

// DecryptBit decrypts the ciphertext of a bit.
func (b *Boolean) DecryptBit(c *big.Int) int {
	return b.Scheme.Decrypt(b.sk, c)
}

// XOR returns an encryption of m1 XOR m2.
func (b *Boolean) XOR(c1, c2 *big.Int) *big.Int {
	return b.Scheme.Add(c1, c2)
}

// AND returns an encryption of m1 AND m2. It is the gate that
// limits circuit depth, as it multiplies the noise of its inputs.
func (b *Boolean) AND(c1, c2 *big.Int) *big.Int {
	return b.Scheme.Mul(c1, c2)
}

// NOT returns an encryption of NOT m as a fresh encryption of 1
// XORed with c. It is not noise-free: every call adds the noise of
// one fresh ciphertext.
func (b *Boolean) NOT(c *big.Int) (*big.Int, error) {
	one, err := b.EncryptBit(1)
	if err != nil {
		return nil, err
	}

	return b.XOR(one, c), nil
}
