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
	"crypto/rand"
	"io"
	"math/big"

	"github.com/fentec-project/toyfhe/internal"
	"github.com/fentec-project/toyfhe/sample"
	"github.com/pkg/errors"
)

// ErrInvalidPlaintext is returned when encrypting a value outside {0, 1}.
var ErrInvalidPlaintext = internal.InvalidPlaintext

// PubInfo is the diagnostic record returned by key generation.
// It only echoes the size parameters and is never needed for
// encryption or decryption.
type PubInfo struct {
	PBits  int
	QBits  int
	RBound int
}

// Encryption holds a fresh ciphertext. Noise is the noise term r
// drawn during encryption; it is only set when the scheme was
// configured with WithNoise and is never needed by later operations.
type Encryption struct {
	Cipher *big.Int
	Noise  *big.Int
}

// DGHV represents the toy DGHV scheme. An instance is immutable:
// WithRand and WithNoise return reconfigured copies.
type DGHV struct {
	Params *Params
	rand   io.Reader
	noise  bool
}

// NewDGHV configures a new instance of the scheme drawing its
// randomness from crypto/rand. The scheme keeps its own copy of
// params, so later changes to params do not affect it.
func NewDGHV(params *Params) *DGHV {
	prm := *params

	return &DGHV{
		Params: &prm,
		rand:   rand.Reader,
	}
}

// WithRand returns a copy of the scheme that draws its randomness
// from r, e.g. a sample.KeyedPRNG for reproducible runs. The reader
// needs to be safe for concurrent use if the scheme is.
func (s *DGHV) WithRand(r io.Reader) *DGHV {
	if r == nil {
		r = rand.Reader
	}
	return &DGHV{
		Params: s.Params,
		rand:   r,
		noise:  s.noise,
	}
}

// WithNoise returns a copy of the scheme that reports the noise
// term of every fresh encryption.
func (s *DGHV) WithNoise() *DGHV {
	return &DGHV{
		Params: s.Params,
		rand:   s.rand,
		noise:  true,
	}
}

// GenerateKeys generates a secret key p, an odd integer of
// exactly PBits bits, together with a diagnostic PubInfo record.
// It returns an error in case the key could not be sampled.
func (s *DGHV) GenerateKeys() (*big.Int, *PubInfo, error) {
	p, err := sample.NewOddBits(s.rand, s.Params.PBits).Sample()
	if err != nil {
		return nil, nil, errors.Wrap(err, "error while generating secret key")
	}

	return p, &PubInfo{
		PBits:  s.Params.PBits,
		QBits:  s.Params.QBits,
		RBound: s.Params.RBound,
	}, nil
}

// Encrypt encrypts bit m with the secret key sk as
// c = m + 2r + sk*q, where r is sampled from [-RBound, RBound]
// and q from [0, 2^QBits). It returns an error wrapping
// ErrInvalidPlaintext if m is not a bit.
func (s *DGHV) Encrypt(sk *big.Int, m int) (*Encryption, error) {
	if m != 0 && m != 1 {
		return nil, errors.Wrapf(ErrInvalidPlaintext, "cannot encrypt %d", m)
	}

	r, err := sample.NewSymmetric(s.rand, big.NewInt(int64(s.Params.RBound))).Sample()
	if err != nil {
		return nil, errors.Wrap(err, "error while sampling noise")
	}
	q, err := sample.NewUniformBits(s.rand, s.Params.QBits).Sample()
	if err != nil {
		return nil, errors.Wrap(err, "error while sampling multiplier")
	}

	// c = m + 2r + sk*q
	c := new(big.Int).Mul(sk, q)
	c.Add(c, new(big.Int).Lsh(r, 1))
	c.Add(c, big.NewInt(int64(m)))

	enc := &Encryption{Cipher: c}
	if s.noise {
		enc.Noise = r
	}

	return enc, nil
}

// Decrypt decrypts ciphertext c with the secret key sk. It reduces c
// modulo sk, centers the residue around 0 and returns its parity.
// The result is correct only while the accumulated |m + 2r| stays
// below sk/2; beyond that a wrong bit is returned without any error.
func (s *DGHV) Decrypt(sk, c *big.Int) int {
	x := internal.CenteredMod(c, sk)
	// Bit uses two's complement for negative x, matching x mod 2
	return int(x.Bit(0))
}

// Add homomorphically adds ciphertexts c1 and c2, giving an
// encryption of m1 XOR m2 with noise r1 + r2.
func (s *DGHV) Add(c1, c2 *big.Int) *big.Int {
	return new(big.Int).Add(c1, c2)
}

// Mul homomorphically multiplies ciphertexts c1 and c2, giving an
// encryption of m1 AND m2. The noise grows multiplicatively.
func (s *DGHV) Mul(c1, c2 *big.Int) *big.Int {
	return new(big.Int).Mul(c1, c2)
}
