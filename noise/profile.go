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

// Package noise measures how ciphertext noise of the toy DGHV scheme
// grows with multiplicative depth and where decryption starts to
// fail.
package noise

import (
	"fmt"
	"math/big"

	"github.com/fentec-project/toyfhe/dghv"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

// Level summarizes the noise of ciphertexts after Depth
// multiplications, over all trials of a profile.
type Level struct {
	Depth       int
	MeanBits    float64 // mean bit length of the centered residue |m + 2r|
	MedianBits  float64
	MaxBits     float64
	FailureRate float64 // share of trials decrypting to a wrong bit
}

// Profile encrypts 1 and multiplies it with fresh encryptions of 1
// depth times, in each of the given number of trials. For every
// depth from 0 to depth it records the residue sizes and how often
// decryption no longer returned 1.
func Profile(scheme *dghv.DGHV, sk *big.Int, depth, trials int) ([]Level, error) {
	if depth < 0 {
		return nil, fmt.Errorf("depth should be non-negative")
	}
	if trials < 1 {
		return nil, fmt.Errorf("at least one trial is needed")
	}

	bits := make([]stats.Float64Data, depth+1)
	failures := make([]int, depth+1)

	for i := 0; i < trials; i++ {
		enc, err := scheme.Encrypt(sk, 1)
		if err != nil {
			return nil, errors.Wrapf(err, "trial %d", i)
		}
		c := enc.Cipher

		for d := 0; d <= depth; d++ {
			if d > 0 {
				fresh, err := scheme.Encrypt(sk, 1)
				if err != nil {
					return nil, errors.Wrapf(err, "trial %d, depth %d", i, d)
				}
				c = scheme.Mul(c, fresh.Cipher)
			}

			x := scheme.Noise(sk, c)
			bits[d] = append(bits[d], float64(x.Abs(x).BitLen()))
			if scheme.Decrypt(sk, c) != 1 {
				failures[d]++
			}
		}
	}

	levels := make([]Level, depth+1)
	for d := range levels {
		mean, err := stats.Mean(bits[d])
		if err != nil {
			return nil, errors.Wrap(err, "error while computing mean")
		}
		median, err := stats.Median(bits[d])
		if err != nil {
			return nil, errors.Wrap(err, "error while computing median")
		}
		max, err := stats.Max(bits[d])
		if err != nil {
			return nil, errors.Wrap(err, "error while computing maximum")
		}

		levels[d] = Level{
			Depth:       d,
			MeanBits:    mean,
			MedianBits:  median,
			MaxBits:     max,
			FailureRate: float64(failures[d]) / float64(trials),
		}
	}

	return levels, nil
}

// FirstFailure returns the smallest depth at which at least one
// trial decrypted incorrectly, or -1 if none did.
func FirstFailure(levels []Level) int {
	for _, l := range levels {
		if l.FailureRate > 0 {
			return l.Depth
		}
	}

	return -1
}
