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

package noise_test

import (
	"testing"

	"github.com/fentec-project/toyfhe/dghv"
	"github.com/fentec-project/toyfhe/noise"
	"github.com/fentec-project/toyfhe/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile(t *testing.T) {
	params := dghv.CircuitParams()
	scheme := dghv.NewDGHV(params).WithRand(sample.NewKeyedPRNG([]byte("profile")))
	sk, _, err := scheme.GenerateKeys()
	if err != nil {
		t.Fatalf("Error during key generation: %v", err)
	}

	depth := 40
	levels, err := noise.Profile(scheme, sk, depth, 20)
	if err != nil {
		t.Fatalf("Error during profiling: %v", err)
	}
	require.Len(t, levels, depth+1)

	// fresh ciphertexts have |1 + 2r| <= 2*RBound + 1 = 9
	assert.Equal(t, 0, levels[0].Depth)
	assert.Equal(t, 0.0, levels[0].FailureRate)
	assert.True(t, levels[0].MaxBits <= 4)
	assert.True(t, levels[0].MeanBits <= levels[0].MaxBits)

	// a product of 40 fresh residues is far beyond a 16 bit key
	first := noise.FirstFailure(levels)
	assert.True(t, first > 0, "decryption should eventually fail")
	assert.True(t, levels[depth].FailureRate > 0)
	for _, l := range levels {
		assert.True(t, l.MaxBits <= float64(params.PBits), "centered residue cannot exceed the key")
	}
}

func TestProfile_WideKey(t *testing.T) {
	params, err := dghv.NewParams(64, 256, 64, 4, 64)
	require.NoError(t, err)
	scheme := dghv.NewDGHV(params).WithRand(sample.NewKeyedPRNG([]byte("wide")))
	sk, _, err := scheme.GenerateKeys()
	require.NoError(t, err)

	// at most 4 bits per level, 20 levels stay far below 255 bits
	levels, err := noise.Profile(scheme, sk, 20, 5)
	require.NoError(t, err)
	assert.Equal(t, -1, noise.FirstFailure(levels))
	assert.True(t, levels[20].MeanBits >= levels[0].MeanBits)
}

func TestProfile_InvalidArguments(t *testing.T) {
	scheme := dghv.NewDGHV(dghv.DefaultParams())
	sk, _, err := scheme.GenerateKeys()
	require.NoError(t, err)

	_, err = noise.Profile(scheme, sk, -1, 5)
	assert.Error(t, err)
	_, err = noise.Profile(scheme, sk, 5, 0)
	assert.Error(t, err)
}
