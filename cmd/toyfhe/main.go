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

// Command toyfhe runs demonstrations of the toy DGHV scheme:
// encryption and homomorphic operations on single bits, a 4 bit
// ripple-carry adder, a 3 bit subtractor and comparator, and a noise
// growth profile.
//
// Usage:
//
//	toyfhe -demo=all
//	toyfhe -demo=adder -pbits=64 -seed=reproducible
//	toyfhe -demo=noise -depth=16 -trials=50
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/big"

	"github.com/fentec-project/toyfhe/circuit"
	"github.com/fentec-project/toyfhe/data"
	"github.com/fentec-project/toyfhe/dghv"
	"github.com/fentec-project/toyfhe/gate"
	"github.com/fentec-project/toyfhe/noise"
	"github.com/fentec-project/toyfhe/sample"
)

var (
	demo   = flag.String("demo", "all", "demo to run: basic, adder, compare, noise, all")
	seed   = flag.String("seed", "", "seed for reproducible randomness (default: crypto/rand)")
	lambda = flag.Int("lambda", 0, "override the security parameter")
	pBits  = flag.Int("pbits", 0, "override the secret key bit length")
	qBits  = flag.Int("qbits", 0, "override the multiplier bit length")
	rBound = flag.Int("rbound", -1, "override the noise bound")
	depth  = flag.Int("depth", 12, "multiplicative depth for the noise demo")
	trials = flag.Int("trials", 20, "trials per depth for the noise demo")
)

func main() {
	flag.Parse()

	var rnd io.Reader
	var prng *sample.KeyedPRNG
	if *seed != "" {
		prng = sample.NewKeyedPRNG([]byte(*seed))
		rnd = prng
	}

	demos := map[string]func(io.Reader) error{
		"basic":   demoBasic,
		"adder":   demoAdder,
		"compare": demoCompare,
		"noise":   demoNoise,
	}
	order := []string{"basic", "adder", "compare", "noise"}

	if *demo != "all" {
		if _, ok := demos[*demo]; !ok {
			log.Fatalf("Unknown demo %q", *demo)
		}
		order = []string{*demo}
	}

	for i, name := range order {
		fmt.Printf("\n------------ Running demo %d: %s ------------\n", i+1, name)
		// a seeded demo prints the same output alone or within -demo=all
		if prng != nil {
			prng.Reset()
		}
		if err := demos[name](rnd); err != nil {
			log.Fatalf("Demo %s failed: %v", name, err)
		}
	}
	fmt.Println("\n------------ Completed ------------")
}

// params applies the command line overrides to defaults.
func params(defaults *dghv.Params) (*dghv.Params, error) {
	p := *defaults
	if *lambda > 0 {
		p.Lambda = *lambda
	}
	if *pBits > 0 {
		p.PBits = *pBits
		p.PKSize = *pBits
	}
	if *qBits > 0 {
		p.QBits = *qBits
	}
	if *rBound >= 0 {
		p.RBound = *rBound
	}

	return dghv.NewParams(p.Lambda, p.PBits, p.QBits, p.RBound, p.PKSize)
}

func setup(defaults *dghv.Params, rnd io.Reader) (*dghv.DGHV, *big.Int, error) {
	prm, err := params(defaults)
	if err != nil {
		return nil, nil, err
	}
	scheme := dghv.NewDGHV(prm).WithRand(rnd).WithNoise()
	sk, info, err := scheme.GenerateKeys()
	if err != nil {
		return nil, nil, err
	}
	fmt.Printf("Secret key p = %v (%d bits, q %d bits, |r| <= %d)\n", sk, info.PBits, info.QBits, info.RBound)

	return scheme, sk, nil
}

func demoBasic(rnd io.Reader) error {
	scheme, sk, err := setup(dghv.DefaultParams(), rnd)
	if err != nil {
		return err
	}

	m1, m2 := 1, 1
	c1, err := scheme.Encrypt(sk, m1)
	if err != nil {
		return err
	}
	c2, err := scheme.Encrypt(sk, m2)
	if err != nil {
		return err
	}

	fmt.Printf("\nPlaintexts: m1 = %d, m2 = %d\n", m1, m2)
	fmt.Printf("Ciphertext c1 = %v (initial noise r1 = %v)\n", c1.Cipher, c1.Noise)
	fmt.Printf("Ciphertext c2 = %v (initial noise r2 = %v)\n", c2.Cipher, c2.Noise)
	fmt.Printf("\nDecrypt c1 -> %d\n", scheme.Decrypt(sk, c1.Cipher))
	fmt.Printf("Decrypt c2 -> %d\n", scheme.Decrypt(sk, c2.Cipher))

	sum := scheme.Add(c1.Cipher, c2.Cipher)
	fmt.Println("\nHomomorphic addition:")
	fmt.Printf("Expected (m1 + m2) mod 2 = %d\n", (m1+m2)%2)
	fmt.Printf("Decrypt(c1 + c2)         = %d\n", scheme.Decrypt(sk, sum))
	fmt.Printf("Estimated noise after add ~ %v\n", scheme.EstimateNoiseAfterAdd(c1.Noise, c2.Noise))
	fmt.Printf("Noise budget left        = %d bits\n", scheme.NoiseBudget(sk, sum))

	prod := scheme.Mul(c1.Cipher, c2.Cipher)
	fmt.Println("\nHomomorphic multiplication:")
	fmt.Printf("Expected (m1 * m2) mod 2 = %d\n", m1*m2)
	fmt.Printf("Decrypt(c1 * c2)         = %d\n", scheme.Decrypt(sk, prod))
	fmt.Printf("Estimated noise after mul ~ %v\n", scheme.EstimateNoiseAfterMul(c1.Noise, c2.Noise))
	fmt.Printf("Noise budget left        = %d bits\n", scheme.NoiseBudget(sk, prod))

	return nil
}

func newAdder(rnd io.Reader) (*circuit.Adder, *gate.Boolean, error) {
	scheme, sk, err := setup(dghv.CircuitParams(), rnd)
	if err != nil {
		return nil, nil, err
	}
	fb := gate.NewBoolean(scheme, sk)

	return circuit.NewAdder(fb), fb, nil
}

func encodePair(adder *circuit.Adder, x, y int64, n int) (data.Vector, data.Vector, error) {
	vs, err := adder.EncodeBatch([]*big.Int{big.NewInt(x), big.NewInt(y)}, n)
	if err != nil {
		return nil, nil, err
	}

	return vs[0], vs[1], nil
}

func demoAdder(rnd io.Reader) error {
	adder, fb, err := newAdder(rnd)
	if err != nil {
		return err
	}

	x, y, n := int64(5), int64(11), 4
	cx, cy, err := encodePair(adder, x, y, n)
	if err != nil {
		return err
	}

	sum, carry, err := adder.RippleAdd(cx, cy)
	if err != nil {
		return err
	}

	fmt.Printf("\nPlain A = %d, B = %d\n", x, y)
	fmt.Printf("A + B (plain)          = %d\n", x+y)
	fmt.Printf("Homomorphic A+B mod 2^%d = %v\n", n, adder.DecodeBits(sum))
	fmt.Printf("Carry out              = %d (expected 1 if A+B >= 2^%d)\n", fb.DecryptBit(carry), n)
	fmt.Printf("Sum bit sizes          = %v bits\n", sum.BitLens())

	return nil
}

func demoCompare(rnd io.Reader) error {
	adder, fb, err := newAdder(rnd)
	if err != nil {
		return err
	}

	n := 3
	mod := int64(1) << uint(n)
	pairs := [][2]int64{{0, 0}, {0, 1}, {1, 0}, {3, 2}, {2, 3}, {5, 1}, {7, 7}}

	for _, p := range pairs {
		cx, cy, err := encodePair(adder, p[0], p[1], n)
		if err != nil {
			return err
		}

		diff, carry, err := adder.RippleSub(cx, cy)
		if err != nil {
			return err
		}
		geq, err := adder.Geq(cx, cy)
		if err != nil {
			return err
		}

		expectGeq := 0
		if p[0] >= p[1] {
			expectGeq = 1
		}

		fmt.Printf("\nA = %d, B = %d (%d-bit)\n", p[0], p[1], n)
		fmt.Printf("A - B mod 2^%d : expected %d, got %v\n", n, ((p[0]-p[1])%mod+mod)%mod, adder.DecodeBits(diff))
		fmt.Printf("carry out      : %d (expected 1 if A >= B else 0)\n", fb.DecryptBit(carry))
		fmt.Printf("A >= B         : expected %d, got %d\n", expectGeq, fb.DecryptBit(geq))
	}

	return nil
}

func demoNoise(rnd io.Reader) error {
	scheme, sk, err := setup(dghv.CircuitParams(), rnd)
	if err != nil {
		return err
	}

	levels, err := noise.Profile(scheme, sk, *depth, *trials)
	if err != nil {
		return err
	}

	fmt.Printf("\n%5s %10s %10s %10s %10s\n", "depth", "mean bits", "median", "max bits", "failures")
	for _, l := range levels {
		fmt.Printf("%5d %10.2f %10.1f %10.0f %9.0f%%\n", l.Depth, l.MeanBits, l.MedianBits, l.MaxBits, 100*l.FailureRate)
	}

	if d := noise.FirstFailure(levels); d >= 0 {
		fmt.Printf("\nDecryption first failed at depth %d: the noise budget of a %d bit key is exhausted.\n", d, scheme.Params.PBits)
	} else {
		fmt.Printf("\nNo decryption failures up to depth %d.\n", *depth)
	}

	return nil
}
