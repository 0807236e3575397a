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

	"github.com/fentec-project/toyfhe/data"
	"github.com/fentec-project/toyfhe/gate"
	"github.com/fentec-project/toyfhe/internal"
	"github.com/pkg/errors"
)

// ErrLengthMismatch is returned when the operands of a bit-vector
// operation have different lengths.
var ErrLengthMismatch = internal.LengthMismatch

// Adder evaluates adders, subtractors and comparators on
// bit-vectors of ciphertexts.
type Adder struct {
	fb *gate.Boolean
}

// NewAdder returns an Adder evaluating its circuits with gates fb.
func NewAdder(fb *gate.Boolean) *Adder {
	return &Adder{fb: fb}
}

// FullAdder adds bits a, b and carry in under encryption. It returns
// encryptions of a XOR b XOR cin and of the majority of the three.
//
// The carry is (a AND b) OR (cin AND (a XOR b)) where OR(x, y) is
// computed as (x XOR y) XOR (x AND y), since there is no OR gate.
func (a *Adder) FullAdder(x, y, cin *big.Int) (sum, cout *big.Int) {
	t := a.fb.XOR(x, y)
	sum = a.fb.XOR(t, cin)

	xy := a.fb.AND(x, y)
	ct := a.fb.AND(cin, t)
	cout = a.fb.XOR(a.fb.XOR(xy, ct), a.fb.AND(xy, ct))

	return sum, cout
}

// RippleAdd computes (A + B) mod 2^n for n-bit vectors A and B. It
// returns the n sum bits and the final carry, which encrypts 1 iff
// A + B >= 2^n. An error wrapping ErrLengthMismatch is returned
// for vectors of different lengths.
func (a *Adder) RippleAdd(x, y data.Vector) (data.Vector, *big.Int, error) {
	if err := x.CheckLen(y); err != nil {
		return nil, nil, err
	}

	carry, err := a.fb.EncryptBit(0)
	if err != nil {
		return nil, nil, errors.Wrap(err, "error while encrypting carry")
	}

	sum, carry := a.ripple(x, y, carry)
	return sum, carry, nil
}

// RippleSub computes (A - B) mod 2^n for n-bit vectors A and B as
// A + NOT(B) + 1. The final carry encrypts the absence of a borrow:
// 1 iff A >= B. An error wrapping ErrLengthMismatch is returned
// for vectors of different lengths.
func (a *Adder) RippleSub(x, y data.Vector) (data.Vector, *big.Int, error) {
	if err := x.CheckLen(y); err != nil {
		return nil, nil, err
	}

	yNot := make(data.Vector, len(y))
	for i, yi := range y {
		c, err := a.fb.NOT(yi)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "error while negating bit %d", i)
		}
		yNot[i] = c
	}

	// the +1 of two's complement enters as the initial carry
	carry, err := a.fb.EncryptBit(1)
	if err != nil {
		return nil, nil, errors.Wrap(err, "error while encrypting carry")
	}

	diff, carry := a.ripple(x, yNot, carry)
	return diff, carry, nil
}

// ripple chains full adders from the least to the most significant
// bit, starting with carry.
func (a *Adder) ripple(x, y data.Vector, carry *big.Int) (data.Vector, *big.Int) {
	res := make(data.Vector, len(x))
	for i := range x {
		res[i], carry = a.FullAdder(x[i], y[i], carry)
	}

	return res, carry
}
