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

// Package circuit builds arithmetic on encrypted integers out of the
// XOR, AND and NOT gates of package gate: a 1-bit full adder, n-bit
// ripple-carry addition and two's complement subtraction, and the
// comparators A >= B and A < B.
//
// Integers are bit-vectors (data.Vector) of ciphertexts, least
// significant bit first. Every AND multiplies noise, and the carry
// chain passes through two of them per bit, so long vectors need a
// correspondingly large secret key to decrypt correctly.
package circuit
