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

// Package dghv implements a toy somewhat homomorphic encryption
// scheme over the integers in the spirit of van Dijk, Gentry, Halevi
// and Vaikuntanathan: "Fully Homomorphic Encryption over the Integers".
//
// A bit m is encrypted as c = m + 2r + pq, where the odd integer p is
// the secret key, r is a small noise term and q a large random
// multiplier. Adding ciphertexts adds the bits modulo 2 (XOR) and
// multiplying them multiplies the bits (AND). The noise grows with
// each operation and decryption silently returns a wrong bit once
// |m + 2r| reaches p/2; there is no bootstrapping.
//
// The scheme is didactic and not secure: the parameters are far too
// small and there is no public key. Encryption uses the secret key
// directly, a known deviation from the real DGHV construction.
package dghv
