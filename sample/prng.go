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

package sample

import (
	"encoding/binary"
	"sync"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/salsa20"
)

// blocksPerRefill is the number of 64 byte salsa20 blocks
// generated each time the internal buffer runs empty.
const blocksPerRefill = 16

// KeyedPRNG is a deterministic source of pseudo-random bytes.
// The salsa20 key is derived from a seed with BLAKE2b-256 and the
// keystream is generated under an incrementing 8 byte nonce, so two
// instances created with the same seed produce the same stream.
//
// KeyedPRNG is safe for concurrent use, but the stream is only
// reproducible when reads happen in the same order.
type KeyedPRNG struct {
	mutex   sync.Mutex
	key     [32]byte
	counter uint64
	buf     []byte
}

// NewKeyedPRNG returns a KeyedPRNG seeded with seed.
func NewKeyedPRNG(seed []byte) *KeyedPRNG {
	return &KeyedPRNG{
		key: blake2b.Sum256(seed),
	}
}

// Read fills out with the next len(out) bytes of the stream.
// It never fails.
func (p *KeyedPRNG) Read(out []byte) (int, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	n := 0
	for n < len(out) {
		if len(p.buf) == 0 {
			p.refill()
		}
		c := copy(out[n:], p.buf)
		p.buf = p.buf[c:]
		n += c
	}

	return n, nil
}

// Reset rewinds the stream to its beginning.
func (p *KeyedPRNG) Reset() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.counter = 0
	p.buf = nil
}

func (p *KeyedPRNG) refill() {
	nonce := make([]byte, 8)
	binary.LittleEndian.PutUint64(nonce, p.counter)
	p.counter++

	block := make([]byte, 64*blocksPerRefill) // input is initialized to zeros
	salsa20.XORKeyStream(block, block, nonce, &p.key)
	p.buf = block
}
