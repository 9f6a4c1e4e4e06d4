// Copyright 2023 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package boxprune

import "math/bits"

// pairSlack is the minimum headroom, in uint32 words, kept past the last
// written entry: two words per pair means slack/2 pairs of spare room, so
// a full LANES=8 batch (worst case 8 hits) can always be emitted without a
// length check inside the hot loop.
const pairSlack = 16

// pairBuffer is the growable output buffer the kernel appends (idA, idB)
// pairs into, two uint32s at a time. Capacity is grown in batches rather
// than checked per pair: callers call reserveSlack once per SIMD group,
// then emitBatch can write up to a full group's worth of pairs without
// re-checking capacity.
type pairBuffer struct {
	data          []uint32
	end           int
	highWatermark int
}

func newPairBuffer(initialCapacity int) *pairBuffer {
	if initialCapacity < pairSlack {
		initialCapacity = pairSlack
	}
	return &pairBuffer{
		data:          make([]uint32, initialCapacity),
		highWatermark: initialCapacity - pairSlack,
	}
}

// reserveSlack grows the buffer if fewer than pairSlack words remain past
// end. Capacity doubles the current entry count plus 2*pairSlack, matching
// the original's GrowPairOutputBuffer.
func (p *pairBuffer) reserveSlack() {
	if p.end <= p.highWatermark {
		return
	}
	newCap := p.end*2 + 2*pairSlack
	newData := make([]uint32, newCap)
	copy(newData, p.data[:p.end])
	p.data = newData
	p.highWatermark = newCap - pairSlack
}

// emitBatch appends one (id0, remapBase[bit]) pair for every set bit of
// mask, in ascending bit order. Callers must have called reserveSlack
// since the last emitBatch with room for at least bits.OnesCount32(mask)
// pairs.
func (p *pairBuffer) emitBatch(id0 uint32, remapBase []uint32, mask uint32) {
	for mask != 0 {
		b := bits.TrailingZeros32(mask)
		p.data[p.end] = id0
		p.data[p.end+1] = remapBase[b]
		p.end += 2
		mask &= mask - 1
	}
}

// emitPair appends a single pair directly, for the scalar kernel path
// where hits aren't batched into a bitmask.
func (p *pairBuffer) emitPair(idA, idB uint32) {
	p.data[p.end] = idA
	p.data[p.end+1] = idB
	p.end += 2
}

// pairs returns the finished buffer as (idA, idB) pairs.
func (p *pairBuffer) pairs() [][2]uint32 {
	out := make([][2]uint32, 0, p.end/2)
	for i := 0; i < p.end; i += 2 {
		out = append(out, [2]uint32{p.data[i], p.data[i+1]})
	}
	return out
}
