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

// Sorter ranks a slice of primary-axis positions. Sort returns a
// permutation ranks such that, for the encoded key order,
// keys[ranks[0]] <= keys[ranks[1]] <= ... <= keys[ranks[len(keys)-1]].
//
// Implementations may keep internal scratch buffers across calls; callers
// that reuse a Sorter across frames of coherent data get that benefit for
// free.
type Sorter interface {
	Sort(keys []float32) []uint32
}

// RadixSorter is a 4-pass LSD radix sort over the signed encoded key
// (see key.go), grounded on the counting-sort histogram shape used
// throughout the pack for bucketed integer sorts. The final byte pass
// treats the sign bit specially (negative-key buckets ordered before
// non-negative ones), since the encoded key must be compared as a signed
// int32 rather than as a raw unsigned radix key.
type RadixSorter struct {
	encKeys  []int32
	encScr   []int32
	idx      []uint32
	idxScr   []uint32
}

func NewRadixSorter() *RadixSorter {
	return &RadixSorter{}
}

func (s *RadixSorter) ensureCap(n int) {
	if cap(s.encKeys) < n {
		s.encKeys = make([]int32, n)
		s.encScr = make([]int32, n)
		s.idx = make([]uint32, n)
		s.idxScr = make([]uint32, n)
	}
}

func (s *RadixSorter) Sort(keys []float32) []uint32 {
	n := len(keys)
	s.ensureCap(n)

	srcKeys, dstKeys := s.encKeys[:n], s.encScr[:n]
	srcIdx, dstIdx := s.idx[:n], s.idxScr[:n]

	for i, k := range keys {
		srcKeys[i] = EncodeKey(k)
		srcIdx[i] = uint32(i)
	}

	for shift := uint(0); shift < 24; shift += 8 {
		radixPass(srcKeys, srcIdx, dstKeys, dstIdx, shift)
		srcKeys, dstKeys = dstKeys, srcKeys
		srcIdx, dstIdx = dstIdx, srcIdx
	}
	radixPassSignedMSB(srcKeys, srcIdx, dstKeys, dstIdx)
	srcKeys, srcIdx = dstKeys, dstIdx

	result := make([]uint32, n)
	copy(result, srcIdx)
	return result
}

func radixPass(srcKeys []int32, srcIdx []uint32, dstKeys []int32, dstIdx []uint32, shift uint) {
	var count [256]int
	for _, k := range srcKeys {
		count[(uint32(k)>>shift)&0xFF]++
	}
	offset := 0
	for b := 0; b < 256; b++ {
		c := count[b]
		count[b] = offset
		offset += c
	}
	for i, k := range srcKeys {
		b := (uint32(k) >> shift) & 0xFF
		p := count[b]
		dstKeys[p] = k
		dstIdx[p] = srcIdx[i]
		count[b]++
	}
}

// radixPassSignedMSB buckets on the top byte (bits 24-31), which carries
// the sign bit of the encoded key: buckets 128-255 (negative) are placed
// before buckets 0-127 (non-negative) so the overall 4-pass sort produces
// signed-ascending order rather than unsigned-ascending order.
func radixPassSignedMSB(srcKeys []int32, srcIdx []uint32, dstKeys []int32, dstIdx []uint32) {
	var count [256]int
	for _, k := range srcKeys {
		count[(uint32(k)>>24)&0xFF]++
	}
	offset := 0
	for b := 128; b < 256; b++ {
		c := count[b]
		count[b] = offset
		offset += c
	}
	for b := 0; b < 128; b++ {
		c := count[b]
		count[b] = offset
		offset += c
	}
	for i, k := range srcKeys {
		b := (uint32(k) >> 24) & 0xFF
		p := count[b]
		dstKeys[p] = k
		dstIdx[p] = srcIdx[i]
		count[b]++
	}
}

// InsertionSorter sorts by plain insertion sort. Quadratic worst case, but
// near-linear and cache-friendly on the frame-to-frame coherent inputs a
// physics broad-phase typically sees, where few boxes change rank between
// calls.
type InsertionSorter struct{}

func (InsertionSorter) Sort(keys []float32) []uint32 {
	n := len(keys)
	ranks := make([]uint32, n)
	enc := make([]int32, n)
	for i, k := range keys {
		ranks[i] = uint32(i)
		enc[i] = EncodeKey(k)
	}
	for i := 1; i < n; i++ {
		k := enc[i]
		r := ranks[i]
		j := i - 1
		for j >= 0 && enc[j] > k {
			enc[j+1] = enc[j]
			ranks[j+1] = ranks[j]
			j--
		}
		enc[j+1] = k
		ranks[j+1] = r
	}
	return ranks
}
