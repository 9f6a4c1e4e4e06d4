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

import "math"

// arena is the structure-of-arrays layout the prune kernel sweeps: six
// parallel streams (encoded X min/max, raw Y/Z min/max) sharing one index,
// padded at the tail with sentinel boxes so the kernel's forward scan
// never needs an explicit bounds check against N.
//
// This replaces the original's single base pointer plus signed
// byte-offset addressing (one allocation, six interior pointers into it)
// with six ordinary slices. The original's trick existed to keep all six
// streams in one cache-friendly allocation on a language where that
// required pointer arithmetic; here the arena builder below allocates each
// stream with its own make, and the kernel reaches all six through the
// same slot index without any unsafe pointer games.
type arena struct {
	MinX, MaxX []int32
	MinY, MaxY []float32
	MinZ, MaxZ []float32
	Remap      []uint32
	N, NP      int
}

// paddedCount returns NP = round_up(N+8, 8), the padded slot count:
// enough slack that a LANES=8 SIMD group starting anywhere in [0,N) never
// reads past the end of the padding.
func paddedCount(n int) int {
	padded := n + 8
	return (padded + 7) &^ 7
}

// buildArena packs boxes, visited in the order given by ranks (typically
// the output of a Sorter over each box's MinX), into an arena of N real
// slots followed by NP-N sentinel slots.
func buildArena(boxes []AABB, ranks []uint32) *arena {
	n := len(ranks)
	np := paddedCount(n)

	a := &arena{
		MinX:  make([]int32, np),
		MaxX:  make([]int32, np),
		MinY:  make([]float32, np),
		MaxY:  make([]float32, np),
		MinZ:  make([]float32, np),
		MaxZ:  make([]float32, np),
		Remap: make([]uint32, np),
		N:     n,
		NP:    np,
	}

	rawMinX := make([]float32, n)
	rawMaxX := make([]float32, n)
	for i, rank := range ranks {
		b := boxes[rank]
		rawMinX[i] = b.MinX
		rawMaxX[i] = b.MaxX
		a.MinY[i] = b.MinY
		a.MaxY[i] = b.MaxY
		a.MinZ[i] = b.MinZ
		a.MaxZ[i] = b.MaxZ
		a.Remap[i] = rank
	}
	EncodeBatch(rawMinX, a.MinX[:n])
	EncodeBatch(rawMaxX, a.MaxX[:n])

	for i := n; i < np; i++ {
		a.MinX[i] = sentinelMinX
		a.MaxX[i] = sentinelMaxX
		a.MinY[i] = float32(math.Inf(1))
		a.MaxY[i] = float32(math.Inf(-1))
		a.MinZ[i] = float32(math.Inf(1))
		a.MaxZ[i] = float32(math.Inf(-1))
		a.Remap[i] = 0
	}

	return a
}
