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

import "github.com/ajroetker/go-highway/hwy"

// simdThreshold is the smallest input size for which the SIMD-width
// kernel is worth its setup cost; below it the scalar kernel runs
// directly. Purely a performance knob, not a correctness boundary: both
// paths must and do produce the same pair set (invariant 9).
const simdThreshold = 16

// CompletePrune returns every pair of indices into boxes whose AABBs
// overlap on all three axes, each reported exactly once.
func CompletePrune(boxes []AABB) [][2]uint32 {
	return completePruneWith(boxes, NewRadixSorter())
}

// CompletePruneWith is CompletePrune with an explicit, reusable Sorter.
// Reusing a Sorter across calls on frame-coherent data amortizes its
// scratch allocation.
func CompletePruneWith(boxes []AABB, sorter Sorter) [][2]uint32 {
	return completePruneWith(boxes, sorter)
}

func completePruneWith(boxes []AABB, sorter Sorter) [][2]uint32 {
	n := len(boxes)
	if n == 0 {
		return nil
	}

	keys := make([]float32, n)
	for i, b := range boxes {
		keys[i] = b.MinX
	}
	ranks := sorter.Sort(keys)

	a := buildArena(boxes, ranks)
	out := newPairBuffer(n * 2)

	if n >= simdThreshold && hwy.MaxLanes[float32]() >= 4 {
		sweepSelfWide(a, out)
	} else {
		sweepSelf(a, out)
	}

	return out.pairs()
}

// BipartitePrune returns every (a, b) index pair, a into boxesA and b into
// boxesB, whose AABBs overlap. Pairs within a single set are never
// reported.
func BipartitePrune(boxesA, boxesB []AABB) [][2]uint32 {
	return bipartitePruneWith(boxesA, boxesB, NewRadixSorter(), NewRadixSorter())
}

// BipartitePruneWith is BipartitePrune with explicit, reusable Sorters for
// each side.
func BipartitePruneWith(boxesA, boxesB []AABB, sorterA, sorterB Sorter) [][2]uint32 {
	return bipartitePruneWith(boxesA, boxesB, sorterA, sorterB)
}

func bipartitePruneWith(boxesA, boxesB []AABB, sorterA, sorterB Sorter) [][2]uint32 {
	nA, nB := len(boxesA), len(boxesB)
	if nA == 0 || nB == 0 {
		return nil
	}

	keysA := make([]float32, nA)
	for i, b := range boxesA {
		keysA[i] = b.MinX
	}
	keysB := make([]float32, nB)
	for i, b := range boxesB {
		keysB[i] = b.MinX
	}

	arenaA := buildArena(boxesA, sorterA.Sort(keysA))
	arenaB := buildArena(boxesB, sorterB.Sort(keysB))

	out := newPairBuffer((nA + nB) * 2)

	if nA+nB >= simdThreshold && hwy.MaxLanes[float32]() >= 4 {
		sweepCrossABWide(arenaA, arenaB, out)
		sweepCrossBAWide(arenaB, arenaA, out)
	} else {
		sweepCrossAB(arenaA, arenaB, out)
		sweepCrossBA(arenaB, arenaA, out)
	}

	return out.pairs()
}
