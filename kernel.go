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

// advanceSelf advances r until it sits one past the first slot whose MinX
// is no longer less than minLimit. Unlike a plain "while MinX[r] < limit"
// loop, this always performs exactly one comparison-then-advance per call
// even when the very first comparison is already false: that single
// unconditional step is what lets the self-sweep skip over the current
// box's own slot when MinX[r] catches up to it (MinX[r] == minLimit is not
// "< minLimit", so the loop would otherwise stop *at* r instead of past
// it, leaving the current box a candidate against itself). It is the
// portable restatement of the source's `while (ptr[r++] < limit);`, whose
// postfix increment fires once even on a false first check.
func advanceSelf(minX []int32, r int, minLimit int32) int {
	for {
		less := minX[r] < minLimit
		r++
		if !less {
			return r
		}
	}
}

// advanceCrossTies advances r while minX[r] < minLimit, landing at the
// first slot whose MinX is >= minLimit. Ties (MinX[r] == minLimit) are
// left as candidates for the caller's scan. Used by the A-anchored half
// of a bipartite sweep, where there is no "self" slot to skip.
func advanceCrossTies(minX []int32, r int, minLimit int32) int {
	for r < len(minX) && minX[r] < minLimit {
		r++
	}
	return r
}

// advanceCrossStrict advances r while minX[r] <= minLimit, landing at the
// first slot whose MinX is strictly greater than minLimit: ties are
// consumed, not left as candidates. Used by the B-anchored half of a
// bipartite sweep so that an A/B pair tied on MinX is only ever reported
// by the A-anchored half (advanceCrossTies), never by both.
func advanceCrossStrict(minX []int32, r int, minLimit int32) int {
	for r < len(minX) && minX[r] <= minLimit {
		r++
	}
	return r
}

// sweepSelf runs the complete-prune kernel (LANES=1 scalar form) over a
// single arena, emitting each overlapping pair exactly once.
func sweepSelf(a *arena, out *pairBuffer) {
	r := 0
	for i := 0; i < a.N; i++ {
		minLimit := a.MinX[i]
		maxLimit := a.MaxX[i]
		r = advanceSelf(a.MinX, r, minLimit)

		minYi, maxYi := a.MinY[i], a.MaxY[i]
		minZi, maxZi := a.MinZ[i], a.MaxZ[i]
		id0 := a.Remap[i]

		for j := r; a.MinX[j] <= maxLimit; j++ {
			if a.MaxY[j] >= minYi && a.MinY[j] <= maxYi &&
				a.MaxZ[j] >= minZi && a.MinZ[j] <= maxZi {
				out.reserveSlack()
				out.emitPair(id0, a.Remap[j])
			}
		}
	}
}

// sweepCrossAB scans anchor (A) against other (B), reporting every A
// candidate whose B window overlaps, including MinX ties.
func sweepCrossAB(anchorA, otherB *arena, out *pairBuffer) {
	r := 0
	for i := 0; i < anchorA.N; i++ {
		minLimit := anchorA.MinX[i]
		maxLimit := anchorA.MaxX[i]
		r = advanceCrossTies(otherB.MinX, r, minLimit)

		minYi, maxYi := anchorA.MinY[i], anchorA.MaxY[i]
		minZi, maxZi := anchorA.MinZ[i], anchorA.MaxZ[i]
		idA := anchorA.Remap[i]

		for j := r; j < otherB.NP && otherB.MinX[j] <= maxLimit; j++ {
			if otherB.MaxY[j] >= minYi && otherB.MinY[j] <= maxYi &&
				otherB.MaxZ[j] >= minZi && otherB.MinZ[j] <= maxZi {
				out.reserveSlack()
				out.emitPair(idA, otherB.Remap[j])
			}
		}
	}
}

// sweepCrossBA scans anchor (B) against other (A), reporting only A
// candidates whose MinX is strictly greater than B's, so pairs tied on
// MinX (already reported by sweepCrossAB) are never duplicated.
func sweepCrossBA(anchorB, otherA *arena, out *pairBuffer) {
	r := 0
	for i := 0; i < anchorB.N; i++ {
		minLimit := anchorB.MinX[i]
		maxLimit := anchorB.MaxX[i]
		r = advanceCrossStrict(otherA.MinX, r, minLimit)

		minYi, maxYi := anchorB.MinY[i], anchorB.MaxY[i]
		minZi, maxZi := anchorB.MinZ[i], anchorB.MaxZ[i]
		idB := anchorB.Remap[i]

		for j := r; j < otherA.NP && otherA.MinX[j] <= maxLimit; j++ {
			if otherA.MaxY[j] >= minYi && otherA.MinY[j] <= maxYi &&
				otherA.MaxZ[j] >= minZi && otherA.MinZ[j] <= maxZi {
				out.reserveSlack()
				out.emitPair(otherA.Remap[j], idB)
			}
		}
	}
}
