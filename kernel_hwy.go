package boxprune

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"math/bits"

	"github.com/ajroetker/go-highway/hwy"
)

// sweepSelfWide is the SIMD-width form of sweepSelf: the running-pointer
// advance and the per-candidate MinX cutoff are identical to the scalar
// kernel (they are inherently sequential), but once a full SIMD-width
// block of candidates is known to lie entirely inside the X window, its Y
// and Z tests run as one batch. The lane width is whatever
// hwy.MaxLanes[float32] resolves to on the running target (4 for 128-bit,
// 8 for 256-bit), so this single function is both the "LANES=4" and
// "LANES=8" kernel the design calls for: only the dispatch target
// changes, never the code.
func sweepSelfWide(a *arena, out *pairBuffer) {
	lanes := hwy.MaxLanes[float32]()
	if lanes < 2 {
		sweepSelf(a, out)
		return
	}

	r := 0
	buf := make([]float32, lanes)
	one := hwy.Set(float32(1))
	zero := hwy.Zero[float32]()

	for i := 0; i < a.N; i++ {
		minLimit := a.MinX[i]
		maxLimit := a.MaxX[i]
		r = advanceSelf(a.MinX, r, minLimit)

		minYi := hwy.Set(a.MinY[i])
		maxYi := hwy.Set(a.MaxY[i])
		minZi := hwy.Set(a.MinZ[i])
		maxZi := hwy.Set(a.MaxZ[i])
		id0 := a.Remap[i]

		j := r
		for j+lanes <= a.NP && a.MinX[j+lanes-1] <= maxLimit {
			maskY1 := hwy.GreaterEqual(hwy.Load(a.MaxY[j:]), minYi)
			maskY2 := hwy.LessEqual(hwy.Load(a.MinY[j:]), maxYi)
			maskZ1 := hwy.GreaterEqual(hwy.Load(a.MaxZ[j:]), minZi)
			maskZ2 := hwy.LessEqual(hwy.Load(a.MinZ[j:]), maxZi)

			hit := hwy.Mul(
				hwy.Mul(hwy.IfThenElse(maskY1, one, zero), hwy.IfThenElse(maskY2, one, zero)),
				hwy.Mul(hwy.IfThenElse(maskZ1, one, zero), hwy.IfThenElse(maskZ2, one, zero)),
			)
			hwy.Store(hit, buf)

			var bits uint32
			for k := 0; k < lanes; k++ {
				if buf[k] != 0 {
					bits |= 1 << uint(k)
				}
			}
			if bits != 0 {
				out.reserveSlack()
				out.emitBatch(id0, a.Remap[j:], bits)
			}
			j += lanes
		}

		for ; a.MinX[j] <= maxLimit; j++ {
			if a.MaxY[j] >= a.MinY[i] && a.MinY[j] <= a.MaxY[i] &&
				a.MaxZ[j] >= a.MinZ[i] && a.MinZ[j] <= a.MaxZ[i] {
				out.reserveSlack()
				out.emitPair(id0, a.Remap[j])
			}
		}
	}
}

// sweepCrossABWide is the SIMD-width form of sweepCrossAB: same running
// pointer (tie-inclusive, since there is no "self" slot to skip on the
// anchor side), same Y/Z batch test as sweepSelfWide.
func sweepCrossABWide(anchorA, otherB *arena, out *pairBuffer) {
	lanes := hwy.MaxLanes[float32]()
	if lanes < 2 {
		sweepCrossAB(anchorA, otherB, out)
		return
	}

	r := 0
	buf := make([]float32, lanes)
	one := hwy.Set(float32(1))
	zero := hwy.Zero[float32]()

	for i := 0; i < anchorA.N; i++ {
		minLimit := anchorA.MinX[i]
		maxLimit := anchorA.MaxX[i]
		r = advanceCrossTies(otherB.MinX, r, minLimit)

		minYi := hwy.Set(anchorA.MinY[i])
		maxYi := hwy.Set(anchorA.MaxY[i])
		minZi := hwy.Set(anchorA.MinZ[i])
		maxZi := hwy.Set(anchorA.MaxZ[i])
		idA := anchorA.Remap[i]

		j := r
		for j+lanes <= otherB.NP && otherB.MinX[j+lanes-1] <= maxLimit {
			maskY1 := hwy.GreaterEqual(hwy.Load(otherB.MaxY[j:]), minYi)
			maskY2 := hwy.LessEqual(hwy.Load(otherB.MinY[j:]), maxYi)
			maskZ1 := hwy.GreaterEqual(hwy.Load(otherB.MaxZ[j:]), minZi)
			maskZ2 := hwy.LessEqual(hwy.Load(otherB.MinZ[j:]), maxZi)

			hit := hwy.Mul(
				hwy.Mul(hwy.IfThenElse(maskY1, one, zero), hwy.IfThenElse(maskY2, one, zero)),
				hwy.Mul(hwy.IfThenElse(maskZ1, one, zero), hwy.IfThenElse(maskZ2, one, zero)),
			)
			hwy.Store(hit, buf)

			var bits uint32
			for k := 0; k < lanes; k++ {
				if buf[k] != 0 {
					bits |= 1 << uint(k)
				}
			}
			if bits != 0 {
				out.reserveSlack()
				out.emitBatch(idA, otherB.Remap[j:], bits)
			}
			j += lanes
		}

		for ; j < otherB.NP && otherB.MinX[j] <= maxLimit; j++ {
			if otherB.MaxY[j] >= anchorA.MinY[i] && otherB.MinY[j] <= anchorA.MaxY[i] &&
				otherB.MaxZ[j] >= anchorA.MinZ[i] && otherB.MinZ[j] <= anchorA.MaxZ[i] {
				out.reserveSlack()
				out.emitPair(idA, otherB.Remap[j])
			}
		}
	}
}

// sweepCrossBAWide is the SIMD-width form of sweepCrossBA: anchored on B,
// scanning A, using the strict running-pointer advance so ties on MinX
// (already reported by sweepCrossABWide/sweepCrossAB) are never
// duplicated. The emitted pair order is (otherA index, anchorB index), to
// match sweepCrossBA's (A, B) convention.
func sweepCrossBAWide(anchorB, otherA *arena, out *pairBuffer) {
	lanes := hwy.MaxLanes[float32]()
	if lanes < 2 {
		sweepCrossBA(anchorB, otherA, out)
		return
	}

	r := 0
	buf := make([]float32, lanes)
	one := hwy.Set(float32(1))
	zero := hwy.Zero[float32]()

	for i := 0; i < anchorB.N; i++ {
		minLimit := anchorB.MinX[i]
		maxLimit := anchorB.MaxX[i]
		r = advanceCrossStrict(otherA.MinX, r, minLimit)

		minYi := hwy.Set(anchorB.MinY[i])
		maxYi := hwy.Set(anchorB.MaxY[i])
		minZi := hwy.Set(anchorB.MinZ[i])
		maxZi := hwy.Set(anchorB.MaxZ[i])
		idB := anchorB.Remap[i]

		j := r
		for j+lanes <= otherA.NP && otherA.MinX[j+lanes-1] <= maxLimit {
			maskY1 := hwy.GreaterEqual(hwy.Load(otherA.MaxY[j:]), minYi)
			maskY2 := hwy.LessEqual(hwy.Load(otherA.MinY[j:]), maxYi)
			maskZ1 := hwy.GreaterEqual(hwy.Load(otherA.MaxZ[j:]), minZi)
			maskZ2 := hwy.LessEqual(hwy.Load(otherA.MinZ[j:]), maxZi)

			hit := hwy.Mul(
				hwy.Mul(hwy.IfThenElse(maskY1, one, zero), hwy.IfThenElse(maskY2, one, zero)),
				hwy.Mul(hwy.IfThenElse(maskZ1, one, zero), hwy.IfThenElse(maskZ2, one, zero)),
			)
			hwy.Store(hit, buf)

			var hitBits uint32
			for k := 0; k < lanes; k++ {
				if buf[k] != 0 {
					hitBits |= 1 << uint(k)
				}
			}
			if hitBits != 0 {
				out.reserveSlack()
				// emitBatch writes (id0, remapBase[bit]) with the fixed
				// anchor first; here the anchor is B and the per-bit index
				// is the A side, so each pair is written as (A, B) here.
				for m := hitBits; m != 0; m &= m - 1 {
					b := bits.TrailingZeros32(m)
					out.emitPair(otherA.Remap[j+b], idB)
				}
			}
			j += lanes
		}

		for ; j < otherA.NP && otherA.MinX[j] <= maxLimit; j++ {
			if otherA.MaxY[j] >= anchorB.MinY[i] && otherA.MinY[j] <= anchorB.MaxY[i] &&
				otherA.MaxZ[j] >= anchorB.MinZ[i] && otherA.MinZ[j] <= anchorB.MaxZ[i] {
				out.reserveSlack()
				out.emitPair(otherA.Remap[j], idB)
			}
		}
	}
}
