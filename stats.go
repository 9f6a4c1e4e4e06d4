package boxprune

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// SceneCentroid returns the mean of every box's center point. A
// diagnostic for callers instrumenting a simulation (e.g. recentering a
// broad-phase's working volume); no invariant depends on it.
func SceneCentroid(boxes []AABB) (x, y, z float32) {
	n := len(boxes)
	if n == 0 {
		return 0, 0, 0
	}

	cx := make([]float32, n)
	cy := make([]float32, n)
	cz := make([]float32, n)
	for i, b := range boxes {
		cx[i] = (b.MinX + b.MaxX) * 0.5
		cy[i] = (b.MinY + b.MaxY) * 0.5
		cz[i] = (b.MinZ + b.MaxZ) * 0.5
	}

	sumX, sumY, sumZ := batchSumPoints(cx, cy, cz)
	inv := 1 / float32(n)
	return sumX * inv, sumY * inv, sumZ * inv
}

// batchSumPoints sums de-interleaved 3D points. Adapted from the
// teacher's SoA point-sum reduction.
func batchSumPoints[T hwy.Floats](xs, ys, zs []T) (sumX, sumY, sumZ T) {
	size := min(len(xs), len(ys), len(zs))

	vSumX := hwy.Zero[T]()
	vSumY := hwy.Zero[T]()
	vSumZ := hwy.Zero[T]()

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			vx := hwy.Load(xs[offset:])
			vy := hwy.Load(ys[offset:])
			vz := hwy.Load(zs[offset:])

			vSumX = hwy.Add(vSumX, vx)
			vSumY = hwy.Add(vSumY, vy)
			vSumZ = hwy.Add(vSumZ, vz)
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			vx := hwy.MaskLoad(mask, xs[offset:])
			vy := hwy.MaskLoad(mask, ys[offset:])
			vz := hwy.MaskLoad(mask, zs[offset:])

			vSumX = hwy.Add(vSumX, vx)
			vSumY = hwy.Add(vSumY, vy)
			vSumZ = hwy.Add(vSumZ, vz)
		},
	)

	return hwy.ReduceSum(vSumX), hwy.ReduceSum(vSumY), hwy.ReduceSum(vSumZ)
}
