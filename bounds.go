package boxprune

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// BatchMinMax returns the minimum and maximum of data. Adapted from the
// teacher's generic batch min/max reduction, used below to cover the
// float32 streams of an arena's bounds.
func BatchMinMax[T hwy.Floats](data []T) (minVal, maxVal T) {
	if len(data) == 0 {
		return 0, 0
	}

	initial := data[0]
	vMin := hwy.Set(initial)
	vMax := hwy.Set(initial)

	hwy.ProcessWithTail[T](len(data),
		func(offset int) {
			v := hwy.Load(data[offset:])
			vMin = hwy.Min(vMin, v)
			vMax = hwy.Max(vMax, v)
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			v := hwy.MaskLoad(mask, data[offset:])
			vMinSafe := hwy.IfThenElse(mask, v, vMin)
			vMaxSafe := hwy.IfThenElse(mask, v, vMax)
			vMin = hwy.Min(vMin, vMinSafe)
			vMax = hwy.Max(vMax, vMaxSafe)
		},
	)

	return hwy.ReduceMin(vMin), hwy.ReduceMax(vMax)
}

// Bounds reports the global min/max of every stream in the arena's real
// (non-padding) region: encoded X keys plus raw Y/Z. Exposed so a caller
// can assert no real box's encoded X range reaches the padding sentinels
// (the sentinel invariant), and as a general diagnostic.
func Bounds(a *arena) (minX, maxX int32, minY, maxY, minZ, maxZ float32) {
	if a.N == 0 {
		return 0, 0, 0, 0, 0, 0
	}
	minX = minInt32(a.MinX[:a.N])
	maxX = maxInt32(a.MaxX[:a.N])
	minY, _ = BatchMinMax(a.MinY[:a.N])
	_, maxY = BatchMinMax(a.MaxY[:a.N])
	minZ, _ = BatchMinMax(a.MinZ[:a.N])
	_, maxZ = BatchMinMax(a.MaxZ[:a.N])
	return
}

func minInt32(xs []int32) int32 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

func maxInt32(xs []int32) int32 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

// validateArena panics if any real box's encoded MinX/MaxX reaches the
// sentinel values reserved for padding, which would let a real box be
// mistaken for padding by the kernel's forward scan.
func validateArena(a *arena) {
	if a.N == 0 {
		return
	}
	minX, maxX, _, _, _, _ := Bounds(a)
	if maxX >= sentinelMinX {
		panic("boxprune: encoded MinX collides with padding sentinel")
	}
	if minX <= sentinelMaxX {
		panic("boxprune: encoded MaxX collides with padding sentinel")
	}
}
