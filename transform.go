package boxprune

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// TransformAABBs applies a 3x3 rotation matrix (row-major m00..m22) and a
// translation to the min and max corners of every box in place. Physics
// bodies are typically authored in local space; this is the batch
// world-space transform a broad-phase pass runs before pruning.
//
// The two corners are transformed independently and their components are
// not reordered afterwards, so the result has min <= max on every axis only
// when the matrix keeps the min corner componentwise below the max corner
// (the identity, positive diagonal scalings, axis permutations without
// sign flips). A rotation that flips an axis, such as 90 degrees about Z,
// yields MinX > MaxX, and no AABB is re-derived from the eight corners for
// a general rotation: this function transforms exactly the two corners
// given.
func TransformAABBs(boxes []AABB,
	m00, m01, m02 float32,
	m10, m11, m12 float32,
	m20, m21, m22 float32,
	tx, ty, tz float32,
) {
	n := len(boxes)
	if n == 0 {
		return
	}

	minX := make([]float32, n)
	minY := make([]float32, n)
	minZ := make([]float32, n)
	maxX := make([]float32, n)
	maxY := make([]float32, n)
	maxZ := make([]float32, n)
	for i, b := range boxes {
		minX[i], minY[i], minZ[i] = b.MinX, b.MinY, b.MinZ
		maxX[i], maxY[i], maxZ[i] = b.MaxX, b.MaxY, b.MaxZ
	}

	batchMatrixMul(m00, m01, m02, m10, m11, m12, m20, m21, m22, minX, minY, minZ, minX, minY, minZ)
	batchMatrixMul(m00, m01, m02, m10, m11, m12, m20, m21, m22, maxX, maxY, maxZ, maxX, maxY, maxZ)

	for i := range boxes {
		boxes[i].MinX, boxes[i].MinY, boxes[i].MinZ = minX[i]+tx, minY[i]+ty, minZ[i]+tz
		boxes[i].MaxX, boxes[i].MaxY, boxes[i].MaxZ = maxX[i]+tx, maxY[i]+ty, maxZ[i]+tz
	}
}

// batchMatrixMul applies DST = M * SRC to a structure-of-arrays vector
// batch. Adapted from the teacher's generic 3x3-matrix-times-SoA-vectors
// kernel: same broadcast-then-FMA shape, renamed out of the spherical
// coordinate domain it originated in.
func batchMatrixMul[T hwy.Floats](
	m00, m01, m02 T,
	m10, m11, m12 T,
	m20, m21, m22 T,
	srcX, srcY, srcZ []T,
	dstX, dstY, dstZ []T,
) {
	size := min(len(srcX), len(srcY), len(srcZ), len(dstX), len(dstY), len(dstZ))

	vM00, vM01, vM02 := hwy.Set(m00), hwy.Set(m01), hwy.Set(m02)
	vM10, vM11, vM12 := hwy.Set(m10), hwy.Set(m11), hwy.Set(m12)
	vM20, vM21, vM22 := hwy.Set(m20), hwy.Set(m21), hwy.Set(m22)

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			x := hwy.Load(srcX[offset:])
			y := hwy.Load(srcY[offset:])
			z := hwy.Load(srcZ[offset:])

			resX := hwy.FMA(z, vM02, hwy.FMA(y, vM01, hwy.Mul(x, vM00)))
			resY := hwy.FMA(z, vM12, hwy.FMA(y, vM11, hwy.Mul(x, vM10)))
			resZ := hwy.FMA(z, vM22, hwy.FMA(y, vM21, hwy.Mul(x, vM20)))

			hwy.Store(resX, dstX[offset:])
			hwy.Store(resY, dstY[offset:])
			hwy.Store(resZ, dstZ[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			x := hwy.MaskLoad(mask, srcX[offset:])
			y := hwy.MaskLoad(mask, srcY[offset:])
			z := hwy.MaskLoad(mask, srcZ[offset:])

			resX := hwy.FMA(z, vM02, hwy.FMA(y, vM01, hwy.Mul(x, vM00)))
			resY := hwy.FMA(z, vM12, hwy.FMA(y, vM11, hwy.Mul(x, vM10)))
			resZ := hwy.FMA(z, vM22, hwy.FMA(y, vM21, hwy.Mul(x, vM20)))

			hwy.MaskStore(mask, resX, dstX[offset:])
			hwy.MaskStore(mask, resY, dstY[offset:])
			hwy.MaskStore(mask, resZ, dstZ[offset:])
		},
	)
}
