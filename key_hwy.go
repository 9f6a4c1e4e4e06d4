package boxprune

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"unsafe"

	"github.com/ajroetker/go-highway/hwy"
)

// EncodeBatch fills dst[i] = EncodeKey(src[i]) for every i, using SIMD for
// the bit-twiddling step once the -0/+0 canonicalization has been applied
// per element. dst and src must have the same length.
func EncodeBatch(src []float32, dst []int32) {
	n := len(src)
	if n == 0 {
		return
	}
	if len(dst) != n {
		panic("boxprune: EncodeBatch: dst and src length mismatch")
	}

	// Canonicalize -0 to +0 one lane at a time; this is a plain float add,
	// not fast-math-sensitive, so no SIMD benefit and no barrier needed.
	canon := make([]float32, n)
	for i, f := range src {
		canon[i] = f + 0
	}

	// Reinterpret the canonicalized float32s as uint32 bit patterns with no
	// copy, then run the sign-fold as a batch integer op, following the
	// encode_base.go reinterpret-then-SIMD shape.
	bits := unsafe.Slice((*uint32)(unsafe.Pointer(&canon[0])), n)
	out := unsafe.Slice((*uint32)(unsafe.Pointer(&dst[0])), n)

	hwy.ProcessWithTail[uint32](n,
		func(offset int) {
			v := hwy.Load(bits[offset:])
			sign := hwy.ShiftRight(v, 31)
			toggle := hwy.Mul(sign, hwy.Set(uint32(0x7FFFFFFF)))
			hwy.Store(hwy.Xor(v, toggle), out[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[uint32](count)
			v := hwy.MaskLoad(mask, bits[offset:])
			sign := hwy.ShiftRight(v, 31)
			toggle := hwy.Mul(sign, hwy.Set(uint32(0x7FFFFFFF)))
			hwy.MaskStore(mask, hwy.Xor(v, toggle), out[offset:])
		},
	)
}
