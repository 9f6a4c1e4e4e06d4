package boxprune

import "math"

// Encode maps a float32 to a uint32 such that comparing the encoded values
// as signed int32 matches the IEEE-754 order of the inputs (ignoring NaN,
// which callers must not pass). -0 and +0 encode identically.
//
// The result must be compared as a *signed* int32, not as an unsigned
// value: positive floats keep their raw bit pattern (sign bit clear, so
// signed and unsigned agree), but negative floats are folded through
// s ^ 0x7FFFFFFF, which only produces a monotone order with the rest of
// the range under two's-complement (signed) comparison. Arena.go and
// kernel.go both rely on this; see sort.go's radix pass for the
// corresponding signed final byte.
func Encode(f float32) uint32 {
	// f + 0 canonicalizes -0 to +0 under IEEE-754 round-to-nearest; Go
	// performs no fast-math reassociation, so this is safe without any
	// compiler-barrier trick.
	bits := math.Float32bits(f + 0)
	sign := bits >> 31
	toggle := sign * 0x7FFFFFFF
	return bits ^ toggle
}

// EncodeKey is Encode reinterpreted as the signed comparison key actually
// used by the sorter and the arena.
func EncodeKey(f float32) int32 {
	return int32(Encode(f))
}

// sentinelMinX and sentinelMaxX are the padding-slot X keys used by the
// arena: sentinelMinX is the largest possible signed key so padding always
// sorts after every real box, and sentinelMaxX is the smallest possible
// signed key so a padding slot's [min,max] range is degenerate (min > max)
// and never overlaps anything.
const (
	sentinelMinX int32 = math.MaxInt32
	sentinelMaxX int32 = math.MinInt32
)
