package softf64

import (
	"math"
)

// Get the 64-bit representation of a value. Every bit is preserved,
// including the sign of zero and NaN payloads.
func f64_to_bits(x float64) uint64 {
	return math.Float64bits(x)
}

// Make a value from its 64-bit representation.
func f64_from_bits(v uint64) float64 {
	return math.Float64frombits(v)
}

// Get the biased exponent field (0 to 2047).
func f64_exp(v uint64) uint32 {
	return uint32(v>>f64_SHIFT) & f64_MASK
}

// NaN returns an IEEE 754 "not-a-number" value. Any value with an
// all-ones exponent and a non-zero mantissa is a NaN; this function
// always returns the same representative (0x7FF8000000000001).
func NaN() float64 {
	return f64_from_bits(f64_UVNAN)
}

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf(sign int) float64 {
	if sign >= 0 {
		return f64_from_bits(f64_UVINF)
	}
	return f64_from_bits(f64_UVNEGINF)
}

// IsNaN reports whether f is a NaN.
func IsNaN(f float64) bool {
	// IEEE 754 says that only NaNs satisfy f != f.
	return f != f
}

// IsInf reports whether f is an infinity, according to sign.
// If sign > 0, IsInf reports whether f is positive infinity.
// If sign < 0, IsInf reports whether f is negative infinity.
// If sign == 0, IsInf reports whether f is either infinity.
func IsInf(f float64, sign int) bool {
	// Compare against the largest finite value rather than matching the
	// infinity patterns.
	return sign >= 0 && f > math.MaxFloat64 || sign <= 0 && f < -math.MaxFloat64
}

// Count of leading zeros in a 64-bit non-zero word. The sequence of
// operations does not depend on the value of x.
func lzcnt_nonzero(x uint64) uint32 {
	// First step: if x >= 2^32, then set bit 5 in result, and shift x by
	// 32 bits; otherwise, keep it unchanged.
	y5 := x >> 32
	m5 := uint32((y5 - 1) >> 32)
	r := m5 & 0x20
	x4 := uint32(y5) | (m5 & uint32(x))

	// Same process for bits 4 to 1 of r, keeping to uint32.
	y4 := x4 >> 16
	m4 := (y4 - 1) >> 16
	r |= m4 & 0x10
	x3 := y4 | (m4 & x4)

	y3 := x3 >> 8
	m3 := (y3 - 1) >> 8
	r |= m3 & 0x08
	x2 := y3 | (m3 & x3)

	y2 := x2 >> 4
	m2 := (y2 - 1) >> 4
	r |= m2 & 0x04
	x1 := y2 | (m2 & x2)

	y1 := x1 >> 2
	m1 := (y1 - 1) >> 2
	r |= m1 & 0x02
	x0 := y1 | (m1 & x1)

	// x0 is now 1, 2 or 3; only its bit 1 matters.
	return r + 1 - (x0 >> 1)
}
