package softf64

// Round returns the nearest integer to f, rounding ties to even.
//
// Special cases are:
//
//	Round(±0) = ±0
//	Round(±Inf) = ±Inf
//	Round(NaN) = NaN
func Round(f float64) float64 {
	v := f64_to_bits(f)
	e := f64_exp(v)
	switch {
	case e < f64_BIAS-1:
		// abs(f) < 0.5: signed zero.
		v &= b63

	case e == f64_BIAS-1:
		// 0.5 <= abs(f) < 1. The result is one with the sign of f,
		// except for exactly 0.5, which goes to the even neighbour (zero).
		nz := ((v & m52) + m52) >> 52
		v = (v & b63) | (f64_UVONE & -nz)

	case e < f64_BIAS+f64_SHIFT:
		// There are 52-e fractional bits. We add half a unit minus one
		// ulp, plus the lowest integral bit: a tie carries into the
		// integral part only if that part is odd. Fractional bits are
		// then cleared. A carry out of the mantissa correctly bumps the
		// exponent.
		e -= f64_BIAS
		v += ursh(m51+(ursh(v, f64_SHIFT-e)&1), e)
		v &^= ursh(m52, e)
	}

	// Other values (abs(f) >= 2^52, infinities and NaNs) are already
	// integral.
	return f64_from_bits(v)
}
