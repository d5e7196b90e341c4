package softf64

// Modf returns integer and fractional floating-point numbers that sum
// to f. The integer part is f truncated toward zero; both values have
// the same sign as f (the sign of a zero is preserved).
//
// Special cases are:
//
//	Modf(±Inf) = ±Inf, NaN
//	Modf(NaN) = NaN, NaN
func Modf(f float64) (num float64, frac float64) {
	// Work on the absolute value, then put the sign bit back on both
	// parts.
	v := f64_to_bits(f)
	s := v & b63
	num, frac = modf_abs(f64_from_bits(v & m63))
	num = f64_from_bits(f64_to_bits(num) | s)
	frac = f64_from_bits(f64_to_bits(frac) | s)
	return
}

// Split a non-negative value (or NaN, or +Inf).
func modf_abs(f float64) (float64, float64) {
	if f < 1.0 {
		// This also covers +0.
		return 0.0, f
	}

	// f >= 1, so the unbiased exponent e is non-negative. If e >= 52
	// then there is no fractional bit at all (this includes infinities
	// and NaNs). Otherwise, the low 52-e mantissa bits are fractional
	// and we clear them.
	x := f64_to_bits(f)
	e := f64_exp(x) - f64_BIAS
	if e < f64_SHIFT {
		x &^= ulsh(1, f64_SHIFT-e) - 1
	}
	num := f64_from_bits(x)

	// num and f share their exponent, so the subtraction is exact.
	return num, f - num
}
