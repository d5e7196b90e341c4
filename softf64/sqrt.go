package softf64

// Sqrt returns the square root of f, correctly rounded to the nearest
// representable value.
//
// Special cases are:
//
//	Sqrt(+Inf) = +Inf
//	Sqrt(±0) = ±0
//	Sqrt(x < 0) = NaN
//	Sqrt(NaN) = NaN
func Sqrt(f float64) float64 {
	if f == 0 || IsNaN(f) || IsInf(f, 1) {
		return f
	} else if f < 0 {
		return NaN()
	}

	// Extract the mantissa with its implicit top bit, and the "true"
	// exponent corresponding to a mantissa between 1 (inclusive) and
	// 2 (exclusive). A subnormal value has no implicit bit and uses the
	// exponent of the smallest normal value; we left-shift its mantissa
	// until bit 52 is set.
	v := f64_to_bits(f)
	ex := f64_exp(v)
	hb := uint64((ex + 0x7FF) >> 11)
	xu := (v & m52) | (b52 & -hb)
	c := lzcnt_nonzero(xu) - 11
	xu = ulsh(xu, c)
	e := int32(ex) + int32(1-hb) - int32(c) - f64_BIAS

	// If the exponent is odd, then we double the mantissa, and subtract
	// 1 from the exponent. We can then halve the exponent.
	xu += xu & -uint64(uint32(e)&1)
	e >>= 1

	// Double the mantissa to make it an integer in [2^53,2^55-1]. It
	// represents a value between 1 (inclusive) and 4 (exclusive) in
	// fixed-point notation (53 fractional bits).
	xu <<= 1

	// Bit-by-bit square root: at each step, we check whether the
	// candidate bit r can be added to the partial root q, i.e. whether
	// s + r <= xu, with s = 2*q. The comparison is done with a mask
	// instead of a branch.
	q := uint64(0)
	s := uint64(0)
	r := b53
	for i := 0; i < 54; i++ {
		t := s + r
		b := ((xu - t) >> 63) - 1
		s += b & (r << 1)
		xu -= t & b
		q += r & b
		xu <<= 1
		r >>= 1
	}

	// q now holds 54 bits: a leading 1, 52 fractional digits and a
	// guard bit. If the remainder is non-zero then the exact root is
	// above q; when the guard bit is set, this means that we are above
	// the halfway point and must round up. An exact halfway case cannot
	// occur for a square root.
	q += q & 1 & -((xu | -xu) >> 63)

	// Drop the guard bit and apply the halved exponent. The leading 1
	// of q>>1 lands on bit 52, i.e. in the exponent field, hence the -1.
	// A carry from rounding propagates into the exponent as well.
	v = (q >> 1) + (uint64(int64(e)+f64_BIAS-1) << f64_SHIFT)
	return f64_from_bits(v)
}
