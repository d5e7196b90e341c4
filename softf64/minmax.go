package softf64

// Abs returns the absolute value of f. Only the sign bit is cleared; the
// payload of a NaN is kept.
func Abs(f float64) float64 {
	return f64_from_bits(f64_to_bits(f) & m63)
}

// Max returns the larger of x or y.
//
// Special cases are:
//
//	Max(x, +Inf) = Max(+Inf, x) = +Inf
//	Max(x, NaN) = Max(NaN, x) = NaN
//	Max(+0, ±0) = Max(-0, ±0) = the second operand
//
// The rule for zeros differs from [math.Max]: when both operands are
// zero, y is returned whatever the signs, so Max(+0, -0) is -0.
func Max(x, y float64) float64 {
	switch {
	case IsInf(x, 1) || IsInf(y, 1):
		return Inf(1)
	case IsNaN(x) || IsNaN(y):
		return NaN()
	case x == 0 && x == y:
		return y
	}
	if x > y {
		return x
	}
	return y
}

// Min returns the smaller of x or y.
//
// Special cases are:
//
//	Min(x, -Inf) = Min(-Inf, x) = -Inf
//	Min(x, NaN) = Min(NaN, x) = NaN
//	Min(+0, ±0) = Min(-0, ±0) = the second operand
func Min(x, y float64) float64 {
	switch {
	case IsInf(x, -1) || IsInf(y, -1):
		return Inf(-1)
	case IsNaN(x) || IsNaN(y):
		return NaN()
	case x == 0 && x == y:
		return y
	}
	if x < y {
		return x
	}
	return y
}
