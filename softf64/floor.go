package softf64

// Floor returns the greatest integer value less than or equal to f.
//
// Special cases are:
//
//	Floor(±0) = ±0
//	Floor(±Inf) = ±Inf
//	Floor(NaN) = NaN
func Floor(f float64) float64 {
	if f == 0 || IsNaN(f) || IsInf(f, 0) {
		return f
	}
	if f < 0 {
		// Truncating -f rounds toward zero; one more unit is needed if
		// some fractional part was dropped. The addition is exact since
		// a value with a fractional part is below 2^52.
		d, frac := Modf(-f)
		if frac != 0 {
			d += 1
		}
		return -d
	}
	d, _ := Modf(f)
	return d
}

// Ceil returns the least integer value greater than or equal to f.
//
// Special cases are:
//
//	Ceil(±0) = ±0
//	Ceil(±Inf) = ±Inf
//	Ceil(NaN) = NaN
func Ceil(f float64) float64 {
	return -Floor(-f)
}

// Trunc returns the integer value of f, rounded toward zero.
//
// Special cases are:
//
//	Trunc(±0) = ±0
//	Trunc(±Inf) = ±Inf
//	Trunc(NaN) = NaN
func Trunc(f float64) float64 {
	if f == 0 || IsNaN(f) || IsInf(f, 0) {
		return f
	}
	d, _ := Modf(f)
	return d
}
