// This package implements elementary binary64 floating-point operations
// directly on the IEEE 754 bit representation: absolute value, minimum,
// maximum, square root, floor, ceiling, truncation and rounding to the
// nearest integer (roundTiesToEven policy).
//
// None of the functions use a hardware square root opcode or the rounding
// routines of the standard library; each one works on the 64-bit pattern
// of its operand (1 sign bit, 11 exponent bits biased by 1023, and 52
// mantissa bits), obtained with [math.Float64bits]. Native floating-point
// comparisons and a single subtraction (in [Modf]) are the only
// operations delegated to the hardware.
//
// All functions are pure: they do not allocate, do not keep any state,
// and can be called concurrently. There is no error reporting; invalid
// operations (such as the square root of a negative number) return NaN,
// and NaN or infinite inputs are propagated according to the rules given
// in the documentation of each function.
//
// [Sqrt] runs a fixed number of iterations with no data-dependent branch
// in its main loop, so that its execution time does not depend on the
// mantissa of a finite, positive operand.
package softf64
