package softf64

// Some useful constants:
//   bNN    2^NN
//   mNN    2^NN - 1

const b52 = uint64(0x0010000000000000)
const b53 = uint64(0x0020000000000000)
const b63 = uint64(0x8000000000000000)

const m51 = uint64(0x0007FFFFFFFFFFFF)
const m52 = uint64(0x000FFFFFFFFFFFFF)
const m63 = uint64(0x7FFFFFFFFFFFFFFF)

// Layout of a binary64 value.
const (
	f64_SHIFT = 52
	f64_MASK  = 0x7FF
	f64_BIAS  = 1023
)

// Raw representations of special values.
const (
	f64_UVNAN    = uint64(0x7FF8000000000001)
	f64_UVINF    = uint64(0x7FF0000000000000)
	f64_UVNEGINF = uint64(0xFFF0000000000000)
	f64_UVONE    = uint64(0x3FF0000000000000)
)
