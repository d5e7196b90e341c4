//go:build !(amd64 || arm64 || riscv64)

package softf64

// ursh and ulsh shift a 64-bit word by a count derived from the operand's
// exponent. Some 32-bit architectures use non-constant-time routines
// when shifting a 64-bit value, leaking whether the count was below 32
// or not. The count n MUST be in [0,63].
func ursh(x uint64, n uint32) uint64 {
	x ^= (x ^ (x >> 32)) & -uint64(n>>5)
	return x >> (n & 0x1F)
}
func ulsh(x uint64, n uint32) uint64 {
	x ^= (x ^ (x << 32)) & -uint64(n>>5)
	return x << (n & 0x1F)
}
