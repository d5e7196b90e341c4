//go:build amd64 || arm64 || riscv64

package softf64

// ursh and ulsh shift a 64-bit word by a count derived from the operand's
// exponent. On these 64-bit architectures the plain shift opcode is
// assumed to run in constant time.
func ursh(x uint64, n uint32) uint64 {
	return x >> n
}
func ulsh(x uint64, n uint32) uint64 {
	return x << n
}
