// Package objects loads on-disk objects and validates their headers: object
// id and transaction id invariants, type flags, and the Fletcher-64 block
// checksum every object is covered by.
package objects

import (
	"encoding/binary"

	"github.com/deploymenttheory/go-apfsck/internal/types"
)

// Fletcher64 computes the checksum stored in object headers. The buffer is
// consumed as little-endian 32-bit words; both running sums are true 64-bit
// values, with the modulo applied only during finalization. The result is
// chosen so that checksumming a block whose leading field already holds it
// yields zero.
func Fletcher64(data []byte) uint64 {
	var sum1, sum2 uint64
	for i := 0; i+4 <= len(data); i += 4 {
		sum1 += uint64(binary.LittleEndian.Uint32(data[i : i+4]))
		sum2 += sum1
	}

	c1 := 0xFFFFFFFF - (sum1+sum2)%0xFFFFFFFF
	c2 := 0xFFFFFFFF - (sum1+c1)%0xFFFFFFFF

	return (c2 << 32) | c1
}

// VerifyBlockChecksum reports whether the checksum stored in the block's
// leading field matches a Fletcher-64 computation over the rest of the
// block.
func VerifyBlockChecksum(block []byte) bool {
	if len(block) <= types.MaxCksumSize {
		return false
	}
	stored := binary.LittleEndian.Uint64(block[:types.MaxCksumSize])
	return stored == Fletcher64(block[types.MaxCksumSize:])
}
