package normalize

import (
	"encoding/binary"
	"hash/crc32"
)

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// DrecHash computes the packed name hash stored in a hashed directory entry
// key: the low 10 bits are the length of the raw UTF-8 name counting the
// null terminator, and bits 10-31 are the low 22 bits of a CRC32C over the
// little-endian 32-bit encoding of each normalized scalar value.
//
// The CRC is seeded with all ones and is not inverted on output. Go's
// hash/crc32 inverts the running value on entry and exit of every Update
// call, so feeding it a zero seed and complementing the final value yields
// the raw register this format stores.
func DrecHash(name []byte, caseFold bool) uint32 {
	cursor := NewCursor(name, caseFold)

	var crc uint32
	var word [4]byte
	for {
		r, ok := cursor.Next()
		if !ok {
			break
		}
		binary.LittleEndian.PutUint32(word[:], uint32(r))
		crc = crc32.Update(crc, castagnoli, word[:])
	}
	hash := ^crc

	// The on-disk length counts the null terminator.
	namelen := uint32(cursor.BytesConsumed()) + 1

	return ((hash & 0x3FFFFF) << 10) | (namelen & 0x3FF)
}
