package keys

import (
	"encoding/binary"

	"github.com/deploymenttheory/go-apfsck/internal/checker"
	"github.com/deploymenttheory/go-apfsck/internal/normalize"
	"github.com/deploymenttheory/go-apfsck/internal/types"
)

// ReadCatalogKey parses an on-disk catalog tree key and checks its
// consistency. The record type tag selects the key's shape; any size or
// framing mismatch for that shape is structural corruption.
func ReadCatalogKey(data []byte, ctx *checker.Context) (Key, error) {
	if len(data) < types.JKeySize {
		return Key{}, checker.Structuralf("Catalog tree", "key is too small.")
	}

	hdr := types.JKeyT{ObjIdAndType: binary.LittleEndian.Uint64(data[0:types.JKeySize])}
	key := Key{
		ID:   hdr.ObjID(),
		Kind: hdr.RecordType(),
	}

	switch key.Kind {
	case types.ApfsTypeDirRec:
		return readDirRecKey(data, hdr, key, ctx)
	case types.ApfsTypeXattr:
		if len(data) < types.JXattrKeySize+1 {
			return Key{}, checker.Structuralf("Xattr record", "wrong size of key.")
		}
		raw := types.JXattrKeyT{
			Hdr:     hdr,
			NameLen: binary.LittleEndian.Uint16(data[types.JKeySize:types.JXattrKeySize]),
			Name:    data[types.JXattrKeySize:],
		}
		return finishNamedKey(key, raw.NameLen, raw.Name, "Xattr record")
	case types.ApfsTypeSnapName:
		if len(data) < types.JSnapNameKeySize+1 {
			return Key{}, checker.Structuralf("Snapshot name record", "wrong size of key.")
		}
		raw := types.JSnapNameKeyT{
			Hdr:     hdr,
			NameLen: binary.LittleEndian.Uint16(data[types.JKeySize:types.JSnapNameKeySize]),
			Name:    data[types.JSnapNameKeySize:],
		}
		return finishNamedKey(key, raw.NameLen, raw.Name, "Snapshot name record")
	case types.ApfsTypeFileExtent:
		if len(data) != types.JFileExtentKeySize {
			return Key{}, checker.Structuralf("Extent record", "wrong size of key.")
		}
		raw := types.JFileExtentKeyT{
			Hdr:         hdr,
			LogicalAddr: binary.LittleEndian.Uint64(data[types.JKeySize:]),
		}
		key.Number = raw.LogicalAddr
		return key, nil
	case types.ApfsTypeSiblingLink:
		if len(data) != types.JSiblingKeySize {
			return Key{}, checker.Structuralf("Sibling link record", "wrong size of key.")
		}
		raw := types.JSiblingKeyT{
			Hdr:       hdr,
			SiblingId: binary.LittleEndian.Uint64(data[types.JKeySize:]),
		}
		key.Number = raw.SiblingId
		return key, nil
	case types.ApfsTypeAny, types.ApfsTypeSnapMetadata, types.ApfsTypeExtent,
		types.ApfsTypeInode, types.ApfsTypeDstreamId, types.ApfsTypeCryptoState,
		types.ApfsTypeDirStats, types.ApfsTypeSiblingMap, types.ApfsTypeFileInfo:
		return readHeaderOnlyKey(data, key)
	default:
		// Tag values with no defined record type still order by their
		// raw value; their keys carry nothing beyond the header.
		return readHeaderOnlyKey(data, key)
	}
}

// readHeaderOnlyKey finishes decoding a key whose type stores nothing beyond
// the common header.
func readHeaderOnlyKey(data []byte, key Key) (Key, error) {
	if len(data) != types.JKeySize {
		return Key{}, checker.Structuralf("Catalog tree record", "wrong size of key.")
	}
	return key, nil
}

// readDirRecKey finishes decoding a hashed directory entry key. The stored
// hash-and-length field is recomputed from the name under the volume's case
// sensitivity mode and must match bit for bit.
func readDirRecKey(data []byte, hdr types.JKeyT, key Key, ctx *checker.Context) (Key, error) {
	if len(data) < types.JDrecHashedKeySize+1 {
		return Key{}, checker.Structuralf("Directory record", "wrong size of key.")
	}
	if data[len(data)-1] != 0 {
		return Key{}, checker.Structuralf("Directory record", "filename lacks NULL-termination.")
	}

	raw := types.JDrecHashedKeyT{
		Hdr:            hdr,
		NameLenAndHash: binary.LittleEndian.Uint32(data[types.JKeySize:types.JDrecHashedKeySize]),
		Name:           data[types.JDrecHashedKeySize:],
	}

	key.Number = uint64(raw.NameLenAndHash)
	nameBytes := raw.Name[:len(raw.Name)-1]
	key.Name = nameBytes[:cstringLen(nameBytes)]

	if raw.NameLenAndHash != normalize.DrecHash(nameBytes, !ctx.CaseSensitive) {
		return Key{}, checker.Consistencyf("Directory record", "filename hash is corrupted.")
	}

	// The on-disk length counts the null terminator.
	namelen := int(raw.NameLenAndHash & types.JDrecLenMask)
	if len(key.Name)+1 != namelen {
		return Key{}, checker.Structuralf("Directory record", "wrong name length in key.")
	}
	if len(raw.Name) != namelen {
		return Key{}, checker.Structuralf("Directory record", "size of key doesn't match the name length.")
	}
	return key, nil
}

// finishNamedKey finishes decoding an extended attribute or snapshot name
// key; the two shapes are identical. The name still carries its on-disk
// terminator here.
func finishNamedKey(key Key, nameLen uint16, name []byte, label string) (Key, error) {
	if name[len(name)-1] != 0 {
		return Key{}, checker.Structuralf(label, "name lacks NULL-termination.")
	}

	nameBytes := name[:len(name)-1]
	key.Name = nameBytes[:cstringLen(nameBytes)]

	// The on-disk length counts the null terminator.
	namelen := int(nameLen)
	if len(key.Name)+1 != namelen {
		return Key{}, checker.Structuralf(label, "wrong name length.")
	}
	if len(name) != namelen {
		return Key{}, checker.Structuralf(label, "size of key doesn't match the name length.")
	}
	return key, nil
}
