package objects

import (
	"encoding/binary"

	"github.com/deploymenttheory/go-apfsck/internal/checker"
	"github.com/deploymenttheory/go-apfsck/internal/interfaces"
	"github.com/deploymenttheory/go-apfsck/internal/types"
)

// Header is a validated object header. It is produced once per object read
// and is not retained by the reader.
type Header struct {
	// Oid is the object identifier the object was requested by.
	Oid types.OidT

	// BlockNr is the physical block the object was read from.
	BlockNr types.Paddr

	// Type is the object's type, with the flag bits masked away.
	Type uint32

	// Flags is the flag portion of the on-disk type field.
	Flags uint32

	// Subtype is the object's subtype.
	Subtype uint32
}

const objectLabel = "Object header"

// readObjHeader decodes the object header at the start of a block. The
// caller has already checked that the block is large enough.
func readObjHeader(block []byte) types.ObjPhysT {
	var raw types.ObjPhysT
	copy(raw.OChecksum[:], block[0:types.MaxCksumSize])
	raw.OOid = types.OidT(binary.LittleEndian.Uint64(block[8:16]))
	raw.OXid = types.XidT(binary.LittleEndian.Uint64(block[16:24]))
	raw.OType = binary.LittleEndian.Uint32(block[24:28])
	raw.OSubtype = binary.LittleEndian.Uint32(block[28:32])
	return raw
}

// ReadObject reads an object from the device and validates its header.
//
// When omap is non-nil the object id is translated through it to a physical
// block, and the block's transaction id must match the mapping's. When omap
// is nil the object id is used as the physical block number directly.
//
// The returned slice is the whole validated block; the caller owns it for as
// long as it needs it, nothing is cached here. A failure to read the device
// is an environment failure; everything else reported is corruption of the
// image.
func ReadObject(dev interfaces.BlockDeviceReader, omap interfaces.OmapResolver, oid types.OidT, ctx *checker.Context) ([]byte, *Header, error) {
	var bno types.Paddr
	var mapping interfaces.OmapMapping

	if omap != nil {
		var err error
		mapping, err = omap.Lookup(oid)
		if err != nil {
			return nil, nil, checker.Consistencyf(objectLabel, "no object map entry for oid 0x%x.", uint64(oid))
		}
		bno = mapping.Paddr
	} else {
		bno = types.Paddr(oid)
	}

	block, err := dev.ReadBlock(bno)
	if err != nil {
		return nil, nil, checker.Environmentf(objectLabel, err, "cannot read block 0x%x.", uint64(bno))
	}
	if len(block) < types.ObjPhysSize {
		return nil, nil, checker.Structuralf(objectLabel, "block 0x%x is too small for an object.", uint64(bno))
	}

	raw := readObjHeader(block)
	if raw.OOid != oid {
		return nil, nil, checker.Invariantf(objectLabel, "wrong object id in block 0x%x.", uint64(bno))
	}
	if uint64(oid) < types.OidReservedCount {
		return nil, nil, checker.Invariantf(objectLabel, "reserved object id in block 0x%x.", uint64(bno))
	}

	if raw.OXid == types.XidInvalid || ctx.MaxXid < raw.OXid {
		return nil, nil, checker.Invariantf(objectLabel, "bad transaction id in block 0x%x.", uint64(bno))
	}
	if omap != nil && raw.OXid != mapping.Xid {
		return nil, nil, checker.Consistencyf(objectLabel, "transaction id in omap key doesn't match block 0x%x.", uint64(bno))
	}

	hdr := &Header{
		Oid:     oid,
		BlockNr: bno,
		Type:    raw.OType & types.ObjectTypeMask,
		Flags:   raw.OType & types.ObjectTypeFlagsMask,
		Subtype: raw.OSubtype,
	}

	if hdr.Flags&types.ObjectTypeFlagsDefinedMask != hdr.Flags {
		return nil, nil, checker.Invariantf(objectLabel, "undefined flag in use.")
	}
	if hdr.Flags&types.ObjNonpersistent != 0 {
		return nil, nil, checker.Invariantf(objectLabel, "nonpersistent flag is set.")
	}

	storageType := hdr.Flags & types.ObjStorageTypeMask
	if omap != nil && storageType != types.ObjVirtual {
		return nil, nil, checker.Invariantf(objectLabel, "wrong flag for virtual object.")
	}
	if omap == nil && storageType != types.ObjPhysical {
		return nil, nil, checker.Invariantf(objectLabel, "wrong flag for physical object.")
	}

	if !VerifyBlockChecksum(block) {
		return nil, nil, checker.Consistencyf(objectLabel, "bad checksum in block 0x%x.", uint64(bno))
	}

	return block, hdr, nil
}
