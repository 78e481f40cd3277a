package types

// Object Maps (pages 44-49)
// An object map uses a B-tree to store a mapping from virtual object identifiers
// and transaction identifiers to the physical addresses where those objects are stored.

// OmapKeyT is a key used to access an entry in the object map.
// Reference: page 46
type OmapKeyT struct {
	// The object identifier. (page 46)
	OkOid OidT

	// The transaction identifier. (page 46)
	OkXid XidT
}

// OmapKeySize is the on-disk size of an object map key.
const OmapKeySize = 16

// OmapValT is a value in the object map.
// Reference: page 46
type OmapValT struct {
	// A bit field of flags. (page 46)
	// For the values used in this bit field, see Object Map Value Flags.
	OvFlags uint32

	// The size, in bytes, of the object. (page 47)
	// This value must be a multiple of the container's logical block size.
	OvSize uint32

	// The address of the object. (page 47)
	OvPaddr Paddr
}

// OmapValSize is the on-disk size of an object map value.
const OmapValSize = 16

// Object Map Value Flags (page 48)

// OmapValDeleted indicates the object has been deleted, and this mapping is a placeholder.
// Reference: page 48
const OmapValDeleted uint32 = 0x00000001

// OmapValSaved indicates this object mapping shouldn't be replaced when the object is updated.
// Reference: page 48
const OmapValSaved uint32 = 0x00000002

// OmapValEncrypted indicates the object is encrypted.
// Reference: page 48
const OmapValEncrypted uint32 = 0x00000004

// OmapValNoheader indicates the object is stored without an obj_phys_t header.
// Reference: page 48
const OmapValNoheader uint32 = 0x00000008

// OmapValCryptoGeneration indicates the object's encryption key generation.
// Reference: page 48
const OmapValCryptoGeneration uint32 = 0x00000010
