package types

// Objects (pages 10-21)
// Depending on how they're stored, objects have some differences, the most important
// of which is the way you use an object identifier to find an object.

// OidT is an object identifier.
// For a physical object, its identifier is the logical block address on disk where the object is stored.
// For an ephemeral object, its identifier is a number.
// For a virtual object, its identifier is a number.
// Reference: page 12
type OidT uint64

// XidT is a transaction identifier.
// Transactions are uniquely identified by a monotonically increasing number.
// The number zero isn't a valid transaction identifier.
// Reference: page 12
type XidT uint64

// ObjPhysT is a header used at the beginning of all objects.
// Reference: page 10
type ObjPhysT struct {
	// The Fletcher 64 checksum of the object, with length matching MaxCksumSize. (page 10)
	OChecksum [MaxCksumSize]byte
	// The object's identifier. (page 11)
	OOid OidT
	// The identifier of the most recent transaction that this object was modified in. (page 11)
	OXid XidT
	// The object's type and flags. (page 11)
	// An object type is a 32-bit value: The low 16 bits indicate the type, and the high 16 bits are flags.
	OType uint32
	// The object's subtype. (page 11)
	// Subtypes indicate the type of data stored in a data structure such as a B-tree.
	OSubtype uint32
}

// ObjPhysSize is the on-disk size of an object header.
const ObjPhysSize = MaxCksumSize + 8 + 8 + 4 + 4

// Object Identifier Constants (pages 12-13)

// XidInvalid is an invalid transaction identifier.
// Reference: page 12
const XidInvalid XidT = 0

// OidInvalid is an invalid object identifier.
// Reference: page 13
const OidInvalid OidT = 0

// OidReservedCount is the number of object identifiers that are reserved for objects with a fixed object identifier.
// Reference: page 13
const OidReservedCount uint64 = 1024

// Object Type Masks (pages 13-14)

// ObjectTypeMask is the bit mask used to access the type.
// Reference: page 13
const ObjectTypeMask uint32 = 0x0000ffff

// ObjectTypeFlagsMask is the bit mask used to access the flags.
// Reference: page 13
const ObjectTypeFlagsMask uint32 = 0xffff0000

// ObjStorageTypeMask is the bit mask used to access the storage portion of the object type.
// Reference: page 14
const ObjStorageTypeMask uint32 = ObjEphemeral | ObjPhysical

// ObjectTypeFlagsDefinedMask is a bit mask of all bits for which flags are defined.
// Reference: page 14
const ObjectTypeFlagsDefinedMask uint32 = ObjEphemeral | ObjPhysical | ObjNoheader | ObjEncrypted | ObjNonpersistent

// MaxCksumSize is the number of bytes used for an object checksum.
// Reference: page 11
const MaxCksumSize = 8

// Object Type Flags (pages 19-20)

// ObjVirtual indicates a virtual object.
// Reference: page 20
const ObjVirtual uint32 = 0x00000000

// ObjEphemeral indicates an ephemeral object.
// Reference: page 20
const ObjEphemeral uint32 = 0x80000000

// ObjPhysical indicates a physical object.
// Reference: page 20
const ObjPhysical uint32 = 0x40000000

// ObjNoheader indicates an object stored without an obj_phys_t header.
// Reference: page 20
const ObjNoheader uint32 = 0x20000000

// ObjEncrypted indicates an encrypted object.
// Reference: page 20
const ObjEncrypted uint32 = 0x10000000

// ObjNonpersistent indicates an ephemeral object that isn't persisted across unmounting.
// An object with this flag set must never appear on disk.
// Reference: page 20
const ObjNonpersistent uint32 = 0x08000000
