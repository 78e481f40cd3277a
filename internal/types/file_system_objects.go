package types

// File-System Objects (pages 71-101)
// A file-system object stores information about a part of the file system,
// like a directory or a file on disk. These objects are stored as one or more records.

// JKeyT is a header used at the beginning of all file-system keys.
// Reference: page 72
type JKeyT struct {
	// A bit field that contains the object's identifier and its type. (page 72)
	// The object's identifier is a uint64_t value accessed as obj_id_and_type & OBJ_ID_MASK.
	// The object's type is a uint8_t value accessed as (obj_id_and_type & OBJ_TYPE_MASK) >> OBJ_TYPE_SHIFT.
	ObjIdAndType uint64
}

// JKeySize is the on-disk size of the common file-system key header.
const JKeySize = 8

// ObjID returns the object identifier portion of the key header.
func (k JKeyT) ObjID() uint64 {
	return k.ObjIdAndType & ObjIdMask
}

// RecordType returns the record type stored in the key header's high nibble.
func (k JKeyT) RecordType() JObjTypes {
	return JObjTypes((k.ObjIdAndType & ObjTypeMask) >> ObjTypeShift)
}

// ObjIdMask is the bit mask used to access the object identifier.
// Reference: page 73
const ObjIdMask uint64 = 0x0fffffffffffffff

// ObjTypeMask is the bit mask used to access the object type.
// Reference: page 73
const ObjTypeMask uint64 = 0xf000000000000000

// ObjTypeShift is the bit shift used to access the object type.
// Reference: page 73
const ObjTypeShift uint64 = 60

// SystemObjIdMark is the smallest object identifier used by the system volume.
// Reference: page 73
const SystemObjIdMark uint64 = 0x0fffffff00000000

// JDrecHashedKeyT is the key half of a directory entry record, including a precomputed hash of its name.
// Reference: page 78
type JDrecHashedKeyT struct {
	// The record's header. (page 78)
	// The object identifier in the header is the file-system object's identifier.
	// The type in the header is always APFS_TYPE_DIR_REC.
	Hdr JKeyT

	// The hash and length of the name. (page 79)
	// The length is a 10-bit unsigned integer, accessed as name_len_and_hash & J_DREC_LEN_MASK.
	// The length includes the final null character (U+0000).
	// The hash is an unsigned 22-bit integer, accessed as
	// (name_len_and_hash & J_DREC_HASH_MASK) >> J_DREC_HASH_SHIFT.
	NameLenAndHash uint32

	// The name, represented as a null-terminated UTF-8 string. (page 79)
	Name []byte
}

// JDrecHashedKeySize is the on-disk size of a hashed directory entry key,
// not counting the name bytes.
const JDrecHashedKeySize = JKeySize + 4

// JDrecLenMask is the bit mask used to access the length of the name.
// Reference: page 79
const JDrecLenMask uint32 = 0x000003ff

// JDrecHashMask is the bit mask used to access the hash of the name.
// The hash occupies bits 10 through 31; the printed reference gives the
// value 0xfffff400, which drops bit 11.
// Reference: page 79
const JDrecHashMask uint32 = 0xfffffc00

// JDrecHashShift is the bit shift used to access the hash of the name.
// Reference: page 79
const JDrecHashShift uint32 = 10

// JXattrKeyT is the key half of an extended attribute record.
// Reference: page 82
type JXattrKeyT struct {
	// The record's header. (page 82)
	// The object identifier in the header is the file-system object's identifier.
	// The type in the header is always APFS_TYPE_XATTR.
	Hdr JKeyT

	// The length of the extended attribute's name, including the final null character (U+0000). (page 82)
	NameLen uint16

	// The extended attribute's name, represented as a null-terminated UTF-8 string. (page 82)
	Name []byte
}

// JXattrKeySize is the on-disk size of an extended attribute key,
// not counting the name bytes.
const JXattrKeySize = JKeySize + 2

// JSnapNameKeyT is the key half of a snapshot name record.
// Reference: page 119
type JSnapNameKeyT struct {
	// The record's header. (page 119)
	// The object identifier in the header is the snapshot's transaction identifier.
	// The type in the header is always APFS_TYPE_SNAP_NAME.
	Hdr JKeyT

	// The length of the snapshot's name, including the final null character (U+0000). (page 119)
	NameLen uint16

	// The snapshot's name, represented as a null-terminated UTF-8 string. (page 119)
	Name []byte
}

// JSnapNameKeySize is the on-disk size of a snapshot name key,
// not counting the name bytes.
const JSnapNameKeySize = JKeySize + 2

// JFileExtentKeyT is the key half of a file extent record.
// Reference: page 103
type JFileExtentKeyT struct {
	// The record's header. (page 103)
	// The object identifier in the header is the file-system object's identifier.
	// The type in the header is always APFS_TYPE_FILE_EXTENT.
	Hdr JKeyT

	// The offset within the file's data, in bytes, for the data stored in this extent. (page 104)
	LogicalAddr uint64
}

// JFileExtentKeySize is the on-disk size of a file extent key.
const JFileExtentKeySize = JKeySize + 8

// JSiblingKeyT is the key half of a sibling-link record.
// Reference: page 115
type JSiblingKeyT struct {
	// The record's header. (page 115)
	// The object identifier in the header is the file-system object's identifier, that is, its inode number.
	// The type in the header is always APFS_TYPE_SIBLING_LINK.
	Hdr JKeyT

	// The sibling's unique identifier. (page 115)
	// This value matches the object identifier for the sibling map record.
	SiblingId uint64
}

// JSiblingKeySize is the on-disk size of a sibling-link key.
const JSiblingKeySize = JKeySize + 8

// JObjTypes represents the type of a file-system record.
// Reference: page 84
type JObjTypes uint8

const (
	// ApfsTypeAny is a record of any type.
	// Reference: page 84
	// This enumeration case is used only in search queries.
	// It's not valid as the type of a file-system object.
	ApfsTypeAny JObjTypes = 0

	// ApfsTypeSnapMetadata is metadata about a snapshot.
	// Reference: page 84
	ApfsTypeSnapMetadata JObjTypes = 1

	// ApfsTypeExtent is a physical extent record.
	// Reference: page 85
	ApfsTypeExtent JObjTypes = 2

	// ApfsTypeInode is an inode.
	// Reference: page 85
	ApfsTypeInode JObjTypes = 3

	// ApfsTypeXattr is an extended attribute.
	// Reference: page 85
	ApfsTypeXattr JObjTypes = 4

	// ApfsTypeSiblingLink is a mapping from an inode to hard links that the inode is the target of.
	// Reference: page 85
	ApfsTypeSiblingLink JObjTypes = 5

	// ApfsTypeDstreamId is a data stream.
	// Reference: page 85
	ApfsTypeDstreamId JObjTypes = 6

	// ApfsTypeCryptoState is a per-file encryption state.
	// Reference: page 85
	ApfsTypeCryptoState JObjTypes = 7

	// ApfsTypeFileExtent is a physical extent record for a file.
	// Reference: page 85
	ApfsTypeFileExtent JObjTypes = 8

	// ApfsTypeDirRec is a directory entry.
	// Reference: page 86
	ApfsTypeDirRec JObjTypes = 9

	// ApfsTypeDirStats is information about a directory.
	// Reference: page 86
	ApfsTypeDirStats JObjTypes = 10

	// ApfsTypeSnapName is the name of a snapshot.
	// Reference: page 86
	ApfsTypeSnapName JObjTypes = 11

	// ApfsTypeSiblingMap is a mapping from a hard link to its target inode.
	// Reference: page 86
	ApfsTypeSiblingMap JObjTypes = 12

	// ApfsTypeFileInfo is additional information about file data.
	// Reference: page 86
	ApfsTypeFileInfo JObjTypes = 13

	// ApfsTypeMaxValid is the largest valid value for a file-system object's type.
	// Reference: page 86
	ApfsTypeMaxValid JObjTypes = 13
)
