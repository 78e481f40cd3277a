// Package keys decodes raw B-tree record keys from the catalog and object
// map trees into a canonical, comparable form, and defines the total order
// the trees are sorted by.
package keys

import (
	"bytes"

	"github.com/deploymenttheory/go-apfsck/internal/types"
)

// Key is the decoded, canonical form of an on-disk record key. Keys are
// created per record and consumed immediately by comparison or by the
// accounting collaborators; they are never mutated after construction.
type Key struct {
	// ID is the object or file identifier the record belongs to. For
	// catalog keys this is the CNID portion of the header field.
	ID uint64

	// Kind is the record type tag. Catalog keys carry the on-disk
	// JObjTypes value; object map keys carry ApfsTypeAny. The tree order
	// is defined over the raw tag value, so the tag is preserved even for
	// record types the codec treats as header-only.
	Kind types.JObjTypes

	// Number holds the per-kind payload: the transaction id for object
	// map keys, the packed hash-and-length field for directory entries,
	// the logical address for file extents, the sibling id for sibling
	// links, and zero for every other kind.
	Number uint64

	// Name is the record's name for directory entries, extended
	// attributes and snapshot names, without the on-disk null terminator.
	// It is nil for every other kind.
	Name []byte
}

// Compare returns a negative number, zero, or a positive number when a sorts
// before, equal to, or after b in the B-tree. The order is evaluated in
// strict priority: id, then type tag, then number, then name.
//
// Names compare as raw bytes. Normalization applies to the stored name hash
// but not to the tree order; that asymmetry is part of the on-disk format.
func Compare(a, b Key) int {
	if a.ID != b.ID {
		if a.ID < b.ID {
			return -1
		}
		return 1
	}
	if a.Kind != b.Kind {
		if a.Kind < b.Kind {
			return -1
		}
		return 1
	}
	if a.Number != b.Number {
		if a.Number < b.Number {
			return -1
		}
		return 1
	}
	if a.Name == nil {
		// Keys of this kind have no name
		return 0
	}
	return bytes.Compare(a.Name, b.Name)
}

// cstringLen returns the length of b up to, but not including, the first
// null byte, or len(b) when there is none.
func cstringLen(b []byte) int {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return i
	}
	return len(b)
}
