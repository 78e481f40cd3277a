package keys

import (
	"encoding/binary"

	"github.com/deploymenttheory/go-apfsck/internal/checker"
	"github.com/deploymenttheory/go-apfsck/internal/types"
)

// ReadOmapKey parses an on-disk object map key and checks its consistency.
// The canonical key carries the mapped object id, the ApfsTypeAny tag, and
// the entry's transaction id as its number.
func ReadOmapKey(data []byte) (Key, error) {
	if len(data) != types.OmapKeySize {
		return Key{}, checker.Structuralf("Object map", "wrong size of key.")
	}

	raw := types.OmapKeyT{
		OkOid: types.OidT(binary.LittleEndian.Uint64(data[0:8])),
		OkXid: types.XidT(binary.LittleEndian.Uint64(data[8:16])),
	}
	if raw.OkXid == types.XidInvalid {
		return Key{}, checker.Invariantf("Object map", "transaction id for key is zero.")
	}
	if raw.OkOid == types.OidInvalid {
		return Key{}, checker.Invariantf("Object map", "invalid object id in key.")
	}

	return Key{
		ID:     uint64(raw.OkOid),
		Kind:   types.ApfsTypeAny,
		Number: uint64(raw.OkXid),
	}, nil
}
