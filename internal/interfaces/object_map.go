package interfaces

import (
	"github.com/deploymenttheory/go-apfsck/internal/types"
)

// OmapMapping is the result of translating a virtual object identifier
// through an object map: the physical block currently holding the object and
// the transaction identifier recorded for that mapping.
type OmapMapping struct {
	// Paddr is the physical block number the object lives at.
	Paddr types.Paddr

	// Xid is the transaction identifier stored in the object map entry.
	// The object's own header must carry the same value.
	Xid types.XidT
}

// OmapResolver translates virtual object identifiers to physical locations.
// The object-map B-tree itself is owned by the surrounding driver; the
// checker core only consumes lookups.
type OmapResolver interface {
	// Lookup returns the mapping for the given object identifier, or an
	// error when the identifier has no entry in the map.
	Lookup(oid types.OidT) (OmapMapping, error)
}
