// Package interfaces declares the collaborator contracts consumed by the
// checker core: block storage, object-map translation, and reporting.
package interfaces

import (
	"io"

	"github.com/deploymenttheory/go-apfsck/internal/types"
)

// BlockDeviceReader provides read-only access to the blocks of an image
// under check. Implementations must never open the backing storage writable.
type BlockDeviceReader interface {
	// ReadBlock reads a single block at the specified address
	ReadBlock(address types.Paddr) ([]byte, error)

	// BlockSize returns the size of a single block in bytes
	BlockSize() uint32

	// TotalBlocks returns the total number of blocks on the device
	TotalBlocks() uint64

	// IsValidAddress checks if a block address is valid
	IsValidAddress(address types.Paddr) bool
}

// BlockDevice is a readable block device that must be closed after use.
type BlockDevice interface {
	BlockDeviceReader
	io.Closer
}
