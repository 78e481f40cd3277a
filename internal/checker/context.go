// Package checker holds the shared state and error taxonomy of a consistency
// check: the per-run context that every decoder and validator receives, the
// typed violations they produce, and the reporters that consume them.
package checker

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/deploymenttheory/go-apfsck/internal/types"
)

// Context carries the per-run checking parameters. It is built once before
// the check starts and is read-only afterwards; every decode and load call
// receives it explicitly.
type Context struct {
	// BlockSize is the container's logical block size in bytes.
	BlockSize uint32

	// CaseSensitive reports whether the volume being checked stores
	// filenames case-sensitively. When false, directory entry hashes are
	// computed over case-folded names.
	CaseSensitive bool

	// MaxXid is the newest transaction identifier known to the check.
	// Any object claiming a newer transaction is corrupt.
	MaxXid types.XidT

	// ContainerUUID identifies the container under check. It is only used
	// to label reports and log entries.
	ContainerUUID uuid.UUID
}

// NewContext validates the checking parameters and returns a Context.
func NewContext(blockSize uint32, caseSensitive bool, maxXid types.XidT) (*Context, error) {
	if blockSize < types.MinBlockSize || blockSize > types.MaxBlockSize {
		return nil, fmt.Errorf("block size %d outside supported range [%d, %d]",
			blockSize, types.MinBlockSize, types.MaxBlockSize)
	}
	if blockSize&(blockSize-1) != 0 {
		return nil, fmt.Errorf("block size %d is not a power of two", blockSize)
	}
	if maxXid == types.XidInvalid {
		return nil, fmt.Errorf("transaction id ceiling cannot be zero")
	}

	return &Context{
		BlockSize:     blockSize,
		CaseSensitive: caseSensitive,
		MaxXid:        maxXid,
	}, nil
}
