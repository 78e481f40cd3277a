// Package types implements on-disk data structures for the Apple File System.
// Layouts and constants follow the official Apple File System Reference
// (June 2020); all multi-byte integers are stored little-endian on disk.
package types

// General-Purpose Types (page 9)
// Basic types that are used in a variety of contexts, and aren't associated with
// any particular functionality.

// Paddr represents a physical address of an on-disk block.
// Negative numbers aren't valid addresses.
// This value is modeled as a signed integer to match IOKit.
// Reference: page 9
type Paddr int64

// Validate checks if the physical address is valid.
func (p Paddr) Validate() bool {
	return p >= 0
}

// MinBlockSize is the smallest logical block size a container may use.
const MinBlockSize = 4096

// MaxBlockSize is the largest logical block size a container may use.
const MaxBlockSize = 65536
