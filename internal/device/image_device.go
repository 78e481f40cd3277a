// Package device provides read-only block access to an APFS image file.
package device

import (
	"fmt"
	"os"

	"github.com/deploymenttheory/go-apfsck/internal/types"
)

// ImageDevice exposes a raw image file as a block device. The file is opened
// read-only and, where the platform allows it, memory-mapped read-only;
// otherwise reads fall back to pread. The checker never writes to the image.
type ImageDevice struct {
	file        *os.File
	data        []byte // non-nil when the file is memory-mapped
	path        string
	blockSize   uint32
	totalBlocks uint64
	size        int64
}

// Open opens the image at path with the given logical block size.
func Open(path string, blockSize uint32) (*ImageDevice, error) {
	if blockSize == 0 {
		return nil, fmt.Errorf("block size cannot be zero")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to stat image file: %w", err)
	}
	size := stat.Size()
	if size < int64(blockSize) {
		file.Close()
		return nil, fmt.Errorf("image is smaller than a single block (%d bytes)", size)
	}

	dev := &ImageDevice{
		file:        file,
		path:        path,
		blockSize:   blockSize,
		totalBlocks: uint64(size) / uint64(blockSize),
		size:        size,
	}

	// Mapping can fail on filesystems or platforms that don't support it;
	// pread covers those.
	if data, err := mapFile(file, size); err == nil {
		dev.data = data
	}

	return dev, nil
}

// ReadBlock returns the contents of the block at the given address. When the
// image is memory-mapped the returned slice aliases the mapping and stays
// valid until Close; otherwise it is a private copy.
func (d *ImageDevice) ReadBlock(address types.Paddr) ([]byte, error) {
	if !d.IsValidAddress(address) {
		return nil, fmt.Errorf("block address %d out of range [0, %d)", address, d.totalBlocks)
	}

	offset := int64(address) * int64(d.blockSize)
	if d.data != nil {
		return d.data[offset : offset+int64(d.blockSize)], nil
	}

	block := make([]byte, d.blockSize)
	if _, err := d.file.ReadAt(block, offset); err != nil {
		return nil, fmt.Errorf("failed to read block %d: %w", address, err)
	}
	return block, nil
}

// BlockSize returns the logical block size in bytes.
func (d *ImageDevice) BlockSize() uint32 {
	return d.blockSize
}

// TotalBlocks returns the number of whole blocks in the image.
func (d *ImageDevice) TotalBlocks() uint64 {
	return d.totalBlocks
}

// IsValidAddress reports whether a whole block exists at the address.
func (d *ImageDevice) IsValidAddress(address types.Paddr) bool {
	return address.Validate() && uint64(address) < d.totalBlocks
}

// DevicePath returns the path the image was opened from.
func (d *ImageDevice) DevicePath() string {
	return d.path
}

// Close unmaps the image and closes the underlying file.
func (d *ImageDevice) Close() error {
	var firstErr error
	if d.data != nil {
		if err := unmapFile(d.data); err != nil {
			firstErr = fmt.Errorf("failed to unmap image: %w", err)
		}
		d.data = nil
	}
	if err := d.file.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("failed to close image file: %w", err)
	}
	return firstErr
}
