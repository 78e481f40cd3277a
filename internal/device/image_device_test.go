package device

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBlockSize = 4096

func createTestImage(t *testing.T, blocks int) string {
	t.Helper()

	data := make([]byte, blocks*testBlockSize)
	for i := range data {
		data[i] = byte(i / testBlockSize) // every block filled with its own number
	}

	path := filepath.Join(t.TempDir(), "test.img")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestOpenAndReadBlock(t *testing.T) {
	dev, err := Open(createTestImage(t, 4), testBlockSize)
	require.NoError(t, err)
	defer dev.Close()

	assert.Equal(t, uint32(testBlockSize), dev.BlockSize())
	assert.Equal(t, uint64(4), dev.TotalBlocks())

	block, err := dev.ReadBlock(2)
	require.NoError(t, err)
	require.Len(t, block, testBlockSize)
	assert.Equal(t, byte(2), block[0])
	assert.Equal(t, byte(2), block[testBlockSize-1])
}

func TestReadBlockOutOfRange(t *testing.T) {
	dev, err := Open(createTestImage(t, 2), testBlockSize)
	require.NoError(t, err)
	defer dev.Close()

	assert.True(t, dev.IsValidAddress(1))
	assert.False(t, dev.IsValidAddress(2))
	assert.False(t, dev.IsValidAddress(-1))

	_, err = dev.ReadBlock(2)
	assert.Error(t, err)
	_, err = dev.ReadBlock(-1)
	assert.Error(t, err)
}

func TestOpenRejectsBadInput(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.img"), testBlockSize)
	assert.Error(t, err)

	_, err = Open(createTestImage(t, 2), 0)
	assert.Error(t, err)

	// An image smaller than one block is unusable.
	short := filepath.Join(t.TempDir(), "short.img")
	require.NoError(t, os.WriteFile(short, make([]byte, 100), 0o644))
	_, err = Open(short, testBlockSize)
	assert.Error(t, err)
}

func TestClose(t *testing.T) {
	dev, err := Open(createTestImage(t, 2), testBlockSize)
	require.NoError(t, err)
	require.NoError(t, dev.Close())
}
