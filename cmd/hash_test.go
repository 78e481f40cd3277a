package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deploymenttheory/go-apfsck/internal/normalize"
	"github.com/deploymenttheory/go-apfsck/internal/types"
)

func TestHashFieldExtraction(t *testing.T) {
	// The hash of "hello" has both of its low bits set, so an extraction
	// mask missing a bit near the bottom of the hash field would corrupt
	// the displayed value.
	packed := normalize.DrecHash([]byte("hello"), false)

	hash := (packed & types.JDrecHashMask) >> types.JDrecHashShift
	assert.Equal(t, uint32(0x31ebb3), hash)
	assert.Equal(t, uint32(6), packed&types.JDrecLenMask)

	// The mask and shift extract exactly the bits above the length field.
	assert.Equal(t, packed>>types.JDrecHashShift, hash)
}
