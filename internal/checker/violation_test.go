package checker

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViolationError(t *testing.T) {
	v := Structuralf("Directory record", "wrong size of key.")
	assert.Equal(t, "Directory record: wrong size of key.", v.Error())
	assert.Equal(t, StructuralCorruption, v.Category)
}

func TestViolationCategoryMatching(t *testing.T) {
	v := Invariantf("Object header", "reserved object id in block 0x%x.", 5)

	assert.True(t, errors.Is(v, CategoryOf(InvariantViolation)))
	assert.False(t, errors.Is(v, CategoryOf(ConsistencyViolation)))

	// Matching survives wrapping.
	wrapped := fmt.Errorf("loading omap root: %w", v)
	assert.True(t, errors.Is(wrapped, CategoryOf(InvariantViolation)))

	got, ok := AsViolation(wrapped)
	require.True(t, ok)
	assert.Equal(t, v, got)
}

func TestEnvironmentfWrapsCause(t *testing.T) {
	cause := errors.New("read /dev/disk2: input/output error")
	v := Environmentf("Object header", cause, "cannot read block 0x%x.", 7)

	assert.Equal(t, EnvironmentFailure, v.Category)
	assert.True(t, errors.Is(v, cause))
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		category Category
		want     string
	}{
		{StructuralCorruption, "structural corruption"},
		{ConsistencyViolation, "consistency violation"},
		{InvariantViolation, "invariant violation"},
		{EnvironmentFailure, "environment failure"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.category.String())
	}
}
