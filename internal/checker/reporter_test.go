package checker

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFatalReporterStopsImmediately(t *testing.T) {
	reporter := NewFatalReporter(uuid.Nil)
	v := Consistencyf("Object header", "bad checksum in block 0x%x.", 7)

	err := reporter.Report(v)
	require.Error(t, err)
	assert.True(t, errors.Is(err, CategoryOf(ConsistencyViolation)))
}

func TestAccumulatingReporterCollects(t *testing.T) {
	reporter := NewAccumulatingReporter()

	assert.NoError(t, reporter.Report(Structuralf("Directory record", "wrong size of key.")))
	assert.NoError(t, reporter.Report(Consistencyf("Object header", "bad checksum in block 0x%x.", 9)))

	violations := reporter.Violations()
	require.Len(t, violations, 2)
	assert.Equal(t, StructuralCorruption, violations[0].Category)
	assert.Equal(t, ConsistencyViolation, violations[1].Category)
}

func TestAccumulatingReporterStopsOnEnvironmentFailure(t *testing.T) {
	reporter := NewAccumulatingReporter()
	v := Environmentf("Object header", errors.New("short read"), "cannot read block 0x%x.", 3)

	err := reporter.Report(v)
	require.Error(t, err)
	assert.Len(t, reporter.Violations(), 1)
}
