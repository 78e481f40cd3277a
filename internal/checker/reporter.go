package checker

import (
	"context"

	"github.com/containerd/log"
	"github.com/google/uuid"
)

// Reporter consumes violations as a check produces them. Report returns a
// non-nil error when the check must stop; returning nil lets the caller
// continue looking for further violations.
type Reporter interface {
	Report(v *Violation) error
}

// FatalReporter logs every violation and stops the check at the first one.
// This is the default behavior: a checker must never silently tolerate
// unexplained corruption.
type FatalReporter struct {
	ContainerUUID uuid.UUID
}

// NewFatalReporter returns a reporter that aborts on the first violation.
func NewFatalReporter(containerUUID uuid.UUID) *FatalReporter {
	return &FatalReporter{ContainerUUID: containerUUID}
}

func (r *FatalReporter) Report(v *Violation) error {
	entry := log.G(context.Background()).WithField("category", v.Category.String())
	if r.ContainerUUID != uuid.Nil {
		entry = entry.WithField("container", r.ContainerUUID.String())
	}
	entry.WithField("label", v.Label).Error(v.Message)
	return v
}

// AccumulatingReporter records every violation and never stops the check,
// so a driver can produce a complete corruption report instead of aborting
// at the first finding. Environment failures still stop the check, since
// nothing further can be read.
type AccumulatingReporter struct {
	violations []*Violation
}

// NewAccumulatingReporter returns a reporter that collects violations.
func NewAccumulatingReporter() *AccumulatingReporter {
	return &AccumulatingReporter{}
}

func (r *AccumulatingReporter) Report(v *Violation) error {
	r.violations = append(r.violations, v)
	if v.Category == EnvironmentFailure {
		return v
	}
	return nil
}

// Violations returns everything reported so far, in order.
func (r *AccumulatingReporter) Violations() []*Violation {
	return r.violations
}
