package checker

import (
	"errors"
	"fmt"
)

// Category classifies a check failure.
type Category int

const (
	// StructuralCorruption means a record's byte size or framing does not
	// match the shape mandated by its type.
	StructuralCorruption Category = iota

	// ConsistencyViolation means a derived value (hash, checksum,
	// cross-referenced transaction id) does not match the stored value.
	ConsistencyViolation

	// InvariantViolation means a stored value is outside its legal range:
	// reserved identifiers, zero or future transaction ids, undefined or
	// forbidden flag bits.
	InvariantViolation

	// EnvironmentFailure means the underlying storage could not be read,
	// or the image uses a feature the check does not support. It indicates
	// the check cannot proceed, not that the image is corrupt.
	EnvironmentFailure
)

// String returns the category's human-readable name.
func (c Category) String() string {
	switch c {
	case StructuralCorruption:
		return "structural corruption"
	case ConsistencyViolation:
		return "consistency violation"
	case InvariantViolation:
		return "invariant violation"
	case EnvironmentFailure:
		return "environment failure"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Violation is a single check failure. The Label names the record or object
// kind being checked, mirroring the context labels a checker prints.
type Violation struct {
	Category Category
	Label    string
	Message  string
	cause    error
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s", v.Label, v.Message)
}

// Unwrap exposes the underlying cause, if any (environment failures wrap the
// I/O error that triggered them).
func (v *Violation) Unwrap() error {
	return v.cause
}

// Is allows errors.Is matching on a violation's category alone.
func (v *Violation) Is(target error) bool {
	t, ok := target.(*Violation)
	if !ok {
		return false
	}
	return t.Category == v.Category && t.Label == "" && t.Message == ""
}

// CategoryOf returns a sentinel violation for use with errors.Is.
func CategoryOf(c Category) *Violation {
	return &Violation{Category: c}
}

// Structuralf reports a structural-corruption violation.
func Structuralf(label, format string, args ...any) *Violation {
	return &Violation{Category: StructuralCorruption, Label: label, Message: fmt.Sprintf(format, args...)}
}

// Consistencyf reports a consistency violation.
func Consistencyf(label, format string, args ...any) *Violation {
	return &Violation{Category: ConsistencyViolation, Label: label, Message: fmt.Sprintf(format, args...)}
}

// Invariantf reports an invariant violation.
func Invariantf(label, format string, args ...any) *Violation {
	return &Violation{Category: InvariantViolation, Label: label, Message: fmt.Sprintf(format, args...)}
}

// Environmentf reports an environment failure wrapping the causing error.
func Environmentf(label string, cause error, format string, args ...any) *Violation {
	return &Violation{Category: EnvironmentFailure, Label: label, Message: fmt.Sprintf(format, args...), cause: cause}
}

// AsViolation extracts a *Violation from an error chain.
func AsViolation(err error) (*Violation, bool) {
	var v *Violation
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
