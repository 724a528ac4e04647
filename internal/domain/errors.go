package domain

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes pipeline failures. Every kind is fatal; none are retried.
type ErrorKind int

const (
	// KindOpenFailed indicates a resource could not be opened for reading or writing.
	KindOpenFailed ErrorKind = iota + 1

	// KindReadFailed indicates the input resource did not hold two parseable integers.
	KindReadFailed

	// KindWriteFailed indicates the result could not be written to the output resource.
	KindWriteFailed

	// KindOutOfRange indicates an operand fell outside the accepted range.
	KindOutOfRange

	// KindUnknown indicates an unclassified failure.
	KindUnknown
)

// String returns a stable lowercase name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindOpenFailed:
		return "open_failed"
	case KindReadFailed:
		return "read_failed"
	case KindWriteFailed:
		return "write_failed"
	case KindOutOfRange:
		return "out_of_range"
	case KindUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// UncaughtMessage is reported for any failure outside the known kinds.
const UncaughtMessage = "Uncaught exception."

// Error is the single error type returned by every pipeline stage.
// Which payload fields are meaningful depends on Kind:
//
//   - KindOpenFailed, KindWriteFailed: Resource
//   - KindReadFailed: Resource, Line
//   - KindOutOfRange: Value, Range
//
// Err holds the underlying cause, if any. It is never part of the message.
type Error struct {
	Kind     ErrorKind
	Resource ResourceName
	Line     int
	Value    int64
	Range    Range
	Err      error
}

// Error returns the user-facing message for the failure.
func (e *Error) Error() string {
	switch e.Kind {
	case KindOpenFailed:
		return "Unable to open " + e.Resource.String()
	case KindReadFailed:
		return fmt.Sprintf("Error reading %s at line %d", e.Resource, e.Line)
	case KindWriteFailed:
		return "Unable to write " + e.Resource.String()
	case KindOutOfRange:
		return fmt.Sprintf("Argument %d doesn't hit in the range %s", e.Value, e.Range)
	default:
		return UncaughtMessage
	}
}

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// OpenError reports that name could not be opened.
func OpenError(name ResourceName, cause error) *Error {
	return &Error{Kind: KindOpenFailed, Resource: name, Err: cause}
}

// ReadError reports that name could not be parsed at line.
func ReadError(name ResourceName, line int, cause error) *Error {
	return &Error{Kind: KindReadFailed, Resource: name, Line: line, Err: cause}
}

// WriteError reports that writing to name failed.
func WriteError(name ResourceName, cause error) *Error {
	return &Error{Kind: KindWriteFailed, Resource: name, Err: cause}
}

// OutOfRangeError reports that v is not within r.
func OutOfRangeError(v int64, r Range) *Error {
	return &Error{Kind: KindOutOfRange, Value: v, Range: r}
}

// UnknownError wraps an unclassified failure.
func UnknownError(cause error) *Error {
	return &Error{Kind: KindUnknown, Err: cause}
}

// KindOf returns the kind of the first *Error in err's chain,
// or KindUnknown when err carries none. KindOf(nil) returns 0.
func KindOf(err error) ErrorKind {
	if err == nil {
		return 0
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Message returns the single stderr line reported for err.
// Errors outside the taxonomy collapse to UncaughtMessage.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Error()
	}
	return UncaughtMessage
}
