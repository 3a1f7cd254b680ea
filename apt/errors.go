package apt

import (
	"errors"
	"fmt"
)

// Layered error codes. A code of 0 always means success; negative values
// identify which step of a command failed. Transport-step codes are produced
// by the controller package; the fixed codes below are produced wherever the
// condition is detected.
const (
	// CodeShortResponse is returned when a response does not accumulate
	// to the command's fixed length
	CodeShortResponse = -300

	// CodeOutOfRange is returned when a caller-supplied voltage magnitude
	// exceeds 1.0
	CodeOutOfRange = -980

	// CodeInvalidEnum is returned when a caller-supplied or decoded value
	// maps to no known enumerator
	CodeInvalidEnum = -1000

	// CodeUnavailable is the transport's reserved sentinel meaning the
	// device is physically gone. It is never re-offset.
	CodeUnavailable = -666

	// CodeDrainInterrupted is returned when the sleep before the
	// channel-enable drain read fails to complete
	CodeDrainInterrupted = -700
)

// Coder is implemented by every error in the layered classification scheme.
type Coder interface {
	Code() int
}

// Code returns the numeric classification code carried by err, or 0 if err
// is nil. An error outside the scheme reports CodeUnavailable only if it is
// (or wraps) such an error; otherwise Code falls back to -1 so a nonzero
// value always means failure.
func Code(err error) int {
	if err == nil {
		return 0
	}
	var c Coder
	if errors.As(err, &c) {
		return c.Code()
	}
	return -1
}

// ProtocolError indicates a response shorter (or longer) than the command's
// fixed length. The transport delivered bytes without error, but not the
// amount the protocol requires.
type ProtocolError struct {
	// Op is the command that failed
	Op string

	// Expected is the fixed response length of the command
	Expected int

	// Got is the number of bytes actually accumulated
	Got int
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s: short response: got %d bytes, expected %d", e.Op, e.Got, e.Expected)
}

// Code returns CodeShortResponse.
func (e *ProtocolError) Code() int { return CodeShortResponse }

// ValidationError indicates a value outside a command's legal domain: a
// caller-supplied voltage magnitude above 1.0, or an enumerator (supplied or
// decoded) that maps to no known value. No transport I/O is performed when a
// caller-supplied value fails validation.
type ValidationError struct {
	// Field names the offending field
	Field string

	// Value is the rejected value, formatted for the message
	Value string

	// code is CodeOutOfRange or CodeInvalidEnum
	code int
}

// NewOutOfRangeError reports a voltage magnitude greater than 1.0.
func NewOutOfRangeError(field string, v float64) *ValidationError {
	return &ValidationError{Field: field, Value: fmt.Sprintf("%g", v), code: CodeOutOfRange}
}

// NewInvalidEnumError reports a value matching no known enumerator.
func NewInvalidEnumError(field string, v int) *ValidationError {
	return &ValidationError{Field: field, Value: fmt.Sprintf("%d", v), code: CodeInvalidEnum}
}

func (e *ValidationError) Error() string {
	if e.code == CodeOutOfRange {
		return fmt.Sprintf("%s: value %s outside [-1.0, 1.0]", e.Field, e.Value)
	}
	return fmt.Sprintf("%s: value %s matches no known enumerator", e.Field, e.Value)
}

// Code returns CodeOutOfRange or CodeInvalidEnum.
func (e *ValidationError) Code() int { return e.code }
