package controller

import (
	"errors"
	"fmt"

	"github.com/mveary/go-kcube/apt"
)

// Connection-step and command offsets. A failing step returns the
// transport's raw code plus the step's offset, so the combined code
// identifies both the step and the underlying cause. The fixed codes cover
// failures with no raw code to carry.
const (
	// OffsetChipID offsets a chip identifier read failure during connect
	OffsetChipID = -20

	// OffsetBaudRate offsets a baud rate configuration failure
	OffsetBaudRate = -30

	// OffsetLineProperties offsets a line property configuration failure
	OffsetLineProperties = -40

	// CodePreFlushSleep is returned when the pre-flush delay is interrupted
	CodePreFlushSleep = -49

	// OffsetFlush offsets an input/output flush failure
	OffsetFlush = -50

	// CodePostFlushSleep is returned when the post-flush delay is interrupted
	CodePostFlushSleep = -59

	// OffsetReset offsets a device reset failure
	OffsetReset = -60

	// OffsetFlowControl offsets a flow control configuration failure
	OffsetFlowControl = -70

	// OffsetRTS offsets an RTS assertion failure
	OffsetRTS = -80

	// OffsetWrite offsets a command write failure
	OffsetWrite = -100

	// OffsetRead offsets a response read failure
	OffsetRead = -200
)

// TransportError is a transport failure classified by where it happened:
// the raw code from the transport offset per the step that failed. Open and
// Close failures carry the raw code with no offset.
type TransportError struct {
	// Op is the controller operation that failed
	Op string

	// code is the offset raw code
	code int

	// Err is the raw transport error
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v (code %d)", e.Op, e.Err, e.code)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Code returns the offset transport code.
func (e *TransportError) Code() int { return e.code }

// UnavailableError means the device is physically gone. Its code is always
// apt.CodeUnavailable, never offset, so callers can special-case
// disconnection regardless of which operation hit it.
type UnavailableError struct {
	// Op is the controller operation that hit the disconnection
	Op string

	// Err is the raw transport error
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s: device unavailable", e.Op)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// Code returns apt.CodeUnavailable.
func (e *UnavailableError) Code() int { return apt.CodeUnavailable }

// TimingError means an interruptible delay failed to complete.
type TimingError struct {
	// Op is the controller operation containing the delay
	Op string

	// code is CodePreFlushSleep, CodePostFlushSleep or
	// apt.CodeDrainInterrupted
	code int

	// Err is the underlying cause
	Err error
}

func (e *TimingError) Error() string {
	return fmt.Sprintf("%s: sleep interrupted: %v (code %d)", e.Op, e.Err, e.code)
}

func (e *TimingError) Unwrap() error { return e.Err }

// Code returns the fixed timing code.
func (e *TimingError) Code() int { return e.code }

// rawCode extracts the transport's raw code from err. Errors outside the
// scheme fall back to -1 so the offset still lands in the step's decade.
func rawCode(err error) int {
	var c apt.Coder
	if errors.As(err, &c) {
		return c.Code()
	}
	return -1
}

// classify wraps a raw transport error with the given step offset. The
// unavailable sentinel is never offset.
func classify(op string, offset int, err error) error {
	raw := rawCode(err)
	if raw == apt.CodeUnavailable {
		return &UnavailableError{Op: op, Err: err}
	}
	return &TransportError{Op: op, code: offset + raw, Err: err}
}

// passthrough wraps a raw transport error without offsetting, for Open and
// Close failures.
func passthrough(op string, err error) error {
	raw := rawCode(err)
	if raw == apt.CodeUnavailable {
		return &UnavailableError{Op: op, Err: err}
	}
	return &TransportError{Op: op, code: raw, Err: err}
}
