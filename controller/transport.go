package controller

import (
	"fmt"
	"time"
)

// Transport is the byte channel the controller drives. Implemented by the
// serialport package for real hardware and by mock transports in tests.
//
// Every method reports failure with an error carrying a raw negative code
// (see PortError); the controller offsets those codes per connection step so
// a caller can tell which step failed. The reserved code
// apt.CodeUnavailable (-666) means the device is physically gone and is
// always propagated verbatim.
type Transport interface {
	// Open finds and opens the device identified by the USB vendor ID,
	// product ID and serial string.
	Open(vendorID, productID uint16, serial string) error

	// Close closes the device.
	Close() error

	// Write writes p to the device, returning the number of bytes written.
	Write(p []byte) (int, error)

	// Read reads into p, returning the number of bytes read. A return of
	// (0, nil) means no data was available before the transport's own
	// timeout.
	Read(p []byte) (int, error)

	// ChipID reads the identifier of the USB-serial bridge chip.
	ChipID() (uint32, error)

	// SetBaudRate configures the line speed.
	SetBaudRate(baud int) error

	// SetLineProperties configures the line to 8 data bits, no parity,
	// one stop bit.
	SetLineProperties() error

	// Flush discards pending input and output.
	Flush() error

	// Reset resets the device.
	Reset() error

	// SetFlowControl enables RTS/CTS hardware handshaking.
	SetFlowControl() error

	// SetRTS asserts or deasserts the request-to-send line.
	SetRTS(asserted bool) error

	// Sleep pauses for d. Returns an error only if the delay could not
	// run to completion.
	Sleep(d time.Duration) error
}

// PortError is a raw transport failure. Code is the transport's negative
// error code, passed through unmodified by Open and Close and offset by the
// controller everywhere else.
type PortError struct {
	// Op is the transport operation that failed
	Op string

	// RawCode is the transport's raw negative code
	RawCode int

	// Err is the underlying cause, if any
	Err error
}

func (e *PortError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v [%d]", e.Op, e.Err, e.RawCode)
	}
	return fmt.Sprintf("%s failed [%d]", e.Op, e.RawCode)
}

func (e *PortError) Unwrap() error { return e.Err }

// Code returns the raw transport code.
func (e *PortError) Code() int { return e.RawCode }
