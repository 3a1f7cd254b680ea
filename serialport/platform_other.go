//go:build !linux

package serialport

import (
	"errors"
	"fmt"
	"os"
)

// setHardwareFlowControl is only implemented on Linux, where the APT
// controllers are supported through the ftdi_sio tty driver.
func setHardwareFlowControl(path string) error {
	return fmt.Errorf("hardware flow control not supported on this platform")
}

// isDisconnected reports whether err means the USB device is physically
// gone rather than a transient I/O failure.
func isDisconnected(err error) bool {
	return errors.Is(err, os.ErrClosed)
}
