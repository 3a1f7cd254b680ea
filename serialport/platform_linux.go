//go:build linux

package serialport

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// setHardwareFlowControl turns on CRTSCTS for the tty at path. Termios
// state is per-device, so configuring through a second descriptor affects
// the already-open port.
func setHardwareFlowControl(path string) error {
	f, err := os.OpenFile(path, os.O_RDWR|unix.O_NOCTTY|unix.O_NONBLOCK, 0)
	if err != nil {
		return err
	}
	defer f.Close()

	fd := int(f.Fd())
	t, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return err
	}
	t.Cflag |= unix.CRTSCTS
	return unix.IoctlSetTermios(fd, unix.TCSETS, t)
}

// isDisconnected reports whether err means the USB device is physically
// gone rather than a transient I/O failure.
func isDisconnected(err error) bool {
	return errors.Is(err, os.ErrClosed) ||
		errors.Is(err, unix.EIO) ||
		errors.Is(err, unix.ENODEV) ||
		errors.Is(err, unix.ENXIO)
}
