// Package serialport implements the controller.Transport interface for
// APT controllers attached through an FTDI USB-serial bridge, using the
// operating system's usb-serial tty driver via go.bug.st/serial.
//
// The device is located by USB vendor ID, product ID and serial number
// through the go.bug.st/serial enumerator, so no port name needs to be
// configured.
//
// Two bridge operations have no direct tty equivalent and are approximated:
// the chip identifier is derived from the USB serial number, and Reset
// cycles the DTR line. See the method comments.
package serialport

import (
	"fmt"
	"hash/fnv"
	"time"

	"go.bug.st/serial"
	"go.bug.st/serial/enumerator"

	"github.com/mveary/go-kcube/apt"
	"github.com/mveary/go-kcube/controller"
)

// Raw transport error codes reported through controller.PortError. The
// controller offsets these per failing step; apt.CodeUnavailable is
// reserved for a physically absent device and passes through unmodified.
const (
	// codeIO is a read or write failure
	codeIO = -1

	// codeConfig is a line configuration failure
	codeConfig = -2

	// codeNotFound means no attached device matched the identifiers
	codeNotFound = -3

	// codeOpen is an open or close failure
	codeOpen = -4

	// codeState means the operation needs an open port
	codeState = -5
)

// readTimeout bounds each Read call so a short response surfaces as
// end-of-data instead of blocking forever.
const readTimeout = 500 * time.Millisecond

// Port drives a single usb-serial tty. It implements controller.Transport.
type Port struct {
	port   serial.Port
	name   string
	serial string
	mode   serial.Mode
}

// New creates an unopened Port.
func New() *Port {
	return &Port{
		mode: serial.Mode{
			BaudRate: 115200,
			DataBits: 8,
			Parity:   serial.NoParity,
			StopBits: serial.OneStopBit,
		},
	}
}

// Name returns the tty device name once opened (e.g. "/dev/ttyUSB0").
func (p *Port) Name() string { return p.name }

// Open enumerates attached USB serial devices and opens the one matching
// the vendor ID, product ID and serial number. An empty serial matches the
// first device with the right vendor and product.
func (p *Port) Open(vendorID, productID uint16, serialNumber string) error {
	if p.port != nil {
		return nil
	}

	name, err := findPort(vendorID, productID, serialNumber)
	if err != nil {
		return err
	}

	port, err := serial.Open(name, &p.mode)
	if err != nil {
		return &controller.PortError{Op: "open", RawCode: codeOpen, Err: err}
	}
	if err := port.SetReadTimeout(readTimeout); err != nil {
		port.Close()
		return &controller.PortError{Op: "open", RawCode: codeConfig, Err: err}
	}

	p.port = port
	p.name = name
	p.serial = serialNumber
	return nil
}

// findPort locates the tty belonging to the given USB identifiers.
func findPort(vendorID, productID uint16, serialNumber string) (string, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return "", &controller.PortError{Op: "enumerate", RawCode: codeOpen, Err: err}
	}

	vid := fmt.Sprintf("%04X", vendorID)
	pid := fmt.Sprintf("%04X", productID)
	for _, d := range ports {
		if !d.IsUSB || !equalHex(d.VID, vid) || !equalHex(d.PID, pid) {
			continue
		}
		if serialNumber != "" && d.SerialNumber != serialNumber {
			continue
		}
		return d.Name, nil
	}

	return "", &controller.PortError{
		Op:      "enumerate",
		RawCode: codeNotFound,
		Err:     fmt.Errorf("no device %s:%s serial %q", vid, pid, serialNumber),
	}
}

// equalHex compares two hex identifier strings case-insensitively.
func equalHex(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'a' <= ca && ca <= 'f' {
			ca -= 'a' - 'A'
		}
		if 'a' <= cb && cb <= 'f' {
			cb -= 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// Close closes the tty.
func (p *Port) Close() error {
	if p.port == nil {
		return nil
	}
	if err := p.port.Close(); err != nil {
		return &controller.PortError{Op: "close", RawCode: codeOpen, Err: err}
	}
	p.port = nil
	p.name = ""
	return nil
}

// Write writes b to the device.
func (p *Port) Write(b []byte) (int, error) {
	if p.port == nil {
		return 0, &controller.PortError{Op: "write", RawCode: codeState, Err: errNotOpen}
	}
	n, err := p.port.Write(b)
	if err != nil {
		return n, &controller.PortError{Op: "write", RawCode: writeReadCode(err), Err: err}
	}
	return n, nil
}

// Read reads into b. Returns (0, nil) when no data arrived within the
// port's read timeout.
func (p *Port) Read(b []byte) (int, error) {
	if p.port == nil {
		return 0, &controller.PortError{Op: "read", RawCode: codeState, Err: errNotOpen}
	}
	n, err := p.port.Read(b)
	if err != nil {
		return n, &controller.PortError{Op: "read", RawCode: writeReadCode(err), Err: err}
	}
	return n, nil
}

// writeReadCode maps an I/O failure to its raw code, recognizing a
// physically absent device.
func writeReadCode(err error) int {
	if isDisconnected(err) {
		return apt.CodeUnavailable
	}
	return codeIO
}

// ChipID returns an identifier for the USB-serial bridge chip. The tty
// layer cannot read the FTDI chip id register, so the id is an FNV-32a hash
// of the USB serial number: stable per physical unit, zero only when no
// serial is known.
func (p *Port) ChipID() (uint32, error) {
	if p.port == nil {
		return 0, &controller.PortError{Op: "chip id", RawCode: codeState, Err: errNotOpen}
	}
	h := fnv.New32a()
	h.Write([]byte(p.serial))
	return h.Sum32(), nil
}

// SetBaudRate configures the line speed.
func (p *Port) SetBaudRate(baud int) error {
	if p.port == nil {
		return &controller.PortError{Op: "set baud rate", RawCode: codeState, Err: errNotOpen}
	}
	p.mode.BaudRate = baud
	if err := p.port.SetMode(&p.mode); err != nil {
		return &controller.PortError{Op: "set baud rate", RawCode: codeConfig, Err: err}
	}
	return nil
}

// SetLineProperties configures 8 data bits, no parity, one stop bit.
func (p *Port) SetLineProperties() error {
	if p.port == nil {
		return &controller.PortError{Op: "set line properties", RawCode: codeState, Err: errNotOpen}
	}
	p.mode.DataBits = 8
	p.mode.Parity = serial.NoParity
	p.mode.StopBits = serial.OneStopBit
	if err := p.port.SetMode(&p.mode); err != nil {
		return &controller.PortError{Op: "set line properties", RawCode: codeConfig, Err: err}
	}
	return nil
}

// Flush discards pending input and output.
func (p *Port) Flush() error {
	if p.port == nil {
		return &controller.PortError{Op: "flush", RawCode: codeState, Err: errNotOpen}
	}
	if err := p.port.ResetInputBuffer(); err != nil {
		return &controller.PortError{Op: "flush", RawCode: codeIO, Err: err}
	}
	if err := p.port.ResetOutputBuffer(); err != nil {
		return &controller.PortError{Op: "flush", RawCode: codeIO, Err: err}
	}
	return nil
}

// Reset cycles the DTR line. A USB bus reset is not available through the
// tty layer; dropping and reasserting DTR is the closest equivalent the
// bridge responds to.
func (p *Port) Reset() error {
	if p.port == nil {
		return &controller.PortError{Op: "reset", RawCode: codeState, Err: errNotOpen}
	}
	if err := p.port.SetDTR(false); err != nil {
		return &controller.PortError{Op: "reset", RawCode: codeConfig, Err: err}
	}
	time.Sleep(10 * time.Millisecond)
	if err := p.port.SetDTR(true); err != nil {
		return &controller.PortError{Op: "reset", RawCode: codeConfig, Err: err}
	}
	return nil
}

// SetFlowControl enables RTS/CTS hardware handshaking on the line.
func (p *Port) SetFlowControl() error {
	if p.port == nil {
		return &controller.PortError{Op: "set flow control", RawCode: codeState, Err: errNotOpen}
	}
	if err := setHardwareFlowControl(p.name); err != nil {
		return &controller.PortError{Op: "set flow control", RawCode: codeConfig, Err: err}
	}
	return nil
}

// SetRTS asserts or deasserts the request-to-send line.
func (p *Port) SetRTS(asserted bool) error {
	if p.port == nil {
		return &controller.PortError{Op: "set rts", RawCode: codeState, Err: errNotOpen}
	}
	if err := p.port.SetRTS(asserted); err != nil {
		return &controller.PortError{Op: "set rts", RawCode: codeConfig, Err: err}
	}
	return nil
}

// Sleep pauses for d. time.Sleep cannot be interrupted, so this never fails.
func (p *Port) Sleep(d time.Duration) error {
	time.Sleep(d)
	return nil
}

var errNotOpen = fmt.Errorf("port not open")
