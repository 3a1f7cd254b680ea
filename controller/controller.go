package controller

import (
	"github.com/mveary/go-kcube/apt"
)

// Controller manages a session with a single K-Cube piezo controller. It
// owns the Open/Connected lifecycle on top of a Transport and exposes the
// APT command catalog as methods.
//
// Controller is NOT safe for concurrent use. The scratch buffers, session
// state and transport handle are exclusively owned by one session; callers
// needing concurrent access must serialize with an external mutex.
type Controller struct {
	transport Transport
	config    Config

	// scratch buffers, reused and overwritten by every call
	sndbuf [256]byte
	rdbuf  [256]byte

	opened    bool
	connected bool
	chipID    uint32
}

// New creates a new Controller driving the given transport.
//
// Example:
//
//	tr := serialport.New()
//	ctrl := controller.New(tr,
//	    controller.WithSerial("29252712"),
//	    controller.WithLogger(myLogger),
//	)
func New(transport Transport, opts ...Option) *Controller {
	if transport == nil {
		panic("transport cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Controller{
		transport: transport,
		config:    cfg,
	}
}

// Config returns a copy of the session configuration.
func (c *Controller) Config() Config {
	return c.config
}

// Opened reports whether the USB device is open.
func (c *Controller) Opened() bool {
	return c.opened
}

// Connected reports whether the device session is fully connected.
func (c *Controller) Connected() bool {
	return c.connected
}

// ChipID returns the identifier of the USB-serial bridge chip, read during
// Connect. Valid only while connected.
func (c *Controller) ChipID() uint32 {
	return c.chipID
}

// Open finds and opens the device identified by the configured vendor ID,
// product ID and serial number. Idempotent if already open.
func (c *Controller) Open() error {
	if c.opened {
		return nil
	}

	if err := c.transport.Open(c.config.VendorID, c.config.ProductID, c.config.Serial); err != nil {
		cerr := passthrough("open", err)
		c.config.Messenger.TransportFailure("open", "unable to open device", apt.Code(cerr))
		return cerr
	}

	c.opened = true
	c.logDebug("device opened",
		"vendor", c.config.VendorID,
		"product", c.config.ProductID,
		"serial", c.config.Serial,
	)
	return nil
}

// Connect establishes the session. Opens the device if needed, then in
// strict order: reads the bridge chip identifier, sets the baud rate, sets
// the line to 8-N-1, sleeps the pre-flush delay, flushes input and output,
// sleeps the post-flush delay, resets the device, enables RTS/CTS
// handshaking and asserts RTS.
//
// Each step's failure returns immediately with the step's offset code; the
// session is left Opened but not Connected.
func (c *Controller) Connect() error {
	if !c.opened {
		if err := c.Open(); err != nil || !c.opened {
			c.config.Messenger.Failure("connect", "open failed")
			return err
		}
	}

	id, err := c.transport.ChipID()
	if err != nil {
		cerr := classify("connect", OffsetChipID, err)
		c.config.Messenger.TransportFailure("connect", "unable to read chip id", apt.Code(cerr))
		return cerr
	}

	if err := c.transport.SetBaudRate(c.config.BaudRate); err != nil {
		cerr := classify("connect", OffsetBaudRate, err)
		c.config.Messenger.TransportFailure("connect", "unable to set baud rate", apt.Code(cerr))
		return cerr
	}

	if err := c.transport.SetLineProperties(); err != nil {
		cerr := classify("connect", OffsetLineProperties, err)
		c.config.Messenger.TransportFailure("connect", "unable to set line properties", apt.Code(cerr))
		return cerr
	}

	if err := c.transport.Sleep(c.config.PreFlushDelay); err != nil {
		cerr := &TimingError{Op: "connect", code: CodePreFlushSleep, Err: err}
		c.config.Messenger.Failure("connect", "pre-flush sleep interrupted")
		return cerr
	}

	if err := c.transport.Flush(); err != nil {
		cerr := classify("connect", OffsetFlush, err)
		c.config.Messenger.TransportFailure("connect", "unable to flush", apt.Code(cerr))
		return cerr
	}

	if err := c.transport.Sleep(c.config.PostFlushDelay); err != nil {
		cerr := &TimingError{Op: "connect", code: CodePostFlushSleep, Err: err}
		c.config.Messenger.Failure("connect", "post-flush sleep interrupted")
		return cerr
	}

	if err := c.transport.Reset(); err != nil {
		cerr := classify("connect", OffsetReset, err)
		c.config.Messenger.TransportFailure("connect", "unable to reset device", apt.Code(cerr))
		return cerr
	}

	if err := c.transport.SetFlowControl(); err != nil {
		cerr := classify("connect", OffsetFlowControl, err)
		c.config.Messenger.TransportFailure("connect", "unable to set flow control", apt.Code(cerr))
		return cerr
	}

	if err := c.transport.SetRTS(true); err != nil {
		cerr := classify("connect", OffsetRTS, err)
		c.config.Messenger.TransportFailure("connect", "unable to set RTS", apt.Code(cerr))
		return cerr
	}

	c.chipID = id
	c.connected = true
	c.logInfo("connected",
		"chip_id", id,
		"baud", c.config.BaudRate,
	)
	return nil
}

// Close closes the device. Succeeds trivially if not open. After a failed
// close the session state is unreliable and the controller should be
// discarded.
func (c *Controller) Close() error {
	if !c.opened {
		return nil
	}

	if err := c.transport.Close(); err != nil {
		cerr := passthrough("close", err)
		c.config.Messenger.TransportFailure("close", "unable to close device", apt.Code(cerr))
		return cerr
	}

	c.opened = false
	c.connected = false
	c.chipID = 0
	c.logDebug("device closed")
	return nil
}

// ensureConnected performs the single implicit connect attempt every
// catalog command is allowed. A failure is surfaced as-is, never retried.
func (c *Controller) ensureConnected(op string) error {
	if c.connected {
		return nil
	}
	if err := c.Connect(); err != nil || !c.connected {
		c.config.Messenger.Failure(op, "connect failed")
		return err
	}
	return nil
}

// writeFixed copies frame into the session send buffer and writes it out.
// A write failure is classified with OffsetWrite; the unavailable sentinel
// is propagated verbatim.
func (c *Controller) writeFixed(op string, frame []byte) error {
	n := copy(c.sndbuf[:], frame)

	if _, err := c.transport.Write(c.sndbuf[:n]); err != nil {
		cerr := classify(op, OffsetWrite, err)
		c.config.Messenger.TransportFailure(op, "unable to write data", apt.Code(cerr))
		return cerr
	}
	return nil
}

// readFixed accumulates exactly expected bytes into the session receive
// buffer, reading repeatedly into its tail, and returns the filled slice.
//
// An expected length of 0 is a best-effort flush: one read whose outcome is
// discarded entirely (used to drain the delayed acknowledgement after a
// channel enable change). For a nonzero expectation, a read error is
// classified with OffsetRead and a stream that ends short yields
// apt.CodeShortResponse.
func (c *Controller) readFixed(op string, expected int) ([]byte, error) {
	if expected == 0 {
		n, _ := c.transport.Read(c.rdbuf[:])
		if n > 0 {
			c.logDebug("drained unsolicited data", "op", op, "bytes", n)
		}
		return nil, nil
	}

	total := 0
	for total < expected {
		n, err := c.transport.Read(c.rdbuf[total:])
		if err != nil {
			cerr := classify(op, OffsetRead, err)
			c.config.Messenger.TransportFailure(op, "unable to read data", apt.Code(cerr))
			return nil, cerr
		}
		if n == 0 {
			break
		}
		total += n
	}

	if total != expected {
		cerr := &apt.ProtocolError{Op: op, Expected: expected, Got: total}
		c.config.Messenger.Failure(op, cerr.Error())
		return nil, cerr
	}

	return c.rdbuf[:expected], nil
}

func (c *Controller) logDebug(msg string, keysAndValues ...interface{}) {
	if c.config.Logger != nil {
		c.config.Logger.Debug(msg, keysAndValues...)
	}
}

func (c *Controller) logInfo(msg string, keysAndValues ...interface{}) {
	if c.config.Logger != nil {
		c.config.Logger.Info(msg, keysAndValues...)
	}
}
