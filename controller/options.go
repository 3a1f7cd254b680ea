package controller

import "time"

// Config holds the controller configuration.
type Config struct {
	// VendorID is the USB vendor ID used to find the device.
	// Default is 0x0403 (FTDI).
	VendorID uint16

	// ProductID is the USB product ID used to find the device.
	// Default is 0xFAF0 (Thorlabs APT).
	ProductID uint16

	// Serial is the USB device serial number used to find the device
	Serial string

	// BaudRate is the line speed. Default is 115200.
	BaudRate int

	// PreFlushDelay is the pause before flushing during Connect
	PreFlushDelay time.Duration

	// PostFlushDelay is the pause after flushing during Connect
	PostFlushDelay time.Duration

	// EnableDelay is the pause after a channel enable change, before the
	// drain read for the device's delayed acknowledgement
	EnableDelay time.Duration

	// Logger receives operational logging (optional)
	Logger Logger

	// Messenger formats user-visible failure messages
	Messenger Messenger
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		VendorID:       0x0403,
		ProductID:      0xFAF0,
		BaudRate:       115200,
		PreFlushDelay:  50 * time.Millisecond,
		PostFlushDelay: 50 * time.Millisecond,
		EnableDelay:    500 * time.Millisecond,
		Messenger:      StderrMessenger{},
	}
}

// Option is a functional option for configuring the Controller.
type Option func(*Config)

// WithVendorID sets the USB vendor ID used to find the device.
func WithVendorID(v uint16) Option {
	return func(c *Config) {
		c.VendorID = v
	}
}

// WithProductID sets the USB product ID used to find the device.
func WithProductID(p uint16) Option {
	return func(c *Config) {
		c.ProductID = p
	}
}

// WithSerial sets the USB serial number used to find the device.
//
// Example:
//
//	ctrl := controller.New(tr, controller.WithSerial("29252712"))
func WithSerial(s string) Option {
	return func(c *Config) {
		c.Serial = s
	}
}

// WithBaudRate sets the line speed. Default is 115200.
func WithBaudRate(baud int) Option {
	return func(c *Config) {
		if baud > 0 {
			c.BaudRate = baud
		}
	}
}

// WithPreFlushDelay sets the pause before the flush step of Connect.
// Default is 50ms.
func WithPreFlushDelay(d time.Duration) Option {
	return func(c *Config) {
		if d >= 0 {
			c.PreFlushDelay = d
		}
	}
}

// WithPostFlushDelay sets the pause after the flush step of Connect.
// Default is 50ms.
func WithPostFlushDelay(d time.Duration) Option {
	return func(c *Config) {
		if d >= 0 {
			c.PostFlushDelay = d
		}
	}
}

// WithEnableDelay sets the pause between a channel enable change and the
// drain read for the delayed acknowledgement. Default is 500ms.
func WithEnableDelay(d time.Duration) Option {
	return func(c *Config) {
		if d >= 0 {
			c.EnableDelay = d
		}
	}
}

// WithLogger sets a logger for controller operations.
//
// Example:
//
//	ctrl := controller.New(tr, controller.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithMessenger replaces the default stderr failure messages.
func WithMessenger(m Messenger) Option {
	return func(c *Config) {
		if m != nil {
			c.Messenger = m
		}
	}
}

// WithoutMessages silences user-visible failure messages. Classified errors
// are still returned.
func WithoutMessages() Option {
	return func(c *Config) {
		c.Messenger = silentMessenger{}
	}
}
