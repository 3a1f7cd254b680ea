package controller

import (
	"fmt"
	"os"
)

// Logger is an optional logging interface that can be provided to the
// controller. This allows integration with any logging framework.
//
// Example with standard log package:
//
//	type StdLogger struct{}
//	func (l *StdLogger) Debug(msg string, kv ...interface{}) { log.Println(msg, kv) }
//	func (l *StdLogger) Info(msg string, kv ...interface{})  { log.Println(msg, kv) }
//	func (l *StdLogger) Error(msg string, kv ...interface{}) { log.Println(msg, kv) }
//
//	ctrl := controller.New(tr, controller.WithLogger(&StdLogger{}))
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}

// Messenger formats user-visible failure messages. It is deliberately
// separate from error classification: the controller always returns coded
// errors, and the Messenger only controls how (and whether) a failure is
// described to a human.
//
// Replace the default with WithMessenger to integrate with a UI, or install
// a no-op to silence messages entirely.
type Messenger interface {
	// TransportFailure describes a failed transport operation. code is the
	// classified code the operation will return.
	TransportFailure(op, msg string, code int)

	// Failure describes a failure with no transport code.
	Failure(op, msg string)
}

// StderrMessenger is the default Messenger. It prints one line per failure
// to standard error.
type StderrMessenger struct{}

func (StderrMessenger) TransportFailure(op, msg string, code int) {
	fmt.Fprintf(os.Stderr, "%s: %s [%d]\n", op, msg, code)
}

func (StderrMessenger) Failure(op, msg string) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", op, msg)
}

// silentMessenger drops all messages. Installed via WithoutMessages.
type silentMessenger struct{}

func (silentMessenger) TransportFailure(string, string, int) {}
func (silentMessenger) Failure(string, string)               {}
