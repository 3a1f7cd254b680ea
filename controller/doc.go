// Package controller provides a high-level session API for a Thorlabs
// K-Cube piezo controller over a USB-serial bridge.
//
// # Overview
//
// A Controller owns the connection lifecycle on top of a Transport:
//
//	Closed --Open()--> Opened --Connect()--> Connected
//
// and exposes the APT command catalog as methods: Identify,
// StopUpdateMessages, HardwareInfo, ActuatorStatus, OutputVoltage,
// SetOutputVoltage, DisplayIntensity, SetDisplayIntensity, IOSettings,
// SetIOSettings, UIParameters, SetUIParameters, ChannelEnabled,
// SetChannelEnabled.
//
// Any catalog command issued before Connect performs one implicit connect
// attempt; a failure there is surfaced as-is and never retried.
//
// # Basic Usage
//
//	tr := serialport.New()
//	ctrl := controller.New(tr, controller.WithSerial("29252712"))
//	defer ctrl.Close()
//
//	info, err := ctrl.HardwareInfo()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(info)
//
// # Error Classification
//
// Every error carries a numeric code per the layered scheme; recover it
// with apt.Code:
//
//	err := ctrl.Connect()
//	switch code := apt.Code(err); {
//	case code == 0:
//	    // connected
//	case code == apt.CodeUnavailable:
//	    // device physically gone
//	case code <= controller.OffsetRTS:
//	    // RTS assertion failed with raw code code - controller.OffsetRTS
//	}
//
// The taxonomy: TransportError (raw transport code, offset by the failing
// step), apt.ProtocolError (short response, -300), apt.ValidationError
// (out-of-range value -980, unknown enumerator -1000), UnavailableError
// (-666, never offset), TimingError (interrupted delay).
//
// # Concurrency
//
// The engine is strictly synchronous: one request/response in flight, no
// internal locking, no cancellation once a transport call or timed delay is
// in progress. Serialize all access to a Controller externally if multiple
// goroutines need it.
//
// # Hardware Independence
//
// This package does NOT touch hardware. The Transport interface is the
// boundary; the serialport package implements it for USB-serial bridges,
// and tests exercise the controller with scripted mock transports.
package controller
