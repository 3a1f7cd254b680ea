// Package apt implements the Thorlabs APT host-controller communications protocol.
//
// This package provides functions to build command frames and parse response
// frames for the piezo-driver (KPZ/TPZ) subset of the APT protocol, as used by
// K-Cube controllers such as the KPZ101.
//
// # Protocol Overview
//
// Every message begins with a fixed 6-byte header, little-endian throughout:
//
//	[OPCODE_L][OPCODE_H][P1][P2][DEST][SOURCE]
//
// Where:
//   - OPCODE = 16-bit message identifier
//   - P1/P2 = command parameters (channel identifier, enable state, ...)
//   - DEST = destination address (0x50 for a USB unit); the high bit set
//     means a data payload follows the header
//   - SOURCE = source address (0x01 for the host)
//
// "Get" and fire-and-forget commands are the bare 6-byte header. "Set"
// commands carry a payload after the header; P1 then holds the payload
// length and DEST has PayloadFollows ORed in:
//
//	[OPCODE_L][OPCODE_H][LEN][0x00][DEST|0x80][SOURCE][PAYLOAD...]
//
// Responses mirror the request header in their first 6 bytes; payload data
// begins at offset 6. Each command has a fixed response length; there is no
// framing checksum.
//
// # Command Builders
//
// Use the Build* functions to create request frames:
//
//	frame := apt.BuildHardwareInfoReq()
//	frame, err := apt.BuildSetOutputVoltageCmd(0.5)
//	// ... etc
//
// # Response Parsers
//
// Use the Parse* functions to decode fixed-length response frames into typed
// records:
//
//	info, err := apt.ParseHardwareInfoResponse(frame)
//	status, err := apt.ParseActuatorStatusResponse(frame)
//	// ... etc
//
// # Error Codes
//
// Errors returned by this package implement the Coder interface and carry
// the numeric codes of the layered classification scheme (CodeShortResponse,
// CodeOutOfRange, CodeInvalidEnum). Use Code to recover the code from any
// error without string matching:
//
//	if apt.Code(err) == apt.CodeInvalidEnum {
//	    // decoded wire value maps to no known enumerator
//	}
//
// # Reference
//
// Thorlabs "APT Communications Protocol", Issue 37, 22 May 2023. Page
// references in this package point at that issue.
package apt
