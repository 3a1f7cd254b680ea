package apt

// Header framing constants.
const (
	// HeaderSize is the fixed size of every message header:
	// OPCODE(2) + P1(1) + P2(1) + DEST(1) + SOURCE(1)
	HeaderSize = 6

	// DestUnit is the destination address of a generic USB unit
	DestUnit = 0x50

	// SourceHost is the source address of the host
	SourceHost = 0x01

	// PayloadFollows is ORed into DEST when a payload trails the header
	PayloadFollows = 0x80

	// ChannelIdent is the channel identifier carried in the first two
	// payload bytes of most set commands
	ChannelIdent = 0x01
)

// Opcodes per the APT manual. Page numbers refer to Issue 37.
const (
	// OpIdentify flashes the unit's front panel display (page 46)
	OpIdentify = 0x0223

	// OpStopUpdateMsgs stops automatic status updates (page 51)
	OpStopUpdateMsgs = 0x0012

	// OpReqHardwareInfo requests hardware information (page 52)
	OpReqHardwareInfo = 0x0005

	// OpSetChanEnable sets the channel enable state (page 47)
	OpSetChanEnable = 0x0210

	// OpReqChanEnable requests the channel enable state (page 47)
	OpReqChanEnable = 0x0211

	// OpSetOutputVolts sets the piezo output voltage (page 182)
	OpSetOutputVolts = 0x0643

	// OpReqOutputVolts requests the piezo output voltage (page 182)
	OpReqOutputVolts = 0x0644

	// OpReqStatus requests the piezo status update (page 205)
	OpReqStatus = 0x0660

	// OpSetDispIntensity sets the front panel display intensity (page 223)
	OpSetDispIntensity = 0x07D1

	// OpReqDispIntensity requests the front panel display intensity (page 223)
	OpReqDispIntensity = 0x07D2

	// OpSetIOSettings sets the TPZ output voltage limit and hub routing (page 225)
	OpSetIOSettings = 0x07D4

	// OpReqIOSettings requests the TPZ IO settings (page 225)
	OpReqIOSettings = 0x07D5

	// OpSetUIParams sets the K-Cube wheel/display parameters (page 230)
	OpSetUIParams = 0x07F0

	// OpReqUIParams requests the K-Cube wheel/display parameters (page 230)
	OpReqUIParams = 0x07F1
)

// Fixed message lengths, header included. A response length of 0 means the
// command is fire-and-forget (or, for the channel-enable change, that a
// single best-effort drain read follows instead of a framed response).
const (
	// HardwareInfoResponseSize is the MGMSG_HW_GET_INFO response length
	HardwareInfoResponseSize = 90

	// ChanEnableResponseSize is the MGMSG_MOD_GET_CHANENABLESTATE response length
	ChanEnableResponseSize = 6

	// OutputVoltsSize is the length of both the set command and the
	// get response for the output voltage
	OutputVoltsSize = 10

	// StatusResponseSize is the MGMSG_PZ_GET_PZSTATUSUPDATE response length
	StatusResponseSize = 16

	// DispIntensitySize is the length of both the set command and the
	// get response for the display intensity
	DispIntensitySize = 8

	// IOSettingsSize is the length of both the set command and the
	// get response for the TPZ IO settings
	IOSettingsSize = 16

	// UIParamsSize is the length of both the set command and the
	// get response for the K-Cube MMI/UI parameters
	UIParamsSize = 40
)

// Status bits reported in the MGMSG_PZ_GET_PZSTATUSUPDATE response.
const (
	// StatusActuatorConnected is set when a piezo actuator is connected
	StatusActuatorConnected = 0x00000001

	// StatusZeroed is set once the actuator has been zeroed
	StatusZeroed = 0x00000010

	// StatusZeroing is set while the actuator is being zeroed
	StatusZeroing = 0x00000020

	// StatusStrainGauge is set when a strain gauge is connected
	StatusStrainGauge = 0x00000100

	// StatusClosedLoop is set in closed-loop position control mode
	StatusClosedLoop = 0x00000400
)

// Voltage scaling constants. The wire value is an asymmetric full-scale
// signed 16-bit integer: positive fractions scale by 32767, negative (and
// zero) by 32768.
const (
	positiveFullScale = 32767.0
	negativeFullScale = 32768.0
)
