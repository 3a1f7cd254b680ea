package apt

import "encoding/binary"

// header builds the fixed 6-byte message header.
//
//	[OPCODE_L][OPCODE_H][P1][P2][DEST][SOURCE]
func header(opcode uint16, p1, p2, dest byte) []byte {
	return []byte{byte(opcode), byte(opcode >> 8), p1, p2, dest, SourceHost}
}

// request builds a header-only ("get" or fire-and-forget) frame.
func request(opcode uint16, p1, p2 byte) []byte {
	return header(opcode, p1, p2, DestUnit)
}

// setCommand builds a "set" frame: header with the payload-follows bit and
// the payload length in P1, followed by the payload zero-padded to size
// (header included). The payload opens with the fixed channel identifier
// pair unless the command's layout says otherwise, in which case the caller
// passes the full payload.
func setCommand(opcode uint16, payload []byte, size int) []byte {
	frame := make([]byte, size)
	copy(frame, header(opcode, byte(size-HeaderSize), 0x00, DestUnit|PayloadFollows))
	copy(frame[HeaderSize:], payload)
	return frame
}

// BuildIdentifyCmd constructs the identify command (MGMSG_MOD_IDENTIFY).
// The unit responds by flashing its front panel display; there is no reply
// message.
func BuildIdentifyCmd() []byte {
	return request(OpIdentify, 0x00, 0x00)
}

// BuildStopUpdateMsgsCmd constructs the stop-update-messages command
// (MGMSG_HW_STOP_UPDATEMSGS). No reply message.
func BuildStopUpdateMsgsCmd() []byte {
	return request(OpStopUpdateMsgs, 0x00, 0x00)
}

// BuildHardwareInfoReq constructs the hardware information request
// (MGMSG_HW_REQ_INFO). The response is HardwareInfoResponseSize bytes.
func BuildHardwareInfoReq() []byte {
	return request(OpReqHardwareInfo, 0x00, 0x00)
}

// BuildChanEnableReq constructs the channel enable state request
// (MGMSG_MOD_REQ_CHANENABLESTATE) for the given channel. The response is
// ChanEnableResponseSize bytes with the state byte at offset 3.
func BuildChanEnableReq(channel byte) []byte {
	return request(OpReqChanEnable, channel, 0x00)
}

// BuildSetChanEnableCmd constructs the channel enable state change
// (MGMSG_MOD_SET_CHANENABLESTATE). Header-only: P1 is the channel, P2 the
// state. A state matching no known enumerator is rejected before any I/O.
//
// The device may emit an undocumented delayed acknowledgement after this
// command; the controller drains and discards it.
func BuildSetChanEnableCmd(channel byte, state ChannelState) ([]byte, error) {
	if !state.Valid() {
		return nil, NewInvalidEnumError("channel enable state", int(state))
	}
	return request(OpSetChanEnable, channel, byte(state)), nil
}

// BuildOutputVoltageReq constructs the output voltage request
// (MGMSG_PZ_REQ_OUTPUTVOLTS). The response is OutputVoltsSize bytes with the
// scaled value at offset 8.
func BuildOutputVoltageReq() []byte {
	return request(OpReqOutputVolts, ChannelIdent, 0x00)
}

// BuildSetOutputVoltageCmd constructs the output voltage change
// (MGMSG_PZ_SET_OUTPUTVOLTS).
//
// Frame structure (OutputVoltsSize bytes):
//
//	[HEADER(6)][CHAN_IDENT(2)][VOLTAGE(2)]
//
// v is the normalized voltage in [-1.0, 1.0]; a magnitude above 1.0 is a
// validation failure and no frame is produced.
func BuildSetOutputVoltageCmd(v float64) ([]byte, error) {
	raw, err := EncodeVoltage(v)
	if err != nil {
		return nil, err
	}
	payload := make([]byte, 4)
	binary.LittleEndian.PutUint16(payload[0:2], ChannelIdent)
	binary.LittleEndian.PutUint16(payload[2:4], uint16(raw))
	return setCommand(OpSetOutputVolts, payload, OutputVoltsSize), nil
}

// BuildStatusReq constructs the piezo status update request
// (MGMSG_PZ_REQ_PZSTATUSUPDATE). The response is StatusResponseSize bytes.
func BuildStatusReq() []byte {
	return request(OpReqStatus, ChannelIdent, 0x00)
}

// BuildDispIntensityReq constructs the display intensity request
// (MGMSG_PZ_REQ_TPZ_DISPSETTINGS). The response is DispIntensitySize bytes
// with the intensity at offset 6.
func BuildDispIntensityReq() []byte {
	return request(OpReqDispIntensity, ChannelIdent, 0x00)
}

// BuildSetDispIntensityCmd constructs the display intensity change
// (MGMSG_PZ_SET_TPZ_DISPSETTINGS).
//
// Frame structure (DispIntensitySize bytes):
//
//	[HEADER(6)][INTENSITY(2)]
//
// Unlike the other set commands, the 2-byte payload is the bare intensity
// value with no channel identifier. The manual says 0-255.
func BuildSetDispIntensityCmd(intensity uint16) []byte {
	payload := make([]byte, 2)
	binary.LittleEndian.PutUint16(payload, intensity)
	return setCommand(OpSetDispIntensity, payload, DispIntensitySize)
}

// BuildIOSettingsReq constructs the TPZ IO settings request
// (MGMSG_PZ_REQ_TPZ_IOSETTINGS). The response is IOSettingsSize bytes.
func BuildIOSettingsReq() []byte {
	return request(OpReqIOSettings, ChannelIdent, 0x00)
}

// BuildSetIOSettingsCmd constructs the TPZ IO settings change
// (MGMSG_PZ_SET_TPZ_IOSETTINGS).
//
// Frame structure (IOSettingsSize bytes):
//
//	[HEADER(6)][CHAN_IDENT(2)][VOLT_LIMIT(2)][HUB_ANALOG_IN(2)][PAD(4)]
//
// A voltage limit matching no known enumerator is rejected before any I/O.
func BuildSetIOSettingsCmd(s OutputIOSettings) ([]byte, error) {
	if !s.VoltageLimit.Valid() {
		return nil, NewInvalidEnumError("voltage limit", int(s.VoltageLimit))
	}
	payload := make([]byte, IOSettingsSize-HeaderSize)
	binary.LittleEndian.PutUint16(payload[0:2], ChannelIdent)
	binary.LittleEndian.PutUint16(payload[2:4], uint16(s.VoltageLimit))
	binary.LittleEndian.PutUint16(payload[4:6], s.HubAnalogInput)
	return setCommand(OpSetIOSettings, payload, IOSettingsSize), nil
}

// BuildUIParamsReq constructs the K-Cube UI parameter request
// (MGMSG_KPZ_REQ_KCUBEMMIPARAMS). The response is UIParamsSize bytes.
func BuildUIParamsReq() []byte {
	return request(OpReqUIParams, ChannelIdent, 0x00)
}

// BuildSetUIParamsCmd constructs the K-Cube UI parameter change
// (MGMSG_KPZ_SET_KCUBEMMIPARAMS).
//
// Frame structure (UIParamsSize bytes):
//
//	[HEADER(6)][CHAN_IDENT(2)][JS_MODE(2)][JS_GEARBOX(2)][JS_VOLT_STEP(4)]
//	[DIR_SENSE(2)][PRESET_VOLT1(4)][PRESET_VOLT2(4)][BRIGHTNESS(2)]
//	[TIMEOUT(2)][DIM_LEVEL(2)][PAD(8)]
func BuildSetUIParamsCmd(p UIParameters) []byte {
	payload := make([]byte, UIParamsSize-HeaderSize)
	binary.LittleEndian.PutUint16(payload[0:2], ChannelIdent)
	binary.LittleEndian.PutUint16(payload[2:4], p.JoystickMode)
	binary.LittleEndian.PutUint16(payload[4:6], p.JoystickGearbox)
	binary.LittleEndian.PutUint32(payload[6:10], uint32(p.JoystickVoltStep))
	binary.LittleEndian.PutUint16(payload[10:12], p.DirectionSense)
	binary.LittleEndian.PutUint32(payload[12:16], uint32(p.PresetVolt1))
	binary.LittleEndian.PutUint32(payload[16:20], uint32(p.PresetVolt2))
	binary.LittleEndian.PutUint16(payload[20:22], p.DisplayBrightness)
	binary.LittleEndian.PutUint16(payload[22:24], p.DisplayTimeout)
	binary.LittleEndian.PutUint16(payload[24:26], p.DisplayDimLevel)
	return setCommand(OpSetUIParams, payload, UIParamsSize)
}
