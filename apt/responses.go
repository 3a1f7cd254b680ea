package apt

import (
	"bytes"
	"encoding/binary"
	"time"
)

// checkLength validates a response frame against the command's fixed length.
func checkLength(op string, frame []byte, expected int) error {
	if len(frame) != expected {
		return &ProtocolError{Op: op, Expected: expected, Got: len(frame)}
	}
	return nil
}

// ParseHardwareInfoResponse parses a hardware information response frame
// (header included) into a HardwareInfo record.
//
// Field layout (HardwareInfoResponseSize bytes):
//
//	[HEADER(6)][SERIAL(4)][MODEL(8 ASCII)][TYPE(2)][FW_MINOR(1)]
//	[FW_INTERIM(1)][FW_MAJOR(1)]...[HW_VER(2)@84][HW_MOD(2)@86][N_CHAN(2)@88]
func ParseHardwareInfoResponse(frame []byte) (*HardwareInfo, error) {
	if err := checkLength("hardware info", frame, HardwareInfoResponseSize); err != nil {
		return nil, err
	}

	model := frame[10:18]
	if i := bytes.IndexByte(model, 0); i >= 0 {
		model = model[:i]
	}

	return &HardwareInfo{
		SerialNumber:    binary.LittleEndian.Uint32(frame[6:10]),
		ModelNumber:     string(bytes.TrimRight(model, " ")),
		Type:            binary.LittleEndian.Uint16(frame[18:20]),
		FirmwareMinor:   frame[20],
		FirmwareInterim: frame[21],
		FirmwareMajor:   frame[22],
		HardwareVersion: binary.LittleEndian.Uint16(frame[84:86]),
		ModState:        binary.LittleEndian.Uint16(frame[86:88]),
		ChannelCount:    binary.LittleEndian.Uint16(frame[88:90]),
	}, nil
}

// ParseActuatorStatusResponse parses a status update response frame into an
// ActuatorStatus record and stamps it with the current time.
//
// Field layout (StatusResponseSize bytes):
//
//	[HEADER(6)][CHAN_IDENT(2)][VOLTAGE(2)][POSITION(2)][STATUS_BITS(4)]
func ParseActuatorStatusResponse(frame []byte) (*ActuatorStatus, error) {
	if err := checkLength("actuator status", frame, StatusResponseSize); err != nil {
		return nil, err
	}

	s := &ActuatorStatus{
		Voltage:  int16(binary.LittleEndian.Uint16(frame[8:10])),
		Position: int16(binary.LittleEndian.Uint16(frame[10:12])),
		Time:     time.Now(),
	}
	DecodeStatusBits(binary.LittleEndian.Uint32(frame[12:16]), s)
	return s, nil
}

// ParseOutputVoltageResponse parses an output voltage response frame and
// returns the normalized voltage in [-1.0, 1.0].
//
// Field layout (OutputVoltsSize bytes):
//
//	[HEADER(6)][CHAN_IDENT(2)][VOLTAGE(2)]
func ParseOutputVoltageResponse(frame []byte) (float64, error) {
	if err := checkLength("output voltage", frame, OutputVoltsSize); err != nil {
		return 0, err
	}
	raw := int16(binary.LittleEndian.Uint16(frame[8:10]))
	return DecodeVoltage(raw), nil
}

// ParseDispIntensityResponse parses a display intensity response frame.
//
// Field layout (DispIntensitySize bytes):
//
//	[HEADER(6)][INTENSITY(2)]
func ParseDispIntensityResponse(frame []byte) (uint16, error) {
	if err := checkLength("display intensity", frame, DispIntensitySize); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(frame[6:8]), nil
}

// ParseIOSettingsResponse parses a TPZ IO settings response frame. A voltage
// limit matching no known enumerator yields CodeInvalidEnum.
//
// Field layout (IOSettingsSize bytes):
//
//	[HEADER(6)][CHAN_IDENT(2)][VOLT_LIMIT(2)][HUB_ANALOG_IN(2)][PAD(4)]
func ParseIOSettingsResponse(frame []byte) (*OutputIOSettings, error) {
	if err := checkLength("io settings", frame, IOSettingsSize); err != nil {
		return nil, err
	}

	limit := VoltageLimit(binary.LittleEndian.Uint16(frame[8:10]))
	s := &OutputIOSettings{
		VoltageLimit:   limit,
		HubAnalogInput: binary.LittleEndian.Uint16(frame[10:12]),
	}
	if !limit.Valid() {
		return s, NewInvalidEnumError("voltage limit", int(limit))
	}
	return s, nil
}

// ParseUIParamsResponse parses a K-Cube UI parameter response frame.
//
// Field layout: see BuildSetUIParamsCmd; get and set share offsets.
func ParseUIParamsResponse(frame []byte) (*UIParameters, error) {
	if err := checkLength("ui parameters", frame, UIParamsSize); err != nil {
		return nil, err
	}

	return &UIParameters{
		JoystickMode:      binary.LittleEndian.Uint16(frame[8:10]),
		JoystickGearbox:   binary.LittleEndian.Uint16(frame[10:12]),
		JoystickVoltStep:  int32(binary.LittleEndian.Uint32(frame[12:16])),
		DirectionSense:    binary.LittleEndian.Uint16(frame[16:18]),
		PresetVolt1:       int32(binary.LittleEndian.Uint32(frame[18:22])),
		PresetVolt2:       int32(binary.LittleEndian.Uint32(frame[22:26])),
		DisplayBrightness: binary.LittleEndian.Uint16(frame[26:28]),
		DisplayTimeout:    binary.LittleEndian.Uint16(frame[28:30]),
		DisplayDimLevel:   binary.LittleEndian.Uint16(frame[30:32]),
	}, nil
}

// ParseChanEnableResponse parses a channel enable state response frame. The
// state byte rides in the header's P2 position. A state matching no known
// enumerator yields CodeInvalidEnum.
//
// Frame structure (ChanEnableResponseSize bytes):
//
//	[OPCODE_L][OPCODE_H][CHANNEL][STATE][DEST][SOURCE]
func ParseChanEnableResponse(frame []byte) (ChannelState, error) {
	if err := checkLength("channel enable state", frame, ChanEnableResponseSize); err != nil {
		return ChannelStateInvalid, err
	}

	state := ChannelState(frame[3])
	if !state.Valid() {
		return ChannelStateInvalid, NewInvalidEnumError("channel enable state", int(state))
	}
	return state, nil
}
