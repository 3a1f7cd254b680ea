package apt

import (
	"encoding/binary"
	"testing"
)

// hardwareInfoFixture builds a 90-byte hardware info response for a KPZ101.
func hardwareInfoFixture() []byte {
	frame := make([]byte, HardwareInfoResponseSize)
	copy(frame, []byte{0x06, 0x00, 0x54, 0x00, 0x01, 0x50})
	binary.LittleEndian.PutUint32(frame[6:10], 29252712)
	copy(frame[10:18], "KPZ101  ")
	binary.LittleEndian.PutUint16(frame[18:20], 9)
	frame[20] = 1 // fw minor
	frame[21] = 2 // fw interim
	frame[22] = 3 // fw major
	binary.LittleEndian.PutUint16(frame[84:86], 2)
	binary.LittleEndian.PutUint16(frame[86:88], 1)
	binary.LittleEndian.PutUint16(frame[88:90], 1)
	return frame
}

func TestParseHardwareInfoResponse(t *testing.T) {
	info, err := ParseHardwareInfoResponse(hardwareInfoFixture())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if info.SerialNumber != 29252712 {
		t.Errorf("SerialNumber = %d, want 29252712", info.SerialNumber)
	}
	if info.ModelNumber != "KPZ101" {
		t.Errorf("ModelNumber = %q, want %q", info.ModelNumber, "KPZ101")
	}
	if info.Type != 9 {
		t.Errorf("Type = %d, want 9", info.Type)
	}
	if got := info.FirmwareVersion(); got != "3.2.1" {
		t.Errorf("FirmwareVersion() = %q, want %q", got, "3.2.1")
	}
	if info.HardwareVersion != 2 || info.ModState != 1 || info.ChannelCount != 1 {
		t.Errorf("hw fields = (%d, %d, %d), want (2, 1, 1)",
			info.HardwareVersion, info.ModState, info.ChannelCount)
	}
}

func TestParseHardwareInfoResponseNulTerminatedModel(t *testing.T) {
	frame := hardwareInfoFixture()
	copy(frame[10:18], []byte{'K', 'P', 'Z', '1', '0', '1', 0x00, 0x00})

	info, err := ParseHardwareInfoResponse(frame)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.ModelNumber != "KPZ101" {
		t.Errorf("ModelNumber = %q, want %q", info.ModelNumber, "KPZ101")
	}
}

func TestParseHardwareInfoResponseShort(t *testing.T) {
	_, err := ParseHardwareInfoResponse(hardwareInfoFixture()[:89])
	if Code(err) != CodeShortResponse {
		t.Errorf("Code(err) = %d, want %d", Code(err), CodeShortResponse)
	}
}

func TestParseActuatorStatusResponse(t *testing.T) {
	frame := make([]byte, StatusResponseSize)
	copy(frame, []byte{0x61, 0x06, 0x0A, 0x00, 0x01, 0x50})
	binary.LittleEndian.PutUint16(frame[6:8], ChannelIdent)
	binary.LittleEndian.PutUint16(frame[8:10], uint16(int16(16384)))
	binary.LittleEndian.PutUint16(frame[10:12], 8192)
	binary.LittleEndian.PutUint32(frame[12:16], 0x0501)

	s, err := ParseActuatorStatusResponse(frame)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Voltage != 16384 {
		t.Errorf("Voltage = %d, want 16384", s.Voltage)
	}
	if s.Position != 8192 {
		t.Errorf("Position = %d, want 8192", s.Position)
	}
	if !s.Connected || s.Zeroed || s.Zeroing {
		t.Errorf("flags = (%t, %t, %t), want (true, false, false)",
			s.Connected, s.Zeroed, s.Zeroing)
	}
	if !s.StrainGaugeConnected || !s.ClosedLoop {
		t.Errorf("sg/loop = (%t, %t), want (true, true)",
			s.StrainGaugeConnected, s.ClosedLoop)
	}
	if s.Time.IsZero() {
		t.Error("Time not stamped")
	}
}

func TestParseActuatorStatusResponseNegativeVoltage(t *testing.T) {
	frame := make([]byte, StatusResponseSize)
	raw := int16(-16384)
	binary.LittleEndian.PutUint16(frame[8:10], uint16(raw))

	s, err := ParseActuatorStatusResponse(frame)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Voltage != -16384 {
		t.Errorf("Voltage = %d, want -16384", s.Voltage)
	}
}

func TestParseOutputVoltageResponse(t *testing.T) {
	tests := []struct {
		name string
		raw  int16
		want float64
	}{
		{"zero", 0, 0.0},
		{"full positive", 32767, 1.0},
		{"full negative", -32768, -1.0},
		{"half positive", 16384, 16384.0 / 32767.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := make([]byte, OutputVoltsSize)
			binary.LittleEndian.PutUint16(frame[8:10], uint16(tt.raw))

			v, err := ParseOutputVoltageResponse(frame)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v != tt.want {
				t.Errorf("voltage = %v, want %v", v, tt.want)
			}
		})
	}
}

func TestParseDispIntensityResponse(t *testing.T) {
	frame := make([]byte, DispIntensitySize)
	binary.LittleEndian.PutUint16(frame[6:8], 90)

	v, err := ParseDispIntensityResponse(frame)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 90 {
		t.Errorf("intensity = %d, want 90", v)
	}
}

func TestParseIOSettingsResponse(t *testing.T) {
	frame := make([]byte, IOSettingsSize)
	binary.LittleEndian.PutUint16(frame[8:10], 3)
	binary.LittleEndian.PutUint16(frame[10:12], 1)

	s, err := ParseIOSettingsResponse(frame)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.VoltageLimit != VoltageLimit150V {
		t.Errorf("VoltageLimit = %v, want %v", s.VoltageLimit, VoltageLimit150V)
	}
	if s.HubAnalogInput != 1 {
		t.Errorf("HubAnalogInput = %d, want 1", s.HubAnalogInput)
	}
}

func TestParseIOSettingsResponseInvalidLimit(t *testing.T) {
	frame := make([]byte, IOSettingsSize)
	binary.LittleEndian.PutUint16(frame[8:10], 9)

	s, err := ParseIOSettingsResponse(frame)
	if Code(err) != CodeInvalidEnum {
		t.Errorf("Code(err) = %d, want %d", Code(err), CodeInvalidEnum)
	}
	// The raw record is still returned for diagnostics.
	if s == nil || s.VoltageLimit != VoltageLimit(9) {
		t.Errorf("record = %+v, want raw limit 9", s)
	}
}

func TestParseUIParamsResponse(t *testing.T) {
	want := UIParameters{
		JoystickMode:      1,
		JoystickGearbox:   2,
		JoystickVoltStep:  -3,
		DirectionSense:    1,
		PresetVolt1:       1000,
		PresetVolt2:       -1000,
		DisplayBrightness: 60,
		DisplayTimeout:    5,
		DisplayDimLevel:   2,
	}

	// Set and get share field offsets past the header, so the set builder
	// doubles as the fixture generator.
	frame := BuildSetUIParamsCmd(want)

	got, err := ParseUIParamsResponse(frame)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *got != want {
		t.Errorf("params = %+v, want %+v", *got, want)
	}
}

func TestParseChanEnableResponse(t *testing.T) {
	tests := []struct {
		name     string
		state    byte
		want     ChannelState
		wantCode int
	}{
		{"enabled", 0x01, ChannelEnabled, 0},
		{"disabled", 0x02, ChannelDisabled, 0},
		{"unknown", 0x03, ChannelStateInvalid, CodeInvalidEnum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := []byte{0x12, 0x02, 0x01, tt.state, 0x01, 0x50}
			got, err := ParseChanEnableResponse(frame)
			if Code(err) != tt.wantCode {
				t.Errorf("Code(err) = %d, want %d", Code(err), tt.wantCode)
			}
			if got != tt.want {
				t.Errorf("state = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseShortFrames(t *testing.T) {
	short := make([]byte, 4)

	if _, err := ParseActuatorStatusResponse(short); Code(err) != CodeShortResponse {
		t.Errorf("actuator status: Code(err) = %d, want %d", Code(err), CodeShortResponse)
	}
	if _, err := ParseOutputVoltageResponse(short); Code(err) != CodeShortResponse {
		t.Errorf("output voltage: Code(err) = %d, want %d", Code(err), CodeShortResponse)
	}
	if _, err := ParseDispIntensityResponse(short); Code(err) != CodeShortResponse {
		t.Errorf("display intensity: Code(err) = %d, want %d", Code(err), CodeShortResponse)
	}
	if _, err := ParseIOSettingsResponse(short); Code(err) != CodeShortResponse {
		t.Errorf("io settings: Code(err) = %d, want %d", Code(err), CodeShortResponse)
	}
	if _, err := ParseUIParamsResponse(short); Code(err) != CodeShortResponse {
		t.Errorf("ui parameters: Code(err) = %d, want %d", Code(err), CodeShortResponse)
	}
	if _, err := ParseChanEnableResponse(short); Code(err) != CodeShortResponse {
		t.Errorf("channel enable: Code(err) = %d, want %d", Code(err), CodeShortResponse)
	}
}
