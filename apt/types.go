package apt

import (
	"fmt"
	"strings"
	"time"
)

// HardwareInfo contains device identification returned by the hardware
// information request.
type HardwareInfo struct {
	// SerialNumber is the device serial number
	SerialNumber uint32

	// ModelNumber is the device model number, NUL-trimmed (e.g. "KPZ101")
	ModelNumber string

	// Type is the device type code
	Type uint16

	// FirmwareMinor, FirmwareInterim, FirmwareMajor are the firmware
	// version components
	FirmwareMinor   uint8
	FirmwareInterim uint8
	FirmwareMajor   uint8

	// HardwareVersion is the hardware version number
	HardwareVersion uint16

	// ModState is the hardware modification state
	ModState uint16

	// ChannelCount is the number of channels on the device
	ChannelCount uint16
}

// FirmwareVersion renders the firmware version as "major.interim.minor".
func (h *HardwareInfo) FirmwareVersion() string {
	return fmt.Sprintf("%d.%d.%d", h.FirmwareMajor, h.FirmwareInterim, h.FirmwareMinor)
}

func (h *HardwareInfo) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Connected to:\n")
	fmt.Fprintf(&b, "      Model: %s\n", h.ModelNumber)
	fmt.Fprintf(&b, "       Type: %d\n", h.Type)
	fmt.Fprintf(&b, "    Ser Num: %d\n", h.SerialNumber)
	fmt.Fprintf(&b, "     HW Ver: %d\n", h.HardwareVersion)
	fmt.Fprintf(&b, "     HW Mod: %d\n", h.ModState)
	fmt.Fprintf(&b, "   Num. Ch.: %d\n", h.ChannelCount)
	fmt.Fprintf(&b, "   F/W Ver.: %s\n", h.FirmwareVersion())
	return b.String()
}

// ActuatorStatus contains the piezo status returned by the status update
// request. Applies to the TPZ001 and KPZ101.
type ActuatorStatus struct {
	// Voltage is the output voltage applied to the piezo.
	// Range -32768 to 32767, corresponding to -100% to 100% of the
	// maximum output voltage.
	Voltage int16

	// Position is the piezo position. Range 0 to 32767, corresponding
	// to 0 to 100% of maximum travel. Valid only with a strain gauge.
	Position int16

	// Connected is true when a piezo actuator is connected
	Connected bool

	// Zeroed is true once the actuator has been zeroed
	Zeroed bool

	// Zeroing is true while the actuator is being zeroed
	Zeroing bool

	// StrainGaugeConnected is true when a strain gauge is connected
	StrainGaugeConnected bool

	// ClosedLoop is true in closed-loop position control mode
	ClosedLoop bool

	// Time is when the status was read
	Time time.Time
}

// Age reports how long ago the status was captured.
func (s *ActuatorStatus) Age() time.Duration {
	return time.Since(s.Time)
}

func (s *ActuatorStatus) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "PZ Status:\n")
	fmt.Fprintf(&b, "    Voltage: %d\n", s.Voltage)
	fmt.Fprintf(&b, "   Position: %d\n", s.Position)
	fmt.Fprintf(&b, "  Connected: %t\n", s.Connected)
	fmt.Fprintf(&b, "     Zeroed: %t\n", s.Zeroed)
	fmt.Fprintf(&b, "    Zeroing: %t\n", s.Zeroing)
	fmt.Fprintf(&b, "   SG Conn.: %t\n", s.StrainGaugeConnected)
	fmt.Fprintf(&b, "  P.C. Mode: %t\n", s.ClosedLoop)
	fmt.Fprintf(&b, "        Age: %v\n", s.Age())
	return b.String()
}

// VoltageLimit is the TPZ output voltage limit enumeration.
type VoltageLimit uint16

const (
	// VoltageLimitInvalid matches no known wire value
	VoltageLimitInvalid VoltageLimit = 0

	// VoltageLimit75V limits output to 75 V
	VoltageLimit75V VoltageLimit = 1

	// VoltageLimit100V limits output to 100 V
	VoltageLimit100V VoltageLimit = 2

	// VoltageLimit150V limits output to 150 V
	VoltageLimit150V VoltageLimit = 3
)

// Valid reports whether the limit maps to a known wire value.
func (v VoltageLimit) Valid() bool {
	return v >= VoltageLimit75V && v <= VoltageLimit150V
}

// Volts returns the limit in volts, or 0 for an invalid limit.
func (v VoltageLimit) Volts() float64 {
	switch v {
	case VoltageLimit75V:
		return 75
	case VoltageLimit100V:
		return 100
	case VoltageLimit150V:
		return 150
	}
	return 0
}

func (v VoltageLimit) String() string {
	if !v.Valid() {
		return fmt.Sprintf("invalid(%d)", uint16(v))
	}
	return fmt.Sprintf("%gV", v.Volts())
}

// OutputIOSettings contains the TPZ IO settings: the output voltage limit
// and the hub analog input routing.
type OutputIOSettings struct {
	// VoltageLimit is the output voltage limit
	VoltageLimit VoltageLimit

	// HubAnalogInput selects the hub analog input routing
	HubAnalogInput uint16
}

func (s *OutputIOSettings) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "TPZ IO Settings:\n")
	fmt.Fprintf(&b, "  Voltage Limit: %s\n", s.VoltageLimit)
	fmt.Fprintf(&b, "  Hub Analog In: %d\n", s.HubAnalogInput)
	return b.String()
}

// UIParameters contains the K-Cube top-panel wheel and display parameters.
type UIParameters struct {
	// JoystickMode selects the wheel mode
	JoystickMode uint16

	// JoystickGearbox selects the voltage adjustment rate of the wheel
	JoystickGearbox uint16

	// JoystickVoltStep is the voltage jog step
	JoystickVoltStep int32

	// DirectionSense sets the wheel direction sense
	DirectionSense uint16

	// PresetVolt1, PresetVolt2 are the two preset voltage positions
	PresetVolt1 int32
	PresetVolt2 int32

	// DisplayBrightness is the display brightness, 0-100
	DisplayBrightness uint16

	// DisplayTimeout is the display dim timeout in minutes, 0 = never
	DisplayTimeout uint16

	// DisplayDimLevel is the dimmed brightness, 0-10
	DisplayDimLevel uint16
}

func (p *UIParameters) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "KCube MMI Params:\n")
	fmt.Fprintf(&b, "       JS Mode: %d\n", p.JoystickMode)
	fmt.Fprintf(&b, "    JS Gearbox: %d\n", p.JoystickGearbox)
	fmt.Fprintf(&b, "  JS Volt Step: %d\n", p.JoystickVoltStep)
	fmt.Fprintf(&b, "    Dir. Sense: %d\n", p.DirectionSense)
	fmt.Fprintf(&b, "  Preset Volt1: %d\n", p.PresetVolt1)
	fmt.Fprintf(&b, "  Preset Volt2: %d\n", p.PresetVolt2)
	fmt.Fprintf(&b, "    Brightness: %d\n", p.DisplayBrightness)
	fmt.Fprintf(&b, "       Timeout: %d\n", p.DisplayTimeout)
	fmt.Fprintf(&b, "     Dim Level: %d\n", p.DisplayDimLevel)
	return b.String()
}

// ChannelState is the channel enable state enumeration.
type ChannelState uint8

const (
	// ChannelStateInvalid matches no known wire value
	ChannelStateInvalid ChannelState = 0

	// ChannelEnabled means the channel output is on
	ChannelEnabled ChannelState = 1

	// ChannelDisabled means the channel output is off
	ChannelDisabled ChannelState = 2
)

// Valid reports whether the state maps to a known wire value.
func (s ChannelState) Valid() bool {
	return s == ChannelEnabled || s == ChannelDisabled
}

func (s ChannelState) String() string {
	switch s {
	case ChannelEnabled:
		return "enabled"
	case ChannelDisabled:
		return "disabled"
	}
	return fmt.Sprintf("invalid(%d)", uint8(s))
}
