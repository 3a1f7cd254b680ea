package controller

import (
	"github.com/mveary/go-kcube/apt"
)

// Identify instructs the unit to identify itself by flashing its front
// panel display. Fire-and-forget: no response is read.
func (c *Controller) Identify() error {
	if err := c.ensureConnected("identify"); err != nil {
		return err
	}
	return c.writeFixed("identify", apt.BuildIdentifyCmd())
}

// StopUpdateMessages stops the controller's automatic status update
// messages. Fire-and-forget: no response is read.
func (c *Controller) StopUpdateMessages() error {
	if err := c.ensureConnected("stop update messages"); err != nil {
		return err
	}
	return c.writeFixed("stop update messages", apt.BuildStopUpdateMsgsCmd())
}

// HardwareInfo reads the device identification record.
func (c *Controller) HardwareInfo() (*apt.HardwareInfo, error) {
	const op = "hardware info"
	if err := c.ensureConnected(op); err != nil {
		return nil, err
	}
	if err := c.writeFixed(op, apt.BuildHardwareInfoReq()); err != nil {
		return nil, err
	}
	resp, err := c.readFixed(op, apt.HardwareInfoResponseSize)
	if err != nil {
		return nil, err
	}
	return apt.ParseHardwareInfoResponse(resp)
}

// ActuatorStatus reads the piezo status: output voltage, position and the
// decomposed status bits.
func (c *Controller) ActuatorStatus() (*apt.ActuatorStatus, error) {
	const op = "actuator status"
	if err := c.ensureConnected(op); err != nil {
		return nil, err
	}
	if err := c.writeFixed(op, apt.BuildStatusReq()); err != nil {
		return nil, err
	}
	resp, err := c.readFixed(op, apt.StatusResponseSize)
	if err != nil {
		return nil, err
	}
	return apt.ParseActuatorStatusResponse(resp)
}

// OutputVoltage reads the actuator output voltage, normalized to
// [-1.0, 1.0] of the configured maximum.
func (c *Controller) OutputVoltage() (float64, error) {
	const op = "output voltage"
	if err := c.ensureConnected(op); err != nil {
		return 0, err
	}
	if err := c.writeFixed(op, apt.BuildOutputVoltageReq()); err != nil {
		return 0, err
	}
	resp, err := c.readFixed(op, apt.OutputVoltsSize)
	if err != nil {
		return 0, err
	}
	return apt.ParseOutputVoltageResponse(resp)
}

// SetOutputVoltage sets the actuator output voltage. v is normalized to
// [-1.0, 1.0] of the configured maximum; a magnitude above 1.0 is rejected
// with no transport I/O.
func (c *Controller) SetOutputVoltage(v float64) error {
	const op = "set output voltage"
	frame, err := apt.BuildSetOutputVoltageCmd(v)
	if err != nil {
		c.config.Messenger.Failure(op, err.Error())
		return err
	}
	if err := c.ensureConnected(op); err != nil {
		return err
	}
	return c.writeFixed(op, frame)
}

// DisplayIntensity reads the front panel display intensity.
func (c *Controller) DisplayIntensity() (uint16, error) {
	const op = "display intensity"
	if err := c.ensureConnected(op); err != nil {
		return 0, err
	}
	if err := c.writeFixed(op, apt.BuildDispIntensityReq()); err != nil {
		return 0, err
	}
	resp, err := c.readFixed(op, apt.DispIntensitySize)
	if err != nil {
		return 0, err
	}
	return apt.ParseDispIntensityResponse(resp)
}

// SetDisplayIntensity sets the front panel display intensity. The manual
// documents 0-255; units tested accept a narrower range.
func (c *Controller) SetDisplayIntensity(intensity uint16) error {
	const op = "set display intensity"
	if err := c.ensureConnected(op); err != nil {
		return err
	}
	return c.writeFixed(op, apt.BuildSetDispIntensityCmd(intensity))
}

// IOSettings reads the output voltage limit and hub analog input routing.
// A voltage limit matching no known enumerator yields apt.CodeInvalidEnum.
func (c *Controller) IOSettings() (*apt.OutputIOSettings, error) {
	const op = "io settings"
	if err := c.ensureConnected(op); err != nil {
		return nil, err
	}
	if err := c.writeFixed(op, apt.BuildIOSettingsReq()); err != nil {
		return nil, err
	}
	resp, err := c.readFixed(op, apt.IOSettingsSize)
	if err != nil {
		return nil, err
	}
	s, err := apt.ParseIOSettingsResponse(resp)
	if err != nil {
		c.config.Messenger.Failure(op, err.Error())
		return s, err
	}
	return s, nil
}

// SetIOSettings sets the output voltage limit and hub analog input routing.
// An invalid voltage limit is rejected with no transport I/O.
func (c *Controller) SetIOSettings(s apt.OutputIOSettings) error {
	const op = "set io settings"
	frame, err := apt.BuildSetIOSettingsCmd(s)
	if err != nil {
		c.config.Messenger.Failure(op, err.Error())
		return err
	}
	if err := c.ensureConnected(op); err != nil {
		return err
	}
	return c.writeFixed(op, frame)
}

// UIParameters reads the K-Cube wheel and display parameters.
func (c *Controller) UIParameters() (*apt.UIParameters, error) {
	const op = "ui parameters"
	if err := c.ensureConnected(op); err != nil {
		return nil, err
	}
	if err := c.writeFixed(op, apt.BuildUIParamsReq()); err != nil {
		return nil, err
	}
	resp, err := c.readFixed(op, apt.UIParamsSize)
	if err != nil {
		return nil, err
	}
	return apt.ParseUIParamsResponse(resp)
}

// SetUIParameters sets the K-Cube wheel and display parameters.
func (c *Controller) SetUIParameters(p apt.UIParameters) error {
	const op = "set ui parameters"
	if err := c.ensureConnected(op); err != nil {
		return err
	}
	return c.writeFixed(op, apt.BuildSetUIParamsCmd(p))
}

// ChannelEnabled reads the enable state of the given channel. A state byte
// matching no known enumerator yields apt.CodeInvalidEnum.
func (c *Controller) ChannelEnabled(channel byte) (apt.ChannelState, error) {
	const op = "channel enable state"
	if err := c.ensureConnected(op); err != nil {
		return apt.ChannelStateInvalid, err
	}
	if err := c.writeFixed(op, apt.BuildChanEnableReq(channel)); err != nil {
		return apt.ChannelStateInvalid, err
	}
	resp, err := c.readFixed(op, apt.ChanEnableResponseSize)
	if err != nil {
		return apt.ChannelStateInvalid, err
	}
	state, err := apt.ParseChanEnableResponse(resp)
	if err != nil {
		c.config.Messenger.Failure(op, err.Error())
		return state, err
	}
	return state, nil
}

// SetChannelEnabled changes the enable state of the given channel. An
// invalid state is rejected with no transport I/O.
//
// After the write the device may emit an undocumented delayed
// acknowledgement: the controller sleeps EnableDelay and issues one drain
// read whose content is discarded; its absence is not an error. An
// interrupted sleep yields apt.CodeDrainInterrupted.
func (c *Controller) SetChannelEnabled(channel byte, state apt.ChannelState) error {
	const op = "set channel enable state"
	frame, err := apt.BuildSetChanEnableCmd(channel, state)
	if err != nil {
		c.config.Messenger.Failure(op, err.Error())
		return err
	}
	if err := c.ensureConnected(op); err != nil {
		return err
	}
	if err := c.writeFixed(op, frame); err != nil {
		return err
	}

	if err := c.transport.Sleep(c.config.EnableDelay); err != nil {
		cerr := &TimingError{Op: op, code: apt.CodeDrainInterrupted, Err: err}
		c.config.Messenger.Failure(op, "drain sleep interrupted")
		return cerr
	}

	_, err = c.readFixed(op, 0)
	return err
}
