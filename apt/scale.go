package apt

import "math"

// EncodeVoltage converts a normalized voltage in [-1.0, 1.0] to the wire
// representation. The full-scale convention is asymmetric: positive values
// scale by 32767, zero and negative values by 32768.
//
// A magnitude greater than 1.0 is a validation failure (CodeOutOfRange);
// callers must reject it before any transport I/O.
func EncodeVoltage(v float64) (int16, error) {
	if v > 1.0 || v < -1.0 {
		return 0, NewOutOfRangeError("output voltage", v)
	}
	if v > 0 {
		return int16(math.Round(v * positiveFullScale)), nil
	}
	return int16(math.Round(v * negativeFullScale)), nil
}

// DecodeVoltage converts a wire voltage value back to the normalized
// [-1.0, 1.0] representation. Inverse of EncodeVoltage up to one
// quantization step.
func DecodeVoltage(raw int16) float64 {
	if raw > 0 {
		return float64(raw) / positiveFullScale
	}
	return float64(raw) / negativeFullScale
}

// DecodeStatusBits decomposes the status word of a status update response
// into the named fields of an ActuatorStatus. Only the flag fields are
// touched.
func DecodeStatusBits(bits uint32, s *ActuatorStatus) {
	s.Connected = bits&StatusActuatorConnected != 0
	s.Zeroed = bits&StatusZeroed != 0
	s.Zeroing = bits&StatusZeroing != 0
	s.StrainGaugeConnected = bits&StatusStrainGauge != 0
	s.ClosedLoop = bits&StatusClosedLoop != 0
}
