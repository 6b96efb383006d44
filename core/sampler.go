// Joystick axis sampling
// Reads both ADC channels, corrects polarity and offset, and filters jitter
// with a dead zone measured against the last accepted sample.
package core

import "picojoy/config"

// AxisSample is one accepted joystick reading in 12-bit units
type AxisSample struct {
	X uint16
	Y uint16
}

// AxisSampler owns the last accepted sample, which is the dead-zone reference
// for the next read. Slow drift below the dead zone never registers because
// the reference only moves when a read is accepted.
type AxisSampler struct {
	chX      ADCChannelID
	chY      ADCChannelID
	deadZone uint16
	yOffset  uint16
	saturate bool

	last AxisSample
}

// NewAxisSampler creates a sampler from the joystick configuration.
// The initial reference is (0, 0).
func NewAxisSampler(cfg *config.Config) *AxisSampler {
	return &AxisSampler{
		chX:      ADCChannelID(cfg.Pins.ADCChannelX),
		chY:      ADCChannelID(cfg.Pins.ADCChannelY),
		deadZone: cfg.Joystick.DeadZone,
		yOffset:  cfg.Joystick.YOffset,
		saturate: cfg.Joystick.SaturateYOffset,
	}
}

// Configure prepares both ADC channels
func (s *AxisSampler) Configure() error {
	adc := MustADC()
	if err := adc.ConfigureChannel(s.chX); err != nil {
		return err
	}
	return adc.ConfigureChannel(s.chY)
}

// Sample reads X then Y and applies the dead zone per axis.
// On a read error the previous sample is returned unchanged.
func (s *AxisSampler) Sample() (AxisSample, error) {
	adc := MustADC()

	rawX, err := adc.ReadRaw(s.chX)
	if err != nil {
		return s.last, err
	}
	rawY, err := adc.ReadRaw(s.chY)
	if err != nil {
		return s.last, err
	}

	x := InvertAxis(clampADC(rawX))
	y := s.offsetY(clampADC(rawY))

	s.last.X = ApplyDeadZone(x, s.last.X, s.deadZone)
	s.last.Y = ApplyDeadZone(y, s.last.Y, s.deadZone)
	return s.last, nil
}

// Last returns the last accepted sample
func (s *AxisSampler) Last() AxisSample {
	return s.last
}

// offsetY subtracts the Y offset. Readings below the offset either clamp
// to zero or wrap like the 16-bit subtraction would.
func (s *AxisSampler) offsetY(raw uint16) uint16 {
	if s.saturate && raw < s.yOffset {
		return 0
	}
	return raw - s.yOffset
}

// ApplyDeadZone returns raw when it differs from prev by more than deadZone,
// otherwise prev.
func ApplyDeadZone(raw, prev, deadZone uint16) uint16 {
	d := int32(raw) - int32(prev)
	if d < 0 {
		d = -d
	}
	if d > int32(deadZone) {
		return raw
	}
	return prev
}

// InvertAxis mirrors a 12-bit value (v -> 4095-v). Values above the ADC
// range wrap, matching 16-bit arithmetic.
func InvertAxis(v uint16) uint16 {
	return config.ADCMax - v
}

func clampADC(v ADCValue) uint16 {
	if v > config.ADCMax {
		return config.ADCMax
	}
	return uint16(v)
}
