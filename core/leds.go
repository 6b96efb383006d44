// LED intensity from joystick deflection
// Drives the red (channel A, X axis) and blue (channel B, Y axis) LEDs
// through the PWM HAL.
package core

import "picojoy/config"

// PWMLevels holds the two channel compare levels, each below the PWM wrap
type PWMLevels struct {
	A uint16 // red, X axis
	B uint16 // blue, Y axis
}

// LEDDriver computes and writes channel levels
type LEDDriver struct {
	red      PWMPin
	blue     PWMPin
	wrap     uint32
	clockDiv uint8
	zone     config.LED
}

// NewLEDDriver creates a driver for the configured LED pins
func NewLEDDriver(cfg *config.Config) *LEDDriver {
	return &LEDDriver{
		red:      PWMPin(cfg.Pins.LEDRed),
		blue:     PWMPin(cfg.Pins.LEDBlue),
		wrap:     cfg.PWM.Wrap,
		clockDiv: cfg.PWM.ClockDiv,
		zone:     cfg.LED,
	}
}

// Configure sets up both PWM channels, starting dark
func (l *LEDDriver) Configure() error {
	pwm := MustPWM()
	if err := pwm.ConfigureChannel(l.red, l.wrap, l.clockDiv); err != nil {
		return err
	}
	return pwm.ConfigureChannel(l.blue, l.wrap, l.clockDiv)
}

// Levels maps re-inverted axis values to channel levels.
// Inside the rectangular zero-zone both channels are off. Outside it,
// B follows yInv and A follows xInv only above the red threshold.
// When disabled both are 0; nothing is remembered across calls.
func (l *LEDDriver) Levels(xInv, yInv uint16, enabled bool) PWMLevels {
	if !enabled {
		return PWMLevels{}
	}

	z := l.zone
	if yInv > z.ZeroZoneYMin && yInv < z.ZeroZoneYMax &&
		xInv > z.ZeroZoneXMin && xInv < z.ZeroZoneXMax {
		return PWMLevels{}
	}

	var lv PWMLevels
	lv.B = l.capLevel(yInv)
	if xInv > z.RedThreshold {
		lv.A = l.capLevel(xInv)
	}
	return lv
}

// Update re-inverts the sample and writes both channels.
// The sample is taken by value; the sampler's reference is not touched.
func (l *LEDDriver) Update(s AxisSample, enabled bool) (PWMLevels, error) {
	lv := l.Levels(InvertAxis(s.X), InvertAxis(s.Y), enabled)

	pwm := MustPWM()
	if err := pwm.SetDutyCycle(l.blue, PWMValue(lv.B)); err != nil {
		return lv, err
	}
	if err := pwm.SetDutyCycle(l.red, PWMValue(lv.A)); err != nil {
		return lv, err
	}
	return lv, nil
}

// capLevel keeps a level below the wrap value
func (l *LEDDriver) capLevel(v uint16) uint16 {
	if uint32(v) >= l.wrap {
		return uint16(l.wrap - 1)
	}
	return v
}
