// Package config holds the compiled-in board wiring and tuning values.
// The firmware has no runtime configuration source; targets call Default()
// and validate it once at boot.
package config

import "errors"

// ADCMax is the largest value a 12-bit conversion can return.
const ADCMax = 4095

// PWM backends
const (
	PWMBackendSlice = "slice" // RP2040 hardware PWM slices
	PWMBackendPIO   = "pio"   // PIO state machine running a counter-compare program
)

// Pins holds GPIO and ADC channel assignments
type Pins struct {
	ButtonA        uint8
	ButtonJoystick uint8
	LEDGreen       uint8 // plain digital output
	LEDBlue        uint8 // PWM channel B (Y axis)
	LEDRed         uint8 // PWM channel A (X axis)
	ADCChannelX    uint8
	ADCChannelY    uint8
	I2CSDA         uint8
	I2CSCL         uint8
}

// Joystick holds the sampling and mapping parameters
type Joystick struct {
	DeadZone uint16 // minimum delta from the last accepted sample
	YOffset  uint16 // subtracted from the raw Y reading

	// SaturateYOffset clamps Y at zero when the reading is below YOffset.
	// When false the 16-bit wrap-around of the raw subtraction is kept.
	SaturateYOffset bool

	DivisorX uint16 // raw X units per grid step (column)
	DivisorY uint16 // raw Y units per grid step (row)

	// EdgeDepth is how many grid steps next to each edge get corrected
	EdgeDepth uint16
}

// Display holds the OLED wiring and frame geometry
type Display struct {
	I2CBus      uint8
	I2CFreqHz   uint32
	Address     uint16
	Width       int16
	Height      int16
	BorderInset int16
	MarkerSize  int16
}

// LED holds the zero-zone and threshold used to derive channel levels.
// Bounds are exclusive.
type LED struct {
	ZeroZoneYMin uint16
	ZeroZoneYMax uint16
	ZeroZoneXMin uint16
	ZeroZoneXMax uint16
	RedThreshold uint16 // channel A is off at or below this value
}

// PWM holds the output counter settings
type PWM struct {
	Backend  string
	Wrap     uint32
	ClockDiv uint8
	PIOBlock uint8 // used by the pio backend only
}

// Config is the full firmware configuration
type Config struct {
	Pins       Pins
	Joystick   Joystick
	Display    Display
	LED        LED
	PWM        PWM
	DebounceUS uint32
	Banner     string
	Splash     string
}

var (
	ErrDeadZone    = errors.New("config: dead zone must be below ADC range")
	ErrDivisor     = errors.New("config: axis divisor must be non-zero")
	ErrGeometry    = errors.New("config: marker does not fit the display at grid maximum")
	ErrEdgeDepth   = errors.New("config: edge depth must match border inset")
	ErrZeroZone    = errors.New("config: zero-zone bounds are inverted")
	ErrPWMWrap     = errors.New("config: pwm wrap must be in 1..65536")
	ErrPWMClockDiv = errors.New("config: pwm clock divider must be non-zero")
	ErrPWMBackend  = errors.New("config: unknown pwm backend")
	ErrSamePins    = errors.New("config: button pins must differ")
)

// Default returns the configuration for the BitDogLab-style Pico board:
// joystick on ADC0/ADC1, SSD1306 on I2C1, RGB LED on GPIO 11-13.
func Default() *Config {
	return &Config{
		Pins: Pins{
			ButtonA:        5,
			ButtonJoystick: 22,
			LEDGreen:       11,
			LEDBlue:        12,
			LEDRed:         13,
			ADCChannelX:    0, // GPIO26
			ADCChannelY:    1, // GPIO27
			I2CSDA:         14,
			I2CSCL:         15,
		},
		Joystick: Joystick{
			DeadZone:        30,
			YOffset:         10,
			SaturateYOffset: true,
			DivisorX:        72,
			DivisorY:        34,
			EdgeDepth:       3,
		},
		Display: Display{
			I2CBus:      1,
			I2CFreqHz:   400 * 1000,
			Address:     0x3C,
			Width:       128,
			Height:      64,
			BorderInset: 3,
			MarkerSize:  8,
		},
		LED: LED{
			ZeroZoneYMin: 25,
			ZeroZoneYMax: 230,
			ZeroZoneXMin: 346,
			ZeroZoneXMax: 500,
			RedThreshold: 500,
		},
		PWM: PWM{
			Backend:  PWMBackendSlice,
			Wrap:     4096,
			ClockDiv: 2,
		},
		DebounceUS: 200000,
		Banner:     "joystick-pwm start",
		Splash:     "JOYSTICK-PWM",
	}
}

// Validate checks that the values are consistent with each other.
// Marker size, border inset and edge depth are coupled: the correction
// depth keeps the marker inside the border, so they must agree.
func (c *Config) Validate() error {
	j := c.Joystick
	if j.DeadZone >= ADCMax {
		return ErrDeadZone
	}
	if j.DivisorX == 0 || j.DivisorY == 0 {
		return ErrDivisor
	}
	d := c.Display
	if int16(c.ColMax())+d.MarkerSize > d.Height || int16(c.RowMax())+d.MarkerSize > d.Width {
		return ErrGeometry
	}
	if int16(j.EdgeDepth) != d.BorderInset {
		return ErrEdgeDepth
	}
	l := c.LED
	if l.ZeroZoneYMin >= l.ZeroZoneYMax || l.ZeroZoneXMin >= l.ZeroZoneXMax {
		return ErrZeroZone
	}
	if c.PWM.Wrap == 0 || c.PWM.Wrap > 1<<16 {
		return ErrPWMWrap
	}
	if c.PWM.ClockDiv == 0 {
		return ErrPWMClockDiv
	}
	switch c.PWM.Backend {
	case PWMBackendSlice, PWMBackendPIO:
	default:
		return ErrPWMBackend
	}
	if c.Pins.ButtonA == c.Pins.ButtonJoystick {
		return ErrSamePins
	}
	return nil
}

// ColMax is the largest column the X axis can reach (marker top offset)
func (c *Config) ColMax() uint16 {
	return ADCMax / c.Joystick.DivisorX
}

// RowMax is the largest row the Y axis can reach (marker left offset)
func (c *Config) RowMax() uint16 {
	return ADCMax / c.Joystick.DivisorY
}
