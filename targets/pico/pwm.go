//go:build rp2040

package main

import (
	"errors"
	"machine"
	"picojoy/config"
	"picojoy/core"
)

var (
	errPWMNotConfigured = errors.New("pwm pin not configured")
	errPWMWrap          = errors.New("pwm wrap must be non-zero")
)

// newPWMDriver returns the backend selected in cfg
func newPWMDriver(cfg *config.Config) (core.PWMDriver, error) {
	if cfg.PWM.Backend == config.PWMBackendPIO {
		return NewPIOPWMDriver(cfg.PWM.PIOBlock)
	}
	return NewRP2040PWMDriver(), nil
}

// pwmPeripheral is an interface for PWM hardware peripherals
// This abstracts over TinyGo's unexported *pwmGroup type
type pwmPeripheral interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
}

type pwmOutput struct {
	slice   pwmPeripheral
	channel uint8
	wrap    uint32
}

// RP2040PWMDriver implements core.PWMDriver on the 8 hardware PWM slices.
// GPIO N is on slice (N>>1)&7, channel A for even pins and B for odd.
// Both pins of one slice share a period.
type RP2040PWMDriver struct {
	outputs map[core.PWMPin]pwmOutput
}

// NewRP2040PWMDriver creates a new RP2040 PWM driver
func NewRP2040PWMDriver() *RP2040PWMDriver {
	return &RP2040PWMDriver{
		outputs: make(map[core.PWMPin]pwmOutput),
	}
}

// ConfigureChannel sets the slice period to wrap counts of the divided
// system clock and starts the channel at 0.
func (d *RP2040PWMDriver) ConfigureChannel(pin core.PWMPin, wrap uint32, clockDiv uint8) error {
	if wrap == 0 {
		return errPWMWrap
	}
	slice := slicePeripheral(uint8((uint32(pin) >> 1) & 0x7))

	period := uint64(wrap) * uint64(clockDiv) * 1000000000 / uint64(machine.CPUFrequency())
	if err := slice.Configure(machine.PWMConfig{Period: period}); err != nil {
		return err
	}

	channel, err := slice.Channel(machine.Pin(pin))
	if err != nil {
		return err
	}
	slice.Set(channel, 0)

	d.outputs[pin] = pwmOutput{slice: slice, channel: channel, wrap: wrap}
	return nil
}

// SetDutyCycle scales value from wrap units to the slice's TOP
func (d *RP2040PWMDriver) SetDutyCycle(pin core.PWMPin, value core.PWMValue) error {
	out, ok := d.outputs[pin]
	if !ok {
		return errPWMNotConfigured
	}
	v := uint64(value)
	if v > uint64(out.wrap) {
		v = uint64(out.wrap)
	}
	out.slice.Set(out.channel, uint32(v*uint64(out.slice.Top())/uint64(out.wrap)))
	return nil
}

// slicePeripheral returns TinyGo's PWM group for a slice number
func slicePeripheral(sliceNum uint8) pwmPeripheral {
	switch sliceNum {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	default:
		return machine.PWM7
	}
}
