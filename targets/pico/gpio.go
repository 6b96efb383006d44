//go:build rp2040

package main

import (
	"errors"
	"machine"
	"picojoy/core"
)

var errPinNotInput = errors.New("pin not configured as input")

// RPGPIODriver implements core.GPIODriver for the RP2040
type RPGPIODriver struct {
	configuredPins map[core.GPIOPin]machine.Pin
	inputs         map[core.GPIOPin]bool
}

// NewRPGPIODriver creates a new RP2040 GPIO driver
func NewRPGPIODriver() *RPGPIODriver {
	return &RPGPIODriver{
		configuredPins: make(map[core.GPIOPin]machine.Pin),
		inputs:         make(map[core.GPIOPin]bool),
	}
}

// ConfigureOutput configures a pin as a digital output
func (d *RPGPIODriver) ConfigureOutput(pin core.GPIOPin) error {
	if _, exists := d.configuredPins[pin]; exists {
		return nil
	}
	machinePin := machine.Pin(pin)
	machinePin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	d.configuredPins[pin] = machinePin
	return nil
}

// ConfigureInputPullUp configures a pin as an input with pull-up resistor
func (d *RPGPIODriver) ConfigureInputPullUp(pin core.GPIOPin) error {
	if _, exists := d.configuredPins[pin]; exists {
		return nil
	}
	machinePin := machine.Pin(pin)
	machinePin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	d.configuredPins[pin] = machinePin
	d.inputs[pin] = true
	return nil
}

// SetPin sets the pin to high (true) or low (false)
func (d *RPGPIODriver) SetPin(pin core.GPIOPin, value bool) error {
	machinePin, exists := d.configuredPins[pin]
	if !exists {
		if err := d.ConfigureOutput(pin); err != nil {
			return err
		}
		machinePin = d.configuredPins[pin]
	}
	machinePin.Set(value)
	return nil
}

// GetPin reads the current pin state
func (d *RPGPIODriver) GetPin(pin core.GPIOPin) (bool, error) {
	machinePin, exists := d.configuredPins[pin]
	if !exists {
		return false, nil
	}
	return machinePin.Get(), nil
}

// SetFallingEdgeHandler arms the pin's falling-edge interrupt. The handler
// runs in interrupt context.
func (d *RPGPIODriver) SetFallingEdgeHandler(pin core.GPIOPin, handler core.EdgeHandler) error {
	if !d.inputs[pin] {
		return errPinNotInput
	}
	return d.configuredPins[pin].SetInterrupt(machine.PinFalling, func(p machine.Pin) {
		handler(core.GPIOPin(p))
	})
}
