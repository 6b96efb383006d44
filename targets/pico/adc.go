//go:build rp2040

package main

import (
	"errors"
	"machine"
	"picojoy/core"
)

// adcSettleMicros is the wait after switching the input mux
const adcSettleMicros = 2

var errADCChannel = errors.New("unsupported ADC channel")

// RpAdcDriver implements core.ADCDriver using TinyGo's machine.ADC.
// Only the external channels 0-3 (GPIO26-29) are supported.
type RpAdcDriver struct {
	channels map[core.ADCChannelID]*machine.ADC
}

// NewRPAdcDriver initializes the ADC block and returns the driver
func NewRPAdcDriver() *RpAdcDriver {
	machine.InitADC()
	return &RpAdcDriver{
		channels: make(map[core.ADCChannelID]*machine.ADC),
	}
}

// ConfigureChannel switches the channel's pin to analog input
func (d *RpAdcDriver) ConfigureChannel(ch core.ADCChannelID) error {
	if _, ok := d.channels[ch]; ok {
		return nil
	}

	var adc machine.ADC
	switch ch {
	case 0:
		adc = machine.ADC{Pin: machine.ADC0}
	case 1:
		adc = machine.ADC{Pin: machine.ADC1}
	case 2:
		adc = machine.ADC{Pin: machine.ADC2}
	case 3:
		adc = machine.ADC{Pin: machine.ADC3}
	default:
		return errADCChannel
	}

	if err := adc.Configure(machine.ADCConfig{}); err != nil {
		return err
	}
	d.channels[ch] = &adc
	return nil
}

// ReadRaw selects the channel, waits for the input to settle and returns a
// 12-bit conversion (0-4095).
func (d *RpAdcDriver) ReadRaw(ch core.ADCChannelID) (core.ADCValue, error) {
	adc, ok := d.channels[ch]
	if !ok {
		if err := d.ConfigureChannel(ch); err != nil {
			return 0, err
		}
		adc = d.channels[ch]
	}

	busyWaitMicros(adcSettleMicros)

	// machine.ADC scales the 12-bit result up to 16 bits
	return core.ADCValue(adc.Get() >> 4), nil
}
