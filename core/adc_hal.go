package core

// ADCChannelID identifies a logical ADC input channel (0 = ADC0/GPIO26 on RP2040).
type ADCChannelID uint8

// ADCValue is the raw ADC reading as seen by the rest of the firmware.
// Convention here: 12-bit value (0..4095), drivers shift down wider hardware results.
type ADCValue uint16

// ADCDriver is the abstract ADC interface that core code uses.
type ADCDriver interface {
	// ConfigureChannel prepares a channel for analog input.
	// For pin-muxed channels, this should set the pin to analog mode.
	ConfigureChannel(ch ADCChannelID) error

	// ReadRaw performs a one-shot sample from the given channel.
	ReadRaw(ch ADCChannelID) (ADCValue, error)
}

// Global singleton used by core code.
var adcDriver ADCDriver

// SetADCDriver is called by target-specific code to register its driver.
func SetADCDriver(d ADCDriver) {
	adcDriver = d
}

// MustADC returns the configured driver or panics if missing.
func MustADC() ADCDriver {
	if adcDriver == nil {
		panic("ADC driver not configured")
	}
	return adcDriver
}
