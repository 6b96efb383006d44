package core

// PWMPin identifies a hardware pin capable of PWM output
type PWMPin uint32

// PWMValue is the compare level, 0 (off) to wrap-1 (fully on minus one count)
type PWMValue uint32

// PWMDriver is the abstract PWM interface that core code uses.
// Platform-specific implementations handle actual hardware control.
type PWMDriver interface {
	// ConfigureChannel sets up a pin for PWM output with the given
	// counter wrap and integer clock divider, starting at level 0.
	ConfigureChannel(pin PWMPin, wrap uint32, clockDiv uint8) error

	// SetDutyCycle sets the compare level for a configured pin.
	// value is in wrap units: 0 (fully off) to wrap.
	SetDutyCycle(pin PWMPin, value PWMValue) error
}

// Global singleton used by core code.
var pwmDriver PWMDriver

// SetPWMDriver is called by target-specific code to register its driver.
func SetPWMDriver(d PWMDriver) {
	pwmDriver = d
}

// MustPWM returns the configured driver or panics if missing.
func MustPWM() PWMDriver {
	if pwmDriver == nil {
		panic("PWM driver not configured")
	}
	return pwmDriver
}
