// Package serial opens the firmware's USB CDC port on the host
package serial

import (
	"errors"
	"io"
)

// Port represents a serial port interface. The monitor only reads, but the
// port stays writable so a future command channel needs no new abstraction.
type Port interface {
	io.ReadWriteCloser

	// Flush discards data received but not yet read
	Flush() error
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyACM0", "COM3")
	Device string

	// Baud rate; USB CDC ignores it but the OS driver needs a valid value
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

var (
	ErrNoDevice   = errors.New("serial: device path is empty")
	ErrBadBaud    = errors.New("serial: baud rate must be positive")
	ErrBadTimeout = errors.New("serial: read timeout must not be negative")
	ErrNilConfig  = errors.New("serial: config cannot be nil")
)

// DefaultConfig returns the settings used for the Pico's CDC port
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 100,
	}
}

// Validate checks the configuration before opening
func (c *Config) Validate() error {
	switch {
	case c == nil:
		return ErrNilConfig
	case c.Device == "":
		return ErrNoDevice
	case c.Baud <= 0:
		return ErrBadBaud
	case c.ReadTimeout < 0:
		return ErrBadTimeout
	}
	return nil
}
