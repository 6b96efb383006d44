package monitor

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"picojoy/host/serial"
	"picojoy/protocol"
)

// Settings configures the monitor. Every field is optional in the YAML file;
// missing ones keep their defaults.
type Settings struct {
	Device        string `yaml:"device"`          // e.g. /dev/ttyACM0, COM3
	Baud          int    `yaml:"baud"`            // ignored by USB CDC but required by the OS
	ReadTimeoutMs int    `yaml:"read_timeout_ms"` // serial read timeout
	Banner        string `yaml:"banner"`          // firmware boot banner
	Count         int    `yaml:"count"`           // stop after this many coordinates, 0 = run until interrupted
	Quiet         bool   `yaml:"quiet"`           // print only the summary
}

// DefaultSettings returns settings for a Pico on Linux
func DefaultSettings() *Settings {
	return &Settings{
		Device:        "/dev/ttyACM0",
		Baud:          115200,
		ReadTimeoutMs: 100,
		Banner:        protocol.DefaultBanner,
	}
}

// LoadSettings reads a YAML file on top of DefaultSettings
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings file: %w", err)
	}

	s := DefaultSettings()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks ranges that the serial layer and the parser depend on
func (s *Settings) Validate() error {
	if err := s.SerialConfig().Validate(); err != nil {
		return err
	}
	if s.Banner == "" {
		return fmt.Errorf("banner is required")
	}
	if len(s.Banner) > protocol.LineMax {
		return fmt.Errorf("banner longer than %d bytes", protocol.LineMax)
	}
	if s.Count < 0 {
		return fmt.Errorf("count must be >= 0, got %d", s.Count)
	}
	return nil
}

// SerialConfig returns the port settings
func (s *Settings) SerialConfig() *serial.Config {
	return &serial.Config{
		Device:      s.Device,
		Baud:        s.Baud,
		ReadTimeout: s.ReadTimeoutMs,
	}
}
