package serial

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("/dev/ttyACM0")
	if cfg.Baud != 115200 || cfg.ReadTimeout != 100 {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name string
		cfg  *Config
		want error
	}{
		{"nil", nil, ErrNilConfig},
		{"no device", &Config{Baud: 115200}, ErrNoDevice},
		{"zero baud", &Config{Device: "COM3"}, ErrBadBaud},
		{"negative timeout", &Config{Device: "COM3", Baud: 9600, ReadTimeout: -1}, ErrBadTimeout},
		{"blocking", &Config{Device: "COM3", Baud: 9600}, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.cfg.Validate(); err != tc.want {
				t.Errorf("Expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestOpenRejectsInvalidConfig(t *testing.T) {
	if _, err := Open(&Config{}); err != ErrNoDevice {
		t.Errorf("Expected ErrNoDevice, got %v", err)
	}
}
