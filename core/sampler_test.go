package core

import (
	"errors"
	"testing"

	"picojoy/config"
)

func TestApplyDeadZone(t *testing.T) {
	testCases := []struct {
		name      string
		raw, prev uint16
		want      uint16
	}{
		{"equal", 2000, 2000, 2000},
		{"up by dead zone", 2030, 2000, 2000},
		{"down by dead zone", 1970, 2000, 2000},
		{"up past dead zone", 2031, 2000, 2031},
		{"down past dead zone", 1969, 2000, 1969},
		{"from zero", 31, 0, 31},
		{"near zero", 30, 0, 0},
		{"full swing", 0, 4095, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ApplyDeadZone(tc.raw, tc.prev, 30); got != tc.want {
				t.Errorf("ApplyDeadZone(%d, %d) = %d, want %d", tc.raw, tc.prev, got, tc.want)
			}
		})
	}
}

func TestApplyDeadZoneProperty(t *testing.T) {
	for prev := 0; prev <= config.ADCMax; prev += 13 {
		for raw := 0; raw <= config.ADCMax; raw += 7 {
			got := ApplyDeadZone(uint16(raw), uint16(prev), 30)
			diff := raw - prev
			if diff < 0 {
				diff = -diff
			}
			want := uint16(raw)
			if diff <= 30 {
				want = uint16(prev)
			}
			if got != want {
				t.Fatalf("ApplyDeadZone(%d, %d) = %d, want %d", raw, prev, got, want)
			}
		}
	}
}

func setupSampler(t *testing.T, saturate bool) (*AxisSampler, *mockADC) {
	t.Helper()
	adc := newMockADC()
	SetADCDriver(adc)

	cfg := config.Default()
	cfg.Joystick.SaturateYOffset = saturate
	s := NewAxisSampler(cfg)
	if err := s.Configure(); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}
	if !adc.configured[0] || !adc.configured[1] {
		t.Fatalf("Expected channels 0 and 1 configured, got %v", adc.configured)
	}
	return s, adc
}

func TestSampleInvertsXAndOffsetsY(t *testing.T) {
	s, adc := setupSampler(t, true)
	adc.values[0] = 1000
	adc.values[1] = 3000

	got, err := s.Sample()
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	want := AxisSample{X: 3095, Y: 2990}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestSampleDeadZoneHoldsReference(t *testing.T) {
	s, adc := setupSampler(t, true)
	adc.values[0] = 2048
	adc.values[1] = 2048
	first, _ := s.Sample()

	// Slow drift: each step is inside the dead zone of the held reference.
	for i := 1; i <= 3; i++ {
		adc.values[0] = ADCValue(2048 - 10*i)
		got, _ := s.Sample()
		if got.X != first.X {
			t.Fatalf("step %d: X moved to %d inside dead zone", i, got.X)
		}
	}

	// 40 counts from the reference finally registers
	adc.values[0] = 2048 - 40
	got, _ := s.Sample()
	if got.X != 4095-2008 {
		t.Errorf("Expected X %d after leaving dead zone, got %d", 4095-2008, got.X)
	}
}

func TestSampleYOffsetUnderflow(t *testing.T) {
	testCases := []struct {
		name     string
		saturate bool
		rawY     ADCValue
		want     uint16
	}{
		{"saturating below offset", true, 4, 0},
		{"saturating at offset", true, 10, 0},
		{"wrapping below offset", false, 4, 65530},
		{"wrapping above offset", false, 50, 40},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, adc := setupSampler(t, tc.saturate)
			// Start the reference far away so the dead zone never holds
			s.last.Y = 2000
			adc.values[1] = tc.rawY
			got, _ := s.Sample()
			if got.Y != tc.want {
				t.Errorf("Expected Y %d, got %d", tc.want, got.Y)
			}
		})
	}
}

func TestSampleReadErrorKeepsLast(t *testing.T) {
	s, adc := setupSampler(t, true)
	adc.values[0] = 0
	adc.values[1] = 4095
	before, _ := s.Sample()

	adc.readErr = errors.New("adc busy")
	got, err := s.Sample()
	if err == nil {
		t.Fatal("Expected read error")
	}
	if got != before {
		t.Errorf("Expected last sample %+v on error, got %+v", before, got)
	}
}

func TestSampleClampsWideReadings(t *testing.T) {
	s, adc := setupSampler(t, true)
	adc.values[0] = 0xFFF0 // driver forgot to shift down
	adc.values[1] = 0xFFF0

	got, _ := s.Sample()
	if got.X != 0 || got.Y != config.ADCMax-10 {
		t.Errorf("Expected clamped sample {0 4085}, got %+v", got)
	}
}
