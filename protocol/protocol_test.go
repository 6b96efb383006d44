package protocol

import (
	"errors"
	"testing"
)

func TestAppendCoordinate(t *testing.T) {
	testCases := []struct {
		col  uint16
		want string
	}{
		{0, "vx=0"},
		{3, "vx=3"},
		{53, "vx=53"},
		{65535, "vx=65535"},
	}

	for _, tc := range testCases {
		var b LineBuffer
		AppendCoordinate(&b, tc.col)
		if got := b.String(); got != tc.want {
			t.Errorf("AppendCoordinate(%d) = %q, want %q", tc.col, got, tc.want)
		}
	}
}

func TestAppendError(t *testing.T) {
	var b LineBuffer
	AppendError(&b, "adc", errors.New("timeout"))
	if got := b.String(); got != "error: adc: timeout" {
		t.Errorf("unexpected error line %q", got)
	}
}

func TestLineBufferTruncates(t *testing.T) {
	var b LineBuffer
	for i := 0; i < LineMax; i++ {
		b.AppendString("ab")
	}
	if b.Len() != LineMax {
		t.Errorf("Expected length %d, got %d", LineMax, b.Len())
	}
	b.AppendUint(12345)
	if b.Len() != LineMax {
		t.Errorf("AppendUint past capacity changed length to %d", b.Len())
	}

	b.Reset()
	if b.Len() != 0 {
		t.Errorf("Expected empty buffer after Reset, got %d bytes", b.Len())
	}
}

func TestParse(t *testing.T) {
	p := NewParser()

	testCases := []struct {
		name    string
		line    string
		kind    LineKind
		col     uint16
		text    string
		wantErr error
	}{
		{"banner", "joystick-pwm start\r\n", LineBanner, 0, "joystick-pwm start", nil},
		{"coordinate", "vx=27\r", LineCoordinate, 27, "vx=27", nil},
		{"coordinate with space", "vx= 5", LineCoordinate, 5, "vx= 5", nil},
		{"error", "error: pwm: slice busy", LineError, 0, "pwm: slice busy", nil},
		{"unknown", "hello", LineUnknown, 0, "hello", nil},
		{"malformed", "vx=abc", LineCoordinate, 0, "vx=abc", ErrMalformedLine},
		{"out of range", "vx=70000", LineCoordinate, 0, "vx=70000", ErrCoordinateRange},
		{"empty", "\r\n", LineUnknown, 0, "", ErrEmptyLine},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := p.Parse(tc.line)
			if err != tc.wantErr {
				t.Fatalf("Expected error %v, got %v", tc.wantErr, err)
			}
			if got.Kind != tc.kind {
				t.Errorf("Expected kind %s, got %s", tc.kind, got.Kind)
			}
			if got.Col != tc.col {
				t.Errorf("Expected col %d, got %d", tc.col, got.Col)
			}
			if got.Text != tc.text {
				t.Errorf("Expected text %q, got %q", tc.text, got.Text)
			}
		})
	}
}

func TestParseCustomBanner(t *testing.T) {
	p := &Parser{Banner: "boot"}
	line, err := p.Parse("boot")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if line.Kind != LineBanner {
		t.Errorf("Expected banner, got %s", line.Kind)
	}

	line, _ = p.Parse(DefaultBanner)
	if line.Kind != LineUnknown {
		t.Errorf("default banner should be unknown for custom parser, got %s", line.Kind)
	}
}

func TestLineAssembler(t *testing.T) {
	a := NewLineAssembler(16)

	lines := a.Write([]byte("vx=1\r\nvx="))
	if len(lines) != 1 || lines[0] != "vx=1" {
		t.Fatalf("unexpected first batch %q", lines)
	}
	if a.Pending() != 3 {
		t.Errorf("Expected 3 pending bytes, got %d", a.Pending())
	}

	lines = a.Write([]byte("22\r\n\r\n"))
	if len(lines) != 1 || lines[0] != "vx=22" {
		t.Fatalf("unexpected second batch %q", lines)
	}
	if a.Pending() != 0 {
		t.Errorf("Expected nothing pending, got %d", a.Pending())
	}
}

func TestLineAssemblerOverflow(t *testing.T) {
	a := NewLineAssembler(4)

	lines := a.Write([]byte("toolongline\nvx=9\n"))
	if len(lines) != 1 || lines[0] != "vx=9" {
		t.Fatalf("Expected only the short line, got %q", lines)
	}
	if a.Overflows != 1 {
		t.Errorf("Expected 1 overflow, got %d", a.Overflows)
	}
}
