package core

import (
	"errors"
	"testing"
)

func TestCanvasClear(t *testing.T) {
	d := newFakeDisplay(128, 64)
	c := NewCanvas(d)

	c.Clear(true)
	if d.count(true) != 128*64 {
		t.Errorf("Expected all pixels on, got %d", d.count(true))
	}
	c.Clear(false)
	if d.count(true) != 0 {
		t.Errorf("Expected all pixels off, got %d on", d.count(true))
	}
}

func TestCanvasDrawRect(t *testing.T) {
	testCases := []struct {
		name   string
		fill   bool
		wantOn int
	}{
		{"outline", false, 2*10 + 2*4},
		{"filled", true, 10 * 6},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newFakeDisplay(128, 64)
			c := NewCanvas(d)
			// top row 20, left column 5, 10 wide, 6 tall
			c.DrawRect(20, 5, 10, 6, true, tc.fill)

			if got := d.count(true); got != tc.wantOn {
				t.Errorf("Expected %d pixels on, got %d", tc.wantOn, got)
			}
			if !d.at(5, 20) || !d.at(14, 25) {
				t.Error("Expected corners lit")
			}
			if d.at(20, 5) {
				t.Error("top/left appear swapped")
			}
			if d.at(8, 22) != tc.fill {
				t.Errorf("interior pixel = %v, want %v", d.at(8, 22), tc.fill)
			}
		})
	}
}

func TestCanvasDrawRectDark(t *testing.T) {
	d := newFakeDisplay(128, 64)
	c := NewCanvas(d)
	c.Clear(true)
	c.DrawRect(3, 3, 122, 58, false, true)

	if d.at(3, 3) || d.at(64, 32) || d.at(124, 60) {
		t.Error("Expected framed area dark")
	}
	if !d.at(2, 2) || !d.at(125, 61) {
		t.Error("Expected background outside the frame lit")
	}
}

func TestCanvasClipsOutOfBounds(t *testing.T) {
	d := newFakeDisplay(128, 64)
	c := NewCanvas(d)
	c.DrawRect(60, 120, 8, 8, true, true)
	c.DrawRect(-4, -4, 8, 8, true, true)
	c.DrawRect(10, 10, 0, 5, true, true)

	if d.count(true) != 4*8+4*4 {
		t.Errorf("unexpected lit pixel count %d", d.count(true))
	}
}

func TestCanvasPush(t *testing.T) {
	d := newFakeDisplay(128, 64)
	c := NewCanvas(d)
	if err := c.Push(); err != nil {
		t.Fatalf("Push failed: %v", err)
	}
	d.pushErr = errors.New("i2c nack")
	if err := c.Push(); err == nil {
		t.Error("Expected push error")
	}
	if d.pushes != 2 {
		t.Errorf("Expected 2 pushes, got %d", d.pushes)
	}
}

func TestCanvasSplash(t *testing.T) {
	d := newFakeDisplay(128, 64)
	c := NewCanvas(d)
	c.Clear(true)

	if err := c.Splash("JOYSTICK-PWM"); err != nil {
		t.Fatalf("Splash failed: %v", err)
	}
	on := d.count(true)
	t.Logf("splash lit %d pixels", on)
	if on == 0 || on > 12*4*6 {
		t.Errorf("unexpected splash pixel count %d", on)
	}
	if d.pushes != 1 {
		t.Errorf("Expected 1 push, got %d", d.pushes)
	}
}
