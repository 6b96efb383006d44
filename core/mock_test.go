package core

import (
	"errors"
	"image/color"
)

// mockADC returns fixed per-channel values
type mockADC struct {
	values     map[ADCChannelID]ADCValue
	configured map[ADCChannelID]bool
	readErr    error
	reads      int
}

func newMockADC() *mockADC {
	return &mockADC{
		values:     make(map[ADCChannelID]ADCValue),
		configured: make(map[ADCChannelID]bool),
	}
}

func (m *mockADC) ConfigureChannel(ch ADCChannelID) error {
	m.configured[ch] = true
	return nil
}

func (m *mockADC) ReadRaw(ch ADCChannelID) (ADCValue, error) {
	m.reads++
	if m.readErr != nil {
		return 0, m.readErr
	}
	return m.values[ch], nil
}

// mockGPIO records pin state and edge handlers
type mockGPIO struct {
	outputs  map[GPIOPin]bool
	inputs   map[GPIOPin]bool
	pins     map[GPIOPin]bool
	handlers map[GPIOPin]EdgeHandler
	setErr   error
}

func newMockGPIO() *mockGPIO {
	return &mockGPIO{
		outputs:  make(map[GPIOPin]bool),
		inputs:   make(map[GPIOPin]bool),
		pins:     make(map[GPIOPin]bool),
		handlers: make(map[GPIOPin]EdgeHandler),
	}
}

func (m *mockGPIO) ConfigureOutput(pin GPIOPin) error {
	m.outputs[pin] = true
	return nil
}

func (m *mockGPIO) ConfigureInputPullUp(pin GPIOPin) error {
	m.inputs[pin] = true
	m.pins[pin] = true
	return nil
}

func (m *mockGPIO) SetPin(pin GPIOPin, value bool) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.pins[pin] = value
	return nil
}

func (m *mockGPIO) GetPin(pin GPIOPin) (bool, error) {
	return m.pins[pin], nil
}

func (m *mockGPIO) SetFallingEdgeHandler(pin GPIOPin, handler EdgeHandler) error {
	if !m.inputs[pin] {
		return errors.New("pin not configured as input")
	}
	m.handlers[pin] = handler
	return nil
}

// press simulates a falling edge on pin
func (m *mockGPIO) press(pin GPIOPin) {
	if h, ok := m.handlers[pin]; ok {
		h(pin)
	}
}

type pwmChannel struct {
	wrap     uint32
	clockDiv uint8
	value    PWMValue
	writes   int
}

// mockPWM records channel configuration and levels
type mockPWM struct {
	channels map[PWMPin]*pwmChannel
	setErr   error
}

func newMockPWM() *mockPWM {
	return &mockPWM{channels: make(map[PWMPin]*pwmChannel)}
}

func (m *mockPWM) ConfigureChannel(pin PWMPin, wrap uint32, clockDiv uint8) error {
	m.channels[pin] = &pwmChannel{wrap: wrap, clockDiv: clockDiv}
	return nil
}

func (m *mockPWM) SetDutyCycle(pin PWMPin, value PWMValue) error {
	if m.setErr != nil {
		return m.setErr
	}
	ch, ok := m.channels[pin]
	if !ok {
		return errors.New("pwm pin not configured")
	}
	ch.value = value
	ch.writes++
	return nil
}

func (m *mockPWM) level(pin PWMPin) PWMValue {
	if ch, ok := m.channels[pin]; ok {
		return ch.value
	}
	return 0
}

// fakeDisplay is an in-memory drivers.Displayer
type fakeDisplay struct {
	width, height int16
	pixels        []bool
	pushes        int
	pushErr       error
}

func newFakeDisplay(w, h int16) *fakeDisplay {
	return &fakeDisplay{width: w, height: h, pixels: make([]bool, int(w)*int(h))}
}

func (d *fakeDisplay) Size() (int16, int16) {
	return d.width, d.height
}

func (d *fakeDisplay) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= d.width || y >= d.height {
		return
	}
	d.pixels[int(y)*int(d.width)+int(x)] = c.R != 0 || c.G != 0 || c.B != 0
}

func (d *fakeDisplay) Display() error {
	d.pushes++
	return d.pushErr
}

func (d *fakeDisplay) at(x, y int16) bool {
	return d.pixels[int(y)*int(d.width)+int(x)]
}

func (d *fakeDisplay) count(on bool) int {
	n := 0
	for _, p := range d.pixels {
		if p == on {
			n++
		}
	}
	return n
}

type rectCall struct {
	top, left, width, height int16
	on, fill                 bool
}

// recordingRenderer captures Renderer calls
type recordingRenderer struct {
	clears []bool
	rects  []rectCall
	pushes int
}

func (r *recordingRenderer) Clear(on bool) {
	r.clears = append(r.clears, on)
}

func (r *recordingRenderer) DrawRect(top, left, width, height int16, on, fill bool) {
	r.rects = append(r.rects, rectCall{top, left, width, height, on, fill})
}

func (r *recordingRenderer) Push() error {
	r.pushes++
	return nil
}

func (r *recordingRenderer) reset() {
	r.clears = nil
	r.rects = nil
	r.pushes = 0
}

// captureDebug collects debug output for the duration of a test
func captureDebug() *[]string {
	var lines []string
	SetDebugWriter(func(s string) { lines = append(lines, s) })
	SetDebugEnabled(true)
	return &lines
}
