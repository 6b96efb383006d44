// Firmware main loop
// One Step is: apply button events, sample, map, render, drive LEDs, log.
package core

import (
	"picojoy/config"
	"picojoy/protocol"
)

// Firmware holds all loop state. It is created once at boot and passed by
// reference; the only state shared with interrupt context lives in the
// button controller's queue.
type Firmware struct {
	cfg      *config.Config
	sampler  *AxisSampler
	mapper   GridMapper
	renderer Renderer
	leds     *LEDDriver
	buttons  *ButtonController
	state    *ToggleState

	point      GridPoint
	levels     PWMLevels
	iterations uint32
	dropped    uint32
	line       protocol.LineBuffer
}

// NewFirmware wires the loop components for cfg. Drivers are taken from the
// HAL registry when Init and Step run.
func NewFirmware(cfg *config.Config, r Renderer) *Firmware {
	state := NewToggleState()
	return &Firmware{
		cfg:      cfg,
		sampler:  NewAxisSampler(cfg),
		mapper:   NewGridMapper(cfg),
		renderer: r,
		leds:     NewLEDDriver(cfg),
		buttons: NewButtonController(
			GPIOPin(cfg.Pins.ButtonA),
			GPIOPin(cfg.Pins.ButtonJoystick),
			GPIOPin(cfg.Pins.LEDGreen),
			cfg.DebounceUS,
			state,
		),
		state: state,
	}
}

// Init configures the peripherals used by the loop, shows the splash and
// prints the banner. Interrupts are armed last.
func (f *Firmware) Init() error {
	if err := f.sampler.Configure(); err != nil {
		return err
	}
	if err := f.leds.Configure(); err != nil {
		return err
	}
	if s, ok := f.renderer.(Splasher); ok && f.cfg.Splash != "" {
		if err := s.Splash(f.cfg.Splash); err != nil {
			return err
		}
	}
	if err := f.buttons.Configure(); err != nil {
		return err
	}
	DebugPrintln(f.cfg.Banner)
	return nil
}

// Step runs one loop iteration. Peripheral errors do not stop the
// iteration; the first one is returned after the coordinate line is logged.
func (f *Firmware) Step() error {
	var firstErr error
	keep := func(op string, err error) {
		if err == nil {
			return
		}
		debugError(op, err)
		if firstErr == nil {
			firstErr = err
		}
	}

	_, err := f.buttons.Drain()
	keep("gpio", err)
	if n := f.buttons.Queue().Dropped(); n != f.dropped {
		f.dropped = n
		debugValue("button events dropped", n)
	}

	sample, err := f.sampler.Sample()
	keep("adc", err)

	f.point = f.mapper.Map(sample)
	keep("display", f.render(f.point))

	f.levels, err = f.leds.Update(sample, f.state.PWMEnabled.Load())
	keep("pwm", err)

	f.iterations++
	f.logCoordinate()
	return firstErr
}

// Run loops forever
func (f *Firmware) Run() {
	for {
		// errors are already in the diagnostic stream
		_ = f.Step()
	}
}

// render draws background, border and marker and pushes the frame.
// With the border off the background is lit and the framed area is filled
// dark, so the marker stays visible in both states.
func (f *Firmware) render(p GridPoint) error {
	border := f.state.BorderOn.Load()
	d := f.cfg.Display

	f.renderer.Clear(!border)
	f.renderer.DrawRect(d.BorderInset, d.BorderInset,
		d.Width-2*d.BorderInset, d.Height-2*d.BorderInset, border, !border)
	f.renderer.DrawRect(int16(p.Col), int16(p.Row), d.MarkerSize, d.MarkerSize, true, true)
	return f.renderer.Push()
}

func (f *Firmware) logCoordinate() {
	if !IsDebugEnabled() {
		return
	}
	f.line.Reset()
	protocol.AppendCoordinate(&f.line, f.point.Col)
	DebugPrintln(f.line.String())
}

// State returns the toggle flags
func (f *Firmware) State() *ToggleState {
	return f.state
}

// Buttons returns the button controller
func (f *Firmware) Buttons() *ButtonController {
	return f.buttons
}

// Point returns the marker position from the last Step
func (f *Firmware) Point() GridPoint {
	return f.point
}

// Levels returns the PWM levels written in the last Step
func (f *Firmware) Levels() PWMLevels {
	return f.levels
}

// Iterations returns the number of completed steps
func (f *Firmware) Iterations() uint32 {
	return f.iterations
}
