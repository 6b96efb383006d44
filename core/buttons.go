// Button handling
// Interrupt handlers only enqueue (button, timestamp). The main loop drains
// the queue, debounces against one clock shared by both buttons, and
// toggles the state flags.
package core

import "sync/atomic"

// ButtonID identifies a physical button
type ButtonID uint8

const (
	ButtonNone ButtonID = iota
	ButtonA
	ButtonJoystick
)

func (b ButtonID) String() string {
	switch b {
	case ButtonA:
		return "A"
	case ButtonJoystick:
		return "joystick"
	default:
		return "none"
	}
}

// ButtonEvent is a falling edge seen by an interrupt handler
type ButtonEvent struct {
	Button ButtonID
	At     uint32 // microseconds since boot
}

// EventQueueSize must be a power of two
const EventQueueSize = 8

// EventQueue is a single-producer/single-consumer ring. The interrupt side
// calls Push, the main loop calls Pop. Indices are free-running and only
// the owning side writes each one.
type EventQueue struct {
	buf     [EventQueueSize]ButtonEvent
	head    atomic.Uint32 // written by consumer
	tail    atomic.Uint32 // written by producer
	dropped atomic.Uint32 // written by producer
}

// Push adds an event; it returns false and counts a drop when full
func (q *EventQueue) Push(ev ButtonEvent) bool {
	tail := q.tail.Load()
	if tail-q.head.Load() == EventQueueSize {
		q.dropped.Store(q.dropped.Load() + 1)
		return false
	}
	q.buf[tail%EventQueueSize] = ev
	q.tail.Store(tail + 1)
	return true
}

// Pop removes the oldest event
func (q *EventQueue) Pop() (ButtonEvent, bool) {
	head := q.head.Load()
	if head == q.tail.Load() {
		return ButtonEvent{}, false
	}
	ev := q.buf[head%EventQueueSize]
	q.head.Store(head + 1)
	return ev, true
}

// Len returns the number of queued events
func (q *EventQueue) Len() int {
	return int(q.tail.Load() - q.head.Load())
}

// Dropped returns how many events were lost to a full queue
func (q *EventQueue) Dropped() uint32 {
	return q.dropped.Load()
}

// Debouncer accepts an event only when more than window microseconds have
// passed since the last accepted one. The clock starts at 0, so presses
// during the first window after boot are rejected.
type Debouncer struct {
	window uint32
	last   atomic.Uint32
}

// NewDebouncer creates a debouncer with the given window in microseconds
func NewDebouncer(windowUS uint32) *Debouncer {
	return &Debouncer{window: windowUS}
}

// Accept reports whether an event at time at passes the window.
// Accepted events move the clock; rejected ones leave it alone.
func (d *Debouncer) Accept(at uint32) bool {
	if Elapsed(at, d.last.Load()) > d.window {
		d.last.Store(at)
		return true
	}
	return false
}

// Last returns the timestamp of the last accepted event
func (d *Debouncer) Last() uint32 {
	return d.last.Load()
}

// ToggleState holds the flags the buttons flip
type ToggleState struct {
	PWMEnabled atomic.Bool
	GreenOn    atomic.Bool
	BorderOn   atomic.Bool
}

// NewToggleState returns the power-on state: PWM enabled, green off, border on
func NewToggleState() *ToggleState {
	s := &ToggleState{}
	s.PWMEnabled.Store(true)
	s.BorderOn.Store(true)
	return s
}

func toggle(b *atomic.Bool) bool {
	v := !b.Load()
	b.Store(v)
	return v
}

// ButtonController connects button pins to the queue and applies events
type ButtonController struct {
	queue    EventQueue
	debounce *Debouncer
	state    *ToggleState

	pinA        GPIOPin
	pinJoystick GPIOPin
	greenLED    GPIOPin
}

// NewButtonController creates a controller for the two button pins
func NewButtonController(pinA, pinJoystick, greenLED GPIOPin, windowUS uint32, state *ToggleState) *ButtonController {
	return &ButtonController{
		debounce:    NewDebouncer(windowUS),
		state:       state,
		pinA:        pinA,
		pinJoystick: pinJoystick,
		greenLED:    greenLED,
	}
}

// Configure sets up the button inputs with interrupts and the green LED output
func (c *ButtonController) Configure() error {
	gpio := MustGPIO()
	if err := gpio.ConfigureOutput(c.greenLED); err != nil {
		return err
	}
	if err := gpio.SetPin(c.greenLED, c.state.GreenOn.Load()); err != nil {
		return err
	}
	for _, pin := range []GPIOPin{c.pinA, c.pinJoystick} {
		if err := gpio.ConfigureInputPullUp(pin); err != nil {
			return err
		}
		if err := gpio.SetFallingEdgeHandler(pin, c.HandleEdge); err != nil {
			return err
		}
	}
	return nil
}

// HandleEdge runs in interrupt context: timestamp and enqueue only
func (c *ButtonController) HandleEdge(pin GPIOPin) {
	id := c.buttonFor(pin)
	if id == ButtonNone {
		return
	}
	c.queue.Push(ButtonEvent{Button: id, At: Micros()})
}

func (c *ButtonController) buttonFor(pin GPIOPin) ButtonID {
	switch pin {
	case c.pinA:
		return ButtonA
	case c.pinJoystick:
		return ButtonJoystick
	}
	return ButtonNone
}

// Apply debounces one event and toggles state. ButtonA flips PWM enable;
// the joystick button flips the green LED and the border color.
func (c *ButtonController) Apply(ev ButtonEvent) (bool, error) {
	if ev.Button == ButtonNone || !c.debounce.Accept(ev.At) {
		return false, nil
	}

	switch ev.Button {
	case ButtonA:
		toggle(&c.state.PWMEnabled)
	case ButtonJoystick:
		green := toggle(&c.state.GreenOn)
		toggle(&c.state.BorderOn)
		if err := MustGPIO().SetPin(c.greenLED, green); err != nil {
			return true, err
		}
	}
	return true, nil
}

// Drain applies every queued event and returns how many were accepted
func (c *ButtonController) Drain() (int, error) {
	accepted := 0
	var firstErr error
	for {
		ev, ok := c.queue.Pop()
		if !ok {
			return accepted, firstErr
		}
		ok, err := c.Apply(ev)
		if ok {
			accepted++
		}
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
}

// Queue exposes the event queue (for tests and diagnostics)
func (c *ButtonController) Queue() *EventQueue {
	return &c.queue
}

// Debouncer exposes the shared debounce clock
func (c *ButtonController) Debouncer() *Debouncer {
	return c.debounce
}
