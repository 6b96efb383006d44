//go:build rp2040

package main

import (
	"errors"
	"machine"
	"picojoy/core"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"
)

// PIO counter-compare PWM. The period is loaded into ISR once; every
// cycle the level is pulled (or kept in X when the FIFO is empty) and the
// side-set pin goes high when the down-counter Y reaches it.
//
//	.side_set 1 opt
//	    pull block
//	    out isr, 32
//	.wrap_target
//	    pull noblock    side 0
//	    mov x, osr
//	    mov y, isr
//	countloop:
//	    jmp x!=y noset
//	    jmp skip        side 1
//	noset:
//	    nop
//	skip:
//	    jmp y-- countloop
//	.wrap
var pwmPIOProgram = []uint16{
	0x80a0, // 0: pull block
	0x60c0, // 1: out isr, 32
	0x9080, // 2: pull noblock side 0
	0xa027, // 3: mov x, osr
	0xa046, // 4: mov y, isr
	0x00a7, // 5: jmp x!=y, 7
	0x1808, // 6: jmp 8 side 1
	0xa042, // 7: nop
	0x0085, // 8: jmp y--, 5
}

const (
	pwmPIOOrigin     = 0 // jump targets above are absolute
	pwmPIOWrapTarget = 2
	pwmPIOWrap       = 8
)

var (
	errPIOBlock   = errors.New("pio block must be 0 or 1")
	errPIONoSM    = errors.New("no free pio state machine")
	errPIOChannel = errors.New("pio pwm pin not configured")
)

type pioOutput struct {
	sm   rp2pio.StateMachine
	wrap uint32
}

// PIOPWMDriver implements core.PWMDriver with one state machine per pin.
// The program is loaded once per driver.
type PIOPWMDriver struct {
	pio     *rp2pio.PIO
	offset  uint8
	loaded  bool
	outputs map[core.PWMPin]pioOutput
}

// NewPIOPWMDriver creates a driver on PIO0 or PIO1
func NewPIOPWMDriver(block uint8) (*PIOPWMDriver, error) {
	var pioHW *rp2pio.PIO
	switch block {
	case 0:
		pioHW = rp2pio.PIO0
	case 1:
		pioHW = rp2pio.PIO1
	default:
		return nil, errPIOBlock
	}
	return &PIOPWMDriver{
		pio:     pioHW,
		outputs: make(map[core.PWMPin]pioOutput),
	}, nil
}

func (d *PIOPWMDriver) claim() (rp2pio.StateMachine, error) {
	for i := uint8(0); i < 4; i++ {
		sm := d.pio.StateMachine(i)
		if sm.TryClaim() {
			return sm, nil
		}
	}
	return rp2pio.StateMachine{}, errPIONoSM
}

// ConfigureChannel starts a state machine driving pin with a period of
// wrap counts. The level starts at 0.
func (d *PIOPWMDriver) ConfigureChannel(pin core.PWMPin, wrap uint32, clockDiv uint8) error {
	if wrap == 0 {
		return errPWMWrap
	}
	if _, ok := d.outputs[pin]; ok {
		return nil
	}

	sm, err := d.claim()
	if err != nil {
		return err
	}

	if !d.loaded {
		offset, err := d.pio.AddProgram(pwmPIOProgram, pwmPIOOrigin)
		if err != nil {
			return err
		}
		d.offset = offset
		d.loaded = true
	}

	p := machine.Pin(pin)
	p.Configure(machine.PinConfig{Mode: d.pio.PinMode()})

	cfg := rp2pio.DefaultStateMachineConfig()
	cfg.SetSidesetParams(2, true, false) // one pin plus the optional bit
	cfg.SetSidesetPins(p)
	cfg.SetWrap(d.offset+pwmPIOWrapTarget, d.offset+pwmPIOWrap)
	cfg.SetClkDivIntFrac(uint16(clockDiv), 0)

	sm.Init(d.offset, cfg)
	sm.SetPindirsConsecutive(p, 1, true)

	// period first: the program blocks on it before entering the loop
	sm.TxPut(wrap - 1)
	sm.TxPut(0)
	sm.SetEnabled(true)

	d.outputs[pin] = pioOutput{sm: sm, wrap: wrap}
	return nil
}

// SetDutyCycle queues a new level; the state machine picks it up at the
// start of the next period.
func (d *PIOPWMDriver) SetDutyCycle(pin core.PWMPin, value core.PWMValue) error {
	out, ok := d.outputs[pin]
	if !ok {
		return errPIOChannel
	}
	v := uint32(value)
	if v >= out.wrap {
		v = out.wrap - 1
	}
	for out.sm.IsTxFIFOFull() {
	}
	out.sm.TxPut(v)
	return nil
}
