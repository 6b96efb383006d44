//go:build rp2040

package main

import (
	"machine"
	"picojoy/protocol"
	"time"
)

// failBoot reports a boot failure on USB and flashes the on-board LED
// forever. It never returns.
func failBoot(op string, err error) {
	var line protocol.LineBuffer
	protocol.AppendError(&line, op, err)

	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for {
		DebugPrintln(line.String())
		for i := 0; i < 10; i++ {
			led.High()
			time.Sleep(100 * time.Millisecond)
			led.Low()
			time.Sleep(100 * time.Millisecond)
		}
	}
}
