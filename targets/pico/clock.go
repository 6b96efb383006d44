//go:build rp2040

package main

import (
	"device/rp"
	"picojoy/core"
)

// InitClock registers the RP2040 hardware timer as the core clock.
// The timer counts microseconds from reset at 1MHz.
func InitClock() {
	core.SetClockSource(GetHardwareTime)
}

// GetHardwareTime returns the low 32 bits of the microsecond counter.
// TIMERAWL is the unlatched register, so reading it alone is safe from
// interrupt context.
func GetHardwareTime() uint32 {
	return rp.TIMER.TIMERAWL.Get()
}

// busyWaitMicros spins on the hardware timer
func busyWaitMicros(us uint32) {
	start := GetHardwareTime()
	for core.Elapsed(GetHardwareTime(), start) < us {
	}
}
