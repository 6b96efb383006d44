package core

import "sync/atomic"

// TimerFreq is the RP2040 system timer rate: one tick per microsecond
const TimerFreq = 1000000

var (
	systemTicks atomic.Uint32
	clockSource func() uint32
)

// SetClockSource registers the hardware microsecond counter.
// Called once by target code before interrupts are armed.
func SetClockSource(src func() uint32) {
	clockSource = src
}

// Micros returns microseconds since boot, truncated to 32 bits.
// Without a registered source it returns the value stored by SetTime.
func Micros() uint32 {
	if clockSource != nil {
		return clockSource()
	}
	return systemTicks.Load()
}

// SetTime sets the fallback time (for testing)
func SetTime(us uint32) {
	systemTicks.Store(us)
}

// TimerFromMS converts milliseconds to timer ticks
func TimerFromMS(ms uint32) uint32 {
	return ms * (TimerFreq / 1000)
}

// Elapsed returns now-since, correct across one 32-bit rollover
func Elapsed(now, since uint32) uint32 {
	return now - since
}
