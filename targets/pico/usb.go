//go:build rp2040

package main

import (
	"machine"
	"picojoy/protocol"
)

// lineOut holds one diagnostic line plus terminator
var lineOut [protocol.LineMax + len(protocol.LineTerminator)]byte

// InitUSB configures machine.Serial, which is USB CDC on the Pico
func InitUSB() {
	// CDC has no baud rate; the host side picks any
	_ = machine.Serial.Configure(machine.UARTConfig{})
}

// USBWriteBytes writes raw bytes to USB
func USBWriteBytes(data []byte) (int, error) {
	return machine.Serial.Write(data)
}

// DebugPrintln writes one line to USB with a CRLF terminator.
// Lines longer than protocol.LineMax are truncated. Writes to a
// disconnected host are dropped.
func DebugPrintln(s string) {
	n := copy(lineOut[:protocol.LineMax], s)
	n += copy(lineOut[n:], protocol.LineTerminator)
	_, _ = USBWriteBytes(lineOut[:n])
}
