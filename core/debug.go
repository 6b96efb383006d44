package core

import "picojoy/protocol"

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

var (
	// debugPrintln is the global debug print function (set by platform code)
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	// debugEnabled controls whether debug output is active.
	// The per-iteration coordinate line is the device's only telemetry,
	// so output starts enabled.
	debugEnabled = true
)

// SetDebugWriter sets the platform-specific debug output function
// This allows platforms to redirect debug output to UART, USB, etc.
func SetDebugWriter(writer DebugWriter) {
	if writer == nil {
		writer = func(string) {}
	}
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	return debugEnabled
}

// DebugPrintln writes a debug message using the platform-specific writer
func DebugPrintln(msg string) {
	if debugEnabled {
		debugPrintln(msg)
	}
}

// debugValue writes "label value" with an unsigned value
func debugValue(label string, v uint32) {
	if !debugEnabled {
		return
	}
	var b protocol.LineBuffer
	b.AppendString(label)
	b.AppendString(" ")
	b.AppendUint(v)
	debugPrintln(b.String())
}

// debugError writes an error line in the diagnostic stream format
func debugError(op string, err error) {
	if !debugEnabled || err == nil {
		return
	}
	var b protocol.LineBuffer
	protocol.AppendError(&b, op, err)
	debugPrintln(b.String())
}
