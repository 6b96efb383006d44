// Package protocol implements the line-oriented diagnostic stream the
// firmware writes over USB serial and the host monitor reads back.
//
// Every line is plain ASCII terminated by "\r\n":
//
//	joystick-pwm start     boot banner (text is configurable)
//	vx=<n>                 mapped column for one loop iteration
//	error: <op>: <msg>     a peripheral call failed, the loop continued
package protocol

import (
	"errors"
	"strconv"
	"strings"
)

// Version represents the firmware version reported by the host tool
const Version = "0.1.0"

// Protocol constants
const (
	LineMax          = 96 // Longest line the firmware emits, without terminator
	LineTerminator   = "\r\n"
	CoordinatePrefix = "vx="
	ErrorPrefix      = "error: "
	DefaultBanner    = "joystick-pwm start"
)

var (
	ErrEmptyLine       = errors.New("empty line")
	ErrMalformedLine   = errors.New("malformed coordinate line")
	ErrCoordinateRange = errors.New("coordinate out of range")
)

// LineKind classifies a received line
type LineKind uint8

const (
	LineUnknown LineKind = iota
	LineBanner
	LineCoordinate
	LineError
)

func (k LineKind) String() string {
	switch k {
	case LineBanner:
		return "banner"
	case LineCoordinate:
		return "coordinate"
	case LineError:
		return "error"
	default:
		return "unknown"
	}
}

// Line is one parsed diagnostic line
type Line struct {
	Kind LineKind
	Col  uint16 // valid for LineCoordinate
	Text string // line without terminator; for LineError the message after the prefix
}

// AppendCoordinate appends a coordinate line (without terminator) to b
func AppendCoordinate(b *LineBuffer, col uint16) {
	b.AppendString(CoordinatePrefix)
	b.AppendUint(uint32(col))
}

// AppendError appends an error line (without terminator) to b
func AppendError(b *LineBuffer, op string, err error) {
	b.AppendString(ErrorPrefix)
	b.AppendString(op)
	b.AppendString(": ")
	b.AppendString(err.Error())
}

// Parser classifies lines; Banner must match the firmware's configured banner
type Parser struct {
	Banner string
}

// NewParser returns a parser for the default banner
func NewParser() *Parser {
	return &Parser{Banner: DefaultBanner}
}

// Parse classifies a single line. Trailing CR/LF is ignored.
// Lines that match no known form are returned as LineUnknown without error.
func (p *Parser) Parse(s string) (Line, error) {
	s = strings.TrimRight(s, "\r\n")
	if s == "" {
		return Line{}, ErrEmptyLine
	}

	switch {
	case s == p.Banner:
		return Line{Kind: LineBanner, Text: s}, nil
	case strings.HasPrefix(s, CoordinatePrefix):
		v, err := strconv.ParseUint(strings.TrimSpace(s[len(CoordinatePrefix):]), 10, 32)
		if err != nil {
			return Line{Kind: LineCoordinate, Text: s}, ErrMalformedLine
		}
		if v > 0xFFFF {
			return Line{Kind: LineCoordinate, Text: s}, ErrCoordinateRange
		}
		return Line{Kind: LineCoordinate, Col: uint16(v), Text: s}, nil
	case strings.HasPrefix(s, ErrorPrefix):
		return Line{Kind: LineError, Text: s[len(ErrorPrefix):]}, nil
	}
	return Line{Kind: LineUnknown, Text: s}, nil
}
