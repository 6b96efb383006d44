// Package monitor reads the firmware's diagnostic stream and keeps running
// statistics about it.
package monitor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"picojoy/protocol"
)

// readChunk is the read size; one USB full-speed packet
const readChunk = 64

// Stats summarizes everything seen since the monitor started
type Stats struct {
	Lines       int
	Coordinates int
	Boots       int // banner lines, i.e. firmware resets
	Errors      int
	Unknown     int
	Malformed   int
	Overflows   int // lines discarded for exceeding protocol.LineMax

	MinCol    uint16
	MaxCol    uint16
	LastCol   uint16
	LastError string
}

// Monitor classifies lines and echoes them to an optional writer
type Monitor struct {
	asm    *protocol.LineAssembler
	parser *protocol.Parser
	echo   io.Writer
	limit  int
	stats  Stats

	// Follow treats io.EOF as a read timeout instead of the end of input.
	// Serial ports opened with a read timeout need it.
	Follow bool
}

// New creates a monitor. When echo is nil or s.Quiet is set nothing is printed.
func New(s *Settings, echo io.Writer) *Monitor {
	if s.Quiet {
		echo = nil
	}
	return &Monitor{
		asm:    protocol.NewLineAssembler(protocol.LineMax),
		parser: &protocol.Parser{Banner: s.Banner},
		echo:   echo,
		limit:  s.Count,
	}
}

// Feed consumes a chunk of raw bytes and returns the lines it completed
func (m *Monitor) Feed(chunk []byte) []protocol.Line {
	var out []protocol.Line
	for _, text := range m.asm.Write(chunk) {
		line, err := m.parser.Parse(text)
		if errors.Is(err, protocol.ErrEmptyLine) {
			continue
		}
		m.record(line, err)
		m.print(line, err)
		out = append(out, line)
	}
	m.stats.Overflows = m.asm.Overflows
	return out
}

func (m *Monitor) record(line protocol.Line, err error) {
	m.stats.Lines++
	if err != nil {
		m.stats.Malformed++
		return
	}

	switch line.Kind {
	case protocol.LineBanner:
		m.stats.Boots++
	case protocol.LineCoordinate:
		if m.stats.Coordinates == 0 || line.Col < m.stats.MinCol {
			m.stats.MinCol = line.Col
		}
		if line.Col > m.stats.MaxCol {
			m.stats.MaxCol = line.Col
		}
		m.stats.LastCol = line.Col
		m.stats.Coordinates++
	case protocol.LineError:
		m.stats.Errors++
		m.stats.LastError = line.Text
	default:
		m.stats.Unknown++
	}
}

func (m *Monitor) print(line protocol.Line, err error) {
	if m.echo == nil {
		return
	}
	switch {
	case err != nil:
		fmt.Fprintf(m.echo, "?? %s (%v)\n", line.Text, err)
	case line.Kind == protocol.LineBanner:
		fmt.Fprintf(m.echo, "-- boot: %s\n", line.Text)
	case line.Kind == protocol.LineError:
		fmt.Fprintf(m.echo, "!! %s\n", line.Text)
	default:
		fmt.Fprintln(m.echo, line.Text)
	}
}

// Done reports whether the coordinate limit was reached
func (m *Monitor) Done() bool {
	return m.limit > 0 && m.stats.Coordinates >= m.limit
}

// Run reads r until ctx is cancelled, the limit is reached or r fails.
// Without Follow, io.EOF ends the run normally.
func (m *Monitor) Run(ctx context.Context, r io.Reader) error {
	buf := make([]byte, readChunk)
	for !m.Done() {
		if ctx.Err() != nil {
			return nil
		}

		n, err := r.Read(buf)
		if n > 0 {
			m.Feed(buf[:n])
		}
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			if !m.Follow {
				return nil
			}
		default:
			return fmt.Errorf("read: %w", err)
		}
	}
	return nil
}

// Stats returns a copy of the current statistics
func (m *Monitor) Stats() Stats {
	return m.stats
}

// Summary formats the statistics for the end of a session
func (m *Monitor) Summary() string {
	s := m.stats
	var b strings.Builder
	fmt.Fprintf(&b, "lines=%d coordinates=%d boots=%d errors=%d unknown=%d malformed=%d overflows=%d",
		s.Lines, s.Coordinates, s.Boots, s.Errors, s.Unknown, s.Malformed, s.Overflows)
	if s.Coordinates > 0 {
		fmt.Fprintf(&b, " vx[min=%d max=%d last=%d]", s.MinCol, s.MaxCol, s.LastCol)
	}
	if s.LastError != "" {
		fmt.Fprintf(&b, " last_error=%q", s.LastError)
	}
	return b.String()
}
