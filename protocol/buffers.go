package protocol

// LineBuffer builds one outgoing line in a fixed scratch array so the
// firmware loop does not allocate. Output past LineMax is truncated.
type LineBuffer struct {
	buf [LineMax]byte
	pos int
}

// AppendString appends s, truncating at capacity
func (b *LineBuffer) AppendString(s string) {
	n := copy(b.buf[b.pos:], s)
	b.pos += n
}

// AppendUint appends the decimal form of v
func (b *LineBuffer) AppendUint(v uint32) {
	var tmp [10]byte
	pos := len(tmp)
	if v == 0 {
		pos--
		tmp[pos] = '0'
	}
	for v > 0 {
		pos--
		tmp[pos] = byte('0' + v%10)
		v /= 10
	}
	n := copy(b.buf[b.pos:], tmp[pos:])
	b.pos += n
}

// Len returns the number of bytes written
func (b *LineBuffer) Len() int {
	return b.pos
}

// Result returns the accumulated line
func (b *LineBuffer) Result() []byte {
	return b.buf[:b.pos]
}

// String returns the accumulated line as a string
func (b *LineBuffer) String() string {
	return string(b.buf[:b.pos])
}

// Reset clears the buffer
func (b *LineBuffer) Reset() {
	b.pos = 0
}

// LineAssembler collects bytes from a serial stream and splits them into
// lines. A line longer than the capacity is discarded up to its terminator
// and counted in Overflows.
type LineAssembler struct {
	buf       []byte
	size      int
	skipping  bool
	Overflows int
}

// NewLineAssembler creates an assembler holding at most capacity bytes per line
func NewLineAssembler(capacity int) *LineAssembler {
	return &LineAssembler{
		buf:  make([]byte, 0, capacity),
		size: capacity,
	}
}

// Write feeds data and returns every line completed by it, without terminators.
// Empty lines (e.g. the gap in "\r\n") are not returned.
func (a *LineAssembler) Write(data []byte) []string {
	var lines []string
	for _, c := range data {
		switch c {
		case '\n', '\r':
			if !a.skipping && len(a.buf) > 0 {
				lines = append(lines, string(a.buf))
			}
			a.buf = a.buf[:0]
			a.skipping = false
		default:
			if a.skipping {
				continue
			}
			if len(a.buf) == a.size {
				a.Overflows++
				a.skipping = true
				a.buf = a.buf[:0]
				continue
			}
			a.buf = append(a.buf, c)
		}
	}
	return lines
}

// Pending returns the number of bytes of the unfinished line
func (a *LineAssembler) Pending() int {
	return len(a.buf)
}

// Reset drops any partial line
func (a *LineAssembler) Reset() {
	a.buf = a.buf[:0]
	a.skipping = false
}
