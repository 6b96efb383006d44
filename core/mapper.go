package core

import "picojoy/config"

// GridPoint is the marker position on the display. Col comes from the X
// axis and is used as the marker's top offset; Row comes from the Y axis and
// is used as its left offset.
type GridPoint struct {
	Col uint16
	Row uint16
}

// BoundaryCorrection converts one raw axis into a grid coordinate and keeps
// the marker off the frame border. Depth grid steps at each edge are pushed
// inward: value v < Depth gets +(Depth-v), value v > Max-Depth gets
// -(v-(Max-Depth)). Depth must equal the border inset in pixels.
type BoundaryCorrection struct {
	Max     uint16 // largest grid value (ADC max / Divisor)
	Depth   uint16
	Divisor uint16
}

// Divide returns the uncorrected grid value for a raw axis reading
func (b BoundaryCorrection) Divide(raw uint16) uint16 {
	return raw / b.Divisor
}

// Correct re-derives the grid value from raw when div is within Depth of
// either edge. div is the pre-correction value and selects the offset.
func (b BoundaryCorrection) Correct(div, raw uint16) uint16 {
	base := int32(raw / b.Divisor)

	var v int32
	switch {
	case div < b.Depth:
		v = base + int32(b.Depth-div)
	case b.Max >= b.Depth && div > b.Max-b.Depth && div <= b.Max:
		v = base - int32(div-(b.Max-b.Depth))
	default:
		return div
	}

	if v < 0 {
		v = 0
	}
	return uint16(v)
}

// Clamp limits v to [1, Max]
func (b BoundaryCorrection) Clamp(v uint16) uint16 {
	if v < 1 {
		return 1
	}
	if v > b.Max {
		return b.Max
	}
	return v
}

// GridMapper maps samples to marker positions
type GridMapper struct {
	Col BoundaryCorrection
	Row BoundaryCorrection
}

// NewGridMapper builds both axis corrections from the configuration
func NewGridMapper(cfg *config.Config) GridMapper {
	depth := cfg.Joystick.EdgeDepth
	return GridMapper{
		Col: BoundaryCorrection{Max: cfg.ColMax(), Depth: depth, Divisor: cfg.Joystick.DivisorX},
		Row: BoundaryCorrection{Max: cfg.RowMax(), Depth: depth, Divisor: cfg.Joystick.DivisorY},
	}
}

// Divide returns the raw grid position before correction
func (m GridMapper) Divide(s AxisSample) GridPoint {
	return GridPoint{Col: m.Col.Divide(s.X), Row: m.Row.Divide(s.Y)}
}

// Correct applies the edge correction to p using the raw sample
func (m GridMapper) Correct(p GridPoint, s AxisSample) GridPoint {
	return GridPoint{
		Col: m.Col.Correct(p.Col, s.X),
		Row: m.Row.Correct(p.Row, s.Y),
	}
}

// Clamp limits both coordinates to [1, Max]
func (m GridMapper) Clamp(p GridPoint) GridPoint {
	return GridPoint{Col: m.Col.Clamp(p.Col), Row: m.Row.Clamp(p.Row)}
}

// Map runs divide, correct and clamp. It keeps no state; the correction is
// recomputed from the raw sample on every call.
func (m GridMapper) Map(s AxisSample) GridPoint {
	return m.Clamp(m.Correct(m.Divide(s), s))
}
