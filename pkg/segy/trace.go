package segy

import "encoding/binary"

// Trace is one trace of a SEG-Y file: its 240-byte header plus raw sample
// bytes. Header is a private copy and may be modified through SetCoord; Data
// aliases the reader's underlying buffer and is valid until the reader is
// closed.
type Trace struct {
	// Index is the zero-based position of the trace in the file.
	Index int

	Header []byte
	Data   []byte

	order binary.ByteOrder
}

// CoordScalar returns the scalar applied to all coordinates (trace header
// bytes 71-72). Positive values are multipliers, negative values divisors,
// zero means no scaling.
func (t *Trace) CoordScalar() int16 {
	return int16(t.order.Uint16(t.Header[trcCoordScalar:]))
}

// Samples returns the number of samples recorded in this trace's header
// (bytes 115-116). May be zero in files that rely on the binary file header.
func (t *Trace) Samples() uint16 {
	return t.order.Uint16(t.Header[trcSamples:])
}

// Coord returns the raw integer coordinate pair stored at the given field.
func (t *Trace) Coord(f CoordField) (x, y int32) {
	xo, yo := f.offsets()
	x = int32(t.order.Uint32(t.Header[xo:]))
	y = int32(t.order.Uint32(t.Header[yo:]))
	return x, y
}

// SetCoord stores a raw integer coordinate pair at the given field, using the
// same byte order the file was read with.
func (t *Trace) SetCoord(f CoordField, x, y int32) {
	xo, yo := f.offsets()
	t.order.PutUint32(t.Header[xo:], uint32(x))
	t.order.PutUint32(t.Header[yo:], uint32(y))
}
