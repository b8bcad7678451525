package segy

import (
	"encoding/binary"
	"fmt"
)

// BinaryHeader holds the parsed fields of the 400-byte binary file header.
// Raw keeps the complete header so writers can reproduce it byte for byte.
type BinaryHeader struct {
	SampleInterval  uint16 // microseconds
	SamplesPerTrace uint16
	Format          FormatCode
	Revision        uint16
	FixedLength     bool
	ExtendedCount   int16 // number of 3200-byte extended textual headers

	Raw []byte
}

func parseBinaryHeader(raw []byte, order binary.ByteOrder) (BinaryHeader, error) {
	if len(raw) != BinaryHeaderSize {
		return BinaryHeader{}, fmt.Errorf("segy: %w: binary header is %d bytes", ErrInvalidFormat, len(raw))
	}

	h := BinaryHeader{
		SampleInterval:  order.Uint16(raw[binSampleInterval:]),
		SamplesPerTrace: order.Uint16(raw[binSamplesPerTrace:]),
		Format:          FormatCode(order.Uint16(raw[binFormatCode:])),
		Revision:        order.Uint16(raw[binRevision:]),
		FixedLength:     order.Uint16(raw[binFixedLength:]) == 1,
		ExtendedCount:   int16(order.Uint16(raw[binExtendedCount:])),
		Raw:             raw,
	}

	if !h.Format.valid() {
		return BinaryHeader{}, fmt.Errorf("segy: %w: sample format code %d", ErrInvalidFormat, h.Format)
	}
	if h.ExtendedCount < 0 {
		// -1 means a variable number of extended headers terminated by a
		// sentinel record. Nothing in the wild that we process uses it.
		return BinaryHeader{}, fmt.Errorf("segy: %w: variable extended textual header count", ErrUnsupported)
	}
	return h, nil
}
