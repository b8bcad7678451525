// Package segy reads and writes SEG-Y seismic files at the structural level:
// the textual header, the binary file header and the fixed 240-byte trace
// headers. Sample data is never interpreted, only carried through, so the
// package is suitable for tools that edit header fields and must leave every
// other byte of the file untouched.
package segy

import (
	"fmt"
	"strings"
)

const (
	// TextHeaderSize is the size of the (usually EBCDIC) textual file header
	// and of each extended textual header.
	TextHeaderSize = 3200

	// BinaryHeaderSize is the size of the binary file header.
	BinaryHeaderSize = 400

	// TraceHeaderSize is the size of each trace header.
	TraceHeaderSize = 240
)

// Byte offsets of the parsed binary file header fields, relative to the start
// of the 400-byte binary header (SEG-Y standard bytes 3201-3600).
const (
	binSampleInterval  = 16  // bytes 3217-3218
	binSamplesPerTrace = 20  // bytes 3221-3222
	binFormatCode      = 24  // bytes 3225-3226
	binRevision        = 300 // bytes 3501-3502
	binFixedLength     = 302 // bytes 3503-3504
	binExtendedCount   = 304 // bytes 3505-3506
)

// Byte offsets of the parsed trace header fields, relative to the start of the
// 240-byte trace header.
const (
	trcCoordScalar = 70  // bytes 71-72, scalar applied to all coordinates
	trcSourceX     = 72  // bytes 73-76
	trcSourceY     = 76  // bytes 77-80
	trcGroupX      = 80  // bytes 81-84
	trcGroupY      = 84  // bytes 85-88
	trcSamples     = 114 // bytes 115-116
	trcCDPX        = 180 // bytes 181-184
	trcCDPY        = 184 // bytes 185-188
)

// FormatCode identifies the encoding of trace sample values (binary header
// bytes 3225-3226).
type FormatCode uint16

const (
	FormatIBMFloat32 FormatCode = 1
	FormatInt32      FormatCode = 2
	FormatInt16      FormatCode = 3
	FormatFixedGain  FormatCode = 4
	FormatIEEE32     FormatCode = 5
	FormatIEEE64     FormatCode = 6
	FormatInt24      FormatCode = 7
	FormatInt8       FormatCode = 8
	FormatInt64      FormatCode = 9
	FormatUint32     FormatCode = 10
	FormatUint16     FormatCode = 11
	FormatUint64     FormatCode = 12
	FormatUint24     FormatCode = 15
	FormatUint8      FormatCode = 16
)

var sampleSizes = map[FormatCode]int{
	FormatIBMFloat32: 4,
	FormatInt32:      4,
	FormatInt16:      2,
	FormatFixedGain:  4,
	FormatIEEE32:     4,
	FormatIEEE64:     8,
	FormatInt24:      3,
	FormatInt8:       1,
	FormatInt64:      8,
	FormatUint32:     4,
	FormatUint16:     2,
	FormatUint64:     8,
	FormatUint24:     3,
	FormatUint8:      1,
}

// SampleSize returns the number of bytes per sample for the format code, or
// an error for codes outside the standard table.
func (f FormatCode) SampleSize() (int, error) {
	n, ok := sampleSizes[f]
	if !ok {
		return 0, fmt.Errorf("segy: %w: sample format code %d", ErrInvalidFormat, f)
	}
	return n, nil
}

func (f FormatCode) valid() bool {
	_, ok := sampleSizes[f]
	return ok
}

func (f FormatCode) String() string {
	switch f {
	case FormatIBMFloat32:
		return "ibm-float32"
	case FormatInt32:
		return "int32"
	case FormatInt16:
		return "int16"
	case FormatFixedGain:
		return "fixed-point-gain"
	case FormatIEEE32:
		return "ieee-float32"
	case FormatIEEE64:
		return "ieee-float64"
	case FormatInt24:
		return "int24"
	case FormatInt8:
		return "int8"
	case FormatInt64:
		return "int64"
	case FormatUint32:
		return "uint32"
	case FormatUint16:
		return "uint16"
	case FormatUint64:
		return "uint64"
	case FormatUint24:
		return "uint24"
	case FormatUint8:
		return "uint8"
	default:
		return fmt.Sprintf("format(%d)", uint16(f))
	}
}

// CoordField selects one of the three conventional coordinate pair positions
// in a trace header.
type CoordField int

const (
	FieldSource CoordField = iota // bytes 73-80
	FieldGroup                    // bytes 81-88
	FieldCDP                      // bytes 181-188, ensemble position
)

// ParseCoordField parses a field selector as given on the command line.
// Matching is case-insensitive; only Source, Group and CDP are accepted.
func ParseCoordField(s string) (CoordField, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "source":
		return FieldSource, nil
	case "group":
		return FieldGroup, nil
	case "cdp":
		return FieldCDP, nil
	}
	return 0, fmt.Errorf("segy: unknown coordinate field %q (want Source, Group or CDP)", s)
}

func (f CoordField) String() string {
	switch f {
	case FieldSource:
		return "Source"
	case FieldGroup:
		return "Group"
	case FieldCDP:
		return "CDP"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

func (f CoordField) offsets() (x, y int) {
	switch f {
	case FieldGroup:
		return trcGroupX, trcGroupY
	case FieldCDP:
		return trcCDPX, trcCDPY
	default:
		return trcSourceX, trcSourceY
	}
}
