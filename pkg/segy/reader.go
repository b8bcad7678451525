package segy

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// Reader provides sequential access to the traces of a SEG-Y file.
//
// The whole file is mapped (or loaded) up front; trace data slices returned
// by ReadTrace alias that buffer and stay valid until Close.
type Reader struct {
	Text     []byte   // 3200-byte textual header, passed through verbatim
	Binary   BinaryHeader
	Extended [][]byte // extended textual headers, passed through verbatim

	data       []byte
	mmapped    bool
	order      binary.ByteOrder
	sampleSize int
	off        int // next trace header offset
	index      int
}

// Open maps a SEG-Y file read-only and parses its file headers.
// If mmap is unavailable, it falls back to ReadAt-based loading.
// The returned reader must be closed to release any mapping.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}

	size64 := stat.Size()
	if size64 > int64(int(^uint(0)>>1)) {
		// cannot index this file safely as []byte on this architecture.
		return nil, fmt.Errorf("segy: %w: file too large to map", ErrUnsupported)
	}
	size := int(size64)
	if size < TextHeaderSize+BinaryHeaderSize {
		return nil, fmt.Errorf("segy: %w: file smaller than its headers", ErrTruncated)
	}

	// Prefer mmap where available for zero-copy trace slices.
	data, err := unix.Mmap(
		int(f.Fd()),
		0,
		size,
		unix.PROT_READ,
		unix.MAP_SHARED,
	)
	if err == nil {
		r, parseErr := newReader(data, true)
		if parseErr != nil {
			_ = unix.Munmap(data)
			return nil, parseErr
		}
		return r, nil
	}

	// Fallback path that does not require mmap support.
	data, err = readAllAt(f, size)
	if err != nil {
		return nil, err
	}
	return newReader(data, false)
}

// OpenReaderAt parses a SEG-Y file from a random-access reader without mmap.
func OpenReaderAt(r io.ReaderAt, size int64) (*Reader, error) {
	if size < 0 || size > int64(int(^uint(0)>>1)) {
		return nil, fmt.Errorf("segy: %w: bad file size %d", ErrInvalidFormat, size)
	}
	data, err := readAllAt(r, int(size))
	if err != nil {
		return nil, err
	}
	return newReader(data, false)
}

func newReader(data []byte, mmapped bool) (*Reader, error) {
	if len(data) < TextHeaderSize+BinaryHeaderSize {
		return nil, fmt.Errorf("segy: %w: file smaller than its headers", ErrTruncated)
	}

	binRaw := data[TextHeaderSize : TextHeaderSize+BinaryHeaderSize]
	order, err := detectByteOrder(binRaw)
	if err != nil {
		return nil, err
	}
	bh, err := parseBinaryHeader(binRaw, order)
	if err != nil {
		return nil, err
	}
	sampleSize, err := bh.Format.SampleSize()
	if err != nil {
		return nil, err
	}

	off := TextHeaderSize + BinaryHeaderSize
	ext := make([][]byte, 0, bh.ExtendedCount)
	for i := 0; i < int(bh.ExtendedCount); i++ {
		if len(data)-off < TextHeaderSize {
			return nil, fmt.Errorf("segy: %w: extended textual header %d", ErrTruncated, i)
		}
		ext = append(ext, data[off:off+TextHeaderSize])
		off += TextHeaderSize
	}

	return &Reader{
		Text:       data[:TextHeaderSize],
		Binary:     bh,
		Extended:   ext,
		data:       data,
		mmapped:    mmapped,
		order:      order,
		sampleSize: sampleSize,
		off:        off,
	}, nil
}

// detectByteOrder infers the file's endianness from the sample format code,
// which has a small set of legal values. Big-endian is the standard and is
// tried first; little-endian files exist in the wild and are accepted when
// only that interpretation yields a legal code.
func detectByteOrder(binRaw []byte) (binary.ByteOrder, error) {
	be := FormatCode(binary.BigEndian.Uint16(binRaw[binFormatCode:]))
	if be.valid() {
		return binary.BigEndian, nil
	}
	le := FormatCode(binary.LittleEndian.Uint16(binRaw[binFormatCode:]))
	if le.valid() {
		return binary.LittleEndian, nil
	}
	return nil, fmt.Errorf("segy: %w: sample format code %d in either byte order", ErrInvalidFormat, be)
}

// ByteOrder reports the byte order the file was decoded with.
func (r *Reader) ByteOrder() binary.ByteOrder { return r.order }

// ReadTrace returns the next trace, or io.EOF after the last one. The trace
// header is a fresh copy and safe to modify; the data slice is not.
func (r *Reader) ReadTrace() (*Trace, error) {
	if r.off >= len(r.data) {
		return nil, io.EOF
	}
	if len(r.data)-r.off < TraceHeaderSize {
		return nil, fmt.Errorf("segy: %w: trace %d header", ErrTruncated, r.index)
	}

	hdr := make([]byte, TraceHeaderSize)
	copy(hdr, r.data[r.off:])
	r.off += TraceHeaderSize

	t := &Trace{
		Index:  r.index,
		Header: hdr,
		order:  r.order,
	}

	ns := int(t.Samples())
	if ns == 0 {
		ns = int(r.Binary.SamplesPerTrace)
	}
	dataLen := ns * r.sampleSize
	if len(r.data)-r.off < dataLen {
		return nil, fmt.Errorf("segy: %w: trace %d data (%d samples)", ErrTruncated, r.index, ns)
	}
	t.Data = r.data[r.off : r.off+dataLen]
	r.off += dataLen
	r.index++

	return t, nil
}

// Close releases the file mapping, if any. Trace data slices must not be used
// afterwards.
func (r *Reader) Close() error {
	if r.mmapped {
		r.mmapped = false
		return unix.Munmap(r.data)
	}
	return nil
}

func readAllAt(r io.ReaderAt, size int) ([]byte, error) {
	if size == 0 {
		return []byte{}, nil
	}
	out := make([]byte, size)
	var off int64
	for off < int64(size) {
		n, err := r.ReadAt(out[off:], off)
		off += int64(n)
		if err == nil {
			continue
		}
		if err == io.EOF && off == int64(size) {
			break
		}
		return nil, err
	}
	return out, nil
}
