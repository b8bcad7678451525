package segy

import (
	"bufio"
	"errors"
	"fmt"
	"os"
)

const writerBufSize = 1 << 20 // 1 MiB

// Writer streams a SEG-Y file out trace by trace. File headers are copied
// verbatim from a Reader so the output differs from the input only in the
// trace header bytes the caller has modified.
type Writer struct {
	f      *os.File
	w      *bufio.Writer
	closed bool

	headersDone bool
	traces      int
}

// NewWriter creates a writer targeting the given file. The file should be
// freshly created; the writer never seeks.
func NewWriter(f *os.File) (*Writer, error) {
	if f == nil {
		return nil, errors.New("segy: nil file")
	}
	return &Writer{
		f: f,
		w: bufio.NewWriterSize(f, writerBufSize),
	}, nil
}

// CopyFileHeaders writes the textual header, binary header and any extended
// textual headers exactly as they appear in the source reader. Must be called
// once, before the first trace.
func (w *Writer) CopyFileHeaders(r *Reader) error {
	if w.closed {
		return errors.New("segy: writer already closed")
	}
	if w.headersDone {
		return errors.New("segy: file headers already written")
	}
	if _, err := w.w.Write(r.Text); err != nil {
		return err
	}
	if _, err := w.w.Write(r.Binary.Raw); err != nil {
		return err
	}
	for _, ext := range r.Extended {
		if _, err := w.w.Write(ext); err != nil {
			return err
		}
	}
	w.headersDone = true
	return nil
}

// WriteTrace appends one trace, header then data bytes.
func (w *Writer) WriteTrace(t *Trace) error {
	if w.closed {
		return errors.New("segy: writer already closed")
	}
	if !w.headersDone {
		return errors.New("segy: file headers not written")
	}
	if len(t.Header) != TraceHeaderSize {
		return fmt.Errorf("segy: trace %d header is %d bytes", t.Index, len(t.Header))
	}
	if _, err := w.w.Write(t.Header); err != nil {
		return err
	}
	if _, err := w.w.Write(t.Data); err != nil {
		return err
	}
	w.traces++
	return nil
}

// Traces reports how many traces have been written.
func (w *Writer) Traces() int { return w.traces }

// Close flushes buffered data and syncs the file. It does not close the
// underlying *os.File; the caller owns it.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if err := w.w.Flush(); err != nil {
		return err
	}
	return w.f.Sync()
}
