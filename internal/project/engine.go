// Package project rewrites the coordinate fields of SEG-Y trace headers from
// one spatial reference system to another. It owns the scalar arithmetic, the
// per-file rewrite pass and the batch driver; format access and reprojection
// are delegated to pkg/segy and internal/geodesy.
package project

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/geophysicslabs/segy2segy/internal/geodesy"
	"github.com/geophysicslabs/segy2segy/internal/logger"
	"github.com/geophysicslabs/segy2segy/pkg/segy"
)

// Job describes one file rewrite: where to read, where to write, which header
// fields to read and update, and how to scale.
type Job struct {
	ID     uuid.UUID
	Input  string
	Output string

	SourceField segy.CoordField
	TargetField segy.CoordField

	// ForceScaling replaces the scalar stored in each trace header with
	// Scalar for both decoding and encoding. The stored scalar bytes still
	// pass through to the output unchanged.
	ForceScaling bool
	Scalar       int16
}

// Stats summarises one completed file rewrite.
type Stats struct {
	Traces        int
	SkippedTraces int
}

// Engine rewrites files using a single Transformer. It holds no per-file
// state, so one engine serves a whole batch.
type Engine struct {
	transform geodesy.Transformer
	log       logger.Logger
}

func NewEngine(transform geodesy.Transformer, log logger.Logger) *Engine {
	return &Engine{transform: transform, log: log}
}

// ProcessFile rewrites one SEG-Y file according to the job. The output file
// is created exclusively and removed again if the rewrite fails partway, so a
// failed job never leaves a half-written file behind.
//
// A trace whose coordinate cannot be reprojected, or whose result does not
// fit the header field, is passed through with its original header and
// counted in Stats.SkippedTraces; it does not fail the file.
func (e *Engine) ProcessFile(job Job) (Stats, error) {
	if _, err := os.Stat(job.Output); err == nil {
		return Stats{}, fmt.Errorf("%w: %s", ErrOutputExists, job.Output)
	} else if !os.IsNotExist(err) {
		return Stats{}, err
	}

	r, err := segy.Open(job.Input)
	if err != nil {
		return Stats{}, fmt.Errorf("open %s: %w", job.Input, err)
	}
	defer func() { _ = r.Close() }()

	out, err := os.OpenFile(job.Output, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return Stats{}, fmt.Errorf("%w: %s", ErrOutputExists, job.Output)
		}
		return Stats{}, err
	}

	stats, err := e.rewrite(job, r, out)
	cerr := out.Close()
	if err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(job.Output)
		return Stats{}, err
	}
	return stats, nil
}

func (e *Engine) rewrite(job Job, r *segy.Reader, out *os.File) (Stats, error) {
	w, err := segy.NewWriter(out)
	if err != nil {
		return Stats{}, err
	}
	if err := w.CopyFileHeaders(r); err != nil {
		return Stats{}, err
	}

	var stats Stats
	for {
		tr, err := r.ReadTrace()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Stats{}, err
		}

		scalar := tr.CoordScalar()
		if job.ForceScaling {
			scalar = job.Scalar
		}

		rawX, rawY := tr.Coord(job.SourceField)
		newX, newY, terr := e.reproject(rawX, rawY, scalar)
		if terr != nil {
			stats.SkippedTraces++
			e.log.Warn("trace not reprojected, passing through",
				"job", job.ID, "trace", tr.Index, "error", terr)
		} else {
			tr.SetCoord(job.TargetField, newX, newY)
		}

		if err := w.WriteTrace(tr); err != nil {
			return Stats{}, err
		}
		stats.Traces++
	}

	return stats, w.Close()
}

// reproject runs one raw coordinate pair through the transform and re-encodes
// the result with the same scalar.
func (e *Engine) reproject(rawX, rawY int32, scalar int16) (int32, int32, error) {
	x, y, err := e.transform.Transform(
		DecodeCoord(rawX, scalar),
		DecodeCoord(rawY, scalar),
	)
	if err != nil {
		return 0, 0, err
	}
	newX, err := EncodeCoord(x, scalar)
	if err != nil {
		return 0, 0, err
	}
	newY, err := EncodeCoord(y, scalar)
	if err != nil {
		return 0, 0, err
	}
	return newX, newY, nil
}
