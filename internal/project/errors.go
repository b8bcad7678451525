package project

import "errors"

var (
	// ErrOutputExists is returned when a job's output path already exists.
	// Existing files are never overwritten; the job is skipped instead.
	ErrOutputExists = errors.New("output file already exists")

	// ErrNoInputs is returned when directory resolution finds nothing to do.
	ErrNoInputs = errors.New("no matching SEG-Y files")

	// ErrCoordOverflow is returned when a scaled coordinate does not fit the
	// 32-bit trace header field.
	ErrCoordOverflow = errors.New("scaled coordinate overflows header field")
)
