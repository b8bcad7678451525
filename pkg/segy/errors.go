package segy

import "errors"

var (
	ErrInvalidFormat = errors.New("invalid SEG-Y file")
	ErrTruncated     = errors.New("truncated SEG-Y file")
	ErrUnsupported   = errors.New("unsupported SEG-Y feature")
)
