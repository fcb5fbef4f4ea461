package codec

import "errors"

// Package errors. Every one of them aborts the whole call; callers match with errors.Is.
var (
	ErrInputSize        = errors.New("input size is not a multiple of the row width")
	ErrAddressOverflow  = errors.New("row address does not fit in 16 bits")
	ErrStreamBounds     = errors.New("read past end of encoded stream")
	ErrRowOverflow      = errors.New("run overflows the row width")
	ErrAddressUnderflow = errors.New("back-reference address is below the origin")
	ErrNestedBackRef    = errors.New("back-reference points at another back-reference")
	ErrForwardRef       = errors.New("back-reference does not point at an earlier row")
	ErrUnencodableRow   = errors.New("row holds a byte that can only be stored inside a run, and no run covers it")
)
