package common

import "errors"

var (
	// ErrOutOfMemory reports that a buffer could not grow to the requested length.
	ErrOutOfMemory = errors.New("out of memory")

	// ErrSizeOverflow reports that a requested length cannot be represented,
	// either because power-of-two padding would exceed the buffer limit or
	// because there is nothing to pad.
	ErrSizeOverflow = errors.New("size overflow")
)
