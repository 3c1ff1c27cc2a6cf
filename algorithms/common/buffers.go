package common

import (
	"fmt"
)

// Buffer is an owned, growable sequence of float32 samples.
//
// Len always reports the number of logically valid samples. Growth never
// exposes stale memory: every index at or beyond the previous length is zero
// after ExtendTo. A Buffer must not be shared between processing stages;
// use Copy when a stage needs to keep data.
type Buffer struct {
	samples []float32
	limit   int
}

// NewBuffer creates an empty buffer limited to MaxBufferLength samples.
// No storage is allocated until the buffer grows.
func NewBuffer() *Buffer {
	return &Buffer{limit: MaxBufferLength}
}

// NewBufferWithLimit creates an empty buffer that refuses to grow beyond limit
// samples. A non-positive limit selects MaxBufferLength.
func NewBufferWithLimit(limit int) *Buffer {
	if limit <= 0 || limit > MaxBufferLength {
		limit = MaxBufferLength
	}
	return &Buffer{limit: limit}
}

// Load replaces the buffer contents with a copy of src.
func (b *Buffer) Load(src []float32) error {
	b.Release()
	if err := b.ExtendTo(len(src)); err != nil {
		return err
	}
	copy(b.samples, src)
	return nil
}

// ExtendTo grows the buffer to n samples, preserving existing values at their
// indices and zero-filling the new tail. It is a no-op when n <= Len().
//
// If n exceeds the buffer limit the buffer is released and ErrOutOfMemory is
// returned; it never remains partially extended.
func (b *Buffer) ExtendTo(n int) error {
	oldLen := len(b.samples)
	if n <= oldLen {
		return nil
	}
	if limit := b.Limit(); n > limit {
		b.Release()
		return fmt.Errorf("%w: cannot extend buffer from %d to %d samples (limit %d)",
			ErrOutOfMemory, oldLen, n, limit)
	}

	if n <= cap(b.samples) {
		b.samples = b.samples[:n]
	} else {
		grown := make([]float32, n)
		copy(grown, b.samples)
		b.samples = grown
	}
	// Reused capacity may hold data from an earlier, longer use.
	clear(b.samples[oldLen:])

	return nil
}

// Release drops the backing storage. Calling it repeatedly is safe.
func (b *Buffer) Release() {
	b.samples = nil
}

// Samples returns the valid samples. The slice aliases the buffer storage.
func (b *Buffer) Samples() []float32 {
	return b.samples
}

// Len returns the number of valid samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Limit returns the maximum number of samples the buffer may hold.
// The zero Buffer is limited to MaxBufferLength.
func (b *Buffer) Limit() int {
	if b.limit <= 0 {
		return MaxBufferLength
	}
	return b.limit
}

// Copy returns a deep copy with the same limit.
func (b *Buffer) Copy() *Buffer {
	if b.samples == nil {
		return &Buffer{limit: b.limit}
	}
	s := make([]float32, len(b.samples))
	copy(s, b.samples)
	return &Buffer{samples: s, limit: b.limit}
}
