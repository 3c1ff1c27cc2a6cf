package estimation

import (
	"errors"
	"fmt"

	"github.com/RyanBlaney/sonido-swell/algorithms/common"
)

var (
	// ErrOutOfMemory reports that a working buffer could not grow to the
	// required length.
	ErrOutOfMemory = common.ErrOutOfMemory

	// ErrSizeOverflow reports an input whose padded length cannot be
	// represented, including an empty input.
	ErrSizeOverflow = common.ErrSizeOverflow

	// ErrLengthMismatch reports spectra or records that must have equal
	// lengths but do not.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrIngestion reports that an input record could not be loaded.
	ErrIngestion = errors.New("ingestion failed")

	// ErrEmptyRAO reports an estimation attempted without a characterised RAO.
	ErrEmptyRAO = errors.New("empty RAO")

	// ErrInvalidTimestep reports a sampling interval that is zero, negative
	// or not finite.
	ErrInvalidTimestep = errors.New("invalid timestep")
)

// LengthMismatchError carries both lengths of a failed pairing.
type LengthMismatchError struct {
	What  string
	Left  int
	Right int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("length mismatch: %s have %d and %d samples", e.What, e.Left, e.Right)
}

// Is matches ErrLengthMismatch.
func (e *LengthMismatchError) Is(target error) bool {
	return target == ErrLengthMismatch
}

// IngestionError wraps a loader failure with the source it came from. The
// loader's own error stays reachable through errors.Is and errors.As.
type IngestionError struct {
	Source string
	Err    error
}

func (e *IngestionError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.Source, e.Err)
}

func (e *IngestionError) Unwrap() error {
	return e.Err
}

// Is matches ErrIngestion.
func (e *IngestionError) Is(target error) bool {
	return target == ErrIngestion
}
