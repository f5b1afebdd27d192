package scan

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch is returned by the *Into functions when dst and src
	// differ in length.
	ErrLengthMismatch = errors.New("scan: dst and src must have same length")

	// ErrMismatch matches every *MismatchError.
	ErrMismatch = errors.New("scan: result differs from reference")
)

func checkLengths(dst, src int) error {
	if dst != src {
		return fmt.Errorf("%w: dst %d, src %d", ErrLengthMismatch, dst, src)
	}
	return nil
}

// MismatchError describes a failed verification.
type MismatchError struct {
	Mismatches    int
	FirstMismatch int
	Want, Got     int64
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("scan: %d mismatched positions, first at %d (want %d, got %d)",
		e.Mismatches, e.FirstMismatch, e.Want, e.Got)
}

// Is reports whether target is ErrMismatch.
func (e *MismatchError) Is(target error) bool {
	return target == ErrMismatch
}
