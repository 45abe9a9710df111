package charconv

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax is returned when the input contains no parseable numeric
	// prefix (empty input, or a first byte that is neither a digit nor a
	// sign permitted for the requested kind).
	ErrSyntax = errors.New("invalid syntax")

	// ErrRange is returned when a structurally valid numeric prefix encodes
	// a value outside the representable range of the requested kind. The
	// consumed count still covers the full prefix.
	ErrRange = errors.New("value out of range")

	// ErrNoSpace is returned when the destination buffer is too small to
	// hold the full textual representation. Destination contents are
	// undefined after this error.
	ErrNoSpace = errors.New("destination buffer too small")
)

// rangeError wraps a narrowing failure so callers can match it with
// errors.Is(err, ErrRange) while keeping the underlying detail.
func rangeError(err error) error {
	return fmt.Errorf("%w: %w", ErrRange, err)
}
