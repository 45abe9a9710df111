package charconv

import (
	"fmt"
	"reflect"

	"golang.org/x/exp/constraints"
)

// ParseSigned parses the longest decimal integer prefix of src into any
// signed integer type, range-checked against T's width. Same contract as
// the width-specific Parse functions it generalizes.
func ParseSigned[T constraints.Signed](src []byte) (T, int, error) {
	v, n, err := ParseInt64(src)
	if err != nil {
		return 0, n, err
	}

	if bits := reflect.TypeOf(T(0)).Bits(); bits < 64 {
		minVal := int64(-1) << (bits - 1)
		maxVal := int64(1)<<(bits-1) - 1
		if v < minVal || v > maxVal {
			return 0, n, fmt.Errorf("%w: %d does not fit %d bits", ErrRange, v, bits)
		}
	}
	return T(v), n, nil
}

// ParseUnsigned parses the longest decimal digit prefix of src into any
// unsigned integer type, range-checked against T's width.
func ParseUnsigned[T constraints.Unsigned](src []byte) (T, int, error) {
	u, n, err := ParseUint64(src)
	if err != nil {
		return 0, n, err
	}

	if bits := reflect.TypeOf(T(0)).Bits(); bits < 64 {
		maxVal := ^uint64(0) >> (64 - bits)
		if u > maxVal {
			return 0, n, fmt.Errorf("%w: %d does not fit %d bits", ErrRange, u, bits)
		}
	}
	return T(u), n, nil
}

// FormatSigned writes the minimal decimal form of any signed integer value
// into dst.
func FormatSigned[T constraints.Signed](dst []byte, v T) (int, error) {
	return FormatInt64(dst, int64(v))
}

// FormatUnsigned writes the minimal decimal form of any unsigned integer
// value into dst.
func FormatUnsigned[T constraints.Unsigned](dst []byte, u T) (int, error) {
	return FormatUint64(dst, uint64(u))
}
