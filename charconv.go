package charconv

import (
	"math"

	"github.com/hupe1980/charconv/internal/atof"
	"github.com/hupe1980/charconv/internal/atoi"
	"github.com/hupe1980/charconv/internal/conv"
	"github.com/hupe1980/charconv/internal/ftoa"
	"github.com/hupe1980/charconv/internal/itoa"
)

// ParseInt64 parses the longest decimal integer prefix of src as an int64.
//
// It returns the parsed value, the number of bytes consumed and an error.
// Bytes after the prefix are left unconsumed and are not an error. A leading
// '-' is accepted; '+' and whitespace are not. On ErrRange the consumed
// count still covers the full digit run.
func ParseInt64(src []byte) (int64, int, error) {
	v, n, overflow := atoi.ParseIntPrefix(src, 64)
	if n == 0 {
		return 0, 0, ErrSyntax
	}
	if overflow {
		return 0, n, ErrRange
	}
	return v, n, nil
}

// ParseInt32 parses the longest decimal integer prefix of src as an int32.
// See ParseInt64 for the full contract.
func ParseInt32(src []byte) (int32, int, error) {
	v64, n, err := ParseInt64(src)
	if err != nil {
		return 0, n, err
	}
	v, err := conv.Int64ToInt32(v64)
	if err != nil {
		return 0, n, rangeError(err)
	}
	return v, n, nil
}

// ParseInt16 parses the longest decimal integer prefix of src as an int16.
// See ParseInt64 for the full contract.
func ParseInt16(src []byte) (int16, int, error) {
	v64, n, err := ParseInt64(src)
	if err != nil {
		return 0, n, err
	}
	v, err := conv.Int64ToInt16(v64)
	if err != nil {
		return 0, n, rangeError(err)
	}
	return v, n, nil
}

// ParseInt8 parses the longest decimal integer prefix of src as an int8.
// See ParseInt64 for the full contract.
func ParseInt8(src []byte) (int8, int, error) {
	v64, n, err := ParseInt64(src)
	if err != nil {
		return 0, n, err
	}
	v, err := conv.Int64ToInt8(v64)
	if err != nil {
		return 0, n, rangeError(err)
	}
	return v, n, nil
}

// ParseUint64 parses the longest decimal digit prefix of src as a uint64.
// No sign byte is accepted for unsigned kinds.
func ParseUint64(src []byte) (uint64, int, error) {
	u, n, overflow := atoi.ParseUintPrefix(src, math.MaxUint64)
	if n == 0 {
		return 0, 0, ErrSyntax
	}
	if overflow {
		return 0, n, ErrRange
	}
	return u, n, nil
}

// ParseUint32 parses the longest decimal digit prefix of src as a uint32.
// See ParseUint64 for the full contract.
func ParseUint32(src []byte) (uint32, int, error) {
	u64, n, err := ParseUint64(src)
	if err != nil {
		return 0, n, err
	}
	u, err := conv.Uint64ToUint32(u64)
	if err != nil {
		return 0, n, rangeError(err)
	}
	return u, n, nil
}

// ParseUint16 parses the longest decimal digit prefix of src as a uint16.
// See ParseUint64 for the full contract.
func ParseUint16(src []byte) (uint16, int, error) {
	u64, n, err := ParseUint64(src)
	if err != nil {
		return 0, n, err
	}
	u, err := conv.Uint64ToUint16(u64)
	if err != nil {
		return 0, n, rangeError(err)
	}
	return u, n, nil
}

// ParseUint8 parses the longest decimal digit prefix of src as a uint8.
// See ParseUint64 for the full contract.
func ParseUint8(src []byte) (uint8, int, error) {
	u64, n, err := ParseUint64(src)
	if err != nil {
		return 0, n, err
	}
	u, err := conv.Uint64ToUint8(u64)
	if err != nil {
		return 0, n, rangeError(err)
	}
	return u, n, nil
}

// ParseFloat64 parses the longest plain-decimal floating-point prefix of
// src: an optional '-', digits, at most one '.'. Exponent and hexadecimal
// forms are out of scope and terminate the prefix instead.
func ParseFloat64(src []byte) (float64, int, error) {
	f, n, rangeErr := atof.Parse(src)
	if n == 0 {
		return 0, 0, ErrSyntax
	}
	if rangeErr {
		return 0, n, ErrRange
	}
	return f, n, nil
}

// FormatInt64 writes the minimal decimal form of v into dst and returns the
// number of bytes written. Negative values get a leading '-'; zero renders
// as "0". ErrNoSpace leaves dst contents undefined.
func FormatInt64(dst []byte, v int64) (int, error) {
	n, ok := itoa.WriteInt(dst, v)
	if !ok {
		return 0, ErrNoSpace
	}
	return n, nil
}

// FormatInt32 writes the minimal decimal form of v into dst.
func FormatInt32(dst []byte, v int32) (int, error) { return FormatInt64(dst, int64(v)) }

// FormatInt16 writes the minimal decimal form of v into dst.
func FormatInt16(dst []byte, v int16) (int, error) { return FormatInt64(dst, int64(v)) }

// FormatInt8 writes the minimal decimal form of v into dst.
func FormatInt8(dst []byte, v int8) (int, error) { return FormatInt64(dst, int64(v)) }

// FormatUint64 writes the minimal decimal form of u into dst and returns
// the number of bytes written.
func FormatUint64(dst []byte, u uint64) (int, error) {
	n, ok := itoa.WriteUint(dst, u)
	if !ok {
		return 0, ErrNoSpace
	}
	return n, nil
}

// FormatUint32 writes the minimal decimal form of u into dst.
func FormatUint32(dst []byte, u uint32) (int, error) { return FormatUint64(dst, uint64(u)) }

// FormatUint16 writes the minimal decimal form of u into dst.
func FormatUint16(dst []byte, u uint16) (int, error) { return FormatUint64(dst, uint64(u)) }

// FormatUint8 writes the minimal decimal form of u into dst.
func FormatUint8(dst []byte, u uint8) (int, error) { return FormatUint64(dst, uint64(u)) }

// FormatFloat64 writes f in fixed decimal notation into dst and returns the
// number of bytes written.
//
// The default is the shortest representation that parses back to exactly f;
// WithPrecision fixes the digit count after the point instead. Rounding is
// round-half-to-even. Non-finite values render as "NaN", "+Inf" and "-Inf".
func FormatFloat64(dst []byte, f float64, opts ...FormatOption) (int, error) {
	o := formatOptions{precision: -1}
	for _, opt := range opts {
		opt(&o)
	}

	n, ok := ftoa.Write(dst, f, o.precision)
	if !ok {
		return 0, ErrNoSpace
	}
	return n, nil
}
