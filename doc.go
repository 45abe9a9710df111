// Package charconv converts between numeric values and their plain decimal
// text representations using caller-supplied byte buffers.
//
// It is a drop-in stand-in for strconv in contexts that need maximal-prefix
// parsing and fixed-destination formatting: parsing stops at the longest
// well-formed prefix instead of rejecting trailing bytes, and formatting
// writes into a buffer the caller owns instead of allocating. Nothing in
// this package allocates, retains state or blocks, so it is safe to call
// from any number of goroutines at once.
//
// # Quick Start
//
// Parsing consumes the longest valid prefix and reports how far it got:
//
//	v, n, err := charconv.ParseInt32([]byte("8080/path"))
//	// v == 8080, n == 4, err == nil; "/path" is left unconsumed
//
// Formatting writes into the caller's buffer:
//
//	var buf [16]byte
//	n, err := charconv.FormatUint64(buf[:], 123456)
//	// buf[:n] == "123456"
//
// # Errors
//
// Every operation reports failure through a closed sentinel set, matchable
// with errors.Is:
//
//	ErrSyntax  — no parseable prefix in the input
//	ErrRange   — a valid prefix encodes a value outside the kind's range
//	ErrNoSpace — the destination buffer cannot hold the full rendering
//
// # Supported Forms
//
// The grammar is deliberately narrow: decimal digits, a leading '-' for
// signed kinds, and for floats at most one '.'. No '+' sign, no leading
// whitespace, no exponent or hexadecimal notation, no locale awareness.
package charconv
