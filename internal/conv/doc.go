// Package conv provides safe integer narrowing utilities.
//
// These functions perform bounds checking to prevent integer
// overflow/underflow when narrowing 64-bit parse results down to the
// caller's requested width. The caller decides how a failed narrowing is
// classified; this package only detects it.
package conv
