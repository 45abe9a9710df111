// Package atoi implements allocation-free maximal-prefix parsing of decimal
// integers from byte buffers.
//
// Unlike strconv, parsing stops at the longest well-formed prefix instead of
// rejecting trailing bytes, and overflow is reported separately from the
// consumed length so callers can still tell how far a structurally valid
// number extended.
package atoi

// ParseUintPrefix consumes the longest run of ASCII digits at the start of
// src and accumulates it as an unsigned value no greater than max.
//
// n is the number of bytes consumed; n == 0 means src has no digit prefix.
// When the digit run encodes a value above max, overflow is true, u is zero
// and n still covers the entire run.
func ParseUintPrefix(src []byte, max uint64) (u uint64, n int, overflow bool) {
	for n < len(src) {
		c := src[n] - '0'
		if c > 9 {
			break
		}
		if !overflow {
			// u*10 cannot wrap: u <= max/10 implies u*10 <= max.
			if u > max/10 || u*10 > max-uint64(c) {
				overflow = true
			} else {
				u = u*10 + uint64(c)
			}
		}
		n++
	}
	if overflow {
		u = 0
	}
	return u, n, overflow
}

// ParseIntPrefix consumes an optionally negated digit run at the start of
// src and accumulates it as a signed value of the given bit width
// (8, 16, 32 or 64).
//
// Only '-' is recognized as a sign; '+' is not part of the grammar. The
// bounds are the asymmetric two's-complement ones: -2^(bits-1) parses,
// 2^(bits-1) overflows.
func ParseIntPrefix(src []byte, bits uint) (v int64, n int, overflow bool) {
	rest := src
	neg := false
	if len(rest) > 0 && rest[0] == '-' {
		neg = true
		rest = rest[1:]
	}

	max := uint64(1)<<(bits-1) - 1
	if neg {
		max++
	}

	u, dn, overflow := ParseUintPrefix(rest, max)
	if dn == 0 {
		// A bare '-' is not a number; nothing is consumed.
		return 0, 0, false
	}
	n = dn
	if neg {
		n++
	}
	if overflow {
		return 0, n, true
	}
	if neg {
		// For bits == 64 the magnitude 1<<63 wraps to MinInt64 exactly.
		return -int64(u), n, false
	}
	return int64(u), n, false
}
