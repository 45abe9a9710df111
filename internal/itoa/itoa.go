// Package itoa renders decimal integers into caller-supplied byte buffers
// without allocating.
package itoa

// maxUintDigits is the length of the decimal rendering of MaxUint64.
const maxUintDigits = 20

// WriteUint writes the minimal decimal form of u into dst.
// It reports the number of bytes written and whether dst was large enough;
// on ok == false nothing useful has been written.
func WriteUint(dst []byte, u uint64) (int, bool) {
	var buf [maxUintDigits]byte
	i := len(buf)
	for u >= 10 {
		q := u / 10
		i--
		buf[i] = '0' + byte(u-q*10)
		u = q
	}
	i--
	buf[i] = '0' + byte(u)

	n := len(buf) - i
	if n > len(dst) {
		return 0, false
	}
	copy(dst, buf[i:])
	return n, true
}

// WriteInt writes the minimal decimal form of v into dst, with a leading
// '-' for negative values. Zero renders as "0", never "-0".
func WriteInt(dst []byte, v int64) (int, bool) {
	if v >= 0 {
		return WriteUint(dst, uint64(v))
	}
	if len(dst) < 2 {
		return 0, false
	}
	dst[0] = '-'
	// The wrap on MinInt64 yields the correct magnitude 1<<63.
	n, ok := WriteUint(dst[1:], uint64(-v))
	if !ok {
		return 0, false
	}
	return n + 1, true
}
