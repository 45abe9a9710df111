// Package ftoa renders float64 values in fixed decimal notation into
// caller-supplied byte buffers without allocating.
//
// Digit generation is delegated to strconv.AppendFloat in 'f' mode working
// over a stack scratch buffer, which gives a deterministic
// round-half-to-even policy and, at negative precision, the shortest
// representation that round-trips.
package ftoa

import (
	"strconv"
)

// MaxPrec is the largest accepted explicit precision. Values above it are
// clamped so the scratch bound below provably holds.
const MaxPrec = 120

// scratchSize bounds the longest possible 'f' rendering: a sign, up to 309
// integral digits for the largest float64, the point, and either MaxPrec
// explicit fraction digits or the shortest-form fraction, which bottoms out
// around 1e-323 with ~340 characters total.
const scratchSize = 448

// Write renders f in fixed decimal notation into dst.
//
// prec is the number of digits after the point; prec < 0 selects the
// shortest representation that parses back to exactly f. It reports the
// number of bytes written and whether dst was large enough; on ok == false
// dst contents are undefined.
func Write(dst []byte, f float64, prec int) (int, bool) {
	if prec > MaxPrec {
		prec = MaxPrec
	}

	var scratch [scratchSize]byte
	out := strconv.AppendFloat(scratch[:0], f, 'f', prec, 64)
	if len(out) > len(dst) {
		return 0, false
	}
	return copy(dst, out), true
}
