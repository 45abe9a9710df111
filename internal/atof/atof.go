// Package atof implements maximal-prefix parsing of plain decimal
// floating-point numbers from byte buffers.
//
// The accepted grammar is deliberately narrow:
//
//	-? ( digits ( "." digits* )? | "." digits )
//
// No '+' sign, no exponent, no hex floats, no whitespace. Conversion of the
// scanned prefix is delegated to strconv.ParseFloat over a zero-copy view,
// so digit-to-value semantics (including round-half-to-even) match the
// standard library.
package atof

import (
	"strconv"

	"github.com/hupe1980/charconv/internal/mem"
)

// PrefixLen returns the length of the longest prefix of src that forms a
// plain decimal floating-point number, or 0 if there is none.
func PrefixLen(src []byte) int {
	i := 0
	if i < len(src) && src[i] == '-' {
		i++
	}

	intDigits := 0
	for i < len(src) && src[i] >= '0' && src[i] <= '9' {
		i++
		intDigits++
	}

	fracDigits := 0
	if i < len(src) && src[i] == '.' {
		j := i + 1
		for j < len(src) && src[j] >= '0' && src[j] <= '9' {
			j++
			fracDigits++
		}
		// "1." is a valid prefix, a lone "." or "-." is not.
		if intDigits > 0 || fracDigits > 0 {
			i = j
		}
	}

	if intDigits == 0 && fracDigits == 0 {
		return 0
	}
	return i
}

// Parse converts the longest plain-decimal prefix of src to a float64.
//
// n == 0 means src has no parseable prefix. rangeErr reports that the prefix
// was structurally valid but its magnitude exceeds the float64 range; n still
// covers the full prefix in that case.
func Parse(src []byte) (f float64, n int, rangeErr bool) {
	n = PrefixLen(src)
	if n == 0 {
		return 0, 0, false
	}

	f, err := strconv.ParseFloat(mem.String(src[:n]), 64)
	if err != nil {
		// The grammar guarantees the prefix is syntactically valid for
		// ParseFloat, so the only reachable failure is ErrRange.
		return 0, n, true
	}
	return f, n, false
}
