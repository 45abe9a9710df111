// Package mem provides zero-copy memory reinterpretation utilities.
package mem

import (
	"unsafe"
)

// String reinterprets b as a string without copying.
//
// The returned string aliases b's backing array: the caller must not mutate
// b while the string is in use, and must not retain the string past b's
// lifetime. Intended for handing short-lived byte views to APIs that only
// accept strings.
func String(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b)) //nolint:gosec // zero-copy view is the point
}
