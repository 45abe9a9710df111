package charconv

type formatOptions struct {
	precision int
}

// FormatOption configures floating-point formatting behavior.
//
// Options exist to avoid exploding the API surface with precision-specific
// format variants; integer formatting takes no options.
type FormatOption func(*formatOptions)

// WithPrecision fixes the number of digits after the decimal point.
//
// Without this option the shortest representation that round-trips through
// ParseFloat64 is produced. Negative values restore that default; values
// beyond the internal scratch bound are clamped.
func WithPrecision(digits int) FormatOption {
	return func(o *formatOptions) {
		if digits < 0 {
			digits = -1
		}
		o.precision = digits
	}
}
