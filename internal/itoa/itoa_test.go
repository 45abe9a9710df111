package itoa

import (
	"math"
	"strconv"
	"testing"
)

func TestWriteUint(t *testing.T) {
	tests := []struct {
		name string
		in   uint64
		want string
	}{
		{"zero", 0, "0"},
		{"one digit", 7, "7"},
		{"two digits", 42, "42"},
		{"power of ten", 1000, "1000"},
		{"max", math.MaxUint64, "18446744073709551615"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dst [32]byte
			n, ok := WriteUint(dst[:], tt.in)
			if !ok {
				t.Fatalf("unexpected short buffer")
			}
			if got := string(dst[:n]); got != tt.want {
				t.Fatalf("got %q want %q", got, tt.want)
			}
		})
	}
}

func TestWriteUint_ShortBuffer(t *testing.T) {
	var dst [2]byte
	if n, ok := WriteUint(dst[:], 123); ok {
		t.Fatalf("expected failure, wrote %d bytes", n)
	}
	// Exact fit succeeds.
	if n, ok := WriteUint(dst[:], 12); !ok || n != 2 {
		t.Fatalf("exact fit failed: n=%d ok=%v", n, ok)
	}
}

func TestWriteInt(t *testing.T) {
	tests := []struct {
		name string
		in   int64
	}{
		{"zero", 0},
		{"positive", 123456},
		{"negative", -123456},
		{"minus one", -1},
		{"min", math.MinInt64},
		{"max", math.MaxInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dst [32]byte
			n, ok := WriteInt(dst[:], tt.in)
			if !ok {
				t.Fatalf("unexpected short buffer")
			}
			want := strconv.FormatInt(tt.in, 10)
			if got := string(dst[:n]); got != want {
				t.Fatalf("got %q want %q", got, want)
			}
		})
	}
}

func TestWriteInt_ShortBuffer(t *testing.T) {
	var dst [3]byte
	if _, ok := WriteInt(dst[:], -1234); ok {
		t.Fatal("expected failure")
	}
	if n, ok := WriteInt(dst[:], -12); !ok || n != 3 {
		t.Fatalf("exact fit failed: n=%d ok=%v", n, ok)
	}
}
