package charconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSigned(t *testing.T) {
	t.Run("agrees with width-specific parse", func(t *testing.T) {
		inputs := []string{"0", "-1", "127", "-128", "32767", "2147483647", "-2147483648"}
		for _, in := range inputs {
			want, wantN, wantErr := ParseInt32([]byte(in))
			got, n, err := ParseSigned[int32]([]byte(in))
			require.Equal(t, wantErr, err, in)
			assert.Equal(t, want, got, in)
			assert.Equal(t, wantN, n, in)
		}
	})

	t.Run("narrow range check", func(t *testing.T) {
		_, n, err := ParseSigned[int8]([]byte("200"))
		assert.ErrorIs(t, err, ErrRange)
		assert.Equal(t, 3, n)
	})

	t.Run("platform int", func(t *testing.T) {
		v, n, err := ParseSigned[int]([]byte("-42rest"))
		require.NoError(t, err)
		assert.Equal(t, -42, v)
		assert.Equal(t, 3, n)
	})
}

func TestParseUnsigned(t *testing.T) {
	t.Run("narrow range check", func(t *testing.T) {
		_, _, err := ParseUnsigned[uint16]([]byte("65536"))
		assert.ErrorIs(t, err, ErrRange)
	})

	t.Run("full width", func(t *testing.T) {
		v, _, err := ParseUnsigned[uint64]([]byte("18446744073709551615"))
		require.NoError(t, err)
		assert.Equal(t, uint64(18446744073709551615), v)
	})

	t.Run("sign rejected", func(t *testing.T) {
		_, _, err := ParseUnsigned[uint8]([]byte("-1"))
		assert.ErrorIs(t, err, ErrSyntax)
	})
}

func TestFormatGeneric(t *testing.T) {
	var dst [24]byte

	n, err := FormatSigned(dst[:], int16(-999))
	require.NoError(t, err)
	assert.Equal(t, "-999", string(dst[:n]))

	n, err = FormatUnsigned(dst[:], uint8(255))
	require.NoError(t, err)
	assert.Equal(t, "255", string(dst[:n]))
}
