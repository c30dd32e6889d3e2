package wire_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/p2p-today/go-p2p/wire"
)

func TestBase58(t *testing.T) {
	t.Parallel()
	t.Helper()

	for _, tt := range []struct {
		name string
		i    uint64
		want string
	}{
		{name: "Zero", i: 0, want: "1"},
		{name: "One", i: 1, want: "2"},
		{name: "Base", i: 58, want: "21"},
		{name: "Timestamp", i: 1500000000, want: "3HYtjy"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(wire.ToBase58(tt.i)))

			got, err := wire.FromBase58([]byte(tt.want))
			require.NoError(t, err)
			assert.Equal(t, tt.i, got)
		})
	}

	t.Run("InvalidDigit", func(t *testing.T) {
		_, err := wire.FromBase58([]byte("O0Il")) // excluded from the alphabet
		assert.ErrorIs(t, err, wire.ErrBase58)
	})

	t.Run("MaxUint64", func(t *testing.T) {
		// jpXCZedGfVQ = 2^64 - 1, the largest decodable value.
		got, err := wire.FromBase58([]byte("jpXCZedGfVQ"))
		require.NoError(t, err)
		assert.Equal(t, uint64(1<<64-1), got)
	})

	t.Run("Overflow", func(t *testing.T) {
		_, err := wire.FromBase58([]byte("jpXCZedGfVR")) // 2^64
		assert.ErrorIs(t, err, wire.ErrBase58Range)

		_, err = wire.FromBase58([]byte("zzzzzzzzzzzz"))
		assert.ErrorIs(t, err, wire.ErrBase58Range)
	})
}
