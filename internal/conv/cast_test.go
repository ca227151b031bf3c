//go:build amd64 || arm64

package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntToUint32(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want uint32
		err  bool
	}{
		{"zero", 0, 0, false},
		{"max", math.MaxUint32, math.MaxUint32, false},
		{"negative", -1, 0, true},
		{"too large", math.MaxUint32 + 1, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IntToUint32(tt.in)
			if tt.err {
				require.ErrorIs(t, err, ErrOverflow)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIntToInt32(t *testing.T) {
	got, err := IntToInt32(math.MaxInt32)
	require.NoError(t, err)
	assert.Equal(t, int32(math.MaxInt32), got)

	got, err = IntToInt32(math.MinInt32)
	require.NoError(t, err)
	assert.Equal(t, int32(math.MinInt32), got)

	_, err = IntToInt32(math.MaxInt32 + 1)
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = IntToInt32(math.MinInt32 - 1)
	assert.ErrorIs(t, err, ErrOverflow)
}
