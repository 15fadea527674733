package convert

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt64ToInt(t *testing.T) {
	t.Run("converts in-range values", func(t *testing.T) {
		result, err := Int64ToInt(42)
		require.NoError(t, err)
		assert.Equal(t, 42, result)

		result, err = Int64ToInt(-42)
		require.NoError(t, err)
		assert.Equal(t, -42, result)
	})

	t.Run("converts int bounds", func(t *testing.T) {
		result, err := Int64ToInt(int64(math.MaxInt))
		require.NoError(t, err)
		assert.Equal(t, math.MaxInt, result)
	})
}

func TestInt64ToIntClamped(t *testing.T) {
	assert.Equal(t, 7, Int64ToIntClamped(7))
	assert.Equal(t, 0, Int64ToIntClamped(0))
	assert.Equal(t, math.MaxInt, Int64ToIntClamped(math.MaxInt64))
	assert.Equal(t, math.MinInt, Int64ToIntClamped(math.MinInt64))
}

func TestIntToUint64Clamped(t *testing.T) {
	assert.Equal(t, uint64(10), IntToUint64Clamped(10))
	assert.Equal(t, uint64(0), IntToUint64Clamped(0))
	assert.Equal(t, uint64(0), IntToUint64Clamped(-5))
}

func TestIntToInt32Clamped(t *testing.T) {
	assert.Equal(t, int32(25), IntToInt32Clamped(25))
	assert.Equal(t, int32(math.MaxInt32), IntToInt32Clamped(math.MaxInt32+1))
	assert.Equal(t, int32(math.MinInt32), IntToInt32Clamped(math.MinInt32-1))
}
