// Package convert provides safe integer conversions for values crossing
// driver and wire boundaries.
package convert

import (
	"fmt"
	"math"
)

// Int64ToInt converts an int64 to int, returning an error if it does not fit.
func Int64ToInt(v int64) (int, error) {
	if v > math.MaxInt || v < math.MinInt {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int", v)
	}
	return int(v), nil
}

// Int64ToIntClamped converts an int64 to int, clamping to the int bounds.
func Int64ToIntClamped(v int64) int {
	if v > math.MaxInt {
		return math.MaxInt
	}
	if v < math.MinInt {
		return math.MinInt
	}
	return int(v)
}

// IntToUint64Clamped converts an int to uint64, clamping negative values to 0.
func IntToUint64Clamped(v int) uint64 {
	if v < 0 {
		return 0
	}
	return uint64(v)
}

// IntToInt32Clamped converts an int to int32, clamping to the int32 bounds.
func IntToInt32Clamped(v int) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}
