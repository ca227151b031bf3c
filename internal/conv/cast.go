package conv

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is returned when a value does not fit the target type.
var ErrOverflow = errors.New("integer overflow")

// IntToUint32 converts a non-negative count to a uint32 bitmap member.
func IntToUint32(v int) (uint32, error) {
	if v < 0 || uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d does not fit uint32", ErrOverflow, v)
	}
	return uint32(v), nil
}

// IntToInt32 converts an ordinal to the int32 item ids used by the trees.
func IntToInt32(v int) (int32, error) {
	if int64(v) < math.MinInt32 || int64(v) > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %d does not fit int32", ErrOverflow, v)
	}
	return int32(v), nil
}
