package memutils

import (
	cerrors "github.com/cockroachdb/errors"
)

type Number interface {
	~int | ~uint | ~uintptr
}

// CheckPow2 returns an error wrapping PowerOfTwoError if number is not a power of two. Zero is
// rejected as well.
func CheckPow2[T Number](number T, name string) error {
	if number == 0 || number&(number-1) != 0 {
		return cerrors.Wrapf(PowerOfTwoError, "%s is %d", name, number)
	}
	return nil
}

// AlignUp rounds value up to the next multiple of alignment, which must be a power of two. The result
// wraps around if value is within alignment of the top of T's range; callers that care must compare the
// result against value.
func AlignUp[T Number](value T, alignment T) T {
	return (value + alignment - 1) & ^(alignment - 1)
}

// AlignDown rounds value down to a multiple of alignment, which must be a power of two.
func AlignDown[T Number](value T, alignment T) T {
	return value & ^(alignment - 1)
}

// IsAligned returns true if value is a multiple of alignment, which must be a power of two.
func IsAligned[T Number](value T, alignment T) bool {
	return value&(alignment-1) == 0
}
