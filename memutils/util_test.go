package memutils_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/earlyalloc/memutils"
)

func TestCheckPow2(t *testing.T) {
	require.NoError(t, memutils.CheckPow2(1, "one"))
	require.NoError(t, memutils.CheckPow2(uintptr(4096), "page"))
	require.NoError(t, memutils.CheckPow2(uint(1<<40), "large"))

	err := memutils.CheckPow2(0, "zero")
	require.ErrorIs(t, err, memutils.PowerOfTwoError)

	err = memutils.CheckPow2(uintptr(48), "page size")
	require.ErrorIs(t, err, memutils.PowerOfTwoError)
	require.Contains(t, err.Error(), "page size is 48")
}

func TestAlign(t *testing.T) {
	require.Equal(t, uintptr(0x1000), memutils.AlignUp(uintptr(0x1000), 16))
	require.Equal(t, uintptr(0x1010), memutils.AlignUp(uintptr(0x1001), 16))
	require.Equal(t, 24, memutils.AlignUp(17, 8))

	require.Equal(t, uintptr(0x1000), memutils.AlignDown(uintptr(0x100f), 16))
	require.Equal(t, 16, memutils.AlignDown(23, 8))

	require.True(t, memutils.IsAligned(uintptr(0x2000), 0x1000))
	require.False(t, memutils.IsAligned(uintptr(0x2040), 0x1000))

	// Alignment past the top of the address space wraps around
	require.Equal(t, uintptr(0), memutils.AlignUp(^uintptr(0), 8))
}
