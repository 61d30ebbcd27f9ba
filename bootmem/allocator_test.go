package bootmem_test

import (
	"bytes"
	"io"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/earlyalloc/bootmem"
	"github.com/vkngwrapper/earlyalloc/memutils"
	"github.com/vkngwrapper/earlyalloc/memutils/early"
	mock_memutils "github.com/vkngwrapper/earlyalloc/memutils/mocks"
	"go.uber.org/mock/gomock"
	"golang.org/x/exp/slog"
)

const (
	regionStart uintptr = 0x100000
	regionSize  uintptr = 16 * 4096
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func readyAllocator(t *testing.T, flags bootmem.CreateFlags) *bootmem.Allocator {
	allocator, err := bootmem.New(discardLogger(), early.New[early.Page4K](), bootmem.CreateOptions{
		Flags: flags,
		Start: regionStart,
		Size:  regionSize,
	})
	require.NoError(t, err)
	return allocator
}

func TestNewInitializesRange(t *testing.T) {
	allocator := readyAllocator(t, 0)

	require.Equal(t, uintptr(4096), allocator.PageSize())
	require.Equal(t, regionSize, allocator.TotalBytes())
	require.Equal(t, uintptr(16), allocator.TotalPages())

	addr, err := allocator.Alloc(100, 1)
	require.NoError(t, err)
	require.Equal(t, regionStart, addr)
	require.Equal(t, uintptr(100), allocator.UsedBytes())

	base, err := allocator.AllocPages(2, 0)
	require.NoError(t, err)
	require.Equal(t, regionStart+regionSize-2*4096, base)
	require.Equal(t, uintptr(2), allocator.UsedPages())
	require.Equal(t, uintptr(13), allocator.AvailablePages())
	require.Equal(t, regionSize-100-2*4096, allocator.AvailableBytes())

	require.NoError(t, allocator.Dealloc(addr, 100, 1))
	require.Equal(t, uintptr(0), allocator.UsedBytes())
	require.NoError(t, allocator.Validate())
}

func TestNewWithoutRange(t *testing.T) {
	allocator, err := bootmem.New(discardLogger(), early.New[early.Page4K](), bootmem.CreateOptions{})
	require.NoError(t, err)

	_, err = allocator.Alloc(1, 1)
	require.ErrorIs(t, err, memutils.ErrOutOfMemory)

	allocator.Init(regionStart, regionSize)
	addr, err := allocator.Alloc(1, 1)
	require.NoError(t, err)
	require.Equal(t, regionStart, addr)
}

func TestNewRejectsBadArguments(t *testing.T) {
	_, err := bootmem.New(nil, early.New[early.Page4K](), bootmem.CreateOptions{})
	require.Error(t, err)

	_, err = bootmem.New(discardLogger(), nil, bootmem.CreateOptions{})
	require.Error(t, err)

	_, err = bootmem.New(discardLogger(), early.New[early.Page4K](), bootmem.CreateOptions{
		Start: ^uintptr(0) - 4095,
		Size:  8192,
	})
	require.Error(t, err)
}

func TestUnsupportedOperations(t *testing.T) {
	allocator := readyAllocator(t, 0)

	base, err := allocator.AllocPages(1, 0)
	require.NoError(t, err)

	err = allocator.AddMemory(0x400000, regionSize)
	require.ErrorIs(t, err, memutils.ErrUnsupported)

	err = allocator.DeallocPages(base, 1)
	require.ErrorIs(t, err, memutils.ErrUnsupported)

	require.Equal(t, uintptr(1), allocator.UsedPages())
	require.Equal(t, regionSize, allocator.TotalBytes())
}

func TestFailuresAreLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	mockAllocator := mock_memutils.NewMockEarlyAllocator(ctrl)
	mockAllocator.EXPECT().Init(regionStart, regionSize)
	mockAllocator.EXPECT().Alloc(uintptr(500), uintptr(8)).Return(uintptr(0), memutils.ErrOutOfMemory)
	mockAllocator.EXPECT().AvailableBytes().Return(uintptr(12))
	mockAllocator.EXPECT().AllocPages(uintptr(3), uintptr(0)).Return(uintptr(0x10e000), nil)

	allocator, err := bootmem.New(logger, mockAllocator, bootmem.CreateOptions{
		Start: regionStart,
		Size:  regionSize,
	})
	require.NoError(t, err)

	_, err = allocator.Alloc(500, 8)
	require.ErrorIs(t, err, memutils.ErrOutOfMemory)

	base, err := allocator.AllocPages(3, 0)
	require.NoError(t, err)
	require.Equal(t, uintptr(0x10e000), base)

	output := logs.String()
	require.Contains(t, output, "Allocator::New")
	require.Contains(t, output, "Allocator::Alloc")
	require.Contains(t, output, "byte allocation failed")
	require.Contains(t, output, `"AvailableBytes":12`)
	require.Contains(t, output, "Allocator::AllocPages")
	require.NotContains(t, output, "page allocation failed")
}

func TestStatisticsRequireReporter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	allocator, err := bootmem.New(discardLogger(), mock_memutils.NewMockEarlyAllocator(ctrl), bootmem.CreateOptions{})
	require.NoError(t, err)

	_, err = allocator.CalculateStatistics()
	require.ErrorIs(t, err, memutils.ErrUnsupported)

	_, err = allocator.BuildStatsString()
	require.ErrorIs(t, err, memutils.ErrUnsupported)

	err = allocator.Validate()
	require.ErrorIs(t, err, memutils.ErrUnsupported)
}

type reportingAllocator struct {
	*mock_memutils.MockEarlyAllocator
	*mock_memutils.MockStatisticsReporter
}

func TestStatisticsDelegateToReporter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reporter := mock_memutils.NewMockStatisticsReporter(ctrl)
	reporter.EXPECT().Validate().Return(memutils.ErrCounterUnderflow)
	reporter.EXPECT().AddDetailedStatistics(gomock.Any()).Do(func(stats *memutils.DetailedStatistics) {
		stats.RegionCount++
		stats.LiveBytes += 100
		stats.ReservedBytes += 128
	})

	allocator, err := bootmem.New(discardLogger(), reportingAllocator{
		MockEarlyAllocator:     mock_memutils.NewMockEarlyAllocator(ctrl),
		MockStatisticsReporter: reporter,
	}, bootmem.CreateOptions{})
	require.NoError(t, err)

	err = allocator.Validate()
	require.ErrorIs(t, err, memutils.ErrCounterUnderflow)

	stats, err := allocator.CalculateStatistics()
	require.NoError(t, err)
	require.Equal(t, 1, stats.RegionCount)
	require.Equal(t, uintptr(100), stats.LiveBytes)
	require.Equal(t, uintptr(128), stats.ReservedBytes)
	require.Zero(t, stats.UnusedRangeCount)
}

func TestTrackAllocations(t *testing.T) {
	allocator := readyAllocator(t, bootmem.CreateTrackAllocations)

	first, err := allocator.Alloc(64, 8)
	require.NoError(t, err)
	second, err := allocator.Alloc(32, 8)
	require.NoError(t, err)

	live, err := allocator.LiveAllocations()
	require.NoError(t, err)
	require.Equal(t, 2, live)

	err = allocator.Dealloc(first, 63, 8)
	require.ErrorIs(t, err, memutils.ErrUnknownAllocation)
	err = allocator.Dealloc(first+8, 64, 8)
	require.ErrorIs(t, err, memutils.ErrUnknownAllocation)
	require.Equal(t, uintptr(96), allocator.UsedBytes())

	require.NoError(t, allocator.Dealloc(first, 64, 8))
	require.NoError(t, allocator.Dealloc(second, 32, 8))
	require.Equal(t, uintptr(0), allocator.UsedBytes())

	err = allocator.Dealloc(second, 32, 8)
	require.ErrorIs(t, err, memutils.ErrUnknownAllocation)

	// Init starts tracking from scratch
	_, err = allocator.Alloc(16, 1)
	require.NoError(t, err)
	allocator.Init(regionStart, regionSize)
	live, err = allocator.LiveAllocations()
	require.NoError(t, err)
	require.Equal(t, 0, live)
}

func TestLiveAllocationsRequiresTracking(t *testing.T) {
	allocator := readyAllocator(t, 0)

	_, err := allocator.LiveAllocations()
	require.ErrorIs(t, err, memutils.ErrUnsupported)
}

func TestDeallocUnderflowReleasesLock(t *testing.T) {
	allocator := readyAllocator(t, 0)

	addr, err := allocator.Alloc(10, 1)
	require.NoError(t, err)

	require.Panics(t, func() {
		_ = allocator.Dealloc(addr, 11, 1)
	})

	// The mutex was released by the panicking call
	require.Equal(t, uintptr(10), allocator.UsedBytes())
	require.NoError(t, allocator.Dealloc(addr, 10, 1))
}

func TestConcurrentAllocations(t *testing.T) {
	allocator := readyAllocator(t, 0)

	const workers = 8
	const perWorker = 50

	type span struct {
		addr, size uintptr
	}

	var wg sync.WaitGroup
	results := make([][]span, workers)
	for worker := 0; worker < workers; worker++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()

			for i := 0; i < perWorker; i++ {
				size := uintptr(worker + i + 1)
				addr, err := allocator.Alloc(size, 1)
				if err != nil {
					return
				}
				results[worker] = append(results[worker], span{addr, size})
			}
		}(worker)
	}
	wg.Wait()

	var spans []span
	var total uintptr
	for _, workerSpans := range results {
		require.Len(t, workerSpans, perWorker)
		for _, s := range workerSpans {
			spans = append(spans, s)
			total += s.size
		}
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].addr < spans[j].addr })
	for i := 1; i < len(spans); i++ {
		require.True(t, spans[i-1].addr+spans[i-1].size <= spans[i].addr)
	}

	require.Equal(t, total, allocator.UsedBytes())
	require.NoError(t, allocator.Validate())
}

func TestBuildStatsString(t *testing.T) {
	allocator := readyAllocator(t, bootmem.CreateTrackAllocations)

	_, err := allocator.Alloc(100, 1)
	require.NoError(t, err)
	_, err = allocator.AllocPages(2, 0)
	require.NoError(t, err)

	stats, err := allocator.CalculateStatistics()
	require.NoError(t, err)
	require.Equal(t, uintptr(100), stats.LiveBytes)
	require.Equal(t, uintptr(2), stats.PageCount)
	require.Equal(t, uintptr(8192), stats.PageBytes)
	require.Equal(t, 1, stats.UnusedRangeCount)

	json, err := allocator.BuildStatsString()
	require.NoError(t, err)
	require.JSONEq(t, `{
		"Flags": "CreateTrackAllocations",
		"Total": {
			"LiveBytes": 100,
			"ReservedBytes": 100,
			"PageCount": 2,
			"PageBytes": 8192,
			"UnusedRanges": 1
		},
		"LiveAllocations": 1,
		"Region": {
			"Start": "0x100000",
			"End": "0x110000",
			"PageSize": 4096,
			"Bytes": {"Total": 65536, "Used": 100, "Reserved": 100, "Available": 57244},
			"Pages": {"Total": 16, "Used": 2, "Available": 13}
		}
	}`, json)
}

func TestCreateFlagsString(t *testing.T) {
	require.Equal(t, "None", bootmem.CreateFlags(0).String())
	require.Equal(t, "CreateExternallySynchronized", bootmem.CreateExternallySynchronized.String())
	require.Equal(t, "CreateExternallySynchronized|CreateTrackAllocations",
		(bootmem.CreateExternallySynchronized | bootmem.CreateTrackAllocations).String())
	require.Equal(t, "CreateTrackAllocations|CreateFlags(0x8)", (bootmem.CreateTrackAllocations | 8).String())
}
