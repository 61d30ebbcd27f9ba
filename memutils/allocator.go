package memutils

import "github.com/launchdarkly/go-jsonstream/v3/jwriter"

// BaseAllocator is the lifecycle shared by every allocator in this module
type BaseAllocator interface {
	// Init hands the allocator the memory range [start, start+size). Calling Init again discards all
	// prior allocation state.
	Init(start, size uintptr)
	// AddMemory hands the allocator an additional memory range. Allocators that only manage a single
	// range return an error wrapping ErrUnsupported.
	AddMemory(start, size uintptr) error
}

// ByteAllocator hands out byte-granular spans of memory
type ByteAllocator interface {
	// Alloc returns the address of a new span of size bytes aligned to align. It returns an error
	// wrapping ErrOutOfMemory if there is not enough room.
	Alloc(size, align uintptr) (uintptr, error)
	// Dealloc returns a span previously returned by Alloc
	Dealloc(addr, size, align uintptr)

	TotalBytes() uintptr
	UsedBytes() uintptr
	AvailableBytes() uintptr
}

// PageAllocator hands out runs of fixed-size pages
type PageAllocator interface {
	// PageSize is the size in bytes of a single page. It is always a power of two.
	PageSize() uintptr
	// AllocPages returns the base address of count contiguous pages aligned to align. It returns an
	// error wrapping ErrOutOfMemory if there is not enough room.
	AllocPages(count, align uintptr) (uintptr, error)
	// DeallocPages returns a run of pages previously returned by AllocPages
	DeallocPages(addr, count uintptr) error

	TotalPages() uintptr
	UsedPages() uintptr
	AvailablePages() uintptr
}

// EarlyAllocator serves both byte and page allocations from a single memory range
type EarlyAllocator interface {
	BaseAllocator
	ByteAllocator
	PageAllocator
}

// StatisticsReporter is implemented by allocators that can describe their layout for diagnostics
type StatisticsReporter interface {
	Validatable
	AddStatistics(stats *Statistics)
	AddDetailedStatistics(stats *DetailedStatistics)
	BlockJsonData(json jwriter.ObjectState)
}
