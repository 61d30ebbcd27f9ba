package early

import (
	cerrors "github.com/cockroachdb/errors"
	"github.com/pkg/errors"
	"github.com/vkngwrapper/earlyalloc/memutils"
)

// Allocator is a bump allocator meant to be used during bring-up, before the real byte and page
// allocators are running. It manages a single memory range and serves it from both ends:
//
//	[ bytes-used | available | pages-used ]
//	|            | -->   <-- |            |
//	start    freeStart    freeEnd        end
//
// Byte allocations grow upward from start. Only the number of live bytes is recorded, so
// individual spans are never reused. Once every byte allocation has been deallocated the whole
// byte front is reclaimed at once.
//
// Page allocations grow downward from end and are never freed.
//
// The Allocator never reads or writes the memory it manages, it only computes addresses. It is
// not safe for concurrent use; see the bootmem package for a synchronized handle.
type Allocator[P PageSize] struct {
	start uintptr
	end   uintptr

	freeStart      uintptr
	freeEnd        uintptr
	allocatedBytes uintptr
}

var _ memutils.EarlyAllocator = &Allocator[Page4K]{}
var _ memutils.StatisticsReporter = &Allocator[Page4K]{}

// New creates an uninitialized Allocator. Init must be called before any allocation can succeed.
// The zero value of Allocator is equivalent.
func New[P PageSize]() *Allocator[P] {
	return &Allocator[P]{}
}

// PageSize returns the size in bytes of a page, as fixed by P. P's size must be a nonzero power of
// two; PageSize panics otherwise, and so does every method that depends on it.
func (a *Allocator[P]) PageSize() uintptr {
	var pageSize P
	size := pageSize.Size()
	err := memutils.CheckPow2(size, "page size")
	if err != nil {
		panic(err)
	}
	return size
}

// Start returns the lowest address of the managed range
func (a *Allocator[P]) Start() uintptr { return a.start }

// End returns the address one past the highest address of the managed range
func (a *Allocator[P]) End() uintptr { return a.end }

// Init sets the allocator up to manage [start, start+size), discarding anything allocated before.
// It panics if the range wraps around the address space or if P's size is not a power of two.
func (a *Allocator[P]) Init(start, size uintptr) {
	a.PageSize()

	end := start + size
	if end < start {
		panic(cerrors.AssertionFailedf("memory range at %#x with size %d wraps around the address space", start, size))
	}

	a.start = start
	a.end = end
	a.freeStart = start
	a.freeEnd = end
	a.allocatedBytes = 0
}

// AddMemory always fails: the allocator serves exactly one contiguous range. The returned error
// wraps memutils.ErrUnsupported and callers should treat it as fatal.
func (a *Allocator[P]) AddMemory(start, size uintptr) error {
	return cerrors.Wrapf(memutils.ErrUnsupported, "cannot add range at %#x with size %d: the early allocator manages a single range", start, size)
}

// Alloc returns the address of size bytes aligned to align. An align of 0 is treated as 1. Any
// padding needed to reach the alignment is taken from the byte front and counts against capacity,
// but not against UsedBytes.
func (a *Allocator[P]) Alloc(size, align uintptr) (uintptr, error) {
	if size == 0 {
		return 0, memutils.ErrInvalidSize
	}
	if align == 0 {
		align = 1
	}
	err := memutils.CheckPow2(align, "alignment")
	if err != nil {
		return 0, err
	}
	memutils.DebugValidate(a)

	addr := memutils.AlignUp(a.freeStart, align)
	if addr < a.freeStart || addr > a.freeEnd || size > a.freeEnd-addr {
		return 0, cerrors.Wrapf(memutils.ErrOutOfMemory, "requested %d bytes with alignment %d, but only %d bytes are available", size, align, a.AvailableBytes())
	}

	a.freeStart = addr + size
	a.allocatedBytes += size
	return addr, nil
}

// Dealloc subtracts size from the live byte count. addr and align are not checked. When the live
// byte count reaches zero the byte front is reset to Start.
//
// Deallocating more bytes than are live is a caller error and panics with an assertion failure
// wrapping memutils.ErrCounterUnderflow.
func (a *Allocator[P]) Dealloc(addr, size, align uintptr) {
	memutils.DebugValidate(a)

	if size > a.allocatedBytes {
		panic(cerrors.WithAssertionFailure(
			cerrors.Wrapf(memutils.ErrCounterUnderflow, "deallocating %d bytes at %#x, but only %d bytes are live", size, addr, a.allocatedBytes),
		))
	}

	a.allocatedBytes -= size
	if a.allocatedBytes == 0 {
		a.freeStart = a.start
	}
}

// TotalBytes returns the size of the whole range, regardless of how much the page front has taken
func (a *Allocator[P]) TotalBytes() uintptr {
	return a.end - a.start
}

// UsedBytes returns the number of bytes in live byte allocations
func (a *Allocator[P]) UsedBytes() uintptr {
	return a.allocatedBytes
}

// AvailableBytes returns the size of the gap between the two fronts
func (a *Allocator[P]) AvailableBytes() uintptr {
	return a.freeEnd - a.freeStart
}

// AllocPages returns the base address of count contiguous pages. An align of 0, or any alignment up
// to the page size, yields page granularity. Larger alignments slide the run down to the requested
// boundary and the pages skipped over are counted as used; this needs End to be page-aligned and
// returns an error wrapping memutils.ErrUnsupported otherwise.
func (a *Allocator[P]) AllocPages(count, align uintptr) (uintptr, error) {
	pageSize := a.PageSize()

	if count == 0 {
		return 0, memutils.ErrInvalidSize
	}
	if align != 0 {
		err := memutils.CheckPow2(align, "alignment")
		if err != nil {
			return 0, err
		}
	}
	memutils.DebugValidate(a)

	available := a.AvailablePages()
	if count > available {
		return 0, cerrors.Wrapf(memutils.ErrOutOfMemory, "requested %d pages, but only %d pages are available", count, available)
	}

	base := a.freeEnd - count*pageSize
	if align > pageSize {
		if !memutils.IsAligned(a.end, pageSize) {
			return 0, cerrors.Wrapf(memutils.ErrUnsupported, "alignment %d is larger than the page size, but the region end %#x is not page-aligned", align, a.end)
		}

		base = memutils.AlignDown(base, align)
		if base < a.freeStart {
			return 0, cerrors.Wrapf(memutils.ErrOutOfMemory, "requested %d pages with alignment %d, but only %d pages are available", count, align, available)
		}
	}

	a.freeEnd = base
	return base, nil
}

// DeallocPages always fails: pages handed out by the early allocator are owned forever. The
// returned error wraps memutils.ErrUnsupported and callers should treat it as fatal.
func (a *Allocator[P]) DeallocPages(addr, count uintptr) error {
	return cerrors.Wrapf(memutils.ErrUnsupported, "cannot free %d pages at %#x: early allocator pages are never freed", count, addr)
}

// TotalPages returns the number of whole pages in the range
func (a *Allocator[P]) TotalPages() uintptr {
	return (a.end - a.start) / a.PageSize()
}

// UsedPages returns the number of pages taken by the page front
func (a *Allocator[P]) UsedPages() uintptr {
	return (a.end - a.freeEnd) / a.PageSize()
}

// AvailablePages returns the number of whole pages in the gap between the two fronts
func (a *Allocator[P]) AvailablePages() uintptr {
	return (a.freeEnd - a.freeStart) / a.PageSize()
}

// Validate checks the cursor invariants. A correctly used Allocator never returns an error here.
func (a *Allocator[P]) Validate() error {
	if a.freeStart < a.start {
		return errors.Errorf("the byte front %#x is below the region start %#x", a.freeStart, a.start)
	}

	if a.freeEnd < a.freeStart {
		return errors.Errorf("the page front %#x has crossed the byte front %#x", a.freeEnd, a.freeStart)
	}

	if a.end < a.freeEnd {
		return errors.Errorf("the page front %#x is above the region end %#x", a.freeEnd, a.end)
	}

	if a.allocatedBytes > a.freeStart-a.start {
		return errors.Errorf("%d bytes are live, but the byte front only spans %d bytes", a.allocatedBytes, a.freeStart-a.start)
	}

	if a.allocatedBytes == 0 && a.freeStart != a.start {
		return errors.Errorf("no bytes are live, but the byte front %#x was not reset to the region start %#x", a.freeStart, a.start)
	}

	pageSize := a.PageSize()
	if (a.end-a.freeEnd)%pageSize != 0 {
		return errors.Errorf("the page front spans %d bytes, which is not a multiple of the page size %d", a.end-a.freeEnd, pageSize)
	}

	return nil
}
