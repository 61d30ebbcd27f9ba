package early

import (
	cerrors "github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/earlyalloc/memutils"
)

// Tracker wraps a ByteAllocator and remembers every live byte allocation by address. It turns the
// unchecked deallocation contract of Allocator into returned errors: deallocating an address that
// is not live, or with a size different from the one allocated, fails without touching the
// underlying allocator. It is a debugging aid for bring-up code.
type Tracker struct {
	allocator memutils.ByteAllocator
	live      *swiss.Map[uintptr, uintptr]
}

// NewTracker creates a Tracker around allocator. Allocations made on allocator before the Tracker
// was created are unknown to it.
func NewTracker(allocator memutils.ByteAllocator) *Tracker {
	return &Tracker{
		allocator: allocator,
		live:      swiss.NewMap[uintptr, uintptr](42),
	}
}

// Alloc allocates from the underlying allocator and records the result
func (t *Tracker) Alloc(size, align uintptr) (uintptr, error) {
	addr, err := t.allocator.Alloc(size, align)
	if err != nil {
		return 0, err
	}

	t.live.Put(addr, size)
	return addr, nil
}

// Dealloc forwards the deallocation to the underlying allocator if addr is a live allocation of
// exactly size bytes. Otherwise it returns an error wrapping memutils.ErrUnknownAllocation.
func (t *Tracker) Dealloc(addr, size, align uintptr) error {
	recordedSize, ok := t.live.Get(addr)
	if !ok {
		return cerrors.Wrapf(memutils.ErrUnknownAllocation, "no live allocation at %#x", addr)
	}
	if recordedSize != size {
		return cerrors.Wrapf(memutils.ErrUnknownAllocation, "the allocation at %#x is %d bytes, but %d bytes were deallocated", addr, recordedSize, size)
	}

	t.live.Delete(addr)
	t.allocator.Dealloc(addr, size, align)
	return nil
}

// Live returns the number of tracked allocations that have not been deallocated
func (t *Tracker) Live() int {
	return t.live.Count()
}

// Size returns the size of the live allocation at addr, if any
func (t *Tracker) Size(addr uintptr) (uintptr, bool) {
	return t.live.Get(addr)
}

// VisitLive calls handleAllocation for each live allocation, in no particular order, until it
// returns true
func (t *Tracker) VisitLive(handleAllocation func(addr, size uintptr) (stop bool)) {
	t.live.Iter(handleAllocation)
}
