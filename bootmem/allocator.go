package bootmem

import (
	cerrors "github.com/cockroachdb/errors"
	"github.com/vkngwrapper/earlyalloc/bootmem/internal/utils"
	"github.com/vkngwrapper/earlyalloc/memutils"
	"github.com/vkngwrapper/earlyalloc/memutils/early"
	"golang.org/x/exp/slog"
)

// Allocator is a synchronized, logged handle around an early allocator. The wrapped allocator
// must not be used directly while the Allocator is in use.
type Allocator struct {
	logger    *slog.Logger
	mutex     utils.OptionalMutex
	allocator memutils.EarlyAllocator
	tracker   *early.Tracker

	createFlags CreateFlags
}

// Init hands the wrapped allocator a new memory range, discarding all prior allocation state
func (a *Allocator) Init(start, size uintptr) {
	a.logger.Debug("Allocator::Init", slog.Uint64("Start", uint64(start)), slog.Uint64("Size", uint64(size)))

	a.mutex.Lock()
	defer a.mutex.Unlock()

	a.allocator.Init(start, size)
	a.resetTracker()
}

// AddMemory forwards to the wrapped allocator. Early allocators do not support more than one range,
// so this normally returns an error wrapping memutils.ErrUnsupported.
func (a *Allocator) AddMemory(start, size uintptr) error {
	a.logger.Debug("Allocator::AddMemory")

	a.mutex.Lock()
	defer a.mutex.Unlock()

	err := a.allocator.AddMemory(start, size)
	if err != nil {
		a.logger.Error("could not add memory", slog.Uint64("Start", uint64(start)), slog.Uint64("Size", uint64(size)), slog.Any("error", err))
	}
	return err
}

// Alloc allocates size bytes aligned to align from the byte front
func (a *Allocator) Alloc(size, align uintptr) (uintptr, error) {
	a.logger.Debug("Allocator::Alloc", slog.Uint64("Size", uint64(size)), slog.Uint64("Alignment", uint64(align)))

	a.mutex.Lock()
	defer a.mutex.Unlock()

	var addr uintptr
	var err error
	if a.tracker != nil {
		addr, err = a.tracker.Alloc(size, align)
	} else {
		addr, err = a.allocator.Alloc(size, align)
	}

	if err != nil {
		a.logger.Error("byte allocation failed",
			slog.Uint64("Size", uint64(size)),
			slog.Uint64("AvailableBytes", uint64(a.allocator.AvailableBytes())),
			slog.Any("error", err),
		)
		return 0, err
	}

	return addr, nil
}

// Dealloc returns a byte allocation. Without CreateTrackAllocations it always returns nil and a
// mismatched size is the caller's problem. With it, addresses and sizes that don't match a live
// allocation return an error wrapping memutils.ErrUnknownAllocation.
//
// Deallocating more bytes than are live panics, as it does on the wrapped allocator.
func (a *Allocator) Dealloc(addr, size, align uintptr) error {
	a.logger.Debug("Allocator::Dealloc", slog.Uint64("Address", uint64(addr)), slog.Uint64("Size", uint64(size)))

	a.mutex.Lock()
	defer a.mutex.Unlock()

	if a.tracker != nil {
		err := a.tracker.Dealloc(addr, size, align)
		if err != nil {
			a.logger.Error("rejected byte deallocation", slog.Any("error", err))
		}
		return err
	}

	a.allocator.Dealloc(addr, size, align)
	return nil
}

// AllocPages allocates count pages aligned to align from the page front
func (a *Allocator) AllocPages(count, align uintptr) (uintptr, error) {
	a.logger.Debug("Allocator::AllocPages", slog.Uint64("Count", uint64(count)), slog.Uint64("Alignment", uint64(align)))

	a.mutex.Lock()
	defer a.mutex.Unlock()

	base, err := a.allocator.AllocPages(count, align)
	if err != nil {
		a.logger.Error("page allocation failed",
			slog.Uint64("Count", uint64(count)),
			slog.Uint64("AvailablePages", uint64(a.allocator.AvailablePages())),
			slog.Any("error", err),
		)
		return 0, err
	}

	return base, nil
}

// DeallocPages forwards to the wrapped allocator. Early allocators never free pages, so this
// normally returns an error wrapping memutils.ErrUnsupported.
func (a *Allocator) DeallocPages(addr, count uintptr) error {
	a.logger.Debug("Allocator::DeallocPages")

	a.mutex.Lock()
	defer a.mutex.Unlock()

	err := a.allocator.DeallocPages(addr, count)
	if err != nil {
		a.logger.Error("could not free pages", slog.Uint64("Address", uint64(addr)), slog.Uint64("Count", uint64(count)), slog.Any("error", err))
	}
	return err
}

func (a *Allocator) PageSize() uintptr {
	return a.allocator.PageSize()
}

func (a *Allocator) TotalBytes() uintptr {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	return a.allocator.TotalBytes()
}

func (a *Allocator) UsedBytes() uintptr {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	return a.allocator.UsedBytes()
}

func (a *Allocator) AvailableBytes() uintptr {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	return a.allocator.AvailableBytes()
}

func (a *Allocator) TotalPages() uintptr {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	return a.allocator.TotalPages()
}

func (a *Allocator) UsedPages() uintptr {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	return a.allocator.UsedPages()
}

func (a *Allocator) AvailablePages() uintptr {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	return a.allocator.AvailablePages()
}

// LiveAllocations returns the number of byte allocations that have not been deallocated. It is
// only available when the Allocator was created with CreateTrackAllocations.
func (a *Allocator) LiveAllocations() (int, error) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	if a.tracker == nil {
		return 0, cerrors.Wrap(memutils.ErrUnsupported, "allocation tracking requires CreateTrackAllocations")
	}

	return a.tracker.Live(), nil
}
