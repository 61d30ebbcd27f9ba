package bootmem

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/earlyalloc/bootmem/internal/utils"
	"github.com/vkngwrapper/earlyalloc/memutils"
	"github.com/vkngwrapper/earlyalloc/memutils/early"
	"golang.org/x/exp/slog"
)

// CreateFlags indicate specific allocator behaviors to activate or deactivate
type CreateFlags uint32

const (
	// CreateExternallySynchronized ensures that the Allocator will not be synchronized internally.
	// The consumer must guarantee it is used from only one goroutine at a time or is synchronized
	// by some other mechanism.
	CreateExternallySynchronized CreateFlags = 1 << iota
	// CreateTrackAllocations records every live byte allocation so that Dealloc can reject
	// addresses and sizes that don't match a live allocation, instead of silently corrupting
	// the live byte count.
	CreateTrackAllocations
)

var createFlagsMapping = map[CreateFlags]string{
	CreateExternallySynchronized: "CreateExternallySynchronized",
	CreateTrackAllocations:       "CreateTrackAllocations",
}

func (f CreateFlags) String() string {
	if f == 0 {
		return "None"
	}

	var names []string
	for bit := CreateFlags(1); bit != 0; bit <<= 1 {
		if f&bit == 0 {
			continue
		}

		name, ok := createFlagsMapping[bit]
		if !ok {
			name = fmt.Sprintf("CreateFlags(%#x)", uint32(bit))
		}
		names = append(names, name)
	}

	return strings.Join(names, "|")
}

// CreateOptions contains optional settings when creating an Allocator
type CreateOptions struct {
	// Flags indicates specific allocator behaviors to activate or deactivate
	Flags CreateFlags

	// Start and Size, when Size is not 0, are passed to Init on the wrapped allocator during New.
	// Leave Size at 0 to call Init yourself later.
	Start uintptr
	Size  uintptr
}

// New creates a new Allocator around an early allocator
//
// logger - Receives a debug line for each call and an error line for each failed allocation
//
// allocator - The allocator that will serve requests, usually an *early.Allocator
//
// options - Optional parameters: it is valid to leave all the fields blank
func New(logger *slog.Logger, allocator memutils.EarlyAllocator, options CreateOptions) (*Allocator, error) {
	if logger == nil {
		return nil, errors.New("bootmem.New requires a logger")
	}
	if allocator == nil {
		return nil, errors.New("bootmem.New requires an allocator to wrap")
	}
	if options.Start+options.Size < options.Start {
		return nil, errors.Newf("bootmem.CreateOptions describes a range at %#x with size %d, which wraps around the address space", options.Start, options.Size)
	}

	a := &Allocator{
		logger:      logger,
		mutex:       utils.OptionalMutex{UseMutex: options.Flags&CreateExternallySynchronized == 0},
		allocator:   allocator,
		createFlags: options.Flags,
	}

	logger.Debug("Allocator::New",
		slog.String("Flags", options.Flags.String()),
		slog.Uint64("Start", uint64(options.Start)),
		slog.Uint64("Size", uint64(options.Size)),
	)

	if options.Size > 0 {
		allocator.Init(options.Start, options.Size)
	}
	a.resetTracker()

	return a, nil
}

func (a *Allocator) resetTracker() {
	if a.createFlags&CreateTrackAllocations != 0 {
		a.tracker = early.NewTracker(a.allocator)
	}
}
