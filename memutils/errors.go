package memutils

import "github.com/cockroachdb/errors"

// PowerOfTwoError is the error returned from CheckPow2 or other methods if the number being tested is not a power of two
var PowerOfTwoError error = errors.New("number must be a power of two")

var (
	// ErrOutOfMemory is returned when the requested face of an allocator does not have enough capacity left
	// for the request. The allocator's state is unchanged when this error is returned.
	ErrOutOfMemory = errors.New("out of memory")
	// ErrUnsupported is returned for operations that an allocator deliberately does not implement, such as
	// adding a second memory range or freeing pages.
	ErrUnsupported = errors.New("operation not supported by this allocator")
	// ErrInvalidSize is returned when an allocation of zero bytes or zero pages is requested
	ErrInvalidSize = errors.New("allocation size must be greater than 0")
	// ErrCounterUnderflow is the cause of the panic raised when more bytes are deallocated than are live
	ErrCounterUnderflow = errors.New("live byte counter underflow")
	// ErrUnknownAllocation is returned by allocation trackers when a deallocation does not match a
	// live allocation
	ErrUnknownAllocation = errors.New("allocation not found")
)
