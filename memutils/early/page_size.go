package early

// PageSize fixes the page granularity of an Allocator at compile time. Implementations are
// zero-size marker types whose Size method returns a constant power of two. Allocators with
// different page sizes are different types.
type PageSize interface {
	Size() uintptr
}

// Page4K is a 4KiB page
type Page4K struct{}

func (Page4K) Size() uintptr { return 4 << 10 }

// Page16K is a 16KiB page
type Page16K struct{}

func (Page16K) Size() uintptr { return 16 << 10 }

// Page64K is a 64KiB page
type Page64K struct{}

func (Page64K) Size() uintptr { return 64 << 10 }

// Page2M is a 2MiB page
type Page2M struct{}

func (Page2M) Size() uintptr { return 2 << 20 }
