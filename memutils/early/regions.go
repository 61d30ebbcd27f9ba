package early

import (
	"fmt"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/earlyalloc/memutils"
)

// RegionKind identifies the three parts of an Allocator's range
type RegionKind uint32

const (
	// RegionBytes is the byte front: live byte allocations plus padding and deallocated spans
	// that have not been reclaimed yet
	RegionBytes RegionKind = iota
	// RegionFree is the gap between the two fronts
	RegionFree
	// RegionPages is the page front
	RegionPages
)

var regionKindMapping = map[RegionKind]string{
	RegionBytes: "Bytes",
	RegionFree:  "Free",
	RegionPages: "Pages",
}

func (k RegionKind) String() string {
	return regionKindMapping[k]
}

// VisitAllRegions calls handleRegion once for each non-empty region of the range, in address order.
// Iteration stops at the first error, which is returned.
func (a *Allocator[P]) VisitAllRegions(handleRegion func(kind RegionKind, addr, size uintptr) error) error {
	regions := [...]struct {
		kind     RegionKind
		from, to uintptr
	}{
		{RegionBytes, a.start, a.freeStart},
		{RegionFree, a.freeStart, a.freeEnd},
		{RegionPages, a.freeEnd, a.end},
	}

	for _, region := range regions {
		if region.to == region.from {
			continue
		}

		err := handleRegion(region.kind, region.from, region.to-region.from)
		if err != nil {
			return err
		}
	}

	return nil
}

// AddStatistics sums this allocator's accounting into stats
func (a *Allocator[P]) AddStatistics(stats *memutils.Statistics) {
	stats.RegionCount++
	stats.RegionBytes += a.TotalBytes()
	stats.LiveBytes += a.allocatedBytes
	stats.PageCount += a.UsedPages()
	stats.PageBytes += a.end - a.freeEnd
}

// AddDetailedStatistics sums this allocator's accounting and layout into stats
func (a *Allocator[P]) AddDetailedStatistics(stats *memutils.DetailedStatistics) {
	a.AddStatistics(&stats.Statistics)

	_ = a.VisitAllRegions(func(kind RegionKind, addr, size uintptr) error {
		switch kind {
		case RegionBytes:
			stats.ReservedBytes += size
		case RegionFree:
			stats.AddUnusedRange(size)
		}

		return nil
	})
}

// BlockJsonData populates a json object with information about this allocator
func (a *Allocator[P]) BlockJsonData(json jwriter.ObjectState) {
	json.Name("Start").String(fmt.Sprintf("%#x", a.start))
	json.Name("End").String(fmt.Sprintf("%#x", a.end))
	json.Name("PageSize").Int(int(a.PageSize()))

	bytesObj := json.Name("Bytes").Object()
	bytesObj.Name("Total").Int(int(a.TotalBytes()))
	bytesObj.Name("Used").Int(int(a.UsedBytes()))
	bytesObj.Name("Reserved").Int(int(a.freeStart - a.start))
	bytesObj.Name("Available").Int(int(a.AvailableBytes()))
	bytesObj.End()

	pagesObj := json.Name("Pages").Object()
	pagesObj.Name("Total").Int(int(a.TotalPages()))
	pagesObj.Name("Used").Int(int(a.UsedPages()))
	pagesObj.Name("Available").Int(int(a.AvailablePages()))
	pagesObj.End()
}
