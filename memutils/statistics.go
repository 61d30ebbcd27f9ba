package memutils

// Statistics sums the accounting of one or more allocator regions
type Statistics struct {
	// RegionCount is the number of regions that contributed to these statistics
	RegionCount int
	// RegionBytes is the combined size of those regions
	RegionBytes uintptr
	// LiveBytes is the number of bytes in byte allocations that have not been deallocated
	LiveBytes uintptr
	// PageCount is the number of pages handed out by page allocations
	PageCount uintptr
	// PageBytes is the number of bytes covered by PageCount
	PageBytes uintptr
}

func (s *Statistics) Clear() {
	s.RegionCount = 0
	s.RegionBytes = 0
	s.LiveBytes = 0
	s.PageCount = 0
	s.PageBytes = 0
}

func (s *Statistics) AddStatistics(other *Statistics) {
	s.RegionCount += other.RegionCount
	s.RegionBytes += other.RegionBytes
	s.LiveBytes += other.LiveBytes
	s.PageCount += other.PageCount
	s.PageBytes += other.PageBytes
}

// DetailedStatistics extends Statistics with information about how the regions are laid out
type DetailedStatistics struct {
	Statistics
	// ReservedBytes is the size of the byte front, including alignment padding and deallocated
	// spans that have not been reclaimed yet
	ReservedBytes      uintptr
	UnusedRangeCount   int
	UnusedRangeSizeMin uintptr
	UnusedRangeSizeMax uintptr
}

func (s *DetailedStatistics) Clear() {
	s.Statistics.Clear()
	s.ReservedBytes = 0
	s.UnusedRangeCount = 0
	s.UnusedRangeSizeMin = ^uintptr(0)
	s.UnusedRangeSizeMax = 0
}

func (s *DetailedStatistics) AddUnusedRange(size uintptr) {
	s.UnusedRangeCount++

	if size < s.UnusedRangeSizeMin {
		s.UnusedRangeSizeMin = size
	}

	if size > s.UnusedRangeSizeMax {
		s.UnusedRangeSizeMax = size
	}
}

func (s *DetailedStatistics) AddDetailedStatistics(other *DetailedStatistics) {
	s.Statistics.AddStatistics(&other.Statistics)
	s.ReservedBytes += other.ReservedBytes
	s.UnusedRangeCount += other.UnusedRangeCount

	if other.UnusedRangeSizeMin < s.UnusedRangeSizeMin {
		s.UnusedRangeSizeMin = other.UnusedRangeSizeMin
	}

	if other.UnusedRangeSizeMax > s.UnusedRangeSizeMax {
		s.UnusedRangeSizeMax = other.UnusedRangeSizeMax
	}
}
