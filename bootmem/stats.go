package bootmem

import (
	cerrors "github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/earlyalloc/memutils"
)

func (a *Allocator) reporter() (memutils.StatisticsReporter, error) {
	reporter, ok := a.allocator.(memutils.StatisticsReporter)
	if !ok {
		return nil, cerrors.Wrapf(memutils.ErrUnsupported, "%T does not report statistics", a.allocator)
	}

	return reporter, nil
}

// Validate runs the wrapped allocator's internal consistency checks
func (a *Allocator) Validate() error {
	a.logger.Debug("Allocator::Validate")

	a.mutex.Lock()
	defer a.mutex.Unlock()

	reporter, err := a.reporter()
	if err != nil {
		return err
	}

	return reporter.Validate()
}

// CalculateStatistics returns the wrapped allocator's accounting
func (a *Allocator) CalculateStatistics() (memutils.DetailedStatistics, error) {
	a.logger.Debug("Allocator::CalculateStatistics")

	a.mutex.Lock()
	defer a.mutex.Unlock()

	var stats memutils.DetailedStatistics
	stats.Clear()

	reporter, err := a.reporter()
	if err != nil {
		return stats, err
	}

	reporter.AddDetailedStatistics(&stats)
	return stats, nil
}

// BuildStatsString returns a json document describing the wrapped allocator
func (a *Allocator) BuildStatsString() (string, error) {
	a.logger.Debug("Allocator::BuildStatsString")

	a.mutex.Lock()
	defer a.mutex.Unlock()

	reporter, err := a.reporter()
	if err != nil {
		return "", err
	}

	var stats memutils.DetailedStatistics
	stats.Clear()
	reporter.AddDetailedStatistics(&stats)

	writer := jwriter.NewWriter()
	root := writer.Object()
	root.Name("Flags").String(a.createFlags.String())

	total := root.Name("Total").Object()
	total.Name("LiveBytes").Int(int(stats.LiveBytes))
	total.Name("ReservedBytes").Int(int(stats.ReservedBytes))
	total.Name("PageCount").Int(int(stats.PageCount))
	total.Name("PageBytes").Int(int(stats.PageBytes))
	total.Name("UnusedRanges").Int(stats.UnusedRangeCount)
	total.End()

	if a.tracker != nil {
		root.Name("LiveAllocations").Int(a.tracker.Live())
	}

	region := root.Name("Region").Object()
	reporter.BlockJsonData(region)
	region.End()

	root.End()

	if err := writer.Error(); err != nil {
		return "", err
	}

	return string(writer.Bytes()), nil
}
