package model

import "github.com/secmon-lab/bugtrail/pkg/domain/types"

// BugStats holds aggregate counts over all bug reports
type BugStats struct {
	TotalBugs            int                     `json:"total_bugs"`
	OpenBugs             int                     `json:"open_bugs"`
	ClosedBugs           int                     `json:"closed_bugs"`
	SeverityDistribution map[types.Severity]int  `json:"severity_distribution"`
	StatusDistribution   map[types.BugStatus]int `json:"status_distribution"`
	MostCommonSeverity   types.Severity          `json:"most_common_severity"`
}

// ComputeBugStats counts bugs per severity and status. Every known severity and
// status appears in the distributions, with zero when no bug has it.
func ComputeBugStats(bugs []*BugReport) *BugStats {
	stats := &BugStats{
		TotalBugs:            len(bugs),
		SeverityDistribution: make(map[types.Severity]int),
		StatusDistribution:   make(map[types.BugStatus]int),
		MostCommonSeverity:   types.DefaultSeverity,
	}
	for _, s := range types.Severities() {
		stats.SeverityDistribution[s] = 0
	}
	for _, s := range types.BugStatuses() {
		stats.StatusDistribution[s] = 0
	}

	for _, bug := range bugs {
		if bug.Status.IsActive() {
			stats.OpenBugs++
		}
		if bug.Status.IsDone() {
			stats.ClosedBugs++
		}
		if _, ok := stats.SeverityDistribution[bug.Severity]; ok {
			stats.SeverityDistribution[bug.Severity]++
		}
		if _, ok := stats.StatusDistribution[bug.Status]; ok {
			stats.StatusDistribution[bug.Status]++
		}
	}

	if len(bugs) > 0 {
		// Ties resolve to the least severe level because it is checked first
		best := -1
		for _, s := range types.Severities() {
			if n := stats.SeverityDistribution[s]; n > best {
				best = n
				stats.MostCommonSeverity = s
			}
		}
	}

	return stats
}
