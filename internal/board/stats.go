package board

import (
	"sort"

	"github.com/manav03panchal/clubportal/internal/model"
)

// Stats is the sidebar summary shown on every page.
type Stats struct {
	Members           int `json:"members"`
	AttendanceLogs    int `json:"attendance_logs"`
	ActiveProjects    int `json:"active_projects"`
	CompletedProjects int `json:"completed_projects"`
}

// QuickStats counts distinct members, check-ins and projects by partition.
func QuickStats(attendance model.AttendanceTable, projects model.ProjectTable) Stats {
	members := make(map[string]struct{})
	for _, r := range attendance {
		members[r.Name] = struct{}{}
	}

	stats := Stats{
		Members:        len(members),
		AttendanceLogs: len(attendance),
	}
	for _, p := range projects {
		if p.Status.IsCompleted() {
			stats.CompletedProjects++
		} else {
			stats.ActiveProjects++
		}
	}
	return stats
}

// MemberCount is the number of check-ins recorded for one member.
type MemberCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// MemberCounts aggregates check-ins by member, most frequent first. Ties are
// ordered by name.
func MemberCounts(attendance model.AttendanceTable) []MemberCount {
	agg := make(map[string]int)
	for _, r := range attendance {
		agg[r.Name]++
	}

	result := make([]MemberCount, 0, len(agg))
	for name, n := range agg {
		result = append(result, MemberCount{Name: name, Count: n})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Name < result[j].Name
	})
	return result
}

// Recent returns the last n check-ins, newest first. A non-positive n returns
// them all.
func Recent(attendance model.AttendanceTable, n int) model.AttendanceTable {
	if n <= 0 || n > len(attendance) {
		n = len(attendance)
	}
	out := make(model.AttendanceTable, 0, n)
	for i := len(attendance) - 1; i >= len(attendance)-n; i-- {
		out = append(out, attendance[i])
	}
	return out
}
