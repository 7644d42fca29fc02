// Package board holds the pure transforms behind the project and attendance
// views: partitioning, ordering and counting loaded tables. Nothing here
// touches storage.
package board

import (
	"slices"
	"sort"

	"github.com/manav03panchal/clubportal/internal/model"
)

// Partition splits projects into active (anything not Completed) ordered by
// due date ascending, and completed ordered by due date descending. Equal due
// dates keep their table order. Every row lands in exactly one partition.
func Partition(projects model.ProjectTable) (active, completed model.ProjectTable) {
	active = model.ProjectTable{}
	completed = model.ProjectTable{}
	for _, p := range projects {
		if p.Status.IsCompleted() {
			completed = append(completed, p)
		} else {
			active = append(active, p)
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		return active[i].DueDate.Before(active[j].DueDate)
	})
	sort.SliceStable(completed, func(i, j int) bool {
		return completed[i].DueDate.After(completed[j].DueDate)
	})
	return active, completed
}

// StatusCount is one bar of the status chart.
type StatusCount struct {
	Status model.Status `json:"status"`
	Count  int          `json:"count"`
}

// Counts returns the number of projects per status. Statuses with no
// projects are absent from the map.
func Counts(projects model.ProjectTable) map[model.Status]int {
	counts := make(map[model.Status]int)
	for _, p := range projects {
		counts[p.Status]++
	}
	return counts
}

// Summarize returns per-status counts for charting. The four known statuses
// come first in their canonical order, followed by any free-form labels
// sorted by name. Zero counts are omitted.
func Summarize(projects model.ProjectTable) []StatusCount {
	counts := Counts(projects)

	result := make([]StatusCount, 0, len(counts))
	for _, st := range model.Statuses {
		if n := counts[st]; n > 0 {
			result = append(result, StatusCount{Status: st, Count: n})
			delete(counts, st)
		}
	}

	var extra []model.Status
	for st := range counts {
		extra = append(extra, st)
	}
	slices.Sort(extra)
	for _, st := range extra {
		result = append(result, StatusCount{Status: st, Count: counts[st]})
	}
	return result
}
