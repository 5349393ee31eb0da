package client

import (
	"sort"
	"strings"
)

// FilterCriteria matches the dashboard filter bar: a free-text search plus
// exact-match dimensions where "all" (or empty) disables the dimension.
type FilterCriteria struct {
	Search     string
	Status     string
	Priority   string
	Department string
}

type SortOrder string

const (
	SortLatest SortOrder = "latest"
	SortOldest SortOrder = "oldest"
	SortUrgent SortOrder = "urgent"
)

var priorityRank = map[string]int{
	"urgent": 0,
	"high":   1,
	"medium": 2,
	"low":    3,
}

// FilterIssues returns the subset of issues matching the criteria. The search
// text matches case-insensitively against title, description and address; an
// empty search matches everything.
func FilterIssues(issues []Issue, criteria FilterCriteria) []Issue {
	search := strings.ToLower(criteria.Search)

	filtered := make([]Issue, 0, len(issues))
	for _, issue := range issues {
		if search != "" && !matchesSearch(issue, search) {
			continue
		}
		if !matchesDimension(issue.Status, criteria.Status) {
			continue
		}
		if !matchesDimension(issue.Priority, criteria.Priority) {
			continue
		}
		if !matchesDimension(issue.Department, criteria.Department) {
			continue
		}
		filtered = append(filtered, issue)
	}
	return filtered
}

func matchesSearch(issue Issue, search string) bool {
	return strings.Contains(strings.ToLower(issue.Title), search) ||
		strings.Contains(strings.ToLower(issue.Description), search) ||
		strings.Contains(strings.ToLower(issue.Location.Address), search)
}

func matchesDimension(value, filter string) bool {
	return filter == "" || filter == "all" || value == filter
}

// SortIssues returns a new slice ordered by the given ordering. All three
// orderings are stable: equal elements keep their relative input order.
func SortIssues(issues []Issue, order SortOrder) []Issue {
	sorted := make([]Issue, len(issues))
	copy(sorted, issues)

	switch order {
	case SortOldest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		})
	case SortUrgent:
		sort.SliceStable(sorted, func(i, j int) bool {
			return rankOf(sorted[i].Priority) < rankOf(sorted[j].Priority)
		})
	default: // SortLatest
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		})
	}

	return sorted
}

func rankOf(priority string) int {
	if rank, ok := priorityRank[priority]; ok {
		return rank
	}
	return len(priorityRank)
}
