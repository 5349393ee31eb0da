package dto

// StatsOverview feeds the central-admin analytics dashboard. All counts are
// computed over the live issue table at query time.
type StatsOverview struct {
	Total             int64            `json:"total"`
	ByStatus          map[string]int64 `json:"byStatus"`
	ByPriority        map[string]int64 `json:"byPriority"`
	ByCategory        map[string]int64 `json:"byCategory"`
	ByDepartment      map[string]int64 `json:"byDepartment"`
	ResolutionRate    float64          `json:"resolutionRate"`
	AvgResolutionDays float64          `json:"avgResolutionDays"`
}
