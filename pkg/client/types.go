package client

import "time"

// Wire types mirroring the API's JSON shapes.

type Profile struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
	Role   string `json:"role"`
}

type Location struct {
	Address   string   `json:"address"`
	Latitude  *float64 `json:"lat,omitempty"`
	Longitude *float64 `json:"lng,omitempty"`
}

type Issue struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    Location   `json:"location"`
	Category    string     `json:"category"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	Department  string     `json:"department"`
	UserID      *string    `json:"userId,omitempty"`
	Images      []string   `json:"images"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	ResolvedAt  *time.Time `json:"resolvedAt,omitempty"`
}

type IssueUpdate struct {
	ID         string    `json:"id"`
	Message    string    `json:"message"`
	AuthorName string    `json:"authorName"`
	AuthorRole string    `json:"authorRole"`
	CreatedAt  time.Time `json:"createdAt"`
}

type StatsOverview struct {
	Total             int64            `json:"total"`
	ByStatus          map[string]int64 `json:"byStatus"`
	ByPriority        map[string]int64 `json:"byPriority"`
	ByCategory        map[string]int64 `json:"byCategory"`
	ByDepartment      map[string]int64 `json:"byDepartment"`
	ResolutionRate    float64          `json:"resolutionRate"`
	AvgResolutionDays float64          `json:"avgResolutionDays"`
}

type CreateIssueInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Location    Location `json:"location"`
	Priority    string   `json:"priority,omitempty"`
	UserID      *string  `json:"userId,omitempty"`
	Images      []string `json:"images,omitempty"`
}

type UpdateIssueInput struct {
	Status     *string `json:"status,omitempty"`
	Priority   *string `json:"priority,omitempty"`
	Department *string `json:"department,omitempty"`
}

// Annotation is a client-local note on an issue (assignment or free-text
// comment). Annotations live in the client's memory only and are never sent
// to the server, matching the dashboard's behavior.
type Annotation struct {
	Message    string
	AuthorName string
	AuthorRole string
	CreatedAt  time.Time
}
