package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type IssueCategory string

const (
	CategoryPothole     IssueCategory = "pothole"
	CategoryStreetlight IssueCategory = "streetlight"
	CategoryTrash       IssueCategory = "trash"
	CategoryGraffiti    IssueCategory = "graffiti"
	CategorySignage     IssueCategory = "signage"
	CategoryWater       IssueCategory = "water"
	CategorySidewalk    IssueCategory = "sidewalk"
	CategoryOther       IssueCategory = "other"
)

func (c IssueCategory) Valid() bool {
	switch c {
	case CategoryPothole, CategoryStreetlight, CategoryTrash, CategoryGraffiti,
		CategorySignage, CategoryWater, CategorySidewalk, CategoryOther:
		return true
	}
	return false
}

type IssuePriority string

const (
	PriorityLow    IssuePriority = "low"
	PriorityMedium IssuePriority = "medium"
	PriorityHigh   IssuePriority = "high"
	PriorityUrgent IssuePriority = "urgent"
)

func (p IssuePriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Rank orders priorities for the "urgent" sort: urgent < high < medium < low.
func (p IssuePriority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	}
	return 4
}

type IssueStatus string

const (
	StatusSubmitted    IssueStatus = "submitted"
	StatusAcknowledged IssueStatus = "acknowledged"
	StatusInProgress   IssueStatus = "in-progress"
	StatusResolved     IssueStatus = "resolved"
	StatusClosed       IssueStatus = "closed"
)

// Valid checks membership in the status enum only. Transitions between
// statuses are deliberately not restricted; updates may move an issue to any
// status in any order.
func (s IssueStatus) Valid() bool {
	switch s {
	case StatusSubmitted, StatusAcknowledged, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}

const DefaultDepartment = "General Services"

var departmentByCategory = map[IssueCategory]string{
	CategoryPothole:     "Public Works",
	CategorySignage:     "Public Works",
	CategoryWater:       "Public Works",
	CategorySidewalk:    "Public Works",
	CategoryStreetlight: "Electrical Services",
	CategoryTrash:       "Sanitation",
	CategoryGraffiti:    "Parks & Recreation",
	CategoryOther:       DefaultDepartment,
}

// DepartmentFor maps an issue category to the municipal department that owns
// it. Unrecognized categories route to General Services.
func DepartmentFor(category IssueCategory) string {
	if dept, ok := departmentByCategory[category]; ok {
		return dept
	}
	return DefaultDepartment
}

// Issue is a citizen-submitted problem report. Department is assigned from
// the category at creation and is not recomputed when the category changes.
type Issue struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string         `gorm:"size:200;not null" json:"title"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Address     string         `gorm:"size:255;not null" json:"-"`
	Latitude    *float64       `json:"-"`
	Longitude   *float64       `json:"-"`
	Category    IssueCategory  `gorm:"size:30;not null" json:"category"`
	Priority    IssuePriority  `gorm:"size:20;not null;default:'medium'" json:"priority"`
	Status      IssueStatus    `gorm:"size:20;not null;default:'submitted'" json:"status"`
	Department  string         `gorm:"size:50;not null" json:"department"`
	UserID      *uuid.UUID     `gorm:"type:uuid" json:"user_id,omitempty"`
	Images      pq.StringArray `gorm:"type:text[]" json:"images"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	ResolvedAt  *time.Time     `json:"resolved_at,omitempty"`
}

func (i *Issue) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// IssueUpdate is one entry in an issue's append-only staff log. Entries are
// never edited or removed once written.
type IssueUpdate struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	IssueID    uuid.UUID `gorm:"type:uuid;index;not null" json:"issue_id"`
	Message    string    `gorm:"type:text;not null" json:"message"`
	AuthorName string    `gorm:"size:100;not null" json:"author_name"`
	AuthorRole Role      `gorm:"size:20;not null" json:"author_role"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (u *IssueUpdate) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
