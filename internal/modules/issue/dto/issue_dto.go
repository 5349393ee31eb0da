package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/urbancare/urbancare-api/internal/entity"
)

type Location struct {
	Address   string   `json:"address" binding:"required,max=255"`
	Latitude  *float64 `json:"lat,omitempty"`
	Longitude *float64 `json:"lng,omitempty"`
}

type CreateIssueRequest struct {
	Title       string     `json:"title" binding:"required,max=200"`
	Description string     `json:"description" binding:"required"`
	Category    string     `json:"category" binding:"required"`
	Location    Location   `json:"location" binding:"required"`
	Priority    string     `json:"priority,omitempty"`
	UserID      *uuid.UUID `json:"userId,omitempty"`
	Images      []string   `json:"images,omitempty"`
}

// UpdateIssueRequest carries the persisted partial-update path. Absent fields
// leave the stored value untouched.
type UpdateIssueRequest struct {
	Status     *string `json:"status,omitempty"`
	Priority   *string `json:"priority,omitempty"`
	Department *string `json:"department,omitempty"`
}

// ListFilter mirrors the dashboard's filter bar. Empty or "all" means no
// restriction on that dimension.
type ListFilter struct {
	Search     string `form:"search"`
	Status     string `form:"status"`
	Priority   string `form:"priority"`
	Department string `form:"department"`
	Sort       string `form:"sort"` // "latest" (default), "oldest", "urgent"
}

type AddUpdateRequest struct {
	Message    string `json:"message" binding:"required"`
	AuthorName string `json:"authorName" binding:"required,max=100"`
	AuthorRole string `json:"authorRole" binding:"required"`
}

type IssueResponse struct {
	ID          uuid.UUID            `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Location    Location             `json:"location"`
	Category    entity.IssueCategory `json:"category"`
	Priority    entity.IssuePriority `json:"priority"`
	Status      entity.IssueStatus   `json:"status"`
	Department  string               `json:"department"`
	UserID      *uuid.UUID           `json:"userId,omitempty"`
	Images      []string             `json:"images"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
	ResolvedAt  *time.Time           `json:"resolvedAt,omitempty"`
}

type IssueUpdateResponse struct {
	ID         uuid.UUID   `json:"id"`
	Message    string      `json:"message"`
	AuthorName string      `json:"authorName"`
	AuthorRole entity.Role `json:"authorRole"`
	CreatedAt  time.Time   `json:"createdAt"`
}

func NewIssueResponse(issue *entity.Issue) *IssueResponse {
	images := []string(issue.Images)
	if images == nil {
		images = []string{}
	}

	return &IssueResponse{
		ID:          issue.ID,
		Title:       issue.Title,
		Description: issue.Description,
		Location: Location{
			Address:   issue.Address,
			Latitude:  issue.Latitude,
			Longitude: issue.Longitude,
		},
		Category:   issue.Category,
		Priority:   issue.Priority,
		Status:     issue.Status,
		Department: issue.Department,
		UserID:     issue.UserID,
		Images:     images,
		CreatedAt:  issue.CreatedAt,
		UpdatedAt:  issue.UpdatedAt,
		ResolvedAt: issue.ResolvedAt,
	}
}

func NewIssueUpdateResponse(update *entity.IssueUpdate) *IssueUpdateResponse {
	return &IssueUpdateResponse{
		ID:         update.ID,
		Message:    update.Message,
		AuthorName: update.AuthorName,
		AuthorRole: update.AuthorRole,
		CreatedAt:  update.CreatedAt,
	}
}
