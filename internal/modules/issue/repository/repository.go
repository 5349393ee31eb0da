package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/urbancare/urbancare-api/internal/entity"
	"github.com/urbancare/urbancare-api/internal/modules/issue/dto"
)

type GroupCount struct {
	Name  string `gorm:"column:name"`
	Count int64  `gorm:"column:count"`
}

type IssueRepository interface {
	Create(ctx context.Context, issue *entity.Issue) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Issue, error)
	FindAll(ctx context.Context, filter dto.ListFilter) ([]*entity.Issue, error)
	Save(ctx context.Context, issue *entity.Issue) error

	AppendUpdate(ctx context.Context, update *entity.IssueUpdate) error
	FindUpdates(ctx context.Context, issueID uuid.UUID) ([]*entity.IssueUpdate, error)

	Count(ctx context.Context) (int64, error)
	CountGroupedBy(ctx context.Context, column string) ([]GroupCount, error)
	AvgResolutionDays(ctx context.Context) (float64, error)
}

type issueRepository struct {
	db *gorm.DB
}

func NewIssueRepository(db *gorm.DB) IssueRepository {
	return &issueRepository{db: db}
}

func (r *issueRepository) Create(ctx context.Context, issue *entity.Issue) error {
	return r.db.WithContext(ctx).Create(issue).Error
}

func (r *issueRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Issue, error) {
	var issue entity.Issue
	if err := r.db.WithContext(ctx).First(&issue, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &issue, nil
}

func (r *issueRepository) FindAll(ctx context.Context, filter dto.ListFilter) ([]*entity.Issue, error) {
	query := r.db.WithContext(ctx).Model(&entity.Issue{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"title ILIKE ? OR description ILIKE ? OR address ILIKE ?",
			pattern, pattern, pattern,
		)
	}
	if filter.Status != "" && filter.Status != "all" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" && filter.Priority != "all" {
		query = query.Where("priority = ?", filter.Priority)
	}
	if filter.Department != "" && filter.Department != "all" {
		query = query.Where("department = ?", filter.Department)
	}

	switch filter.Sort {
	case "oldest":
		query = query.Order("created_at ASC")
	case "urgent":
		// Priority rank first; newest-first within the same priority, which
		// matches a stable sort applied to the default "latest" ordering.
		query = query.Order(
			"CASE priority WHEN 'urgent' THEN 0 WHEN 'high' THEN 1 WHEN 'medium' THEN 2 ELSE 3 END ASC",
		).Order("created_at DESC")
	default:
		query = query.Order("created_at DESC")
	}

	var issues []*entity.Issue
	if err := query.Find(&issues).Error; err != nil {
		return nil, err
	}
	return issues, nil
}

func (r *issueRepository) Save(ctx context.Context, issue *entity.Issue) error {
	return r.db.WithContext(ctx).Save(issue).Error
}

func (r *issueRepository) AppendUpdate(ctx context.Context, update *entity.IssueUpdate) error {
	return r.db.WithContext(ctx).Create(update).Error
}

func (r *issueRepository) FindUpdates(ctx context.Context, issueID uuid.UUID) ([]*entity.IssueUpdate, error) {
	var updates []*entity.IssueUpdate
	if err := r.db.WithContext(ctx).
		Where("issue_id = ?", issueID).
		Order("created_at ASC").
		Find(&updates).Error; err != nil {
		return nil, err
	}
	return updates, nil
}

func (r *issueRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Issue{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// groupableColumns guards CountGroupedBy against arbitrary column injection;
// grouping only ever happens on these enum-ish columns.
var groupableColumns = map[string]bool{
	"status":     true,
	"priority":   true,
	"category":   true,
	"department": true,
}

func (r *issueRepository) CountGroupedBy(ctx context.Context, column string) ([]GroupCount, error) {
	if !groupableColumns[column] {
		return nil, fmt.Errorf("cannot group issues by column %q", column)
	}

	var rows []GroupCount
	if err := r.db.WithContext(ctx).
		Model(&entity.Issue{}).
		Select(column + " AS name, COUNT(*) AS count").
		Group(column).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *issueRepository) AvgResolutionDays(ctx context.Context) (float64, error) {
	var avg float64
	err := r.db.WithContext(ctx).
		Model(&entity.Issue{}).
		Select("COALESCE(AVG(EXTRACT(EPOCH FROM (resolved_at - created_at)) / 86400), 0)").
		Where("resolved_at IS NOT NULL").
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	return avg, nil
}
