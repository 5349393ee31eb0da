package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/urbancare/urbancare-api/internal/entity"
	"github.com/urbancare/urbancare-api/internal/modules/issue/dto"
	"github.com/urbancare/urbancare-api/internal/modules/issue/repository"
	"github.com/urbancare/urbancare-api/pkg/apperror"
)

type IssueService interface {
	CreateIssue(ctx context.Context, req dto.CreateIssueRequest) (*dto.IssueResponse, error)
	GetIssue(ctx context.Context, id uuid.UUID) (*dto.IssueResponse, error)
	ListIssues(ctx context.Context, filter dto.ListFilter) ([]*dto.IssueResponse, error)
	UpdateIssue(ctx context.Context, id uuid.UUID, req dto.UpdateIssueRequest) (*dto.IssueResponse, error)
	AppendUpdate(ctx context.Context, issueID uuid.UUID, req dto.AddUpdateRequest) (*dto.IssueUpdateResponse, error)
	ListUpdates(ctx context.Context, issueID uuid.UUID) ([]*dto.IssueUpdateResponse, error)
}

type issueService struct {
	repo repository.IssueRepository
}

func NewIssueService(repo repository.IssueRepository) IssueService {
	return &issueService{repo: repo}
}

func (s *issueService) CreateIssue(ctx context.Context, req dto.CreateIssueRequest) (*dto.IssueResponse, error) {
	category := entity.IssueCategory(req.Category)
	if !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", apperror.ErrValidation, req.Category)
	}

	priority := entity.PriorityMedium
	if req.Priority != "" {
		priority = entity.IssuePriority(req.Priority)
		if !priority.Valid() {
			return nil, fmt.Errorf("%w: unknown priority %q", apperror.ErrValidation, req.Priority)
		}
	}

	issue := &entity.Issue{
		Title:       req.Title,
		Description: req.Description,
		Address:     req.Location.Address,
		Latitude:    req.Location.Latitude,
		Longitude:   req.Location.Longitude,
		Category:    category,
		Priority:    priority,
		Status:      entity.StatusSubmitted,
		Department:  entity.DepartmentFor(category),
		UserID:      req.UserID,
		Images:      req.Images,
	}

	if err := s.repo.Create(ctx, issue); err != nil {
		return nil, err
	}

	return dto.NewIssueResponse(issue), nil
}

func (s *issueService) GetIssue(ctx context.Context, id uuid.UUID) (*dto.IssueResponse, error) {
	issue, err := s.findIssue(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewIssueResponse(issue), nil
}

func (s *issueService) ListIssues(ctx context.Context, filter dto.ListFilter) ([]*dto.IssueResponse, error) {
	issues, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.IssueResponse, 0, len(issues))
	for _, issue := range issues {
		responses = append(responses, dto.NewIssueResponse(issue))
	}
	return responses, nil
}

// UpdateIssue applies a partial update. Status values only need to be members
// of the enum; moving backward through the lifecycle is allowed on purpose.
func (s *issueService) UpdateIssue(ctx context.Context, id uuid.UUID, req dto.UpdateIssueRequest) (*dto.IssueResponse, error) {
	issue, err := s.findIssue(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		status := entity.IssueStatus(*req.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", apperror.ErrValidation, *req.Status)
		}
		issue.Status = status

		if status == entity.StatusResolved {
			if issue.ResolvedAt == nil {
				now := time.Now()
				issue.ResolvedAt = &now
			}
		} else {
			issue.ResolvedAt = nil
		}
	}

	if req.Priority != nil {
		priority := entity.IssuePriority(*req.Priority)
		if !priority.Valid() {
			return nil, fmt.Errorf("%w: unknown priority %q", apperror.ErrValidation, *req.Priority)
		}
		issue.Priority = priority
	}

	if req.Department != nil {
		if *req.Department == "" {
			return nil, fmt.Errorf("%w: department cannot be empty", apperror.ErrValidation)
		}
		issue.Department = *req.Department
	}

	if err := s.repo.Save(ctx, issue); err != nil {
		return nil, err
	}

	return dto.NewIssueResponse(issue), nil
}

func (s *issueService) AppendUpdate(ctx context.Context, issueID uuid.UUID, req dto.AddUpdateRequest) (*dto.IssueUpdateResponse, error) {
	role := entity.Role(req.AuthorRole)
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", apperror.ErrValidation, req.AuthorRole)
	}

	if _, err := s.findIssue(ctx, issueID); err != nil {
		return nil, err
	}

	update := &entity.IssueUpdate{
		IssueID:    issueID,
		Message:    req.Message,
		AuthorName: req.AuthorName,
		AuthorRole: role,
	}

	if err := s.repo.AppendUpdate(ctx, update); err != nil {
		return nil, err
	}

	return dto.NewIssueUpdateResponse(update), nil
}

func (s *issueService) ListUpdates(ctx context.Context, issueID uuid.UUID) ([]*dto.IssueUpdateResponse, error) {
	if _, err := s.findIssue(ctx, issueID); err != nil {
		return nil, err
	}

	updates, err := s.repo.FindUpdates(ctx, issueID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.IssueUpdateResponse, 0, len(updates))
	for _, update := range updates {
		responses = append(responses, dto.NewIssueUpdateResponse(update))
	}
	return responses, nil
}

func (s *issueService) findIssue(ctx context.Context, id uuid.UUID) (*entity.Issue, error) {
	issue, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}
	return issue, nil
}
