package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/urbancare/urbancare-api/internal/entity"
	issuedto "github.com/urbancare/urbancare-api/internal/modules/issue/dto"
	"github.com/urbancare/urbancare-api/internal/modules/issue/repository"
)

type MockIssueRepository struct {
	mock.Mock
}

func (m *MockIssueRepository) Create(ctx context.Context, issue *entity.Issue) error {
	args := m.Called(ctx, issue)
	return args.Error(0)
}

func (m *MockIssueRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Issue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Issue), args.Error(1)
}

func (m *MockIssueRepository) FindAll(ctx context.Context, filter issuedto.ListFilter) ([]*entity.Issue, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Issue), args.Error(1)
}

func (m *MockIssueRepository) Save(ctx context.Context, issue *entity.Issue) error {
	args := m.Called(ctx, issue)
	return args.Error(0)
}

func (m *MockIssueRepository) AppendUpdate(ctx context.Context, update *entity.IssueUpdate) error {
	args := m.Called(ctx, update)
	return args.Error(0)
}

func (m *MockIssueRepository) FindUpdates(ctx context.Context, issueID uuid.UUID) ([]*entity.IssueUpdate, error) {
	args := m.Called(ctx, issueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.IssueUpdate), args.Error(1)
}

func (m *MockIssueRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockIssueRepository) CountGroupedBy(ctx context.Context, column string) ([]repository.GroupCount, error) {
	args := m.Called(ctx, column)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.GroupCount), args.Error(1)
}

func (m *MockIssueRepository) AvgResolutionDays(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func TestGetOverview(t *testing.T) {
	repo := new(MockIssueRepository)
	svc := NewStatService(repo, nil, 0)

	repo.On("Count", mock.Anything).Return(int64(8), nil)
	repo.On("CountGroupedBy", mock.Anything, "status").Return([]repository.GroupCount{
		{Name: "submitted", Count: 3},
		{Name: "in-progress", Count: 2},
		{Name: "resolved", Count: 3},
	}, nil)
	repo.On("CountGroupedBy", mock.Anything, "priority").Return([]repository.GroupCount{
		{Name: "medium", Count: 5},
		{Name: "urgent", Count: 3},
	}, nil)
	repo.On("CountGroupedBy", mock.Anything, "category").Return([]repository.GroupCount{
		{Name: "pothole", Count: 6},
		{Name: "trash", Count: 2},
	}, nil)
	repo.On("CountGroupedBy", mock.Anything, "department").Return([]repository.GroupCount{
		{Name: "Public Works", Count: 6},
		{Name: "Sanitation", Count: 2},
	}, nil)
	repo.On("AvgResolutionDays", mock.Anything).Return(2.3456, nil)

	overview, err := svc.GetOverview(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(8), overview.Total)
	assert.Equal(t, int64(3), overview.ByStatus["resolved"])
	assert.Equal(t, int64(3), overview.ByPriority["urgent"])
	assert.Equal(t, int64(6), overview.ByCategory["pothole"])
	assert.Equal(t, int64(2), overview.ByDepartment["Sanitation"])
	// 3 resolved out of 8, as a percentage rounded to two decimals.
	assert.Equal(t, 37.5, overview.ResolutionRate)
	assert.Equal(t, 2.35, overview.AvgResolutionDays)
}

func TestGetOverview_EmptyDatabase(t *testing.T) {
	repo := new(MockIssueRepository)
	svc := NewStatService(repo, nil, 0)

	repo.On("Count", mock.Anything).Return(int64(0), nil)
	repo.On("CountGroupedBy", mock.Anything, mock.Anything).Return([]repository.GroupCount{}, nil)
	repo.On("AvgResolutionDays", mock.Anything).Return(0.0, nil)

	overview, err := svc.GetOverview(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(0), overview.Total)
	assert.Zero(t, overview.ResolutionRate)
	assert.Zero(t, overview.AvgResolutionDays)
	assert.Empty(t, overview.ByStatus)
}
