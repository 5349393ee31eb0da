package service

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/urbancare/urbancare-api/internal/entity"
	issuerepo "github.com/urbancare/urbancare-api/internal/modules/issue/repository"
	"github.com/urbancare/urbancare-api/internal/modules/stat/dto"
)

const statsCacheKey = "stats:overview"

type StatService interface {
	GetOverview(ctx context.Context) (*dto.StatsOverview, error)
}

type statService struct {
	issues   issuerepo.IssueRepository
	redis    *redis.Client
	cacheTTL time.Duration
}

// NewStatService builds the overview service. The redis client may be nil,
// in which case every call recomputes from the database.
func NewStatService(issues issuerepo.IssueRepository, redisClient *redis.Client, cacheTTL time.Duration) StatService {
	return &statService{
		issues:   issues,
		redis:    redisClient,
		cacheTTL: cacheTTL,
	}
}

func (s *statService) GetOverview(ctx context.Context) (*dto.StatsOverview, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	overview, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	s.toCache(ctx, overview)
	return overview, nil
}

func (s *statService) compute(ctx context.Context) (*dto.StatsOverview, error) {
	total, err := s.issues.Count(ctx)
	if err != nil {
		return nil, err
	}

	overview := &dto.StatsOverview{Total: total}

	grouped := []struct {
		column string
		target *map[string]int64
	}{
		{"status", &overview.ByStatus},
		{"priority", &overview.ByPriority},
		{"category", &overview.ByCategory},
		{"department", &overview.ByDepartment},
	}

	for _, g := range grouped {
		rows, err := s.issues.CountGroupedBy(ctx, g.column)
		if err != nil {
			return nil, err
		}
		counts := make(map[string]int64, len(rows))
		for _, row := range rows {
			counts[row.Name] = row.Count
		}
		*g.target = counts
	}

	if total > 0 {
		resolved := overview.ByStatus[string(entity.StatusResolved)]
		overview.ResolutionRate = round2(float64(resolved) / float64(total) * 100)
	}

	avgDays, err := s.issues.AvgResolutionDays(ctx)
	if err != nil {
		return nil, err
	}
	overview.AvgResolutionDays = round2(avgDays)

	return overview, nil
}

func (s *statService) fromCache(ctx context.Context) *dto.StatsOverview {
	if s.redis == nil || s.cacheTTL <= 0 {
		return nil
	}

	raw, err := s.redis.Get(ctx, statsCacheKey).Bytes()
	if err != nil {
		return nil
	}

	var overview dto.StatsOverview
	if err := json.Unmarshal(raw, &overview); err != nil {
		return nil
	}
	return &overview
}

func (s *statService) toCache(ctx context.Context, overview *dto.StatsOverview) {
	if s.redis == nil || s.cacheTTL <= 0 {
		return
	}

	raw, err := json.Marshal(overview)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, statsCacheKey, raw, s.cacheTTL).Err(); err != nil {
		log.Printf("failed to cache stats overview: %v", err)
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
