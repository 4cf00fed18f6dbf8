package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"talent-scout/internal/domain/job"
	"talent-scout/internal/domain/match"
	"talent-scout/internal/repository"
)

const matchCacheTTL = 5 * time.Minute

// Pagination is echoed back with every match result. TotalItems counts
// the scored candidate pool before the top cutoff is applied.
type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}

type JobMatchResult struct {
	Jobs       []match.JobResult `json:"jobs"`
	Pagination Pagination        `json:"pagination"`
}

type JobMatchUsecase interface {
	MatchJobs(ctx context.Context, c job.SearchCriteria, page, limit int) (JobMatchResult, error)
}

type JobMatch struct {
	jobs   repository.JobRepository
	cache  SearchCache
	logger *log.Logger
}

func NewJobMatchUsecase(jobs repository.JobRepository, cache SearchCache, logger *log.Logger) *JobMatch {
	if logger == nil {
		logger = log.Default()
	}
	return &JobMatch{jobs: jobs, cache: cache, logger: logger}
}

// MatchJobs scores the active candidate pool against the criteria and
// returns the fixed top slice, highest score first. page and limit feed
// the pagination echo only; the cutoff itself never moves.
func (u *JobMatch) MatchJobs(ctx context.Context, c job.SearchCriteria, page, limit int) (JobMatchResult, error) {
	c.Designation = strings.TrimSpace(c.Designation)
	c.Location = strings.TrimSpace(c.Location)
	if c.Designation == "" || c.Location == "" {
		return JobMatchResult{}, ErrInvalidInput
	}
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = match.TopN
	}

	cacheKey := JobMatchCacheKey(c)
	if u.cache != nil {
		var cached JobMatchResult
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			u.logger.Printf("[Match] cache HIT: %s", cacheKey)
			cached.Pagination.CurrentPage = page
			cached.Pagination.ItemsPerPage = limit
			return cached, nil
		}
	}

	// The city filter takes the full location string; the store matches
	// it against loc_city by case-insensitive substring.
	pool, err := u.jobs.SearchActive(ctx, repository.JobSearchFilter{
		Designation: c.Designation,
		City:        c.Location,
	})
	if err != nil {
		u.logger.Printf("[Match] job pool query: %v", err)
		return JobMatchResult{}, ErrInternal
	}

	ranked := match.RankJobs(pool, c)
	res := JobMatchResult{
		Jobs: ranked,
		Pagination: Pagination{
			CurrentPage:  page,
			TotalItems:   len(pool),
			ItemsPerPage: limit,
		},
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, cacheKey, res, matchCacheTTL); err != nil {
			u.logger.Printf("[Match] cache store: %v", err)
		}
	}
	return res, nil
}
