package usecase

import (
	"context"
	"log"
	"strings"

	"talent-scout/internal/domain/match"
	"talent-scout/internal/domain/profile"
	"talent-scout/internal/repository"
)

type ProfileMatchResult struct {
	Profiles   []match.ProfileResult `json:"profiles"`
	Pagination Pagination            `json:"pagination"`
}

type ProfileMatchUsecase interface {
	MatchProfiles(ctx context.Context, c profile.SearchCriteria, page, limit int) (ProfileMatchResult, error)
}

type ProfileMatch struct {
	profiles repository.ProfileRepository
	cache    SearchCache
	logger   *log.Logger
}

func NewProfileMatchUsecase(profiles repository.ProfileRepository, cache SearchCache, logger *log.Logger) *ProfileMatch {
	if logger == nil {
		logger = log.Default()
	}
	return &ProfileMatch{profiles: profiles, cache: cache, logger: logger}
}

// MatchProfiles mirrors MatchJobs over the profile pool; the pool
// arrives ordered by completeness score so ties keep the stronger
// profile first.
func (u *ProfileMatch) MatchProfiles(ctx context.Context, c profile.SearchCriteria, page, limit int) (ProfileMatchResult, error) {
	c.Designation = strings.TrimSpace(c.Designation)
	c.Location = strings.TrimSpace(c.Location)
	c.Company = strings.TrimSpace(c.Company)
	if c.Designation == "" || c.Location == "" || c.Company == "" {
		return ProfileMatchResult{}, ErrInvalidInput
	}
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = match.TopN
	}

	cacheKey := ProfileMatchCacheKey(c)
	if u.cache != nil {
		var cached ProfileMatchResult
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			u.logger.Printf("[Match] cache HIT: %s", cacheKey)
			cached.Pagination.CurrentPage = page
			cached.Pagination.ItemsPerPage = limit
			return cached, nil
		}
	}

	pool, err := u.profiles.SearchActive(ctx, repository.ProfileSearchFilter{
		Designation: c.Designation,
		Company:     c.Company,
		City:        c.Location,
	})
	if err != nil {
		u.logger.Printf("[Match] profile pool query: %v", err)
		return ProfileMatchResult{}, ErrInternal
	}

	ranked := match.RankProfiles(pool, c)
	res := ProfileMatchResult{
		Profiles: ranked,
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
