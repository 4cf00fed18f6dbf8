package crawler

import (
	"context"
	"fmt"
	"log"
	"time"

	"talent-scout/internal/domain/geo"
	"talent-scout/internal/domain/job"
	"talent-scout/internal/ratelimit"
	"talent-scout/internal/repository"
)

// MatchCacheInvalidator drops cached match results after an ingest so
// freshly crawled records become visible before the cache TTL expires.
type MatchCacheInvalidator interface {
	DeleteByPattern(ctx context.Context, pattern string) error
}

// Cached match keys carry these prefixes; an ingest wipes the whole
// namespace rather than tracking which criteria a record affects.
const (
	jobMatchCachePattern     = "jobs:match:*"
	profileMatchCachePattern = "profiles:match:*"
)

// JobCrawler ingests job listings for a search query. One Run owns one
// session and one rate-limiter window; concurrent runs need their own
// crawler instance.
type JobCrawler struct {
	sessions SessionFactory
	jobs     repository.JobRepository
	runs     repository.CrawlRunRepository
	limiter  *ratelimit.Limiter
	cache    MatchCacheInvalidator
	logger   *log.Logger
	now      func() time.Time
}

func NewJobCrawler(sessions SessionFactory, jobs repository.JobRepository, runs repository.CrawlRunRepository, limiter *ratelimit.Limiter, cache MatchCacheInvalidator, logger *log.Logger) *JobCrawler {
	if limiter == nil {
		limiter = ratelimit.New(ratelimit.DefaultBudget, ratelimit.DefaultWindow)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &JobCrawler{
		sessions: sessions,
		jobs:     jobs,
		runs:     runs,
		limiter:  limiter,
		cache:    cache,
		logger:   logger,
		now:      time.Now,
	}
}

// Run crawls listings for query and upserts up to maxItems records.
// The first unrecoverable fetch or store error aborts the run after
// the session is released; records upserted before the failure stay.
func (c *JobCrawler) Run(ctx context.Context, query string, maxItems int) (processed int, err error) {
	if c.sessions == nil || c.jobs == nil {
		return 0, fmt.Errorf("job crawler not wired")
	}
	if maxItems <= 0 {
		maxItems = 50
	}

	sess, err := c.sessions.Acquire(ctx)
	if err != nil {
		return 0, fmt.Errorf("acquire session: %w", err)
	}
	defer sess.Release()

	runID := startRun(ctx, c.runs, "jobs", query, c.logger)
	defer func() {
		finishRun(c.runs, runID, err, processed, c.logger)
	}()

	if err = c.limiter.Admit(ctx); err != nil {
		return 0, err
	}

	raws, err := sess.FetchJobListings(ctx, query)
	if err != nil {
		logRun(ctx, c.runs, runID, "error", fmt.Sprintf("fetch listings %q: %v", query, err))
		return 0, fmt.Errorf("fetch listings: %w", err)
	}

	if len(raws) > maxItems {
		raws = raws[:maxItems]
	}

	for _, raw := range raws {
		if raw.SourceURL == "" {
			continue
		}
		rec := c.buildRecord(raw)
		if err = c.jobs.Upsert(ctx, rec); err != nil {
			logRun(ctx, c.runs, runID, "error", fmt.Sprintf("upsert %s: %v", rec.SourceURL, err))
			return processed, fmt.Errorf("upsert %s: %w", rec.SourceURL, err)
		}
		processed++
	}

	invalidateMatchCache(ctx, c.cache, jobMatchCachePattern, processed, c.logger)

	c.logger.Printf("[Crawler] jobs run done query=%q processed=%d", query, processed)
	return processed, nil
}

func (c *JobCrawler) buildRecord(raw RawJob) job.Record {
	location := CleanText(raw.Location)
	description := CleanText(raw.Description)

	return job.Record{
		SourceURL:       raw.SourceURL,
		Title:           CleanText(raw.Title),
		Company:         CleanText(raw.Company),
		Location:        location,
		LocationDetails: geo.Parse(location),
		Description:     description,
		EmploymentType:  job.ParseEmploymentType(raw.EmploymentType),
		Skills:          ExtractSkills(description),
		PostDate:        ParseDate(raw.PostDate),
		Status:          job.StatusActive,
		CrawlStatus: job.CrawlStatus{
			LastCrawled: c.now().UTC(),
			IsActive:    true,
		},
	}
}

