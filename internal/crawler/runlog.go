package crawler

import (
	"context"
	"log"
	"time"

	"talent-scout/internal/repository"

	"github.com/google/uuid"
)

// Run bookkeeping is best effort: a nil repo or a failing insert never
// affects the crawl itself.

func startRun(ctx context.Context, runs repository.CrawlRunRepository, kind, target string, logger *log.Logger) uuid.UUID {
	if runs == nil {
		return uuid.Nil
	}
	id, err := runs.Start(ctx, kind, target)
	if err != nil {
		logger.Printf("[Crawler] start run bookkeeping: %v", err)
		return uuid.Nil
	}
	return id
}

func finishRun(runs repository.CrawlRunRepository, runID uuid.UUID, runErr error, processed int, logger *log.Logger) {
	if runs == nil || runID == uuid.Nil {
		return
	}
	status := "finished"
	if runErr != nil {
		status = "failed"
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := runs.Finish(ctx, runID, status, processed); err != nil {
		logger.Printf("[Crawler] finish run bookkeeping: %v", err)
	}
}

func logRun(ctx context.Context, runs repository.CrawlRunRepository, runID uuid.UUID, level, message string) {
	if runs == nil || runID == uuid.Nil {
		return
	}
	_ = runs.Log(ctx, runID, level, message)
}

// invalidateMatchCache is best effort like the run bookkeeping: a
// missing or failing cache never fails the crawl.
func invalidateMatchCache(ctx context.Context, cache MatchCacheInvalidator, pattern string, processed int, logger *log.Logger) {
	if cache == nil || processed == 0 {
		return
	}
	if err := cache.DeleteByPattern(ctx, pattern); err != nil {
		logger.Printf("[Crawler] match cache invalidation %s: %v", pattern, err)
	}
}
