// Package scheduler wires up the cron job that periodically re-runs the
// job ingestion pipeline for a fixed search query.
package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"talent-scout/internal/crawler"
)

// Scheduler wraps robfig/cron and manages the recurring crawl loop.
type Scheduler struct {
	cron     *cron.Cron
	jobs     *crawler.JobCrawler
	query    string
	maxItems int
	spec     string
	logger   *log.Logger
}

// New creates a Scheduler firing on the given cron spec, e.g.
// "@every 6h" or "0 3 * * *".
func New(jobs *crawler.JobCrawler, query string, maxItems int, spec string, logger *log.Logger) *Scheduler {
	if logger == nil {
		logger = log.Default()
	}
	return &Scheduler{
		cron:     cron.New(cron.WithLogger(cron.DefaultLogger)),
		jobs:     jobs,
		query:    query,
		maxItems: maxItems,
		spec:     spec,
		logger:   logger,
	}
}

// Start registers the crawl and starts the scheduler. Also runs one
// crawl immediately so the store is populated without waiting for the
// first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.runCrawl(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	s.logger.Printf("[Scheduler] cron started spec=%s query=%q", s.spec, s.query)

	go s.runCrawl(ctx)

	return nil
}

// Stop shuts the scheduler down; in-flight crawls finish on their own.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.logger.Println("[Scheduler] cron stopped")
}

func (s *Scheduler) runCrawl(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	processed, err := s.jobs.Run(ctx, s.query, s.maxItems)
	if err != nil {
		s.logger.Printf("[Scheduler] crawl cycle error after %d records: %v", processed, err)
		return
	}
	s.logger.Printf("[Scheduler] crawl cycle complete processed=%d", processed)
}
