package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"talent-scout/internal/app"
	"talent-scout/internal/config"
	"talent-scout/internal/crawler"
	"talent-scout/internal/database/migration"
	"talent-scout/internal/ratelimit"
	"talent-scout/internal/scheduler"
)

func main() {
	mode := flag.String("mode", "jobs", "crawl mode: jobs or profile")
	query := flag.String("query", "", "job search query (jobs mode)")
	url := flag.String("url", "", "profile url (profile mode)")
	max := flag.Int("max", 0, "max listings per run, 0 uses CRAWL_MAX_ITEMS")
	cronSpec := flag.String("cron", "", "cron spec for recurring job crawls, e.g. @every 6h")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	c, err := app.NewContainer(cfg)
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()

	migCtx, migCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer migCancel()
	r := migration.Runner{Dir: "migrations"}
	if err := r.Run(migCtx, c.DB.SQLDB()); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	sessions := newSessionFactory(cfg, c.Logger)
	limiter := ratelimit.New(cfg.Crawl.RateBudget, cfg.Crawl.RateWindow)

	maxItems := *max
	if maxItems <= 0 {
		maxItems = cfg.Crawl.MaxItems
	}

	switch strings.TrimSpace(*mode) {
	case "jobs":
		q := strings.TrimSpace(*query)
		if q == "" {
			log.Fatalf("jobs mode needs -query")
		}
		jc := crawler.NewJobCrawler(sessions, c.Jobs, c.CrawlRuns, limiter, c.Cache, c.Logger)
		if spec := strings.TrimSpace(*cronSpec); spec != "" {
			runScheduled(jc, q, maxItems, spec, c.Logger)
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		processed, err := jc.Run(ctx, q, maxItems)
		if err != nil {
			log.Fatalf("jobs crawl failed after %d records: %v", processed, err)
		}
		log.Printf("jobs crawl done processed=%d", processed)

	case "profile":
		u := strings.TrimSpace(*url)
		if u == "" {
			log.Fatalf("profile mode needs -url")
		}
		pc := crawler.NewProfileCrawler(sessions, c.Profiles, c.CrawlRuns, limiter, c.Cache, c.Logger)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if err := pc.Run(ctx, u); err != nil {
			log.Fatalf("profile crawl failed: %v", err)
		}
		log.Printf("profile crawl done url=%s", u)

	default:
		log.Fatalf("unknown mode %q, want jobs or profile", *mode)
	}
}

func newSessionFactory(cfg config.Config, logger *log.Logger) crawler.SessionFactory {
	bc := crawler.BrowserConfig{
		ListBaseURL: cfg.Crawl.ListBaseURL,
		UserAgent:   cfg.Crawl.UserAgent,
	}
	if cfg.Crawl.Headless {
		return crawler.NewBrowserSessionFactory(bc, logger)
	}
	return crawler.NewStaticSessionFactory(bc, logger)
}

func runScheduled(jc *crawler.JobCrawler, query string, maxItems int, spec string, logger *log.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := scheduler.New(jc, query, maxItems, spec, logger)
	if err := s.Start(ctx); err != nil {
		log.Fatalf("scheduler start failed: %v", err)
	}
	defer s.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
}
