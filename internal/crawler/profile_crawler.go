package crawler

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"talent-scout/internal/domain/geo"
	"talent-scout/internal/domain/job"
	"talent-scout/internal/domain/profile"
	"talent-scout/internal/ratelimit"
	"talent-scout/internal/repository"
)

// ProfileCrawler ingests a single profile page per Run.
type ProfileCrawler struct {
	sessions SessionFactory
	profiles repository.ProfileRepository
	runs     repository.CrawlRunRepository
	limiter  *ratelimit.Limiter
	cache    MatchCacheInvalidator
	logger   *log.Logger
	now      func() time.Time
}

func NewProfileCrawler(sessions SessionFactory, profiles repository.ProfileRepository, runs repository.CrawlRunRepository, limiter *ratelimit.Limiter, cache MatchCacheInvalidator, logger *log.Logger) *ProfileCrawler {
	if limiter == nil {
		limiter = ratelimit.New(ratelimit.DefaultBudget, ratelimit.DefaultWindow)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &ProfileCrawler{
		sessions: sessions,
		profiles: profiles,
		runs:     runs,
		limiter:  limiter,
		cache:    cache,
		logger:   logger,
		now:      time.Now,
	}
}

// Run fetches one profile URL, scores it and upserts the snapshot.
func (c *ProfileCrawler) Run(ctx context.Context, profileURL string) (err error) {
	if c.sessions == nil || c.profiles == nil {
		return fmt.Errorf("profile crawler not wired")
	}
	profileURL = strings.TrimSpace(profileURL)
	if profileURL == "" {
		return fmt.Errorf("empty profile url")
	}

	sess, err := c.sessions.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire session: %w", err)
	}
	defer sess.Release()

	processed := 0
	runID := startRun(ctx, c.runs, "profile", profileURL, c.logger)
	defer func() {
		finishRun(c.runs, runID, err, processed, c.logger)
	}()

	if err = c.limiter.Admit(ctx); err != nil {
		return err
	}

	raw, err := sess.FetchProfile(ctx, profileURL)
	if err != nil {
		logRun(ctx, c.runs, runID, "error", fmt.Sprintf("fetch profile %s: %v", profileURL, err))
		return fmt.Errorf("fetch profile: %w", err)
	}

	rec := c.buildRecord(profileURL, raw)
	if err = c.profiles.Upsert(ctx, rec); err != nil {
		logRun(ctx, c.runs, runID, "error", fmt.Sprintf("upsert %s: %v", profileURL, err))
		return fmt.Errorf("upsert %s: %w", profileURL, err)
	}
	processed = 1

	invalidateMatchCache(ctx, c.cache, profileMatchCachePattern, processed, c.logger)

	c.logger.Printf("[Crawler] profile run done url=%s score=%d", profileURL, rec.Score)
	return nil
}

func (c *ProfileCrawler) buildRecord(profileURL string, raw RawProfile) profile.Record {
	location := CleanText(raw.Location)

	skills := make([]profile.Skill, 0, len(raw.Skills))
	for _, s := range raw.Skills {
		name := CleanText(s.Name)
		if name == "" {
			continue
		}
		skills = append(skills, profile.Skill{Name: name, Endorsements: s.Endorsements})
	}

	exps := make([]profile.Experience, 0, len(raw.Experience))
	for _, e := range raw.Experience {
		exps = append(exps, profile.Experience{
			Title:       CleanText(e.Title),
			Company:     CleanText(e.Company),
			Duration:    CleanText(e.Duration),
			Description: CleanText(e.Description),
		})
	}

	rec := profile.Record{
		SourceURL:       profileURL,
		Name:            CleanText(raw.Name),
		Headline:        CleanText(raw.Headline),
		Location:        location,
		LocationDetails: geo.Parse(location),
		CurrentPosition: profile.Position{
			Title:   CleanText(raw.CurrentTitle),
			Company: CleanText(raw.CurrentCompany),
		},
		Skills:     skills,
		Experience: exps,
		CrawlStatus: job.CrawlStatus{
			LastCrawled: c.now().UTC(),
			IsActive:    true,
		},
	}
	rec.Score = profile.Score(rec)
	return rec
}
