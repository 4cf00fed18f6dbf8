package crawler

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
)

// StaticSessionFactory serves markets where the listing pages render
// server side, so a plain HTTP fetch is enough and no browser has to
// be kept alive.
type StaticSessionFactory struct {
	cfg    BrowserConfig
	logger *log.Logger
}

func NewStaticSessionFactory(cfg BrowserConfig, logger *log.Logger) *StaticSessionFactory {
	if logger == nil {
		logger = log.Default()
	}
	return &StaticSessionFactory{cfg: cfg.withDefaults(), logger: logger}
}

func (f *StaticSessionFactory) Acquire(ctx context.Context) (Session, error) {
	return &staticSession{cfg: f.cfg, logger: f.logger}, nil
}

type staticSession struct {
	cfg    BrowserConfig
	logger *log.Logger
}

func (s *staticSession) FetchJobListings(ctx context.Context, query string) ([]RawJob, error) {
	target := strings.TrimRight(s.cfg.ListBaseURL, "?") + "?keywords=" + url.QueryEscape(query)

	doc, err := s.fetchDocument(ctx, target)
	if err != nil {
		return nil, err
	}
	items := parseJobListings(doc)
	s.logger.Printf("[Crawler] listings fetched url=%s items=%d", target, len(items))
	return items, nil
}

func (s *staticSession) FetchProfile(ctx context.Context, profileURL string) (RawProfile, error) {
	doc, err := s.fetchDocument(ctx, profileURL)
	if err != nil {
		return RawProfile{}, err
	}
	return parseProfile(doc), nil
}

func (s *staticSession) fetchDocument(ctx context.Context, target string) (*goquery.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c := colly.NewCollector()
	c.SetRequestTimeout(s.cfg.FetchTimeout)
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Delay: 500 * time.Millisecond})

	var (
		body     []byte
		fetchErr error
	)
	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", s.cfg.UserAgent)
	})
	c.OnResponse(func(r *colly.Response) {
		body = r.Body
	})
	c.OnError(func(r *colly.Response, err error) {
		fetchErr = fmt.Errorf("fetch %s: %w", target, err)
	})

	if err := c.Visit(target); err != nil {
		return nil, fmt.Errorf("fetch %s: %w", target, err)
	}
	c.Wait()

	if fetchErr != nil {
		return nil, fetchErr
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("fetch %s: empty response", target)
	}
	return goquery.NewDocumentFromReader(bytes.NewReader(body))
}

func (s *staticSession) Release() {}
