package crawler

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"
)

const defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"

// BrowserConfig parameterizes the headless fetcher.
type BrowserConfig struct {
	// ListBaseURL is the search page; the query is appended as the
	// keywords parameter.
	ListBaseURL string
	UserAgent   string
	// FetchTimeout bounds a single navigation+extract round trip.
	FetchTimeout time.Duration
}

func (c BrowserConfig) withDefaults() BrowserConfig {
	if strings.TrimSpace(c.ListBaseURL) == "" {
		c.ListBaseURL = "https://www.linkedin.com/jobs/search/"
	}
	if strings.TrimSpace(c.UserAgent) == "" {
		c.UserAgent = defaultUserAgent
	}
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = 25 * time.Second
	}
	return c
}

// BrowserSessionFactory acquires chromedp browser contexts. Each
// Acquire spawns a fresh headless instance owned by one pipeline run.
type BrowserSessionFactory struct {
	cfg    BrowserConfig
	logger *log.Logger
}

func NewBrowserSessionFactory(cfg BrowserConfig, logger *log.Logger) *BrowserSessionFactory {
	if logger == nil {
		logger = log.Default()
	}
	return &BrowserSessionFactory{cfg: cfg.withDefaults(), logger: logger}
}

func (f *BrowserSessionFactory) Acquire(ctx context.Context) (Session, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.UserAgent(f.cfg.UserAgent),
		)...,
	)

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// Start the browser now so Acquire fails fast when chrome is
	// missing rather than on the first fetch.
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("start browser: %w", err)
	}

	return &browserSession{
		cfg:        f.cfg,
		browserCtx: browserCtx,
		release:    func() { browserCancel(); allocCancel() },
		logger:     f.logger,
	}, nil
}

type browserSession struct {
	cfg        BrowserConfig
	browserCtx context.Context
	release    func()
	logger     *log.Logger
}

func (s *browserSession) FetchJobListings(ctx context.Context, query string) ([]RawJob, error) {
	target := strings.TrimRight(s.cfg.ListBaseURL, "?") + "?keywords=" + url.QueryEscape(query)

	html, err := s.renderedHTML(ctx, target, selJobList)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	items := parseJobListings(doc)
	s.logger.Printf("[Crawler] listings fetched url=%s items=%d", target, len(items))
	return items, nil
}

func (s *browserSession) FetchProfile(ctx context.Context, profileURL string) (RawProfile, error) {
	html, err := s.renderedHTML(ctx, profileURL, selProfileCard)
	if err != nil {
		return RawProfile{}, err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return RawProfile{}, err
	}
	return parseProfile(doc), nil
}

// renderedHTML navigates, waits for waitSel to appear, and returns the
// rendered document. The caller ctx only tightens the deadline; the
// browser context governs the actual tab.
func (s *browserSession) renderedHTML(ctx context.Context, target, waitSel string) (string, error) {
	timeout := s.cfg.FetchTimeout
	if dl, ok := ctx.Deadline(); ok {
		if until := time.Until(dl); until < timeout {
			timeout = until
		}
	}
	reqCtx, cancel := context.WithTimeout(s.browserCtx, timeout)
	defer cancel()

	var html string
	err := chromedp.Run(reqCtx,
		chromedp.Navigate(target),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.WaitVisible(waitSel, chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", target, err)
	}
	return html, nil
}

func (s *browserSession) Release() {
	if s.release != nil {
		s.release()
	}
}
