package crawler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStaticSessionFetchJobListings(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		if r.URL.Query().Get("keywords") != "backend engineer" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body>" + listingPage + "</body></html>"))
	}))
	defer srv.Close()

	f := NewStaticSessionFactory(BrowserConfig{
		ListBaseURL: srv.URL + "/jobs/search/",
		UserAgent:   "talent-scout-test",
	}, discardLogger())

	sess, err := f.Acquire(context.Background())
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	defer sess.Release()

	jobs, err := sess.FetchJobListings(context.Background(), "backend engineer")
	if err != nil {
		t.Fatalf("FetchJobListings: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("fetched %d listings, want 2", len(jobs))
	}
	if jobs[0].Title != "Senior Backend Engineer" {
		t.Fatalf("Title = %q", jobs[0].Title)
	}
	if gotUA != "talent-scout-test" {
		t.Fatalf("User-Agent = %q", gotUA)
	}
}

func TestStaticSessionFetchProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body>" + profilePage + "</body></html>"))
	}))
	defer srv.Close()

	f := NewStaticSessionFactory(BrowserConfig{}, discardLogger())
	sess, err := f.Acquire(context.Background())
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	defer sess.Release()

	p, err := sess.FetchProfile(context.Background(), srv.URL+"/in/jane")
	if err != nil {
		t.Fatalf("FetchProfile: %v", err)
	}
	if p.Name != "Jane Doe" || len(p.Skills) != 2 {
		t.Fatalf("profile = %+v", p)
	}
}

func TestStaticSessionFetchErrorOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "blocked", http.StatusForbidden)
	}))
	defer srv.Close()

	f := NewStaticSessionFactory(BrowserConfig{ListBaseURL: srv.URL}, discardLogger())
	sess, _ := f.Acquire(context.Background())
	defer sess.Release()

	if _, err := sess.FetchJobListings(context.Background(), "go"); err == nil {
		t.Fatalf("expected fetch error on 403")
	}
}

func TestStaticSessionCancelledContext(t *testing.T) {
	f := NewStaticSessionFactory(BrowserConfig{ListBaseURL: "http://127.0.0.1:1"}, discardLogger())
	sess, _ := f.Acquire(context.Background())
	defer sess.Release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := sess.FetchJobListings(ctx, "go"); err == nil {
		t.Fatalf("expected error for cancelled context")
	}
}
