package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"talent-scout/internal/domain/geo"
	"talent-scout/internal/domain/profile"
	"talent-scout/internal/repository"
)

type mockProfileRepo struct {
	items      []profile.Record
	err        error
	lastFilter repository.ProfileSearchFilter
	calls      int
}

func (m *mockProfileRepo) Upsert(context.Context, profile.Record) error { return nil }
func (m *mockProfileRepo) SearchActive(_ context.Context, f repository.ProfileSearchFilter) ([]profile.Record, error) {
	m.calls++
	m.lastFilter = f
	return m.items, m.err
}

func profileRecord(n int, headline, city, company string) profile.Record {
	return profile.Record{
		SourceURL:       fmt.Sprintf("https://example.com/in/p%d", n),
		Name:            fmt.Sprintf("Person %d", n),
		Headline:        headline,
		Location:        city,
		LocationDetails: geo.Location{City: city},
		CurrentPosition: profile.Position{Title: headline, Company: company},
	}
}

func TestProfileMatchUsecase_MissingRequiredCriteria(t *testing.T) {
	uc := NewProfileMatchUsecase(&mockProfileRepo{}, nil, testLogger())

	cases := []profile.SearchCriteria{
		{Designation: "", Location: "Austin", Company: "Acme"},
		{Designation: "Engineer", Location: "", Company: "Acme"},
		{Designation: "Engineer", Location: "Austin", Company: "  "},
	}
	for _, c := range cases {
		if _, err := uc.MatchProfiles(context.Background(), c, 1, 10); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("criteria %+v: expected ErrInvalidInput, got %v", c, err)
		}
	}
}

func TestProfileMatchUsecase_RanksAndTruncates(t *testing.T) {
	var pool []profile.Record
	pool = append(pool, profileRecord(0, "Backend Engineer", "Austin", "Acme"))
	for i := 1; i < 14; i++ {
		pool = append(pool, profileRecord(i, "Backend Engineer", "Elsewhere", "Initech"))
	}
	repo := &mockProfileRepo{items: pool}
	uc := NewProfileMatchUsecase(repo, nil, testLogger())

	c := profile.SearchCriteria{Designation: "Backend Engineer", Location: "Austin", Company: "Acme"}
	res, err := uc.MatchProfiles(context.Background(), c, 1, 10)
	if err != nil {
		t.Fatalf("MatchProfiles: %v", err)
	}
	if len(res.Profiles) != 10 {
		t.Fatalf("returned %d profiles, want 10", len(res.Profiles))
	}
	if res.Profiles[0].Record.SourceURL != "https://example.com/in/p0" {
		t.Fatalf("best match not first: %+v", res.Profiles[0])
	}
	if res.Pagination.TotalItems != len(pool) {
		t.Fatalf("TotalItems = %d, want pool size %d", res.Pagination.TotalItems, len(pool))
	}
	if repo.lastFilter.Company != "Acme" || repo.lastFilter.City != "Austin" {
		t.Fatalf("pool filter = %+v", repo.lastFilter)
	}
}

func TestProfileMatchUsecase_CityFilterTakesFullLocationString(t *testing.T) {
	repo := &mockProfileRepo{}
	uc := NewProfileMatchUsecase(repo, nil, testLogger())

	c := profile.SearchCriteria{Designation: "Engineer", Location: "Austin, TX", Company: "Acme"}
	if _, err := uc.MatchProfiles(context.Background(), c, 1, 10); err != nil {
		t.Fatalf("MatchProfiles: %v", err)
	}
	if repo.lastFilter.City != "Austin, TX" {
		t.Fatalf("filter city = %q, want the raw location string", repo.lastFilter.City)
	}
}

func TestProfileMatchUsecase_StoreErrorMapsToInternal(t *testing.T) {
	uc := NewProfileMatchUsecase(&mockProfileRepo{err: errors.New("db down")}, nil, testLogger())
	_, err := uc.MatchProfiles(context.Background(), profile.SearchCriteria{Designation: "Engineer", Location: "Austin", Company: "Acme"}, 1, 10)
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestProfileMatchUsecase_CacheRoundTrip(t *testing.T) {
	cache := newMemCache()
	repo := &mockProfileRepo{items: []profile.Record{profileRecord(1, "Backend Engineer", "Austin", "Acme")}}
	uc := NewProfileMatchUsecase(repo, cache, testLogger())
	c := profile.SearchCriteria{Designation: "Backend Engineer", Location: "Austin", Company: "Acme"}

	if _, err := uc.MatchProfiles(context.Background(), c, 1, 10); err != nil {
		t.Fatalf("first MatchProfiles: %v", err)
	}
	if _, err := uc.MatchProfiles(context.Background(), c, 1, 10); err != nil {
		t.Fatalf("second MatchProfiles: %v", err)
	}
	if repo.calls != 1 {
		t.Fatalf("store hit %d times, want 1", repo.calls)
	}
}

func TestProfileMatchCacheKeyNormalizes(t *testing.T) {
	a := ProfileMatchCacheKey(profile.SearchCriteria{Designation: " Backend  Engineer ", Location: "Austin", Company: "ACME", Skills: []string{" Go "}})
	b := ProfileMatchCacheKey(profile.SearchCriteria{Designation: "backend engineer", Location: "austin", Company: "acme", Skills: []string{"go"}})
	if a != b {
		t.Fatalf("normalized criteria should share a key:\n%s\n%s", a, b)
	}
	c := ProfileMatchCacheKey(profile.SearchCriteria{Designation: "backend engineer", Location: "dallas", Company: "acme"})
	if a == c {
		t.Fatalf("different criteria should not collide")
	}
}
