// Package crawler drives the ingestion pipelines: fetch raw records
// through a scoped session resource, normalize them, and upsert into
// the store keyed by source URL.
package crawler

import "context"

// RawJob is one extracted listing tuple. Missing page fields come back
// as empty strings; extraction never aborts the batch over them.
type RawJob struct {
	Title          string
	Company        string
	Location       string
	Description    string
	SourceURL      string
	EmploymentType string
	PostDate       string
}

type RawSkill struct {
	Name         string
	Endorsements int
}

type RawExperience struct {
	Title       string
	Company     string
	Duration    string
	Description string
}

// RawProfile is one extracted profile page.
type RawProfile struct {
	Name           string
	Headline       string
	Location       string
	CurrentTitle   string
	CurrentCompany string
	Skills         []RawSkill
	Experience     []RawExperience
}

// Session is the exclusive fetch resource owned by a single pipeline
// run. Release must be safe on every exit path.
type Session interface {
	FetchJobListings(ctx context.Context, query string) ([]RawJob, error)
	FetchProfile(ctx context.Context, profileURL string) (RawProfile, error)
	Release()
}

// SessionFactory acquires a fresh Session per run; the pipeline never
// holds one across runs.
type SessionFactory interface {
	Acquire(ctx context.Context) (Session, error)
}
