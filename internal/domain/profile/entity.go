// Package profile defines the crawled professional profile record, its
// completeness score, and the criteria used to match against it.
package profile

import (
	"talent-scout/internal/domain/geo"
	"talent-scout/internal/domain/job"

	"github.com/google/uuid"
)

// Skill carries an endorsement count instead of the job-side required
// flag; names are matched case-insensitively everywhere.
type Skill struct {
	Name         string `json:"name"`
	Endorsements int    `json:"endorsements"`
}

type Position struct {
	Title   string `json:"title"`
	Company string `json:"company"`
}

type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
}

type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
}

type Language struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

// Record is one crawled profile snapshot, keyed by SourceURL like job
// records. Score is derived at ingest time from field completeness.
type Record struct {
	ID              uuid.UUID
	SourceURL       string
	Name            string
	Headline        string
	Location        string
	LocationDetails geo.Location
	CurrentPosition Position
	Skills          []Skill
	Experience      []Experience
	Education       []Education
	Certifications  []Certification
	Languages       []Language
	Score           int
	CrawlStatus     job.CrawlStatus
}

// SearchCriteria is the typed profile match input; Designation,
// Location and Company are required by the delivery layer.
type SearchCriteria struct {
	Designation     string
	Location        string
	Company         string
	Skills          []string
	ExperienceYears int
	Industry        string
}

// Score rates profile completeness 0..100: identity fields are worth a
// flat amount each, skills count 2 points apiece up to 20, experience
// entries 5 apiece up to 20.
func Score(r Record) int {
	score := 0
	if r.Name != "" {
		score += 10
	}
	if r.Headline != "" {
		score += 10
	}
	if r.Location != "" {
		score += 10
	}
	if r.CurrentPosition.Title != "" {
		score += 15
	}
	if r.CurrentPosition.Company != "" {
		score += 15
	}
	if n := len(r.Skills); n > 0 {
		score += minInt(20, 2*n)
	}
	if n := len(r.Experience); n > 0 {
		score += minInt(20, 5*n)
	}
	if score > 100 {
		score = 100
	}
	return score
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
