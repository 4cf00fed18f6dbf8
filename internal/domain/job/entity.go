// Package job defines the crawled job posting record and the criteria
// used to match against it.
package job

import (
	"strings"
	"time"

	"talent-scout/internal/domain/geo"

	"github.com/google/uuid"
)

type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "FULL_TIME"
	EmploymentPartTime   EmploymentType = "PART_TIME"
	EmploymentContract   EmploymentType = "CONTRACT"
	EmploymentTemporary  EmploymentType = "TEMPORARY"
	EmploymentInternship EmploymentType = "INTERNSHIP"
)

type ExperienceLevel string

const (
	ExperienceEntry     ExperienceLevel = "ENTRY"
	ExperienceAssociate ExperienceLevel = "ASSOCIATE"
	ExperienceMidSenior ExperienceLevel = "MID_SENIOR"
	ExperienceDirector  ExperienceLevel = "DIRECTOR"
	ExperienceExecutive ExperienceLevel = "EXECUTIVE"
)

type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusExpired Status = "EXPIRED"
	StatusFilled  Status = "FILLED"
	StatusRemoved Status = "REMOVED"
)

// ParseEmploymentType maps a raw value onto the enum, empty when unknown.
func ParseEmploymentType(raw string) EmploymentType {
	norm := strings.ToUpper(strings.TrimSpace(raw))
	norm = strings.ReplaceAll(norm, "-", "_")
	norm = strings.ReplaceAll(norm, " ", "_")
	et := EmploymentType(norm)
	switch et {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentTemporary, EmploymentInternship:
		return et
	}
	return ""
}

// Skill names are matched case-insensitively everywhere; Required marks
// a hard requirement in the posting.
type Skill struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
}

type Salary struct {
	Min      float64 `json:"min,omitempty"`
	Max      float64 `json:"max,omitempty"`
	Currency string  `json:"currency,omitempty"`
	Period   string  `json:"period,omitempty"`
}

// CrawlStatus is bookkeeping stamped by the ingestion pipeline on every
// successful upsert of the record.
type CrawlStatus struct {
	LastCrawled time.Time `json:"lastCrawled"`
	IsActive    bool      `json:"isActive"`
	ErrorLog    []string  `json:"errorLog,omitempty"`
}

// Record is one crawled job posting. SourceURL is the identity key:
// repeated crawls of the same URL replace the snapshot in place.
type Record struct {
	ID              uuid.UUID
	SourceURL       string
	Title           string
	Company         string
	Location        string
	LocationDetails geo.Location
	Description     string
	EmploymentType  EmploymentType
	ExperienceLevel ExperienceLevel
	Skills          []Skill
	Salary          Salary
	PostDate        *time.Time
	Status          Status
	CrawlStatus     CrawlStatus
}

// SearchCriteria is the typed, already-trimmed match input. Designation
// and Location are required by the delivery layer before anything
// reaches the match engine.
type SearchCriteria struct {
	Designation    string
	Location       string
	Skills         []string
	EmploymentType EmploymentType
}
