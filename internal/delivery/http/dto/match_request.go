package dto

import (
	"fmt"
	"strings"

	"talent-scout/internal/domain/job"
	"talent-scout/internal/domain/profile"
)

const (
	minCriteriaLen = 2
	maxCriteriaLen = 100
	maxSkills      = 20
)

// JobMatchRequest mirrors the matching-jobs query string.
type JobMatchRequest struct {
	Designation    string
	Location       string
	Skills         []string
	EmploymentType string
	Page           int
	Limit          int
}

// Validate returns one message per failed field, empty when the
// request is well formed.
func (r JobMatchRequest) Validate() []string {
	var errs []string
	errs = appendRequired(errs, "designation", r.Designation)
	errs = appendRequired(errs, "location", r.Location)
	errs = appendSkills(errs, r.Skills)
	return errs
}

func (r JobMatchRequest) Criteria() job.SearchCriteria {
	return job.SearchCriteria{
		Designation:    strings.TrimSpace(r.Designation),
		Location:       strings.TrimSpace(r.Location),
		Skills:         cleanSkills(r.Skills),
		EmploymentType: job.ParseEmploymentType(r.EmploymentType),
	}
}

// ProfileMatchRequest mirrors the matching-profiles query string.
type ProfileMatchRequest struct {
	Designation     string
	Location        string
	Company         string
	Skills          []string
	ExperienceYears int
	Industry        string
	Page            int
	Limit           int
}

func (r ProfileMatchRequest) Validate() []string {
	var errs []string
	errs = appendRequired(errs, "designation", r.Designation)
	errs = appendRequired(errs, "location", r.Location)
	errs = appendRequired(errs, "company", r.Company)
	errs = appendSkills(errs, r.Skills)
	return errs
}

func (r ProfileMatchRequest) Criteria() profile.SearchCriteria {
	return profile.SearchCriteria{
		Designation:     strings.TrimSpace(r.Designation),
		Location:        strings.TrimSpace(r.Location),
		Company:         strings.TrimSpace(r.Company),
		Skills:          cleanSkills(r.Skills),
		ExperienceYears: r.ExperienceYears,
		Industry:        strings.TrimSpace(r.Industry),
	}
}

// SplitSkills turns the comma separated skills parameter into a slice,
// dropping empty entries.
func SplitSkills(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func appendRequired(errs []string, field, value string) []string {
	v := strings.TrimSpace(value)
	if v == "" {
		return append(errs, field+" is required")
	}
	if len(v) < minCriteriaLen || len(v) > maxCriteriaLen {
		return append(errs, fmt.Sprintf("%s must be between %d and %d characters", field, minCriteriaLen, maxCriteriaLen))
	}
	return errs
}

func appendSkills(errs []string, skills []string) []string {
	if len(skills) > maxSkills {
		return append(errs, fmt.Sprintf("skills must not exceed %d entries", maxSkills))
	}
	for _, s := range skills {
		if len(strings.TrimSpace(s)) < minCriteriaLen {
			return append(errs, fmt.Sprintf("skill %q must be at least %d characters", s, minCriteriaLen))
		}
	}
	return errs
}

func cleanSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
