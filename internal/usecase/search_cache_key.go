package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"talent-scout/internal/domain/job"
	"talent-scout/internal/domain/profile"
)

type jobMatchCacheKeyInput struct {
	Designation    string   `json:"designation"`
	Location       string   `json:"location"`
	Skills         []string `json:"skills"`
	EmploymentType string   `json:"employment_type"`
}

type profileMatchCacheKeyInput struct {
	Designation     string   `json:"designation"`
	Location        string   `json:"location"`
	Company         string   `json:"company"`
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experience_years"`
	Industry        string   `json:"industry"`
}

func normalizeSearchValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

func normalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = normalizeSearchValue(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

func JobMatchCacheKey(c job.SearchCriteria) string {
	in := jobMatchCacheKeyInput{
		Designation:    normalizeSearchValue(c.Designation),
		Location:       normalizeSearchValue(c.Location),
		Skills:         normalizeSkills(c.Skills),
		EmploymentType: normalizeSearchValue(string(c.EmploymentType)),
	}
	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "jobs:match:" + hex.EncodeToString(sum[:])
}

func ProfileMatchCacheKey(c profile.SearchCriteria) string {
	in := profileMatchCacheKeyInput{
		Designation:     normalizeSearchValue(c.Designation),
		Location:        normalizeSearchValue(c.Location),
		Company:         normalizeSearchValue(c.Company),
		Skills:          normalizeSkills(c.Skills),
		ExperienceYears: c.ExperienceYears,
		Industry:        normalizeSearchValue(c.Industry),
	}
	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "profiles:match:" + hex.EncodeToString(sum[:])
}
