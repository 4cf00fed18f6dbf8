package crawler

import (
	"strings"
	"time"

	"talent-scout/internal/domain/job"
)

// commonSkills is the fixed dictionary scanned against listing text.
var commonSkills = []string{
	"javascript", "python", "java", "react", "node.js", "sql",
	"aws", "docker", "kubernetes", "mongodb", "redis", "typescript",
}

// CleanText collapses whitespace runs (including newlines and tabs)
// into single spaces and trims the result.
func CleanText(s string) string {
	if s == "" {
		return ""
	}
	return strings.Join(strings.Fields(s), " ")
}

// ExtractSkills scans text for known skill names by case-insensitive
// substring; every hit is marked required.
func ExtractSkills(text string) []job.Skill {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)

	var skills []job.Skill
	for _, name := range commonSkills {
		if strings.Contains(lower, name) {
			skills = append(skills, job.Skill{Name: name, Required: true})
		}
	}
	return skills
}

// ParseDate parses the post-date formats seen in listings, nil when
// blank or unrecognized.
func ParseDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}
