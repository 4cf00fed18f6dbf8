// Package match scores candidate records against search criteria with
// a fixed weighted-feature formula and ranks them.
package match

import (
	"math"
	"sort"
	"strings"

	"talent-scout/internal/domain/geo"
	"talent-scout/internal/domain/job"
	"talent-scout/internal/domain/profile"
)

// TopN is the fixed result cutoff applied after ranking.
const TopN = 10

// Job feature weights, summing to 1.0.
const (
	jobWeightTitle          = 0.35
	jobWeightLocation       = 0.25
	jobWeightSkills         = 0.25
	jobWeightEmploymentType = 0.15
)

// Profile feature weights, summing to 1.0.
const (
	profileWeightDesignation = 0.30
	profileWeightCompany     = 0.25
	profileWeightLocation    = 0.25
	profileWeightSkills      = 0.20
)

// statePartialFactor discounts a state-level location match relative to
// an exact city match.
const statePartialFactor = 0.7

type JobResult struct {
	Record job.Record
	Score  float64
}

type ProfileResult struct {
	Record profile.Record
	Score  float64
}

// ScoreJob rates one job against the criteria. The result is in [0, 1]
// and rounded to two decimals.
func ScoreJob(rec job.Record, c job.SearchCriteria) float64 {
	score := 0.0

	if containsFold(rec.Title, c.Designation) {
		score += jobWeightTitle
	}

	score += locationScore(rec.LocationDetails, c.Location, jobWeightLocation)

	if len(c.Skills) > 0 {
		names := make([]string, 0, len(rec.Skills))
		for _, s := range rec.Skills {
			names = append(names, s.Name)
		}
		score += skillsFraction(names, c.Skills) * jobWeightSkills
	}

	if c.EmploymentType != "" && rec.EmploymentType == c.EmploymentType {
		score += jobWeightEmploymentType
	}

	return round2(score)
}

// ScoreProfile rates one profile against the criteria. The result is in
// [0, 1] and rounded to two decimals.
func ScoreProfile(rec profile.Record, c profile.SearchCriteria) float64 {
	score := 0.0

	if containsFold(rec.Headline, c.Designation) || containsFold(rec.CurrentPosition.Title, c.Designation) {
		score += profileWeightDesignation
	}

	if containsFold(rec.CurrentPosition.Company, c.Company) {
		score += profileWeightCompany
	}

	score += locationScore(rec.LocationDetails, c.Location, profileWeightLocation)

	if len(c.Skills) > 0 {
		names := make([]string, 0, len(rec.Skills))
		for _, s := range rec.Skills {
			names = append(names, s.Name)
		}
		score += skillsFraction(names, c.Skills) * profileWeightSkills
	}

	return round2(score)
}

// RankJobs scores the candidate pool and returns it sorted by score
// descending, truncated to TopN. The sort is stable: equal scores keep
// the store's delivery order.
func RankJobs(pool []job.Record, c job.SearchCriteria) []JobResult {
	out := make([]JobResult, 0, len(pool))
	for _, rec := range pool {
		out = append(out, JobResult{Record: rec, Score: ScoreJob(rec, c)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > TopN {
		out = out[:TopN]
	}
	return out
}

// RankProfiles mirrors RankJobs; the delivery order of the pool is
// expected to be profile-score descending, which becomes the tie-break.
func RankProfiles(pool []profile.Record, c profile.SearchCriteria) []ProfileResult {
	out := make([]ProfileResult, 0, len(pool))
	for _, rec := range pool {
		out = append(out, ProfileResult{Record: rec, Score: ScoreProfile(rec, c)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > TopN {
		out = out[:TopN]
	}
	return out
}

// locationScore awards the full weight for an exact city match and a
// discounted weight when only the state contains the queried location.
func locationScore(loc geo.Location, query string, weight float64) float64 {
	if query == "" {
		return 0
	}
	if strings.EqualFold(loc.City, query) {
		return weight
	}
	if containsFold(loc.State, query) {
		return weight * statePartialFactor
	}
	return 0
}

// skillsFraction is the share of wanted skills found among the record's
// skill names by case-insensitive substring.
func skillsFraction(names []string, wanted []string) float64 {
	if len(wanted) == 0 {
		return 0
	}
	matched := 0
	for _, w := range wanted {
		for _, n := range names {
			if containsFold(n, w) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(wanted))
}

func containsFold(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
