package dto

import (
	"time"

	"talent-scout/internal/usecase"
)

type PaginationResponse struct {
	CurrentPage  int `json:"currentPage"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}

type SearchMetadata struct {
	SearchCriteria any    `json:"searchCriteria"`
	Timestamp      string `json:"timestamp"`
}

type MatchedJob struct {
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Location       string   `json:"location"`
	SourceURL      string   `json:"sourceUrl"`
	EmploymentType string   `json:"employmentType,omitempty"`
	Skills         []string `json:"skills,omitempty"`
	PostDate       string   `json:"postDate,omitempty"`
	MatchScore     float64  `json:"matchScore"`
}

type JobMatchResponse struct {
	Jobs       []MatchedJob       `json:"jobs"`
	Pagination PaginationResponse `json:"pagination"`
	Metadata   SearchMetadata     `json:"metadata"`
}

type MatchedProfile struct {
	Name           string   `json:"name"`
	Headline       string   `json:"headline"`
	Location       string   `json:"location"`
	CurrentTitle   string   `json:"currentTitle,omitempty"`
	CurrentCompany string   `json:"currentCompany,omitempty"`
	SourceURL      string   `json:"sourceUrl"`
	Skills         []string `json:"skills,omitempty"`
	ProfileScore   int      `json:"profileScore"`
	MatchScore     float64  `json:"matchScore"`
}

type ProfileMatchResponse struct {
	Profiles   []MatchedProfile   `json:"profiles"`
	Pagination PaginationResponse `json:"pagination"`
	Metadata   SearchMetadata     `json:"metadata"`
}

func NewJobMatchResponse(res usecase.JobMatchResult, criteria any, now time.Time) JobMatchResponse {
	jobs := make([]MatchedJob, 0, len(res.Jobs))
	for _, it := range res.Jobs {
		rec := it.Record
		mj := MatchedJob{
			Title:          rec.Title,
			Company:        rec.Company,
			Location:       rec.Location,
			SourceURL:      rec.SourceURL,
			EmploymentType: string(rec.EmploymentType),
			MatchScore:     it.Score,
		}
		for _, s := range rec.Skills {
			mj.Skills = append(mj.Skills, s.Name)
		}
		if rec.PostDate != nil {
			mj.PostDate = rec.PostDate.Format(time.RFC3339)
		}
		jobs = append(jobs, mj)
	}
	return JobMatchResponse{
		Jobs:       jobs,
		Pagination: PaginationResponse(res.Pagination),
		Metadata: SearchMetadata{
			SearchCriteria: criteria,
			Timestamp:      now.UTC().Format(time.RFC3339),
		},
	}
}

func NewProfileMatchResponse(res usecase.ProfileMatchResult, criteria any, now time.Time) ProfileMatchResponse {
	profiles := make([]MatchedProfile, 0, len(res.Profiles))
	for _, it := range res.Profiles {
		rec := it.Record
		mp := MatchedProfile{
			Name:           rec.Name,
			Headline:       rec.Headline,
			Location:       rec.Location,
			CurrentTitle:   rec.CurrentPosition.Title,
			CurrentCompany: rec.CurrentPosition.Company,
			SourceURL:      rec.SourceURL,
			ProfileScore:   rec.Score,
			MatchScore:     it.Score,
		}
		for _, s := range rec.Skills {
			mp.Skills = append(mp.Skills, s.Name)
		}
		profiles = append(profiles, mp)
	}
	return ProfileMatchResponse{
		Profiles:   profiles,
		Pagination: PaginationResponse(res.Pagination),
		Metadata: SearchMetadata{
			SearchCriteria: criteria,
			Timestamp:      now.UTC().Format(time.RFC3339),
		},
	}
}
