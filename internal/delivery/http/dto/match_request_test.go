package dto

import (
	"strings"
	"testing"

	"talent-scout/internal/domain/job"
)

func TestJobMatchRequestValidate(t *testing.T) {
	cases := []struct {
		name    string
		req     JobMatchRequest
		wantErr int
	}{
		{"valid", JobMatchRequest{Designation: "Backend Engineer", Location: "Austin"}, 0},
		{"missing designation", JobMatchRequest{Location: "Austin"}, 1},
		{"missing both", JobMatchRequest{}, 2},
		{"designation too short", JobMatchRequest{Designation: "x", Location: "Austin"}, 1},
		{"designation too long", JobMatchRequest{Designation: strings.Repeat("a", 101), Location: "Austin"}, 1},
		{"skill too short", JobMatchRequest{Designation: "Engineer", Location: "Austin", Skills: []string{"Go", "x"}}, 1},
		{"too many skills", JobMatchRequest{Designation: "Engineer", Location: "Austin", Skills: make([]string, 21)}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if errs := tc.req.Validate(); len(errs) != tc.wantErr {
				t.Fatalf("Validate() = %v, want %d errors", errs, tc.wantErr)
			}
		})
	}
}

func TestProfileMatchRequestValidateRequiresCompany(t *testing.T) {
	req := ProfileMatchRequest{Designation: "Engineer", Location: "Austin"}
	errs := req.Validate()
	if len(errs) != 1 || !strings.Contains(errs[0], "company") {
		t.Fatalf("Validate() = %v, want company error", errs)
	}
}

func TestJobMatchRequestCriteria(t *testing.T) {
	req := JobMatchRequest{
		Designation:    "  Backend Engineer ",
		Location:       " Austin ",
		Skills:         []string{" Go ", "", "SQL"},
		EmploymentType: "full-time",
	}
	c := req.Criteria()
	if c.Designation != "Backend Engineer" || c.Location != "Austin" {
		t.Fatalf("criteria not trimmed: %+v", c)
	}
	if len(c.Skills) != 2 || c.Skills[0] != "Go" {
		t.Fatalf("skills = %v", c.Skills)
	}
	if c.EmploymentType != job.EmploymentFullTime {
		t.Fatalf("employment type = %q", c.EmploymentType)
	}
}

func TestSplitSkills(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"  ", 0},
		{"Go", 1},
		{"Go,SQL", 2},
		{"Go, ,SQL,", 2},
	}
	for _, tc := range cases {
		if got := SplitSkills(tc.in); len(got) != tc.want {
			t.Fatalf("SplitSkills(%q) = %v, want %d entries", tc.in, got, tc.want)
		}
	}
}
