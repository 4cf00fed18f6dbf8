package crawler

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

const listingPage = `
<ul class="jobs-search__results-list">
  <li>
    <a href="https://example.com/jobs/101">view</a>
    <h3 class="job-card-list__title"> Senior Backend Engineer </h3>
    <h4 class="job-card-container__company-name">Acme</h4>
    <span class="job-card-container__metadata-item">Austin, TX, USA</span>
    <span class="job-card-container__metadata-item--workplace-type">Full-time</span>
    <p class="job-card-list__description">Build services in Go with PostgreSQL.</p>
    <time datetime="2026-08-01">3 weeks ago</time>
  </li>
  <li>
    <h3 class="job-card-list__title">Card Without Link</h3>
  </li>
  <li>
    <a href="https://example.com/jobs/102">view</a>
    <h3 class="job-card-list__title">Data Engineer</h3>
  </li>
</ul>`

const profilePage = `
<section class="pv-top-card">
  <ul class="pv-top-card--list"><li>Jane Doe</li></ul>
  <h2>Senior Backend Engineer at Acme</h2>
  <ul class="pv-top-card--list-bullet"><li>Austin, TX, USA</li></ul>
  <div class="pv-top-card--experience-list-item">
    <div class="pv-entity__summary-info"><h3>Backend Engineer</h3></div>
    <span class="pv-entity__secondary-title">Acme</span>
  </div>
</section>
<div class="pv-skill-category-entity">
  <span class="pv-skill-category-entity__name-text">Go</span>
  <span class="pv-skill-category-entity__endorsement-count">12</span>
</div>
<div class="pv-skill-category-entity">
  <span class="pv-skill-category-entity__name-text">PostgreSQL</span>
</div>
<section class="experience-section">
  <div class="pv-entity__summary-info">
    <h3>Backend Engineer</h3>
    <span class="pv-entity__secondary-title">Acme</span>
    <div class="pv-entity__date-range"><span>Dates</span><span>2 yrs</span></div>
    <div class="pv-entity__description">Service ownership.</div>
  </div>
</section>`

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc
}

func TestParseJobListings(t *testing.T) {
	jobs := parseJobListings(mustDoc(t, listingPage))
	if len(jobs) != 2 {
		t.Fatalf("parsed %d listings, want 2 (card without link dropped)", len(jobs))
	}

	first := jobs[0]
	if first.Title != "Senior Backend Engineer" {
		t.Errorf("Title = %q", first.Title)
	}
	if first.Company != "Acme" {
		t.Errorf("Company = %q", first.Company)
	}
	if first.Location != "Austin, TX, USA" {
		t.Errorf("Location = %q", first.Location)
	}
	if first.SourceURL != "https://example.com/jobs/101" {
		t.Errorf("SourceURL = %q", first.SourceURL)
	}
	if first.EmploymentType != "Full-time" {
		t.Errorf("EmploymentType = %q", first.EmploymentType)
	}
	if first.PostDate != "2026-08-01" {
		t.Errorf("PostDate = %q", first.PostDate)
	}

	second := jobs[1]
	if second.Title != "Data Engineer" || second.Company != "" {
		t.Errorf("missing fields should degrade to empty: %+v", second)
	}
}

func TestParseProfile(t *testing.T) {
	p := parseProfile(mustDoc(t, profilePage))

	if p.Name != "Jane Doe" {
		t.Errorf("Name = %q", p.Name)
	}
	if p.Headline != "Senior Backend Engineer at Acme" {
		t.Errorf("Headline = %q", p.Headline)
	}
	if p.Location != "Austin, TX, USA" {
		t.Errorf("Location = %q", p.Location)
	}
	if p.CurrentTitle != "Backend Engineer" || p.CurrentCompany != "Acme" {
		t.Errorf("current position = %q at %q", p.CurrentTitle, p.CurrentCompany)
	}

	if len(p.Skills) != 2 {
		t.Fatalf("parsed %d skills, want 2", len(p.Skills))
	}
	if p.Skills[0].Name != "Go" || p.Skills[0].Endorsements != 12 {
		t.Errorf("skill[0] = %+v", p.Skills[0])
	}
	if p.Skills[1].Endorsements != 0 {
		t.Errorf("missing endorsement count should parse as 0: %+v", p.Skills[1])
	}

	if len(p.Experience) != 1 {
		t.Fatalf("parsed %d experience entries, want 1", len(p.Experience))
	}
	exp := p.Experience[0]
	if exp.Title != "Backend Engineer" || exp.Duration != "2 yrs" {
		t.Errorf("experience = %+v", exp)
	}
}
