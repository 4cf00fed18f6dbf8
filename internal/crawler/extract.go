package crawler

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Fixed extraction schema. Both the headless and the static fetchers
// parse the same rendered markup with these selectors, so the pipelines
// see identical raw tuples.
const (
	selJobList        = ".jobs-search__results-list > li"
	selJobTitle       = ".job-card-list__title"
	selJobCompany     = ".job-card-container__company-name"
	selJobLocation    = ".job-card-container__metadata-item"
	selJobDescription = ".job-card-list__description"
	selJobLink        = "a"
	selJobEmployment  = ".job-card-container__metadata-item--workplace-type"
	selJobPostDate    = "time"

	selProfileCard       = ".pv-top-card"
	selProfileName       = ".pv-top-card--list li"
	selProfileHeadline   = ".pv-top-card h2"
	selProfileLocation   = ".pv-top-card .pv-top-card--list-bullet li"
	selProfileCurTitle   = ".pv-top-card--experience-list-item .pv-entity__summary-info h3"
	selProfileCurCompany = ".pv-top-card--experience-list-item .pv-entity__secondary-title"
	selProfileSkill      = ".pv-skill-category-entity"
	selProfileSkillName  = ".pv-skill-category-entity__name-text"
	selProfileSkillCount = ".pv-skill-category-entity__endorsement-count"
	selProfileExperience = ".experience-section .pv-entity__summary-info"
	selProfileExpTitle   = "h3"
	selProfileExpCompany = ".pv-entity__secondary-title"
	selProfileExpDates   = ".pv-entity__date-range span:nth-child(2)"
	selProfileExpDesc    = ".pv-entity__description"
)

// parseJobListings extracts raw listing tuples from a rendered search
// results page. Cards without a link are dropped; every other missing
// field degrades to an empty string.
func parseJobListings(doc *goquery.Document) []RawJob {
	var out []RawJob
	doc.Find(selJobList).Each(func(_ int, card *goquery.Selection) {
		href, _ := card.Find(selJobLink).First().Attr("href")
		href = strings.TrimSpace(href)
		if href == "" {
			return
		}
		postDate, _ := card.Find(selJobPostDate).First().Attr("datetime")
		out = append(out, RawJob{
			Title:          textOf(card, selJobTitle),
			Company:        textOf(card, selJobCompany),
			Location:       textOf(card, selJobLocation),
			Description:    textOf(card, selJobDescription),
			SourceURL:      href,
			EmploymentType: textOf(card, selJobEmployment),
			PostDate:       strings.TrimSpace(postDate),
		})
	})
	return out
}

// parseProfile extracts the structured sections of a rendered profile
// page.
func parseProfile(doc *goquery.Document) RawProfile {
	p := RawProfile{
		Name:           textOf(doc.Selection, selProfileName),
		Headline:       textOf(doc.Selection, selProfileHeadline),
		Location:       textOf(doc.Selection, selProfileLocation),
		CurrentTitle:   textOf(doc.Selection, selProfileCurTitle),
		CurrentCompany: textOf(doc.Selection, selProfileCurCompany),
	}

	doc.Find(selProfileSkill).Each(func(_ int, entity *goquery.Selection) {
		name := textOf(entity, selProfileSkillName)
		if name == "" {
			return
		}
		count, _ := strconv.Atoi(textOf(entity, selProfileSkillCount))
		p.Skills = append(p.Skills, RawSkill{Name: name, Endorsements: count})
	})

	doc.Find(selProfileExperience).Each(func(_ int, exp *goquery.Selection) {
		p.Experience = append(p.Experience, RawExperience{
			Title:       textOf(exp, selProfileExpTitle),
			Company:     textOf(exp, selProfileExpCompany),
			Duration:    textOf(exp, selProfileExpDates),
			Description: textOf(exp, selProfileExpDesc),
		})
	})

	return p
}

func textOf(s *goquery.Selection, selector string) string {
	return strings.TrimSpace(s.Find(selector).First().Text())
}
