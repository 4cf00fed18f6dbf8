package repository

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"talent-scout/internal/database"
	"talent-scout/internal/domain/profile"
)

// ProfileSearchFilter narrows the profile candidate pool: full-text
// match on designation plus company, optional city filter.
type ProfileSearchFilter struct {
	Designation string
	Company     string
	City        string
	Limit       int
}

type ProfileRepository interface {
	Upsert(ctx context.Context, rec profile.Record) error
	// SearchActive returns active profiles matching the filter, ordered
	// by profile_score descending, capped at the candidate pool size.
	SearchActive(ctx context.Context, f ProfileSearchFilter) ([]profile.Record, error)
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) Upsert(ctx context.Context, rec profile.Record) error {
	skillsJSON, err := json.Marshal(rec.Skills)
	if err != nil {
		return err
	}
	expJSON, err := json.Marshal(rec.Experience)
	if err != nil {
		return err
	}
	eduJSON, err := json.Marshal(rec.Education)
	if err != nil {
		return err
	}
	certJSON, err := json.Marshal(rec.Certifications)
	if err != nil {
		return err
	}
	langJSON, err := json.Marshal(rec.Languages)
	if err != nil {
		return err
	}
	errLogJSON, err := json.Marshal(rec.CrawlStatus.ErrorLog)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO profiles (
			id, source_url, name, headline, location,
			loc_city, loc_state, loc_country, loc_lon, loc_lat,
			current_title, current_company,
			skills, skills_text, experience, experience_text,
			education, certifications, languages, profile_score,
			last_crawled, is_active, error_log, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,now())
		ON CONFLICT (source_url) DO UPDATE SET
			name = EXCLUDED.name,
			headline = EXCLUDED.headline,
			location = EXCLUDED.location,
			loc_city = EXCLUDED.loc_city,
			loc_state = EXCLUDED.loc_state,
			loc_country = EXCLUDED.loc_country,
			loc_lon = EXCLUDED.loc_lon,
			loc_lat = EXCLUDED.loc_lat,
			current_title = EXCLUDED.current_title,
			current_company = EXCLUDED.current_company,
			skills = EXCLUDED.skills,
			skills_text = EXCLUDED.skills_text,
			experience = EXCLUDED.experience,
			experience_text = EXCLUDED.experience_text,
			education = EXCLUDED.education,
			certifications = EXCLUDED.certifications,
			languages = EXCLUDED.languages,
			profile_score = EXCLUDED.profile_score,
			last_crawled = EXCLUDED.last_crawled,
			is_active = EXCLUDED.is_active,
			error_log = EXCLUDED.error_log,
			updated_at = now()`,
		newOrExisting(rec.ID),
		strings.TrimSpace(rec.SourceURL),
		rec.Name,
		rec.Headline,
		rec.Location,
		rec.LocationDetails.City,
		rec.LocationDetails.State,
		rec.LocationDetails.Country,
		rec.LocationDetails.Coordinates[0],
		rec.LocationDetails.Coordinates[1],
		rec.CurrentPosition.Title,
		rec.CurrentPosition.Company,
		skillsJSON,
		profileSkillsText(rec.Skills),
		expJSON,
		experienceText(rec.Experience),
		eduJSON,
		certJSON,
		langJSON,
		rec.Score,
		nullableTime(rec.CrawlStatus.LastCrawled),
		rec.CrawlStatus.IsActive,
		errLogJSON,
	)
	return err
}

func (r *PostgresProfileRepository) SearchActive(ctx context.Context, f ProfileSearchFilter) ([]profile.Record, error) {
	limit := f.Limit
	if limit <= 0 || limit > candidatePoolCap {
		limit = candidatePoolCap
	}

	query := strings.TrimSpace(strings.TrimSpace(f.Designation) + " " + strings.TrimSpace(f.Company))

	rows, err := r.db.Query(ctx,
		`SELECT id, source_url, name, headline, location,
			loc_city, loc_state, loc_country, loc_lon, loc_lat,
			current_title, current_company,
			skills, experience, education, certifications, languages,
			profile_score, last_crawled, is_active
		FROM profiles
		WHERE is_active = TRUE
		  AND search_tsv @@ plainto_tsquery('english', $1)
		  AND ($2 = '' OR loc_city ILIKE '%' || $2 || '%')
		ORDER BY profile_score DESC
		LIMIT $3`,
		query,
		strings.TrimSpace(f.City),
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.Record, 0)
	for rows.Next() {
		var (
			rec         profile.Record
			skillsJSON  []byte
			expJSON     []byte
			eduJSON     []byte
			certJSON    []byte
			langJSON    []byte
			lastCrawled *time.Time
		)
		if err := rows.Scan(
			&rec.ID, &rec.SourceURL, &rec.Name, &rec.Headline, &rec.Location,
			&rec.LocationDetails.City, &rec.LocationDetails.State, &rec.LocationDetails.Country,
			&rec.LocationDetails.Coordinates[0], &rec.LocationDetails.Coordinates[1],
			&rec.CurrentPosition.Title, &rec.CurrentPosition.Company,
			&skillsJSON, &expJSON, &eduJSON, &certJSON, &langJSON,
			&rec.Score, &lastCrawled, &rec.CrawlStatus.IsActive,
		); err != nil {
			return nil, err
		}
		if lastCrawled != nil {
			rec.CrawlStatus.LastCrawled = *lastCrawled
		}
		for _, pair := range []struct {
			raw []byte
			out any
		}{
			{skillsJSON, &rec.Skills},
			{expJSON, &rec.Experience},
			{eduJSON, &rec.Education},
			{certJSON, &rec.Certifications},
			{langJSON, &rec.Languages},
		} {
			if len(pair.raw) == 0 {
				continue
			}
			if err := json.Unmarshal(pair.raw, pair.out); err != nil {
				return nil, err
			}
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func profileSkillsText(skills []profile.Skill) string {
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		if strings.TrimSpace(s.Name) == "" {
			continue
		}
		names = append(names, s.Name)
	}
	return strings.Join(names, " ")
}

func experienceText(exps []profile.Experience) string {
	parts := make([]string, 0, len(exps))
	for _, e := range exps {
		if strings.TrimSpace(e.Description) == "" {
			continue
		}
		parts = append(parts, e.Description)
	}
	return strings.Join(parts, " ")
}
