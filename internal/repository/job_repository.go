package repository

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"talent-scout/internal/database"
	"talent-scout/internal/domain/job"

	"github.com/google/uuid"
)

// candidatePoolCap bounds the number of rows fetched for scoring.
const candidatePoolCap = 100

// JobSearchFilter narrows the candidate pool: full-text match on the
// designation plus an optional case-insensitive city filter.
type JobSearchFilter struct {
	Designation string
	City        string
	Limit       int
}

type JobRepository interface {
	// Upsert inserts or fully replaces the crawled snapshot keyed by
	// source_url.
	Upsert(ctx context.Context, rec job.Record) error
	// SearchActive returns ACTIVE jobs matching the filter, ordered by
	// text-rank, capped at the candidate pool size.
	SearchActive(ctx context.Context, f JobSearchFilter) ([]job.Record, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Upsert(ctx context.Context, rec job.Record) error {
	skillsJSON, err := json.Marshal(rec.Skills)
	if err != nil {
		return err
	}
	salaryJSON, err := json.Marshal(rec.Salary)
	if err != nil {
		return err
	}
	errLogJSON, err := json.Marshal(rec.CrawlStatus.ErrorLog)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO jobs (
			id, source_url, title, company, location,
			loc_city, loc_state, loc_country, loc_lon, loc_lat,
			description, employment_type, experience_level,
			skills, skills_text, salary, post_date, status,
			last_crawled, is_active, error_log, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,now())
		ON CONFLICT (source_url) DO UPDATE SET
			title = EXCLUDED.title,
			company = EXCLUDED.company,
			location = EXCLUDED.location,
			loc_city = EXCLUDED.loc_city,
			loc_state = EXCLUDED.loc_state,
			loc_country = EXCLUDED.loc_country,
			loc_lon = EXCLUDED.loc_lon,
			loc_lat = EXCLUDED.loc_lat,
			description = EXCLUDED.description,
			employment_type = EXCLUDED.employment_type,
			experience_level = EXCLUDED.experience_level,
			skills = EXCLUDED.skills,
			skills_text = EXCLUDED.skills_text,
			salary = EXCLUDED.salary,
			post_date = EXCLUDED.post_date,
			status = EXCLUDED.status,
			last_crawled = EXCLUDED.last_crawled,
			is_active = EXCLUDED.is_active,
			error_log = EXCLUDED.error_log,
			updated_at = now()`,
		newOrExisting(rec.ID),
		strings.TrimSpace(rec.SourceURL),
		rec.Title,
		rec.Company,
		rec.Location,
		rec.LocationDetails.City,
		rec.LocationDetails.State,
		rec.LocationDetails.Country,
		rec.LocationDetails.Coordinates[0],
		rec.LocationDetails.Coordinates[1],
		rec.Description,
		nullableText(string(rec.EmploymentType)),
		nullableText(string(rec.ExperienceLevel)),
		skillsJSON,
		jobSkillsText(rec.Skills),
		salaryJSON,
		rec.PostDate,
		string(statusOrActive(rec.Status)),
		nullableTime(rec.CrawlStatus.LastCrawled),
		rec.CrawlStatus.IsActive,
		errLogJSON,
	)
	return err
}

func (r *PostgresJobRepository) SearchActive(ctx context.Context, f JobSearchFilter) ([]job.Record, error) {
	limit := f.Limit
	if limit <= 0 || limit > candidatePoolCap {
		limit = candidatePoolCap
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, source_url, title, company, location,
			loc_city, loc_state, loc_country, loc_lon, loc_lat,
			description, COALESCE(employment_type, ''), COALESCE(experience_level, ''),
			skills, salary, post_date, status, last_crawled, is_active
		FROM jobs
		WHERE status = $1
		  AND search_tsv @@ plainto_tsquery('english', $2)
		  AND ($3 = '' OR loc_city ILIKE '%' || $3 || '%')
		ORDER BY ts_rank(search_tsv, plainto_tsquery('english', $2)) DESC
		LIMIT $4`,
		string(job.StatusActive),
		strings.TrimSpace(f.Designation),
		strings.TrimSpace(f.City),
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Record, 0)
	for rows.Next() {
		var (
			rec         job.Record
			empType     string
			expLevel    string
			skillsJSON  []byte
			salaryJSON  []byte
			status      string
			lastCrawled *time.Time
		)
		if err := rows.Scan(
			&rec.ID, &rec.SourceURL, &rec.Title, &rec.Company, &rec.Location,
			&rec.LocationDetails.City, &rec.LocationDetails.State, &rec.LocationDetails.Country,
			&rec.LocationDetails.Coordinates[0], &rec.LocationDetails.Coordinates[1],
			&rec.Description, &empType, &expLevel,
			&skillsJSON, &salaryJSON, &rec.PostDate, &status, &lastCrawled, &rec.CrawlStatus.IsActive,
		); err != nil {
			return nil, err
		}
		rec.EmploymentType = job.EmploymentType(empType)
		rec.ExperienceLevel = job.ExperienceLevel(expLevel)
		rec.Status = job.Status(status)
		if lastCrawled != nil {
			rec.CrawlStatus.LastCrawled = *lastCrawled
		}
		if len(skillsJSON) > 0 {
			if err := json.Unmarshal(skillsJSON, &rec.Skills); err != nil {
				return nil, err
			}
		}
		if len(salaryJSON) > 0 {
			if err := json.Unmarshal(salaryJSON, &rec.Salary); err != nil {
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

func jobSkillsText(skills []job.Skill) string {
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		if strings.TrimSpace(s.Name) == "" {
			continue
		}
		names = append(names, s.Name)
	}
	return strings.Join(names, " ")
}

func statusOrActive(s job.Status) job.Status {
	if s == "" {
		return job.StatusActive
	}
	return s
}

func newOrExisting(id uuid.UUID) uuid.UUID {
	if id == uuid.Nil {
		return uuid.New()
	}
	return id
}

func nullableText(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return s
}

func nullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}
