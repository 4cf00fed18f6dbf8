package repository

import (
	"context"
	"strings"
	"time"

	"talent-scout/internal/database"

	"github.com/google/uuid"
)

// CrawlRunRepository records per-run bookkeeping for the ingestion
// pipelines; failures here never abort a crawl.
type CrawlRunRepository interface {
	Start(ctx context.Context, kind, target string) (uuid.UUID, error)
	Finish(ctx context.Context, runID uuid.UUID, status string, processed int) error
	Log(ctx context.Context, runID uuid.UUID, level, message string) error
}

type PostgresCrawlRunRepository struct {
	db database.DB
}

func NewPostgresCrawlRunRepository(db database.DB) *PostgresCrawlRunRepository {
	return &PostgresCrawlRunRepository{db: db}
}

func (r *PostgresCrawlRunRepository) Start(ctx context.Context, kind, target string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := r.db.Exec(ctx,
		`INSERT INTO crawl_runs (id, kind, target, started_at, status) VALUES ($1,$2,$3,$4,$5)`,
		id, strings.TrimSpace(kind), strings.TrimSpace(target), time.Now().UTC(), "running",
	)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (r *PostgresCrawlRunRepository) Finish(ctx context.Context, runID uuid.UUID, status string, processed int) error {
	if runID == uuid.Nil {
		return nil
	}
	_, err := r.db.Exec(ctx,
		`UPDATE crawl_runs SET finished_at = $2, status = $3, processed = $4 WHERE id = $1`,
		runID, time.Now().UTC(), strings.TrimSpace(status), processed,
	)
	return err
}

func (r *PostgresCrawlRunRepository) Log(ctx context.Context, runID uuid.UUID, level, message string) error {
	if runID == uuid.Nil {
		return nil
	}
	level = strings.TrimSpace(level)
	if level == "" {
		level = "info"
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return nil
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO crawl_logs (id, crawl_run_id, level, message) VALUES ($1,$2,$3,$4)`,
		uuid.New(), runID, level, message,
	)
	return err
}
