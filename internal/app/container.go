package app

import (
	"context"
	"log"
	"os"
	"time"

	"talent-scout/internal/config"
	"talent-scout/internal/database"
	dbpostgres "talent-scout/internal/database/postgres"
	"talent-scout/internal/infrastructure/cache"
	"talent-scout/internal/repository"
	"talent-scout/internal/usecase"
)

// Container owns the process-wide resources and the usecases built on
// top of them.
type Container struct {
	Config config.Config
	Logger *log.Logger
	DB     database.DB
	Cache  *cache.Redis

	Jobs      repository.JobRepository
	Profiles  repository.ProfileRepository
	CrawlRuns repository.CrawlRunRepository

	JobMatch     usecase.JobMatchUsecase
	ProfileMatch usecase.ProfileMatchUsecase
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	rds := cache.NewRedis(cfg.Redis, logger)

	jobs := repository.NewPostgresJobRepository(db)
	profiles := repository.NewPostgresProfileRepository(db)
	runs := repository.NewPostgresCrawlRunRepository(db)

	return &Container{
		Config:       cfg,
		Logger:       logger,
		DB:           db,
		Cache:        rds,
		Jobs:         jobs,
		Profiles:     profiles,
		CrawlRuns:    runs,
		JobMatch:     usecase.NewJobMatchUsecase(jobs, rds, logger),
		ProfileMatch: usecase.NewProfileMatchUsecase(profiles, rds, logger),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
