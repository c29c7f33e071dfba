package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"job-matcher/internal/config"
	"job-matcher/internal/database/migration"
	dbpostgres "job-matcher/internal/database/postgres"
	"job-matcher/internal/extractor"
	"job-matcher/internal/fetcher"
	"job-matcher/internal/infrastructure/cache"
	"job-matcher/internal/ingest"
	"job-matcher/internal/repository"
)

func main() {
	var (
		query    = flag.String("query", "software engineer", "search query for the paging job API")
		location = flag.String("location", "", "location filter (defaults to Worldwide)")
		pages    = flag.Int("pages", 0, "max pages to fetch (0 uses JOBS_API_MAX_PAGES)")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	maxPages := cfg.JobsAPI.MaxPages
	if *pages > 0 {
		maxPages = *pages
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	defer cancel()

	var store repository.JobStore
	if cfg.Database.Configured() {
		db, err := dbpostgres.Connect(ctx, cfg.Database)
		if err != nil {
			logger.Fatalf("failed to connect to postgres: %v", err)
		}
		defer db.Close()

		if err := (migration.Runner{}).Run(ctx, db.SQLDB()); err != nil {
			logger.Fatalf("migrations failed: %v", err)
		}

		store = repository.NewPostgresJobStore(db)
	} else {
		logger.Printf("[Fetcher] no database configured, writing CSV only")
	}

	ext := extractor.NewDefault(cfg.Extractor.BaseURL, cfg.Extractor.Timeout, logger)

	svc := ingest.NewService(
		ingest.Config{
			APIURL:   cfg.JobsAPI.URL,
			APIKey:   cfg.JobsAPI.Key,
			APIHost:  cfg.JobsAPI.Host,
			MaxPages: maxPages,
		},
		fetcher.NewClient(0, logger),
		store,
		ext,
		cache.NewRedis(logger),
		cfg.Corpus.Path,
		logger,
	)

	n, err := svc.Refresh(ctx, *query, *location)
	if err != nil {
		logger.Fatalf("refresh failed: %v", err)
	}
	logger.Printf("[Fetcher] done | jobs=%d corpus=%s", n, cfg.Corpus.Path)
}
