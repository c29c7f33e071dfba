package app

import (
	"context"
	"log"
	"time"

	"job-matcher/internal/certcatalog"
	"job-matcher/internal/config"
	"job-matcher/internal/corpus"
	"job-matcher/internal/database"
	dbpostgres "job-matcher/internal/database/postgres"
	"job-matcher/internal/extractor"
	"job-matcher/internal/fetcher"
	"job-matcher/internal/infrastructure/cache"
	"job-matcher/internal/ingest"
	"job-matcher/internal/repository"
	"job-matcher/internal/usecase"
	"job-matcher/internal/ws"
)

// Container wires the long-lived collaborators. Postgres is optional: the
// CSV corpus is the canonical source and the database only backs ingestion.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Cache *cache.Redis
	Hub   *ws.Hub

	Extractor *extractor.Extractor
	Corpus    *corpus.FileSource
	Finder    *certcatalog.Finder
	Ingest    *ingest.Service

	SkillExtraction     usecase.SkillExtractionUsecase
	SkillRecommendation usecase.SkillRecommendationUsecase
	JobRecommendation   usecase.JobRecommendationUsecase
	JobLinks            usecase.JobLinksUsecase
	JobSearch           usecase.JobSearchUsecase
	Certification       usecase.CertificationUsecase
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	c := &Container{Config: cfg, Logger: logger}

	if cfg.Database.Configured() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		db, err := dbpostgres.Connect(ctx, cfg.Database)
		cancel()
		if err != nil {
			logger.Printf("[App] postgres unavailable, ingestion store disabled | error=%v", err)
		} else {
			c.DB = db
		}
	}

	c.Cache = cache.NewRedis(logger)
	c.Hub = ws.NewHub(logger)
	ws.SetDefaultHub(c.Hub)

	c.Extractor = extractor.NewDefault(cfg.Extractor.BaseURL, cfg.Extractor.Timeout, logger)
	c.Corpus = corpus.NewFileSource(cfg.Corpus.Path, c.Extractor, logger)

	var headless certcatalog.HeadlessRenderer
	if cfg.Catalog.Headless {
		headless = certcatalog.NewChromeRenderer()
	}
	catalog := certcatalog.NewCatalogClient(cfg.Catalog.BaseURL, headless, logger)
	c.Finder = certcatalog.NewFinder(catalog, logger)

	var store repository.JobStore
	if c.DB != nil {
		store = repository.NewPostgresJobStore(c.DB)
	}
	c.Ingest = ingest.NewService(
		ingest.Config{
			APIURL:   cfg.JobsAPI.URL,
			APIKey:   cfg.JobsAPI.Key,
			APIHost:  cfg.JobsAPI.Host,
			MaxPages: cfg.JobsAPI.MaxPages,
		},
		fetcher.NewClient(0, logger),
		store,
		c.Extractor,
		c.Cache,
		cfg.Corpus.Path,
		logger,
	)

	c.SkillExtraction = usecase.NewSkillExtractionUsecase(c.Extractor)
	c.SkillRecommendation = usecase.NewSkillRecommendationUsecase(c.Corpus, logger)
	c.JobRecommendation = usecase.NewJobRecommendationUsecase(c.Corpus, logger)
	c.JobLinks = usecase.NewJobLinksUsecase(c.Corpus, logger)
	c.JobSearch = usecase.NewJobSearchUsecase(cfg.SearchAPI.URL, cfg.SearchAPI.Key, 0, logger)
	c.Certification = usecase.NewCertificationUsecase(c.Finder, c.Cache, cache.DefaultTTLFromEnv(), logger)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
