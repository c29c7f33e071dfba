package ingest

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"job-matcher/internal/corpus"
	"job-matcher/internal/fetcher"
	"job-matcher/internal/joblinks"
	"job-matcher/internal/repository"
	"job-matcher/internal/ws"
)

var ErrRefreshInProgress = errors.New("corpus refresh already in progress")

const (
	refreshLockKey = "corpus:refresh:lock"
	refreshLockTTL = 5 * time.Minute
	upsertWorkers  = 4
)

// Locker is satisfied by the redis wrapper; when redis is down SetIfNotExists
// reports success, so a refresh is never blocked by a missing cache.
type Locker interface {
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, key string) error
}

type Config struct {
	APIURL   string
	APIKey   string
	APIHost  string
	MaxPages int
}

// Service pulls pages from the external job API, persists them, rewrites the
// corpus CSV, and announces the refresh over the websocket hub.
type Service struct {
	cfg       Config
	fetcher   *fetcher.Client
	store     repository.JobStore
	extractor corpus.SkillExtractor
	locker    Locker
	corpusCSV string
	logger    *log.Logger
}

func NewService(cfg Config, f *fetcher.Client, store repository.JobStore, ext corpus.SkillExtractor, locker Locker, corpusCSV string, logger *log.Logger) *Service {
	return &Service{
		cfg:       cfg,
		fetcher:   f,
		store:     store,
		extractor: ext,
		locker:    locker,
		corpusCSV: corpusCSV,
		logger:    logger,
	}
}

// Refresh fetches up to MaxPages pages for the query, upserts them into the
// job store when one is configured, and replaces the corpus CSV. The page
// walk itself is sequential; only the database writes fan out.
func (s *Service) Refresh(ctx context.Context, query, location string) (int, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		query = "software engineer"
	}

	if s.locker != nil {
		ok, err := s.locker.SetIfNotExists(ctx, refreshLockKey, query, refreshLockTTL)
		if err == nil && !ok {
			return 0, ErrRefreshInProgress
		}
		defer func() { _ = s.locker.Delete(context.Background(), refreshLockKey) }()
	}

	jobs := s.fetcher.FetchAll(ctx,
		s.cfg.APIURL,
		fetcher.DefaultParams(query, location),
		fetcher.DefaultHeaders(s.cfg.APIKey, s.cfg.APIHost),
		s.cfg.MaxPages,
	)
	if len(jobs) == 0 {
		if s.logger != nil {
			s.logger.Printf("[Ingest] no jobs fetched | query=%q", query)
		}
		return 0, nil
	}

	listings := make([]corpus.JobListing, 0, len(jobs))
	for _, j := range jobs {
		listings = append(listings, s.toListing(ctx, j))
	}

	if s.store != nil {
		s.upsertAll(ctx, listings)
	}

	if s.corpusCSV != "" {
		if err := corpus.WriteCSV(s.corpusCSV, listings); err != nil {
			if s.logger != nil {
				s.logger.Printf("[Ingest] corpus write failed | path=%s error=%v", s.corpusCSV, err)
			}
			return len(listings), err
		}
	}

	ws.NotifyCorpusUpdated(query, "paging_api")

	if s.logger != nil {
		s.logger.Printf("[Ingest] refresh done | query=%q jobs=%d", query, len(listings))
	}
	return len(listings), nil
}

func (s *Service) toListing(ctx context.Context, j fetcher.ExternalJob) corpus.JobListing {
	skills := ""
	if s.extractor != nil {
		skills = s.extractor.ExtractJoined(ctx, j.Description)
	}

	links := make([]joblinks.JobLink, 0, len(j.Providers))
	applyLink := ""
	for _, p := range j.Providers {
		links = append(links, joblinks.JobLink{JobProvider: p.JobProvider, URL: p.URL})
		if applyLink == "" && p.URL != "" {
			applyLink = p.URL
		}
	}

	return corpus.JobListing{
		ID:             j.ID,
		Title:          j.Title,
		Company:        j.Company,
		Location:       j.Location,
		Description:    j.Description,
		Skills:         skills,
		EmploymentType: j.EmploymentType,
		ApplyLink:      applyLink,
		Logo:           j.Image,
		Providers:      joblinks.Encode(links),
	}
}

func (s *Service) upsertAll(ctx context.Context, listings []corpus.JobListing) {
	p := newPool(upsertWorkers, len(listings))
	p.setRateLimit(50)

	results := p.run(ctx)

	for _, l := range listings {
		l := l
		p.submit(func(ctx context.Context) error {
			return s.store.Upsert(ctx, repository.JobUpsert{
				ExternalID:     l.ID,
				Title:          l.Title,
				Company:        l.Company,
				Location:       l.Location,
				Description:    l.Description,
				Skills:         l.Skills,
				EmploymentType: l.EmploymentType,
				ApplyLink:      l.ApplyLink,
				Logo:           l.Logo,
				Providers:      l.Providers,
			})
		})
	}
	p.close()

	failed := 0
	for r := range results {
		if r.Err != nil {
			failed++
			if s.logger != nil {
				s.logger.Printf("[Ingest] upsert failed | error=%v", r.Err)
			}
		}
	}
	if failed > 0 && s.logger != nil {
		s.logger.Printf("[Ingest] upserts partial | failed=%d total=%d", failed, len(listings))
	}
}
