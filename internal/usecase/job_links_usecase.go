package usecase

import (
	"context"
	"log"
	"strings"

	"job-matcher/internal/joblinks"
)

type JobLinksUsecase interface {
	Links(ctx context.Context, jobIDs []string) ([]joblinks.JobLink, error)
}

type JobLinks struct {
	source CorpusSource
	logger *log.Logger
}

func NewJobLinksUsecase(source CorpusSource, logger *log.Logger) *JobLinks {
	return &JobLinks{source: source, logger: logger}
}

// Links resolves apply links for the requested corpus rows. Unknown ids and
// malformed provider fields contribute nothing; each job keeps at most its
// first two provider pairs.
func (u *JobLinks) Links(ctx context.Context, jobIDs []string) ([]joblinks.JobLink, error) {
	if len(jobIDs) == 0 {
		return nil, ErrInvalidInput
	}

	listings, err := u.source.Load(ctx)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Links] corpus load failed | error=%v", err)
		}
		return nil, ErrInternal
	}

	byID := make(map[string]string, len(listings))
	for _, l := range listings {
		byID[l.ID] = l.Providers
	}

	out := make([]joblinks.JobLink, 0, len(jobIDs)*2)
	for _, id := range jobIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		providers, ok := byID[id]
		if !ok || providers == "" {
			continue
		}
		out = append(out, joblinks.Parse(providers, u.logger)...)
	}
	return out, nil
}
