package usecase

import (
	"context"

	"job-matcher/internal/corpus"
)

// CorpusSource yields the job listings every ranking call works from. The
// listings are reloaded per call; nothing is memoized between requests.
type CorpusSource interface {
	Load(ctx context.Context) ([]corpus.JobListing, error)
}
