package usecase

import (
	"context"
	"log"
	"strings"

	"job-matcher/internal/corpus"
	"job-matcher/internal/ranker"
)

type JobRecommendationUsecase interface {
	RecommendJobs(ctx context.Context, userSkills string) ([]corpus.JobListing, error)
}

type JobRecommendation struct {
	source CorpusSource
	logger *log.Logger
}

func NewJobRecommendationUsecase(source CorpusSource, logger *log.Logger) *JobRecommendation {
	return &JobRecommendation{source: source, logger: logger}
}

// RecommendJobs loads the corpus and ranks it against the user's skill
// string. The vectorizer is rebuilt on every call so corpus changes are
// picked up immediately.
func (u *JobRecommendation) RecommendJobs(ctx context.Context, userSkills string) ([]corpus.JobListing, error) {
	if strings.TrimSpace(userSkills) == "" {
		return nil, ErrInvalidInput
	}

	listings, err := u.source.Load(ctx)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Jobs] corpus load failed | error=%v", err)
		}
		return nil, ErrInternal
	}

	return ranker.Rank(userSkills, listings), nil
}
