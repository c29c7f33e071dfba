package usecase

import (
	"context"
	"log"
	"strings"

	"job-matcher/internal/recommender"
)

type SkillRecommendationUsecase interface {
	RecommendSkills(ctx context.Context, userSkills string, limit int) ([]string, error)
}

type SkillRecommendation struct {
	source CorpusSource
	logger *log.Logger
}

func NewSkillRecommendationUsecase(source CorpusSource, logger *log.Logger) *SkillRecommendation {
	return &SkillRecommendation{source: source, logger: logger}
}

func (u *SkillRecommendation) RecommendSkills(ctx context.Context, userSkills string, limit int) ([]string, error) {
	if strings.TrimSpace(userSkills) == "" {
		return nil, ErrInvalidInput
	}

	listings, err := u.source.Load(ctx)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Skills] corpus load failed | error=%v", err)
		}
		return nil, ErrInternal
	}

	return recommender.Recommend(userSkills, listings, limit), nil
}
