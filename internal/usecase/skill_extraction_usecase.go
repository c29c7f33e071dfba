package usecase

import (
	"context"
	"strings"

	"job-matcher/internal/extractor"
)

type SkillExtractionUsecase interface {
	ExtractSkills(ctx context.Context, text string) (string, error)
}

type SkillExtraction struct {
	extractor *extractor.Extractor
}

func NewSkillExtractionUsecase(ext *extractor.Extractor) *SkillExtraction {
	return &SkillExtraction{extractor: ext}
}

// ExtractSkills returns the comma-joined skill set for the given resume text.
// The extractor itself never returns an empty set, so the only error here is
// missing input.
func (u *SkillExtraction) ExtractSkills(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrInvalidInput
	}
	return u.extractor.ExtractJoined(ctx, text), nil
}
